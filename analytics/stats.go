package analytics

import (
	"math"

	"github.com/rustyeddy/tradedash/journal"
)

// Summary holds the counters shown for a scope. The streak, profit factor
// and expectancy fields are only filled when the source provides them.
type Summary struct {
	AccountName   string   `json:"account_name,omitempty"`
	IsDefault     bool     `json:"is_default,omitempty"`
	TotalTrades   int      `json:"total_trades"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	BreakEven     int      `json:"break_even"`
	WinRate       float64  `json:"win_rate"`
	OpenTrades    int      `json:"open_trades"`
	ClosedTrades  int      `json:"closed_trades"`
	MaxWinStreak  int      `json:"max_win_streak,omitempty"`
	MaxLossStreak int      `json:"max_loss_streak,omitempty"`
	ProfitFactor  *float64 `json:"profit_factor,omitempty"`
	Expectancy    float64  `json:"expectancy,omitempty"`
}

// ZeroSummary is the summary substituted when a scope has no data.
func ZeroSummary() Summary {
	return Summary{}
}

// ScopeSummary picks the summary for scope. The all scope passes the
// provided summary through; an account scope uses the per-account entry or
// ZeroSummary when there is none. Counts are never recomputed here.
func ScopeSummary(all Summary, perAccount map[string]Summary, scope string) Summary {
	if scope == ScopeAll {
		return all
	}
	if s, ok := perAccount[scope]; ok {
		return s
	}
	return ZeroSummary()
}

// Summarize counts trades the way the dashboard server does. Win rate is
// wins over closed trades. Sources that carry no server aggregates use it.
func Summarize(trades []journal.TradeRecord) Summary {
	var s Summary
	s.TotalTrades = len(trades)
	for _, t := range trades {
		switch t.Status {
		case journal.Open:
			s.OpenTrades++
		case journal.Closed:
			s.ClosedTrades++
			switch t.Result {
			case journal.Win:
				s.Wins++
			case journal.Loss:
				s.Losses++
			case journal.BreakEven:
				s.BreakEven++
			}
		}
	}
	if s.ClosedTrades > 0 {
		s.WinRate = round2(float64(s.Wins) / float64(s.ClosedTrades) * 100)
	}
	return s
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
