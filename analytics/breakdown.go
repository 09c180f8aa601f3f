package analytics

import "github.com/rustyeddy/tradedash/journal"

// BreakdownStat is the win/loss tally for one pair or session.
type BreakdownStat struct {
	Total   int     `json:"total"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"win_rate"`
}

// KeyFunc picks the grouping key of a trade.
type KeyFunc func(journal.TradeRecord) string

// ByPair groups by instrument symbol as written.
func ByPair(t journal.TradeRecord) string { return t.Pair }

// BySession groups by session label, with untagged trades under "Unknown".
func BySession(t journal.TradeRecord) string { return t.SessionLabel() }

// Breakdown tallies trades per key. Every trade counts toward Total; only W
// and L results count as wins and losses. WinRate is wins over decided
// trades, rounded to 2 decimals, and 0 when nothing was decided.
func Breakdown(trades []journal.TradeRecord, key KeyFunc) map[string]BreakdownStat {
	out := make(map[string]BreakdownStat)
	for _, t := range trades {
		k := key(t)
		s := out[k]
		s.Total++
		switch t.Result {
		case journal.Win:
			s.Wins++
		case journal.Loss:
			s.Losses++
		}
		out[k] = s
	}

	for k, s := range out {
		if decided := s.Wins + s.Losses; decided > 0 {
			s.WinRate = round2(float64(s.Wins) / float64(decided) * 100)
			out[k] = s
		}
	}
	return out
}
