package analytics

import (
	"sort"

	"github.com/rustyeddy/tradedash/journal"
)

// Metrics are the streak and edge figures of the trading metrics panel.
type Metrics struct {
	MaxWinStreak  int
	MaxLossStreak int
	// ProfitFactor is nil when there are no losses.
	ProfitFactor *float64
	Expectancy   float64
}

// ComputeMetrics derives Metrics from trades. Streaks walk resolved trades
// in exit order and a break-even resets the run. Each win and loss is worth
// one unit, so profit factor is wins/losses and expectancy is
// winRate - lossRate over closed trades.
func ComputeMetrics(trades []journal.TradeRecord) Metrics {
	var m Metrics

	resolved := make([]journal.TradeRecord, 0, len(trades))
	var closed, wins, losses int
	for _, t := range trades {
		if t.Status != journal.Closed {
			continue
		}
		closed++
		switch t.Result {
		case journal.Win:
			wins++
		case journal.Loss:
			losses++
		}
		if t.ExitTime != nil {
			resolved = append(resolved, t)
		}
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].ExitTime.Before(*resolved[j].ExitTime)
	})

	var run int
	var runType journal.Result
	for _, t := range resolved {
		switch t.Result {
		case journal.Win, journal.Loss:
			if runType == t.Result {
				run++
			} else {
				run, runType = 1, t.Result
			}
			if t.Result == journal.Win && run > m.MaxWinStreak {
				m.MaxWinStreak = run
			}
			if t.Result == journal.Loss && run > m.MaxLossStreak {
				m.MaxLossStreak = run
			}
		default:
			run, runType = 0, journal.NoResult
		}
	}

	if losses > 0 {
		pf := round2(float64(wins) / float64(losses))
		m.ProfitFactor = &pf
	}
	if closed > 0 {
		winRate := float64(wins) / float64(closed) * 100
		avgWin, avgLoss := 0.0, 0.0
		if wins > 0 {
			avgWin = 1
		}
		if losses > 0 {
			avgLoss = 1
		}
		m.Expectancy = round2(avgWin*winRate/100 - avgLoss*(100-winRate)/100)
	}
	return m
}

// Apply copies m into the optional fields of s.
func (m Metrics) Apply(s Summary) Summary {
	s.MaxWinStreak = m.MaxWinStreak
	s.MaxLossStreak = m.MaxLossStreak
	s.ProfitFactor = m.ProfitFactor
	s.Expectancy = m.Expectancy
	return s
}
