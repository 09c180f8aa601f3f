package analytics

import (
	"sort"

	"github.com/rustyeddy/tradedash/journal"
)

// BuildEquityCurve turns resolved trades into a cumulative win/loss series
// ordered by exit time. Ties keep collection order. Wins count +1, losses
// -1 and anything else 0.
func BuildEquityCurve(trades []journal.TradeRecord) []journal.EquityPoint {
	closed := make([]journal.TradeRecord, 0, len(trades))
	for _, t := range trades {
		if t.IsResolved() {
			closed = append(closed, t)
		}
	}

	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].ExitTime.Before(*closed[j].ExitTime)
	})

	points := make([]journal.EquityPoint, 0, len(closed))
	cumulative := 0
	for _, t := range closed {
		pnl := resultPnL(t.Result)
		cumulative += pnl
		points = append(points, journal.EquityPoint{
			Date:       t.ExitTime.UTC().Format("2006-01-02"),
			Timestamp:  *t.ExitTime,
			PnL:        pnl,
			Cumulative: cumulative,
			TradeID:    t.ID,
		})
	}
	return points
}

func resultPnL(r journal.Result) int {
	switch r {
	case journal.Win:
		return 1
	case journal.Loss:
		return -1
	default:
		return 0
	}
}

// CurveStats are the headline numbers shown above an equity curve.
type CurveStats struct {
	Final    int
	Max      int
	Min      int
	Drawdown int
}

// StatsOf summarizes an equity curve. An empty curve yields all zeros.
func StatsOf(points []journal.EquityPoint) CurveStats {
	if len(points) == 0 {
		return CurveStats{}
	}
	cs := CurveStats{
		Final: points[len(points)-1].Cumulative,
		Max:   points[0].Cumulative,
		Min:   points[0].Cumulative,
	}
	for _, p := range points[1:] {
		if p.Cumulative > cs.Max {
			cs.Max = p.Cumulative
		}
		if p.Cumulative < cs.Min {
			cs.Min = p.Cumulative
		}
	}
	cs.Drawdown = cs.Max - cs.Final
	return cs
}
