package journal

import "github.com/shopspring/decimal"

var pipFactor = decimal.NewFromInt(10000)

// PipDistance returns the signed move from entry to exit in pips, rounded to
// one decimal. Positive means the move was in the trade's favour.
func PipDistance(entry, exit float64, dir Direction) float64 {
	e := decimal.NewFromFloat(entry)
	x := decimal.NewFromFloat(exit)

	diff := x.Sub(e)
	if dir == Sell {
		diff = e.Sub(x)
	}
	pips, _ := diff.Mul(pipFactor).Round(1).Float64()
	return pips
}

// StopPips is the distance to the stop loss in pips, or false when the trade
// has no stop.
func (t TradeRecord) StopPips() (float64, bool) {
	if t.StopLoss == nil || t.EntryPrice == 0 {
		return 0, false
	}
	return PipDistance(t.EntryPrice, *t.StopLoss, t.Direction), true
}

// TargetPips is the distance to the take profit in pips, or false when the
// trade has no target.
func (t TradeRecord) TargetPips() (float64, bool) {
	if t.TakeProfit == nil || t.EntryPrice == 0 {
		return 0, false
	}
	return PipDistance(t.EntryPrice, *t.TakeProfit, t.Direction), true
}

// RiskReward is target pips over stop pips. It is false unless both levels
// are set and the stop is on the losing side of entry.
func (t TradeRecord) RiskReward() (float64, bool) {
	stop, ok := t.StopPips()
	if !ok || stop >= 0 {
		return 0, false
	}
	target, ok := t.TargetPips()
	if !ok {
		return 0, false
	}
	rr, _ := decimal.NewFromFloat(target).
		Div(decimal.NewFromFloat(-stop)).
		Round(2).
		Float64()
	return rr, true
}
