package dashboard

import (
	"github.com/rustyeddy/tradedash/analytics"
	"github.com/rustyeddy/tradedash/journal"
)

// View drives the dashboard screens. It holds the payload, the selected
// scope and the trade table state, and recomputes derived data on demand.
type View struct {
	payload *Payload
	scope   string
	bundle  analytics.Bundle
	table   analytics.TableState
}

// NewView starts on the all scope with a default table.
func NewView(p *Payload) *View {
	v := &View{payload: p}
	v.SelectScope(analytics.ScopeAll)
	return v
}

// SelectScope switches to "all" or an account id. The table state is reset
// because the trade list underneath it changed.
func (v *View) SelectScope(scope string) {
	if scope == "" {
		scope = analytics.ScopeAll
	}
	v.scope = scope
	v.bundle = analytics.Resolve(v.payload.ScopeInput(), scope)
	v.table = analytics.DefaultTableState()
}

func (v *View) Scope() string { return v.scope }

func (v *View) Payload() *Payload { return v.payload }

// Bundle is the scoped stats, trades, curve and breakdowns.
func (v *View) Bundle() analytics.Bundle { return v.bundle }

// Title names the current scope.
func (v *View) Title() string {
	if v.scope == analytics.ScopeAll {
		return "All Accounts"
	}
	return v.payload.AccountName(v.scope)
}

// CurveTitle is the heading of the equity curve panel.
func (v *View) CurveTitle() string {
	if v.scope == analytics.ScopeAll {
		return "Overall Equity Curve"
	}
	return "Account Equity Curve"
}

// CurveStats summarizes the scoped equity curve.
func (v *View) CurveStats() analytics.CurveStats {
	return analytics.StatsOf(v.bundle.EquityCurve)
}

// Metrics returns the trading metrics panel for the scope. The server sends
// them for the all scope only, so account scopes are computed locally.
func (v *View) Metrics() analytics.Metrics {
	if v.scope == analytics.ScopeAll {
		s := v.bundle.Stats
		return analytics.Metrics{
			MaxWinStreak:  s.MaxWinStreak,
			MaxLossStreak: s.MaxLossStreak,
			ProfitFactor:  s.ProfitFactor,
			Expectancy:    s.Expectancy,
		}
	}
	return analytics.ComputeMetrics(v.bundle.Trades)
}

// Table returns the current table state.
func (v *View) Table() analytics.TableState { return v.table }

// SetTable replaces the table state, keeping the expanded row.
func (v *View) SetTable(s analytics.TableState) {
	s.Expanded = v.table.Expanded
	v.table = s
}

func (v *View) SetSearch(term string)    { v.table.Search = term }
func (v *View) SetStatus(status string)  { v.table.Status = status }
func (v *View) SetResult(result string)  { v.table.Result = result }
func (v *View) ToggleSort(field string)  { v.table.ToggleSort(field) }
func (v *View) ToggleExpanded(id string) { v.table.ToggleExpanded(id) }

// Rows is the filtered, sorted trade list for the history table.
func (v *View) Rows() []journal.TradeRecord {
	return analytics.ApplyTable(v.bundle.Trades, v.table)
}

// Expanded returns the expanded trade if it is among the visible rows.
func (v *View) Expanded() (journal.TradeRecord, bool) {
	if v.table.Expanded == nil {
		return journal.TradeRecord{}, false
	}
	for _, t := range v.Rows() {
		if t.ID == *v.table.Expanded {
			return t, true
		}
	}
	return journal.TradeRecord{}, false
}
