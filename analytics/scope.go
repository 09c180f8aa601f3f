package analytics

import "github.com/rustyeddy/tradedash/journal"

// ScopeAll selects every account.
const ScopeAll = "all"

// ScopeInput is everything the resolver needs: the full trade collection
// and the aggregates the server already computed for the all scope.
type ScopeInput struct {
	Trades       []journal.TradeRecord
	Stats        Summary
	EquityCurve  []journal.EquityPoint
	PairStats    map[string]BreakdownStat
	SessionStats map[string]BreakdownStat
	AccountStats map[string]Summary
}

// Bundle is the scoped view handed to the presentation layer.
type Bundle struct {
	Scope        string
	Stats        Summary
	Trades       []journal.TradeRecord
	EquityCurve  []journal.EquityPoint
	PairStats    map[string]BreakdownStat
	SessionStats map[string]BreakdownStat
}

// Resolve scopes in to "all" or a single account id.
//
// The all scope returns the inputs as given. An account scope keeps trades
// whose account matches exactly, takes its summary from AccountStats (zeroed
// when missing) and rebuilds the curve and breakdowns from those trades,
// since the server does not provide per-account versions of them.
func Resolve(in ScopeInput, scope string) Bundle {
	if scope == ScopeAll {
		return Bundle{
			Scope:        ScopeAll,
			Stats:        in.Stats,
			Trades:       in.Trades,
			EquityCurve:  in.EquityCurve,
			PairStats:    in.PairStats,
			SessionStats: in.SessionStats,
		}
	}

	trades := FilterAccount(in.Trades, scope)
	return Bundle{
		Scope:        scope,
		Stats:        ScopeSummary(in.Stats, in.AccountStats, scope),
		Trades:       trades,
		EquityCurve:  BuildEquityCurve(trades),
		PairStats:    Breakdown(trades, ByPair),
		SessionStats: Breakdown(trades, BySession),
	}
}

// FilterAccount returns the trades logged against account, in order.
func FilterAccount(trades []journal.TradeRecord, account string) []journal.TradeRecord {
	out := make([]journal.TradeRecord, 0)
	for _, t := range trades {
		if t.Account == account {
			out = append(out, t)
		}
	}
	return out
}
