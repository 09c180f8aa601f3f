package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/rustyeddy/tradedash/analytics"
	"github.com/rustyeddy/tradedash/journal"
)

// SnapshotStore is the part of journal.SQLite the snapshot source needs.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, source string, accounts []journal.Account, trades []journal.TradeRecord) (string, error)
	LatestSnapshot(ctx context.Context) (string, error)
	ListAccounts(ctx context.Context, snapID string) ([]journal.Account, error)
	ListTrades(ctx context.Context, snapID string) ([]journal.TradeRecord, error)
}

// SaveSnapshot stores the trades and accounts of p for offline review.
func SaveSnapshot(ctx context.Context, store SnapshotStore, source string, p *Payload) (string, error) {
	return store.SaveSnapshot(ctx, source, p.Accounts, p.Trades)
}

// SnapshotSource serves dashboards from a local snapshot store instead of
// the API. The token selects a snapshot id; "latest" or an empty token uses
// the newest snapshot.
type SnapshotSource struct {
	Store SnapshotStore
}

func (s SnapshotSource) Fetch(ctx context.Context, token string) (*Payload, error) {
	snapID := token
	if snapID == "" || snapID == "latest" {
		var err error
		snapID, err = s.Store.LatestSnapshot(ctx)
		if errors.Is(err, journal.ErrNoSnapshot) {
			return nil, ErrNoData
		}
		if err != nil {
			return nil, fmt.Errorf("%w: latest snapshot: %v", ErrFetchFailed, err)
		}
	}

	accounts, err := s.Store.ListAccounts(ctx, snapID)
	if err != nil {
		return nil, fmt.Errorf("%w: list accounts: %v", ErrFetchFailed, err)
	}
	trades, err := s.Store.ListTrades(ctx, snapID)
	if err != nil {
		return nil, fmt.Errorf("%w: list trades: %v", ErrFetchFailed, err)
	}
	if len(trades) == 0 && len(accounts) == 0 {
		return nil, ErrNoData
	}
	return BuildPayload(accounts, trades), nil
}

// BuildPayload computes the aggregates a dashboard server would send for
// trades.
func BuildPayload(accounts []journal.Account, trades []journal.TradeRecord) *Payload {
	if trades == nil {
		trades = []journal.TradeRecord{}
	}
	p := &Payload{
		User:         User{Initials: Initials("", "")},
		Accounts:     accounts,
		Stats:        analytics.ComputeMetrics(trades).Apply(analytics.Summarize(trades)),
		Trades:       trades,
		EquityCurve:  analytics.BuildEquityCurve(trades),
		PairStats:    analytics.Breakdown(trades, analytics.ByPair),
		SessionStats: analytics.Breakdown(trades, analytics.BySession),
		AccountStats: make(map[string]analytics.Summary, len(accounts)),
	}
	for _, a := range accounts {
		s := analytics.Summarize(analytics.FilterAccount(trades, a.ID))
		s.AccountName = a.Name
		s.IsDefault = a.IsDefault
		p.AccountStats[a.ID] = s
	}
	return p
}
