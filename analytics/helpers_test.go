package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradedash/journal"
)

func ts(t *testing.T, s string) *time.Time {
	t.Helper()
	v, err := journal.ParseTime(s)
	require.NoError(t, err)
	return &v
}

func closed(t *testing.T, id, account, pair string, r journal.Result, exit string) journal.TradeRecord {
	t.Helper()
	return journal.TradeRecord{
		ID:         id,
		Account:    account,
		Pair:       pair,
		Direction:  journal.Buy,
		EntryPrice: 1.1,
		Status:     journal.Closed,
		Result:     r,
		EntryTime:  *ts(t, exit),
		ExitTime:   ts(t, exit),
	}
}

func open(id, account, pair string) journal.TradeRecord {
	return journal.TradeRecord{
		ID:         id,
		Account:    account,
		Pair:       pair,
		Direction:  journal.Sell,
		EntryPrice: 1.25,
		Status:     journal.Open,
		EntryTime:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func strp(s string) *string { return &s }

func f64(x float64) *float64 { return &x }
