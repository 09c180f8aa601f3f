package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradedash/journal"
)

func TestComputeMetricsStreaks(t *testing.T) {
	t.Parallel()

	seq := []journal.Result{
		journal.Win, journal.Win, journal.Win, // 3 wins
		journal.BreakEven,
		journal.Win, journal.Loss, journal.Loss, // 2 losses
		journal.Win,
	}
	var trades []journal.TradeRecord
	for i, r := range seq {
		day := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07", "2024-01-08"}[i]
		trades = append(trades, closed(t, day, "A", "EURUSD", r, day))
	}
	// Input order must not matter.
	trades[0], trades[7] = trades[7], trades[0]

	m := ComputeMetrics(trades)
	assert.Equal(t, 3, m.MaxWinStreak)
	assert.Equal(t, 2, m.MaxLossStreak)
	require.NotNil(t, m.ProfitFactor)
	assert.Equal(t, 2.5, *m.ProfitFactor)
	// 5 wins, 2 losses, 8 closed: 62.5% - 37.5%
	assert.Equal(t, 0.25, m.Expectancy)
}

func TestComputeMetricsNoLosses(t *testing.T) {
	t.Parallel()

	m := ComputeMetrics([]journal.TradeRecord{
		closed(t, "T1", "A", "EURUSD", journal.Win, "2024-01-01"),
		open("T2", "A", "EURUSD"),
	})
	assert.Nil(t, m.ProfitFactor)
	assert.Equal(t, 1, m.MaxWinStreak)
	assert.Equal(t, 1.0, m.Expectancy)
}

func TestComputeMetricsEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Metrics{}, ComputeMetrics(nil))
}

func TestMetricsApply(t *testing.T) {
	t.Parallel()

	pf := 1.5
	s := Metrics{MaxWinStreak: 2, MaxLossStreak: 1, ProfitFactor: &pf, Expectancy: 0.2}.Apply(Summary{TotalTrades: 5})
	assert.Equal(t, 5, s.TotalTrades)
	assert.Equal(t, 2, s.MaxWinStreak)
	assert.Equal(t, 1, s.MaxLossStreak)
	assert.Equal(t, &pf, s.ProfitFactor)
	assert.Equal(t, 0.2, s.Expectancy)
}
