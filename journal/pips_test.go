package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		entry, exit float64
		dir         Direction
		want        float64
	}{
		{"buy in favour", 1.1000, 1.1050, Buy, 50.0},
		{"buy against", 1.1000, 1.0975, Buy, -25.0},
		{"sell in favour", 1.2650, 1.2600, Sell, 50.0},
		{"sell against", 1.2650, 1.26625, Sell, -12.5},
		{"flat", 1.1, 1.1, Buy, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PipDistance(tt.entry, tt.exit, tt.dir))
		})
	}
}

func TestRiskReward(t *testing.T) {
	t.Parallel()

	stop, target := 1.0980, 1.1050
	tr := TradeRecord{Direction: Buy, EntryPrice: 1.1000, StopLoss: &stop, TakeProfit: &target}

	sp, ok := tr.StopPips()
	assert.True(t, ok)
	assert.Equal(t, -20.0, sp)

	tp, ok := tr.TargetPips()
	assert.True(t, ok)
	assert.Equal(t, 50.0, tp)

	rr, ok := tr.RiskReward()
	assert.True(t, ok)
	assert.Equal(t, 2.5, rr)
}

func TestRiskRewardMissingLevels(t *testing.T) {
	t.Parallel()

	target := 1.1050
	tr := TradeRecord{Direction: Buy, EntryPrice: 1.1000, TakeProfit: &target}

	_, ok := tr.StopPips()
	assert.False(t, ok)
	_, ok = tr.RiskReward()
	assert.False(t, ok)

	// Stop on the wrong side of entry.
	badStop := 1.1010
	tr.StopLoss = &badStop
	_, ok = tr.RiskReward()
	assert.False(t, ok)

	_, ok = TradeRecord{StopLoss: &badStop}.StopPips()
	assert.False(t, ok)
}
