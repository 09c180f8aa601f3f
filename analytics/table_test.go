package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradedash/journal"
)

func tableTrades(t *testing.T) []journal.TradeRecord {
	t.Helper()

	a := closed(t, "A", "Main", "EURUSD", journal.Win, "2024-02-01T10:00:00Z")
	a.Notes = strp("clean breakout")
	a.StopLoss = f64(1.09)

	b := closed(t, "B", "Prop", "GBPUSD", journal.Loss, "2024-02-03T10:00:00Z")

	c := open("C", "Main", "USDJPY")
	c.Notes = strp("waiting on EUR data")

	d := closed(t, "D", "Prop", "EURGBP", journal.Win, "2024-02-02T10:00:00Z")
	d.StopLoss = f64(0.85)

	return []journal.TradeRecord{a, b, c, d}
}

func ids(trades []journal.TradeRecord) []string {
	out := make([]string, len(trades))
	for i, t := range trades {
		out[i] = t.ID
	}
	return out
}

func TestApplyTableSearch(t *testing.T) {
	t.Parallel()

	trades := tableTrades(t)
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"pair case insensitive", "eur", []string{"A", "C", "D"}},
		{"account", "PROP", []string{"B", "D"}},
		{"notes", "breakout", []string{"A"}},
		{"nil notes never match", "waiting", []string{"C"}},
		{"no match", "xau", []string{}},
		{"empty term", "", []string{"A", "B", "C", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := TableState{Search: tt.term}
			assert.Equal(t, tt.want, ids(ApplyTable(trades, s)))
		})
	}
}

func TestApplyTableFiltersAreConjunctive(t *testing.T) {
	t.Parallel()

	trades := tableTrades(t)
	s := TableState{Search: "eur", Status: string(journal.Closed), Result: string(journal.Win)}

	got := ApplyTable(trades, s)
	for _, tr := range got {
		assert.True(t, MatchesSearch(tr, s.Search))
		assert.Equal(t, journal.Closed, tr.Status)
		assert.Equal(t, journal.Win, tr.Result)
	}
	assert.Equal(t, []string{"A", "D"}, ids(got))

	s.Result = string(journal.Loss)
	assert.Empty(t, ApplyTable(trades, s))
}

func TestApplyTableSort(t *testing.T) {
	t.Parallel()

	trades := tableTrades(t)
	tests := []struct {
		name  string
		field string
		dir   SortDir
		want  []string
	}{
		{"entry newest first", FieldEntryDatetime, Desc, []string{"C", "B", "D", "A"}},
		{"entry oldest first", FieldEntryDatetime, Asc, []string{"A", "D", "B", "C"}},
		{"missing exit sorts earliest", FieldExitDatetime, Asc, []string{"C", "A", "D", "B"}},
		{"missing stop sorts lowest", FieldStopLoss, Asc, []string{"B", "C", "D", "A"}},
		{"pair descending", FieldPair, Desc, []string{"C", "B", "A", "D"}},
		{"unknown field keeps order", "bogus", Asc, []string{"A", "B", "C", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := TableState{SortField: tt.field, SortDir: tt.dir}
			assert.Equal(t, tt.want, ids(ApplyTable(trades, s)))
		})
	}
}

func TestApplyTableStableTies(t *testing.T) {
	t.Parallel()

	trades := tableTrades(t)
	s := TableState{SortField: FieldAccount, SortDir: Asc}
	assert.Equal(t, []string{"A", "C", "B", "D"}, ids(ApplyTable(trades, s)))

	s.SortDir = Desc
	assert.Equal(t, []string{"B", "D", "A", "C"}, ids(ApplyTable(trades, s)))
}

func TestApplyTableLeavesInputAlone(t *testing.T) {
	t.Parallel()

	trades := tableTrades(t)
	_ = ApplyTable(trades, DefaultTableState())
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(trades))
}

func TestDefaultTableState(t *testing.T) {
	t.Parallel()

	s := DefaultTableState()
	assert.Equal(t, FieldEntryDatetime, s.SortField)
	assert.Equal(t, Desc, s.SortDir)
	assert.Equal(t, FilterAll, s.Status)
	assert.Equal(t, FilterAll, s.Result)
	assert.Nil(t, s.Expanded)
}

func TestToggleSort(t *testing.T) {
	t.Parallel()

	s := DefaultTableState()
	s.ToggleSort(FieldEntryDatetime)
	assert.Equal(t, Asc, s.SortDir)
	s.ToggleSort(FieldEntryDatetime)
	assert.Equal(t, Desc, s.SortDir)

	s.ToggleSort(FieldEntryDatetime)
	s.ToggleSort(FieldPair)
	assert.Equal(t, FieldPair, s.SortField)
	assert.Equal(t, Desc, s.SortDir)
}

func TestToggleExpanded(t *testing.T) {
	t.Parallel()

	var s TableState
	s.ToggleExpanded("A")
	require.NotNil(t, s.Expanded)
	assert.True(t, s.IsExpanded("A"))

	s.ToggleExpanded("B")
	assert.True(t, s.IsExpanded("B"))
	assert.False(t, s.IsExpanded("A"))

	s.ToggleExpanded("B")
	assert.Nil(t, s.Expanded)
}

func TestIsSortField(t *testing.T) {
	t.Parallel()

	for _, f := range []string{FieldID, FieldPair, FieldEntryPrice, FieldExitDatetime, FieldNotes} {
		assert.True(t, IsSortField(f), f)
	}
	assert.False(t, IsSortField("pnl"))
}

func TestParseFilters(t *testing.T) {
	t.Parallel()

	st, err := ParseStatusFilter("closed")
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", st)

	st, err = ParseStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, st)

	_, err = ParseStatusFilter("pending")
	assert.Error(t, err)

	r, err := ParseResultFilter("be")
	require.NoError(t, err)
	assert.Equal(t, "BE", r)

	_, err = ParseResultFilter("X")
	assert.Error(t, err)

	d, err := ParseSortDir("ASC")
	require.NoError(t, err)
	assert.Equal(t, Asc, d)

	d, err = ParseSortDir("")
	require.NoError(t, err)
	assert.Equal(t, Desc, d)

	_, err = ParseSortDir("up")
	assert.Error(t, err)
}
