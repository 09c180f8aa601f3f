package analytics

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rustyeddy/tradedash/journal"
)

// FilterAll disables a status or result filter.
const FilterAll = "all"

type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

// Sortable trade fields, named as on the wire.
const (
	FieldID            = "id"
	FieldAccount       = "account"
	FieldPair          = "pair"
	FieldDirection     = "direction"
	FieldEntryPrice    = "entry_price"
	FieldStopLoss      = "stop_loss"
	FieldTakeProfit    = "take_profit"
	FieldStatus        = "status"
	FieldResult        = "result"
	FieldSession       = "session"
	FieldNewsRisk      = "news_risk"
	FieldNotes         = "notes"
	FieldEntryDatetime = "entry_datetime"
	FieldExitDatetime  = "exit_datetime"
)

// TableState is the search, filter, sort and expansion state of one trade
// history view.
type TableState struct {
	Search    string
	Status    string
	Result    string
	SortField string
	SortDir   SortDir
	Expanded  *string
}

// DefaultTableState is newest entry first with no filters.
func DefaultTableState() TableState {
	return TableState{
		Status:    FilterAll,
		Result:    FilterAll,
		SortField: FieldEntryDatetime,
		SortDir:   Desc,
	}
}

// ToggleSort flips direction when field is already active, otherwise
// selects field in descending order.
func (s *TableState) ToggleSort(field string) {
	if s.SortField == field {
		if s.SortDir == Asc {
			s.SortDir = Desc
		} else {
			s.SortDir = Asc
		}
		return
	}
	s.SortField = field
	s.SortDir = Desc
}

// ToggleExpanded shows the detail of tradeID, or hides it when it is the
// one already shown. Only one trade is expanded at a time.
func (s *TableState) ToggleExpanded(tradeID string) {
	if s.Expanded != nil && *s.Expanded == tradeID {
		s.Expanded = nil
		return
	}
	s.Expanded = &tradeID
}

// IsExpanded reports whether tradeID is the expanded row.
func (s TableState) IsExpanded(tradeID string) bool {
	return s.Expanded != nil && *s.Expanded == tradeID
}

// ApplyTable filters and sorts trades for display. The input is not
// modified. Equal keys keep their filtered order.
func ApplyTable(trades []journal.TradeRecord, s TableState) []journal.TradeRecord {
	out := make([]journal.TradeRecord, 0, len(trades))
	for _, t := range trades {
		if Matches(t, s) {
			out = append(out, t)
		}
	}

	less := fieldComparator(s.SortField)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := less(out[i], out[j])
		if s.SortDir == Asc {
			return c < 0
		}
		return c > 0
	})
	return out
}

// Matches reports whether t passes the search, status and result filters.
func Matches(t journal.TradeRecord, s TableState) bool {
	return MatchesSearch(t, s.Search) &&
		(isAll(s.Status) || string(t.Status) == s.Status) &&
		(isAll(s.Result) || string(t.Result) == s.Result)
}

// MatchesSearch is a case-insensitive substring match on pair, account and
// notes. An empty term matches everything.
func MatchesSearch(t journal.TradeRecord, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(t.Pair), term) ||
		strings.Contains(strings.ToLower(t.Account), term) {
		return true
	}
	return t.Notes != nil && strings.Contains(strings.ToLower(*t.Notes), term)
}

func isAll(v string) bool {
	return v == "" || v == FilterAll
}

type comparator func(a, b journal.TradeRecord) int

func fieldComparator(field string) comparator {
	switch field {
	case FieldID:
		return byString(func(t journal.TradeRecord) string { return t.ID })
	case FieldAccount:
		return byString(func(t journal.TradeRecord) string { return t.Account })
	case FieldPair:
		return byString(func(t journal.TradeRecord) string { return t.Pair })
	case FieldDirection:
		return byString(func(t journal.TradeRecord) string { return string(t.Direction) })
	case FieldStatus:
		return byString(func(t journal.TradeRecord) string { return string(t.Status) })
	case FieldResult:
		return byString(func(t journal.TradeRecord) string { return string(t.Result) })
	case FieldSession:
		return byString(func(t journal.TradeRecord) string { return t.Session })
	case FieldNewsRisk:
		return byString(func(t journal.TradeRecord) string { return t.NewsRisk })
	case FieldNotes:
		return byString(func(t journal.TradeRecord) string {
			if t.Notes == nil {
				return ""
			}
			return *t.Notes
		})
	case FieldEntryPrice:
		return func(a, b journal.TradeRecord) int { return cmp.Compare(a.EntryPrice, b.EntryPrice) }
	case FieldStopLoss:
		return byOptFloat(func(t journal.TradeRecord) *float64 { return t.StopLoss })
	case FieldTakeProfit:
		return byOptFloat(func(t journal.TradeRecord) *float64 { return t.TakeProfit })
	case FieldEntryDatetime:
		return byTime(func(t journal.TradeRecord) *time.Time {
			if t.EntryTime.IsZero() {
				return nil
			}
			return &t.EntryTime
		})
	case FieldExitDatetime:
		return byTime(func(t journal.TradeRecord) *time.Time { return t.ExitTime })
	}
	return nil
}

func byString(get func(journal.TradeRecord) string) comparator {
	return func(a, b journal.TradeRecord) int { return strings.Compare(get(a), get(b)) }
}

// Missing values sort lowest.
func byOptFloat(get func(journal.TradeRecord) *float64) comparator {
	return func(a, b journal.TradeRecord) int {
		x, y := get(a), get(b)
		switch {
		case x == nil && y == nil:
			return 0
		case x == nil:
			return -1
		case y == nil:
			return 1
		}
		return cmp.Compare(*x, *y)
	}
}

// A missing time is the earliest possible instant.
func byTime(get func(journal.TradeRecord) *time.Time) comparator {
	return func(a, b journal.TradeRecord) int {
		x, y := get(a), get(b)
		switch {
		case x == nil && y == nil:
			return 0
		case x == nil:
			return -1
		case y == nil:
			return 1
		}
		return x.Compare(*y)
	}
}

// IsSortField reports whether field names a sortable trade field.
func IsSortField(field string) bool {
	return fieldComparator(field) != nil
}

func ParseStatusFilter(s string) (string, error) {
	switch strings.ToUpper(s) {
	case "", "ALL":
		return FilterAll, nil
	case string(journal.Open), string(journal.Closed):
		return strings.ToUpper(s), nil
	}
	return "", fmt.Errorf("invalid status filter %q (want all, OPEN or CLOSED)", s)
}

func ParseResultFilter(s string) (string, error) {
	switch strings.ToUpper(s) {
	case "", "ALL":
		return FilterAll, nil
	case string(journal.Win), string(journal.Loss), string(journal.BreakEven):
		return strings.ToUpper(s), nil
	}
	return "", fmt.Errorf("invalid result filter %q (want all, W, L or BE)", s)
}

func ParseSortDir(s string) (SortDir, error) {
	switch SortDir(strings.ToLower(s)) {
	case Asc:
		return Asc, nil
	case Desc, "":
		return Desc, nil
	}
	return "", fmt.Errorf("invalid sort direction %q (want asc or desc)", s)
}
