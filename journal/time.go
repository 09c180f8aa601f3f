package journal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for trade datetimes. Zone-less values are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime parses a trade datetime in any of the layouts the dashboard
// has been seen to emit.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", s)
}

// wireTrade is the JSON shape of a trade on the dashboard payload.
type wireTrade struct {
	ID            string   `json:"id"`
	Account       string   `json:"account"`
	Pair          string   `json:"pair"`
	Direction     string   `json:"direction"`
	EntryPrice    float64  `json:"entry_price"`
	StopLoss      *float64 `json:"stop_loss"`
	TakeProfit    *float64 `json:"take_profit"`
	Status        string   `json:"status"`
	Result        *string  `json:"result"`
	Session       *string  `json:"session"`
	NewsRisk      *string  `json:"news_risk"`
	Notes         *string  `json:"notes"`
	EntryDatetime *string  `json:"entry_datetime"`
	ExitDatetime  *string  `json:"exit_datetime"`
}

func (t *TradeRecord) UnmarshalJSON(data []byte) error {
	var w wireTrade
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	rec := TradeRecord{
		ID:         w.ID,
		Account:    w.Account,
		Pair:       w.Pair,
		Direction:  Direction(w.Direction),
		EntryPrice: w.EntryPrice,
		StopLoss:   w.StopLoss,
		TakeProfit: w.TakeProfit,
		Status:     Status(w.Status),
		Result:     Result(deref(w.Result)),
		Session:    deref(w.Session),
		NewsRisk:   deref(w.NewsRisk),
		Notes:      w.Notes,
	}

	if w.EntryDatetime != nil && *w.EntryDatetime != "" {
		et, err := ParseTime(*w.EntryDatetime)
		if err != nil {
			return fmt.Errorf("trade %s entry_datetime: %w", w.ID, err)
		}
		rec.EntryTime = et
	}
	if w.ExitDatetime != nil && *w.ExitDatetime != "" {
		xt, err := ParseTime(*w.ExitDatetime)
		if err != nil {
			return fmt.Errorf("trade %s exit_datetime: %w", w.ID, err)
		}
		rec.ExitTime = &xt
	}

	*t = rec
	return nil
}

func (t TradeRecord) MarshalJSON() ([]byte, error) {
	w := wireTrade{
		ID:         t.ID,
		Account:    t.Account,
		Pair:       t.Pair,
		Direction:  string(t.Direction),
		EntryPrice: t.EntryPrice,
		StopLoss:   t.StopLoss,
		TakeProfit: t.TakeProfit,
		Status:     string(t.Status),
		Result:     ref(string(t.Result)),
		Session:    ref(t.Session),
		NewsRisk:   ref(t.NewsRisk),
		Notes:      t.Notes,
	}
	if !t.EntryTime.IsZero() {
		w.EntryDatetime = ref(t.EntryTime.UTC().Format(time.RFC3339))
	}
	if t.ExitTime != nil {
		w.ExitDatetime = ref(t.ExitTime.UTC().Format(time.RFC3339))
	}
	return json.Marshal(w)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ref(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type wirePoint struct {
	Date       string `json:"date"`
	Timestamp  string `json:"timestamp"`
	PnL        int    `json:"pnl"`
	Cumulative int    `json:"cumulative"`
	TradeID    string `json:"trade_id"`
}

func (p *EquityPoint) UnmarshalJSON(data []byte) error {
	var w wirePoint
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	ts, err := ParseTime(w.Timestamp)
	if err != nil {
		return fmt.Errorf("equity point %s timestamp: %w", w.TradeID, err)
	}
	*p = EquityPoint{
		Date:       w.Date,
		Timestamp:  ts,
		PnL:        w.PnL,
		Cumulative: w.Cumulative,
		TradeID:    w.TradeID,
	}
	return nil
}
