// journal/journal.go
package journal

import "time"

type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

type Status string

const (
	Open   Status = "OPEN"
	Closed Status = "CLOSED"
)

// Result is the outcome of a closed trade. The empty Result means the
// trade is still open or was closed without an outcome.
type Result string

const (
	Win       Result = "W"
	Loss      Result = "L"
	BreakEven Result = "BE"
	NoResult  Result = ""
)

// UnknownSession labels trades logged without a session tag.
const UnknownSession = "Unknown"

// TradeRecord is one logged trade as delivered by the dashboard payload.
// Records are treated as immutable once decoded.
type TradeRecord struct {
	ID         string
	Account    string
	Pair       string
	Direction  Direction
	EntryPrice float64
	StopLoss   *float64
	TakeProfit *float64
	Status     Status
	Result     Result
	EntryTime  time.Time
	ExitTime   *time.Time
	Session    string
	NewsRisk   string
	Notes      *string
}

// SessionLabel returns the session tag or UnknownSession when absent.
func (t TradeRecord) SessionLabel() string {
	if t.Session == "" {
		return UnknownSession
	}
	return t.Session
}

// IsResolved reports whether the trade is closed with an exit time, which
// is what makes it eligible for the equity curve.
func (t TradeRecord) IsResolved() bool {
	return t.Status == Closed && t.ExitTime != nil
}

// HighNewsRisk reports whether the trade was taken around high impact news.
func (t TradeRecord) HighNewsRisk() bool {
	return t.NewsRisk == "HIGH"
}

// Account is a trading account the user logs trades against.
type Account struct {
	ID        string
	Name      string
	IsDefault bool
}

// EquityPoint is one step of a cumulative win/loss equity curve.
type EquityPoint struct {
	Date       string    `json:"date"`
	Timestamp  time.Time `json:"timestamp"`
	PnL        int       `json:"pnl"`
	Cumulative int       `json:"cumulative"`
	TradeID    string    `json:"trade_id"`
}

// Journal is a sink for trades and equity points, used by the exporters.
type Journal interface {
	RecordTrade(TradeRecord) error
	RecordEquity(EquityPoint) error
	Close() error
}
