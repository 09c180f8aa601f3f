package dashboard

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"

	"github.com/rustyeddy/tradedash/analytics"
	"github.com/rustyeddy/tradedash/journal"
)

// User identifies the journal owner.
type User struct {
	TelegramID int64  `json:"telegram_id,omitempty"`
	Username   string `json:"username,omitempty"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Initials   string `json:"initials"`
}

// Payload is the dashboard response: trades plus the server's aggregates
// for the all scope and per account.
type Payload struct {
	User         User
	Accounts     []journal.Account
	Stats        analytics.Summary
	Trades       []journal.TradeRecord
	EquityCurve  []journal.EquityPoint
	PairStats    map[string]analytics.BreakdownStat
	SessionStats map[string]analytics.BreakdownStat
	AccountStats map[string]analytics.Summary
}

// ScopeInput hands the payload to the scope resolver.
func (p *Payload) ScopeInput() analytics.ScopeInput {
	return analytics.ScopeInput{
		Trades:       p.Trades,
		Stats:        p.Stats,
		EquityCurve:  p.EquityCurve,
		PairStats:    p.PairStats,
		SessionStats: p.SessionStats,
		AccountStats: p.AccountStats,
	}
}

// AccountName returns the display name of accountID, or the id itself.
func (p *Payload) AccountName(accountID string) string {
	for _, a := range p.Accounts {
		if a.ID == accountID {
			return a.Name
		}
	}
	return accountID
}

// DefaultAccount returns the account flagged as default, if any.
func (p *Payload) DefaultAccount() (journal.Account, bool) {
	for _, a := range p.Accounts {
		if a.IsDefault {
			return a, true
		}
	}
	return journal.Account{}, false
}

type wirePayload struct {
	User         map[string]any                     `json:"user"`
	Accounts     []map[string]any                   `json:"accounts"`
	Stats        map[string]any                     `json:"stats"`
	RecentTrades []journal.TradeRecord              `json:"recent_trades"`
	EquityCurve  []journal.EquityPoint              `json:"equity_curve"`
	PairStats    map[string]analytics.BreakdownStat `json:"pair_stats"`
	SessionStats map[string]analytics.BreakdownStat `json:"session_stats"`
	AccountStats map[string]map[string]any          `json:"account_stats"`
}

// DecodePayload parses a dashboard response body. A null or empty object
// yields ErrNoData.
func DecodePayload(data []byte) (*Payload, error) {
	var w *wirePayload
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	if w == nil || w.isEmpty() {
		return nil, ErrNoData
	}

	p := &Payload{
		User:         decodeUser(w.User),
		Stats:        decodeSummary(w.Stats),
		Trades:       w.RecentTrades,
		EquityCurve:  w.EquityCurve,
		PairStats:    w.PairStats,
		SessionStats: w.SessionStats,
		AccountStats: make(map[string]analytics.Summary, len(w.AccountStats)),
	}
	if p.Trades == nil {
		p.Trades = []journal.TradeRecord{}
	}
	if p.EquityCurve == nil {
		p.EquityCurve = []journal.EquityPoint{}
	}
	if p.PairStats == nil {
		p.PairStats = map[string]analytics.BreakdownStat{}
	}
	if p.SessionStats == nil {
		p.SessionStats = map[string]analytics.BreakdownStat{}
	}
	for _, a := range w.Accounts {
		p.Accounts = append(p.Accounts, journal.Account{
			ID:        cast.ToString(a["account_id"]),
			Name:      cast.ToString(a["account_name"]),
			IsDefault: cast.ToBool(a["is_default"]),
		})
	}
	for id, s := range w.AccountStats {
		p.AccountStats[id] = decodeSummary(s)
	}
	return p, nil
}

func (w *wirePayload) isEmpty() bool {
	return w.User == nil && w.Stats == nil && w.RecentTrades == nil &&
		w.Accounts == nil && w.AccountStats == nil && w.EquityCurve == nil
}

// decodeSummary is lenient: numbers may arrive as ints, floats or strings
// and profit_factor is "N/A" when there were no losses.
func decodeSummary(m map[string]any) analytics.Summary {
	if m == nil {
		return analytics.ZeroSummary()
	}
	s := analytics.Summary{
		AccountName:   cast.ToString(m["account_name"]),
		IsDefault:     cast.ToBool(m["is_default"]),
		TotalTrades:   cast.ToInt(m["total_trades"]),
		Wins:          cast.ToInt(m["wins"]),
		Losses:        cast.ToInt(m["losses"]),
		BreakEven:     cast.ToInt(m["break_even"]),
		WinRate:       cast.ToFloat64(m["win_rate"]),
		OpenTrades:    cast.ToInt(m["open_trades"]),
		ClosedTrades:  cast.ToInt(m["closed_trades"]),
		MaxWinStreak:  cast.ToInt(m["max_win_streak"]),
		MaxLossStreak: cast.ToInt(m["max_loss_streak"]),
		Expectancy:    cast.ToFloat64(m["expectancy"]),
	}
	if pf, err := cast.ToFloat64E(m["profit_factor"]); err == nil && m["profit_factor"] != nil {
		s.ProfitFactor = &pf
	}
	return s
}

func decodeUser(m map[string]any) User {
	u := User{
		TelegramID: cast.ToInt64(m["telegram_id"]),
		Username:   cast.ToString(m["username"]),
		Name:       cast.ToString(m["name"]),
		Email:      cast.ToString(m["email"]),
		Initials:   cast.ToString(m["initials"]),
	}
	if u.Initials == "" {
		u.Initials = Initials(u.Name, u.Username)
	}
	return u
}

// Initials builds the avatar initials from the first letters of up to two
// words of the name, falling back to username and then "User". A one-word
// name uses its first two characters.
func Initials(name, username string) string {
	n := name
	if n == "" {
		n = username
	}
	if n == "" {
		n = "User"
	}

	var b strings.Builder
	for _, part := range strings.Fields(n) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteString(strings.ToUpper(string(r)))
	}
	initials := []rune(b.String())
	if len(initials) > 2 {
		initials = initials[:2]
	}
	if len(initials) < 2 {
		rs := []rune(n)
		if len(rs) > 2 {
			rs = rs[:2]
		}
		return strings.ToUpper(string(rs))
	}
	return string(initials)
}
