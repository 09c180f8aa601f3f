package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block suitable for pasting into a journal.
// Structured facts go in a PROPERTIES drawer; the trader's notes become the Review section.
func FormatTradeOrg(t TradeRecord) string {
	heading := fmt.Sprintf("** Trade: %s %s (%s)", t.Pair, t.Direction, shortID(t.ID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":ACCOUNT: %s\n", t.Account))
	b.WriteString(fmt.Sprintf(":PAIR: %s\n", t.Pair))
	b.WriteString(fmt.Sprintf(":DIRECTION: %s\n", t.Direction))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.EntryPrice))
	if t.StopLoss != nil {
		b.WriteString(fmt.Sprintf(":STOP_LOSS: %.5f\n", *t.StopLoss))
	}
	if t.TakeProfit != nil {
		b.WriteString(fmt.Sprintf(":TAKE_PROFIT: %.5f\n", *t.TakeProfit))
	}
	b.WriteString(fmt.Sprintf(":STATUS: %s\n", t.Status))
	b.WriteString(fmt.Sprintf(":RESULT: %s\n", resultLabel(t.Result)))
	b.WriteString(fmt.Sprintf(":SESSION: %s\n", t.SessionLabel()))
	if t.NewsRisk != "" {
		b.WriteString(fmt.Sprintf(":NEWS_RISK: %s\n", t.NewsRisk))
	}
	// Use RFC3339 for copy/paste friendliness.
	b.WriteString(fmt.Sprintf(":OPEN_TIME: %s\n", t.EntryTime.UTC().Format(time.RFC3339)))
	if t.ExitTime != nil {
		b.WriteString(fmt.Sprintf(":CLOSE_TIME: %s\n", t.ExitTime.UTC().Format(time.RFC3339)))
	}
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Review\n")
	if t.Notes != nil && *t.Notes != "" {
		b.WriteString("- " + *t.Notes + "\n")
	} else {
		b.WriteString("- \n")
	}

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func resultLabel(r Result) string {
	if r == NoResult {
		return "PENDING"
	}
	return string(r)
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
