package cmd

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/rustyeddy/tradedash/analytics"
	"github.com/rustyeddy/tradedash/dashboard"
	"github.com/rustyeddy/tradedash/journal"
)

func printSummary(w io.Writer, v *dashboard.View) {
	s := v.Bundle().Stats
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " %s\n", v.Title())
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Total Trades:  %d\n", s.TotalTrades)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", s.WinRate)
	fmt.Fprintf(w, "Wins:          %d\n", s.Wins)
	fmt.Fprintf(w, "Losses:        %d\n", s.Losses)
	fmt.Fprintf(w, "Break Even:    %d\n", s.BreakEven)
	fmt.Fprintf(w, "Open:          %d\n", s.OpenTrades)
	fmt.Fprintf(w, "Closed:        %d\n", s.ClosedTrades)
}

func printMetrics(w io.Writer, m analytics.Metrics) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trading Metrics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Max Win Streak:  %d\n", m.MaxWinStreak)
	fmt.Fprintf(w, "Max Loss Streak: %d\n", m.MaxLossStreak)
	if m.ProfitFactor != nil {
		fmt.Fprintf(w, "Profit Factor:   %.2f\n", *m.ProfitFactor)
	} else {
		fmt.Fprintln(w, "Profit Factor:   N/A")
	}
	fmt.Fprintf(w, "Expectancy:      %.2f\n", m.Expectancy)
}

func printCurveStats(w io.Writer, v *dashboard.View) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, v.CurveTitle())
	fmt.Fprintln(w, "--------------------------------------------------")
	if len(v.Bundle().EquityCurve) == 0 {
		fmt.Fprintln(w, "No closed trades yet")
		return
	}
	cs := v.CurveStats()
	fmt.Fprintf(w, "Final:         %+d\n", cs.Final)
	fmt.Fprintf(w, "Peak:          %+d\n", cs.Max)
	fmt.Fprintf(w, "Low:           %+d\n", cs.Min)
	fmt.Fprintf(w, "Drawdown:      %d\n", cs.Drawdown)
}

func printCurve(w io.Writer, points []journal.EquityPoint) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTRADE\tP/L\tCUMULATIVE")
	for _, p := range points {
		fmt.Fprintf(tw, "%s\t%s\t%+d\t%+d\n", p.Date, p.TradeID, p.PnL, p.Cumulative)
	}
	tw.Flush()
}

func printBreakdown(w io.Writer, title string, stats map[string]analytics.BreakdownStat) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "--------------------------------------------------")
	if len(stats) == 0 {
		fmt.Fprintln(w, "No data available")
		return
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	// Busiest first, then by name so output is stable.
	sort.Slice(keys, func(i, j int) bool {
		a, b := stats[keys[i]], stats[keys[j]]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return keys[i] < keys[j]
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTOTAL\tWINS\tLOSSES\tWIN RATE")
	for _, k := range keys {
		s := stats[k]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.2f%%\n", k, s.Total, s.Wins, s.Losses, s.WinRate)
	}
	tw.Flush()
}

func printTrades(w io.Writer, rows []journal.TradeRecord) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No trades match")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tACCOUNT\tPAIR\tDIR\tENTRY\tSTATUS\tRESULT\tSESSION\tENTRY TIME")
	for _, t := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.5f\t%s\t%s\t%s\t%s\n",
			t.ID, t.Account, t.Pair, t.Direction, t.EntryPrice,
			t.Status, resultBadge(t.Result), t.SessionLabel(), formatTime(&t.EntryTime))
	}
	tw.Flush()
}

func printTradeDetail(w io.Writer, t journal.TradeRecord) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Trade %s\n", t.ID)
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Pair:          %s %s\n", t.Pair, t.Direction)
	fmt.Fprintf(w, "Account:       %s\n", t.Account)
	fmt.Fprintf(w, "Entry:         %.5f\n", t.EntryPrice)
	if t.StopLoss != nil {
		pips, _ := t.StopPips()
		fmt.Fprintf(w, "Stop Loss:     %.5f (%.1f pips)\n", *t.StopLoss, pips)
	}
	if t.TakeProfit != nil {
		pips, _ := t.TargetPips()
		fmt.Fprintf(w, "Take Profit:   %.5f (%.1f pips)\n", *t.TakeProfit, pips)
	}
	if rr, ok := t.RiskReward(); ok {
		fmt.Fprintf(w, "Risk/Reward:   1:%.2f\n", rr)
	}
	fmt.Fprintf(w, "Status:        %s\n", t.Status)
	fmt.Fprintf(w, "Result:        %s\n", resultBadge(t.Result))
	if t.Session == "" && !t.EntryTime.IsZero() {
		fmt.Fprintf(w, "Session:       %s (opened in %s hours)\n", t.SessionLabel(), journal.SessionAt(t.EntryTime))
	} else {
		fmt.Fprintf(w, "Session:       %s\n", t.SessionLabel())
	}
	if t.HighNewsRisk() {
		fmt.Fprintln(w, "News Risk:     HIGH")
	}
	fmt.Fprintf(w, "Opened:        %s\n", formatTime(&t.EntryTime))
	fmt.Fprintf(w, "Closed:        %s\n", formatTime(t.ExitTime))
	if t.Notes != nil && *t.Notes != "" {
		fmt.Fprintf(w, "Notes:         %s\n", *t.Notes)
	}
}

func resultBadge(r journal.Result) string {
	if r == journal.NoResult {
		return "Pending"
	}
	return string(r)
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.UTC().Format("Jan 2, 2006 15:04")
}
