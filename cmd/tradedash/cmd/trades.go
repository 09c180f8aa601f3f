package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradedash/analytics"
)

var tradesCmd = &cobra.Command{
	Use:   "trades [link-or-token]",
	Short: "List the trade history",
	Long: `List trades for the selected scope, filtered and sorted.

Search matches pair, account and notes without regard to case. Status is
all, OPEN or CLOSED; result is all, W, L or BE. Sort by any trade field
(entry_datetime, exit_datetime, pair, entry_price, ...).

Examples:
  tradedash trades abc123 --search eur --status CLOSED
  tradedash trades abc123 --sort pair --dir asc
  tradedash trades abc123 --expand T-42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrades,
}

var (
	tradesAccount string
	tradesSearch  string
	tradesStatus  string
	tradesResult  string
	tradesSort    string
	tradesDir     string
	tradesExpand  string
)

func init() {
	rootCmd.AddCommand(tradesCmd)

	tradesCmd.Flags().StringVarP(&tradesAccount, "account", "a", "", "account id, or 'all'")
	tradesCmd.Flags().StringVarP(&tradesSearch, "search", "s", "", "search pair, account and notes")
	tradesCmd.Flags().StringVar(&tradesStatus, "status", "all", "status filter: all, OPEN, CLOSED")
	tradesCmd.Flags().StringVar(&tradesResult, "result", "all", "result filter: all, W, L, BE")
	tradesCmd.Flags().StringVar(&tradesSort, "sort", "", "sort field (default from config)")
	tradesCmd.Flags().StringVar(&tradesDir, "dir", "", "sort direction: asc or desc (default from config)")
	tradesCmd.Flags().StringVar(&tradesExpand, "expand", "", "show detail for this trade id")
}

func runTrades(cmd *cobra.Command, args []string) error {
	status, err := analytics.ParseStatusFilter(tradesStatus)
	if err != nil {
		return err
	}
	result, err := analytics.ParseResultFilter(tradesResult)
	if err != nil {
		return err
	}
	field := tradesSort
	if field == "" {
		field = cfg.View.SortField
	}
	if !analytics.IsSortField(field) {
		return fmt.Errorf("unknown sort field %q", field)
	}
	dirFlag := tradesDir
	if dirFlag == "" {
		dirFlag = cfg.View.SortDirection
	}
	dir, err := analytics.ParseSortDir(dirFlag)
	if err != nil {
		return err
	}

	v, err := loadView(cmd, args, tradesAccount)
	if err != nil {
		return err
	}

	v.SetTable(analytics.TableState{
		Search:    tradesSearch,
		Status:    status,
		Result:    result,
		SortField: field,
		SortDir:   dir,
	})
	if tradesExpand != "" {
		v.ToggleExpanded(tradesExpand)
	}

	out := cmd.OutOrStdout()
	rows := v.Rows()
	fmt.Fprintf(out, "Trade History: %s (%d of %d)\n\n", v.Title(), len(rows), len(v.Bundle().Trades))
	printTrades(out, rows)

	if tradesExpand != "" {
		t, ok := v.Expanded()
		if !ok {
			return fmt.Errorf("trade %q is not in the current list", tradesExpand)
		}
		printTradeDetail(out, t)
	}
	return nil
}
