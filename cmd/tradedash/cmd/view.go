package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [link-or-token]",
	Short: "Show the dashboard overview",
	Long: `Show summary statistics, equity curve figures, trading metrics and
the pair and session breakdowns for all accounts or a single account.

Examples:
  tradedash view https://journal.example.com/dashboard/abc123
  tradedash view abc123 --account ACC-2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

var viewAccount string

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().StringVarP(&viewAccount, "account", "a", "", "account id, or 'all'")
}

func runView(cmd *cobra.Command, args []string) error {
	v, err := loadView(cmd, args, viewAccount)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	b := v.Bundle()
	printSummary(out, v)
	printCurveStats(out, v)
	printMetrics(out, v.Metrics())
	printBreakdown(out, "Pair Performance", b.PairStats)
	printBreakdown(out, "Session Performance", b.SessionStats)
	fmt.Fprintln(out)
	return nil
}
