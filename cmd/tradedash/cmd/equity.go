package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradedash/journal"
)

var equityCmd = &cobra.Command{
	Use:   "equity [link-or-token]",
	Short: "Print the equity curve",
	Long: `Print the cumulative win/loss equity curve for the selected scope.
Each closed trade moves the curve +1 for a win, -1 for a loss and 0 otherwise.

Examples:
  tradedash equity abc123
  tradedash equity abc123 --account ACC-1 --csv equity.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEquity,
}

var (
	equityAccount string
	equityCSV     string
)

func init() {
	rootCmd.AddCommand(equityCmd)

	equityCmd.Flags().StringVarP(&equityAccount, "account", "a", "", "account id, or 'all'")
	equityCmd.Flags().StringVar(&equityCSV, "csv", "", "also write the curve to this CSV file")
}

func runEquity(cmd *cobra.Command, args []string) error {
	v, err := loadView(cmd, args, equityAccount)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	points := v.Bundle().EquityCurve
	printCurveStats(out, v)
	if len(points) > 0 {
		fmt.Fprintln(out)
		printCurve(out, points)
	}

	if equityCSV != "" {
		j, err := journal.NewCSV("", equityCSV)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer j.Close()
		for _, p := range points {
			if err := j.RecordEquity(p); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
		}
		fmt.Fprintf(out, "\n✓ Wrote %d points to %s\n", len(points), equityCSV)
	}
	return nil
}
