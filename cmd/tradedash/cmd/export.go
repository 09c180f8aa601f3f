package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradedash/dashboard"
	"github.com/rustyeddy/tradedash/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export [link-or-token]",
	Short: "Export trades to Org, CSV or a local snapshot",
	Long: `Export the trades of the selected scope.

  --org     writes an Org-mode journal block per trade
  --csv     writes trades (and --equity-csv the equity curve) as CSV
  --sqlite  stores the whole dashboard as a snapshot for --offline use

Examples:
  tradedash export abc123 --org journal.org
  tradedash export abc123 --account ACC-1 --csv trades.csv --equity-csv equity.csv
  tradedash export abc123 --sqlite tradedash.sqlite`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var (
	exportAccount   string
	exportOrg       string
	exportCSV       string
	exportEquityCSV string
	exportSQLite    string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportAccount, "account", "a", "", "account id, or 'all'")
	exportCmd.Flags().StringVar(&exportOrg, "org", "", "Org file to write")
	exportCmd.Flags().StringVar(&exportCSV, "csv", "", "trades CSV file to write")
	exportCmd.Flags().StringVar(&exportEquityCSV, "equity-csv", "", "equity curve CSV file to write")
	exportCmd.Flags().StringVar(&exportSQLite, "sqlite", "", "snapshot database to append to")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportOrg == "" && exportCSV == "" && exportEquityCSV == "" && exportSQLite == "" {
		return fmt.Errorf("nothing to export: set --org, --csv, --equity-csv or --sqlite")
	}

	v, err := loadView(cmd, args, exportAccount)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	b := v.Bundle()

	if exportOrg != "" {
		if err := os.WriteFile(exportOrg, []byte(journal.FormatTradesOrg(b.Trades)+"\n"), 0644); err != nil {
			return fmt.Errorf("write org: %w", err)
		}
		fmt.Fprintf(out, "✓ Wrote %d trades to %s\n", len(b.Trades), exportOrg)
	}

	if exportCSV != "" || exportEquityCSV != "" {
		if err := writeCSV(b.Trades, b.EquityCurve); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Wrote CSV export (%d trades, %d equity points)\n", len(b.Trades), len(b.EquityCurve))
	}

	if exportSQLite != "" {
		store, err := journal.NewSQLite(exportSQLite)
		if err != nil {
			return fmt.Errorf("open snapshot db: %w", err)
		}
		defer store.Close()

		// Snapshots always hold the full dashboard so any scope can be
		// reviewed offline.
		source := "api"
		if offline {
			source = "snapshot"
		}
		snapID, err := dashboard.SaveSnapshot(cmd.Context(), store, source, v.Payload())
		if err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		log.Info("snapshot saved", zap.String("snapshot_id", snapID), zap.String("path", exportSQLite))
		fmt.Fprintf(out, "✓ Saved snapshot %s to %s\n", snapID, exportSQLite)
	}
	return nil
}

func writeCSV(trades []journal.TradeRecord, points []journal.EquityPoint) error {
	j, err := journal.NewCSV(exportCSV, exportEquityCSV)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	for _, t := range trades {
		if err := j.RecordTrade(t); err != nil {
			j.Close()
			return fmt.Errorf("write trade %s: %w", t.ID, err)
		}
	}
	for _, p := range points {
		if err := j.RecordEquity(p); err != nil {
			j.Close()
			return fmt.Errorf("write equity: %w", err)
		}
	}
	return j.Close()
}
