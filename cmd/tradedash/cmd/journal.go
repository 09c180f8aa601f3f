package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradedash/journal"
	"github.com/rustyeddy/tradedash/pkg/id"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the local snapshot database",
	Long: `Query trades stored by 'tradedash export --sqlite' without contacting the API.

Subcommands:
  trade  - Show a specific trade by ID as an Org block
  today  - List trades closed today
  day    - List trades closed on a specific day

Examples:
  tradedash journal trade T-42
  tradedash journal today
  tradedash journal day 2024-01-15 --snapshot 01HV...`,
}

var journalTradeCmd = &cobra.Command{
	Use:   "trade <trade-id>",
	Short: "Show a specific trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalTrade,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List trades closed today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades closed on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalSnapshot string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalTradeCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)

	journalCmd.PersistentFlags().StringVar(&journalSnapshot, "snapshot", "", "snapshot id (default latest)")
}

func openSnapshot(cmd *cobra.Command) (*journal.SQLite, string, error) {
	j, err := journal.NewSQLite(cfg.Snapshot.DBPath)
	if err != nil {
		return nil, "", fmt.Errorf("open db: %w", err)
	}
	snapID := journalSnapshot
	if snapID == "" {
		snapID, err = j.LatestSnapshot(cmd.Context())
		if err != nil {
			j.Close()
			return nil, "", fmt.Errorf("snapshot: %w", err)
		}
	}
	if saved, err := id.Time(snapID); err == nil {
		log.Debug("using snapshot", zap.String("snapshot_id", snapID), zap.Time("saved", saved))
	}
	return j, snapID, nil
}

func runJournalTrade(cmd *cobra.Command, args []string) error {
	j, snapID, err := openSnapshot(cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetTrade(cmd.Context(), snapID, args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(rec))
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	return listClosedOn(cmd, time.Now().UTC().Format("2006-01-02"))
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return listClosedOn(cmd, args[0])
}

func listClosedOn(cmd *cobra.Command, day string) error {
	start, end, err := dayBounds(time.UTC, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, snapID, err := openSnapshot(cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListTradesClosedBetween(cmd.Context(), snapID, start, end)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	if len(recs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No trades closed on %s\n", day)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradesOrg(recs))
	return nil
}

// Equity curve dates are UTC calendar days, so days are bounded in UTC too.
func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
