package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradedash/config"
	"github.com/rustyeddy/tradedash/dashboard"
	"github.com/rustyeddy/tradedash/internal/logger"
	"github.com/rustyeddy/tradedash/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradedash",
	Short: "Review a trading journal dashboard from the terminal",
	Long: `Tradedash loads the dashboard of a trading journal bot and shows it in the terminal.

It provides tools for:
  - Summary statistics for all accounts or a single account
  - The cumulative win/loss equity curve and drawdown
  - Win rate by currency pair and by trading session
  - A searchable, filterable, sortable trade history
  - Exporting trades to Org, CSV or a local SQLite snapshot

Pass the dashboard link from the bot (or just its token) as the first
argument, or set TRADEDASH_TOKEN. A .env file in the working directory is
loaded first.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	cfgFile    string
	baseURL    string
	offline    bool
	snapshotDB string
	logLevel   string

	cfg *config.Config
	log *zap.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if isDashboardErr(err) {
			fmt.Fprintln(os.Stderr, dashboard.UserMessage(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	if log != nil {
		_ = log.Sync()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "dashboard API base URL (overrides config and TRADEDASH_BASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "read from the local snapshot database instead of the API")
	rootCmd.PersistentFlags().StringVar(&snapshotDB, "db", "", "snapshot database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	} else {
		cfg = config.Default()
	}

	if v := os.Getenv("TRADEDASH_BASE_URL"); v != "" {
		cfg.Dashboard.BaseURL = v
	}
	if baseURL != "" {
		cfg.Dashboard.BaseURL = baseURL
	}
	if snapshotDB != "" {
		cfg.Snapshot.DBPath = snapshotDB
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, err = logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	return nil
}

// tokenArg picks the dashboard link from args or TRADEDASH_TOKEN.
func tokenArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return os.Getenv("TRADEDASH_TOKEN")
}

// loadPayload fetches the dashboard from the API, or from the snapshot
// database when --offline is set.
func loadPayload(ctx context.Context, args []string) (*dashboard.Payload, error) {
	if offline {
		store, err := journal.NewSQLite(cfg.Snapshot.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open snapshot db: %w", err)
		}
		defer store.Close()

		snap := ""
		if len(args) > 0 {
			snap = args[0]
		}
		return dashboard.SnapshotSource{Store: store}.Fetch(ctx, snap)
	}

	token, err := dashboard.ResolveToken(tokenArg(args))
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.Dashboard.ParseTimeout()
	if err != nil {
		return nil, err
	}
	client := dashboard.NewClient(cfg.Dashboard.BaseURL, timeout, log)
	return client.Fetch(ctx, token)
}

// loadView loads the payload and selects the requested scope.
func loadView(cmd *cobra.Command, args []string, account string) (*dashboard.View, error) {
	p, err := loadPayload(cmd.Context(), args)
	if err != nil {
		return nil, err
	}
	v := dashboard.NewView(p)
	if account == "" {
		account = cfg.View.DefaultAccount
	}
	v.SelectScope(account)
	return v, nil
}

func isDashboardErr(err error) bool {
	for _, target := range []error{
		dashboard.ErrMissingToken,
		dashboard.ErrUnauthorized,
		dashboard.ErrFetchFailed,
		dashboard.ErrNoData,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
