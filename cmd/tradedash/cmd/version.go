package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the tradedash CLI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tradedash version %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), "Terminal dashboard for a trading journal")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
