package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "moneypath",
	Short: "A multi-decade personal finance journey simulator",
	Long: `Moneypath simulates a financial life from age 16 to 51: five levels of
decisions about saving, investing, debt and risk, with market crashes,
job shocks and random events along the way.

It provides tools for:
  - Playing an interactive campaign in the terminal
  - Batch-simulating campaigns under answering policies
  - Journaling rounds and sessions to SQLite or CSV
  - Querying past sessions and net worth curves`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
