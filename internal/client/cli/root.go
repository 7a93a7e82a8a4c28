package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var flagServer string

var rootCmd = &cobra.Command{
	Use:           "budgetbox",
	Short:         "Personal budgeting with offline-first sync",
	Long:          "Track monthly income and expenses locally, sync to a BudgetBox server, and view burn-rate analytics.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute is the main entry point called from main.go.
func Execute() {
	setupLogging()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagServer, "server", "s", "", "Backend base URL (overrides config)")
}

// setupLogging keeps command output clean: structured logs go to stderr at
// warn level unless BUDGETBOX_DEBUG is set.
func setupLogging() {
	level := slog.LevelWarn
	if os.Getenv("BUDGETBOX_DEBUG") != "" {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}
