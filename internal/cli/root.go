// Package cli implements the SugarShield command-line interface using Cobra.
// Each subcommand maps to an insight engine operation (log, status, quote, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sugarshield",
	Short: "SugarShield — Track sugar habits, build streaks",
	Long: `SugarShield is a local-first habit companion.
Log sugar intake, grow streaks and XP, and get personalized
health nudges — all on your machine, no accounts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
