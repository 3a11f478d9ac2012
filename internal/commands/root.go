package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendwise-dev/spendwise/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "spendwise",
		Short:   "Analyze bank-statement exports and forecast spending",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newForecastCommand())
	rootCmd.AddCommand(newPeriodsCommand())

	return rootCmd
}
