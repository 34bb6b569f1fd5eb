package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transferlens/transferlens/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "transferlens",
		Short:   "Football transfer market analytics",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}
