package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/transferlens/transferlens/internal/clubreport"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Work with plain-text club reports",
	}

	cmd.AddCommand(newReportParseCommand())

	return cmd
}

func newReportParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a club report and print it as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening report: %w", err)
			}
			defer f.Close()

			clubs, err := clubreport.Parse(f)
			if err != nil {
				return err
			}
			return clubreport.WriteCSV(cmd.OutOrStdout(), clubs)
		},
	}
}
