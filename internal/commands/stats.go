package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transferlens/transferlens/internal/config"
	"github.com/transferlens/transferlens/internal/export"
	"github.com/transferlens/transferlens/internal/logging"
	"github.com/transferlens/transferlens/internal/pipeline"
	"github.com/transferlens/transferlens/internal/stats"
)

func newStatsCommand() *cobra.Command {
	var configPath string
	var clubID int64
	var verbose bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-season statistics for one club as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger := logging.New(verbose)
			defer func() { _ = logger.Sync() }()

			res, err := pipeline.Run(cfg, logger)
			if err != nil {
				return err
			}
			if !res.Resolver.Has(clubID) {
				return fmt.Errorf("club %d not found in the resolved club table", clubID)
			}

			recs := stats.CalculatePerSeason(clubID, res.Games, res.Transfers, res.Seasons)
			return export.WriteStatsCSV(cmd.OutOrStdout(), recs, res.Resolver.Name)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "transferlens.yaml", "path to config file")
	cmd.Flags().Int64Var(&clubID, "club", 0, "club id (required)")
	_ = cmd.MarkFlagRequired("club")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
