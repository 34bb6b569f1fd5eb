package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transferlens/transferlens/internal/config"
	"github.com/transferlens/transferlens/internal/export"
	"github.com/transferlens/transferlens/internal/logging"
	"github.com/transferlens/transferlens/internal/pipeline"
)

func newBuildCommand() *cobra.Command {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run the analysis pipeline and write all CSV artifacts",
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

			if err := export.WriteAll(cfg.Output.Dir, res); err != nil {
				return fmt.Errorf("writing artifacts: %w", err)
			}
			if err := res.Quality.Save(cfg.Output.Dir); err != nil {
				return fmt.Errorf("writing quality report: %w", err)
			}

			cmd.Printf("Wrote artifacts for %d clubs across %d seasons to %s\n",
				len(res.TopClubIDs), len(res.Seasons), cfg.Output.Dir)
			if n := res.Quality.Total(); n > 0 {
				cmd.Printf("Recorded %d data-quality findings (see quality-report.csv)\n", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "transferlens.yaml", "path to config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
