package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/transferlens/transferlens/internal/config"
)

func newInitCommand() *cobra.Command {
	var dataPath string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new transferlens project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, dataPath)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "data", "dataset directory (relative to the project)")

	return cmd
}

func runInit(cmd *cobra.Command, dir, dataPath string) error {
	cfg := config.Default(dataPath)

	for _, d := range []string{dataPath, cfg.Output.Dir} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfgPath := filepath.Join(dir, "transferlens.yaml")
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("config already exists at %s", cfgPath)
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	gitignore := cfg.Output.Dir + "/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	cmd.Printf("Initialized transferlens project at %s\n", dir)
	cmd.Printf("Place the dataset tables under %s and run: transferlens build\n", dataPath)
	return nil
}
