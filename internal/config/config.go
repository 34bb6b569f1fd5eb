package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level transferlens.yaml configuration.
type Config struct {
	Datasets DatasetsConfig `yaml:"datasets"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
}

// DatasetsConfig points at the CSV tables and the optional extra identity
// sources.
type DatasetsConfig struct {
	BasePath    string `yaml:"base_path"`
	RankingFile string `yaml:"ranking_file,omitempty"`
	ClubReport  string `yaml:"club_report,omitempty"`
}

// AnalysisConfig controls which clubs and seasons the pipeline aggregates.
type AnalysisConfig struct {
	TopN    int      `yaml:"top_n"`
	Seasons []string `yaml:"seasons,omitempty"` // "YY/YY" labels; empty means all
}

// OutputConfig controls where build artifacts are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads a transferlens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(basePath string) *Config {
	return &Config{
		Datasets: DatasetsConfig{
			BasePath: basePath,
		},
		Analysis: AnalysisConfig{
			TopN: 50,
		},
		Output: OutputConfig{
			Dir: "out",
		},
	}
}
