// Package config loads searcher settings from YAML files.
package config

import (
	"fmt"
	"math"
	"os"

	"ponder/searcher"

	"gopkg.in/yaml.v3"
)

// SearchConfig carries the controller-facing options.
type SearchConfig struct {
	MaxIterations       int     `yaml:"max_iterations"`
	ExpansionWidth      int     `yaml:"expansion_width"`
	ExplorationConstant float64 `yaml:"exploration_constant"`
	MaxStageRetries     int     `yaml:"max_stage_retries"`
	EvalWorkers         int     `yaml:"eval_workers"`
}

func Default() SearchConfig {
	return SearchConfig{
		MaxIterations:       16,
		ExpansionWidth:      searcher.DefaultExpansionWidth,
		ExplorationConstant: searcher.DefaultExplorationConstant,
		MaxStageRetries:     searcher.DefaultStageRetries,
		EvalWorkers:         1,
	}
}

// Load reads a YAML config file. Missing keys keep their defaults; keys set
// explicitly (including zero for the exploration constant) are honored.
func Load(path string) (SearchConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return SearchConfig{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SearchConfig{}, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return SearchConfig{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

func (c SearchConfig) Validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", c.MaxIterations)
	}
	if c.ExpansionWidth <= 0 {
		return fmt.Errorf("expansion_width must be positive, got %d", c.ExpansionWidth)
	}
	if c.ExplorationConstant < 0 || math.IsNaN(c.ExplorationConstant) {
		return fmt.Errorf("exploration_constant must be non-negative, got %v", c.ExplorationConstant)
	}
	if c.MaxStageRetries < 0 {
		return fmt.Errorf("max_stage_retries must be non-negative, got %d", c.MaxStageRetries)
	}
	if c.EvalWorkers < 1 {
		return fmt.Errorf("eval_workers must be at least 1, got %d", c.EvalWorkers)
	}
	return nil
}

// Options translates the config into searcher options.
func (c SearchConfig) Options() []searcher.Option {
	return []searcher.Option{
		searcher.WithIterations(c.MaxIterations),
		searcher.WithExpansionWidth(c.ExpansionWidth),
		searcher.WithExplorationConstant(c.ExplorationConstant),
		searcher.WithStageRetries(c.MaxStageRetries),
		searcher.WithEvalWorkers(c.EvalWorkers),
	}
}
