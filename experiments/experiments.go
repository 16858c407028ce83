// Package experiments runs configuration sweeps over the heuristic task and
// records the outcomes as CSV for offline analysis.
package experiments

import (
	"context"
	"fmt"
	"math"

	"ponder/heuristic"
	"ponder/metrics"
	"ponder/searcher"

	"github.com/rs/zerolog/log"
)

const (
	RunsPerConfig = 20
	Iterations    = 64
)

var explorationConfigs = []metrics.SweepConfig{
	{ID: 1, Iterations: Iterations, Width: 3, Exploration: 0, Retries: 1, EvalWorkers: 1},
	{ID: 2, Iterations: Iterations, Width: 3, Exploration: 0.5, Retries: 1, EvalWorkers: 1},
	{ID: 3, Iterations: Iterations, Width: 3, Exploration: 1.0, Retries: 1, EvalWorkers: 1},
	{ID: 4, Iterations: Iterations, Width: 3, Exploration: math.Sqrt2, Retries: 1, EvalWorkers: 1},
	{ID: 5, Iterations: Iterations, Width: 3, Exploration: 2.0, Retries: 1, EvalWorkers: 1},
}

var widthConfigs = []metrics.SweepConfig{
	{ID: 1, Iterations: Iterations, Width: 2, Exploration: math.Sqrt2, Retries: 1, EvalWorkers: 1},
	{ID: 2, Iterations: Iterations, Width: 3, Exploration: math.Sqrt2, Retries: 1, EvalWorkers: 1},
	{ID: 3, Iterations: Iterations, Width: 4, Exploration: math.Sqrt2, Retries: 1, EvalWorkers: 1},
	{ID: 4, Iterations: Iterations, Width: 6, Exploration: math.Sqrt2, Retries: 1, EvalWorkers: 4},
	{ID: 5, Iterations: Iterations, Width: 8, Exploration: math.Sqrt2, Retries: 1, EvalWorkers: 4},
}

// RunExplorationSweep compares exploration constants on the heuristic task.
func RunExplorationSweep() error {
	return runSweep("exploration", explorationConfigs)
}

// RunWidthSweep compares expansion widths on the heuristic task.
func RunWidthSweep() error {
	return runSweep("width", widthConfigs)
}

func runSweep(name string, configs []metrics.SweepConfig) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to create sweep writer: %w", err)
	}
	if err := writer.WriteSweepConfigs(configs); err != nil {
		return err
	}

	var records []metrics.RunRecord
	for _, config := range configs {
		log.Info().Msgf("sweep %s: config %d (%d runs)", name, config.ID, RunsPerConfig)
		for run := 0; run < RunsPerConfig; run++ {
			// One seed per run so configs face the same task family
			seed := uint64(run)
			record, err := runOnce(config, seed)
			if err != nil {
				return err
			}
			records = append(records, record)
		}
	}

	if err := writer.WriteRunRecords(records); err != nil {
		return err
	}
	log.Info().Msgf("sweep %s: wrote %d run records", name, len(records))
	return nil
}

func runOnce(config metrics.SweepConfig, seed uint64) (metrics.RunRecord, error) {
	caps := heuristic.New(heuristic.WithSeed(seed))
	collector := metrics.NewCollector()
	s := searcher.NewSearcher(caps, caps,
		searcher.WithIterations(config.Iterations),
		searcher.WithExpansionWidth(config.Width),
		searcher.WithExplorationConstant(config.Exploration),
		searcher.WithStageRetries(config.Retries),
		searcher.WithEvalWorkers(config.EvalWorkers),
		searcher.WithCollector(collector),
	)

	task := fmt.Sprintf("synthetic task %d", seed)
	result, err := s.Run(context.Background(), task, heuristic.Root())
	if err != nil {
		return metrics.RunRecord{}, fmt.Errorf("sweep run failed: %w", err)
	}

	return metrics.RunRecord{
		Config:       config.ID,
		Seed:         seed,
		BestValue:    result.Value,
		PathDepth:    len(result.Path),
		SearchMetric: collector.Complete(),
	}, nil
}
