package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SweepConfig is one searcher configuration exercised by a sweep.
type SweepConfig struct {
	ID          int
	Iterations  int
	Width       int
	Exploration float64
	Retries     int
	EvalWorkers int
}

// RunRecord is one search run under a sweep configuration.
type RunRecord struct {
	Config    int // SweepConfig.ID
	Seed      uint64
	BestValue float64
	PathDepth int
	SearchMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("sweeps", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteSweepConfigs(configs []SweepConfig) error {
	path := filepath.Join(w.baseDir, "sweep_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sweep configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "iterations", "width", "exploration", "retries", "eval_workers"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write sweep configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Iterations),
			strconv.Itoa(config.Width),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			strconv.Itoa(config.Retries),
			strconv.Itoa(config.EvalWorkers),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write sweep config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	path := filepath.Join(w.baseDir, "run_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"config", "run", "seed", "duration", "iterations", "expansions",
		"evaluations", "retries", "tree_size", "best_value", "path_depth", "degraded",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Config),
			record.RunID.String(),
			strconv.FormatUint(record.Seed, 10),
			record.Duration.String(),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.Evaluations),
			strconv.Itoa(record.Retries),
			strconv.Itoa(record.TreeSize),
			strconv.FormatFloat(record.BestValue, 'f', -1, 64),
			strconv.Itoa(record.PathDepth),
			strconv.FormatBool(record.Degraded),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write run record row: %w", err)
		}
	}

	return nil
}
