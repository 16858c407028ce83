package main

import (
	"fmt"

	"ponder/agent"
	"ponder/config"
	"ponder/heuristic"
	"ponder/metrics"
	"ponder/searcher"

	"github.com/spf13/cobra"
)

var (
	runConfigPath string
	runTask       string
	runIterations int
	runSeed       uint64
	runDepth      int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one search over the bundled heuristic capabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if runConfigPath != "" {
			loaded, err := config.Load(runConfigPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if runIterations > 0 {
			cfg.MaxIterations = runIterations
		}

		caps := heuristic.New(
			heuristic.WithSeed(runSeed),
			heuristic.WithMaxDepth(runDepth),
		)
		collector := metrics.NewCollector()
		options := append(cfg.Options(), searcher.WithCollector(collector))
		reasoner := agent.New(searcher.NewSearcher(caps, caps, options...), caps)

		answer, err := reasoner.Solve(cmd.Context(), runTask, heuristic.Root())
		if err != nil {
			return err
		}

		metric := collector.Complete()
		fmt.Println(answer.Text)
		fmt.Printf("value=%.3f depth=%d degraded=%v\n", answer.Value, len(answer.Path), answer.Degraded)
		fmt.Printf("run=%s iterations=%d nodes=%d evaluations=%d retries=%d duration=%s\n",
			metric.RunID, metric.Iterations, metric.TreeSize,
			metric.Evaluations, metric.Retries, metric.Duration)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to YAML search config")
	runCmd.Flags().StringVarP(&runTask, "task", "t", "demo task", "task description fed to the capabilities")
	runCmd.Flags().IntVarP(&runIterations, "iterations", "n", 0, "override the iteration budget")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "seed for the heuristic capabilities")
	runCmd.Flags().IntVar(&runDepth, "depth", heuristic.DefaultMaxDepth, "max depth of the heuristic task")
}
