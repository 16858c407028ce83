package main

import (
	"fmt"

	"ponder/experiments"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep [exploration|width]",
	Short: "Run a configuration sweep and write CSV records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "exploration":
			return experiments.RunExplorationSweep()
		case "width":
			return experiments.RunWidthSweep()
		default:
			return fmt.Errorf("unknown sweep %q (want exploration or width)", args[0])
		}
	},
}
