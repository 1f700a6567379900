package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/maze"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		size    int
		density float64
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random grid maze in the text format read by solve",
		Long: `Write a random size×size grid maze to stdout. Each cell is open with
probability --density; the start (node 0) and goal (node size²-1) corners are
always open. The same --seed always produces the same maze.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			m, err := maze.Random(size, density, seed)
			if err != nil {
				return err
			}
			a.logger.Debug("maze generated", "size", size, "density", density, "seed", seed)
			if err := maze.Format(cmd.OutOrStdout(), m, maze.Node(size*size-1)); err != nil {
				return fmt.Errorf("write maze: %w", err)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 10, "grid side length")
	cmd.Flags().Float64Var(&density, "density", 0.7, "probability that a cell is open")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")

	return cmd
}
