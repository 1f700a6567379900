package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/internal/runner"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		strategy string
		start    int
		limit    int
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Search a maze file from --start to the goal stored in the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strategy") {
				strategy = a.cfg.Search.Strategy
			}
			s, err := search.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			m, goal, err := a.loadMaze(args[0])
			if err != nil {
				return err
			}

			r := runner.New(
				runner.WithLogger(a.logger),
				runner.WithTimeout(a.cfg.Search.Timeout),
				runner.WithMaxDepth(a.cfg.Search.MaxDepth),
			)
			rep, err := r.Run(cmd.Context(), m, runner.Request{
				Strategy: s,
				Start:    maze.Node(start),
				Goal:     goal,
				Limit:    limit,
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			printReport(cmd.OutOrStdout(), rep)

			return nil
		},
	}
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "bfs, dfs, dls, ids, ucs, greedy or astar (default search.strategy)")
	cmd.Flags().IntVar(&start, "start", 0, "start node")
	cmd.Flags().IntVar(&limit, "limit", 0, "depth limit for dls")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

func printReport(w io.Writer, rep *runner.Report) {
	fmt.Fprintf(w, "strategy: %s\n", rep.Strategy)
	if rep.Found() {
		fmt.Fprintf(w, "path:     %s\n", joinNodes(rep.Path))
	} else {
		fmt.Fprintln(w, "path:     none")
	}
	if rep.Iterations != nil {
		for i, it := range rep.Iterations {
			fmt.Fprintf(w, "explored: limit %d: %s\n", i+1, joinNodes(it))
		}
	} else {
		fmt.Fprintf(w, "explored: %s\n", joinNodes(rep.Explored))
	}
	fmt.Fprintf(w, "steps:    %d\n", rep.Steps)
	if rep.Limit > 0 {
		fmt.Fprintf(w, "limit:    %d\n", rep.Limit)
	}
	if rep.CeilingReached {
		fmt.Fprintln(w, "ceiling reached")
	}
}

func joinNodes(ns []maze.Node) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(int(n))
	}
	return strings.Join(parts, " ")
}
