package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/internal/runner"
	"github.com/katalvlaran/mazepath/maze"
)

func newCompareCmd(a *app) *cobra.Command {
	var start int
	cmd := &cobra.Command{
		Use:   "compare FILE",
		Short: "Run every strategy concurrently on a maze file and tabulate the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, goal, err := a.loadMaze(args[0])
			if err != nil {
				return err
			}
			r := runner.New(
				runner.WithLogger(a.logger),
				runner.WithTimeout(a.cfg.Search.Timeout),
				runner.WithMaxDepth(a.cfg.Search.MaxDepth),
				runner.WithWorkers(a.cfg.Search.Workers),
			)
			reports, err := r.Compare(cmd.Context(), m, maze.Node(start), goal)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), compareTable(reports))

			return nil
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "start node")

	return cmd
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func compareTable(reports []*runner.Report) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STRATEGY", "FOUND", "PATH LEN", "EXPLORED", "STEPS", "LIMIT", "TIME").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, rep := range reports {
		pathLen := "-"
		if rep.Found() {
			pathLen = strconv.Itoa(len(rep.Path))
		}
		limit := "-"
		if rep.Limit > 0 {
			limit = strconv.Itoa(rep.Limit)
		}
		t.Row(
			string(rep.Strategy),
			strconv.FormatBool(rep.Found()),
			pathLen,
			strconv.Itoa(rep.ExploredCount()),
			strconv.Itoa(rep.Steps),
			limit,
			rep.Duration.String(),
		)
	}

	return t.String()
}
