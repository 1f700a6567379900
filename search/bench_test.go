package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

// BenchmarkStrategies runs each single-pass strategy corner to corner on a
// 64×64 grid with 75% open cells.
func BenchmarkStrategies(b *testing.B) {
	const n = 64
	m := randomMaze(b, rand.New(rand.NewSource(1)), n, 0.75)
	goal := maze.Node(n*n - 1)

	for s, run := range singlePass {
		b.Run(string(s), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = run(m, 0, goal)
			}
		})
	}
}

// BenchmarkIterativeDeepening_OpenGrid measures the repeated passes on an
// open 16×16 grid.
func BenchmarkIterativeDeepening_OpenGrid(b *testing.B) {
	const n = 16
	cells := make([][]int, n)
	for r := range cells {
		cells[r] = make([]int, n)
		for c := range cells[r] {
			cells[r][c] = 1
		}
	}
	m, err := maze.FromGrid(cells)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.IterativeDeepening(m, 0, maze.Node(n*n-1), search.WithMaxLimit(n*n))
	}
}
