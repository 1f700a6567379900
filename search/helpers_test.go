package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

// runner adapts a single-pass strategy to a common signature.
type runner func(g search.Graph, start, goal maze.Node, opts ...search.Option) (*search.Result, error)

// singlePass lists every strategy that returns a flat explored record.
// DepthLimited runs with a limit large enough to never prune.
var singlePass = map[search.Strategy]runner{
	search.StrategyBFS:    search.BFS,
	search.StrategyDFS:    search.DFS,
	search.StrategyUCS:    search.UniformCost,
	search.StrategyGreedy: search.Greedy,
	search.StrategyAStar:  search.AStar,
	search.StrategyDLS: func(g search.Graph, s, t maze.Node, opts ...search.Option) (*search.Result, error) {
		return search.DepthLimited(g, s, t, 1<<20, opts...)
	},
}

// squareMaze is the 2×2 grid with edges 0-1, 0-2, 1-3, 2-3.
func squareMaze(t testing.TB) *maze.Maze {
	t.Helper()
	m, err := maze.New(2, []maze.Entry{
		{Node: 0, Neighbors: []maze.Node{1, 2}},
		{Node: 1, Neighbors: []maze.Node{0, 3}},
		{Node: 2, Neighbors: []maze.Node{0, 3}},
		{Node: 3, Neighbors: []maze.Node{1, 2}},
	})
	require.NoError(t, err)

	return m
}

// splitMaze has two components: {0,1} and {2,3}.
func splitMaze(t testing.TB) *maze.Maze {
	t.Helper()
	m, err := maze.New(2, []maze.Entry{
		{Node: 0, Neighbors: []maze.Node{1}},
		{Node: 1, Neighbors: []maze.Node{0}},
		{Node: 2, Neighbors: []maze.Node{3}},
		{Node: 3, Neighbors: []maze.Node{2}},
	})
	require.NoError(t, err)

	return m
}

// openMaze is a fully open 3×3 grid.
func openMaze(t testing.TB) *maze.Maze {
	t.Helper()
	m, err := maze.FromGrid([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	require.NoError(t, err)

	return m
}

// wallMaze is a 4×4 grid with walls:
//
//	. . . .
//	# # . #
//	. . . .
//	. # # .
func wallMaze(t testing.TB) *maze.Maze {
	t.Helper()
	m, err := maze.FromGrid([][]int{
		{1, 1, 1, 1},
		{0, 0, 1, 0},
		{1, 1, 1, 1},
		{1, 0, 0, 1},
	})
	require.NoError(t, err)

	return m
}

// randomMaze builds an n×n grid with roughly density open cells; the
// corners 0 and n²-1 are always open.
func randomMaze(t testing.TB, rng *rand.Rand, n int, density float64) *maze.Maze {
	t.Helper()
	cells, err := maze.RandomGrid(n, density, rng)
	require.NoError(t, err)
	m, err := maze.FromGrid(cells)
	require.NoError(t, err)

	return m
}

// requireWalk asserts path is a contiguous walk from start to goal in m.
func requireWalk(t *testing.T, m *maze.Maze, path []maze.Node, start, goal maze.Node) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		nbrs, err := m.Neighbors(path[i-1])
		require.NoError(t, err)
		require.Contains(t, nbrs, path[i], "step %d: %d→%d is not an edge", i, path[i-1], path[i])
	}
}

// requireUnique asserts no node was explored twice.
func requireUnique(t *testing.T, explored []maze.Node) {
	t.Helper()
	seen := make(map[maze.Node]bool, len(explored))
	for _, n := range explored {
		require.False(t, seen[n], "node %d explored twice", n)
		seen[n] = true
	}
}
