package search_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

// ExampleBFS searches the 2×2 square 0-1 / 2-3 from corner to corner.
// Ties between [0 1 3] and [0 2 3] go to the ascending neighbor.
func ExampleBFS() {
	m, _ := maze.New(2, []maze.Entry{
		{Node: 0, Neighbors: []maze.Node{1, 2}},
		{Node: 1, Neighbors: []maze.Node{0, 3}},
		{Node: 2, Neighbors: []maze.Node{0, 3}},
		{Node: 3, Neighbors: []maze.Node{1, 2}},
	})
	res, err := search.BFS(m, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Explored, res.Steps)
	// Output:
	// [0 1 3] [0 1] 3
}

// ExampleAStar runs A* with the Manhattan heuristic around a wall.
func ExampleAStar() {
	m, _ := maze.FromGrid([][]int{
		{1, 1, 1, 1},
		{0, 0, 1, 0},
		{1, 1, 1, 1},
		{1, 0, 0, 1},
	})
	res, _ := search.AStar(m, 0, 12)
	fmt.Println("path:", res.Path)
	fmt.Println("explored:", len(res.Explored), "steps:", res.Steps)
	// Output:
	// path: [0 1 2 6 10 9 8 12]
	// explored: 7 steps: 9
}

// ExampleIterativeDeepening shows one explored record per depth limit.
func ExampleIterativeDeepening() {
	m, _ := maze.FromGrid([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	res, _ := search.IterativeDeepening(m, 0, 8, search.WithMaxLimit(9))
	fmt.Println(res.Path, res.Limit, res.Steps)
	for i, rec := range res.Explored {
		fmt.Println(i+1, rec)
	}
	// Output:
	// [0 1 2 5 8] 4 24
	// 1 [0]
	// 2 [0 1 3]
	// 3 [0 1 2 4 3 6]
	// 4 [0 1 2 5]
}

// ExampleUniformCost shows that an unreachable goal is a result, not an error.
func ExampleUniformCost() {
	m, _ := maze.New(2, []maze.Entry{
		{Node: 0, Neighbors: []maze.Node{1}},
		{Node: 1, Neighbors: []maze.Node{0}},
		{Node: 2, Neighbors: []maze.Node{3}},
		{Node: 3, Neighbors: []maze.Node{2}},
	})
	res, err := search.UniformCost(m, 0, 3)
	fmt.Println(res.Found(), res.Path == nil, res.Explored, res.Steps, err)
	// Output:
	// false true [0 1] 1 <nil>
}
