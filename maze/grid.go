package maze

import "fmt"

// gridOffsets lists the 4-connected moves as (drow, dcol): N, E, S, W.
var gridOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// FromGrid builds a Maze from a square grid where cells[r][c] ≥ 1 is open and
// anything else is a wall. Open cells are linked to their open orthogonal
// neighbors; walls get an empty neighbor list so the graph stays closed.
// Node ids are row-major: r*n + c.
// Returns ErrEmptyGrid or ErrNonSquare on bad input.
// Complexity: O(n²).
func FromGrid(cells [][]int, opts ...Option) (*Maze, error) {
	n := len(cells)
	if n == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	for r, row := range cells {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(row), n)
		}
	}

	open := func(r, c int) bool {
		return r >= 0 && r < n && c >= 0 && c < n && cells[r][c] >= 1
	}

	entries := make([]Entry, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			e := Entry{Node: Node(r*n + c)}
			if open(r, c) {
				for _, d := range gridOffsets {
					nr, nc := r+d[0], c+d[1]
					if open(nr, nc) {
						e.Neighbors = append(e.Neighbors, Node(nr*n+nc))
					}
				}
			}
			entries = append(entries, e)
		}
	}

	return New(n, entries, opts...)
}
