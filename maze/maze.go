package maze

import (
	"fmt"
	"slices"
)

// Maze is an immutable adjacency relation over Nodes. It is safe for
// concurrent use by any number of readers.
type Maze struct {
	size      int
	adj       map[Node][]Node
	heuristic HeuristicFunc
}

// New builds a Maze of the given grid side length from entries.
// Neighbor lists are deep-copied. Returns ErrBadSize for a negative size and
// ErrDuplicateNode when a node appears twice without WithOverwrite.
// Complexity: O(V + E).
func New(size int, entries []Entry, opts ...Option) (*Maze, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m := &Maze{
		size: size,
		adj:  make(map[Node][]Node, len(entries)),
	}
	for _, e := range entries {
		if _, dup := m.adj[e.Node]; dup && !o.overwrite {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, e.Node)
		}
		m.adj[e.Node] = slices.Clone(e.Neighbors)
	}

	switch {
	case o.heuristic != nil:
		m.heuristic = o.heuristic
	case size > 0:
		m.heuristic = m.manhattan
	default:
		m.heuristic = zeroHeuristic
	}

	return m, nil
}

// Size returns the grid side length (0 for non-grid graphs).
func (m *Maze) Size() int { return m.size }

// Len returns the number of nodes with an adjacency entry.
func (m *Maze) Len() int { return len(m.adj) }

// HasNode reports whether n has an adjacency entry.
func (m *Maze) HasNode(n Node) bool {
	_, ok := m.adj[n]
	return ok
}

// Nodes returns every node in ascending order.
func (m *Maze) Nodes() []Node {
	out := make([]Node, 0, len(m.adj))
	for n := range m.adj {
		out = append(out, n)
	}
	slices.Sort(out)

	return out
}

// Neighbors returns a copy of n's neighbor list in stored order.
// Returns ErrUnknownNode if n has no adjacency entry.
func (m *Maze) Neighbors(n Node) ([]Node, error) {
	nbrs, ok := m.adj[n]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, n)
	}

	return slices.Clone(nbrs), nil
}

// Heuristic estimates the distance from a to b. For grid mazes this is the
// Manhattan distance between their coordinates.
func (m *Maze) Heuristic(a, b Node) int {
	return m.heuristic(a, b)
}

// Coordinate decomposes n into its (row, column) grid position.
// A non-grid maze (Size() == 0) places every node on row 0.
func (m *Maze) Coordinate(n Node) (row, col int) {
	if m.size == 0 {
		return 0, int(n)
	}
	return int(n) / m.size, int(n) % m.size
}

// Validate checks that every referenced neighbor is itself a key
// (the graph is closed). Returns ErrUnknownNode naming the first dangling
// reference in ascending node order.
func (m *Maze) Validate() error {
	for _, n := range m.Nodes() {
		for _, nb := range m.adj[n] {
			if _, ok := m.adj[nb]; !ok {
				return fmt.Errorf("%w: %d (neighbor of %d)", ErrUnknownNode, nb, n)
			}
		}
	}

	return nil
}

func (m *Maze) manhattan(a, b Node) int {
	ra, ca := m.Coordinate(a)
	rb, cb := m.Coordinate(b)

	return abs(ra-rb) + abs(ca-cb)
}

func zeroHeuristic(Node, Node) int { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
