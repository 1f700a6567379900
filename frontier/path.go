package frontier

import (
	"cmp"

	"github.com/katalvlaran/mazepath/maze"
)

// Path is an immutable node sequence stored as a parent link. The zero of
// *Path (nil) is the empty path.
type Path struct {
	node maze.Node
	prev *Path
	n    int
}

// Root returns the one-node path [n].
func Root(n maze.Node) *Path {
	return &Path{node: n, n: 1}
}

// Extend returns p followed by n. p is not modified.
func (p *Path) Extend(n maze.Node) *Path {
	return &Path{node: n, prev: p, n: p.Len() + 1}
}

// Last returns the final node. It panics on the empty path.
func (p *Path) Last() maze.Node { return p.node }

// Len returns the number of nodes.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return p.n
}

// Nodes returns a fresh slice from the first to the last node.
func (p *Path) Nodes() []maze.Node {
	out := make([]maze.Node, p.Len())
	for cur, i := p, p.Len()-1; cur != nil; cur, i = cur.prev, i-1 {
		out[i] = cur.node
	}

	return out
}

// Compare orders two paths lexicographically from their first node; a proper
// prefix sorts before its extensions. It returns -1, 0 or +1.
// Shared prefixes are detected by pointer identity, so comparing two
// siblings costs O(1).
func (p *Path) Compare(q *Path) int {
	byLen := cmp.Compare(p.Len(), q.Len())

	a, b := p, q
	for a.Len() > b.Len() {
		a = a.prev
	}
	for b.Len() > a.Len() {
		b = b.prev
	}

	// a and b now have equal length; the difference closest to the root wins.
	first := 0
	for a != b {
		if c := cmp.Compare(a.node, b.node); c != 0 {
			first = c
		}
		a, b = a.prev, b.prev
	}
	if first != 0 {
		return first
	}

	return byLen
}
