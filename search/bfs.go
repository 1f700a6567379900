package search

import (
	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/maze"
)

// BFS runs breadth-first search from start to goal.
//
// Paths are queued FIFO and neighbors are expanded in ascending order. The
// goal is accepted as soon as it is generated as a neighbor, before it is
// ever enqueued, so the returned path has the fewest edges.
//
// Returns ErrGraphNil, ErrOptionViolation, a wrapped maze.ErrUnknownNode, or
// the context error. On an error the partial Result is still returned.
func BFS(g Graph, start, goal maze.Node, opts ...Option) (*Result, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	if start == goal {
		return trivial(), nil
	}

	w := newWalker(g, goal, o)
	p, err := walk(w, frontier.Root(start), discipline[*frontier.Path]{
		frontier: frontier.NewQueue[*frontier.Path](64),
		path:     pathOf,
		child:    func(_ *frontier.Path, ext *frontier.Path) *frontier.Path { return ext },
	})

	return w.finish(StrategyBFS, p, err)
}
