package search

import (
	"fmt"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/maze"
)

// DFS runs depth-first search from start to goal.
//
// Paths are stacked LIFO. Neighbors are pushed in descending order so they
// are popped in ascending order. The goal is accepted when generated.
// The returned path is not necessarily the shortest.
func DFS(g Graph, start, goal maze.Node, opts ...Option) (*Result, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	if start == goal {
		return trivial(), nil
	}

	w := newWalker(g, goal, o)
	p, err := walk(w, frontier.Root(start), discipline[*frontier.Path]{
		frontier:   frontier.NewStack[*frontier.Path](64),
		path:       pathOf,
		child:      func(_ *frontier.Path, ext *frontier.Path) *frontier.Path { return ext },
		descending: true,
	})

	return w.finish(StrategyDFS, p, err)
}

// leveled is a stack element tagged with its depth; the start node is at
// depth 1.
type leveled struct {
	depth int
	path  *frontier.Path
}

// DepthLimited runs depth-first search that discards every popped path
// deeper than limit, treating it exactly like an already explored node.
// A path of depth d has d nodes, so the goal can be reached with at most
// limit edges (it is accepted when generated from a node at depth limit).
//
// Nodes are explored at most once, so a node first reached through a deep
// branch is not revisited through a shallower one: DepthLimited may miss a
// goal that lies within the limit.
//
// Returns ErrMissingLimit when limit < 1, in addition to the errors of BFS.
func DepthLimited(g Graph, start, goal maze.Node, limit int, opts ...Option) (*Result, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrMissingLimit, limit)
	}
	if start == goal {
		return trivial(), nil
	}

	return depthLimited(g, start, goal, limit, o)
}

func depthLimited(g Graph, start, goal maze.Node, limit int, o Options) (*Result, error) {
	w := newWalker(g, goal, o)
	p, err := walk(w, leveled{depth: 1, path: frontier.Root(start)}, discipline[leveled]{
		frontier: frontier.NewStack[leveled](64),
		path:     func(e leveled) *frontier.Path { return e.path },
		child: func(parent leveled, ext *frontier.Path) leveled {
			return leveled{depth: parent.depth + 1, path: ext}
		},
		prune:      func(e leveled) bool { return e.depth > limit },
		descending: true,
	})

	return w.finish(StrategyDLS, p, err)
}
