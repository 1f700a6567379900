package search

import (
	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/maze"
)

// UniformCost runs uniform-cost search: a min-priority frontier keyed by the
// number of edges from start. The goal is accepted only when popped as the
// minimum entry, so the returned path is a shortest one. Equal costs are
// broken by comparing paths lexicographically.
func UniformCost(g Graph, start, goal maze.Node, opts ...Option) (*Result, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	if start == goal {
		return trivial(), nil
	}

	w := newWalker(g, goal, o)
	p, err := walk(w, frontier.Entry{Priority: 0, Path: frontier.Root(start)}, discipline[frontier.Entry]{
		frontier: frontier.NewHeap(64),
		path:     entryPath,
		child: func(parent frontier.Entry, ext *frontier.Path) frontier.Entry {
			return frontier.Entry{Priority: parent.Priority + 1, Path: ext}
		},
		goalOnPop: true,
	})

	return w.finish(StrategyUCS, p, err)
}

// Greedy runs greedy best-first search: a min-priority frontier keyed only by
// Heuristic(node, goal). The goal is accepted when generated. The path is not
// necessarily the shortest.
func Greedy(g Graph, start, goal maze.Node, opts ...Option) (*Result, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	if start == goal {
		return trivial(), nil
	}

	w := newWalker(g, goal, o)
	seed := frontier.Entry{Priority: g.Heuristic(start, goal), Path: frontier.Root(start)}
	p, err := walk(w, seed, discipline[frontier.Entry]{
		frontier: frontier.NewHeap(64),
		path:     entryPath,
		child: func(_ frontier.Entry, ext *frontier.Path) frontier.Entry {
			return frontier.Entry{Priority: g.Heuristic(ext.Last(), goal), Path: ext}
		},
	})

	return w.finish(StrategyGreedy, p, err)
}

// AStar runs A* search: a min-priority frontier keyed by cost + heuristic.
//
// The priority of a child is derived from its parent's priority:
//
//	child = parent − h(parent, goal) + 1 + h(child, goal)
//
// which equals (edges so far) + h(child, goal). The goal is accepted only
// when popped, so with an admissible, consistent heuristic the returned path
// is a shortest one.
func AStar(g Graph, start, goal maze.Node, opts ...Option) (*Result, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	if start == goal {
		return trivial(), nil
	}

	w := newWalker(g, goal, o)
	seed := frontier.Entry{Priority: g.Heuristic(start, goal), Path: frontier.Root(start)}
	p, err := walk(w, seed, discipline[frontier.Entry]{
		frontier: frontier.NewHeap(64),
		path:     entryPath,
		child: func(parent frontier.Entry, ext *frontier.Path) frontier.Entry {
			f := parent.Priority - g.Heuristic(parent.Path.Last(), goal) + 1 + g.Heuristic(ext.Last(), goal)
			return frontier.Entry{Priority: f, Path: ext}
		},
		goalOnPop: true,
	})

	return w.finish(StrategyAStar, p, err)
}
