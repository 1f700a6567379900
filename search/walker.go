package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/maze"
)

// discipline describes how one strategy drives the shared search loop.
// T is the frontier element: a bare *frontier.Path, a depth-tagged path, or
// a prioritized frontier.Entry.
type discipline[T any] struct {
	// frontier stores pending candidates in strategy order.
	frontier frontier.Frontier[T]
	// path extracts the candidate path from an element.
	path func(T) *frontier.Path
	// child builds the element for ext, the parent's path extended by one node.
	child func(parent T, ext *frontier.Path) T
	// prune discards a popped element that is not yet explored (depth limit).
	prune func(T) bool
	// goalOnPop accepts the goal only when it is popped; otherwise the goal is
	// accepted the moment it is generated as a neighbor.
	goalOnPop bool
	// descending expands neighbors in descending order, so a stack pops
	// them in ascending order.
	descending bool
}

// walker encapsulates the mutable state of one search invocation.
type walker struct {
	graph    Graph
	goal     maze.Node
	opts     Options
	explored map[maze.Node]struct{}
	order    []maze.Node
	steps    int
	scratch  []maze.Node
}

func newWalker(g Graph, goal maze.Node, o Options) *walker {
	return &walker{
		graph:    g,
		goal:     goal,
		opts:     o,
		explored: make(map[maze.Node]struct{}),
		order:    make([]maze.Node, 0),
	}
}

// walk runs the shared loop: pop, discard explored or pruned entries, check
// the goal (pop-time strategies), mark explored, relax every unexplored
// neighbor, check the goal (push-time strategies), push. It returns the path
// to the goal, or nil when the frontier is exhausted.
func walk[T any](w *walker, seed T, d discipline[T]) (*frontier.Path, error) {
	fr := d.frontier
	fr.Push(seed)

	for !fr.IsEmpty() {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		item, err := fr.Pop()
		if err != nil {
			return nil, err
		}
		cur := d.path(item)
		node := cur.Last()

		// lazy deletion: stale duplicates and over-deep entries are dropped here
		if w.isExplored(node) || (d.prune != nil && d.prune(item)) {
			continue
		}
		if d.goalOnPop && node == w.goal {
			return cur, nil
		}
		w.markExplored(node)

		nbrs, err := w.neighbors(node, d.descending)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs {
			if w.isExplored(nb) {
				continue
			}
			ext := cur.Extend(nb)
			w.steps++
			w.opts.OnRelax(node, nb)

			if !d.goalOnPop && nb == w.goal {
				return ext, nil
			}
			fr.Push(d.child(item, ext))
		}
	}

	return nil, nil
}

func (w *walker) isExplored(n maze.Node) bool {
	_, ok := w.explored[n]
	return ok
}

func (w *walker) markExplored(n maze.Node) {
	w.explored[n] = struct{}{}
	w.order = append(w.order, n)
	w.opts.OnExpand(n)
}

// neighbors returns n's adjacency list sorted ascending (or descending) in a
// scratch buffer that is reused across expansions.
func (w *walker) neighbors(n maze.Node, descending bool) ([]maze.Node, error) {
	nbrs, err := w.graph.Neighbors(n)
	if err != nil {
		return nil, fmt.Errorf("search: expand %d: %w", n, err)
	}
	w.scratch = append(w.scratch[:0], nbrs...)
	slices.Sort(w.scratch)
	if descending {
		slices.Reverse(w.scratch)
	}

	return w.scratch, nil
}

// finish packages the walker state into a Result and logs it.
func (w *walker) finish(s Strategy, p *frontier.Path, err error) (*Result, error) {
	res := &Result{Explored: w.order, Steps: w.steps}
	if p != nil {
		res.Path = p.Nodes()
	}
	w.opts.Logger.Debug("search finished",
		"strategy", string(s),
		"found", res.Found(),
		"path_len", len(res.Path),
		"explored", len(res.Explored),
		"steps", res.Steps,
		"error", err)

	return res, err
}

// trivial is the result for start == goal.
func trivial() *Result {
	return &Result{Path: []maze.Node{}, Explored: []maze.Node{}, Steps: 0}
}

// prepare validates the shared inputs of every strategy.
func prepare(g Graph, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	return buildOptions(opts)
}

func pathOf(p *frontier.Path) *frontier.Path { return p }

func entryPath(e frontier.Entry) *frontier.Path { return e.Path }
