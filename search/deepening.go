package search

import (
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// IterativeDeepening runs DepthLimited with limits 1, 2, 3, … until one
// iteration finds the goal. Each iteration's explored record is appended to
// Explored and step counts are summed. Limit is the first limit at which
// DepthLimited succeeded; the returned path has at most Limit edges (it can
// be shorter, since each iteration explores every node at most once).
//
// Without WithMaxLimit there is no internal ceiling: on an unreachable goal
// the loop only ends when the context is done. With WithMaxLimit(d) the
// search stops after limit d and returns the partial DeepeningResult together
// with ErrCeilingReached.
func IterativeDeepening(g Graph, start, goal maze.Node, opts ...Option) (*DeepeningResult, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	res := &DeepeningResult{Explored: [][]maze.Node{}}
	if start == goal {
		res.Path = []maze.Node{}
		return res, nil
	}

	for limit := 1; ; limit++ {
		if o.MaxLimit > 0 && limit > o.MaxLimit {
			return res, fmt.Errorf("%w: no path within %d", ErrCeilingReached, o.MaxLimit)
		}

		r, err := depthLimited(g, start, goal, limit, o)
		res.Explored = append(res.Explored, r.Explored)
		res.Steps += r.Steps
		res.Limit = limit
		if err != nil {
			return res, err
		}
		if r.Found() {
			res.Path = r.Path
			o.Logger.Debug("iterative deepening finished",
				"limit", limit, "steps", res.Steps, "iterations", len(res.Explored))
			return res, nil
		}
	}
}
