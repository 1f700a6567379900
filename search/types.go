// Package search defines the Graph contract, result types, functional
// options and sentinel errors shared by every strategy.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil Graph is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrMissingLimit is returned by DepthLimited when limit < 1.
	ErrMissingLimit = errors.New("search: depth limit must be at least 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrCeilingReached is returned by IterativeDeepening when the
	// caller-imposed WithMaxLimit ceiling is passed without finding the goal.
	ErrCeilingReached = errors.New("search: depth ceiling reached")

	// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Graph is what a strategy needs from the searched graph.
// *maze.Maze satisfies it.
type Graph interface {
	// Neighbors returns the adjacency list of n, or an error wrapping
	// maze.ErrUnknownNode. Strategies never modify the returned slice.
	Neighbors(n maze.Node) ([]maze.Node, error)
	// Heuristic estimates the remaining distance from a to b.
	Heuristic(a, b maze.Node) int
}

// Result is the outcome of a single-pass strategy.
//
//   - Path: start..goal inclusive; nil when the goal is unreachable and
//     empty (non-nil) when start == goal.
//   - Explored: nodes in the order they were first expanded.
//   - Steps: number of neighbor relaxations performed.
type Result struct {
	Path     []maze.Node
	Explored []maze.Node
	Steps    int
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return r.Path != nil }

// DeepeningResult is the outcome of IterativeDeepening.
//
//   - Explored: one explored record per depth iteration, in order.
//   - Steps: summed over all iterations.
//   - Limit: the last depth limit tried (0 when start == goal).
type DeepeningResult struct {
	Path     []maze.Node
	Explored [][]maze.Node
	Steps    int
	Limit    int
}

// Found reports whether a path was found.
func (r *DeepeningResult) Found() bool { return r.Path != nil }

// Strategy names a search algorithm.
type Strategy string

// Supported strategies.
const (
	StrategyBFS    Strategy = "bfs"
	StrategyDFS    Strategy = "dfs"
	StrategyDLS    Strategy = "dls"
	StrategyIDS    Strategy = "ids"
	StrategyUCS    Strategy = "ucs"
	StrategyGreedy Strategy = "greedy"
	StrategyAStar  Strategy = "astar"
)

// Strategies lists every Strategy: uninformed first, then informed.
func Strategies() []Strategy {
	return []Strategy{
		StrategyBFS, StrategyDFS, StrategyDLS, StrategyIDS,
		StrategyUCS, StrategyGreedy, StrategyAStar,
	}
}

// Informed reports whether s consults the heuristic.
func (s Strategy) Informed() bool {
	return s == StrategyGreedy || s == StrategyAStar
}

var strategyAliases = map[string]Strategy{
	"breadth-first":       StrategyBFS,
	"depth-first":         StrategyDFS,
	"depth-limited":       StrategyDLS,
	"iterative-deepening": StrategyIDS,
	"iddfs":               StrategyIDS,
	"uniform-cost":        StrategyUCS,
	"greedy-best-first":   StrategyGreedy,
	"gbfs":                StrategyGreedy,
	"a*":                  StrategyAStar,
	"a-star":              StrategyAStar,
}

// ParseStrategy resolves a case-insensitive name or alias.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if string(s) == key {
			return s, nil
		}
	}
	if s, ok := strategyAliases[key]; ok {
		return s, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds hooks and caller-imposed limits.
type Options struct {
	// Ctx is checked once per frontier pop. The engine itself never blocks;
	// a deadline here is how callers bound the latency of a search.
	Ctx context.Context

	// OnExpand is called when a node enters the explored record.
	OnExpand func(n maze.Node)

	// OnRelax is called once per neighbor relaxation (each counted step).
	OnRelax func(from, to maze.Node)

	// MaxLimit caps IterativeDeepening. 0 means unbounded, in which case an
	// unreachable goal makes IterativeDeepening run until Ctx is done.
	MaxLimit int

	// Logger receives a debug record per finished search.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns background context, no-op hooks, no ceiling and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(maze.Node) {},
		OnRelax:  func(_, _ maze.Node) {},
		MaxLimit: 0,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback for every expanded node.
func WithOnExpand(fn func(n maze.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback for every relaxed edge.
func WithOnRelax(fn func(from, to maze.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithMaxLimit bounds IterativeDeepening to depth limits 1..d.
//
//	d > 0: stop with ErrCeilingReached after limit d
//	d == 0: unbounded
//	d < 0: invalid option → ErrOptionViolation
func WithMaxLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxLimit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxLimit = d
	}
}

// WithLogger sets the logger for debug traces. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
