// Package runner dispatches searches by strategy name, applies the configured
// bounds and records metrics. It is the glue between the search package and
// the CLI / HTTP front ends.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/internal/telemetry"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

// ErrMazeNil is returned when Run or Compare get a nil maze.
var ErrMazeNil = errors.New("runner: maze is nil")

// Request describes one search.
type Request struct {
	Strategy search.Strategy
	Start    maze.Node
	Goal     maze.Node
	// Limit is the depth limit for search.StrategyDLS; ignored otherwise.
	Limit int
}

// Report is the outcome of one search.
type Report struct {
	ID       string          `json:"id"`
	Strategy search.Strategy `json:"strategy"`
	// Path is nil when the goal is unreachable, empty when start == goal.
	Path []maze.Node `json:"path"`
	// Explored is the expansion order of single-pass strategies.
	Explored []maze.Node `json:"explored,omitempty"`
	// Iterations holds one explored record per depth for iterative deepening.
	Iterations [][]maze.Node `json:"iterations,omitempty"`
	Steps      int           `json:"steps"`
	// Limit is the depth limit used (DLS) or reached (IDS).
	Limit    int           `json:"limit,omitempty"`
	Duration time.Duration `json:"duration_ns"`
	// CeilingReached is set when iterative deepening stopped at its ceiling.
	CeilingReached bool `json:"ceiling_reached,omitempty"`
}

// Found reports whether a path was found.
func (r *Report) Found() bool { return r.Path != nil }

// ExploredCount is the number of expansions, summed over iterations.
func (r *Report) ExploredCount() int {
	n := len(r.Explored)
	for _, it := range r.Iterations {
		n += len(it)
	}
	return n
}

// Runner executes searches. It is safe for concurrent use.
type Runner struct {
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	timeout  time.Duration
	maxDepth int
	workers  int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records every run on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithTimeout bounds each search; d <= 0 disables the deadline.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

// WithMaxDepth caps iterative deepening. With 0 the ceiling is the number of
// nodes in the maze, beyond which no new path can appear.
func WithMaxDepth(d int) Option {
	return func(r *Runner) { r.maxDepth = d }
}

// WithWorkers bounds the strategies Compare runs at once; 0 means no bound.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// New returns a Runner with a discarding logger, no metrics and no timeout.
func New(opts ...Option) *Runner {
	r := &Runner{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes req on m. Start and goal must be nodes of m. A reached
// iterative-deepening ceiling is reported through Report.CeilingReached, not
// as an error. On timeout the partial report is returned with an error
// wrapping context.DeadlineExceeded.
func (r *Runner) Run(ctx context.Context, m *maze.Maze, req Request) (*Report, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	if !m.HasNode(req.Start) {
		return nil, fmt.Errorf("runner: start: %w: %d", maze.ErrUnknownNode, req.Start)
	}
	if !m.HasNode(req.Goal) {
		return nil, fmt.Errorf("runner: goal: %w: %d", maze.ErrUnknownNode, req.Goal)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	opts := []search.Option{search.WithContext(ctx), search.WithLogger(r.logger)}

	rep := &Report{ID: uuid.NewString(), Strategy: req.Strategy}
	began := time.Now()
	err := r.dispatch(m, req, rep, opts)
	rep.Duration = time.Since(began)

	if errors.Is(err, search.ErrCeilingReached) {
		rep.CeilingReached = true
		err = nil
	}
	outcome := outcomeOf(rep, err)
	r.metrics.Observe(string(req.Strategy), outcome, rep.Steps, rep.ExploredCount(), rep.Duration)
	r.logger.Info("search",
		"id", rep.ID,
		"strategy", string(req.Strategy),
		"outcome", outcome,
		"path_len", len(rep.Path),
		"steps", rep.Steps,
		"duration", rep.Duration)

	return rep, err
}

func (r *Runner) dispatch(m *maze.Maze, req Request, rep *Report, opts []search.Option) error {
	var (
		res *search.Result
		err error
	)
	switch req.Strategy {
	case search.StrategyBFS:
		res, err = search.BFS(m, req.Start, req.Goal, opts...)
	case search.StrategyDFS:
		res, err = search.DFS(m, req.Start, req.Goal, opts...)
	case search.StrategyDLS:
		rep.Limit = req.Limit
		res, err = search.DepthLimited(m, req.Start, req.Goal, req.Limit, opts...)
	case search.StrategyUCS:
		res, err = search.UniformCost(m, req.Start, req.Goal, opts...)
	case search.StrategyGreedy:
		res, err = search.Greedy(m, req.Start, req.Goal, opts...)
	case search.StrategyAStar:
		res, err = search.AStar(m, req.Start, req.Goal, opts...)
	case search.StrategyIDS:
		ceiling := r.maxDepth
		if ceiling <= 0 {
			ceiling = max(m.Len(), 1)
		}
		dr, derr := search.IterativeDeepening(m, req.Start, req.Goal,
			append(opts, search.WithMaxLimit(ceiling))...)
		if dr != nil {
			rep.Path, rep.Iterations, rep.Steps, rep.Limit = dr.Path, dr.Explored, dr.Steps, dr.Limit
		}
		return derr
	default:
		return fmt.Errorf("%w: %q", search.ErrUnknownStrategy, string(req.Strategy))
	}
	if res != nil {
		rep.Path, rep.Explored, rep.Steps = res.Path, res.Explored, res.Steps
	}
	return err
}

func outcomeOf(rep *Report, err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return telemetry.OutcomeTimeout
	case err != nil:
		return telemetry.OutcomeError
	case rep.Found():
		return telemetry.OutcomeFound
	case rep.CeilingReached:
		return telemetry.OutcomeCeiling
	default:
		return telemetry.OutcomeUnreachable
	}
}

// Compare runs every strategy from start to goal concurrently on the shared
// read-only maze and returns the reports in search.Strategies order.
// Depth-limited search uses the number of nodes as its limit. The first
// failing strategy cancels the others.
func (r *Runner) Compare(ctx context.Context, m *maze.Maze, start, goal maze.Node) ([]*Report, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	strategies := search.Strategies()
	reports := make([]*Report, len(strategies))

	g, gctx := errgroup.WithContext(ctx)
	if r.workers > 0 {
		g.SetLimit(r.workers)
	}
	for i, s := range strategies {
		i, s := i, s
		req := Request{Strategy: s, Start: start, Goal: goal}
		if s == search.StrategyDLS {
			req.Limit = max(m.Len(), 1)
		}
		g.Go(func() error {
			rep, err := r.Run(gctx, m, req)
			if err != nil {
				return fmt.Errorf("runner: %s: %w", s, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
