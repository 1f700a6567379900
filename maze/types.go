// Package maze defines the Node and Entry types, construction options,
// and sentinel errors.
package maze

import "errors"

// Sentinel errors for maze construction and lookup.
var (
	// ErrBadSize indicates a negative grid side length, or one above MaxSide.
	ErrBadSize = errors.New("maze: grid size out of range")

	// ErrDuplicateNode indicates the same node key was supplied twice.
	ErrDuplicateNode = errors.New("maze: duplicate node")

	// ErrUnknownNode indicates a node without an adjacency entry.
	ErrUnknownNode = errors.New("maze: unknown node")

	// ErrSyntax indicates a malformed line in the text format.
	ErrSyntax = errors.New("maze: syntax error")

	// ErrTruncated indicates the text input ended before the goal line.
	ErrTruncated = errors.New("maze: unexpected end of input")

	// ErrEmptyGrid indicates FromGrid received no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one cell")

	// ErrNonSquare indicates FromGrid received rows of the wrong length.
	ErrNonSquare = errors.New("maze: grid must be square")

	// ErrBadDensity indicates an open-cell probability outside [0, 1].
	ErrBadDensity = errors.New("maze: density must be within [0, 1]")

	// ErrNeedRand indicates RandomGrid needs a random source for 0 < density < 1.
	ErrNeedRand = errors.New("maze: random source is required")
)

// MaxSide is the largest grid side accepted by Parse and RandomGrid.
const MaxSide = 1 << 14

// Node identifies a maze cell. Grid mazes use indices in [0, size²).
type Node int

// Entry pairs a node with its ordered neighbor list.
type Entry struct {
	Node      Node
	Neighbors []Node
}

// HeuristicFunc estimates the remaining distance between two nodes.
// It must never return a negative value.
type HeuristicFunc func(a, b Node) int

// Option configures Maze construction.
type Option func(*options)

type options struct {
	overwrite bool
	heuristic HeuristicFunc
}

// WithOverwrite lets a later Entry for the same node replace an earlier one
// instead of failing with ErrDuplicateNode.
func WithOverwrite() Option {
	return func(o *options) {
		o.overwrite = true
	}
}

// WithHeuristic installs a custom heuristic. A nil fn is ignored.
func WithHeuristic(fn HeuristicFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.heuristic = fn
		}
	}
}
