// Package frontier provides the storage disciplines behind every search
// strategy: a persistent Path type and three Frontier implementations.
//
// What
//
//   - Path:  immutable, parent-linked node sequence. Extend is O(1) and
//     shares the prefix, so many frontier entries can reference one branch.
//   - Queue: FIFO order (breadth-first search).
//   - Stack: LIFO order (depth-first and depth-limited search).
//   - Heap:  min-priority order over Entry{Priority, Path} (uniform-cost,
//     greedy best-first and A*).
//
// Tie-break
//
//	Heap orders entries by Priority and, on equal priority, by comparing the
//	Paths lexicographically from the start node (a proper prefix sorts first).
//	This ordering is part of the observable result: it decides which of two
//	equally good paths is returned and which nodes are explored first, and it
//	makes every search fully deterministic.
//
// Lazy deletion
//
//	No Frontier supports decrease-key or removal. Strategies push duplicates
//	and discard stale entries when they are popped. Heap.Find is a linear,
//	diagnostic-only scan.
//
// Errors
//
//   - ErrEmpty: Pop on an empty Frontier. Strategies check IsEmpty first, so
//     this indicates an implementation bug when it surfaces.
package frontier

import "errors"

// ErrEmpty is returned by Pop on an empty Frontier.
var ErrEmpty = errors.New("frontier: pop from empty frontier")

// Frontier is the capability every search discipline provides.
type Frontier[T any] interface {
	// Push inserts x.
	Push(x T)
	// Pop removes and returns the next element, or ErrEmpty.
	Pop() (T, error)
	// Len returns the number of stored elements.
	Len() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
}
