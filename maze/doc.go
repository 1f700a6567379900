// Package maze provides the read-only graph consumed by the search strategies:
// an adjacency relation over integer nodes plus a coordinate-based heuristic.
//
// What
//
//   - Maze maps every Node to an ordered list of neighbor Nodes.
//   - Heuristic(a, b) is the Manhattan distance between the grid coordinates
//     of a and b, decomposed as (a div size, a mod size).
//   - Parse reads the plain-text maze format (side length, one neighbor line
//     per node, goal node).
//   - FromGrid builds a Maze from a square grid of open and wall cells.
//
// Why
//
//   - Every search strategy needs exactly two things from a graph: ordered
//     neighbors and an estimate of the remaining distance. Maze provides both
//     without any mutable state, so concurrent searches may share one value.
//
// Heuristic
//
//	With unit edge costs the Manhattan distance is admissible and consistent on
//	grid mazes, which is what A* needs for its pop-time goal check to return a
//	shortest path. A Maze built with size 0 falls back to the zero heuristic,
//	turning Greedy into an unordered search and A* into uniform-cost search.
//
// Construction policy
//
//	Duplicate node keys are rejected with ErrDuplicateNode. WithOverwrite
//	restores the permissive "last write wins" behavior.
//
// Errors
//
//   - ErrBadSize        negative side length, or a RandomGrid side above MaxSide.
//   - ErrDuplicateNode  node key supplied twice (unless WithOverwrite).
//   - ErrUnknownNode    node has no adjacency entry.
//   - ErrSyntax         malformed text input.
//   - ErrTruncated      text input ended early.
//   - ErrEmptyGrid      FromGrid received no cells.
//   - ErrNonSquare      FromGrid received a non-square grid.
package maze
