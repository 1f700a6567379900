// Package search finds a path between two nodes of a Graph using one of seven
// interchangeable strategies.
//
// What
//
//   - Uninformed: BFS, DFS, DepthLimited, IterativeDeepening, UniformCost.
//   - Informed:   Greedy (best-first by heuristic), AStar (cost + heuristic).
//   - Every strategy returns the path (start..goal inclusive), the explored
//     record in first-expansion order, and the number of relaxation steps.
//
// Shared loop
//
//	All strategies run one skeleton parameterized by a frontier.Frontier and
//	a small discipline: how to derive a child's priority or depth, whether
//	to check the goal when a neighbor is generated (BFS, DFS, DepthLimited,
//	Greedy) or when a path is popped (UniformCost, AStar), and the neighbor
//	order (ascending, or descending for the stack-based strategies so that
//	they pop in ascending order).
//
//	 1. start == goal returns an empty path, empty explored record, 0 steps.
//	 2. A node may sit in the frontier many times. A popped path whose last
//	    node is already explored is discarded (lazy deletion).
//	 3. A node enters the explored record once, when first expanded.
//	 4. Steps counts every relaxation of an unexplored neighbor, including
//	    the one that reaches the goal.
//	 5. DepthLimited also discards popped paths deeper than the limit.
//	 6. IterativeDeepening repeats DepthLimited with limits 1, 2, 3, ….
//	 7. An exhausted frontier yields Path == nil and a nil error: an
//	    unreachable goal is a valid outcome, not a failure.
//
// Determinism
//
//	Neighbors are sorted before expansion and priority ties are broken by
//	lexicographic path order, so repeating a search on the same Graph gives
//	the same path, explored record and step count.
//
// Concurrency
//
//	A search owns its frontier and explored record; the Graph is only read.
//	Any number of searches may run concurrently over one *maze.Maze.
//
// Termination
//
//	Every strategy except IterativeDeepening terminates on a finite graph.
//	IterativeDeepening has no internal depth ceiling; bound it with
//	WithMaxLimit or a context deadline via WithContext.
//
// Complexity (V = nodes, E = edges)
//
//   - BFS, DFS, DepthLimited: O(V + E) time, O(E) frontier entries.
//   - UniformCost, Greedy, AStar: O(E log E) time.
//   - IterativeDeepening: O(d·(V + E)) for a goal found at limit d.
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrOptionViolation   for invalid options (e.g. negative MaxLimit).
//   - ErrMissingLimit      DepthLimited with limit < 1.
//   - ErrCeilingReached    IterativeDeepening passed WithMaxLimit.
//   - maze.ErrUnknownNode  (wrapped) a node without adjacency entry was expanded.
//   - context errors       from WithContext.
package search
