// Package mazepath is a path-finding engine for grid mazes: seven classic
// search strategies over a shared loop, with a CLI and an HTTP service on
// top.
//
// What is in the box?
//
//	• Uninformed search: BFS, DFS, depth-limited, iterative deepening, uniform cost
//	• Informed search: greedy best-first and A* with a Manhattan heuristic
//	• Deterministic results: explored order, step counts and tie-breaks are stable
//	• Hooks (OnExpand, OnRelax), context cancellation and depth ceilings
//
// Packages:
//
//	maze/               Node, Maze adjacency, text format, grid and random builders
//	frontier/           persistent Path, FIFO queue, LIFO stack, min-heap
//	search/             the strategies and their shared walker
//	internal/config     YAML configuration
//	internal/runner     strategy dispatch, timeouts, concurrent comparison
//	internal/server     gin HTTP API
//	internal/telemetry  slog logger and Prometheus metrics
//	cmd/mazepath        solve, compare, generate and serve commands
//
// Quick ASCII example:
//
//	0───1
//	│   │
//	2───3
//
//	BFS from 0 to 3 returns path [0 1 3], explored [0 1] and 3 steps.
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
package mazepath
