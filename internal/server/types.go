package server

import (
	"github.com/katalvlaran/mazepath/maze"
)

// SearchRequest is the body of POST /v1/search.
//
// Adjacency[i] is the neighbor list of node i. Size is the grid side used by
// the Manhattan heuristic; 0 selects the zero heuristic.
type SearchRequest struct {
	Size      int           `json:"size" binding:"min=0"`
	Adjacency [][]maze.Node `json:"adjacency" binding:"required,min=1"`
	Start     maze.Node     `json:"start"`
	Goal      maze.Node     `json:"goal"`
	// Strategy defaults to the configured search.strategy.
	Strategy string `json:"strategy"`
	// Limit is required for dls.
	Limit int `json:"limit"`
}

// SearchResponse is the body of a successful POST /v1/search.
type SearchResponse struct {
	ID       string      `json:"id"`
	Strategy string      `json:"strategy"`
	Found    bool        `json:"found"`
	Path     []maze.Node `json:"path"`
	// Explored is set for single-pass strategies.
	Explored []maze.Node `json:"explored,omitempty"`
	// ExploredIterations is set for iterative deepening.
	ExploredIterations [][]maze.Node `json:"explored_iterations,omitempty"`
	Steps              int           `json:"steps"`
	Limit              int           `json:"limit,omitempty"`
	CeilingReached     bool          `json:"ceiling_reached,omitempty"`
	DurationMs         float64       `json:"duration_ms"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
