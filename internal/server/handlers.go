package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/mazepath/internal/runner"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/search"
)

const requestIDHeader = "X-Request-ID"

// statusClientClosedRequest is the nginx convention for a client that went
// away before the response was written.
const statusClientClosedRequest = 499

// handleSearch handles POST /v1/search.
//
// Response:
//
//	200 OK: SearchResponse (found or not)
//	400 Bad Request: INVALID_REQUEST, UNKNOWN_STRATEGY
//	422 Unprocessable Entity: UNKNOWN_NODE
//	499 Client Closed Request: CLIENT_CLOSED_REQUEST
//	504 Gateway Timeout: SEARCH_TIMEOUT
func (s *Server) handleSearch(c *gin.Context) {
	logger := s.logger.With("request_id", requestID(c), "handler", "search")

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	if len(req.Adjacency) > s.cfg.Server.MaxNodes {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("maze has %d nodes, limit is %d", len(req.Adjacency), s.cfg.Server.MaxNodes),
			Code:  "INVALID_REQUEST",
		})
		return
	}

	name := req.Strategy
	if name == "" {
		name = s.cfg.Search.Strategy
	}
	strategy, err := search.ParseStrategy(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "UNKNOWN_STRATEGY"})
		return
	}

	m, err := s.buildMaze(req)
	if err != nil {
		status, code := http.StatusBadRequest, "INVALID_REQUEST"
		if errors.Is(err, maze.ErrUnknownNode) {
			status, code = http.StatusUnprocessableEntity, "UNKNOWN_NODE"
		}
		c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
		return
	}

	rep, err := s.runner.Run(c.Request.Context(), m, runner.Request{
		Strategy: strategy,
		Start:    req.Start,
		Goal:     req.Goal,
		Limit:    req.Limit,
	})
	if err != nil {
		status, code := http.StatusInternalServerError, "SEARCH_FAILED"
		switch {
		case errors.Is(err, maze.ErrUnknownNode):
			status, code = http.StatusUnprocessableEntity, "UNKNOWN_NODE"
		case errors.Is(err, context.DeadlineExceeded):
			status, code = http.StatusGatewayTimeout, "SEARCH_TIMEOUT"
		case errors.Is(err, context.Canceled):
			logger.Info("search cancelled by client", "strategy", string(strategy))
			c.JSON(statusClientClosedRequest, ErrorResponse{Error: err.Error(), Code: "CLIENT_CLOSED_REQUEST"})
			return
		case errors.Is(err, search.ErrMissingLimit):
			status, code = http.StatusBadRequest, "INVALID_REQUEST"
		}
		logger.Warn("search failed", "strategy", string(strategy), "error", err)
		c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		ID:                 rep.ID,
		Strategy:           string(rep.Strategy),
		Found:              rep.Found(),
		Path:               rep.Path,
		Explored:           rep.Explored,
		ExploredIterations: rep.Iterations,
		Steps:              rep.Steps,
		Limit:              rep.Limit,
		CeilingReached:     rep.CeilingReached,
		DurationMs:         float64(rep.Duration.Microseconds()) / 1000,
	})
}

// buildMaze turns the request adjacency into a validated Maze.
func (s *Server) buildMaze(req SearchRequest) (*maze.Maze, error) {
	entries := make([]maze.Entry, len(req.Adjacency))
	for i, nbrs := range req.Adjacency {
		entries[i] = maze.Entry{Node: maze.Node(i), Neighbors: nbrs}
	}
	m, err := maze.New(req.Size, entries)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// requestID returns the X-Request-ID of the request, generating one when the
// client sent none, and echoes it on the response.
func requestID(c *gin.Context) string {
	if id := c.GetString(requestIDHeader); id != "" {
		return id
	}
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDHeader, id)
	c.Header(requestIDHeader, id)

	return id
}

// accessLog logs one line per request at info level.
func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := requestID(c)
		began := time.Now()
		c.Next()
		logger.Info("request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(began))
	}
}
