// Package server exposes the search engine over HTTP with gin.
//
//	POST /v1/search  run one search on a maze sent in the body
//	GET  /metrics    Prometheus metrics
//	GET  /healthz    liveness
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/internal/runner"
	"github.com/katalvlaran/mazepath/internal/telemetry"
)

// Server wires the router, runner and metrics registry.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	runner *runner.Runner
	engine *gin.Engine
}

// New builds a Server from a validated configuration. Metrics are registered
// on a dedicated registry together with the Go and process collectors.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Server{
		cfg:    cfg,
		logger: logger,
		runner: runner.New(
			runner.WithLogger(logger),
			runner.WithMetrics(telemetry.NewMetrics(reg)),
			runner.WithTimeout(cfg.Search.Timeout),
			runner.WithMaxDepth(cfg.Search.MaxDepth),
		),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), accessLog(logger))
	engine.POST("/v1/search", s.handleSearch)
	engine.GET("/healthz", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(telemetry.Handler(reg)))
	s.engine = engine

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Serve accepts connections on l until ctx is done, then shuts down
// gracefully within Server.ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{Handler: s.engine}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(l) }()
	s.logger.Info("listening", "addr", l.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")

	return nil
}

// ListenAndServe listens on Server.Addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, l)
}
