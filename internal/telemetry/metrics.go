package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcome labels.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeCeiling     = "ceiling"
	OutcomeTimeout     = "timeout"
	OutcomeError       = "error"
)

// Metrics holds the search collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	searches *prometheus.CounterVec
	steps    *prometheus.HistogramVec
	explored *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the search collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mazepath_searches_total",
			Help: "Searches by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		steps: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mazepath_search_steps",
			Help:    "Neighbor relaxations per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"strategy"}),
		explored: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mazepath_search_explored_nodes",
			Help:    "Nodes expanded per search (summed over iterations)",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"strategy"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mazepath_search_duration_seconds",
			Help:    "Search wall-clock duration",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"strategy"}),
	}
}

// Observe records one finished search.
func (m *Metrics) Observe(strategy, outcome string, steps, explored int, d time.Duration) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(strategy, outcome).Inc()
	m.steps.WithLabelValues(strategy).Observe(float64(steps))
	m.explored.WithLabelValues(strategy).Observe(float64(explored))
	m.duration.WithLabelValues(strategy).Observe(d.Seconds())
}

// Handler exposes g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
