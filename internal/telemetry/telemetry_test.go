package telemetry_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/internal/telemetry"
)

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := telemetry.NewLogger("warn", "text", &buf)
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=1")

	buf.Reset()
	l = telemetry.NewLogger("bogus", "text", &buf)
	l.Debug("debug dropped")
	l.Info("info kept")
	assert.NotContains(t, buf.String(), "debug dropped")
	assert.Contains(t, buf.String(), "info kept")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	telemetry.NewLogger("debug", "JSON", &buf).Debug("hello", "steps", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, float64(3), rec["steps"])
}

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)

	m.Observe("bfs", telemetry.OutcomeFound, 3, 2, time.Millisecond)
	m.Observe("bfs", telemetry.OutcomeFound, 5, 4, time.Millisecond)
	m.Observe("ids", telemetry.OutcomeCeiling, 9, 7, time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "mazepath_searches_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "two label sets")

	srv := httptest.NewServer(telemetry.Handler(reg))
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), `mazepath_searches_total{outcome="found",strategy="bfs"} 2`)
	assert.Contains(t, body.String(), `mazepath_search_steps_count{strategy="ids"} 1`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *telemetry.Metrics
	assert.NotPanics(t, func() {
		m.Observe("bfs", telemetry.OutcomeFound, 1, 1, time.Second)
	})
}
