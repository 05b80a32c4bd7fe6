package infrastructure

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsonpatricio/aula-unifor-22112024/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitializeOTel_Defaults(t *testing.T) {
	providers, err := InitializeOTel(nil, discardLogger())
	require.NoError(t, err)
	require.NotNil(t, providers)

	// defaults: metrics on, tracing off
	assert.Nil(t, providers.TracerProvider)
	assert.NotNil(t, providers.Tracer)
	assert.NotNil(t, providers.MeterProvider)
	assert.NotNil(t, providers.PrometheusHTTP)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, providers.Shutdown(ctx))
}

func TestInitializeOTel_Disabled(t *testing.T) {
	cfg := OTelConfigFrom(config.TelemetryConfig{
		EnableMetrics:  false,
		EnableTracing:  false,
		TraceExporter:  "none",
		MetricExporter: "none",
	})

	providers, err := InitializeOTel(cfg, discardLogger())
	require.NoError(t, err)
	assert.Nil(t, providers.MeterProvider)
	assert.Nil(t, providers.PrometheusHTTP)
	assert.NotNil(t, providers.Meter, "a no-op meter is always available")

	metrics, err := CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)
	RecordRecompute(context.Background(), metrics, 3, time.Millisecond, true, true)
}

func TestInitializeOTel_UnsupportedExporter(t *testing.T) {
	cfg := OTelConfigFrom(config.Default().Telemetry)
	cfg.MetricExporter = "otlp"

	_, err := InitializeOTel(cfg, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported metric exporter")
}

func TestBusinessMetrics_ExposedOnPrometheus(t *testing.T) {
	providers, err := InitializeOTel(OTelConfigFrom(config.Default().Telemetry), discardLogger())
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	metrics, err := CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)

	ctx := context.Background()
	RecordRecompute(ctx, metrics, 42, 5*time.Millisecond, true, false)
	RecordLoad(ctx, metrics, 100, map[string]int{"missing_salary": 2, "invalid_salary": 0})

	rec := httptest.NewRecorder()
	providers.PrometheusHTTP.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "dashboard_recompute_total")
	assert.Contains(t, body, "dashboard_recompute_duration_seconds")
	assert.Contains(t, body, "dataset_rows_loaded")
	assert.Contains(t, body, `reason="missing_salary"`)
	assert.NotContains(t, body, `reason="invalid_salary"`)
}

func TestInitializeOTel_StdoutTracing(t *testing.T) {
	cfg := OTelConfigFrom(config.Default().Telemetry)
	cfg.EnableTracing = true
	cfg.TraceExporter = "stdout"
	cfg.EnableMetrics = false

	var logs bytes.Buffer
	providers, err := InitializeOTel(cfg, slog.New(slog.NewJSONHandler(&logs, nil)))
	require.NoError(t, err)
	require.NotNil(t, providers.TracerProvider)
	assert.Contains(t, logs.String(), "Tracing initialized")

	assert.NoError(t, providers.Shutdown(context.Background()))
}

func TestNoopBusinessMetrics(t *testing.T) {
	m := NoopBusinessMetrics()
	require.NotNil(t, m)
	RecordLoad(context.Background(), m, 1, map[string]int{"missing_team": 1})
	RecordRecompute(context.Background(), nil, 1, time.Second, false, false)
}

func TestSystemMetricsCollector_StopsOnCancel(t *testing.T) {
	collector, err := NewSystemMetricsCollector(NoopMeter(), time.Now(), 10*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- collector.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("collector did not stop")
	}
}

func TestReadRuntimeStats(t *testing.T) {
	stats := ReadRuntimeStats(time.Now().Add(-time.Minute))
	assert.Positive(t, stats.Goroutines)
	assert.Positive(t, stats.CPUCount)
	assert.GreaterOrEqual(t, stats.UptimeSeconds, 60.0)
}
