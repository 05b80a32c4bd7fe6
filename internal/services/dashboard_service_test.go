package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/edsonpatricio/aula-unifor-22112024/internal/dataset"
	"github.com/edsonpatricio/aula-unifor-22112024/internal/infrastructure"
	"github.com/edsonpatricio/aula-unifor-22112024/internal/shared/testutil"
	"github.com/edsonpatricio/aula-unifor-22112024/internal/views"
	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

func fixtureDataset() *dataset.Dataset {
	return dataset.New(testutil.SmallLeague())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, nil))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func newTestService(t *testing.T) *DashboardService {
	t.Helper()
	svc, err := NewDashboardService(fixtureDataset(), nil, nil, discardLogger())
	require.NoError(t, err)
	return svc
}

func TestNewDashboardService_RequiresDataset(t *testing.T) {
	svc, err := NewDashboardService(nil, nil, nil, nil)
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrDatasetUnavailable)
}

func TestDashboardService_FilterOptions(t *testing.T) {
	svc := newTestService(t)

	opts := svc.FilterOptions(context.Background())
	assert.Equal(t, []string{"Lakers", "Celtics"}, opts.Teams)
	assert.Equal(t, []string{"Guard", "Forward"}, opts.Positions)
}

func TestDashboardService_RecomputeAll(t *testing.T) {
	tests := []struct {
		name      string
		sel       domain.FilterSelection
		wantRows  int
		wantFirst string
	}{
		{
			name:      "default selection is the whole table",
			sel:       domain.AllSelected(),
			wantRows:  3,
			wantFirst: "C",
		},
		{
			name:      "team filter",
			sel:       domain.FilterSelection{Teams: []string{"Lakers"}},
			wantRows:  2,
			wantFirst: "B",
		},
		{
			name:     "empty team list selects nothing",
			sel:      domain.FilterSelection{Teams: []string{}},
			wantRows: 0,
		},
		{
			name:     "unknown team matches nothing",
			sel:      domain.FilterSelection{Teams: []string{"Sonics"}},
			wantRows: 0,
		},
	}

	svc := newTestService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dash, err := svc.RecomputeAll(context.Background(), tt.sel)
			require.NoError(t, err)

			assert.Equal(t, tt.wantRows, dash.Overview.Rows)
			assert.Len(t, dash.SortedListing, tt.wantRows)
			assert.Len(t, dash.Inflation, 23)
			if tt.wantRows > 0 {
				assert.Equal(t, tt.wantFirst, dash.SortedListing[0].Name)
			} else {
				assert.True(t, dash.Overview.MeanSalary.IsNaN())
			}
		})
	}
}

func TestDashboardService_RecomputeAll_InvalidSelection(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RecomputeAll(context.Background(), domain.FilterSelection{Teams: []string{"Lakers", ""}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSelection)

	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	_, err = svc.RecomputeAll(context.Background(), domain.FilterSelection{Positions: []string{strings.Repeat("x", 51)}})
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestDashboardService_RecomputeAll_CancelledContext(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.RecomputeAll(ctx, domain.AllSelected())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDashboardService_View(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.View(context.Background(), views.ViewSalaryByPosition, domain.AllSelected())
	require.NoError(t, err)
	rows, ok := got.([]domain.GroupSalary)
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Equal(t, "Forward", rows[0].Key)
	assert.InDelta(t, 3000.0, float64(rows[0].MeanSalary), 1e-9)
	assert.Equal(t, "Guard", rows[1].Key)
	assert.InDelta(t, 1500.0, float64(rows[1].MeanSalary), 1e-9)

	_, err = svc.View(context.Background(), "payroll", domain.AllSelected())
	assert.ErrorIs(t, err, ErrViewNotFound)

	assert.Equal(t, views.Names(), svc.ViewNames())
}

func TestDashboardService_RecordsTelemetry(t *testing.T) {
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := infrastructure.CreateBusinessMetrics(mp.Meter("test"))
	require.NoError(t, err)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	svc, err := NewDashboardService(fixtureDataset(), metrics, tp.Tracer("test"), discardLogger())
	require.NoError(t, err)

	_, err = svc.RecomputeAll(ctx, domain.FilterSelection{Teams: []string{"Lakers"}})
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "DashboardService.RecomputeAll", spans[0].Name())

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "dashboard_recompute_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	assert.Equal(t, int64(1), total)
}

func TestDashboardService_Logging(t *testing.T) {
	logger, logs := testutil.NewTestLogger(t)

	svc, err := NewDashboardService(fixtureDataset(), nil, nil, logger)
	require.NoError(t, err)

	testutil.AssertLogContains(t, logs, slog.LevelInfo, "DashboardService initialized")
	testutil.AssertLogAttr(t, logs, "component", "dashboard_service")
	testutil.AssertLogAttr(t, logs, "rows", int64(3))

	_, err = svc.RecomputeAll(context.Background(), domain.FilterSelection{Positions: []string{"Guard"}})
	require.NoError(t, err)

	rec, ok := logs.FindMessage("dashboard recomputed")
	require.True(t, ok)
	assert.Equal(t, slog.LevelDebug, rec.Level)
	assert.Equal(t, int64(2), rec.Attrs["filtered_rows"])
	assert.Equal(t, true, rec.Attrs["all_teams"])
	assert.Equal(t, false, rec.Attrs["all_positions"])
	testutil.AssertNoErrors(t, logs)
}
