package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/edsonpatricio/aula-unifor-22112024/internal/dataset"
	"github.com/edsonpatricio/aula-unifor-22112024/internal/infrastructure"
	"github.com/edsonpatricio/aula-unifor-22112024/internal/views"
	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

// DashboardService serves filter options and derived views over the loaded dataset
type DashboardService struct {
	dataset  *dataset.Dataset
	metrics  *infrastructure.BusinessMetrics
	tracer   trace.Tracer
	validate *validator.Validate
	logger   *slog.Logger
}

// NewDashboardService creates a dashboard service over ds.
// Nil metrics, tracer or logger fall back to no-op implementations and the default logger.
func NewDashboardService(ds *dataset.Dataset, metrics *infrastructure.BusinessMetrics, tracer trace.Tracer, logger *slog.Logger) (*DashboardService, error) {
	if ds == nil {
		return nil, ErrDatasetUnavailable
	}
	if metrics == nil {
		metrics = infrastructure.NoopBusinessMetrics()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(infrastructure.ServiceName)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = infrastructure.WithComponent(logger, "dashboard_service")

	report := ds.Report()
	logger.Info("DashboardService initialized",
		slog.Int("rows", ds.Len()),
		slog.Int("teams", len(ds.DistinctTeams())),
		slog.Int("positions", len(ds.DistinctPositions())),
		slog.Int("rows_dropped", report.TotalDropped()))

	return &DashboardService{
		dataset:  ds,
		metrics:  metrics,
		tracer:   tracer,
		validate: validator.New(),
		logger:   logger,
	}, nil
}

// DistinctTeams returns every team in first-seen order
func (s *DashboardService) DistinctTeams(ctx context.Context) []string {
	return s.dataset.DistinctTeams()
}

// DistinctPositions returns every position in first-seen order
func (s *DashboardService) DistinctPositions(ctx context.Context) []string {
	return s.dataset.DistinctPositions()
}

// FilterOptions returns the values offered by the selector controls
func (s *DashboardService) FilterOptions(ctx context.Context) domain.FilterOptions {
	return domain.FilterOptions{
		Teams:     s.DistinctTeams(ctx),
		Positions: s.DistinctPositions(ctx),
	}
}

// LoadReport returns the cleaning counters of the loaded dataset
func (s *DashboardService) LoadReport() dataset.LoadReport {
	return s.dataset.Report()
}

// ValidateSelection checks list sizes and rejects blank entries.
// Values that match no row are not an error.
func (s *DashboardService) ValidateSelection(sel domain.FilterSelection) error {
	if err := s.validate.Struct(sel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}
	return nil
}

// RecomputeAll filters the dataset by sel and derives every view
func (s *DashboardService) RecomputeAll(ctx context.Context, sel domain.FilterSelection) (domain.Dashboard, error) {
	ctx, span := s.tracer.Start(ctx, "DashboardService.RecomputeAll", trace.WithAttributes(selectionAttrs(sel)...))
	defer span.End()

	if err := s.ValidateSelection(sel); err != nil {
		infrastructure.RecordError(ctx, err)
		return domain.Dashboard{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Dashboard{}, fmt.Errorf("recompute dashboard: %w", err)
	}

	start := time.Now()
	filtered := s.dataset.Filter(sel)
	dash := views.Build(filtered, sel)
	elapsed := time.Since(start)

	span.SetAttributes(attribute.Int("dashboard.filtered_rows", len(filtered)))
	infrastructure.RecordRecompute(ctx, s.metrics, len(filtered), elapsed, sel.AllTeams(), sel.AllPositions())

	s.logger.DebugContext(ctx, "dashboard recomputed",
		slog.Int("filtered_rows", len(filtered)),
		slog.Bool("all_teams", sel.AllTeams()),
		slog.Bool("all_positions", sel.AllPositions()),
		slog.Duration("duration", elapsed))

	return dash, nil
}

// View computes a single named view for sel
func (s *DashboardService) View(ctx context.Context, name string, sel domain.FilterSelection) (any, error) {
	ctx, span := s.tracer.Start(ctx, "DashboardService.View",
		trace.WithAttributes(append(selectionAttrs(sel), attribute.String("dashboard.view", name))...))
	defer span.End()

	if err := s.ValidateSelection(sel); err != nil {
		infrastructure.RecordError(ctx, err)
		return nil, err
	}

	start := time.Now()
	filtered := s.dataset.Filter(sel)
	result, err := views.Select(name, filtered)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrViewNotFound, name)
	}
	infrastructure.RecordRecompute(ctx, s.metrics, len(filtered), time.Since(start), sel.AllTeams(), sel.AllPositions())

	return result, nil
}

// ViewNames lists the names accepted by View
func (s *DashboardService) ViewNames() []string {
	return views.Names()
}

func selectionAttrs(sel domain.FilterSelection) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool("selection.all_teams", sel.AllTeams()),
		attribute.Bool("selection.all_positions", sel.AllPositions()),
		attribute.Int("selection.teams", len(sel.Teams)),
		attribute.Int("selection.positions", len(sel.Positions)),
	}
}
