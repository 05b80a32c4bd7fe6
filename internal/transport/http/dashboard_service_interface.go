package http

import (
	"context"

	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

// DashboardServiceInterface defines the dashboard operations used by the handlers
type DashboardServiceInterface interface {
	FilterOptions(ctx context.Context) domain.FilterOptions
	RecomputeAll(ctx context.Context, sel domain.FilterSelection) (domain.Dashboard, error)
	View(ctx context.Context, name string, sel domain.FilterSelection) (any, error)
	ViewNames() []string
}

// StructValidator validates decoded request values
type StructValidator interface {
	ValidateStruct(v interface{}) error
}
