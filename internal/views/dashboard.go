package views

import (
	"errors"
	"fmt"
	"sort"

	"github.com/edsonpatricio/aula-unifor-22112024/internal/dataset"
	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

// View names accepted by Select
const (
	ViewSalaryByYear         = "salary-by-year"
	ViewSalaryByPosition     = "salary-by-position"
	ViewPositionDistribution = "position-distribution"
	ViewSalaryByTeam         = "salary-by-team"
	ViewSortedListing        = "sorted-listing"
	ViewTenureByPlayer       = "tenure-by-player"
	ViewSalaryByTenure       = "salary-by-tenure"
	ViewTenureHistogram      = "tenure-histogram"
	ViewInflation            = "inflation"
	ViewOverview             = "overview"
)

// ErrUnknownView is wrapped by Select for names outside Names()
var ErrUnknownView = errors.New("unknown view")

// Compute filters records by sel and builds every view
func Compute(records []domain.PlayerSeason, sel domain.FilterSelection) domain.Dashboard {
	return Build(dataset.Filter(records, sel), sel)
}

// Build derives every view from rows that are already filtered
func Build(filtered []domain.PlayerSeason, sel domain.FilterSelection) domain.Dashboard {
	players := TenureByPlayer(filtered)

	return domain.Dashboard{
		Selection:            sel,
		Overview:             ComputeOverview(filtered),
		SalaryByYear:         SalaryByYear(filtered),
		Inflation:            InflationSeries(),
		SalaryByPosition:     SalaryByPosition(filtered),
		PositionDistribution: PositionDistribution(filtered),
		SalaryByTeam:         SalaryByTeam(filtered),
		SortedListing:        SortedListing(filtered),
		TenureByPlayer:       players,
		SalaryByTenure:       salaryByTenure(players),
		TenureHistogram:      tenureHistogram(players),
	}
}

var viewFuncs = map[string]func([]domain.PlayerSeason) any{
	ViewSalaryByYear:         func(r []domain.PlayerSeason) any { return SalaryByYear(r) },
	ViewSalaryByPosition:     func(r []domain.PlayerSeason) any { return SalaryByPosition(r) },
	ViewPositionDistribution: func(r []domain.PlayerSeason) any { return PositionDistribution(r) },
	ViewSalaryByTeam:         func(r []domain.PlayerSeason) any { return SalaryByTeam(r) },
	ViewSortedListing:        func(r []domain.PlayerSeason) any { return SortedListing(r) },
	ViewTenureByPlayer:       func(r []domain.PlayerSeason) any { return TenureByPlayer(r) },
	ViewSalaryByTenure:       func(r []domain.PlayerSeason) any { return SalaryByTenure(r) },
	ViewTenureHistogram:      func(r []domain.PlayerSeason) any { return TenureHistogram(r) },
	ViewInflation:            func([]domain.PlayerSeason) any { return InflationSeries() },
	ViewOverview:             func(r []domain.PlayerSeason) any { return ComputeOverview(r) },
}

// Names returns the known view names, sorted
func Names() []string {
	names := make([]string, 0, len(viewFuncs))
	for name := range viewFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select computes a single named view over already-filtered rows
func Select(name string, filtered []domain.PlayerSeason) (any, error) {
	fn, ok := viewFuncs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}
	return fn(filtered), nil
}
