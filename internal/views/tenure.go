package views

import (
	"sort"

	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

// HistogramBins is the number of equal-width tenure bins
const HistogramBins = 10

// TenureByPlayer counts each player's rows (years played) and averages their salary.
// Players are ordered by years played, most first; ties keep first-seen order.
// Rows without a name are not attributed to any player.
func TenureByPlayer(records []domain.PlayerSeason) []domain.PlayerTenure {
	named := make([]domain.PlayerSeason, 0, len(records))
	for _, r := range records {
		if r.Name != "" {
			named = append(named, r)
		}
	}

	groups := groupBy(named, func(r domain.PlayerSeason) string { return r.Name }, salaryOf)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].count > groups[j].count })

	out := make([]domain.PlayerTenure, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.PlayerTenure{
			Name:        g.key,
			YearsPlayed: g.count,
			MeanSalary:  domain.Float(g.mean()),
		})
	}
	return out
}

// SalaryByTenure averages the per-player mean salaries of every tenure length,
// ascending by years played.
func SalaryByTenure(records []domain.PlayerSeason) []domain.TenureSalary {
	return salaryByTenure(TenureByPlayer(records))
}

func salaryByTenure(players []domain.PlayerTenure) []domain.TenureSalary {
	groups := groupBy(players,
		func(p domain.PlayerTenure) int { return p.YearsPlayed },
		func(p domain.PlayerTenure) float64 { return float64(p.MeanSalary) })
	sort.Slice(groups, func(i, j int) bool { return groups[i].key < groups[j].key })

	out := make([]domain.TenureSalary, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.TenureSalary{
			YearsPlayed: g.key,
			MeanSalary:  domain.Float(g.mean()),
			Players:     g.count,
		})
	}
	return out
}

// TenureHistogram bins the players' years played into HistogramBins equal-width
// bins over [min, max].
func TenureHistogram(records []domain.PlayerSeason) []domain.HistogramBin {
	return tenureHistogram(TenureByPlayer(records))
}

func tenureHistogram(players []domain.PlayerTenure) []domain.HistogramBin {
	values := make([]float64, len(players))
	for i, p := range players {
		values[i] = float64(p.YearsPlayed)
	}
	return Histogram(values, HistogramBins)
}

// Histogram counts values into n equal-width bins spanning [min, max].
// Bins are half-open except the last, which includes max. When every value is
// equal the range is widened to [v-0.5, v+0.5]. Empty input yields no bins.
func Histogram(values []float64, n int) []domain.HistogramBin {
	if len(values) == 0 || n <= 0 {
		return []domain.HistogramBin{}
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(n)
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[n] = hi

	bins := make([]domain.HistogramBin, n)
	for i := range bins {
		bins[i] = domain.HistogramBin{Lower: edges[i], Upper: edges[i+1]}
	}

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= n {
			idx = n - 1
		}
		// correct float rounding against the stored edges
		if idx < n-1 && v >= edges[idx+1] {
			idx++
		}
		if idx > 0 && v < edges[idx] {
			idx--
		}
		bins[idx].Count++
	}
	return bins
}
