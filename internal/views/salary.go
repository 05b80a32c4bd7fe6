package views

import (
	"math"
	"sort"

	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

func salaryOf(r domain.PlayerSeason) float64 { return r.Salary }

// SalaryByYear returns the mean salary per season, ascending by year.
// Rows without a known year are left out.
func SalaryByYear(records []domain.PlayerSeason) []domain.YearSalary {
	dated := make([]domain.PlayerSeason, 0, len(records))
	for _, r := range records {
		if r.Year.Known() {
			dated = append(dated, r)
		}
	}

	groups := groupBy(dated, func(r domain.PlayerSeason) domain.Year { return r.Year }, salaryOf)
	sort.Slice(groups, func(i, j int) bool { return groups[i].key < groups[j].key })

	out := make([]domain.YearSalary, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.YearSalary{Year: int(g.key), MeanSalary: domain.Float(g.mean())})
	}
	return out
}

// SalaryByPosition returns the mean salary per position, highest first
func SalaryByPosition(records []domain.PlayerSeason) []domain.GroupSalary {
	return meanByDesc(records, func(r domain.PlayerSeason) string { return r.Position })
}

// SalaryByTeam returns the mean salary per team, highest first
func SalaryByTeam(records []domain.PlayerSeason) []domain.GroupSalary {
	return meanByDesc(records, func(r domain.PlayerSeason) string { return r.Team })
}

// meanByDesc orders groups by descending mean; equal means are ordered by key
func meanByDesc(records []domain.PlayerSeason, key func(domain.PlayerSeason) string) []domain.GroupSalary {
	groups := groupBy(records, key, salaryOf)
	sort.Slice(groups, func(i, j int) bool { return groups[i].key < groups[j].key })
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].mean() > groups[j].mean() })

	out := make([]domain.GroupSalary, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.GroupSalary{Key: g.key, MeanSalary: domain.Float(g.mean()), Rows: g.count})
	}
	return out
}

// PositionDistribution counts rows per position, most frequent first.
// The counts sum to len(records).
func PositionDistribution(records []domain.PlayerSeason) []domain.GroupCount {
	groups := groupBy(records, func(r domain.PlayerSeason) string { return r.Position }, salaryOf)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].count > groups[j].count })

	out := make([]domain.GroupCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.GroupCount{Key: g.key, Count: g.count})
	}
	return out
}

// SortedListing returns a copy of records ordered by salary, highest first.
// Rows with equal salary keep their relative order.
func SortedListing(records []domain.PlayerSeason) []domain.PlayerSeason {
	out := make([]domain.PlayerSeason, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Salary > out[j].Salary })
	return out
}

// ComputeOverview summarises the filtered rows
func ComputeOverview(records []domain.PlayerSeason) domain.Overview {
	players := make(map[string]struct{})
	teams := make(map[string]struct{})
	positions := make(map[string]struct{})

	var sum float64
	for _, r := range records {
		if r.Name != "" {
			players[r.Name] = struct{}{}
		}
		teams[r.Team] = struct{}{}
		positions[r.Position] = struct{}{}
		sum += r.Salary
	}

	mean := math.NaN()
	if len(records) > 0 {
		mean = sum / float64(len(records))
	}

	return domain.Overview{
		Rows:       len(records),
		Players:    len(players),
		Teams:      len(teams),
		Positions:  len(positions),
		MeanSalary: domain.Float(mean),
	}
}
