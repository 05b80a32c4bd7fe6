package dataset

import (
	"slices"

	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

// LoadReport summarises one load.
// InvalidYear counts kept rows whose year was missing or not an integer.
type LoadReport struct {
	Source      string         `json:"source"`
	RowsRead    int            `json:"rows_read"`
	RowsKept    int            `json:"rows_kept"`
	Dropped     map[string]int `json:"dropped"`
	InvalidYear int            `json:"invalid_year"`
}

// TotalDropped returns the number of discarded rows
func (r LoadReport) TotalDropped() int {
	total := 0
	for _, n := range r.Dropped {
		total += n
	}
	return total
}

// rowResult is a cleaned row plus the reason it was rejected, if any
type rowResult struct {
	domain.PlayerSeason
	reason  string
	err     error
	yearErr error
}

// Dataset is the cleaned, immutable salary table
type Dataset struct {
	records   []domain.PlayerSeason
	teams     []string
	positions []string
	report    LoadReport
}

// New builds a Dataset from already-clean records. The slice is copied.
func New(records []domain.PlayerSeason) *Dataset {
	return newDataset(slices.Clone(records), LoadReport{
		RowsRead: len(records),
		RowsKept: len(records),
		Dropped:  emptyDropped(),
	})
}

func newDataset(records []domain.PlayerSeason, report LoadReport) *Dataset {
	if records == nil {
		records = []domain.PlayerSeason{}
	}
	return &Dataset{
		records:   records,
		teams:     distinct(records, func(r domain.PlayerSeason) string { return r.Team }),
		positions: distinct(records, func(r domain.PlayerSeason) string { return r.Position }),
		report:    report,
	}
}

func emptyDropped() map[string]int {
	m := make(map[string]int, len(DropReasons))
	for _, reason := range DropReasons {
		m[reason] = 0
	}
	return m
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of every row in source order
func (d *Dataset) Records() []domain.PlayerSeason {
	return slices.Clone(d.records)
}

// Filter returns the rows matching sel in source order
func (d *Dataset) Filter(sel domain.FilterSelection) []domain.PlayerSeason {
	return Filter(d.records, sel)
}

// DistinctTeams returns every team in order of first appearance
func (d *Dataset) DistinctTeams() []string {
	return slices.Clone(d.teams)
}

// DistinctPositions returns every position in order of first appearance
func (d *Dataset) DistinctPositions() []string {
	return slices.Clone(d.positions)
}

// Report returns the load counters
func (d *Dataset) Report() LoadReport {
	r := d.report
	r.Dropped = make(map[string]int, len(d.report.Dropped))
	for k, v := range d.report.Dropped {
		r.Dropped[k] = v
	}
	return r
}

func distinct(records []domain.PlayerSeason, key func(domain.PlayerSeason) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
