package views

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

func TestSalaryByYear(t *testing.T) {
	records := []domain.PlayerSeason{
		season("A", "Lakers", "Guard", 2001, 2000),
		season("B", "Lakers", "Guard", 1999, 500),
		season("C", "Celtics", "Forward", 2001, 4000),
	}

	want := []domain.YearSalary{
		{Year: 1999, MeanSalary: 500},
		{Year: 2001, MeanSalary: 3000},
	}
	if diff := cmp.Diff(want, SalaryByYear(records), cmpFloats); diff != "" {
		t.Errorf("SalaryByYear mismatch (-want +got):\n%s", diff)
	}
}

func TestSalaryByPosition_Fixture(t *testing.T) {
	want := []domain.GroupSalary{
		{Key: "Forward", MeanSalary: 3000, Rows: 1},
		{Key: "Guard", MeanSalary: 1500, Rows: 2},
	}
	if diff := cmp.Diff(want, SalaryByPosition(fixture()), cmpFloats); diff != "" {
		t.Errorf("SalaryByPosition mismatch (-want +got):\n%s", diff)
	}
}

func TestSalaryByYear_SkipsUnknownYear(t *testing.T) {
	records := []domain.PlayerSeason{
		season("A", "Lakers", "Guard", 2000, 1000),
		{Name: "E", Team: "Lakers", Position: "Guard", Salary: 5000},
	}

	want := []domain.YearSalary{{Year: 2000, MeanSalary: 1000}}
	if diff := cmp.Diff(want, SalaryByYear(records), cmpFloats); diff != "" {
		t.Errorf("SalaryByYear mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []domain.GroupSalary{{Key: "Guard", MeanSalary: 3000, Rows: 2}}, SalaryByPosition(records))
}

func groupKeys(groups []domain.GroupSalary) []string {
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	return keys
}

func TestSalaryByTeam_TiesInKeyOrder(t *testing.T) {
	records := []domain.PlayerSeason{
		season("A", "Nets", "C", 2000, 100),
		season("B", "Jazz", "C", 2000, 300),
		season("C", "Heat", "C", 2000, 100),
		season("D", "Bulls", "C", 2000, 300),
	}

	got := SalaryByTeam(records)
	assert.Equal(t, []string{"Bulls", "Jazz", "Heat", "Nets"}, groupKeys(got))

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, float64(got[i-1].MeanSalary), float64(got[i].MeanSalary))
	}
}

func TestSalaryByPosition_TiesInKeyOrder(t *testing.T) {
	records := []domain.PlayerSeason{
		season("A", "Lakers", "Guard", 2000, 100),
		season("B", "Lakers", "Center", 2000, 100),
		season("C", "Lakers", "Forward", 2000, 50),
	}

	assert.Equal(t, []string{"Center", "Guard", "Forward"}, groupKeys(SalaryByPosition(records)))
}

func TestPositionDistribution(t *testing.T) {
	records := []domain.PlayerSeason{
		season("A", "T", "C", 2000, 1),
		season("B", "T", "PG", 2000, 1),
		season("C", "T", "PG", 2000, 1),
		season("D", "T", "SF", 2000, 1),
		season("E", "T", "C", 2000, 1),
		season("F", "T", "PG", 2000, 1),
	}

	want := []domain.GroupCount{
		{Key: "PG", Count: 3},
		{Key: "C", Count: 2},
		{Key: "SF", Count: 1},
	}
	got := PositionDistribution(records)
	assert.Equal(t, want, got)

	total := 0
	for _, g := range got {
		total += g.Count
	}
	assert.Equal(t, len(records), total)
}

func TestSortedListing(t *testing.T) {
	records := []domain.PlayerSeason{
		season("A", "T", "C", 2000, 100),
		season("B", "T", "C", 2000, 300),
		season("C", "T", "C", 2000, 100),
		season("D", "T", "C", 2000, 200),
	}
	orig := append([]domain.PlayerSeason(nil), records...)

	got := SortedListing(records)
	names := make([]string, len(got))
	for i, r := range got {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, names)
	assert.Equal(t, orig, records, "input must not be reordered")
}

func TestComputeOverview(t *testing.T) {
	records := append(fixture(), season("A", "Celtics", "Guard", 2001, 2000))

	got := ComputeOverview(records)
	assert.Equal(t, 4, got.Rows)
	assert.Equal(t, 3, got.Players)
	assert.Equal(t, 2, got.Teams)
	assert.Equal(t, 2, got.Positions)
	assert.InDelta(t, 2000.0, float64(got.MeanSalary), 1e-9)

	empty := ComputeOverview(nil)
	assert.Equal(t, 0, empty.Rows)
	assert.True(t, math.IsNaN(float64(empty.MeanSalary)))
}

func TestViews_EmptyInput(t *testing.T) {
	assert.NotNil(t, SalaryByYear(nil))
	assert.Empty(t, SalaryByYear(nil))
	assert.Empty(t, SalaryByPosition(nil))
	assert.Empty(t, SalaryByTeam(nil))
	assert.Empty(t, PositionDistribution(nil))
	assert.NotNil(t, SortedListing(nil))
	assert.Empty(t, SortedListing(nil))
	assert.Empty(t, TenureByPlayer(nil))
	assert.Empty(t, SalaryByTenure(nil))
	assert.Empty(t, TenureHistogram(nil))
}
