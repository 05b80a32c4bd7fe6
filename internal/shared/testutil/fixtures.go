package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

// SalaryHeader is the header row of the salary table
var SalaryHeader = []string{"name", "team", "position", "year", "salary"}

// Season builds one cleaned row
func Season(name, team, position string, year int, salary float64) domain.PlayerSeason {
	return domain.PlayerSeason{Name: name, Team: team, Position: position, Year: domain.Year(year), Salary: salary}
}

// SmallLeague is the three-row table most tests start from.
// Lakers/Guard rows are A (2000) and B (2001); Celtics/Forward is C (2000).
func SmallLeague() []domain.PlayerSeason {
	return []domain.PlayerSeason{
		Season("A", "Lakers", "Guard", 2000, 1000),
		Season("B", "Lakers", "Guard", 2001, 2000),
		Season("C", "Celtics", "Forward", 2000, 3000),
	}
}

// SalaryRecords renders rows as raw table records, header first.
// Salaries are written in the "$1,234" form the raw source uses.
func SalaryRecords(rows []domain.PlayerSeason) [][]string {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, SalaryHeader)
	for _, r := range rows {
		records = append(records, []string{
			r.Name,
			r.Team,
			r.Position,
			yearString(r.Year),
			DollarString(r.Salary),
		})
	}
	return records
}

// yearString leaves the cell empty for an unknown year
func yearString(y domain.Year) string {
	if !y.Known() {
		return ""
	}
	return strconv.Itoa(int(y))
}

// DollarString formats whole-dollar amounts with a currency symbol and thousands separators
func DollarString(v float64) string {
	digits := strconv.FormatInt(int64(v), 10)
	neg := false
	if digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	out := make([]byte, 0, len(digits)+len(digits)/3+2)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	if neg {
		return "-$" + string(out)
	}
	return "$" + string(out)
}

// WriteCSV writes records to a temporary CSV file and returns its path
func WriteCSV(t testing.TB, records [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nba_stats.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.WriteAll(records))
	return path
}

// WriteSalaryCSV writes rows as a salary table and returns its path
func WriteSalaryCSV(t testing.TB, rows []domain.PlayerSeason) string {
	t.Helper()
	return WriteCSV(t, SalaryRecords(rows))
}
