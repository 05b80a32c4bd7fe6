package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

// Drop reasons reported in LoadReport.Dropped
const (
	ReasonMissingTeam     = "missing_team"
	ReasonMissingPosition = "missing_position"
	ReasonMissingSalary   = "missing_salary"
	ReasonInvalidSalary   = "invalid_salary"
)

// DropReasons lists every reason in the order rows are checked
var DropReasons = []string{
	ReasonMissingTeam,
	ReasonMissingPosition,
	ReasonMissingSalary,
	ReasonInvalidSalary,
}

// nullMarkers are cell values read as "no value"
var nullMarkers = []string{
	"", "NaN", "nan", "-NaN", "-nan", "NA", "N/A", "n/a", "<NA>", "#N/A", "null", "NULL", "None",
}

// ErrInvalidSalary is returned by ParseSalary for text that is not a non-negative amount
var ErrInvalidSalary = errors.New("invalid salary")

// ErrMissingValue is returned when a cell holds a null marker
var ErrMissingValue = errors.New("missing value")

// ParseError describes a cell that could not be converted
type ParseError struct {
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsMissing reports whether a raw cell should be treated as absent
func IsMissing(raw string) bool {
	v := strings.TrimSpace(raw)
	for _, m := range nullMarkers {
		if v == m {
			return true
		}
	}
	return false
}

// ParseSalary converts text such as "$1,234,567" or "3000.00" to a float.
// Dollar signs and commas are stripped before parsing. Negative amounts are rejected.
func ParseSalary(raw string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(raw)
	cleaned = strings.TrimSpace(cleaned)
	if IsMissing(cleaned) {
		return 0, &ParseError{Column: "salary", Value: raw, Err: ErrMissingValue}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, &ParseError{Column: "salary", Value: raw, Err: fmt.Errorf("%w: %v", ErrInvalidSalary, err)}
	}
	if d.IsNegative() {
		return 0, &ParseError{Column: "salary", Value: raw, Err: fmt.Errorf("%w: negative amount", ErrInvalidSalary)}
	}

	return d.InexactFloat64(), nil
}

// ParseYear converts text such as "2001" or "2001.0" to a positive integer season
func ParseYear(raw string) (int, error) {
	v := strings.TrimSpace(raw)
	if IsMissing(v) {
		return 0, &ParseError{Column: "year", Value: raw, Err: ErrMissingValue}
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		d, derr := decimal.NewFromString(v)
		if derr != nil || !d.IsInteger() {
			return 0, &ParseError{Column: "year", Value: raw, Err: errors.New("not an integer")}
		}
		n = int(d.IntPart())
	}
	if n <= 0 {
		return 0, &ParseError{Column: "year", Value: raw, Err: errors.New("not a season year")}
	}
	return n, nil
}

// cleanRow converts one raw row. It returns the drop reason when the row is unusable.
// Kept values are not trimmed, so "Lakers " and "Lakers" stay distinct categories.
// A bad year does not drop the row: it is kept with an unknown year and yearErr set.
func cleanRow(name, team, position, year, salary string) (rec rowResult) {
	if !IsMissing(name) {
		rec.Name = name
	}

	if IsMissing(team) {
		rec.reason = ReasonMissingTeam
		return rec
	}
	rec.Team = team

	if IsMissing(position) {
		rec.reason = ReasonMissingPosition
		return rec
	}
	rec.Position = position

	s, err := ParseSalary(salary)
	if err != nil {
		rec.err = err
		if errors.Is(err, ErrMissingValue) {
			rec.reason = ReasonMissingSalary
		} else {
			rec.reason = ReasonInvalidSalary
		}
		return rec
	}
	rec.Salary = s

	if y, err := ParseYear(year); err != nil {
		rec.yearErr = err
	} else {
		rec.Year = domain.Year(y)
	}

	return rec
}
