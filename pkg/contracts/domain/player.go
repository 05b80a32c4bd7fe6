package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// PlayerSeason is one cleaned row of the salary table: a player on a team in a season.
// Name is not unique across teams or years.
type PlayerSeason struct {
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Position string  `json:"position"`
	Year     Year    `json:"year"`
	Salary   float64 `json:"salary"`
}

// Year is a season year. The zero value means the cell was missing or not a
// year; such rows stay in the table and only the per-year view skips them.
type Year int

// Known reports whether the year was present in the source row
func (y Year) Known() bool {
	return y != 0
}

// MarshalJSON implements json.Marshaler; an unknown year encodes as null.
func (y Year) MarshalJSON() ([]byte, error) {
	if !y.Known() {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(y))), nil
}

// UnmarshalJSON implements json.Unmarshaler; null decodes to the unknown year.
func (y *Year) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*y = 0
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*y = Year(v)
	return nil
}

// Float is a float64 that encodes NaN and infinities as JSON null.
// Means over an empty group are NaN.
type Float float64

// MarshalJSON implements json.Marshaler
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
}

// UnmarshalJSON implements json.Unmarshaler; null decodes to NaN.
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// IsNaN reports whether the value is undefined
func (f Float) IsNaN() bool {
	return math.IsNaN(float64(f))
}
