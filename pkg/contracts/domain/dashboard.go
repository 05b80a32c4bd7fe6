package domain

// YearSalary is one point of the salary-by-year line
type YearSalary struct {
	Year       int   `json:"year"`
	MeanSalary Float `json:"mean_salary"`
}

// GroupSalary is the mean salary of one categorical group (team or position)
type GroupSalary struct {
	Key        string `json:"key"`
	MeanSalary Float  `json:"mean_salary"`
	Rows       int    `json:"rows"`
}

// GroupCount is the number of rows in one categorical group
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// PlayerTenure is the per-player stage of the tenure views.
// YearsPlayed counts the player's rows in the filtered table.
type PlayerTenure struct {
	Name        string `json:"name"`
	YearsPlayed int    `json:"years_played"`
	MeanSalary  Float  `json:"mean_salary"`
}

// TenureSalary is the mean of per-player mean salaries for one tenure length
type TenureSalary struct {
	YearsPlayed int   `json:"years_played"`
	MeanSalary  Float `json:"mean_salary"`
	Players     int   `json:"players"`
}

// HistogramBin is one bucket of the tenure histogram.
// Bins are half-open [Lower, Upper) except the last, which is closed.
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// InflationPoint is one year of the static US inflation reference series
type InflationPoint struct {
	Year int     `json:"year"`
	Rate float64 `json:"rate"`
}

// Overview summarises the filtered table
type Overview struct {
	Rows       int   `json:"rows"`
	Players    int   `json:"players"`
	Teams      int   `json:"teams"`
	Positions  int   `json:"positions"`
	MeanSalary Float `json:"mean_salary"`
}

// Dashboard bundles every derived view for one filter selection
type Dashboard struct {
	Selection            FilterSelection  `json:"selection"`
	Overview             Overview         `json:"overview"`
	SalaryByYear         []YearSalary     `json:"salary_by_year"`
	Inflation            []InflationPoint `json:"inflation"`
	SalaryByPosition     []GroupSalary    `json:"salary_by_position"`
	PositionDistribution []GroupCount     `json:"position_distribution"`
	SalaryByTeam         []GroupSalary    `json:"salary_by_team"`
	SortedListing        []PlayerSeason   `json:"sorted_listing"`
	TenureByPlayer       []PlayerTenure   `json:"tenure_by_player"`
	SalaryByTenure       []TenureSalary   `json:"salary_by_tenure"`
	TenureHistogram      []HistogramBin   `json:"tenure_histogram"`
}

// FilterOptions lists the values available to the selector controls
type FilterOptions struct {
	Teams     []string `json:"teams"`
	Positions []string `json:"positions"`
}
