package domain

// FilterSelection holds the sidebar filters.
//
// A nil slice means "no selection made" and matches every value, which is the
// dashboard default. A non-nil empty slice selects nothing.
type FilterSelection struct {
	Teams     []string `json:"teams" validate:"omitempty,max=200,dive,required,max=100"`
	Positions []string `json:"positions" validate:"omitempty,max=50,dive,required,max=50"`
}

// AllSelected returns the default selection: every team and every position.
func AllSelected() FilterSelection {
	return FilterSelection{}
}

// AllTeams reports whether the team filter is unset
func (s FilterSelection) AllTeams() bool {
	return s.Teams == nil
}

// AllPositions reports whether the position filter is unset
func (s FilterSelection) AllPositions() bool {
	return s.Positions == nil
}
