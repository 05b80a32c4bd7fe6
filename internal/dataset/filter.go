package dataset

import (
	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

// Filter keeps the records whose team and position are both selected.
// A nil list in sel matches everything; a non-nil empty list matches nothing.
// The input is never modified and the output preserves source order.
func Filter(records []domain.PlayerSeason, sel domain.FilterSelection) []domain.PlayerSeason {
	teams := toSet(sel.Teams)
	positions := toSet(sel.Positions)

	out := make([]domain.PlayerSeason, 0, len(records))
	for _, r := range records {
		if teams != nil {
			if _, ok := teams[r.Team]; !ok {
				continue
			}
		}
		if positions != nil {
			if _, ok := positions[r.Position]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// toSet returns nil for a nil list so callers can tell "unset" from "empty"
func toSet(values []string) map[string]struct{} {
	if values == nil {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
