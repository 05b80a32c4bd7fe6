package views

import (
	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

// InflationFirstYear is the first year of the reference series
const InflationFirstYear = 1999

// US annual inflation rate in percent, 1999 through 2021
var inflationRates = [...]float64{
	2.2, 3.4, 3.2, 2.8, 1.6, 2.7, 3.4, 3.2, 2.8, 3.8, 0.1, 1.5,
	3.0, 2.3, 2.1, 2.4, 2.3, 2.1, 2.4, 2.1, 2.1, 1.2, 4.7,
}

// InflationSeries returns the static inflation reference series.
// It does not depend on the data or the filters; each call returns a new slice.
func InflationSeries() []domain.InflationPoint {
	out := make([]domain.InflationPoint, len(inflationRates))
	for i, rate := range inflationRates {
		out[i] = domain.InflationPoint{Year: InflationFirstYear + i, Rate: rate}
	}
	return out
}
