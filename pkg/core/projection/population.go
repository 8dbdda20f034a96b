// Package projection projects population and median age forward to a target
// year. Projections compound one calendar year at a time so the piecewise
// growth-rate schedule is applied per elapsed year, not per period.
package projection

import (
	"fmt"

	"growth_dashboard/pkg/core/growth"
)

// Annual population growth-rate schedule (percent), keyed by calendar year.
// Derived from UN medium-variant assumptions for India. The source material
// lists a 0.5% tier "from 2040" next to a 0.3% tier "beyond"; we resolve that
// to 0.5% for 2040-2049 and 0.3% from 2050 on, keeping the schedule monotone.
const (
	rateThrough2029 = 1.0
	rate2030s       = 0.8
	rate2040s       = 0.5
	rateBeyond2050  = 0.3
)

// GrowthRateFor returns the scheduled annual growth rate (percent) for a
// calendar year.
func GrowthRateFor(year int) float64 {
	switch {
	case year <= 2029:
		return rateThrough2029
	case year <= 2039:
		return rate2030s
	case year <= 2049:
		return rate2040s
	default:
		return rateBeyond2050
	}
}

// ProjectPopulation compounds startPop from startYear to endYear using the
// schedule. Each step applies the rate of the projection year it starts from:
//
//	population_{y+1} = population_y * (1 + rate(y)/100)
//
// endYear == startYear returns startPop unchanged. No intermediate rounding;
// round only at the final presentation step.
func ProjectPopulation(startPop float64, startYear, endYear int) (float64, error) {
	if startPop <= 0 {
		return 0, fmt.Errorf("%w: start population must be positive, got %f", growth.ErrInvalidInput, startPop)
	}
	if endYear < startYear {
		return 0, fmt.Errorf("%w: end year %d precedes start year %d", growth.ErrInvalidInput, endYear, startYear)
	}

	pop := startPop
	for y := startYear; y < endYear; y++ {
		pop *= 1 + GrowthRateFor(y)/100
	}
	return pop, nil
}
