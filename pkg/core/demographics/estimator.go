// Package demographics derives age-structure estimates from the youth-population
// share when no direct median-age feed is available.
package demographics

import "growth_dashboard/pkg/models"

// EstimateMedianAge converts the share of population aged 0-14 (percent) into a
// median-age estimate.
//
// FORMULA: medianAge = 28.5 + (25 - youthSharePct) * 0.3
//
// Calibrated so a 25% youth share maps to 28.5 years. The formula is applied
// unconditionally: out-of-range shares pass through and can produce implausible
// ages. That matches the reference behavior; do not clamp here.
func EstimateMedianAge(youthSharePct float64) float64 {
	return 28.5 + (25-youthSharePct)*0.3
}

// ClassifyAge buckets a median age.
// Thresholds: <30 Young, 30..40 MiddleAged (inclusive), >40 Aging.
func ClassifyAge(medianAge float64) models.AgeCategory {
	switch {
	case medianAge < 30:
		return models.AgeYoung
	case medianAge <= 40:
		return models.AgeMiddleAged
	default:
		return models.AgeAging
	}
}

// ClassifyDependency buckets a dependency ratio (percent).
// Thresholds: <50 Low, 50..70 Moderate (inclusive), >70 High.
func ClassifyDependency(ratioPct float64) models.DependencyLevel {
	switch {
	case ratioPct < 50:
		return models.DependencyLow
	case ratioPct <= 70:
		return models.DependencyModerate
	default:
		return models.DependencyHigh
	}
}
