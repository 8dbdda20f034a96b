package projection

import "math"

// AgePoint is one observation of the median-age series.
type AgePoint struct {
	Year int
	Age  float64
}

// defaultAnnualAgeIncrease is the conservative demographic-transition estimate
// used when no usable historical series is available.
const defaultAnnualAgeIncrease = 0.3

// FallbackMedianAgeHistory is the bundled historical median-age series for
// India (UN World Population Prospects estimates), used when the youth-share
// history cannot be fetched.
var FallbackMedianAgeHistory = []AgePoint{
	{1960, 19.8}, {1965, 20.1}, {1970, 20.4}, {1975, 20.8},
	{1980, 21.2}, {1985, 21.7}, {1990, 22.3}, {1995, 23.0},
	{2000, 23.5}, {2005, 24.8}, {2010, 26.1}, {2015, 27.3},
	{2020, 28.2}, {2023, 28.7},
}

// ProjectMedianAge extends currentAge from baseYear to targetYear using the
// average annual increase observed across the historical series (oldest to
// newest). A series with fewer than two points, or no year spread, falls back
// to the conservative 0.3 years-per-year estimate. Result is rounded to 0.1,
// matching how median ages are reported.
func ProjectMedianAge(currentAge float64, baseYear, targetYear int, history []AgePoint) float64 {
	annual := defaultAnnualAgeIncrease
	if len(history) >= 2 {
		first, last := history[0], history[len(history)-1]
		if span := last.Year - first.Year; span > 0 {
			annual = (last.Age - first.Age) / float64(span)
		}
	}
	projected := currentAge + annual*float64(targetYear-baseYear)
	return math.Round(projected*10) / 10
}
