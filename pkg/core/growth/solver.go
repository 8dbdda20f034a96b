// Package growth provides deterministic GDP growth-rate calculations.
// All functions are pure; validation errors wrap ErrInvalidInput.
package growth

import (
	"errors"
	"fmt"
	"math"

	"growth_dashboard/pkg/models"
)

// ErrInvalidInput marks malformed or out-of-range user input. Nothing is
// computed once it is raised.
var ErrInvalidInput = errors.New("invalid input")

// Solve calculates the constant annual growth rate (in percent) required to move
// from currentGDP to targetGDP over the given number of years.
//
// FORMULA: rate = 100 * (10^(log10(target/current) / years) - 1)
//
// The log10/power form matches the reference computation; it is algebraically
// identical to 100*((target/current)^(1/years)-1).
//
// target == current yields exactly 0. target < current yields a negative rate
// (required shrinkage) and is not clamped.
func Solve(currentGDP, targetGDP float64, years int) (float64, error) {
	if currentGDP <= 0 {
		return 0, fmt.Errorf("%w: current GDP must be positive, got %f", ErrInvalidInput, currentGDP)
	}
	if targetGDP <= 0 {
		return 0, fmt.Errorf("%w: target GDP must be positive, got %f", ErrInvalidInput, targetGDP)
	}
	if years < 1 {
		return 0, fmt.Errorf("%w: years must be >= 1, got %d", ErrInvalidInput, years)
	}
	if targetGDP == currentGDP {
		return 0, nil
	}
	return 100 * (math.Pow(10, math.Log10(targetGDP/currentGDP)/float64(years)) - 1), nil
}

// PerCapita divides a GDP figure by a population. Returns 0 for a non-positive
// population rather than Inf/NaN; callers treat that as "no data".
func PerCapita(gdpUSD, population float64) float64 {
	if population <= 0 {
		return 0
	}
	return gdpUSD / population
}

// ValidateRequest checks a user request at the API boundary. GDP figures are in
// billions of USD; the target year must be strictly in the future relative to
// the supplied current year (pass time.Now().Year()).
func ValidateRequest(req *models.GrowthRequest, currentYear int) error {
	if req.CurrentGDPBillion <= 0 {
		return fmt.Errorf("%w: current GDP must be positive", ErrInvalidInput)
	}
	if req.TargetGDPBillion <= 0 {
		return fmt.Errorf("%w: target GDP must be positive", ErrInvalidInput)
	}
	if req.TargetYear <= currentYear {
		return fmt.Errorf("%w: target year %d must be after %d", ErrInvalidInput, req.TargetYear, currentYear)
	}
	return nil
}
