package demographics

import (
	"math"
	"testing"

	"growth_dashboard/pkg/models"
)

func TestEstimateMedianAge(t *testing.T) {
	// Zero-offset calibration point.
	if got := EstimateMedianAge(25); got != 28.5 {
		t.Errorf("EstimateMedianAge(25) = %f, want 28.5", got)
	}

	// Younger population (higher youth share) lowers the estimate.
	// 28.5 + (25 - 30) * 0.3 = 27.0
	if got := EstimateMedianAge(30); math.Abs(got-27.0) > 1e-9 {
		t.Errorf("EstimateMedianAge(30) = %f, want 27.0", got)
	}

	// 28.5 + (25 - 20) * 0.3 = 30.0
	if got := EstimateMedianAge(20); math.Abs(got-30.0) > 1e-9 {
		t.Errorf("EstimateMedianAge(20) = %f, want 30.0", got)
	}
}

func TestEstimateMedianAgeIsUnclamped(t *testing.T) {
	// Extreme inputs pass through the formula unchanged. 100% youth share gives
	// 28.5 - 22.5 = 6.0; 0% gives 28.5 + 7.5 = 36.0. Implausible but intentional.
	if got := EstimateMedianAge(100); math.Abs(got-6.0) > 1e-9 {
		t.Errorf("EstimateMedianAge(100) = %f, want 6.0", got)
	}
	if got := EstimateMedianAge(0); math.Abs(got-36.0) > 1e-9 {
		t.Errorf("EstimateMedianAge(0) = %f, want 36.0", got)
	}
}

func TestClassifyAgeBoundaries(t *testing.T) {
	cases := []struct {
		age  float64
		want models.AgeCategory
	}{
		{20, models.AgeYoung},
		{29.9, models.AgeYoung},
		{30, models.AgeMiddleAged},
		{35, models.AgeMiddleAged},
		{40, models.AgeMiddleAged},
		{40.1, models.AgeAging},
		{55, models.AgeAging},
	}
	for _, c := range cases {
		if got := ClassifyAge(c.age); got != c.want {
			t.Errorf("ClassifyAge(%v) = %s, want %s", c.age, got, c.want)
		}
	}
}

func TestClassifyDependencyBoundaries(t *testing.T) {
	cases := []struct {
		ratio float64
		want  models.DependencyLevel
	}{
		{30, models.DependencyLow},
		{49.9, models.DependencyLow},
		{50, models.DependencyModerate},
		{60, models.DependencyModerate},
		{70, models.DependencyModerate},
		{70.1, models.DependencyHigh},
		{90, models.DependencyHigh},
	}
	for _, c := range cases {
		if got := ClassifyDependency(c.ratio); got != c.want {
			t.Errorf("ClassifyDependency(%v) = %s, want %s", c.ratio, got, c.want)
		}
	}
}
