package main

import (
	"fmt"

	"growth_dashboard/pkg/core/demographics"
	"growth_dashboard/pkg/core/growth"
	"growth_dashboard/pkg/core/projection"
	"growth_dashboard/pkg/core/worldbank"
	"growth_dashboard/pkg/models"
)

// Offline sanity run of the scenario math against the bundled fallback
// constants. No network, no server: the numbers printed here should match
// what /api/growth/report returns when the statistics API is unreachable.
func main() {
	fb := worldbank.IndiaFallbacks()

	const targetGDPBillion = 30000.0
	const targetYear = 2047
	currentGDP := fb.GDPUSD
	targetGDP := targetGDPBillion * 1e9
	years := targetYear - fb.GDPYear

	fmt.Println("====================================================================")
	fmt.Printf("        GROWTH SCENARIO CHECK  (IN, %d -> %d)\n", fb.GDPYear, targetYear)
	fmt.Println("====================================================================")

	rate, err := growth.Solve(currentGDP, targetGDP, years)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	pRow := func(label string, value string) {
		fmt.Printf("%-38s | %s\n", label, value)
	}
	pRow("Current GDP", fmt.Sprintf("$%.4g (%d)", currentGDP, fb.GDPYear))
	pRow("Target GDP", fmt.Sprintf("$%.4g (%d)", targetGDP, targetYear))
	pRow("Required annual growth", fmt.Sprintf("%.2f%% over %d years", rate, years))
	pRow("Latest observed growth", fmt.Sprintf("%.1f%% (%d)", fb.GrowthRatePct, fb.GrowthRateYear))
	if fb.GrowthRatePct >= rate {
		pRow("Verdict", "on track at the current pace")
	} else {
		pRow("Verdict", fmt.Sprintf("short of target by %.2f pp/yr", rate-fb.GrowthRatePct))
	}

	// Round-trip: compounding the solved rate must land on the target.
	check := currentGDP
	for i := 0; i < years; i++ {
		check *= 1 + rate/100
	}
	pRow("Round-trip compounded GDP", fmt.Sprintf("$%.6g (target $%.6g)", check, targetGDP))

	fmt.Println("--------------------------------------------------------------------")

	pop, err := projection.ProjectPopulation(fb.Population, fb.PopulationYear, targetYear)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	pRow("Population", fmt.Sprintf("%.0f (%d) -> %.0f (%d)", fb.Population, fb.PopulationYear, pop, targetYear))
	pRow("Per-capita GDP at target", fmt.Sprintf("$%.2f", growth.PerCapita(targetGDP, pop)))

	medianAge := demographics.EstimateMedianAge(fb.YouthSharePct)
	pRow("Median age estimate", fmt.Sprintf("%.2f (youth share %.1f%%)", medianAge, fb.YouthSharePct))
	pRow("Age category", string(demographics.ClassifyAge(medianAge)))
	pRow("Dependency level", fmt.Sprintf("%s (ratio %.1f%%)", demographics.ClassifyDependency(fb.DependencyRatioPct), fb.DependencyRatioPct))

	projected := projection.ProjectMedianAge(medianAge, fb.YouthShareYear, targetYear, projection.FallbackMedianAgeHistory)
	pRow("Projected median age", fmt.Sprintf("%.1f (%d)", projected, targetYear))

	fmt.Println("--------------------------------------------------------------------")

	breakdown := &models.SectorBreakdown{
		CountryCode: "IN",
		Agriculture: models.SectorShare{Sector: "Agriculture", SharePct: fb.AgriculturePct, Year: fb.SectorYear},
		Industry:    models.SectorShare{Sector: "Industry", SharePct: fb.IndustryPct, Year: fb.SectorYear},
		Services:    models.SectorShare{Sector: "Services", SharePct: fb.ServicesPct, Year: fb.SectorYear},
	}
	shares := projection.ProjectSectorShares(breakdown, targetYear)
	sum := 0.0
	for _, s := range shares {
		pRow("Sector share at target", fmt.Sprintf("%s %.1f%%", s.Sector, s.SharePct))
		sum += s.SharePct
	}
	pRow("Sector shares sum", fmt.Sprintf("%.4f", sum))

	fmt.Println("--------------------------------------------------------------------")

	// Reference scenario: $3,900B to $10,000B over 10 years should solve to
	// roughly 9.88%/yr.
	refRate, err := growth.Solve(3900e9, 10000e9, 10)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	pRow("Reference 3900B -> 10000B / 10yr", fmt.Sprintf("%.4f%% (expect ~9.88%%)", refRate))

	fmt.Println("--------------------------------------------------------------------")
	fmt.Println("Population growth-rate schedule:")
	for _, y := range []int{2025, 2029, 2030, 2039, 2040, 2049, 2050, 2060} {
		pRow(fmt.Sprintf("  rate(%d)", y), fmt.Sprintf("%.1f%%", projection.GrowthRateFor(y)))
	}

	fmt.Println("====================================================================")
}
