package worldbank

// Fallbacks are the documented constants substituted when an indicator cannot
// be fetched. They are a versioned policy choice, not discovered at runtime:
// update them together with the vintage years when refreshing the bundle.
type Fallbacks struct {
	GDPUSD  float64 `yaml:"gdp_usd"`
	GDPYear int     `yaml:"gdp_year"`

	GrowthRatePct  float64 `yaml:"growth_rate_pct"`
	GrowthRateYear int     `yaml:"growth_rate_year"`

	Population     float64 `yaml:"population"`
	PopulationYear int     `yaml:"population_year"`

	DependencyRatioPct float64 `yaml:"dependency_ratio_pct"`
	DependencyYear     int     `yaml:"dependency_year"`

	YouthSharePct  float64 `yaml:"youth_share_pct"`
	YouthShareYear int     `yaml:"youth_share_year"`

	MedianAge     float64 `yaml:"median_age"`
	MedianAgeYear int     `yaml:"median_age_year"`

	AgriculturePct   float64 `yaml:"agriculture_pct"`
	IndustryPct      float64 `yaml:"industry_pct"`
	ManufacturingPct float64 `yaml:"manufacturing_pct"`
	ServicesPct      float64 `yaml:"services_pct"`
	SectorYear       int     `yaml:"sector_year"`
}

// IndiaFallbacks returns the bundled constants for India.
// Vintages: IMF/World Bank 2024 estimates; median age from UN WPP 2023.
func IndiaFallbacks() Fallbacks {
	return Fallbacks{
		GDPUSD:  3.9121e12,
		GDPYear: 2024,

		GrowthRatePct:  6.5,
		GrowthRateYear: 2024,

		Population:     1_450_935_791,
		PopulationYear: 2024,

		DependencyRatioPct: 47.5,
		DependencyYear:     2024,

		YouthSharePct:  24.8,
		YouthShareYear: 2024,

		MedianAge:     28.7,
		MedianAgeYear: 2023,

		AgriculturePct:   16.4,
		IndustryPct:      25.0,
		ManufacturingPct: 13.0,
		ServicesPct:      49.6,
		SectorYear:       2023,
	}
}
