package models

// AgeCategory buckets a median-age estimate.
type AgeCategory string

const (
	AgeYoung      AgeCategory = "Young"
	AgeMiddleAged AgeCategory = "MiddleAged"
	AgeAging      AgeCategory = "Aging"
)

// DependencyLevel buckets a dependency ratio.
type DependencyLevel string

const (
	DependencyLow      DependencyLevel = "Low"
	DependencyModerate DependencyLevel = "Moderate"
	DependencyHigh     DependencyLevel = "High"
)

// EconomicSnapshot holds the five indicators the dashboard runs on.
// Every numeric field is populated after a fetch completes: indicators that could
// not be retrieved carry the documented fallback constant instead, and their codes
// are listed in Degraded. Observation years refer to the most recent data point
// (or the fallback vintage when degraded).
type EconomicSnapshot struct {
	CountryCode string `json:"country_code"`

	CurrentGDPUSD float64 `json:"current_gdp_usd"`
	GDPYear       int     `json:"gdp_year"`

	LatestGrowthRatePct float64 `json:"latest_growth_rate_pct"`
	GrowthRateYear      int     `json:"growth_rate_year"`

	TotalPopulation float64 `json:"total_population"`
	PopulationYear  int     `json:"population_year"`

	DependencyRatioPct float64 `json:"dependency_ratio_pct"`
	DependencyYear     int     `json:"dependency_year"`

	YouthPopulationSharePct float64 `json:"youth_population_share_pct"`
	YouthShareYear          int     `json:"youth_share_year"`

	Degraded []string `json:"degraded,omitempty"`
}

// GrowthRequest is the user-facing input. GDP figures arrive in billions of USD.
type GrowthRequest struct {
	CurrentGDPBillion float64 `json:"current_gdp_billion"`
	TargetGDPBillion  float64 `json:"target_gdp_billion"`
	TargetYear        int     `json:"target_year"`
	CountryCode       string  `json:"country_code,omitempty"`
}

// GrowthResult is the solved scenario.
type GrowthResult struct {
	RequiredAnnualGrowthPct float64 `json:"required_annual_growth_pct"`
	YearsToTarget           int     `json:"years_to_target"`
	MeetsCurrentRate        bool    `json:"meets_current_rate"`
	LatestGrowthRatePct     float64 `json:"latest_growth_rate_pct"`
	GrowthRateYear          int     `json:"growth_rate_year"`
}

// DemographicProjection carries the age-structure estimates for the scenario.
type DemographicProjection struct {
	ProjectedPopulation        float64         `json:"projected_population"`
	CurrentMedianAgeEstimate   float64         `json:"current_median_age_estimate"`
	ProjectedMedianAgeEstimate float64         `json:"projected_median_age_estimate"`
	AgeCategory                AgeCategory     `json:"age_category"`
	ProjectedAgeCategory       AgeCategory     `json:"projected_age_category"`
	DependencyLevel            DependencyLevel `json:"dependency_level"`
}

// CountryPerCapita is one row of the bundled comparison dataset.
type CountryPerCapita struct {
	Country      string  `json:"country"`
	PerCapitaUSD float64 `json:"per_capita_usd"`
}

// PerCapitaComparison ranks the bundled dataset against the projected figure.
// ComparableCountries is ordered by absolute distance ascending, ties broken by
// country name ascending.
type PerCapitaComparison struct {
	CurrentPerCapitaUSD   float64            `json:"current_per_capita_usd"`
	ProjectedPerCapitaUSD float64            `json:"projected_per_capita_usd"`
	ComparableCountries   []CountryPerCapita `json:"comparable_countries"`
}

// GrowthReport bundles everything one scenario computation produces.
type GrowthReport struct {
	RequestID    string                `json:"request_id"`
	Request      GrowthRequest         `json:"request"`
	Snapshot     *EconomicSnapshot     `json:"snapshot"`
	Growth       GrowthResult          `json:"growth"`
	Demographics DemographicProjection `json:"demographics"`
	PerCapita    PerCapitaComparison   `json:"per_capita"`
}

// SectorShare is one sector's share of GDP for a country.
type SectorShare struct {
	Sector   string  `json:"sector"`
	SharePct float64 `json:"share_pct"`
	Year     int     `json:"year"`
}

// SectorBreakdown groups the value-added shares the statistics API exposes.
// Industry includes manufacturing; Manufacturing is also reported separately.
type SectorBreakdown struct {
	CountryCode string        `json:"country_code"`
	Agriculture SectorShare   `json:"agriculture"`
	Industry    SectorShare   `json:"industry"`
	Services    SectorShare   `json:"services"`
	Detailed    []SectorShare `json:"detailed,omitempty"`
	Degraded    []string      `json:"degraded,omitempty"`
}
