package projection

import "growth_dashboard/pkg/models"

// Annual drift (percentage points per year) applied to grouped sector shares.
// Captures the structural-transformation trend: services absorb share from
// agriculture while industry stays roughly flat. Drifts sum to zero so the
// renormalization below is only correcting the unallocated remainder.
const (
	agricultureDriftPP = -0.30
	industryDriftPP    = +0.05
	servicesDriftPP    = +0.25

	minSharePct = 1.0 // no sector drifts below this floor
)

// ProjectSectorShares drifts a grouped breakdown to targetYear and
// renormalizes the three shares to sum to 100. Years at or before the
// observation year return the observed shares normalized the same way.
func ProjectSectorShares(b *models.SectorBreakdown, targetYear int) []models.SectorShare {
	baseYear := b.Agriculture.Year
	years := float64(targetYear - baseYear)
	if years < 0 {
		years = 0
	}

	agri := drifted(b.Agriculture.SharePct, agricultureDriftPP, years)
	ind := drifted(b.Industry.SharePct, industryDriftPP, years)
	srv := drifted(b.Services.SharePct, servicesDriftPP, years)

	total := agri + ind + srv
	if total <= 0 {
		return []models.SectorShare{}
	}
	scale := 100 / total

	return []models.SectorShare{
		{Sector: "Agriculture", SharePct: agri * scale, Year: targetYear},
		{Sector: "Industry", SharePct: ind * scale, Year: targetYear},
		{Sector: "Services", SharePct: srv * scale, Year: targetYear},
	}
}

func drifted(share, driftPP, years float64) float64 {
	v := share + driftPP*years
	if v < minSharePct {
		return minSharePct
	}
	return v
}
