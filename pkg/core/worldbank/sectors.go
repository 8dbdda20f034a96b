package worldbank

import (
	"context"
	"fmt"

	"growth_dashboard/pkg/models"
)

// FetchSectorShares retrieves value-added shares of GDP (agriculture,
// industry, services, plus manufacturing as a detail line) for a country.
// Same degradation policy as FetchSnapshot: per-indicator fallbacks, no
// errors. Note the three grouped shares come from the statistics API directly
// and typically sum a little under 100% (taxes and subsidies are unallocated).
func (c *Client) FetchSectorShares(ctx context.Context, countryCode string) *models.SectorBreakdown {
	b := &models.SectorBreakdown{CountryCode: countryCode}
	fb := c.fallbacks

	fetch := func(indicator, sector string, fallbackPct float64) models.SectorShare {
		obs, err := c.latestValue(ctx, countryCode, indicator, recentPerPage)
		if err != nil {
			fmt.Printf("[WORLDBANK] %s/%s degraded to fallback: %v\n", countryCode, indicator, err)
			b.Degraded = append(b.Degraded, indicator)
			return models.SectorShare{Sector: sector, SharePct: fallbackPct, Year: fb.SectorYear}
		}
		return models.SectorShare{Sector: sector, SharePct: obs.Value, Year: obs.Year}
	}

	b.Agriculture = fetch(IndicatorAgriculture, "Agriculture", fb.AgriculturePct)
	b.Industry = fetch(IndicatorIndustry, "Industry", fb.IndustryPct)
	b.Services = fetch(IndicatorServices, "Services", fb.ServicesPct)

	manufacturing := fetch(IndicatorManufacturing, "Manufacturing", fb.ManufacturingPct)
	b.Detailed = []models.SectorShare{b.Agriculture, b.Industry, manufacturing, b.Services}

	return b
}
