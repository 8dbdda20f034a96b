package worldbank

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"

	"growth_dashboard/pkg/core/demographics"
	"growth_dashboard/pkg/core/projection"
)

// FetchMedianAgeHistory derives a historical median-age series from the
// youth-share indicator via the demographic proxy, oldest observation first.
// When the fetch fails or yields nothing usable, the bundled fallback series
// is returned, so callers always get a non-empty trend to project from.
func (c *Client) FetchMedianAgeHistory(ctx context.Context, countryCode string) []projection.AgePoint {
	url := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&per_page=%d", c.baseURL, countryCode, IndicatorYouthShare, historyPerPage)
	entries, err := c.fetchEntries(ctx, url)
	if err != nil {
		fmt.Printf("[WORLDBANK] %s median-age history degraded to bundled series: %v\n", countryCode, err)
		return projection.FallbackMedianAgeHistory
	}

	var points []projection.AgePoint
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		year, err := strconv.Atoi(e.Date)
		if err != nil {
			continue
		}
		points = append(points, projection.AgePoint{
			Year: year,
			Age:  roundTenth(demographics.EstimateMedianAge(*e.Value)),
		})
	}
	if len(points) < 2 {
		return projection.FallbackMedianAgeHistory
	}

	// The API returns newest-first; the trend calculation wants oldest-first.
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
