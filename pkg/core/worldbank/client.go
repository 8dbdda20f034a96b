// Package worldbank fetches economic indicators from the World Bank open data
// API. Every fetch is best-effort: a failure substitutes a documented fallback
// constant for that indicator only and is recorded on the snapshot, never
// surfaced as an error. No retries, no caching across calls.
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"growth_dashboard/pkg/core/utils"
	"growth_dashboard/pkg/models"
)

// Indicator codes used by the dashboard.
const (
	IndicatorGDP           = "NY.GDP.MKTP.CD"    // GDP, current USD
	IndicatorGDPGrowth     = "NY.GDP.MKTP.KD.ZG" // GDP growth, annual %
	IndicatorPopulation    = "SP.POP.TOTL"       // total population
	IndicatorDependency    = "SP.POP.DPND"       // age dependency ratio, %
	IndicatorYouthShare    = "SP.POP.0014.TO.ZS" // population ages 0-14, % of total
	IndicatorAgriculture   = "NV.AGR.TOTL.ZS"    // agriculture value added, % of GDP
	IndicatorIndustry      = "NV.IND.TOTL.ZS"    // industry value added, % of GDP
	IndicatorManufacturing = "NV.IND.MANF.ZS"    // manufacturing value added, % of GDP
	IndicatorServices      = "NV.SRV.TOTL.ZS"    // services value added, % of GDP
)

const (
	// DefaultBaseURL is the public API endpoint.
	DefaultBaseURL = "https://api.worldbank.org/v2"
	// DefaultTimeout bounds each indicator request. Timeouts degrade into
	// fallbacks like any other failure.
	DefaultTimeout = 5 * time.Second

	// recentPerPage asks for the few most recent observations so we can skip
	// leading nulls (the latest year is often not yet populated).
	recentPerPage  = 5
	historyPerPage = 20
)

// Client talks to the statistics API.
type Client struct {
	baseURL   string
	client    *http.Client
	fallbacks Fallbacks
}

// NewClient creates a client. Empty baseURL and zero timeout select the
// defaults.
func NewClient(baseURL string, timeout time.Duration, fallbacks Fallbacks) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   baseURL,
		client:    &http.Client{Timeout: timeout},
		fallbacks: fallbacks,
	}
}

// observation is one indicator data point.
type observation struct {
	Value float64
	Year  int
}

// apiEntry mirrors one element of the API's data array.
type apiEntry struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// latestValue fetches the most recent non-null observation for an indicator.
func (c *Client) latestValue(ctx context.Context, countryCode, indicator string, perPage int) (observation, error) {
	url := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&per_page=%d", c.baseURL, countryCode, indicator, perPage)
	entries, err := c.fetchEntries(ctx, url)
	if err != nil {
		return observation{}, err
	}
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		year, err := strconv.Atoi(e.Date)
		if err != nil {
			continue
		}
		return observation{Value: *e.Value, Year: year}, nil
	}
	return observation{}, fmt.Errorf("no data points for %s/%s", countryCode, indicator)
}

// fetchEntries performs one API call and decodes the payload. The API returns
// a two-element array: [metadata, data]. Error pages sometimes arrive as
// malformed JSON, so decoding is lenient.
func (c *Client) fetchEntries(ctx context.Context, url string) ([]apiEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload []json.RawMessage
	if err := utils.DecodeLenient(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	if len(payload) < 2 {
		return nil, fmt.Errorf("payload has no data element (likely an API error message)")
	}

	// A missing year arrives as a literal null data element; that decodes to
	// an empty slice and is handled by the caller as "no data points".
	var entries []apiEntry
	if err := json.Unmarshal(payload[1], &entries); err != nil {
		return nil, fmt.Errorf("data element is not an indicator array: %w", err)
	}
	return entries, nil
}

// FetchSnapshot retrieves the five dashboard indicators for a country. Each
// indicator fails independently: a failed fetch substitutes that indicator's
// fallback constant and records the indicator code in Degraded. The returned
// snapshot is always fully populated and never accompanied by an error.
func (c *Client) FetchSnapshot(ctx context.Context, countryCode string) *models.EconomicSnapshot {
	snap := &models.EconomicSnapshot{CountryCode: countryCode}
	fb := c.fallbacks

	fetch := func(indicator string, fallback observation) observation {
		obs, err := c.latestValue(ctx, countryCode, indicator, recentPerPage)
		if err != nil {
			fmt.Printf("[WORLDBANK] %s/%s degraded to fallback: %v\n", countryCode, indicator, err)
			snap.Degraded = append(snap.Degraded, indicator)
			return fallback
		}
		return obs
	}

	gdp := fetch(IndicatorGDP, observation{fb.GDPUSD, fb.GDPYear})
	snap.CurrentGDPUSD, snap.GDPYear = gdp.Value, gdp.Year

	growthRate := fetch(IndicatorGDPGrowth, observation{fb.GrowthRatePct, fb.GrowthRateYear})
	snap.LatestGrowthRatePct, snap.GrowthRateYear = growthRate.Value, growthRate.Year

	pop := fetch(IndicatorPopulation, observation{fb.Population, fb.PopulationYear})
	snap.TotalPopulation, snap.PopulationYear = pop.Value, pop.Year

	dep := fetch(IndicatorDependency, observation{fb.DependencyRatioPct, fb.DependencyYear})
	snap.DependencyRatioPct, snap.DependencyYear = dep.Value, dep.Year

	youth := fetch(IndicatorYouthShare, observation{fb.YouthSharePct, fb.YouthShareYear})
	snap.YouthPopulationSharePct, snap.YouthShareYear = youth.Value, youth.Year

	return snap
}
