package worldbank

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// wbPayload builds a minimal World Bank style response: [metadata, data].
func wbPayload(rows ...string) string {
	return fmt.Sprintf(`[{"page":1,"pages":1,"per_page":5,"total":%d},[%s]]`, len(rows), strings.Join(rows, ","))
}

func wbRow(year string, value interface{}) string {
	return fmt.Sprintf(`{"indicator":{"id":"X"},"country":{"id":"IN"},"date":"%s","value":%v}`, year, value)
}

// indicatorServer routes each indicator code to a canned response body, with
// an optional status override.
func indicatorServer(t *testing.T, bodies map[string]string, statuses map[string]int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		indicator := parts[len(parts)-1]
		if status, ok := statuses[indicator]; ok {
			w.WriteHeader(status)
			return
		}
		body, ok := bodies[indicator]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, body)
	}))
}

func liveBodies() map[string]string {
	return map[string]string{
		IndicatorGDP:        wbPayload(wbRow("2024", 3.5e12)),
		IndicatorGDPGrowth:  wbPayload(wbRow("2024", 8.2)),
		IndicatorPopulation: wbPayload(wbRow("2023", 1.42e9)),
		IndicatorDependency: wbPayload(wbRow("2023", 48.1)),
		IndicatorYouthShare: wbPayload(wbRow("2023", 25.5)),
	}
}

func TestFetchSnapshotLive(t *testing.T) {
	srv := indicatorServer(t, liveBodies(), nil)
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, IndiaFallbacks())
	snap := c.FetchSnapshot(context.Background(), "IN")

	if len(snap.Degraded) != 0 {
		t.Fatalf("unexpected degradation: %v", snap.Degraded)
	}
	if snap.CurrentGDPUSD != 3.5e12 || snap.GDPYear != 2024 {
		t.Errorf("GDP = %v (%d)", snap.CurrentGDPUSD, snap.GDPYear)
	}
	if snap.LatestGrowthRatePct != 8.2 {
		t.Errorf("growth = %v", snap.LatestGrowthRatePct)
	}
	if snap.TotalPopulation != 1.42e9 || snap.PopulationYear != 2023 {
		t.Errorf("population = %v (%d)", snap.TotalPopulation, snap.PopulationYear)
	}
	if snap.DependencyRatioPct != 48.1 || snap.YouthPopulationSharePct != 25.5 {
		t.Errorf("dependency = %v, youth = %v", snap.DependencyRatioPct, snap.YouthPopulationSharePct)
	}
}

func TestFetchSnapshotSkipsLeadingNulls(t *testing.T) {
	bodies := liveBodies()
	// Latest year not yet populated: null leads, older value must win.
	bodies[IndicatorGDP] = wbPayload(wbRow("2025", "null"), wbRow("2024", 3.1e12))
	srv := indicatorServer(t, bodies, nil)
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, IndiaFallbacks())
	snap := c.FetchSnapshot(context.Background(), "IN")
	if snap.CurrentGDPUSD != 3.1e12 || snap.GDPYear != 2024 {
		t.Errorf("GDP = %v (%d), want 3.1e12 (2024)", snap.CurrentGDPUSD, snap.GDPYear)
	}
	if len(snap.Degraded) != 0 {
		t.Errorf("null-skipping must not degrade: %v", snap.Degraded)
	}
}

func TestFetchSnapshotIndependentFailures(t *testing.T) {
	srv := indicatorServer(t, liveBodies(), map[string]int{IndicatorPopulation: http.StatusInternalServerError})
	defer srv.Close()

	fb := IndiaFallbacks()
	c := NewClient(srv.URL, time.Second, fb)
	snap := c.FetchSnapshot(context.Background(), "IN")

	// Population fell back; everything else stayed live.
	if snap.TotalPopulation != fb.Population || snap.PopulationYear != fb.PopulationYear {
		t.Errorf("population = %v (%d), want fallback", snap.TotalPopulation, snap.PopulationYear)
	}
	if snap.CurrentGDPUSD != 3.5e12 {
		t.Errorf("GDP should stay live, got %v", snap.CurrentGDPUSD)
	}
	if len(snap.Degraded) != 1 || snap.Degraded[0] != IndicatorPopulation {
		t.Errorf("Degraded = %v, want [%s]", snap.Degraded, IndicatorPopulation)
	}
}

func TestFetchSnapshotTotalOutage(t *testing.T) {
	// Unreachable server: every field must still be populated from fallbacks.
	fb := IndiaFallbacks()
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, fb)
	snap := c.FetchSnapshot(context.Background(), "IN")

	if len(snap.Degraded) != 5 {
		t.Fatalf("Degraded = %v, want all five indicators", snap.Degraded)
	}
	if snap.CurrentGDPUSD != fb.GDPUSD || snap.LatestGrowthRatePct != fb.GrowthRatePct ||
		snap.TotalPopulation != fb.Population || snap.DependencyRatioPct != fb.DependencyRatioPct ||
		snap.YouthPopulationSharePct != fb.YouthSharePct {
		t.Errorf("snapshot not fully populated from fallbacks: %+v", snap)
	}
}

func TestFetchSnapshotEmptyDataElement(t *testing.T) {
	bodies := liveBodies()
	// The API reports "no data" as a null data element.
	bodies[IndicatorDependency] = `[{"page":1,"pages":0,"per_page":5,"total":0},null]`
	srv := indicatorServer(t, bodies, nil)
	defer srv.Close()

	fb := IndiaFallbacks()
	c := NewClient(srv.URL, time.Second, fb)
	snap := c.FetchSnapshot(context.Background(), "IN")
	if snap.DependencyRatioPct != fb.DependencyRatioPct {
		t.Errorf("dependency = %v, want fallback %v", snap.DependencyRatioPct, fb.DependencyRatioPct)
	}
	if len(snap.Degraded) != 1 || snap.Degraded[0] != IndicatorDependency {
		t.Errorf("Degraded = %v", snap.Degraded)
	}
}

func TestFetchSnapshotRepairsMalformedPayload(t *testing.T) {
	bodies := liveBodies()
	// Trailing comma; strict JSON decode fails, the repair pass recovers it.
	bodies[IndicatorGDPGrowth] = `[{"page":1},[{"date":"2024","value":7.1},]]`
	srv := indicatorServer(t, bodies, nil)
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, IndiaFallbacks())
	snap := c.FetchSnapshot(context.Background(), "IN")
	if snap.LatestGrowthRatePct != 7.1 {
		t.Errorf("growth = %v, want repaired 7.1", snap.LatestGrowthRatePct)
	}
	if len(snap.Degraded) != 0 {
		t.Errorf("repairable payload must not degrade: %v", snap.Degraded)
	}
}

func TestFetchSectorShares(t *testing.T) {
	bodies := map[string]string{
		IndicatorAgriculture:   wbPayload(wbRow("2023", 16.8)),
		IndicatorIndustry:      wbPayload(wbRow("2023", 25.2)),
		IndicatorServices:      wbPayload(wbRow("2023", 48.9)),
		IndicatorManufacturing: wbPayload(wbRow("2023", 12.9)),
	}
	srv := indicatorServer(t, bodies, nil)
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, IndiaFallbacks())
	b := c.FetchSectorShares(context.Background(), "IN")

	if b.Agriculture.SharePct != 16.8 || b.Industry.SharePct != 25.2 || b.Services.SharePct != 48.9 {
		t.Errorf("grouped shares wrong: %+v", b)
	}
	if len(b.Detailed) != 4 {
		t.Fatalf("detailed shares = %d, want 4", len(b.Detailed))
	}
	if b.Detailed[2].Sector != "Manufacturing" || b.Detailed[2].SharePct != 12.9 {
		t.Errorf("manufacturing detail wrong: %+v", b.Detailed[2])
	}
	if len(b.Degraded) != 0 {
		t.Errorf("unexpected degradation: %v", b.Degraded)
	}
}

func TestFetchSectorSharesFallback(t *testing.T) {
	fb := IndiaFallbacks()
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, fb)
	b := c.FetchSectorShares(context.Background(), "IN")
	if b.Agriculture.SharePct != fb.AgriculturePct || b.Services.SharePct != fb.ServicesPct {
		t.Errorf("sector fallbacks not applied: %+v", b)
	}
	if len(b.Degraded) != 4 {
		t.Errorf("Degraded = %v, want all four sector indicators", b.Degraded)
	}
}

func TestFetchMedianAgeHistory(t *testing.T) {
	// Newest-first youth shares; proxy converts each to a median-age estimate
	// and the series comes back oldest-first.
	bodies := map[string]string{
		IndicatorYouthShare: wbPayload(wbRow("2023", 24.8), wbRow("2022", 25.2), wbRow("2021", 25.6)),
	}
	srv := indicatorServer(t, bodies, nil)
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, IndiaFallbacks())
	points := c.FetchMedianAgeHistory(context.Background(), "IN")
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	if points[0].Year != 2021 || points[2].Year != 2023 {
		t.Errorf("series not oldest-first: %+v", points)
	}
	// 28.5 + (25 - 24.8) * 0.3 = 28.56 -> 28.6
	if math.Abs(points[2].Age-28.6) > 1e-9 {
		t.Errorf("2023 estimate = %v, want 28.6", points[2].Age)
	}
}

func TestFetchMedianAgeHistoryFallsBack(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, IndiaFallbacks())
	points := c.FetchMedianAgeHistory(context.Background(), "IN")
	if len(points) == 0 || points[0].Year != 1960 {
		t.Errorf("expected bundled series, got %+v", points)
	}
}
