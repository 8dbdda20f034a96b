package growth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"growth_dashboard/pkg/core/compare"
	"growth_dashboard/pkg/core/demographics"
	growthcore "growth_dashboard/pkg/core/growth"
	"growth_dashboard/pkg/core/projection"
	"growth_dashboard/pkg/core/report"
	"growth_dashboard/pkg/core/settings"
	"growth_dashboard/pkg/core/worldbank"
	"growth_dashboard/pkg/models"
)

// Handler serves the growth scenario endpoints.
type Handler struct {
	client   *worldbank.Client
	table    *compare.Table
	settings *settings.Manager
}

// NewHandler wires the handler. table may be nil when the bundled dataset
// failed to load; comparisons then come back empty.
func NewHandler(client *worldbank.Client, table *compare.Table, mgr *settings.Manager) *Handler {
	return &Handler{client: client, table: table, settings: mgr}
}

// HandleReport computes a full growth scenario and responds with JSON.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}

	var req models.GrowthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.buildReport(r.Context(), req)
	if err != nil {
		if errors.Is(err, growthcore.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleSummary runs the same pipeline and responds with the rendered HTML
// summary instead of raw JSON.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}

	var req models.GrowthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.buildReport(r.Context(), req)
	if err != nil {
		if errors.Is(err, growthcore.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	html, err := report.RenderHTML(report.BuildMarkdown(result))
	if err != nil {
		http.Error(w, fmt.Sprintf("Report rendering failed: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

// buildReport runs the whole pipeline: validate, fetch, solve, project,
// estimate, compare. Indicator fetches never fail (they degrade); the only
// error paths are invalid input.
func (h *Handler) buildReport(ctx context.Context, req models.GrowthRequest) (*models.GrowthReport, error) {
	reqID := uuid.NewString()[:8]
	currentYear := time.Now().Year()

	if err := growthcore.ValidateRequest(&req, currentYear); err != nil {
		fmt.Printf("[GROWTH] req=%s rejected: %v\n", reqID, err)
		return nil, err
	}

	country := req.CountryCode
	if country == "" {
		country = h.settings.ActiveCountry()
	}
	years := req.TargetYear - currentYear
	fmt.Printf("[GROWTH] req=%s country=%s current=%.2fB target=%.2fB years=%d\n",
		reqID, country, req.CurrentGDPBillion, req.TargetGDPBillion, years)

	// Inputs arrive in billions; all arithmetic runs on raw USD.
	currentGDP := req.CurrentGDPBillion * 1e9
	targetGDP := req.TargetGDPBillion * 1e9

	snap := h.client.FetchSnapshot(ctx, country)

	rate, err := growthcore.Solve(currentGDP, targetGDP, years)
	if err != nil {
		return nil, err
	}
	growthResult := models.GrowthResult{
		RequiredAnnualGrowthPct: rate,
		YearsToTarget:           years,
		MeetsCurrentRate:        snap.LatestGrowthRatePct >= rate,
		LatestGrowthRatePct:     snap.LatestGrowthRatePct,
		GrowthRateYear:          snap.GrowthRateYear,
	}

	// Population is projected from its observation year, not from today, so a
	// stale observation still compounds over the right span.
	projectedPop := snap.TotalPopulation
	if req.TargetYear > snap.PopulationYear {
		projectedPop, err = projection.ProjectPopulation(snap.TotalPopulation, snap.PopulationYear, req.TargetYear)
		if err != nil {
			return nil, err
		}
	}

	currentMedian := roundTenth(demographics.EstimateMedianAge(snap.YouthPopulationSharePct))
	history := h.client.FetchMedianAgeHistory(ctx, country)
	projectedMedian := projection.ProjectMedianAge(currentMedian, snap.YouthShareYear, req.TargetYear, history)

	demo := models.DemographicProjection{
		ProjectedPopulation:        math.Round(projectedPop),
		CurrentMedianAgeEstimate:   currentMedian,
		ProjectedMedianAgeEstimate: projectedMedian,
		AgeCategory:                demographics.ClassifyAge(currentMedian),
		ProjectedAgeCategory:       demographics.ClassifyAge(projectedMedian),
		DependencyLevel:            demographics.ClassifyDependency(snap.DependencyRatioPct),
	}

	perCapita := models.PerCapitaComparison{
		CurrentPerCapitaUSD:   growthcore.PerCapita(currentGDP, snap.TotalPopulation),
		ProjectedPerCapitaUSD: growthcore.PerCapita(targetGDP, projectedPop),
		ComparableCountries:   h.table.FindClosest(growthcore.PerCapita(targetGDP, projectedPop), h.settings.Snapshot().ComparisonCount),
	}

	if len(snap.Degraded) > 0 {
		fmt.Printf("[GROWTH] req=%s degraded indicators: %v\n", reqID, snap.Degraded)
	}

	return &models.GrowthReport{
		RequestID:    reqID,
		Request:      req,
		Snapshot:     snap,
		Growth:       growthResult,
		Demographics: demo,
		PerCapita:    perCapita,
	}, nil
}

// allowPost applies the CORS headers and filters methods. Returns false when
// the request is already answered.
func allowPost(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return false
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
