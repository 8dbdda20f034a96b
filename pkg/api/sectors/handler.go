package sectors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"growth_dashboard/pkg/core/compare"
	"growth_dashboard/pkg/core/projection"
	"growth_dashboard/pkg/core/settings"
	"growth_dashboard/pkg/core/worldbank"
	"growth_dashboard/pkg/models"
)

// Handler serves the sector-share comparison endpoint.
type Handler struct {
	client   *worldbank.Client
	table    *compare.Table
	settings *settings.Manager
}

// NewHandler wires the handler.
func NewHandler(client *worldbank.Client, table *compare.Table, mgr *settings.Manager) *Handler {
	return &Handler{client: client, table: table, settings: mgr}
}

// CompareRequest drives the international sector comparison: the subject
// country's breakdown, its projected shares at the target year, and the
// current breakdowns of the countries closest to the projected per-capita GDP.
type CompareRequest struct {
	ProjectedPerCapitaUSD float64 `json:"projected_per_capita_usd"`
	TargetYear            int     `json:"target_year"`
	Count                 int     `json:"count,omitempty"`
}

// CountrySectors pairs a comparison country with its breakdown.
type CountrySectors struct {
	Country      string                  `json:"country"`
	CountryCode  string                  `json:"country_code"`
	PerCapitaUSD float64                 `json:"per_capita_usd"`
	Breakdown    *models.SectorBreakdown `json:"breakdown,omitempty"`
}

// CompareResponse is the endpoint payload.
type CompareResponse struct {
	Subject         *models.SectorBreakdown `json:"subject"`
	ProjectedShares []models.SectorShare    `json:"projected_shares"`
	Comparisons     []CountrySectors        `json:"comparisons"`
}

// HandleCompare builds the sector comparison. Countries without a known ISO
// code or usable data are reported without a breakdown rather than failing
// the whole response.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	count := req.Count
	if count < 1 {
		count = h.settings.Snapshot().ComparisonCount
	}

	ctx := r.Context()
	subjectCode := h.settings.ActiveCountry()
	subject := h.client.FetchSectorShares(ctx, subjectCode)

	resp := CompareResponse{
		Subject:     subject,
		Comparisons: []CountrySectors{},
	}
	if req.TargetYear > 0 {
		resp.ProjectedShares = projection.ProjectSectorShares(subject, req.TargetYear)
	}

	codes := h.settings.Codes()
	for _, c := range h.table.FindClosest(req.ProjectedPerCapitaUSD, count) {
		entry := CountrySectors{Country: c.Country, PerCapitaUSD: c.PerCapitaUSD}
		code, ok := codes.Code(c.Country)
		if !ok {
			fmt.Printf("[SECTORS] no country code for %q, skipping breakdown\n", c.Country)
			resp.Comparisons = append(resp.Comparisons, entry)
			continue
		}
		entry.CountryCode = code
		entry.Breakdown = h.client.FetchSectorShares(ctx, code)
		resp.Comparisons = append(resp.Comparisons, entry)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
