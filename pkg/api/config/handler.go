package config

import (
	"encoding/json"
	"fmt"
	"net/http"

	"growth_dashboard/pkg/core/settings"
	"growth_dashboard/pkg/core/worldbank"
)

type Response struct {
	ActiveCountry   string              `json:"active_country"`
	APIBaseURL      string              `json:"api_base_url"`
	ComparisonCount int                 `json:"comparison_count"`
	DatasetSize     int                 `json:"dataset_size"`
	Fallbacks       worldbank.Fallbacks `json:"fallbacks"`
}

type SwitchRequest struct {
	CountryCode string `json:"country_code"`
}

// Handler holds dependencies for config endpoints.
type Handler struct {
	Settings    *settings.Manager
	DatasetSize int
}

// NewHandler creates a new config handler.
func NewHandler(mgr *settings.Manager, datasetSize int) *Handler {
	return &Handler{Settings: mgr, DatasetSize: datasetSize}
}

// HandleConfig reports the effective configuration, including the versioned
// fallback constants so the dashboard can label degraded figures.
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	cfg := h.Settings.Snapshot()
	resp := Response{
		ActiveCountry:   cfg.ActiveCountry,
		APIBaseURL:      cfg.APIBaseURL,
		ComparisonCount: cfg.ComparisonCount,
		DatasetSize:     h.DatasetSize,
		Fallbacks:       cfg.Fallbacks,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleSwitch changes the active subject country.
func (h *Handler) HandleSwitch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req SwitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Settings.SetActiveCountry(req.CountryCode); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fmt.Fprintf(w, "Success: Switched to %s", req.CountryCode)
}
