package settings

import (
	"testing"

	"growth_dashboard/pkg/core/compare"
)

func TestNormalizeFillsZeroFields(t *testing.T) {
	cfg := Config{ActiveCountry: "VN"}
	cfg.Normalize()
	if cfg.ActiveCountry != "VN" {
		t.Errorf("explicit value overwritten: %s", cfg.ActiveCountry)
	}
	if cfg.APIBaseURL == "" || cfg.TimeoutSeconds <= 0 || cfg.ComparisonCount <= 0 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Fallbacks.Population == 0 {
		t.Error("fallback constants not defaulted")
	}
}

func TestSetActiveCountry(t *testing.T) {
	codes := compare.NewCodeBook(map[string]string{"India": "IN", "Vietnam": "VN"})
	m := NewManager(DefaultConfig(), codes)

	if m.ActiveCountry() != "IN" {
		t.Fatalf("default country = %s", m.ActiveCountry())
	}
	if err := m.SetActiveCountry("VN"); err != nil {
		t.Fatalf("switch to VN: %v", err)
	}
	if m.ActiveCountry() != "VN" {
		t.Errorf("country not switched: %s", m.ActiveCountry())
	}
	if err := m.SetActiveCountry("XX"); err == nil {
		t.Error("unknown code accepted")
	}
	if err := m.SetActiveCountry(""); err == nil {
		t.Error("empty code accepted")
	}
}

func TestSetActiveCountryWithoutCodeBook(t *testing.T) {
	m := NewManager(DefaultConfig(), nil)
	if err := m.SetActiveCountry("BR"); err != nil {
		t.Errorf("nil code book should skip validation: %v", err)
	}
}
