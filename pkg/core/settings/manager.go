// Package settings holds the service configuration loaded at startup and the
// one piece of mutable state the API exposes: the active subject country.
package settings

import (
	"fmt"
	"sync"

	"growth_dashboard/pkg/core/compare"
	"growth_dashboard/pkg/core/worldbank"
)

// Config is the service configuration, loaded from config/indicators.yaml.
// Zero values select the compiled-in defaults.
type Config struct {
	ActiveCountry    string              `yaml:"active_country"`
	APIBaseURL       string              `yaml:"api_base_url"`
	TimeoutSeconds   int                 `yaml:"timeout_seconds"`
	ComparisonCount  int                 `yaml:"comparison_count"`
	DatasetPath      string              `yaml:"dataset_path"`
	CountryCodesPath string              `yaml:"country_codes_path"`
	Fallbacks        worldbank.Fallbacks `yaml:"fallbacks"`
}

// DefaultConfig returns the configuration used when the yaml file is missing.
func DefaultConfig() Config {
	return Config{
		ActiveCountry:    "IN",
		APIBaseURL:       worldbank.DefaultBaseURL,
		TimeoutSeconds:   5,
		ComparisonCount:  5,
		DatasetPath:      "data/gdp-per-capita-by-country.csv",
		CountryCodesPath: "data/country_codes.hjson",
		Fallbacks:        worldbank.IndiaFallbacks(),
	}
}

// Normalize fills any zero-valued field from the defaults so a partial yaml
// file still produces a complete configuration.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.ActiveCountry == "" {
		c.ActiveCountry = def.ActiveCountry
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = def.APIBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
	if c.ComparisonCount <= 0 {
		c.ComparisonCount = def.ComparisonCount
	}
	if c.DatasetPath == "" {
		c.DatasetPath = def.DatasetPath
	}
	if c.CountryCodesPath == "" {
		c.CountryCodesPath = def.CountryCodesPath
	}
	if c.Fallbacks == (worldbank.Fallbacks{}) {
		c.Fallbacks = def.Fallbacks
	}
}

// Manager guards the active country and hands out configuration.
type Manager struct {
	mu     sync.RWMutex
	config Config
	codes  *compare.CodeBook
}

// NewManager creates a manager. codes may be nil (country switching is then
// unvalidated beyond a non-empty check).
func NewManager(config Config, codes *compare.CodeBook) *Manager {
	config.Normalize()
	return &Manager{config: config, codes: codes}
}

// ActiveCountry returns the current subject country code.
func (m *Manager) ActiveCountry() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.ActiveCountry
}

// SetActiveCountry switches the subject country. The code must be known to
// the code book when one is loaded.
func (m *Manager) SetActiveCountry(code string) error {
	if code == "" {
		return fmt.Errorf("country code must not be empty")
	}
	if m.codes != nil && !m.codes.Known(code) {
		return fmt.Errorf("country code %s not found", code)
	}
	m.mu.Lock()
	m.config.ActiveCountry = code
	m.mu.Unlock()
	fmt.Printf("[CONFIG] Active country set to %s\n", code)
	return nil
}

// Snapshot returns a copy of the current configuration.
func (m *Manager) Snapshot() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Codes returns the country code book (may be nil).
func (m *Manager) Codes() *compare.CodeBook {
	return m.codes
}
