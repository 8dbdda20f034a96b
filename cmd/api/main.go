package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"growth_dashboard/pkg/api/config"
	"growth_dashboard/pkg/api/growth"
	"growth_dashboard/pkg/api/sectors"
	"growth_dashboard/pkg/core/compare"
	"growth_dashboard/pkg/core/settings"
	"growth_dashboard/pkg/core/worldbank"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := settings.DefaultConfig()
	if raw, err := os.ReadFile("config/indicators.yaml"); err != nil {
		fmt.Printf("[WARNING] Failed to read config/indicators.yaml: %v\n", err)
		fmt.Println("  Falling back to compiled-in defaults")
	} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
		fmt.Printf("[WARNING] Failed to parse config/indicators.yaml: %v\n", err)
		fmt.Println("  Falling back to compiled-in defaults")
		cfg = settings.DefaultConfig()
	}
	cfg.Normalize()

	// The bundled artifacts are optional: a missing dataset or code book
	// degrades the comparison features but never prevents startup.
	table, err := compare.LoadCSV(cfg.DatasetPath)
	if err != nil {
		fmt.Printf("[WARNING] Per-capita dataset unavailable: %v\n", err)
		table = nil
	} else {
		fmt.Printf("[DATASET] Loaded %d countries from %s\n", table.Len(), cfg.DatasetPath)
	}

	codes, err := compare.LoadCodeBook(cfg.CountryCodesPath)
	if err != nil {
		fmt.Printf("[WARNING] Country code book unavailable: %v\n", err)
		codes = nil
	} else {
		fmt.Printf("[DATASET] Loaded %d country codes from %s\n", codes.Len(), cfg.CountryCodesPath)
	}

	mgr := settings.NewManager(cfg, codes)
	client := worldbank.NewClient(cfg.APIBaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second, cfg.Fallbacks)

	configHandler := config.NewHandler(mgr, table.Len())
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	growthHandler := growth.NewHandler(client, table, mgr)
	http.HandleFunc("/api/growth/report", growthHandler.HandleReport)
	http.HandleFunc("/api/growth/summary", growthHandler.HandleSummary)

	sectorsHandler := sectors.NewHandler(client, table, mgr)
	http.HandleFunc("/api/sectors/compare", sectorsHandler.HandleCompare)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - POST /api/growth/report")
	fmt.Println("  - POST /api/growth/summary  (rendered HTML report)")
	fmt.Println("  - POST /api/sectors/compare")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
