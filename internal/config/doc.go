// Package config provides centralized configuration management for the
// meshgrowth pipeline. It handles loading configuration from multiple
// sources, validation, and provides a type-safe API for accessing
// configuration values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (YAML)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern MESHGROWTH_* for namespacing,
// mirroring the section and field names of the Config struct:
//
//	MESHGROWTH_INPUT_PROPERTIES_FILE=data/gnaf_properties.csv
//	MESHGROWTH_OUTPUT_DIR=data/reports
//	MESHGROWTH_ANALYSIS_MINIMUM_SALES_COUNT=3
//	MESHGROWTH_ANALYSIS_LAST_N_YEARS_FOR_GROWTH=5
//	MESHGROWTH_LOGGING_LEVEL=info
//
// # Validation
//
// All configuration is validated at load time to ensure:
//
//	- Input and output paths are present
//	- Thresholds are positive
//	- Logging settings name a known level, format and output
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The well-known output artifacts (growth table CSV and the two chart
// PNGs) resolve through path helpers on Config:
//
//	table := cfg.GrowthTablePath()
//	chart := cfg.TopGrowthChartPath()
package config
