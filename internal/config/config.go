package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"meshgrowth/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Input    InputConfig    `yaml:"input" envconfig:"INPUT"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig contains the paths of the two input tables
type InputConfig struct {
	PropertiesFile   string `yaml:"properties_file" envconfig:"PROPERTIES_FILE"`
	TransactionsFile string `yaml:"transactions_file" envconfig:"TRANSACTIONS_FILE"`
}

// OutputConfig contains the output directory and artifact names
type OutputConfig struct {
	Dir               string `yaml:"dir" envconfig:"DIR"`
	GrowthTableFile   string `yaml:"growth_table_file" envconfig:"GROWTH_TABLE_FILE"`
	TopGrowthChart    string `yaml:"top_growth_chart" envconfig:"TOP_GROWTH_CHART"`
	PriceHistoryChart string `yaml:"price_history_chart" envconfig:"PRICE_HISTORY_CHART"`
}

// AnalysisConfig contains the pipeline thresholds
type AnalysisConfig struct {
	MinimumSalesCount   int `yaml:"minimum_sales_count" envconfig:"MINIMUM_SALES_COUNT"`
	LastNYearsForGrowth int `yaml:"last_n_years_for_growth" envconfig:"LAST_N_YEARS_FOR_GROWTH"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load loads configuration from defaults, an optional discovered config
// file, and environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	return LoadFrom(findConfigFile())
}

// LoadFrom is like Load but reads the given config file instead of
// searching the usual locations. An empty path skips the file layer.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file %s", path), err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file %s", path), err)
		}
	}

	// Environment variables override file values. Defaults live in
	// Default(), not in struct tags, so unset variables leave the
	// current value untouched.
	if err := envconfig.Process("MESHGROWTH", cfg); err != nil {
		return nil, errors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError("config validation failed", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file found in the common
// locations, or empty when none exists
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Validate checks that the configuration is internally consistent.
// Load calls it automatically; callers that mutate a loaded Config,
// for example to apply command-line overrides, should call it again.
func (c *Config) Validate() error {
	if c.Input.PropertiesFile == "" {
		return fmt.Errorf("properties file path must not be empty")
	}

	if c.Input.TransactionsFile == "" {
		return fmt.Errorf("transactions file path must not be empty")
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	if c.Output.GrowthTableFile == "" || c.Output.TopGrowthChart == "" || c.Output.PriceHistoryChart == "" {
		return fmt.Errorf("output artifact names must not be empty")
	}

	if c.Analysis.MinimumSalesCount < 1 {
		return fmt.Errorf("minimum sales count must be at least 1, got %d", c.Analysis.MinimumSalesCount)
	}

	if c.Analysis.LastNYearsForGrowth < 1 {
		return fmt.Errorf("growth window must be at least 1 year, got %d", c.Analysis.LastNYearsForGrowth)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}

	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("log file path required for output %q", c.Logging.Output)
	}

	return nil
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Input: InputConfig{
			PropertiesFile:   DefaultPropertiesFile,
			TransactionsFile: DefaultTransactionsFile,
		},
		Output: OutputConfig{
			Dir:               DefaultReportsDir,
			GrowthTableFile:   GrowthTableFileName,
			TopGrowthChart:    TopGrowthChartFileName,
			PriceHistoryChart: PriceHistoryChartFileName,
		},
		Analysis: AnalysisConfig{
			MinimumSalesCount:   DefaultMinimumSalesCount,
			LastNYearsForGrowth: DefaultLastNYearsForGrowth,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/meshgrowth.log",
		},
	}
}
