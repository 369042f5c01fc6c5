package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// GrowthTablePath returns the full path of the growth table CSV
func (c *Config) GrowthTablePath() string {
	return filepath.Join(c.Output.Dir, c.Output.GrowthTableFile)
}

// TopGrowthChartPath returns the full path of the top growth bar chart PNG
func (c *Config) TopGrowthChartPath() string {
	return filepath.Join(c.Output.Dir, c.Output.TopGrowthChart)
}

// PriceHistoryChartPath returns the full path of the price history line chart PNG
func (c *Config) PriceHistoryChartPath() string {
	return filepath.Join(c.Output.Dir, c.Output.PriceHistoryChart)
}

// EnsureOutputDir creates the output directory if it does not exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %v", c.Output.Dir, err)
	}

	if logger := slog.Default(); logger != nil {
		logger.Debug("Ensured output directory exists",
			slog.String("directory", c.Output.Dir))
	}

	return nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
