package analysis

import (
	"log/slog"
)

// Analyzer runs the in-memory stages of the growth pipeline: joining
// transactions to mesh blocks, yearly aggregation, low-volume filtering,
// growth calculation and ranking. It holds configuration and a logger
// only; every method is a pure transformation over its inputs.
type Analyzer struct {
	logger              *slog.Logger
	minimumSalesCount   int
	lastNYearsForGrowth int
}

// AnalyzerConfig holds the two recognized analysis options.
type AnalyzerConfig struct {
	MinimumSalesCount   int // Minimum sales per (mesh block, year) group to keep it
	LastNYearsForGrowth int // Ranking window over each block's most recent surviving years
}

// NewAnalyzer creates an analyzer with the given options. Non-positive
// option values fall back to the standard defaults.
func NewAnalyzer(logger *slog.Logger, config AnalyzerConfig) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}

	if config.MinimumSalesCount <= 0 {
		config.MinimumSalesCount = 3
	}
	if config.LastNYearsForGrowth <= 0 {
		config.LastNYearsForGrowth = 5
	}

	return &Analyzer{
		logger:              logger,
		minimumSalesCount:   config.MinimumSalesCount,
		lastNYearsForGrowth: config.LastNYearsForGrowth,
	}
}

// DefaultAnalyzerConfig returns the standard analysis options.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MinimumSalesCount:   3,
		LastNYearsForGrowth: 5,
	}
}
