package exporter

import (
	"fmt"

	"meshgrowth/internal/analysis"
)

// formatMedian renders a median price in whole currency units.
// Medians of even-sized groups can carry a half unit; the table rounds
// it away rather than printing spurious precision.
func formatMedian(f float64) string {
	return fmt.Sprintf("%.0f", f)
}

// formatGrowth renders defined growth with exactly 2 decimal places,
// so values like 13.4 appear as 13.40. Undefined growth is an empty
// cell, never a zero.
func formatGrowth(record analysis.GrowthRecord) string {
	if !record.GrowthDefined {
		return ""
	}
	return fmt.Sprintf("%.2f", record.GrowthPct)
}
