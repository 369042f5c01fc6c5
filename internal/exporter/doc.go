// Package exporter writes the growth audit table produced by the
// analysis pipeline.
//
// The Writer emits one CSV row per surviving (mesh block, year) group,
// ordered by mesh block then year, with median prices in whole units
// and growth percentages at two decimals. Undefined growth appears as
// an empty cell so the table distinguishes "no comparable prior year"
// from an actual 0.00% movement.
//
// Example usage:
//
//	writer := exporter.NewWriter(logger)
//	err := writer.WriteGrowthTable(ctx, "data/reports/growth.csv", records)
package exporter
