package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"meshgrowth/internal/analysis"
	"meshgrowth/internal/errors"
)

// GrowthTableHeader is the fixed column set of the growth audit table.
var GrowthTableHeader = []string{"mesh_block", "year", "sale_count", "median_price", "yoy_growth_pct"}

// Writer writes pipeline results to disk as CSV.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a writer. A nil logger falls back to slog.Default().
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// WriteGrowthTable writes the complete growth table, one row per
// surviving (mesh block, year) group including undefined-growth rows.
// Rows are ordered by mesh block then year so identical inputs produce
// byte-identical files. An empty record set still writes the header.
func (w *Writer) WriteGrowthTable(ctx context.Context, path string, records []analysis.GrowthRecord) error {
	w.logger.InfoContext(ctx, "writing growth table",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	ordered := make([]analysis.GrowthRecord, len(records))
	copy(ordered, records)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].MeshBlock != ordered[j].MeshBlock {
			return ordered[i].MeshBlock < ordered[j].MeshBlock
		}
		return ordered[i].Year < ordered[j].Year
	})

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for growth table", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create growth table file", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(GrowthTableHeader); err != nil {
		return errors.NewStorageError("failed to write growth table header", err)
	}

	for _, record := range ordered {
		row := []string{
			record.MeshBlock,
			strconv.Itoa(record.Year),
			strconv.Itoa(record.SaleCount),
			formatMedian(record.MedianPrice),
			formatGrowth(record),
		}
		if err := writer.Write(row); err != nil {
			return errors.NewStorageError(
				fmt.Sprintf("failed to write growth table row for %s year %d", record.MeshBlock, record.Year), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush growth table", err)
	}

	w.logger.InfoContext(ctx, "wrote growth table",
		slog.String("path", path),
		slog.Int("row_count", len(ordered)))

	return nil
}
