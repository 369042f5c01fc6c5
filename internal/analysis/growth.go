package analysis

import (
	"context"
	"log/slog"
	"sort"
)

// ComputeGrowth derives each surviving stat's year-over-year median
// price growth:
//
//	growth(y) = (median(y) - median(y-1)) / median(y-1) * 100
//
// Growth for year y is defined only when calendar year y-1 also
// survived filtering for the same block and its median is non-zero. A
// block's first surviving year, a gap left by filtering and a zero
// prior median all produce an undefined value; a gap never turns into
// a multi-year rate. Output is ordered by mesh block then year.
func (a *Analyzer) ComputeGrowth(ctx context.Context, stats []YearlyStat) []GrowthRecord {
	byBlock := make(map[string][]YearlyStat)
	for _, stat := range stats {
		byBlock[stat.MeshBlock] = append(byBlock[stat.MeshBlock], stat)
	}

	records := make([]GrowthRecord, 0, len(stats))
	defined := 0
	for _, blockStats := range byBlock {
		medianByYear := make(map[int]float64, len(blockStats))
		for _, stat := range blockStats {
			medianByYear[stat.Year] = stat.MedianPrice
		}

		for _, stat := range blockStats {
			record := GrowthRecord{
				MeshBlock:   stat.MeshBlock,
				Year:        stat.Year,
				SaleCount:   stat.SaleCount,
				MedianPrice: stat.MedianPrice,
			}
			if prev, ok := medianByYear[stat.Year-1]; ok && prev != 0 {
				record.GrowthPct = (stat.MedianPrice - prev) / prev * 100
				record.GrowthDefined = true
				defined++
			}
			records = append(records, record)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].MeshBlock != records[j].MeshBlock {
			return records[i].MeshBlock < records[j].MeshBlock
		}
		return records[i].Year < records[j].Year
	})

	a.logger.InfoContext(ctx, "computed year-over-year growth",
		slog.Int("record_count", len(records)),
		slog.Int("defined_count", defined))

	return records
}
