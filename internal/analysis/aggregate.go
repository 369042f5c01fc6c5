package analysis

import (
	"context"
	"log/slog"
	"sort"
)

type groupKey struct {
	block string
	year  int
}

// AggregateYearly groups sales by (mesh block, calendar year) and
// computes each group's sale count and median price. Output is ordered
// by mesh block then year so downstream output stays reproducible.
func (a *Analyzer) AggregateYearly(ctx context.Context, sales []Sale) []YearlyStat {
	groups := make(map[groupKey][]float64)
	for _, s := range sales {
		key := groupKey{block: s.MeshBlock, year: s.Year}
		groups[key] = append(groups[key], s.Price)
	}

	stats := make([]YearlyStat, 0, len(groups))
	for key, prices := range groups {
		stats = append(stats, YearlyStat{
			MeshBlock:   key.block,
			Year:        key.year,
			SaleCount:   len(prices),
			MedianPrice: median(prices),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].MeshBlock != stats[j].MeshBlock {
			return stats[i].MeshBlock < stats[j].MeshBlock
		}
		return stats[i].Year < stats[j].Year
	})

	a.logger.InfoContext(ctx, "aggregated yearly medians",
		slog.Int("sale_count", len(sales)),
		slog.Int("group_count", len(stats)))

	return stats
}

// median returns the middle value of the sorted prices, or the mean of
// the two middle values for an even count. Zero for an empty slice.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
