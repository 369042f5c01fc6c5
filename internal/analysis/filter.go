package analysis

import (
	"context"
	"log/slog"
)

// FilterLowVolume drops (mesh block, year) groups with fewer sales than
// the configured minimum. A median over a handful of sales is too noisy
// to rank on. Input order is preserved.
func (a *Analyzer) FilterLowVolume(ctx context.Context, stats []YearlyStat) []YearlyStat {
	kept := make([]YearlyStat, 0, len(stats))
	for _, stat := range stats {
		if stat.SaleCount >= a.minimumSalesCount {
			kept = append(kept, stat)
		}
	}

	a.logger.InfoContext(ctx, "filtered low-volume groups",
		slog.Int("minimum_sales_count", a.minimumSalesCount),
		slog.Int("kept", len(kept)),
		slog.Int("removed", len(stats)-len(kept)))

	return kept
}
