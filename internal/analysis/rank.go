package analysis

import (
	"context"
	"log/slog"
	"sort"
)

// RankAreas averages each block's defined growth values over its most
// recent surviving years, up to the configured window, and sorts blocks
// by that average descending. Ties order by mesh-block identifier
// ascending so repeated runs rank identically. A block with no defined
// growth inside its window is left out rather than scored zero.
func (a *Analyzer) RankAreas(ctx context.Context, records []GrowthRecord) []RankedArea {
	byBlock := make(map[string][]GrowthRecord)
	for _, record := range records {
		byBlock[record.MeshBlock] = append(byBlock[record.MeshBlock], record)
	}

	ranked := make([]RankedArea, 0, len(byBlock))
	for block, blockRecords := range byBlock {
		sort.Slice(blockRecords, func(i, j int) bool {
			return blockRecords[i].Year < blockRecords[j].Year
		})

		window := blockRecords
		if len(window) > a.lastNYearsForGrowth {
			window = window[len(window)-a.lastNYearsForGrowth:]
		}

		var sum float64
		var count int
		for _, record := range window {
			if record.GrowthDefined {
				sum += record.GrowthPct
				count++
			}
		}
		if count == 0 {
			continue
		}

		ranked = append(ranked, RankedArea{
			MeshBlock:    block,
			AvgGrowthPct: sum / float64(count),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AvgGrowthPct != ranked[j].AvgGrowthPct {
			return ranked[i].AvgGrowthPct > ranked[j].AvgGrowthPct
		}
		return ranked[i].MeshBlock < ranked[j].MeshBlock
	})

	a.logger.InfoContext(ctx, "ranked growth areas",
		slog.Int("window_years", a.lastNYearsForGrowth),
		slog.Int("ranked_count", len(ranked)))

	return ranked
}

// TopN returns the first n ranked areas, or all of them when fewer exist.
func TopN(ranked []RankedArea, n int) []RankedArea {
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// PriceHistories collects the full surviving median-price history of
// the first n ranked blocks, in rank order, for charting.
func PriceHistories(records []GrowthRecord, ranked []RankedArea, n int) []BlockSeries {
	byBlock := make(map[string][]GrowthRecord)
	for _, record := range records {
		byBlock[record.MeshBlock] = append(byBlock[record.MeshBlock], record)
	}

	top := TopN(ranked, n)
	series := make([]BlockSeries, 0, len(top))
	for _, area := range top {
		blockRecords := byBlock[area.MeshBlock]
		sort.Slice(blockRecords, func(i, j int) bool {
			return blockRecords[i].Year < blockRecords[j].Year
		})

		s := BlockSeries{MeshBlock: area.MeshBlock}
		for _, record := range blockRecords {
			s.Years = append(s.Years, record.Year)
			s.Prices = append(s.Prices, record.MedianPrice)
		}
		series = append(series, s)
	}

	return series
}
