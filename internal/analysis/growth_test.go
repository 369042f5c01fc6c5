package analysis

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_ComputeGrowth(t *testing.T) {
	analyzer := NewAnalyzer(slog.Default(), DefaultAnalyzerConfig())

	t.Run("consecutive years define growth", func(t *testing.T) {
		records := analyzer.ComputeGrowth(context.Background(), []YearlyStat{
			{MeshBlock: "MB01", Year: 2020, SaleCount: 3, MedianPrice: 100},
			{MeshBlock: "MB01", Year: 2021, SaleCount: 4, MedianPrice: 120},
			{MeshBlock: "MB01", Year: 2022, SaleCount: 3, MedianPrice: 90},
		})

		require.Len(t, records, 3)

		assert.False(t, records[0].GrowthDefined)

		assert.True(t, records[1].GrowthDefined)
		assert.InDelta(t, 20.0, records[1].GrowthPct, 1e-9)

		assert.True(t, records[2].GrowthDefined)
		assert.InDelta(t, -25.0, records[2].GrowthPct, 1e-9)
	})

	t.Run("filtered gap leaves growth undefined", func(t *testing.T) {
		// 2021 was removed by the low-volume filter: 2022 must not be
		// compared against 2020.
		records := analyzer.ComputeGrowth(context.Background(), []YearlyStat{
			{MeshBlock: "MB01", Year: 2020, SaleCount: 3, MedianPrice: 100},
			{MeshBlock: "MB01", Year: 2022, SaleCount: 3, MedianPrice: 200},
		})

		require.Len(t, records, 2)
		assert.False(t, records[0].GrowthDefined)
		assert.False(t, records[1].GrowthDefined)
	})

	t.Run("zero prior median leaves growth undefined", func(t *testing.T) {
		records := analyzer.ComputeGrowth(context.Background(), []YearlyStat{
			{MeshBlock: "MB01", Year: 2020, SaleCount: 3, MedianPrice: 0},
			{MeshBlock: "MB01", Year: 2021, SaleCount: 3, MedianPrice: 100},
		})

		require.Len(t, records, 2)
		assert.False(t, records[1].GrowthDefined)
		assert.Zero(t, records[1].GrowthPct)
	})

	t.Run("single surviving year", func(t *testing.T) {
		records := analyzer.ComputeGrowth(context.Background(), []YearlyStat{
			{MeshBlock: "MB01", Year: 2020, SaleCount: 3, MedianPrice: 100},
		})

		require.Len(t, records, 1)
		assert.False(t, records[0].GrowthDefined)
	})

	t.Run("blocks never compare against each other", func(t *testing.T) {
		records := analyzer.ComputeGrowth(context.Background(), []YearlyStat{
			{MeshBlock: "MB01", Year: 2020, SaleCount: 3, MedianPrice: 100},
			{MeshBlock: "MB02", Year: 2021, SaleCount: 3, MedianPrice: 200},
		})

		require.Len(t, records, 2)
		assert.False(t, records[0].GrowthDefined)
		assert.False(t, records[1].GrowthDefined)
	})

	t.Run("output ordered by block then year", func(t *testing.T) {
		records := analyzer.ComputeGrowth(context.Background(), []YearlyStat{
			{MeshBlock: "MB02", Year: 2021, SaleCount: 3, MedianPrice: 200},
			{MeshBlock: "MB01", Year: 2021, SaleCount: 3, MedianPrice: 120},
			{MeshBlock: "MB01", Year: 2020, SaleCount: 3, MedianPrice: 100},
		})

		require.Len(t, records, 3)
		assert.Equal(t, "MB01", records[0].MeshBlock)
		assert.Equal(t, 2020, records[0].Year)
		assert.Equal(t, "MB01", records[1].MeshBlock)
		assert.Equal(t, 2021, records[1].Year)
		assert.Equal(t, "MB02", records[2].MeshBlock)
	})

	t.Run("stats carry through sale count and median", func(t *testing.T) {
		records := analyzer.ComputeGrowth(context.Background(), []YearlyStat{
			{MeshBlock: "MB01", Year: 2020, SaleCount: 7, MedianPrice: 425000},
		})

		require.Len(t, records, 1)
		assert.Equal(t, 7, records[0].SaleCount)
		assert.InDelta(t, 425000, records[0].MedianPrice, 1e-9)
	})
}
