package analysis

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{
			name:   "odd count takes middle value",
			values: []float64{100, 200, 300},
			want:   200,
		},
		{
			name:   "even count averages two middle values",
			values: []float64{100, 200},
			want:   150,
		},
		{
			name:   "unsorted input is sorted first",
			values: []float64{300, 100, 200},
			want:   200,
		},
		{
			name:   "single value",
			values: []float64{42},
			want:   42,
		},
		{
			name:   "four values",
			values: []float64{10, 20, 30, 100},
			want:   25,
		},
		{
			name:   "empty",
			values: nil,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, median(tt.values), 1e-9)
		})
	}
}

func TestMedian_DoesNotMutateInput(t *testing.T) {
	values := []float64{300, 100, 200}

	median(values)

	assert.Equal(t, []float64{300, 100, 200}, values)
}

func TestAnalyzer_AggregateYearly(t *testing.T) {
	tests := []struct {
		name  string
		sales []Sale
		want  []YearlyStat
	}{
		{
			name: "groups by block and year",
			sales: []Sale{
				{MeshBlock: "MB01", Price: 100, Year: 2020},
				{MeshBlock: "MB01", Price: 200, Year: 2020},
				{MeshBlock: "MB01", Price: 300, Year: 2021},
				{MeshBlock: "MB02", Price: 400, Year: 2020},
			},
			want: []YearlyStat{
				{MeshBlock: "MB01", Year: 2020, SaleCount: 2, MedianPrice: 150},
				{MeshBlock: "MB01", Year: 2021, SaleCount: 1, MedianPrice: 300},
				{MeshBlock: "MB02", Year: 2020, SaleCount: 1, MedianPrice: 400},
			},
		},
		{
			name: "output ordered by block then year regardless of input order",
			sales: []Sale{
				{MeshBlock: "MB02", Price: 400, Year: 2021},
				{MeshBlock: "MB01", Price: 100, Year: 2021},
				{MeshBlock: "MB01", Price: 200, Year: 2020},
			},
			want: []YearlyStat{
				{MeshBlock: "MB01", Year: 2020, SaleCount: 1, MedianPrice: 200},
				{MeshBlock: "MB01", Year: 2021, SaleCount: 1, MedianPrice: 100},
				{MeshBlock: "MB02", Year: 2021, SaleCount: 1, MedianPrice: 400},
			},
		},
		{
			name:  "empty input",
			sales: nil,
			want:  []YearlyStat{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewAnalyzer(slog.Default(), DefaultAnalyzerConfig())

			got := analyzer.AggregateYearly(context.Background(), tt.sales)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyzer_FilterLowVolume(t *testing.T) {
	stats := []YearlyStat{
		{MeshBlock: "MB01", Year: 2020, SaleCount: 5, MedianPrice: 100},
		{MeshBlock: "MB01", Year: 2021, SaleCount: 2, MedianPrice: 110},
		{MeshBlock: "MB02", Year: 2020, SaleCount: 3, MedianPrice: 200},
	}

	analyzer := NewAnalyzer(slog.Default(), AnalyzerConfig{MinimumSalesCount: 3, LastNYearsForGrowth: 5})

	got := analyzer.FilterLowVolume(context.Background(), stats)

	assert.Equal(t, []YearlyStat{
		{MeshBlock: "MB01", Year: 2020, SaleCount: 5, MedianPrice: 100},
		{MeshBlock: "MB02", Year: 2020, SaleCount: 3, MedianPrice: 200},
	}, got)
}
