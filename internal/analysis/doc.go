// Package analysis implements the in-memory stages of the mesh-block
// growth pipeline. It consolidates joining, aggregation, filtering,
// growth calculation and ranking into one package so the whole
// transformation from raw records to ranked areas lives in one place.
//
// # Architecture
//
// The Analyzer exposes one method per pipeline stage:
//
// 1. JoinSales: inner-joins transactions to mesh blocks via property IDs
// 2. AggregateYearly: groups by (mesh block, year), computes count and median
// 3. FilterLowVolume: drops groups below the minimum sales count
// 4. ComputeGrowth: derives year-over-year growth for consecutive years
// 5. RankAreas: averages recent growth per block and orders blocks by it
//
// # Usage
//
//	analyzer := analysis.NewAnalyzer(logger, analysis.AnalyzerConfig{
//		MinimumSalesCount:   3,
//		LastNYearsForGrowth: 5,
//	})
//
//	sales := analyzer.JoinSales(ctx, properties, transactions)
//	stats := analyzer.FilterLowVolume(ctx, analyzer.AggregateYearly(ctx, sales))
//	records := analyzer.ComputeGrowth(ctx, stats)
//	ranked := analyzer.RankAreas(ctx, records)
//
// # Data Flow
//
// Stages run strictly in order, each consuming the previous stage's
// output:
//
//	Sales → YearlyStats → filtered YearlyStats → GrowthRecords → RankedAreas
//
// The Analyzer holds configuration and a logger only. No stage keeps
// state between calls and none calls back into an earlier stage.
//
// # Undefined Growth
//
// A block's first surviving year, a gap left by filtering and a zero
// prior-year median all produce a GrowthRecord with GrowthDefined set
// to false. Undefined growth is a value, not an error: the CSV output
// leaves the cell empty and ranking skips it.
package analysis
