package analysis

// Sale is one transaction resolved to its mesh block. The join keeps
// only transactions whose property has a known mesh-block code.
type Sale struct {
	MeshBlock string
	Price     float64
	Year      int
}

// YearlyStat summarises the sales of one mesh block in one calendar year.
type YearlyStat struct {
	MeshBlock   string
	Year        int
	SaleCount   int
	MedianPrice float64
}

// GrowthRecord extends a YearlyStat with its year-over-year median price
// growth. GrowthDefined is false when the immediately preceding calendar
// year has no surviving stat for the block or its median is zero;
// GrowthPct carries no meaning in that case.
type GrowthRecord struct {
	MeshBlock     string
	Year          int
	SaleCount     int
	MedianPrice   float64
	GrowthPct     float64
	GrowthDefined bool
}

// RankedArea is one mesh block ranked by its average growth over the
// most recent window of surviving years.
type RankedArea struct {
	MeshBlock    string
	AvgGrowthPct float64
}

// BlockSeries is the year-by-year median price history of one mesh
// block, ordered by year ascending. Years and Prices are parallel.
type BlockSeries struct {
	MeshBlock string
	Years     []int
	Prices    []float64
}
