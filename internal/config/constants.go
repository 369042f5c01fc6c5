package config

// Application constants
const (
	AppName    = "meshgrowth"
	AppVersion = "1.0.0"

	// Default input files (relative to the working directory)
	DefaultPropertiesFile   = "data/gnaf_properties.csv"
	DefaultTransactionsFile = "data/transactions.csv"

	// Default directories
	DefaultDataDir    = "data"
	DefaultReportsDir = "data/reports"
	DefaultLogsDir    = "logs"

	// Well-known report files written into the output directory
	GrowthTableFileName       = "median_price_growth_by_mesh_block.csv"
	TopGrowthChartFileName    = "top_10_growth_areas.png"
	PriceHistoryChartFileName = "top_3_price_history.png"

	// Analysis defaults
	DefaultMinimumSalesCount   = 3
	DefaultLastNYearsForGrowth = 5
)
