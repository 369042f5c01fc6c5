package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"meshgrowth/internal/analysis"
	"meshgrowth/internal/chart"
	"meshgrowth/internal/config"
	"meshgrowth/internal/dataset"
	"meshgrowth/internal/exporter"
	"meshgrowth/internal/infrastructure"
	"meshgrowth/internal/validation"
)

const (
	// topGrowthAreaCount is the number of ranked mesh blocks shown in
	// the bar chart and the stdout preview table.
	topGrowthAreaCount = 10

	// priceHistoryAreaCount is the number of top-ranked mesh blocks
	// plotted in the median price history chart.
	priceHistoryAreaCount = 3
)

func main() {
	propertiesFile := flag.String("properties", "", "property to mesh-block table, .csv or .xlsx (defaults to config)")
	transactionsFile := flag.String("transactions", "", "sale transactions table, .csv or .xlsx (defaults to config)")
	outDir := flag.String("out", "", "output directory for the growth table and charts (defaults to config)")
	minSales := flag.Int("min-sales", 0, "minimum sales per mesh block and year (defaults to config)")
	window := flag.Int("window", 0, "number of recent years averaged for the growth ranking (defaults to config)")
	configPath := flag.String("config", "", "explicit config file path (defaults to config.yaml discovery)")
	flag.Parse()

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Command-line flags override file and environment values.
	if *propertiesFile != "" {
		cfg.Input.PropertiesFile = *propertiesFile
	}
	if *transactionsFile != "" {
		cfg.Input.TransactionsFile = *transactionsFile
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *minSales != 0 {
		cfg.Analysis.MinimumSalesCount = *minSales
	}
	if *window != 0 {
		cfg.Analysis.LastNYearsForGrowth = *window
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.EnsureRunID(context.Background())
	logger.InfoContext(ctx, "Starting mesh-block growth analysis",
		slog.String("properties_file", cfg.Input.PropertiesFile),
		slog.String("transactions_file", cfg.Input.TransactionsFile),
		slog.String("output_dir", cfg.Output.Dir),
		slog.Int("minimum_sales_count", cfg.Analysis.MinimumSalesCount),
		slog.Int("growth_window_years", cfg.Analysis.LastNYearsForGrowth))

	if err := cfg.EnsureOutputDir(); err != nil {
		logger.ErrorContext(ctx, "Failed to create output directory", slog.String("error", err.Error()))
		infrastructure.CloseLogFile()
		os.Exit(1)
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.ErrorContext(ctx, "Analysis failed", slog.String("error", err.Error()))
		slog.Error("Analysis failed", "error", err)
		infrastructure.CloseLogFile()
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Analysis completed",
		slog.String("growth_table", cfg.GrowthTablePath()),
		slog.String("top_growth_chart", cfg.TopGrowthChartPath()),
		slog.String("price_history_chart", cfg.PriceHistoryChartPath()))
}

// run executes the pipeline end to end: validate the input files, load
// both tables, join and aggregate, compute growth, then write the CSV
// table and charts. Errors are returned to main for logging and exit.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateInputFile(cfg.Input.PropertiesFile); err != nil {
		return err
	}
	if err := validator.ValidateInputFile(cfg.Input.TransactionsFile); err != nil {
		return err
	}
	if err := validator.ValidateOutputDirectory(cfg.Output.Dir); err != nil {
		return err
	}

	loader := dataset.NewLoader(logger)

	properties, err := loader.LoadProperties(ctx, cfg.Input.PropertiesFile)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d properties\n", len(properties))

	transactions, err := loader.LoadTransactions(ctx, cfg.Input.TransactionsFile)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d transactions\n", len(transactions))

	analyzer := analysis.NewAnalyzer(logger, analysis.AnalyzerConfig{
		MinimumSalesCount:   cfg.Analysis.MinimumSalesCount,
		LastNYearsForGrowth: cfg.Analysis.LastNYearsForGrowth,
	})

	sales := analyzer.JoinSales(ctx, properties, transactions)
	fmt.Printf("Merged %d transactions\n", len(sales))

	stats := analyzer.AggregateYearly(ctx, sales)
	kept := analyzer.FilterLowVolume(ctx, stats)
	fmt.Printf("Removed %d low-volume rows\n", len(stats)-len(kept))

	records := analyzer.ComputeGrowth(ctx, kept)
	ranked := analyzer.RankAreas(ctx, records)

	writer := exporter.NewWriter(logger)
	if err := writer.WriteGrowthTable(ctx, cfg.GrowthTablePath(), records); err != nil {
		return err
	}
	fmt.Printf("Wrote growth table: %s\n", cfg.GrowthTablePath())

	renderer := chart.NewRenderer(logger)
	topAreas := analysis.TopN(ranked, topGrowthAreaCount)
	if err := renderer.RenderTopGrowth(ctx, cfg.TopGrowthChartPath(), topAreas, cfg.Analysis.LastNYearsForGrowth); err != nil {
		return err
	}

	histories := analysis.PriceHistories(records, ranked, priceHistoryAreaCount)
	if err := renderer.RenderPriceHistory(ctx, cfg.PriceHistoryChartPath(), histories); err != nil {
		return err
	}

	printTopAreas(topAreas)
	fmt.Println("Analysis complete")
	return nil
}

// printTopAreas prints the ranked preview table to stdout.
func printTopAreas(areas []analysis.RankedArea) {
	if len(areas) == 0 {
		fmt.Println("No mesh blocks qualified for growth ranking")
		return
	}

	fmt.Println("\n=== TOP GROWTH AREAS BY MESH BLOCK ===")
	fmt.Println("Rank | Mesh Block  | Avg Growth")
	fmt.Println("-----|-------------|-----------")
	for i, area := range areas {
		fmt.Printf("%4d | %-11s | %9.2f%%\n", i+1, area.MeshBlock, area.AvgGrowthPct)
	}
	fmt.Println()
}
