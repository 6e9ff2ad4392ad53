package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"sentipulse/internal/config"
	"sentipulse/internal/dataprocessing"
	apperrors "sentipulse/internal/errors"
	"sentipulse/internal/exporter"
	"sentipulse/internal/infrastructure"
	"sentipulse/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	tradesPath := flag.String("trades", "", "path to the trade executions file (CSV or XLSX)")
	sentimentPath := flag.String("sentiment", "", "path to the fear/greed index file (CSV or XLSX)")
	outDir := flag.String("out", "", "output directory for exported statistics")
	format := flag.String("format", "", "export format: csv, json or both")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	// Flags override configuration.
	if *tradesPath != "" {
		cfg.Input.TradesFile = *tradesPath
	}
	if *sentimentPath != "" {
		cfg.Input.SentimentFile = *sentimentPath
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *format != "" {
		cfg.Output.Format = *format
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.NewRunContext(context.Background())

	logger.InfoContext(ctx, "starting sentiment and trader performance analysis",
		slog.String("trades_file", cfg.Input.TradesFile),
		slog.String("sentiment_file", cfg.Input.SentimentFile),
		slog.String("output_dir", cfg.Output.Dir))

	pipeline := dataprocessing.NewPipeline(logger)
	if err := pipeline.Run(ctx, cfg.Input.TradesFile, cfg.Input.SentimentFile); err != nil {
		if apperrors.IsEmptyResult(err) {
			fmt.Fprintln(os.Stderr, "No overlapping dates between the two datasets; nothing to analyze.")
		} else {
			fmt.Fprintf(os.Stderr, "Pipeline aborted: %v\n", err)
		}
		logger.ErrorContext(ctx, "pipeline aborted", slog.String("error", err.Error()))
		return 1
	}

	merged := pipeline.Merged()
	stats := dataprocessing.AggregateBySentiment(merged)
	overview := dataprocessing.Overview(merged)

	reporter := report.NewReporter(os.Stdout)
	reporter.WriteSummary(pipeline.Summary())
	reporter.WriteOverview(overview)
	reporter.WriteGroupStats(stats)
	if insights, ok := report.DeriveInsights(stats); ok {
		reporter.WriteInsights(insights)
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		logger.ErrorContext(ctx, "failed to create output directory", slog.String("error", err.Error()))
		return 1
	}

	if cfg.Output.Format == "csv" || cfg.Output.Format == "both" {
		w := exporter.NewCSVWriter(logger)
		if err := w.WriteGroupStats(ctx, cfg.OutputPath("sentiment_stats.csv"), stats); err != nil {
			logger.ErrorContext(ctx, "CSV export failed", slog.String("error", err.Error()))
			return 1
		}
	}
	if cfg.Output.Format == "json" || cfg.Output.Format == "both" {
		w := exporter.NewJSONWriter(logger)
		if err := w.WriteGroupStats(ctx, cfg.OutputPath("sentiment_stats.json"), stats, overview); err != nil {
			logger.ErrorContext(ctx, "JSON export failed", slog.String("error", err.Error()))
			return 1
		}
	}

	logger.InfoContext(ctx, "analysis completed successfully",
		slog.Int("merged_records", merged.Len()),
		slog.Int("sentiment_groups", len(stats)))

	return 0
}
