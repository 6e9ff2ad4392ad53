package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"sentipulse/internal/errors"
	"sentipulse/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(ctx context.Context, path string, options WriteOptions) error {
	w.logger.InfoContext(ctx, "writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create CSV file", err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return errors.NewStorageError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return errors.NewStorageError("failed to write CSV header row", err)
		}
	}

	for _, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return errors.NewStorageError("failed to write CSV data row", err)
		}
	}

	return nil
}

// WriteGroupStats writes per-sentiment statistics using the standard column
// layout.
func (w *CSVWriter) WriteGroupStats(ctx context.Context, path string, stats []domain.SentimentGroupStats) error {
	headers := []string{
		"Classification", "TradeCount", "TotalPnL", "AvgPnL", "PnLStdDev",
		"TotalSizeUSD", "AvgSizeUSD", "AvgSentiment", "WinRate",
		"MaxWin", "MaxLoss", "ProfitFactor",
	}

	records := make([][]string, 0, len(stats))
	for _, s := range stats {
		records = append(records, []string{
			s.Classification,
			fmt.Sprintf("%d", s.TradeCount),
			fmt.Sprintf("%.2f", s.TotalPnL),
			fmt.Sprintf("%.2f", s.AvgPnL),
			fmt.Sprintf("%.2f", s.PnLStdDev),
			fmt.Sprintf("%.2f", s.TotalSizeUSD),
			fmt.Sprintf("%.2f", s.AvgSizeUSD),
			fmt.Sprintf("%.2f", s.AvgSentiment),
			fmt.Sprintf("%.2f", s.WinRate),
			fmt.Sprintf("%.2f", s.MaxWin),
			fmt.Sprintf("%.2f", s.MaxLoss),
			formatProfitFactor(s.ProfitFactor),
		})
	}

	return w.WriteCSV(ctx, path, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}

// formatProfitFactor renders the infinite sentinel as "inf" so the column
// stays parseable.
func formatProfitFactor(pf float64) string {
	if math.IsInf(pf, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", pf)
}
