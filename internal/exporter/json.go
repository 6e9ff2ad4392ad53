package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"sentipulse/internal/errors"
	"sentipulse/pkg/contracts/domain"
)

// JSONWriter writes analysis results as structured JSON with a metadata
// envelope.
type JSONWriter struct {
	logger *slog.Logger
}

// NewJSONWriter creates a new JSON writer instance
func NewJSONWriter(logger *slog.Logger) *JSONWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONWriter{logger: logger}
}

// WriteGroupStats writes per-sentiment statistics to a JSON file.
func (w *JSONWriter) WriteGroupStats(ctx context.Context, path string, stats []domain.SentimentGroupStats, overview domain.DatasetOverview) error {
	w.logger.InfoContext(ctx, "writing JSON file",
		slog.String("path", path),
		slog.Int("group_count", len(stats)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err)
	}

	payload := map[string]interface{}{
		"groups":       stats,
		"overview":     overview,
		"count":        len(stats),
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       "sentiment_stats_v1",
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create JSON file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(payload); err != nil {
		return errors.NewStorageError("failed to encode results to JSON", err)
	}

	return nil
}
