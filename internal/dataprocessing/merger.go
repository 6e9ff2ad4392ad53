package dataprocessing

import (
	"context"
	"log/slog"
	"time"

	"sentipulse/internal/errors"
	"sentipulse/pkg/contracts/domain"
)

// Merge performs the inner equality join of a cleaned trade table and a
// cleaned sentiment table on canonical date. Only dates present in both
// tables survive. Sentiment is expected at daily granularity; should it
// carry duplicate dates, each trade row fans out once per matching sentiment
// row. A zero-row result is the distinguished no-overlap outcome.
func Merge(ctx context.Context, logger *slog.Logger, trades *domain.TradeTable, sentiment *domain.SentimentTable) (*domain.MergedTable, error) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.InfoContext(ctx, "merging datasets",
		slog.Int("trade_records", trades.Len()),
		slog.Int("sentiment_records", sentiment.Len()))

	byDate := make(map[time.Time][]domain.SentimentRecord, sentiment.Len())
	for _, s := range sentiment.Records {
		byDate[s.Date] = append(byDate[s.Date], s)
	}

	merged := &domain.MergedTable{}
	for _, t := range trades.Records {
		for _, s := range byDate[t.Date] {
			merged.Records = append(merged.Records, domain.MergedRecord{Trade: t, Sentiment: s})
		}
	}

	if merged.Len() == 0 {
		logger.WarnContext(ctx, "no matching dates found between datasets")
		return nil, errors.NewEmptyResultError("no matching dates found between datasets")
	}

	logger.InfoContext(ctx, "merged dataset created", slog.Int("record_count", merged.Len()))

	return merged, nil
}
