package dataprocessing

import (
	"context"
	"log/slog"
	"time"

	"sentipulse/internal/errors"
	"sentipulse/pkg/contracts/domain"
)

// CleanStats reports what cleaning did to a table: how many rows came in,
// how many were pruned, which date strategy won, and every per-value
// diagnostic collected along the way.
type CleanStats struct {
	InitialRows  int       `json:"initial_rows"`
	FinalRows    int       `json:"final_rows"`
	PrunedRows   int       `json:"pruned_rows"`
	DateStrategy string    `json:"date_strategy"`
	Warnings     []Warning `json:"warnings,omitempty"`
}

// Cleaner orchestrates per-table cleaning: validate required columns,
// normalize timestamps, coerce numerics, prune rows missing critical data.
// Each stage short-circuits; the two table kinds are cleaned independently.
type Cleaner struct {
	logger *slog.Logger
}

// NewCleaner creates a cleaner. A nil logger falls back to slog.Default.
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{logger: logger}
}

// requiredTradeColumns are the columns the trade file must carry. Exactly
// one of Timestamp IST / Timestamp is additionally required; that choice is
// resolved by the timestamp normalizer.
var requiredTradeColumns = []string{ColAccount, ColCoin, ColExecutionPrice, ColSizeUSD, ColSide}

// requiredSentimentColumns are the columns the sentiment file must carry.
var requiredSentimentColumns = []string{ColSentimentValue, ColClassification}

// CleanTrades turns a raw trade table into a typed, pruned TradeTable.
// An empty result is a valid outcome, not an error.
func (c *Cleaner) CleanTrades(ctx context.Context, raw *RawTable) (*domain.TradeTable, CleanStats, error) {
	stats := CleanStats{InitialRows: raw.Len()}

	c.logger.InfoContext(ctx, "cleaning trade data", slog.Int("record_count", raw.Len()))

	if err := ValidateColumns(raw, requiredTradeColumns, "trade data"); err != nil {
		return nil, stats, err
	}

	datetimes, strategy, warnings, err := c.normalizeTradeTimestamps(raw)
	if err != nil {
		return nil, stats, err
	}
	stats.DateStrategy = strategy
	stats.Warnings = append(stats.Warnings, warnings...)

	table := &domain.TradeTable{Records: make([]domain.TradeRecord, 0, raw.Len())}
	for i := 0; i < raw.Len(); i++ {
		record := domain.TradeRecord{
			Account:    raw.Cell(i, ColAccount),
			Coin:       raw.Cell(i, ColCoin),
			Side:       raw.Cell(i, ColSide),
			ExecutedAt: datetimes[i],
			Date:       DateOf(datetimes[i]),
		}
		record.ExecutionPrice = c.coerce(raw, i, ColExecutionPrice, &stats)
		record.SizeTokens = c.coerce(raw, i, ColSizeTokens, &stats)
		record.SizeUSD = c.coerce(raw, i, ColSizeUSD, &stats)
		record.ClosedPnL = c.coerce(raw, i, ColClosedPnL, &stats)

		// Prune rows missing the canonical date or any critical field.
		// Missing PnL survives: it only weakens the aggregates.
		if record.Date.IsZero() || record.Account == "" || record.Coin == "" ||
			!record.ExecutionPrice.Valid || !record.SizeUSD.Valid {
			stats.PrunedRows++
			continue
		}
		table.Records = append(table.Records, record)
	}
	stats.FinalRows = len(table.Records)

	if stats.PrunedRows > 0 {
		c.logger.InfoContext(ctx, "removed rows with missing critical data",
			slog.Int("pruned_rows", stats.PrunedRows))
	}
	c.logger.InfoContext(ctx, "trade data cleaning completed",
		slog.Int("record_count", stats.FinalRows),
		slog.String("date_strategy", strategy),
		slog.Int("warning_count", len(stats.Warnings)))

	return table, stats, nil
}

// CleanSentiment turns a raw sentiment table into a typed, pruned
// SentimentTable.
func (c *Cleaner) CleanSentiment(ctx context.Context, raw *RawTable) (*domain.SentimentTable, CleanStats, error) {
	stats := CleanStats{InitialRows: raw.Len()}

	c.logger.InfoContext(ctx, "cleaning sentiment data", slog.Int("record_count", raw.Len()))

	if err := ValidateColumns(raw, requiredSentimentColumns, "sentiment data"); err != nil {
		return nil, stats, err
	}

	dates, strategy, warnings, err := c.normalizeSentimentDates(raw)
	if err != nil {
		return nil, stats, err
	}
	stats.DateStrategy = strategy
	stats.Warnings = append(stats.Warnings, warnings...)

	table := &domain.SentimentTable{Records: make([]domain.SentimentRecord, 0, raw.Len())}
	for i := 0; i < raw.Len(); i++ {
		record := domain.SentimentRecord{
			Classification: raw.Cell(i, ColClassification),
			Date:           DateOf(dates[i]),
		}
		record.Value = c.coerce(raw, i, ColSentimentValue, &stats)

		if record.Date.IsZero() || !record.Value.Valid || record.Classification == "" {
			stats.PrunedRows++
			continue
		}
		table.Records = append(table.Records, record)
	}
	stats.FinalRows = len(table.Records)

	if stats.PrunedRows > 0 {
		c.logger.InfoContext(ctx, "removed rows with missing data",
			slog.Int("pruned_rows", stats.PrunedRows))
	}
	c.logger.InfoContext(ctx, "sentiment data cleaning completed",
		slog.Int("record_count", stats.FinalRows),
		slog.String("date_strategy", strategy),
		slog.Int("warning_count", len(stats.Warnings)))

	return table, stats, nil
}

// normalizeTradeTimestamps resolves the trade table's timestamp column and
// parses it. Timestamp IST wins when present and is held to its exact
// layout; otherwise Timestamp is tried as epoch milliseconds with a
// whole-column fallback to seconds.
func (c *Cleaner) normalizeTradeTimestamps(raw *RawTable) ([]time.Time, string, []Warning, error) {
	var (
		column     string
		strategies []DateStrategy
	)
	switch {
	case raw.HasColumn(ColTimestampIST):
		column = ColTimestampIST
		strategies = istLayoutStrategies()
	case raw.HasColumn(ColTimestamp):
		column = ColTimestamp
		strategies = tradeTimestampStrategies()
	default:
		return nil, "", nil, errors.NewFormatError("no valid timestamp column found in trade data")
	}

	values, _ := raw.Column(column)
	parsed, strategy, ok := ParseDateColumn(values, strategies)
	if !ok {
		return nil, "", nil, errors.NewFormatError("all timestamp values could not be parsed").
			WithContext("column", column)
	}

	return parsed, strategy, collectParseWarnings(column, values, parsed), nil
}

// normalizeSentimentDates resolves the sentiment table's date column: a
// timestamp column of epoch seconds, else a date column tried against the
// day-first, ISO and generic formats in order.
func (c *Cleaner) normalizeSentimentDates(raw *RawTable) ([]time.Time, string, []Warning, error) {
	var (
		column     string
		strategies []DateStrategy
	)
	switch {
	case raw.HasColumn(ColSentimentTS):
		column = ColSentimentTS
		strategies = []DateStrategy{EpochSecondsStrategy()}
	case raw.HasColumn(ColSentimentDate):
		column = ColSentimentDate
		strategies = sentimentDateStrategies()
	default:
		return nil, "", nil, errors.NewFormatError("no valid timestamp or date column found in sentiment data")
	}

	values, _ := raw.Column(column)
	parsed, strategy, ok := ParseDateColumn(values, strategies)
	if !ok {
		return nil, "", nil, errors.NewFormatError("all date values could not be parsed").
			WithContext("column", column)
	}

	return parsed, strategy, collectParseWarnings(column, values, parsed), nil
}

// coerce converts one optional numeric cell, recording any warning. Absent
// columns coerce to missing.
func (c *Cleaner) coerce(raw *RawTable, row int, column string, stats *CleanStats) domain.Nullable {
	if !raw.HasColumn(column) {
		return domain.Null()
	}
	n, warning := CoerceNumeric(raw.Cell(row, column), column, row)
	if warning != nil {
		stats.Warnings = append(stats.Warnings, *warning)
	}
	return n
}

// collectParseWarnings records a warning for every non-empty value the
// winning strategy could not parse.
func collectParseWarnings(column string, values []string, parsed []time.Time) []Warning {
	var warnings []Warning
	for i, v := range values {
		if v != "" && parsed[i].IsZero() {
			warnings = append(warnings, Warning{
				Column: column,
				Row:    i,
				Value:  v,
				Reason: "unparseable timestamp",
			})
		}
	}
	return warnings
}
