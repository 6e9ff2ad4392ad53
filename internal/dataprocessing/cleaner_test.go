package dataprocessing

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sentipulse/internal/errors"
)

func tradeTable(rows ...[]string) *RawTable {
	headers := []string{"Account", "Coin", "Execution Price", "Size Tokens", "Size USD", "Side", "Closed PnL", "Timestamp IST"}
	return NewRawTable(headers, rows)
}

func sentimentTable(headers []string, rows ...[]string) *RawTable {
	return NewRawTable(headers, rows)
}

func TestCleanTrades_ISTTimestamps(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := tradeTable(
		[]string{"0xabc", "BTC", "42000.5", "0.5", "21000.25", "BUY", "150.75", "15-03-2023 14:30"},
		[]string{"0xdef", "ETH", "2200", "10", "22000", "SELL", "-80.5", "16-03-2023 09:15"},
	)

	table, stats, err := cleaner.CleanTrades(ctx, raw)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "ist_layout", stats.DateStrategy)
	assert.Equal(t, 0, stats.PrunedRows)

	first := table.Records[0]
	assert.Equal(t, "0xabc", first.Account)
	assert.Equal(t, "BTC", first.Coin)
	assert.Equal(t, 42000.5, first.ExecutionPrice.Float64)
	assert.Equal(t, time.Date(2023, 3, 15, 14, 30, 0, 0, time.UTC), first.ExecutedAt)
	assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), first.Date)

	// Invariant: every cleaned row carries a canonical date.
	for _, r := range table.Records {
		assert.False(t, r.Date.IsZero())
	}
}

func TestCleanTrades_EpochMillisTimestamps(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	headers := []string{"Account", "Coin", "Execution Price", "Size USD", "Side", "Timestamp"}
	raw := NewRawTable(headers, [][]string{
		{"0xabc", "BTC", "42000", "1000", "BUY", "1700000000000"},
	})

	table, stats, err := cleaner.CleanTrades(ctx, raw)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "epoch_millis", stats.DateStrategy)
	assert.Equal(t, time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC), table.Records[0].Date)
}

func TestCleanTrades_NonNumericPricePruned(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := tradeTable(
		[]string{"0xabc", "BTC", "abc", "0.5", "21000", "BUY", "150", "15-03-2023 14:30"},
		[]string{"0xdef", "ETH", "2200", "10", "22000", "SELL", "-80", "16-03-2023 09:15"},
	)

	table, stats, err := cleaner.CleanTrades(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, 1, stats.PrunedRows)

	// The coercion failure is surfaced as a structured warning, not an error.
	require.NotEmpty(t, stats.Warnings)
	found := false
	for _, w := range stats.Warnings {
		if w.Column == "Execution Price" && w.Value == "abc" {
			found = true
		}
	}
	assert.True(t, found, "expected a warning for the unparseable price")
}

func TestCleanTrades_MissingPnLSurvives(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := tradeTable(
		[]string{"0xabc", "BTC", "42000", "0.5", "21000", "BUY", "", "15-03-2023 14:30"},
	)

	table, stats, err := cleaner.CleanTrades(ctx, raw)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, 0, stats.PrunedRows)
	assert.False(t, table.Records[0].ClosedPnL.Valid)
}

func TestCleanTrades_ValidationListsAllMissingColumns(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := NewRawTable([]string{"Account", "Side"}, nil)

	_, _, err := cleaner.CleanTrades(ctx, raw)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
	assert.Contains(t, err.Error(), "Coin")
	assert.Contains(t, err.Error(), "Execution Price")
	assert.Contains(t, err.Error(), "Size USD")
}

func TestCleanTrades_NoTimestampColumn(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	headers := []string{"Account", "Coin", "Execution Price", "Size USD", "Side"}
	raw := NewRawTable(headers, [][]string{
		{"0xabc", "BTC", "42000", "1000", "BUY"},
	})

	_, _, err := cleaner.CleanTrades(ctx, raw)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeFormat))
}

func TestCleanTrades_WhollyUnparseableTimestamps(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := tradeTable(
		[]string{"0xabc", "BTC", "42000", "0.5", "21000", "BUY", "150", "garbage"},
		[]string{"0xdef", "ETH", "2200", "10", "22000", "SELL", "-80", "also garbage"},
	)

	_, _, err := cleaner.CleanTrades(ctx, raw)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeFormat))
}

func TestCleanTrades_PartialTimestampFailurePrunesRow(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := tradeTable(
		[]string{"0xabc", "BTC", "42000", "0.5", "21000", "BUY", "150", "15-03-2023 14:30"},
		[]string{"0xdef", "ETH", "2200", "10", "22000", "SELL", "-80", "garbage"},
	)

	table, stats, err := cleaner.CleanTrades(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, 1, stats.PrunedRows)
}

func TestCleanTrades_Idempotent(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := tradeTable(
		[]string{"0xabc", "BTC", "42000", "0.5", "21000", "BUY", "150", "15-03-2023 14:30"},
		[]string{"0xdef", "ETH", "2200", "10", "22000", "SELL", "-80", "16-03-2023 09:15"},
	)

	first, _, err := cleaner.CleanTrades(ctx, raw)
	require.NoError(t, err)

	// Rebuild a raw table from the cleaned output and clean again: row count
	// and date set must be unchanged.
	rows := make([][]string, 0, first.Len())
	for _, r := range first.Records {
		rows = append(rows, []string{
			r.Account, r.Coin,
			formatFloat(r.ExecutionPrice.Float64),
			formatFloat(r.SizeTokens.Float64),
			formatFloat(r.SizeUSD.Float64),
			r.Side,
			formatFloat(r.ClosedPnL.Float64),
			r.ExecutedAt.Format("02-01-2006 15:04"),
		})
	}
	second, stats, err := cleaner.CleanTrades(ctx, tradeTable(rows...))
	require.NoError(t, err)

	assert.Equal(t, first.Len(), second.Len())
	assert.Equal(t, 0, stats.PrunedRows)
	for i := range first.Records {
		assert.Equal(t, first.Records[i].Date, second.Records[i].Date)
	}
}

func TestCleanSentiment_EpochSeconds(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := sentimentTable(
		[]string{"timestamp", "value", "classification"},
		[]string{"1672531200", "25", "Fear"},
	)

	table, stats, err := cleaner.CleanSentiment(ctx, raw)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "epoch_seconds", stats.DateStrategy)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), table.Records[0].Date)
	assert.Equal(t, 25.0, table.Records[0].Value.Float64)
	assert.Equal(t, "Fear", table.Records[0].Classification)
}

func TestCleanSentiment_DayFirstDates(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := sentimentTable(
		[]string{"date", "value", "classification"},
		[]string{"05-01-2023", "70", "Greed"},
	)

	table, stats, err := cleaner.CleanSentiment(ctx, raw)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "day_first", stats.DateStrategy)
	assert.Equal(t, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), table.Records[0].Date)
}

func TestCleanSentiment_ISOFallback(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := sentimentTable(
		[]string{"date", "value", "classification"},
		[]string{"2023-01-05", "70", "Greed"},
		[]string{"2023-01-06", "72", "Greed"},
	)

	table, stats, err := cleaner.CleanSentiment(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "iso_date", stats.DateStrategy)
}

func TestCleanSentiment_MissingFieldsPruned(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := sentimentTable(
		[]string{"date", "value", "classification"},
		[]string{"05-01-2023", "70", "Greed"},
		[]string{"06-01-2023", "notanumber", "Greed"},
		[]string{"07-01-2023", "55", ""},
	)

	table, stats, err := cleaner.CleanSentiment(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, 2, stats.PrunedRows)
}

func TestCleanSentiment_EmptyResultIsNotAnError(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := sentimentTable(
		[]string{"date", "value", "classification"},
		[]string{"05-01-2023", "", "Greed"},
	)

	table, stats, err := cleaner.CleanSentiment(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 1, stats.PrunedRows)
}

func TestCleanSentiment_NoDateColumn(t *testing.T) {
	ctx := context.Background()
	cleaner := NewCleaner(nil)

	raw := sentimentTable(
		[]string{"value", "classification"},
		[]string{"70", "Greed"},
	)

	_, _, err := cleaner.CleanSentiment(ctx, raw)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeFormat))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
