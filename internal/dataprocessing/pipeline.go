package dataprocessing

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"sentipulse/pkg/contracts/domain"
)

// Pipeline owns the three table references of one analysis run: the cleaned
// trade table, the cleaned sentiment table and the merged table. Each is
// replaced wholesale at its stage, never mutated in place. The two cleaning
// legs share no state and run concurrently; the merge is serialized after
// both complete.
type Pipeline struct {
	logger  *slog.Logger
	loader  *Loader
	cleaner *Cleaner

	trades    *domain.TradeTable
	sentiment *domain.SentimentTable
	merged    *domain.MergedTable

	tradeStats     CleanStats
	sentimentStats CleanStats
}

// NewPipeline creates a pipeline. A nil logger falls back to slog.Default.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger:  logger,
		loader:  NewLoader(logger),
		cleaner: NewCleaner(logger),
	}
}

// Run executes load → clean → merge for the two input files. It fails
// closed: the first stage failure aborts the rest while leaving any state
// populated so far inspectable for diagnostics. A no-overlap merge surfaces
// as the EMPTY_RESULT outcome.
func (p *Pipeline) Run(ctx context.Context, tradesPath, sentimentPath string) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := p.loader.Load(gctx, tradesPath)
		if err != nil {
			return err
		}
		trades, stats, err := p.cleaner.CleanTrades(gctx, raw)
		if err != nil {
			return err
		}
		p.trades, p.tradeStats = trades, stats
		return nil
	})

	g.Go(func() error {
		raw, err := p.loader.Load(gctx, sentimentPath)
		if err != nil {
			return err
		}
		sentiment, stats, err := p.cleaner.CleanSentiment(gctx, raw)
		if err != nil {
			return err
		}
		p.sentiment, p.sentimentStats = sentiment, stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	merged, err := Merge(ctx, p.logger, p.trades, p.sentiment)
	if err != nil {
		return err
	}
	p.merged = merged

	return nil
}

// Trades returns the cleaned trade table, nil before a successful clean.
func (p *Pipeline) Trades() *domain.TradeTable {
	return p.trades
}

// Sentiment returns the cleaned sentiment table, nil before a successful
// clean.
func (p *Pipeline) Sentiment() *domain.SentimentTable {
	return p.sentiment
}

// Merged returns the merged table, nil before a successful merge. It is
// read-only downstream.
func (p *Pipeline) Merged() *domain.MergedTable {
	return p.merged
}

// TradeCleanStats returns the cleaning diagnostics for the trade table.
func (p *Pipeline) TradeCleanStats() CleanStats {
	return p.tradeStats
}

// SentimentCleanStats returns the cleaning diagnostics for the sentiment
// table.
func (p *Pipeline) SentimentCleanStats() CleanStats {
	return p.sentimentStats
}

// Summary reports per-stage row counts and date ranges for the reporting
// collaborators, which never mutate the tables.
func (p *Pipeline) Summary() domain.StageSummary {
	s := domain.StageSummary{
		TradesLoaded:    p.trades != nil,
		SentimentLoaded: p.sentiment != nil,
		MergedAvailable: p.merged != nil,
	}
	if p.trades != nil {
		s.TradeRecords = p.trades.Len()
		if min, max, ok := p.trades.DateRange(); ok {
			s.TradeDateMin, s.TradeDateMax = min, max
		}
	}
	if p.sentiment != nil {
		s.SentimentRecords = p.sentiment.Len()
		if min, max, ok := p.sentiment.DateRange(); ok {
			s.SentimentDateMin, s.SentimentDateMax = min, max
		}
	}
	if p.merged != nil {
		s.MergedRecords = p.merged.Len()
		if min, max, ok := p.merged.DateRange(); ok {
			s.MergedDateMin, s.MergedDateMax = min, max
		}
	}
	return s
}
