package dataprocessing

import (
	"math"
	"sort"

	"sentipulse/pkg/contracts/domain"
)

// AggregateBySentiment groups the merged table by sentiment classification
// and computes the per-group descriptive statistics. Groups are returned
// sorted by classification for deterministic output. Statistics over PnL and
// size skip missing values; the win-rate denominator is the full group so a
// missing PnL counts as a non-win.
func AggregateBySentiment(merged *domain.MergedTable) []domain.SentimentGroupStats {
	groups := make(map[string][]domain.MergedRecord)
	for _, r := range merged.Records {
		key := r.Sentiment.Classification
		groups[key] = append(groups[key], r)
	}

	stats := make([]domain.SentimentGroupStats, 0, len(groups))
	for classification, records := range groups {
		stats = append(stats, computeGroupStats(classification, records))
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Classification < stats[j].Classification
	})

	return stats
}

// computeGroupStats derives the statistics for one classification group.
func computeGroupStats(classification string, records []domain.MergedRecord) domain.SentimentGroupStats {
	s := domain.SentimentGroupStats{
		Classification: classification,
		TradeCount:     len(records),
	}

	var (
		pnls       []float64
		wins       int
		grossWin   float64
		grossLoss  float64
		sizeSum    float64
		sizeCount  int
		valueSum   float64
		valueCount int
	)

	for _, r := range records {
		if r.Trade.ClosedPnL.Valid {
			pnl := r.Trade.ClosedPnL.Float64
			pnls = append(pnls, pnl)
			switch {
			case pnl > 0:
				wins++
				grossWin += pnl
			case pnl < 0:
				grossLoss += -pnl
			}
		}
		if r.Trade.SizeUSD.Valid {
			sizeSum += r.Trade.SizeUSD.Float64
			sizeCount++
		}
		if r.Sentiment.Value.Valid {
			valueSum += r.Sentiment.Value.Float64
			valueCount++
		}
	}

	if len(pnls) > 0 {
		s.TotalPnL = sum(pnls)
		s.AvgPnL = s.TotalPnL / float64(len(pnls))
		s.PnLStdDev = sampleStdDev(pnls, s.AvgPnL)
		s.MaxWin = max64(pnls)
		s.MaxLoss = min64(pnls)
	}
	s.TotalSizeUSD = sizeSum
	if sizeCount > 0 {
		s.AvgSizeUSD = sizeSum / float64(sizeCount)
	}
	if valueCount > 0 {
		s.AvgSentiment = valueSum / float64(valueCount)
	}
	s.WinRate = WinRate(wins, len(records))
	s.ProfitFactor = ProfitFactor(grossWin, grossLoss)

	return s
}

// WinRate returns the percentage of winning trades, defined as 0 for an
// empty group so it never divides by zero.
func WinRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}

// ProfitFactor is gross profit over gross loss magnitude. With no losing
// trades it is positive infinity provided there is at least one winning
// trade; a group with neither wins nor losses reports 0.
func ProfitFactor(grossWin, grossLoss float64) float64 {
	if grossLoss > 0 {
		return grossWin / grossLoss
	}
	if grossWin > 0 {
		return math.Inf(1)
	}
	return 0
}

// Overview summarizes the whole merged dataset for reporting.
func Overview(merged *domain.MergedTable) domain.DatasetOverview {
	o := domain.DatasetOverview{
		TotalRecords: merged.Len(),
		Distribution: make(map[string]int),
	}
	if min, max, ok := merged.DateRange(); ok {
		o.DateMin, o.DateMax = min, max
	}

	accounts := make(map[string]struct{})
	coins := make(map[string]struct{})
	var pnlCount, sizeCount int
	for _, r := range merged.Records {
		accounts[r.Trade.Account] = struct{}{}
		coins[r.Trade.Coin] = struct{}{}
		o.Distribution[r.Sentiment.Classification]++
		if r.Trade.ClosedPnL.Valid {
			o.TotalPnL += r.Trade.ClosedPnL.Float64
			pnlCount++
		}
		if r.Trade.SizeUSD.Valid {
			o.TotalVolume += r.Trade.SizeUSD.Float64
			sizeCount++
		}
	}
	o.UniqueAccounts = len(accounts)
	o.UniqueCoins = len(coins)
	if pnlCount > 0 {
		o.AvgPnL = o.TotalPnL / float64(pnlCount)
	}
	if sizeCount > 0 {
		o.AvgTradeSize = o.TotalVolume / float64(sizeCount)
	}

	return o
}

// SharpeRatio computes the annualized Sharpe ratio of a daily PnL series
// against a yearly risk-free rate. Zero for an empty or flat series.
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	mean := sum(returns) / float64(len(returns))
	std := sampleStdDev(returns, mean)
	if std == 0 {
		return 0
	}
	const tradingDays = 252
	excess := mean - riskFreeRate/tradingDays
	return excess / std * math.Sqrt(tradingDays)
}

// sampleStdDev is the N-1 standard deviation; 0 for fewer than two values.
func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func max64(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func min64(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
