package domain

import (
	"encoding/json"
	"math"
	"time"
)

// SentimentGroupStats holds the descriptive statistics for all trades that
// executed under one sentiment classification. Computed fresh per grouping
// key on demand; never persisted.
type SentimentGroupStats struct {
	Classification string  `json:"classification"`
	TradeCount     int     `json:"trade_count"`
	TotalPnL       float64 `json:"total_pnl"`
	AvgPnL         float64 `json:"avg_pnl"`
	PnLStdDev      float64 `json:"pnl_std_dev"`
	TotalSizeUSD   float64 `json:"total_size_usd"`
	AvgSizeUSD     float64 `json:"avg_size_usd"`
	AvgSentiment   float64 `json:"avg_sentiment"`
	WinRate        float64 `json:"win_rate"`
	MaxWin         float64 `json:"max_win"`
	MaxLoss        float64 `json:"max_loss"`
	ProfitFactor   float64 `json:"profit_factor"`
}

// HasLosses reports whether the group contains at least one losing trade,
// i.e. whether ProfitFactor is finite.
func (s SentimentGroupStats) HasLosses() bool {
	return !math.IsInf(s.ProfitFactor, 1)
}

// MarshalJSON renders the infinite profit-factor sentinel as the string
// "inf", since JSON has no representation for infinity.
func (s SentimentGroupStats) MarshalJSON() ([]byte, error) {
	type alias SentimentGroupStats
	out := struct {
		alias
		ProfitFactor interface{} `json:"profit_factor"`
	}{alias: alias(s), ProfitFactor: s.ProfitFactor}
	if math.IsInf(s.ProfitFactor, 1) {
		out.ProfitFactor = "inf"
	}
	return json.Marshal(out)
}

// DatasetOverview summarizes a merged dataset for reporting.
type DatasetOverview struct {
	TotalRecords   int            `json:"total_records"`
	DateMin        time.Time      `json:"date_min"`
	DateMax        time.Time      `json:"date_max"`
	UniqueAccounts int            `json:"unique_accounts"`
	UniqueCoins    int            `json:"unique_coins"`
	TotalPnL       float64        `json:"total_pnl"`
	AvgPnL         float64        `json:"avg_pnl"`
	TotalVolume    float64        `json:"total_volume"`
	AvgTradeSize   float64        `json:"avg_trade_size"`
	Distribution   map[string]int `json:"sentiment_distribution"`
}

// StageSummary reports per-stage row counts and date ranges, consumed by
// reporting collaborators which never mutate the tables.
type StageSummary struct {
	TradesLoaded     bool      `json:"trades_loaded"`
	SentimentLoaded  bool      `json:"sentiment_loaded"`
	MergedAvailable  bool      `json:"merged_available"`
	TradeRecords     int       `json:"trade_records"`
	TradeDateMin     time.Time `json:"trade_date_min,omitempty"`
	TradeDateMax     time.Time `json:"trade_date_max,omitempty"`
	SentimentRecords int       `json:"sentiment_records"`
	SentimentDateMin time.Time `json:"sentiment_date_min,omitempty"`
	SentimentDateMax time.Time `json:"sentiment_date_max,omitempty"`
	MergedRecords    int       `json:"merged_records"`
	MergedDateMin    time.Time `json:"merged_date_min,omitempty"`
	MergedDateMax    time.Time `json:"merged_date_max,omitempty"`
}
