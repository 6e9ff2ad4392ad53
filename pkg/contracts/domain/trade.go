package domain

import (
	"time"
)

// TradeRecord represents a single trade execution after cleaning.
// Rows are positional; duplicates are legal and meaningful (one row = one
// trade), so there is no identity field.
type TradeRecord struct {
	Account        string    `json:"account" validate:"required"`
	Coin           string    `json:"coin" validate:"required"`
	ExecutionPrice Nullable  `json:"execution_price"`
	SizeTokens     Nullable  `json:"size_tokens"`
	SizeUSD        Nullable  `json:"size_usd"`
	Side           string    `json:"side"`
	ClosedPnL      Nullable  `json:"closed_pnl"`
	ExecutedAt     time.Time `json:"executed_at"`
	Date           time.Time `json:"date"`
}

// TradeSide values as they appear in the source files. The column is not
// enforced as an enum; any string is accepted.
const (
	TradeSideBuy  = "BUY"
	TradeSideSell = "SELL"
)

// TradeTable is a cleaned trade dataset. Invariant: every record carries a
// non-zero canonical Date.
type TradeTable struct {
	Records []TradeRecord `json:"records"`
}

// Len returns the number of records.
func (t *TradeTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// DateRange returns the earliest and latest canonical dates in the table.
// ok is false for an empty table.
func (t *TradeTable) DateRange() (min, max time.Time, ok bool) {
	if t.Len() == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = t.Records[0].Date, t.Records[0].Date
	for _, r := range t.Records[1:] {
		if r.Date.Before(min) {
			min = r.Date
		}
		if r.Date.After(max) {
			max = r.Date
		}
	}
	return min, max, true
}

// UniqueAccounts returns the number of distinct trader accounts.
func (t *TradeTable) UniqueAccounts() int {
	seen := make(map[string]struct{}, t.Len())
	for _, r := range t.Records {
		seen[r.Account] = struct{}{}
	}
	return len(seen)
}

// UniqueCoins returns the number of distinct instrument symbols.
func (t *TradeTable) UniqueCoins() int {
	seen := make(map[string]struct{}, t.Len())
	for _, r := range t.Records {
		seen[r.Coin] = struct{}{}
	}
	return len(seen)
}
