package domain

import (
	"time"
)

// MergedRecord pairs a trade with the sentiment reading for its execution
// date. Both halves keep their own typed fields, so a column-name collision
// between the two sources is structurally impossible.
type MergedRecord struct {
	Trade     TradeRecord     `json:"trade"`
	Sentiment SentimentRecord `json:"sentiment"`
}

// Date returns the shared canonical join key.
func (m MergedRecord) Date() time.Time {
	return m.Trade.Date
}

// MergedTable is the inner-join result of a trade table and a sentiment
// table on canonical date. It is constructed once per pipeline run and is
// read-only downstream.
type MergedTable struct {
	Records []MergedRecord `json:"records"`
}

// Len returns the number of joined rows.
func (t *MergedTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// DateRange returns the earliest and latest join dates. ok is false for an
// empty table.
func (t *MergedTable) DateRange() (min, max time.Time, ok bool) {
	if t.Len() == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = t.Records[0].Date(), t.Records[0].Date()
	for _, r := range t.Records[1:] {
		if r.Date().Before(min) {
			min = r.Date()
		}
		if r.Date().After(max) {
			max = r.Date()
		}
	}
	return min, max, true
}

// Classifications returns the distinct sentiment labels present, in first
// appearance order.
func (t *MergedTable) Classifications() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range t.Records {
		if _, ok := seen[r.Sentiment.Classification]; ok {
			continue
		}
		seen[r.Sentiment.Classification] = struct{}{}
		out = append(out, r.Sentiment.Classification)
	}
	return out
}
