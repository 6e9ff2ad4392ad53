package domain

import (
	"time"
)

// SentimentRecord represents one day of the market fear/greed index after
// cleaning. Value follows the 0-100 domain convention but is not clamped.
type SentimentRecord struct {
	Value          Nullable  `json:"value"`
	Classification string    `json:"classification" validate:"required"`
	Date           time.Time `json:"date"`
}

// Sentiment classification vocabulary. The source column is free text and
// any label is accepted; these are the values the index publishes.
const (
	SentimentExtremeFear  = "Extreme Fear"
	SentimentFear         = "Fear"
	SentimentNeutral      = "Neutral"
	SentimentGreed        = "Greed"
	SentimentExtremeGreed = "Extreme Greed"
)

// SentimentTable is a cleaned daily sentiment dataset. One row per date is
// expected but not enforced; duplicate dates fan out during the merge.
type SentimentTable struct {
	Records []SentimentRecord `json:"records"`
}

// Len returns the number of records.
func (t *SentimentTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// DateRange returns the earliest and latest dates in the table. ok is false
// for an empty table.
func (t *SentimentTable) DateRange() (min, max time.Time, ok bool) {
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
