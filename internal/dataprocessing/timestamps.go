package dataprocessing

import (
	"math"
	"strconv"
	"time"
)

// Parsed datetimes are accepted only inside this window. Epoch numbers are
// ambiguous between seconds and milliseconds; a candidate interpretation that
// lands outside the window counts as a parse failure, which is what lets the
// milliseconds-first/seconds-fallback cascade pick the right unit.
const (
	minParseableYear = 1677
	maxParseableYear = 2262
)

// DateStrategy is a single, unit-testable parse attempt in an ordered
// cascade. Parse reports per-value success; the column-level decision of
// which strategy wins belongs to ParseDateColumn.
type DateStrategy struct {
	Name  string
	Parse func(value string) (time.Time, bool)
}

// LayoutStrategy parses with one exact time layout.
func LayoutStrategy(name, layout string) DateStrategy {
	return DateStrategy{
		Name: name,
		Parse: func(value string) (time.Time, bool) {
			t, err := time.Parse(layout, value)
			if err != nil || !inBounds(t) {
				return time.Time{}, false
			}
			return t, true
		},
	}
}

// EpochMillisStrategy interprets a numeric value as milliseconds since the
// Unix epoch.
func EpochMillisStrategy() DateStrategy {
	return DateStrategy{
		Name: "epoch_millis",
		Parse: func(value string) (time.Time, bool) {
			n, ok := parseEpochNumber(value)
			if !ok {
				return time.Time{}, false
			}
			t := time.UnixMilli(n).UTC()
			if !inBounds(t) {
				return time.Time{}, false
			}
			return t, true
		},
	}
}

// EpochSecondsStrategy interprets a numeric value as seconds since the Unix
// epoch.
func EpochSecondsStrategy() DateStrategy {
	return DateStrategy{
		Name: "epoch_seconds",
		Parse: func(value string) (time.Time, bool) {
			n, ok := parseEpochNumber(value)
			if !ok {
				return time.Time{}, false
			}
			t := time.Unix(n, 0).UTC()
			if !inBounds(t) {
				return time.Time{}, false
			}
			return t, true
		},
	}
}

// GenericStrategy is the permissive last resort: a best-effort attempt
// against a set of common date layouts.
func GenericStrategy() DateStrategy {
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
		"2006/01/02",
		"02/01/2006",
		"January 2, 2006",
		"Jan 2, 2006",
	}
	return DateStrategy{
		Name: "generic",
		Parse: func(value string) (time.Time, bool) {
			for _, layout := range layouts {
				if t, err := time.Parse(layout, value); err == nil && inBounds(t) {
					return t, true
				}
			}
			return time.Time{}, false
		},
	}
}

// ParseDateColumn applies the strategies in order and returns the result of
// the first strategy for which not every value fails. The returned slice is
// aligned with values; a zero time marks a per-value failure left for the
// cleaner to prune. ok is false when every strategy fails on every value.
func ParseDateColumn(values []string, strategies []DateStrategy) (parsed []time.Time, strategy string, ok bool) {
	for _, s := range strategies {
		out := make([]time.Time, len(values))
		succeeded := 0
		for i, v := range values {
			if v == "" {
				continue
			}
			if t, valid := s.Parse(v); valid {
				out[i] = t
				succeeded++
			}
		}
		if succeeded > 0 {
			return out, s.Name, true
		}
	}
	return nil, "", false
}

// DateOf truncates a datetime to its canonical calendar date in UTC.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// tradeTimestampStrategies returns the cascade for the trade table's
// Timestamp column: milliseconds first, seconds only when milliseconds fail
// for every row.
func tradeTimestampStrategies() []DateStrategy {
	return []DateStrategy{EpochMillisStrategy(), EpochSecondsStrategy()}
}

// sentimentDateStrategies returns the cascade for the sentiment table's
// date column.
func sentimentDateStrategies() []DateStrategy {
	return []DateStrategy{
		LayoutStrategy("day_first", "02-01-2006"),
		LayoutStrategy("iso_date", "2006-01-02"),
		GenericStrategy(),
	}
}

// istLayoutStrategies returns the single exact layout accepted for the
// Timestamp IST column.
func istLayoutStrategies() []DateStrategy {
	return []DateStrategy{LayoutStrategy("ist_layout", "02-01-2006 15:04")}
}

// parseEpochNumber parses a decimal epoch value, accepting a fractional
// representation of an integral number.
func parseEpochNumber(value string) (int64, bool) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

// inBounds reports whether t falls inside the parseable datetime window.
func inBounds(t time.Time) bool {
	year := t.Year()
	return year >= minParseableYear && year <= maxParseableYear
}
