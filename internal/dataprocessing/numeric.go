package dataprocessing

import (
	"strconv"
	"strings"

	"sentipulse/pkg/contracts/domain"
)

// Warning is a structured per-value diagnostic produced while cleaning.
// Warnings ride along with each stage result instead of being muted by a
// process-wide filter, so callers decide what to surface.
type Warning struct {
	Column string `json:"column"`
	Row    int    `json:"row"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// CoerceNumeric converts one cell to the numeric-or-missing domain. Comma
// group separators are tolerated. An empty cell is missing without comment;
// a non-empty unparseable cell is missing plus a warning. Never an error.
func CoerceNumeric(value, column string, row int) (domain.Nullable, *Warning) {
	if value == "" {
		return domain.Null(), nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return domain.Null(), &Warning{
			Column: column,
			Row:    row,
			Value:  value,
			Reason: "not a number",
		}
	}
	return domain.Num(f), nil
}
