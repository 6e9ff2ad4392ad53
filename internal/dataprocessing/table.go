package dataprocessing

import (
	"strings"
)

// Column names as they appear in the source files.
const (
	ColAccount        = "Account"
	ColCoin           = "Coin"
	ColExecutionPrice = "Execution Price"
	ColSizeTokens     = "Size Tokens"
	ColSizeUSD        = "Size USD"
	ColSide           = "Side"
	ColClosedPnL      = "Closed PnL"
	ColTimestampIST   = "Timestamp IST"
	ColTimestamp      = "Timestamp"

	ColSentimentValue = "value"
	ColClassification = "classification"
	ColSentimentTS    = "timestamp"
	ColSentimentDate  = "date"
)

// RawTable is a loaded but untyped tabular dataset: a header row plus
// positional string rows. Rows may be ragged; Cell returns "" past the end.
type RawTable struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

// NewRawTable builds a table and its column index from a header row.
func NewRawTable(headers []string, rows [][]string) *RawTable {
	t := &RawTable{Headers: headers, Rows: rows, index: make(map[string]int, len(headers))}
	for i, h := range headers {
		t.index[strings.TrimSpace(h)] = i
	}
	return t
}

// Len returns the number of data rows.
func (t *RawTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether the table carries the named column.
func (t *RawTable) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (t *RawTable) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Cell returns the trimmed value at (row, column), or "" when the row is
// short or the column is absent.
func (t *RawTable) Cell(row int, column string) string {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.Rows) || i >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][i])
}

// Column returns the full trimmed value slice for the named column, aligned
// with the table rows.
func (t *RawTable) Column(name string) ([]string, bool) {
	if _, ok := t.index[name]; !ok {
		return nil, false
	}
	values := make([]string, len(t.Rows))
	for i := range t.Rows {
		values[i] = t.Cell(i, name)
	}
	return values, true
}
