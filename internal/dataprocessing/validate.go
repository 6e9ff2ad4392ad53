package dataprocessing

import (
	"sentipulse/internal/errors"
)

// ValidateColumns asserts that the table carries every required column,
// reporting all missing names in a single error rather than the first. It
// must run before any other transformation; a failure aborts that table's
// pipeline only.
func ValidateColumns(table *RawTable, required []string, label string) error {
	var missing []string
	for _, col := range required {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return errors.NewValidationError(label, missing)
	}
	return nil
}
