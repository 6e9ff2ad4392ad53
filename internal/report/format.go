package report

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency renders a dollar amount with thousands separators, e.g.
// "$1,234.56". Negative amounts keep the sign before the dollar symbol.
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	frac := int64(math.Round((amount - float64(whole)) * 100))
	if frac == 100 {
		whole++
		frac = 0
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), frac)
}

// FormatPercentage renders a percentage with one decimal place.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// groupThousands inserts comma separators into a non-negative integer.
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
