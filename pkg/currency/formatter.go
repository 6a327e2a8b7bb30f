// Package currency provides price formatting helpers for display.
package currency

import (
	"fmt"
	"math"
)

// FormatUSD formats an amount as a whole-dollar USD string, e.g. "$1,500".
// Fractions are rounded to the nearest dollar.
func FormatUSD(amount float64) string {
	rounded := math.Round(amount)

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	intStr := fmt.Sprintf("%.0f", rounded)
	formatted := addThousandsSeparator(intStr, ",")

	result := "$" + formatted
	if negative {
		result = "-" + result
	}

	return result
}

// addThousandsSeparator inserts sep every three digits from the right.
func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, 0, n+numSeps)

	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	result = append(result, s[:lead]...)
	for i := lead; i < n; i += 3 {
		result = append(result, sep...)
		result = append(result, s[i:i+3]...)
	}

	return string(result)
}
