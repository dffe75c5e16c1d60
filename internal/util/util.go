package util

import (
	"strconv"
	"strings"
)

// FormatPrice formats a currency amount without exponent notation and with at
// least one fractional digit (e.g., 2000000 -> "2000000.0", 999999.99 -> "999999.99").
func FormatPrice(amount float64) string {
	formatted := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.ContainsAny(formatted, ".NI") {
		formatted += ".0"
	}

	return formatted
}

// Pluralize returns word followed by an "s" when count is greater than one.
func Pluralize(count int, word string) string {
	if count > 1 {
		return word + "s"
	}

	return word
}
