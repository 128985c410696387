// utils/validation.go
package utils

import (
	"strconv"
	"strings"
)

// ParseAmount coerces a free-form numeric string to a float64. Malformed
// input yields 0.0 rather than an error; a bad field must never reject the
// submission.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0.0
	}
	return v
}

// ParseQuantity coerces a quantity string to an integer, truncating any
// fractional part. Malformed input yields 0, which callers discard as a
// non-positive quantity.
func ParseQuantity(raw string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return int(v)
}
