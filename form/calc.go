package form

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount reads a user-typed numeric field. Anything that does not parse,
// including the empty string, counts as zero.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round2 rounds half-up to two decimal places. The value persisted must match
// the two-decimal display value exactly.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// FormatAmount renders a monetary value the way the form displays it.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}

// FreightAmount recomputes the freight field from weight and rate. When either
// factor does not parse to a positive number the current freight is returned
// untouched, so a manually adjusted figure survives a temporarily blank factor.
func FreightAmount(weight, rate, current string) string {
	w := ParseAmount(weight)
	r := ParseAmount(rate)
	if w > 0 && r > 0 {
		return FormatAmount(w * r)
	}
	return current
}

// TotalAmount sums freight and the five additive charges. Total over all
// inputs: unparseable terms are zero, nothing fails.
func TotalAmount(freight, labour, bilty, toll, pf, other string) string {
	sum := ParseAmount(freight) +
		ParseAmount(labour) +
		ParseAmount(bilty) +
		ParseAmount(toll) +
		ParseAmount(pf) +
		ParseAmount(other)
	return FormatAmount(sum)
}
