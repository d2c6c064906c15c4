package dosage

import (
	"math"
	"strconv"
	"strings"
)

// Above this many small units an amount is reported in the large unit.
const magnitudeThreshold = 1000

var largeUnits = map[Unit]Unit{
	Milliliters: Liters,
	Grams:       Kilograms,
}

// normalizeMagnitude rounds amount to two decimals in small, or converts it
// to the matching large unit when it exceeds the threshold.
func normalizeMagnitude(amount float64, small Unit) (float64, Unit) {
	large, ok := largeUnits[small]
	if ok && amount > magnitudeThreshold {
		return round(amount/magnitudeThreshold, 2), large
	}
	return round(amount, 2), small
}

// round rounds x to places decimals using correctly rounded decimal
// conversion, so ties resolve on the exact binary value.
func round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// Outside this range formatNumber switches to exponent notation.
const (
	minPlainMagnitude = 1e-4
	maxPlainMagnitude = 1e16
)

// formatNumber prints x in shortest round-trip form, keeping a trailing
// ".0" on integral values. Very small and very large magnitudes print as
// 1.5e-05 or 1e+16.
func formatNumber(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	if abs := math.Abs(x); abs != 0 && (abs < minPlainMagnitude || abs >= maxPlainMagnitude) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
