package numberutil

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Only plain decimals are numbers here: no exponent, hex or infinity words.
var decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)$`)

// ParseLenient parses user input as a plain decimal number. Anything else,
// including values that do not fit a float64, yields 0.
func ParseLenient(s string) float64 {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}

	return f
}

func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampInt coerces a float to an int within [min, max], truncating toward
// zero first.
func ClampInt(v float64, min, max int) int {
	v = ClampFloat(math.Trunc(v), float64(min), float64(max))
	return int(v)
}

// CoerceFloat parses s and clamps it into [min, max].
func CoerceFloat(s string, min, max float64) float64 {
	return ClampFloat(ParseLenient(s), min, max)
}

// CoerceInt parses s and clamps it into [min, max].
func CoerceInt(s string, min, max int) int {
	return ClampInt(ParseLenient(s), min, max)
}

// FormatDecimal renders f in its shortest decimal form, e.g. 25 -> "25".
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
