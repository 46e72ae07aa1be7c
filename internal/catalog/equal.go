package catalog

import (
	"math"
	"strconv"
	"strings"
)

// Equal reports whether a and b are the same value for setting s.
//
// Numeric settings compare by parsed value, so "1.0" equals "1". When either
// side fails to parse, or parses to NaN, the comparison falls back to exact
// string equality: Equal(s, v, v) is true for every v, and a malformed number
// never equals a well-formed default.
//
// All other types compare as exact strings.
func Equal(s *Setting, a, b string) bool {
	if s == nil || !s.Type.Numeric() {
		return a == b
	}

	fa, okA := parseNumber(a)
	fb, okB := parseNumber(b)
	if !okA || !okB {
		return a == b
	}
	return fa == fb
}

// parseNumber parses a numeric setting value. It reports false for
// unparseable input and for NaN.
func parseNumber(v string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
