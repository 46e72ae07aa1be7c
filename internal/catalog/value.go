package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseFloat parses a float setting value.
func ParseFloat(v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", v)
	}
	return f, nil
}

// ParseInt parses an int setting value. Integral floats such as "2.0" are
// accepted because the equality policy treats them as the same number.
func ParseInt(v string) (int64, error) {
	trimmed := strings.TrimSpace(v)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n, nil
	}
	f, err := ParseFloat(trimmed)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", v)
	}
	if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("not an integer: %q", v)
	}
	return int64(f), nil
}

// FormatFloat formats f the way kitty.conf defaults are written: at least
// one decimal place.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// ParseBool parses a kitty yes/no flag.
func ParseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "true":
		return true, nil
	case "no", "n", "false":
		return false, nil
	default:
		return false, fmt.Errorf("not a yes/no value: %q", v)
	}
}

// FormatBool formats b as kitty's yes/no.
func FormatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// ParseColor parses a #rgb or #rrggbb hex color.
func ParseColor(v string) (colorful.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(v))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("not a hex color: %q", v)
	}
	return c, nil
}

// NormalizeColor returns v as a lowercase #rrggbb string. Values that are not
// hex colors are returned unchanged.
func NormalizeColor(v string) string {
	c, err := ParseColor(v)
	if err != nil {
		return v
	}
	return c.Clamped().Hex()
}

// Normalize rewrites value into the canonical textual form for setting s.
// Values that do not parse are returned unchanged.
func Normalize(s *Setting, value string) string {
	if s == nil {
		return value
	}
	switch s.Type {
	case TypeColor:
		return NormalizeColor(value)
	case TypeBool:
		if b, err := ParseBool(value); err == nil {
			return FormatBool(b)
		}
	case TypeFloat, TypeInt, TypeEnum:
		return strings.TrimSpace(value)
	}
	return value
}
