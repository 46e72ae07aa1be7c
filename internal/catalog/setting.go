// Package catalog provides the static settings catalog for kitty.conf.
//
// The catalog holds the definition of every known setting: its key, type,
// default value, stable numeric id and descriptive constraints. It is
// read-only after construction and is indexed by key and by numeric id.
package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Type represents the declared value type of a setting.
type Type uint8

const (
	// TypeString is free-form text.
	TypeString Type = iota
	// TypeFloat is a floating-point number.
	TypeFloat
	// TypeInt is an integer.
	TypeInt
	// TypeEnum is one value from a fixed option list.
	TypeEnum
	// TypeBool is a kitty yes/no flag.
	TypeBool
	// TypeColor is a hex color.
	TypeColor
	// TypeFile is embedded file data (a data URL). Never shared.
	TypeFile
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeFloat:
		return "float"
	case TypeInt:
		return "int"
	case TypeEnum:
		return "enum"
	case TypeBool:
		return "bool"
	case TypeColor:
		return "color"
	case TypeFile:
		return "file"
	default:
		return "unknown"
	}
}

// Numeric reports whether values of this type compare numerically.
func (t Type) Numeric() bool {
	return t == TypeFloat || t == TypeInt
}

// Setting defines one kitty.conf setting.
type Setting struct {
	// Key is the kitty.conf option name (e.g., "font_size").
	Key string

	// Label is the short human-readable name.
	Label string

	// Type is the declared value type.
	Type Type

	// Default is the default value as it appears in kitty.conf.
	Default string

	// ID is the stable numeric id used by the share codec.
	ID int

	// Description is optional help text.
	Description string

	// Min and Max bound numeric types (nil means unbounded).
	Min *float64
	Max *float64

	// Step is the UI increment for numeric types (0 means unspecified).
	Step float64

	// Options lists the allowed values of an enum.
	Options []string

	// Accept is the accepted media type pattern of a file setting.
	Accept string

	// Category is the id of the owning category, filled in by New.
	Category string
}

// Shareable reports whether the setting may appear in a share token.
func (s *Setting) Shareable() bool {
	return s.Type != TypeFile
}

// Check reports constraint violations for value. It is advisory: the store
// accepts any string, and diffing never consults Check.
func (s *Setting) Check(value string) error {
	switch s.Type {
	case TypeFloat, TypeInt:
		var (
			f   float64
			err error
		)
		if s.Type == TypeInt {
			var n int64
			n, err = ParseInt(value)
			f = float64(n)
		} else {
			f, err = ParseFloat(value)
		}
		if err != nil {
			return &CheckError{Key: s.Key, Value: value, Code: CheckNotNumber, Message: err.Error()}
		}
		if s.Min != nil && f < *s.Min {
			return &CheckError{Key: s.Key, Value: value, Code: CheckOutOfRange,
				Message: fmt.Sprintf("less than minimum %v", *s.Min)}
		}
		if s.Max != nil && f > *s.Max {
			return &CheckError{Key: s.Key, Value: value, Code: CheckOutOfRange,
				Message: fmt.Sprintf("greater than maximum %v", *s.Max)}
		}
	case TypeEnum:
		if !slices.Contains(s.Options, value) {
			return &CheckError{Key: s.Key, Value: value, Code: CheckInvalidOption,
				Message: "must be one of: " + strings.Join(s.Options, ", ")}
		}
	case TypeBool:
		if _, err := ParseBool(value); err != nil {
			return &CheckError{Key: s.Key, Value: value, Code: CheckNotBool, Message: err.Error()}
		}
	case TypeColor:
		if _, err := ParseColor(value); err != nil {
			return &CheckError{Key: s.Key, Value: value, Code: CheckNotColor, Message: err.Error()}
		}
	}
	return nil
}

// MinValue creates a pointer to a float64 for use as Min.
func MinValue(v float64) *float64 {
	return &v
}

// MaxValue creates a pointer to a float64 for use as Max.
func MaxValue(v float64) *float64 {
	return &v
}
