package catalog

import (
	"errors"
	"fmt"
)

// Errors returned by catalog construction and value adapters.
var (
	// ErrDuplicateKey indicates two settings share a key.
	ErrDuplicateKey = errors.New("duplicate setting key")

	// ErrDuplicateID indicates two settings share a numeric id.
	ErrDuplicateID = errors.New("duplicate setting id")

	// ErrInvalidID indicates a setting id that is not positive.
	ErrInvalidID = errors.New("invalid setting id")

	// ErrUnknownSetting indicates the key is not in the catalog.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrWrongType indicates a typed accessor was used on a setting of another type.
	ErrWrongType = errors.New("wrong setting type")
)

// CheckCode categorizes constraint violations.
type CheckCode uint8

const (
	// CheckNotNumber indicates a numeric setting holds a non-number.
	CheckNotNumber CheckCode = iota
	// CheckOutOfRange indicates a number outside Min/Max.
	CheckOutOfRange
	// CheckInvalidOption indicates an enum value not in Options.
	CheckInvalidOption
	// CheckNotBool indicates a bool setting holds something other than yes/no.
	CheckNotBool
	// CheckNotColor indicates a color setting holds a non-color.
	CheckNotColor
)

// String returns a short name for the code.
func (c CheckCode) String() string {
	switch c {
	case CheckNotNumber:
		return "not_number"
	case CheckOutOfRange:
		return "out_of_range"
	case CheckInvalidOption:
		return "invalid_option"
	case CheckNotBool:
		return "not_bool"
	case CheckNotColor:
		return "not_color"
	default:
		return "unknown"
	}
}

// CheckError describes a constraint violation for a setting value.
type CheckError struct {
	Key     string
	Value   string
	Code    CheckCode
	Message string
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	return fmt.Sprintf("%s: %s (value: %q)", e.Key, e.Message, e.Value)
}
