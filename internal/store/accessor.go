package store

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/kittyconf/internal/catalog"
)

func (s *Store) typed(key string, want ...catalog.Type) (string, error) {
	setting := s.catalog.Get(key)
	if setting == nil {
		return "", fmt.Errorf("%w: %s", catalog.ErrUnknownSetting, key)
	}
	for _, t := range want {
		if setting.Type == t {
			return s.Get(key), nil
		}
	}
	return "", fmt.Errorf("%w: %s is %s", catalog.ErrWrongType, key, setting.Type)
}

// Float returns a numeric setting as float64.
func (s *Store) Float(key string) (float64, error) {
	v, err := s.typed(key, catalog.TypeFloat, catalog.TypeInt)
	if err != nil {
		return 0, err
	}
	return catalog.ParseFloat(v)
}

// Int returns an int setting.
func (s *Store) Int(key string) (int64, error) {
	v, err := s.typed(key, catalog.TypeInt)
	if err != nil {
		return 0, err
	}
	return catalog.ParseInt(v)
}

// Bool returns a boolean setting.
func (s *Store) Bool(key string) (bool, error) {
	v, err := s.typed(key, catalog.TypeBool)
	if err != nil {
		return false, err
	}
	return catalog.ParseBool(v)
}

// Color returns a color setting.
func (s *Store) Color(key string) (colorful.Color, error) {
	v, err := s.typed(key, catalog.TypeColor)
	if err != nil {
		return colorful.Color{}, err
	}
	return catalog.ParseColor(v)
}
