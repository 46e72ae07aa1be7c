package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dshills/kittyconf/internal/keymap"
)

// MappingsKey is the storage key holding the mapping list.
const MappingsKey = "kitty-conf-mappings"

// decodeMappings reads a persisted mapping list. Elements that are not
// valid mappings are skipped.
func decodeMappings(doc string) (keymap.List, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("mapping list is not valid JSON")
	}
	root := gjson.Parse(doc)
	if !root.IsArray() {
		return nil, fmt.Errorf("mapping list is not an array")
	}

	var list keymap.List
	root.ForEach(func(_, value gjson.Result) bool {
		m := keymap.Mapping{
			ID:     value.Get("id").String(),
			Keys:   value.Get("keys").String(),
			Action: value.Get("action").String(),
			Args:   value.Get("args").String(),
		}
		if m.Validate() == nil {
			list = append(list, m)
		}
		return true
	})
	return list, nil
}

// loadMappings reads the persisted mapping list. Callers hold s.mu.
func (s *Session) loadMappings(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	doc, ok, err := s.storage.GetItem(ctx, MappingsKey)
	if err != nil {
		return fmt.Errorf("loading mappings: %w", err)
	}
	if !ok {
		return nil
	}

	list, err := decodeMappings(doc)
	if err != nil {
		s.logger.Debug("ignoring persisted mappings", "err", err)
		return nil
	}
	s.mappings = list
	return nil
}

// saveMappings persists the mapping list, removing the record when the list
// is empty. Callers hold s.mu.
func (s *Session) saveMappings(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	if len(s.mappings) == 0 {
		if err := s.storage.RemoveItem(ctx, MappingsKey); err != nil {
			return fmt.Errorf("clearing mappings: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(s.mappings)
	if err != nil {
		return fmt.Errorf("encoding mappings: %w", err)
	}
	if err := s.storage.SetItem(ctx, MappingsKey, string(data)); err != nil {
		return fmt.Errorf("saving mappings: %w", err)
	}
	return nil
}
