package store

import "github.com/dshills/kittyconf/internal/catalog"

// ChangedEntries returns every setting whose current value differs from its
// default under catalog.Equal, in catalog declaration order. File settings
// are included.
func (s *Store) ChangedEntries() []Entry {
	return s.diff(func(*catalog.Setting) bool { return true })
}

// ShareableEntries is ChangedEntries without file settings.
func (s *Store) ShareableEntries() []Entry {
	return s.diff((*catalog.Setting).Shareable)
}

// HasChanges reports whether any setting differs from its default.
func (s *Store) HasChanges() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, setting := range s.catalog.Settings() {
		if !catalog.Equal(setting, s.values[setting.Key], setting.Default) {
			return true
		}
	}
	return false
}

// IsChanged reports whether key differs from its default.
func (s *Store) IsChanged(key string) bool {
	setting := s.catalog.Get(key)
	if setting == nil {
		return false
	}
	return !catalog.Equal(setting, s.Get(key), setting.Default)
}

func (s *Store) diff(include func(*catalog.Setting) bool) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Entry
	for _, setting := range s.catalog.Settings() {
		if !include(setting) {
			continue
		}
		value := s.values[setting.Key]
		if catalog.Equal(setting, value, setting.Default) {
			continue
		}
		out = append(out, Entry{Key: setting.Key, Value: value})
	}
	return out
}
