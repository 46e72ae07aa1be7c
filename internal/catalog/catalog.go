package catalog

import (
	"fmt"
	"strings"
)

// Category groups settings for display. Grouping has no behavioral effect
// beyond fixing the declaration order.
type Category struct {
	ID       string
	Title    string
	Settings []Setting
}

// Catalog is the complete, immutable set of settings.
// It is safe for concurrent use because nothing mutates it after New.
type Catalog struct {
	categories []Category
	ordered    []*Setting
	byKey      map[string]*Setting
	byID       map[int]*Setting
}

// New builds a catalog from categories in declaration order.
// Keys and ids must be unique and ids must be positive.
func New(categories ...Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, len(categories)),
		byKey:      make(map[string]*Setting),
		byID:       make(map[int]*Setting),
	}

	for i, cat := range categories {
		settings := make([]Setting, len(cat.Settings))
		copy(settings, cat.Settings)
		c.categories[i] = Category{ID: cat.ID, Title: cat.Title, Settings: settings}

		for j := range settings {
			s := &c.categories[i].Settings[j]
			s.Category = cat.ID

			if s.ID <= 0 {
				return nil, fmt.Errorf("%w: %s has id %d", ErrInvalidID, s.Key, s.ID)
			}
			if _, exists := c.byKey[s.Key]; exists {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, s.Key)
			}
			if other, exists := c.byID[s.ID]; exists {
				return nil, fmt.Errorf("%w: %d used by %s and %s", ErrDuplicateID, s.ID, other.Key, s.Key)
			}

			c.byKey[s.Key] = s
			c.byID[s.ID] = s
			c.ordered = append(c.ordered, s)
		}
	}

	return c, nil
}

// MustNew builds a catalog and panics on error.
// Useful for built-in catalogs at init time.
func MustNew(categories ...Category) *Catalog {
	c, err := New(categories...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the setting for key, or nil if unknown.
func (c *Catalog) Get(key string) *Setting {
	return c.byKey[key]
}

// Has reports whether key is in the catalog.
func (c *Catalog) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// ByID returns the setting with the given numeric id, or nil if unknown.
func (c *Catalog) ByID(id int) *Setting {
	return c.byID[id]
}

// Settings returns every setting in declaration order.
func (c *Catalog) Settings() []*Setting {
	result := make([]*Setting, len(c.ordered))
	copy(result, c.ordered)
	return result
}

// Categories returns the categories in declaration order.
func (c *Catalog) Categories() []Category {
	result := make([]Category, len(c.categories))
	copy(result, c.categories)
	return result
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Len returns the number of settings.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Defaults returns a map of every key to its default value.
func (c *Catalog) Defaults() map[string]string {
	result := make(map[string]string, len(c.ordered))
	for _, s := range c.ordered {
		result[s.Key] = s.Default
	}
	return result
}

// Search finds settings whose key, label or description contains query.
func (c *Catalog) Search(query string) []*Setting {
	query = strings.ToLower(query)
	var result []*Setting
	for _, s := range c.ordered {
		if strings.Contains(s.Key, query) ||
			strings.Contains(strings.ToLower(s.Label), query) ||
			strings.Contains(strings.ToLower(s.Description), query) {
			result = append(result, s)
		}
	}
	return result
}

// IsDefault reports whether value equals the setting's default under Equal.
// Unknown keys are never at default.
func (c *Catalog) IsDefault(key, value string) bool {
	s := c.byKey[key]
	if s == nil {
		return false
	}
	return Equal(s, value, s.Default)
}
