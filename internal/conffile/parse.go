package conffile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/kittyconf/internal/catalog"
	"github.com/dshills/kittyconf/internal/keymap"
	"github.com/dshills/kittyconf/internal/store"
)

// maxLineSize bounds a single kitty.conf line.
const maxLineSize = 1 << 20

// Document is a parsed kitty.conf.
type Document struct {
	// Entries are settings for known keys, in file order. A key set twice
	// appears twice; the last occurrence wins when applied.
	Entries []store.Entry

	// Mappings are the map lines, numbered in file order.
	Mappings keymap.List

	// Unknown lists keys that are not in the catalog, in file order.
	Unknown []string

	// Skipped counts non-comment lines that were neither settings nor maps.
	Skipped int

	// Permalink is the value of a "# Permalink:" comment, if present.
	Permalink string
}

// Parse reads kitty.conf text. Unknown keys and malformed lines are
// recorded but never an error; only read failures are returned.
func Parse(r io.Reader, cat *catalog.Catalog) (*Document, error) {
	doc := &Document{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if link, ok := strings.CutPrefix(line, "# Permalink:"); ok && doc.Permalink == "" {
				doc.Permalink = strings.TrimSpace(link)
			}
			continue
		}

		if m, ok := keymap.ParseLine(line); ok {
			doc.Mappings, _ = doc.Mappings.Append(m)
			continue
		}

		i := strings.IndexAny(line, " \t")
		if i < 0 {
			doc.Skipped++
			continue
		}
		key, value := line[:i], strings.TrimSpace(line[i+1:])

		if !cat.Has(key) {
			if key != "map" {
				doc.Unknown = append(doc.Unknown, key)
			} else {
				doc.Skipped++
			}
			continue
		}
		doc.Entries = append(doc.Entries, store.Entry{Key: key, Value: value})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return doc, nil
}

// ParseString is Parse over a string.
func ParseString(text string, cat *catalog.Catalog) (*Document, error) {
	return Parse(strings.NewReader(text), cat)
}

// Resolved returns the entries with later duplicates replacing earlier ones,
// keeping the position of the first occurrence.
func (d *Document) Resolved() []store.Entry {
	index := make(map[string]int, len(d.Entries))
	var out []store.Entry
	for _, e := range d.Entries {
		if i, ok := index[e.Key]; ok {
			out[i].Value = e.Value
			continue
		}
		index[e.Key] = len(out)
		out = append(out, e)
	}
	return out
}

// Setter receives parsed entries.
type Setter interface {
	Set(key, value string) error
}

// SetterFunc adapts a function to Setter.
type SetterFunc func(key, value string) error

// Set implements Setter.
func (f SetterFunc) Set(key, value string) error {
	return f(key, value)
}

// Apply sends every entry to target in file order and returns how many were
// applied. It stops at the first error.
func (d *Document) Apply(target Setter) (int, error) {
	applied := 0
	for _, e := range d.Entries {
		if err := target.Set(e.Key, e.Value); err != nil {
			return applied, fmt.Errorf("applying %s: %w", e.Key, err)
		}
		applied++
	}
	return applied, nil
}
