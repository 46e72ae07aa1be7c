// Package share implements the shareable-link codec.
//
// A share link carries the non-default, non-file settings and the key
// mappings of a session as a compact text form:
//
//	<id>=<value>&<id>=<value>&m=<actionID>,<keys>,<args>
//
// where ids are the stable numeric ids from the catalog and keymap
// packages. The compact form is raw-deflated, base64url encoded without
// padding, and carried in the URL fragment as "#c=<token>".
package share

import (
	"strconv"
	"strings"

	"github.com/dshills/kittyconf/internal/catalog"
	"github.com/dshills/kittyconf/internal/keymap"
	"github.com/dshills/kittyconf/internal/store"
)

// mappingPrefix marks a mapping part in the compact form.
const mappingPrefix = "m"

// customActionID is the action id written for actions outside the keymap
// catalog; the action name then travels with the arguments.
const customActionID = 0

var (
	valueEscaper = strings.NewReplacer("%", "%25", "&", "%26")
	fieldEscaper = strings.NewReplacer("%", "%25", "&", "%26", ",", "%2C")
	unescaper    = strings.NewReplacer("%25", "%", "%26", "&", "%2C", ",", "%2c", ",")
)

// Payload is the decoded content of a share link.
type Payload struct {
	Entries  []store.Entry
	Mappings keymap.List
}

// Empty reports whether the payload carries nothing.
func (p Payload) Empty() bool {
	return len(p.Entries) == 0 && len(p.Mappings) == 0
}

// Lookup returns the decoded value of key.
func (p Payload) Lookup(key string) (string, bool) {
	for _, e := range p.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// EncodeCompact renders entries and mappings in the compact form. Entries
// for unknown keys and file settings are skipped.
func EncodeCompact(cat *catalog.Catalog, entries []store.Entry, mappings keymap.List) string {
	parts := make([]string, 0, len(entries)+len(mappings))

	for _, e := range entries {
		setting := cat.Get(e.Key)
		if setting == nil || !setting.Shareable() {
			continue
		}
		parts = append(parts, strconv.Itoa(setting.ID)+"="+valueEscaper.Replace(e.Value))
	}

	for _, m := range mappings {
		parts = append(parts, mappingPrefix+"="+encodeMapping(m))
	}

	return strings.Join(parts, "&")
}

func encodeMapping(m keymap.Mapping) string {
	id := customActionID
	last := m.Args
	if a, ok := keymap.Lookup(m.Action); ok {
		id = a.ID
	} else {
		last = strings.TrimSpace(m.Action + " " + m.Args)
	}
	return strconv.Itoa(id) + "," + fieldEscaper.Replace(m.Keys) + "," + fieldEscaper.Replace(last)
}

// DecodeCompact parses the compact form. Parts with unknown or non-numeric
// ids, parts for file settings and malformed mapping parts are dropped.
// When an id repeats, the last value wins. Decoded mappings are numbered
// "1", "2", ... in link order.
func DecodeCompact(cat *catalog.Catalog, s string) Payload {
	var p Payload
	index := make(map[string]int)

	for _, part := range strings.Split(s, "&") {
		head, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}

		if head == mappingPrefix {
			if m, ok := decodeMapping(value); ok {
				p.Mappings, _ = p.Mappings.Append(m)
			}
			continue
		}

		id, err := strconv.Atoi(head)
		if err != nil {
			continue
		}
		setting := cat.ByID(id)
		if setting == nil || !setting.Shareable() {
			continue
		}

		value = unescaper.Replace(value)
		if i, seen := index[setting.Key]; seen {
			p.Entries[i].Value = value
			continue
		}
		index[setting.Key] = len(p.Entries)
		p.Entries = append(p.Entries, store.Entry{Key: setting.Key, Value: value})
	}

	return p
}

func decodeMapping(s string) (keymap.Mapping, bool) {
	fields := strings.SplitN(s, ",", 3)
	if len(fields) != 3 {
		return keymap.Mapping{}, false
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return keymap.Mapping{}, false
	}

	m := keymap.Mapping{Keys: unescaper.Replace(fields[1])}
	last := unescaper.Replace(fields[2])

	if id == customActionID {
		action, args, _ := strings.Cut(strings.TrimSpace(last), " ")
		m.Action = action
		m.Args = strings.TrimSpace(args)
	} else {
		a, ok := keymap.ActionByID(id)
		if !ok {
			return keymap.Mapping{}, false
		}
		m.Action = a.Value
		m.Args = last
	}

	if m.Validate() != nil {
		return keymap.Mapping{}, false
	}
	return m, true
}
