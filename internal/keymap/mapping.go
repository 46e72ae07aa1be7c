package keymap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidMapping indicates a mapping that cannot be written to kitty.conf.
var ErrInvalidMapping = errors.New("invalid mapping")

// Mapping is one "map <keys> <action> [args]" line.
type Mapping struct {
	// ID identifies the mapping within a list. It is not written to kitty.conf.
	ID string `json:"id"`

	// Keys is the key combination, e.g. "ctrl+shift+c".
	Keys string `json:"keys"`

	// Action is the kitty action name.
	Action string `json:"action"`

	// Args are the action arguments, verbatim.
	Args string `json:"args,omitempty"`
}

// Validate checks that the mapping can be written as a single kitty.conf line.
func (m Mapping) Validate() error {
	switch {
	case m.Keys == "" || strings.ContainsAny(m.Keys, " \t\n"):
		return fmt.Errorf("%w: keys %q", ErrInvalidMapping, m.Keys)
	case m.Action == "" || strings.ContainsAny(m.Action, " \t\n"):
		return fmt.Errorf("%w: action %q", ErrInvalidMapping, m.Action)
	case strings.Contains(m.Args, "\n"):
		return fmt.Errorf("%w: args contain a newline", ErrInvalidMapping)
	}
	return nil
}

// Line renders the mapping as a kitty.conf line.
func (m Mapping) Line() string {
	if m.Args == "" {
		return fmt.Sprintf("map %s %s", m.Keys, m.Action)
	}
	return fmt.Sprintf("map %s %s %s", m.Keys, m.Action, m.Args)
}

// Same reports whether two mappings bind the same keys to the same action
// and arguments. IDs are ignored.
func (m Mapping) Same(other Mapping) bool {
	return m.Keys == other.Keys && m.Action == other.Action && m.Args == other.Args
}

// ParseLine parses a "map <keys> <action> [args]" line. It reports false for
// anything that is not a complete map line. Args are kept verbatim apart from
// surrounding whitespace.
func ParseLine(line string) (Mapping, bool) {
	word, rest := cutField(line)
	if word != "map" {
		return Mapping{}, false
	}
	keys, rest := cutField(rest)
	action, rest := cutField(rest)
	if keys == "" || action == "" {
		return Mapping{}, false
	}
	return Mapping{Keys: keys, Action: action, Args: strings.TrimSpace(rest)}, true
}

// cutField splits off the first whitespace-delimited field of s.
func cutField(s string) (field, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// List is an ordered list of mappings.
type List []Mapping

// Clone returns a copy of the list.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Same reports whether two lists hold the same mappings in the same order.
func (l List) Same(other List) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !l[i].Same(other[i]) {
			return false
		}
	}
	return true
}

// Append adds m with a fresh ID and returns the new list and the ID.
func (l List) Append(m Mapping) (List, string) {
	m.ID = l.nextID()
	return append(l, m), m.ID
}

// Remove returns the list without the mapping with the given ID.
func (l List) Remove(id string) (List, bool) {
	for i, m := range l {
		if m.ID == id {
			out := make(List, 0, len(l)-1)
			out = append(out, l[:i]...)
			return append(out, l[i+1:]...), true
		}
	}
	return l, false
}

// Renumber returns a copy with IDs reassigned as "1", "2", ...
func (l List) Renumber() List {
	out := l.Clone()
	for i := range out {
		out[i].ID = strconv.Itoa(i + 1)
	}
	return out
}

func (l List) nextID() string {
	highest := 0
	for _, m := range l {
		if n, err := strconv.Atoi(m.ID); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}
