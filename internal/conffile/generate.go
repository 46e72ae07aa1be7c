// Package conffile renders and parses kitty.conf text.
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

// Header is the first line prefix of every generated file.
const Header = "# Generated by kittyconf"

// Input is everything Generate needs.
type Input struct {
	Catalog  *catalog.Catalog
	Entries  []store.Entry
	Mappings keymap.List

	// FileNames maps file setting keys to the name written in place of the
	// embedded data.
	FileNames map[string]string

	// Permalink, when set, is written as a "# Permalink:" line.
	Permalink string

	// Version is appended to the header line when set.
	Version string
}

// Generate writes a kitty.conf holding the changed entries, grouped by
// category, followed by the key mappings.
func Generate(w io.Writer, in Input) error {
	bw := bufio.NewWriter(w)

	header := Header
	if in.Version != "" {
		header += " " + in.Version
	}
	fmt.Fprintln(bw, header)
	if in.Permalink != "" {
		fmt.Fprintf(bw, "# Permalink: %s\n", in.Permalink)
	}

	values := make(map[string]string, len(in.Entries))
	for _, e := range in.Entries {
		values[e.Key] = e.Value
	}

	for _, cat := range in.Catalog.Categories() {
		var lines []string
		for _, s := range cat.Settings {
			value, ok := values[s.Key]
			if !ok {
				continue
			}
			if s.Type == catalog.TypeFile {
				value = fileValue(s.Key, in.FileNames)
			}
			lines = append(lines, formatLine(s.Key, value))
		}
		if len(lines) == 0 {
			continue
		}

		fmt.Fprintf(bw, "\n# %s\n", cat.Title)
		for _, line := range lines {
			fmt.Fprintln(bw, line)
		}
	}

	if len(in.Mappings) > 0 {
		fmt.Fprint(bw, "\n# Key mappings\n")
		for _, m := range in.Mappings {
			if err := m.Validate(); err != nil {
				return fmt.Errorf("mapping %s: %w", m.ID, err)
			}
			fmt.Fprintln(bw, m.Line())
		}
	}

	return bw.Flush()
}

// String is Generate into a string.
func String(in Input) (string, error) {
	var sb strings.Builder
	if err := Generate(&sb, in); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func fileValue(key string, names map[string]string) string {
	if name := names[key]; name != "" {
		return name
	}
	return key + ".bin"
}

func formatLine(key, value string) string {
	// kitty reads the rest of the line as the value; newlines cannot survive.
	value = strings.ReplaceAll(value, "\n", " ")
	if value == "" {
		return key
	}
	return key + " " + value
}
