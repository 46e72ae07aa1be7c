package conffile

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/kittyconf/internal/catalog"
	"github.com/dshills/kittyconf/internal/keymap"
	"github.com/dshills/kittyconf/internal/store"
)

func TestGenerate(t *testing.T) {
	cat := catalog.Builtin()

	got, err := String(Input{
		Catalog: cat,
		Entries: []store.Entry{
			{Key: "font_size", Value: "14"},
			{Key: "background_image", Value: "data:image/png;base64,AAAA"},
			{Key: "background", Value: "#112233"},
		},
		Mappings:  keymap.List{{ID: "1", Keys: "ctrl+t", Action: "new_tab"}},
		FileNames: map[string]string{"background_image": "wall.png"},
		Permalink: "https://x.dev/#c=abc",
		Version:   "v1.0.0",
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	want := `# Generated by kittyconf v1.0.0
# Permalink: https://x.dev/#c=abc

# Fonts
font_size 14

# Window
background_image wall.png

# Colors
background #112233

# Key mappings
map ctrl+t new_tab
`
	if got != want {
		t.Errorf("Generate =\n%s\nwant\n%s", got, want)
	}
}

func TestGenerate_Empty(t *testing.T) {
	got, err := String(Input{Catalog: catalog.Builtin()})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != Header+"\n" {
		t.Errorf("Generate = %q, want header only", got)
	}
}

func TestGenerate_FilePlaceholder(t *testing.T) {
	got, err := String(Input{
		Catalog: catalog.Builtin(),
		Entries: []store.Entry{{Key: "background_image", Value: "data:x"}},
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !strings.Contains(got, "background_image background_image.bin\n") {
		t.Errorf("Generate = %q, want placeholder file name", got)
	}
}

func TestGenerate_InvalidMapping(t *testing.T) {
	_, err := String(Input{
		Catalog:  catalog.Builtin(),
		Mappings: keymap.List{{ID: "1", Keys: "ctrl t", Action: "new_tab"}},
	})
	if !errors.Is(err, keymap.ErrInvalidMapping) {
		t.Errorf("error = %v, want ErrInvalidMapping", err)
	}
}

func TestParse(t *testing.T) {
	text := `# Generated by kittyconf
# Permalink: https://x.dev/#c=abc

font_family   Fira Code
font_size 14
retired_option yes
	background	#112233
orphan
map ctrl+t new_tab
map ctrl+shift+enter launch --cwd=current
map broken
font_size 15
`
	doc, err := ParseString(text, catalog.Builtin())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	wantEntries := []store.Entry{
		{Key: "font_family", Value: "Fira Code"},
		{Key: "font_size", Value: "14"},
		{Key: "background", Value: "#112233"},
		{Key: "font_size", Value: "15"},
	}
	if len(doc.Entries) != len(wantEntries) {
		t.Fatalf("Entries = %+v, want %+v", doc.Entries, wantEntries)
	}
	for i := range wantEntries {
		if doc.Entries[i] != wantEntries[i] {
			t.Errorf("Entries[%d] = %+v, want %+v", i, doc.Entries[i], wantEntries[i])
		}
	}

	if len(doc.Unknown) != 1 || doc.Unknown[0] != "retired_option" {
		t.Errorf("Unknown = %v, want [retired_option]", doc.Unknown)
	}
	if doc.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", doc.Skipped)
	}
	if doc.Permalink != "https://x.dev/#c=abc" {
		t.Errorf("Permalink = %q", doc.Permalink)
	}

	wantMaps := keymap.List{
		{Keys: "ctrl+t", Action: "new_tab"},
		{Keys: "ctrl+shift+enter", Action: "launch", Args: "--cwd=current"},
	}
	if !doc.Mappings.Same(wantMaps) {
		t.Errorf("Mappings = %+v, want %+v", doc.Mappings, wantMaps)
	}

	resolved := doc.Resolved()
	if len(resolved) != 3 || resolved[1].Value != "15" {
		t.Errorf("Resolved = %+v", resolved)
	}
}

func TestParse_Separators(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		key   string
		value string
	}{
		{"space", "font_family Fira Code", "font_family", "Fira Code"},
		{"tab multi-word value", "font_family\tJetBrains Mono", "font_family", "JetBrains Mono"},
		{"tab then spaces", "font_family\t  JetBrains Mono  ", "font_family", "JetBrains Mono"},
		{"space then tab", "font_size \t13", "font_size", "13"},
		{"tab", "font_size\t13", "font_size", "13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseString(tt.line+"\n", catalog.Builtin())
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if len(doc.Unknown) != 0 {
				t.Errorf("Unknown = %q, want none", doc.Unknown)
			}
			if len(doc.Entries) != 1 {
				t.Fatalf("Entries = %+v, want one", doc.Entries)
			}
			got := doc.Entries[0]
			if got.Key != tt.key || got.Value != tt.value {
				t.Errorf("entry = %q %q, want %q %q", got.Key, got.Value, tt.key, tt.value)
			}
		})
	}
}

func TestGenerateParseRoundTrip(t *testing.T) {
	cat := catalog.Builtin()
	entries := []store.Entry{
		{Key: "font_family", Value: "JetBrains Mono"},
		{Key: "cursor_shape", Value: "beam"},
		{Key: "background", Value: "#112233"},
	}

	text, err := String(Input{Catalog: cat, Entries: entries})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	doc, err := ParseString(text, cat)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(doc.Entries) != len(entries) {
		t.Fatalf("Entries = %+v, want %+v", doc.Entries, entries)
	}
	for i := range entries {
		if doc.Entries[i] != entries[i] {
			t.Errorf("Entries[%d] = %+v, want %+v", i, doc.Entries[i], entries[i])
		}
	}
}

func TestDocument_Apply(t *testing.T) {
	doc := &Document{Entries: []store.Entry{
		{Key: "font_size", Value: "14"},
		{Key: "background", Value: "#112233"},
	}}

	got := map[string]string{}
	n, err := doc.Apply(SetterFunc(func(k, v string) error {
		got[k] = v
		return nil
	}))
	if err != nil || n != 2 {
		t.Fatalf("Apply = %d, %v", n, err)
	}
	if got["background"] != "#112233" {
		t.Errorf("background = %q", got["background"])
	}

	boom := errors.New("boom")
	n, err = doc.Apply(SetterFunc(func(string, string) error { return boom }))
	if n != 0 || !errors.Is(err, boom) {
		t.Errorf("Apply = %d, %v, want 0, boom", n, err)
	}
}
