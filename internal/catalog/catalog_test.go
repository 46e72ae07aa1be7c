package catalog

import (
	"errors"
	"testing"
)

func TestNew_RejectsDuplicates(t *testing.T) {
	tests := []struct {
		name    string
		cats    []Category
		wantErr error
	}{
		{
			name: "duplicate key",
			cats: []Category{{ID: "a", Settings: []Setting{
				{Key: "x", ID: 1}, {Key: "x", ID: 2},
			}}},
			wantErr: ErrDuplicateKey,
		},
		{
			name: "duplicate id across categories",
			cats: []Category{
				{ID: "a", Settings: []Setting{{Key: "x", ID: 1}}},
				{ID: "b", Settings: []Setting{{Key: "y", ID: 1}}},
			},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "zero id",
			cats:    []Category{{ID: "a", Settings: []Setting{{Key: "x"}}}},
			wantErr: ErrInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cats...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuiltin_Indexes(t *testing.T) {
	c := Builtin()

	if c.Len() == 0 {
		t.Fatal("builtin catalog is empty")
	}

	s := c.Get("font_size")
	if s == nil {
		t.Fatal("Get(font_size) = nil")
	}
	if s.Type != TypeFloat || s.Default != "11.0" {
		t.Errorf("font_size = %v %q, want float 11.0", s.Type, s.Default)
	}
	if s.Category != "fonts" {
		t.Errorf("font_size category = %q, want fonts", s.Category)
	}
	if got := c.ByID(s.ID); got != s {
		t.Errorf("ByID(%d) = %v, want font_size", s.ID, got)
	}
	if c.Get("no_such_setting") != nil || c.Has("no_such_setting") {
		t.Error("unknown key reported as present")
	}
	if c.ByID(99999) != nil {
		t.Error("unknown id reported as present")
	}
}

func TestBuiltin_DeclarationOrder(t *testing.T) {
	c := Builtin()
	settings := c.Settings()

	var fromCategories []string
	for _, cat := range c.Categories() {
		for _, s := range cat.Settings {
			fromCategories = append(fromCategories, s.Key)
		}
	}

	if len(settings) != len(fromCategories) {
		t.Fatalf("Settings() len = %d, categories hold %d", len(settings), len(fromCategories))
	}
	for i, s := range settings {
		if s.Key != fromCategories[i] {
			t.Errorf("Settings()[%d] = %s, want %s", i, s.Key, fromCategories[i])
		}
	}
	if settings[0].Key != "font_family" {
		t.Errorf("first setting = %s, want font_family", settings[0].Key)
	}
}

func TestBuiltin_DefaultsAreAtDefault(t *testing.T) {
	c := Builtin()
	for key, def := range c.Defaults() {
		if !c.IsDefault(key, def) {
			t.Errorf("IsDefault(%s, %q) = false", key, def)
		}
	}
	if c.IsDefault("no_such_setting", "") {
		t.Error("unknown key reported at default")
	}
}

func TestBuiltin_FileSettingsNotShareable(t *testing.T) {
	s := Builtin().Get("background_image")
	if s == nil {
		t.Fatal("background_image missing")
	}
	if s.Shareable() {
		t.Error("file setting reported shareable")
	}
	if !Builtin().Get("background").Shareable() {
		t.Error("color setting reported not shareable")
	}
}

func TestCatalog_Search(t *testing.T) {
	got := Builtin().Search("URL")
	if len(got) == 0 {
		t.Fatal("Search(URL) returned nothing")
	}
	for _, s := range got {
		if s.Key == "font_size" {
			t.Error("Search(URL) matched font_size")
		}
	}
}
