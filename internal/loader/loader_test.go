package loader

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Options{
		FS:   fstest.MapFS{},
		Path: "kittyconf/config.toml",
		Env:  NewEnvLoaderFrom(EnvPrefix, nil),
	})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	fsys := fstest.MapFS{
		"kittyconf/config.toml": {Data: []byte(`
base_url = "https://conf.example/"
log_level = "debug"
max_url_length = 1500
output = "/tmp/kitty.conf"
`)},
	}

	cfg, err := Load(Options{
		FS:   fsys,
		Path: "kittyconf/config.toml",
		Env: NewEnvLoaderFrom(EnvPrefix, []string{
			"KITTYCONF_MAX_URL_LENGTH=1800",
			"KITTYCONF_DATA_DIR=/var/lib/kittyconf",
			"OTHER_VAR=1",
		}),
	})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := AppConfig{
		BaseURL:      "https://conf.example/",
		DataDir:      "/var/lib/kittyconf",
		LogLevel:     "debug",
		MaxURLLength: 1800,
		Output:       "/tmp/kitty.conf",
	}
	if cfg != want {
		t.Errorf("Load = %+v, want %+v", cfg, want)
	}
	if cfg.Level() != log.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoad_ParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": {Data: []byte("base_url = \"x\"\nlog_level = = 1\n")},
	}

	_, err := Load(Options{FS: fsys, Path: "config.toml", Env: NewEnvLoaderFrom(EnvPrefix, nil)})
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load error = %v, want *ParseError", err)
	}
	if perr.Line != 2 {
		t.Errorf("ParseError.Line = %d, want 2", perr.Line)
	}
	if !strings.Contains(perr.Error(), "config.toml") {
		t.Errorf("Error() = %q, want path", perr.Error())
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  []string
	}{
		{"relative base url", []string{"KITTYCONF_BASE_URL=/conf"}},
		{"fragment in base url", []string{"KITTYCONF_BASE_URL=https://x.dev/#c=1"}},
		{"zero max length", []string{"KITTYCONF_MAX_URL_LENGTH=0"}},
		{"bad level", []string{"KITTYCONF_LOG_LEVEL=loud"}},
		{"wrong type", []string{"KITTYCONF_MAX_URL_LENGTH=long"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(Options{
				FS:   fstest.MapFS{},
				Path: "config.toml",
				Env:  NewEnvLoaderFrom(EnvPrefix, tt.env),
			})
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestEnvLoader(t *testing.T) {
	l := NewEnvLoaderFrom(EnvPrefix, []string{
		"KITTYCONF_OUTPUT=",
		"KITTYCONF_MAX_URL_LENGTH=42",
		"KITTYCONF_=skipped",
		"HOME=/root",
	})
	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Load = %v, want 2 keys", got)
	}
	if v, ok := got["output"]; !ok || v != "" {
		t.Errorf("output = %v, %v; want empty and set", v, ok)
	}
	if v := got["max_url_length"]; v != int64(42) {
		t.Errorf("max_url_length = %v (%T), want int64 42", v, v)
	}
}

func TestMerge(t *testing.T) {
	dst := map[string]any{"a": 1, "t": map[string]any{"x": 1, "y": 2}}
	src := map[string]any{"b": 2, "t": map[string]any{"y": 3}}

	got := Merge(dst, src)
	inner := got["t"].(map[string]any)
	if got["a"] != 1 || got["b"] != 2 || inner["x"] != 1 || inner["y"] != 3 {
		t.Errorf("Merge = %v", got)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	data, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir error: %v", err)
	}

	switch {
	case strings.HasSuffix(dir, "/xdg/config/kittyconf"):
		if data != "/xdg/data/kittyconf" {
			t.Errorf("DataDir = %q, want /xdg/data/kittyconf", data)
		}
	default:
		// Non-XDG platforms ignore the variables.
		if !strings.HasSuffix(dir, AppName) {
			t.Errorf("ConfigDir = %q, want suffix %q", dir, AppName)
		}
	}
}

func TestResolveDataDir(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/custom"
	if got, _ := cfg.ResolveDataDir(); got != "/custom" {
		t.Errorf("ResolveDataDir = %q, want /custom", got)
	}
}
