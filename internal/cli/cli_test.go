package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kittyconf/internal/catalog"
	"github.com/dshills/kittyconf/internal/keymap"
	"github.com/dshills/kittyconf/internal/share"
	"github.com/dshills/kittyconf/internal/store"
)

const testBase = "https://kitty.example/conf/"

type result struct {
	code   int
	stdout string
	stderr string
}

type harness struct {
	t      *testing.T
	dir    string
	stdin  string
	copied string
	env    []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{t: t, dir: t.TempDir()}
}

func (h *harness) run(args ...string) result {
	h.t.Helper()
	var out, errOut bytes.Buffer
	app := &App{
		In:   strings.NewReader(h.stdin),
		Out:  &out,
		Err:  &errOut,
		Env:  h.env,
		Info: BuildInfo{Version: "test"},
		Clipboard: func(s string) error {
			h.copied = s
			return nil
		},
		HTTPClient: http.DefaultClient,
		NewScreen: func() (tcell.Screen, error) {
			return tcell.NewSimulationScreen("UTF-8"), nil
		},
		IsTerminal: func(any) bool { return false },
	}

	full := append([]string{
		"--config", filepath.Join(h.dir, "config.toml"),
		"--data-dir", filepath.Join(h.dir, "data"),
		"--base-url", testBase,
	}, args...)
	code := app.Execute(context.Background(), full)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func (h *harness) mustRun(args ...string) result {
	h.t.Helper()
	r := h.run(args...)
	if r.code != ExitOK {
		h.t.Fatalf("%v exit = %d, stderr = %q", args, r.code, r.stderr)
	}
	return r
}

func (h *harness) get(key string) string {
	h.t.Helper()
	return strings.TrimSpace(h.mustRun("get", key).stdout)
}

func linkFor(t *testing.T, entries []store.Entry) string {
	t.Helper()
	token, err := share.Encode(catalog.Builtin(), entries, nil)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	return share.BuildURL(testBase, token)
}

func TestSetGetPersistsAcrossRuns(t *testing.T) {
	h := newHarness(t)

	if got := h.get("font_size"); got != "11.0" {
		t.Errorf("default font_size = %q, want %q", got, "11.0")
	}

	h.mustRun("set", "font_size", "14")
	if got := h.get("font_size"); got != "14" {
		t.Errorf("font_size = %q, want %q", got, "14")
	}

	h.mustRun("set", "background", "#1E1E2E")
	if got := h.get("background"); got != "#1e1e2e" {
		t.Errorf("background = %q, want normalized %q", got, "#1e1e2e")
	}
}

func TestSetUnknownKey(t *testing.T) {
	h := newHarness(t)
	r := h.run("set", "no_such_option", "1")
	if r.code != ExitUsage {
		t.Errorf("exit = %d, want %d", r.code, ExitUsage)
	}
	if !strings.Contains(r.stderr, "unknown setting") {
		t.Errorf("stderr = %q, want unknown setting", r.stderr)
	}
}

func TestSetWarnsOnConstraint(t *testing.T) {
	h := newHarness(t)
	r := h.mustRun("set", "cursor_shape", "triangle")
	if !strings.Contains(r.stderr, "Warning") {
		t.Errorf("stderr = %q, want a warning", r.stderr)
	}
	if got := h.get("cursor_shape"); got != "triangle" {
		t.Errorf("cursor_shape = %q, want value stored anyway", got)
	}
}

func TestSetFileEmbedsData(t *testing.T) {
	h := newHarness(t)
	img := filepath.Join(h.dir, "wall.png")
	if err := os.WriteFile(img, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	h.mustRun("set", "background_image", img)
	got := h.get("background_image")
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Errorf("background_image = %q, want a png data URL", got)
	}

	r := h.run("share")
	if r.code != ExitFailure {
		t.Errorf("share exit = %d, want %d for file-only changes", r.code, ExitFailure)
	}
}

func TestReset(t *testing.T) {
	h := newHarness(t)
	h.mustRun("set", "font_size", "14")
	h.mustRun("set", "scrollback_lines", "5000")
	h.mustRun("map", "add", "ctrl+shift+t", "new_tab")

	h.mustRun("reset", "font_size")
	if got := h.get("font_size"); got != "11.0" {
		t.Errorf("font_size = %q, want default", got)
	}
	if got := h.get("scrollback_lines"); got != "5000" {
		t.Errorf("scrollback_lines = %q, want untouched", got)
	}

	h.mustRun("reset")
	if got := h.get("scrollback_lines"); got != "2000" {
		t.Errorf("scrollback_lines = %q, want default", got)
	}
	r := h.mustRun("map", "list")
	if !strings.Contains(r.stdout, "No key mappings") {
		t.Errorf("map list = %q, want empty", r.stdout)
	}
}

func TestGenerate(t *testing.T) {
	h := newHarness(t)
	h.mustRun("set", "font_size", "14")
	h.mustRun("map", "add", "ctrl+shift+t", "new_tab")

	r := h.mustRun("generate", "--permalink")
	for _, want := range []string{
		"# Generated by kittyconf",
		"# Permalink: " + testBase + "#c=",
		"# Fonts",
		"font_size 14",
		"# Key mappings",
		"map ctrl+shift+t new_tab",
	} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("generate output missing %q:\n%s", want, r.stdout)
		}
	}

	path := filepath.Join(h.dir, "kitty.conf")
	h.mustRun("generate", "-o", path)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(data), "font_size 14") {
		t.Errorf("written file = %q", data)
	}
}

func TestShare(t *testing.T) {
	h := newHarness(t)

	r := h.run("share")
	if r.code != ExitFailure || !strings.Contains(r.stderr, "nothing to share") {
		t.Errorf("share on defaults = %d %q, want failure with nothing to share", r.code, r.stderr)
	}

	h.mustRun("set", "font_size", "14")
	r = h.mustRun("share", "--copy")
	link := strings.TrimSpace(r.stdout)
	if !strings.HasPrefix(link, testBase+"#c=") {
		t.Fatalf("link = %q", link)
	}
	if h.copied != link {
		t.Errorf("copied = %q, want %q", h.copied, link)
	}

	p, err := share.Decode(catalog.Builtin(), share.TokenFromURL(link))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if v, _ := p.Lookup("font_size"); v != "14" {
		t.Errorf("decoded font_size = %q, want 14", v)
	}
}

func TestOpenIntoCleanSession(t *testing.T) {
	h := newHarness(t)
	link := linkFor(t, []store.Entry{{Key: "background", Value: "#112233"}})

	r := h.mustRun("open", link)
	if !strings.Contains(r.stderr, "loaded") {
		t.Errorf("stderr = %q", r.stderr)
	}
	if got := h.get("background"); got != "#112233" {
		t.Errorf("background = %q, want #112233", got)
	}
}

func TestOpenNothing(t *testing.T) {
	h := newHarness(t)
	r := h.run("open", testBase)
	if r.code != ExitFailure {
		t.Errorf("exit = %d, want %d", r.code, ExitFailure)
	}
}

func TestOpenConflict(t *testing.T) {
	h := newHarness(t)
	h.mustRun("set", "font_size", "16")
	link := linkFor(t, []store.Entry{{Key: "font_size", Value: "14"}})

	r := h.run("open", link)
	if r.code != ExitConflict {
		t.Fatalf("exit = %d, want %d", r.code, ExitConflict)
	}
	if !strings.Contains(r.stdout, "font_size") {
		t.Errorf("conflict listing = %q, want font_size", r.stdout)
	}
	if got := h.get("font_size"); got != "16" {
		t.Errorf("font_size = %q, want local value kept", got)
	}

	h.mustRun("open", "--dismiss", link)
	if got := h.get("font_size"); got != "16" {
		t.Errorf("after dismiss font_size = %q, want 16", got)
	}

	h.mustRun("open", "--force", link)
	if got := h.get("font_size"); got != "14" {
		t.Errorf("after force font_size = %q, want 14", got)
	}
}

func TestOpenForceAndDismissExclusive(t *testing.T) {
	h := newHarness(t)
	r := h.run("open", "--force", "--dismiss", testBase)
	if r.code == ExitOK {
		t.Error("expected an error for --force with --dismiss")
	}
}

func TestOpenMatchingLinkKeepsOtherEdits(t *testing.T) {
	h := newHarness(t)
	h.mustRun("set", "font_size", "14")
	h.mustRun("set", "scrollback_lines", "5000")

	h.mustRun("open", linkFor(t, []store.Entry{{Key: "font_size", Value: "14"}}))
	if got := h.get("scrollback_lines"); got != "5000" {
		t.Errorf("scrollback_lines = %q, want 5000", got)
	}
}

func TestImportFileAndStdin(t *testing.T) {
	h := newHarness(t)
	h.mustRun("set", "scrollback_lines", "5000")

	conf := filepath.Join(h.dir, "kitty.conf")
	text := "font_size 13\nnot_an_option 1\nmap ctrl+shift+t new_tab\n"
	if err := os.WriteFile(conf, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	r := h.mustRun("import", conf)
	if !strings.Contains(r.stderr, "not_an_option") {
		t.Errorf("stderr = %q, want unknown option reported", r.stderr)
	}
	if got := h.get("font_size"); got != "13" {
		t.Errorf("font_size = %q, want 13", got)
	}
	if got := h.get("scrollback_lines"); got != "2000" {
		t.Errorf("scrollback_lines = %q, want reset by import", got)
	}

	h.stdin = "cursor_shape beam\n"
	h.mustRun("import", "-")
	if got := h.get("cursor_shape"); got != "beam" {
		t.Errorf("cursor_shape = %q, want beam", got)
	}
	if got := h.get("font_size"); got != "11.0" {
		t.Errorf("font_size = %q, want default after second import", got)
	}
}

func TestImportURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("font_size 15\n"))
	}))
	defer srv.Close()

	h := newHarness(t)
	h.mustRun("import", srv.URL+"/kitty.conf")
	if got := h.get("font_size"); got != "15" {
		t.Errorf("font_size = %q, want 15", got)
	}
}

func TestMapCommands(t *testing.T) {
	h := newHarness(t)

	r := h.mustRun("map", "add", "ctrl+shift+enter", "launch", "--cwd=current")
	if !strings.Contains(r.stderr, "not a known action") {
		t.Errorf("stderr = %q, want custom action warning", r.stderr)
	}
	h.mustRun("map", "add", "ctrl+shift+t", "new_tab")

	r = h.mustRun("map", "list")
	if !strings.Contains(r.stdout, "map ctrl+shift+enter launch --cwd=current") {
		t.Errorf("map list = %q", r.stdout)
	}

	h.mustRun("map", "rm", "1")
	r = h.mustRun("map", "list")
	if strings.Contains(r.stdout, "launch") || !strings.Contains(r.stdout, "new_tab") {
		t.Errorf("map list after rm = %q", r.stdout)
	}

	if r := h.run("map", "rm", "99"); r.code != ExitFailure {
		t.Errorf("rm unknown exit = %d, want %d", r.code, ExitFailure)
	}
	if r := h.run("map", "add", "ctrl shift", "new_tab"); r.code != ExitUsage {
		t.Errorf("invalid keys exit = %d, want %d", r.code, ExitUsage)
	}

	r = h.mustRun("map", "actions")
	if a, _ := keymap.Lookup("new_tab"); !strings.Contains(r.stdout, a.Value) {
		t.Errorf("actions output missing new_tab")
	}
}

func TestPreset(t *testing.T) {
	h := newHarness(t)
	script := filepath.Join(h.dir, "p.lua")
	code := `
local kitty = require("kitty")
kitty.set("font_size", "12.5")
kitty.map("ctrl+shift+t", "new_tab")
`
	if err := os.WriteFile(script, []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}

	r := h.mustRun("preset", script)
	if !strings.Contains(r.stderr, "1 settings, 1 key mappings") {
		t.Errorf("stderr = %q", r.stderr)
	}
	if got := h.get("font_size"); got != "12.5" {
		t.Errorf("font_size = %q, want 12.5", got)
	}
}

func TestShowAndCatalog(t *testing.T) {
	h := newHarness(t)
	r := h.mustRun("show")
	if !strings.Contains(r.stdout, "No changes") {
		t.Errorf("show on defaults = %q", r.stdout)
	}

	h.mustRun("set", "font_size", "14")
	r = h.mustRun("show")
	if !strings.Contains(r.stdout, "font_size") || !strings.Contains(r.stdout, "11.0") {
		t.Errorf("show = %q", r.stdout)
	}

	r = h.mustRun("catalog", "--category", "cursor")
	if !strings.Contains(r.stdout, "cursor_shape") || strings.Contains(r.stdout, "font_size") {
		t.Errorf("catalog cursor = %q", r.stdout)
	}
	if r := h.run("catalog", "--category", "nope"); r.code != ExitUsage {
		t.Errorf("unknown category exit = %d, want %d", r.code, ExitUsage)
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	h := newHarness(t)
	cfg := "max_url_length = 10\n"
	if err := os.WriteFile(filepath.Join(h.dir, "config.toml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	h.mustRun("set", "font_size", "14")

	r := h.mustRun("share")
	if !strings.Contains(r.stderr, "Warning") {
		t.Errorf("stderr = %q, want long link warning", r.stderr)
	}

	h.env = []string{"KITTYCONF_LOG_LEVEL=loud"}
	if r := h.run("show"); r.code != ExitUsage {
		t.Errorf("bad log level exit = %d, want %d", r.code, ExitUsage)
	}
}

func TestEditNeedsTerminal(t *testing.T) {
	h := newHarness(t)
	if r := h.run("edit"); r.code != ExitUsage {
		t.Errorf("exit = %d, want %d", r.code, ExitUsage)
	}
}

func TestBuildInfo(t *testing.T) {
	if got := (BuildInfo{Version: "dev"}).String(); got != "dev (built from source)" {
		t.Errorf("String() = %q", got)
	}
	got := BuildInfo{Version: "1.2.0", Commit: "abc", Date: "2026-01-01"}.String()
	if got != "1.2.0 (commit: abc, built: 2026-01-01)" {
		t.Errorf("String() = %q", got)
	}
}
