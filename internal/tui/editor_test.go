package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kittyconf/internal/catalog"
	"github.com/dshills/kittyconf/internal/session"
)

func newTestEditor(t *testing.T, opts ...Option) (*Editor, tcell.SimulationScreen, *session.Session) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	sess := session.New(catalog.Builtin(), session.WithLocation(session.NewLocation("https://x.dev/")))
	e := New(screen, sess, opts...)
	t.Cleanup(e.Close)
	return e, screen, sess
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func typeText(e *Editor, text string) {
	for _, r := range text {
		e.HandleEvent(context.Background(), runeKey(r))
	}
}

func line(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestEditor_InitialSelection(t *testing.T) {
	e, screen, _ := newTestEditor(t)
	e.Draw()

	if s := e.selected(); s == nil || s.Key != "font_family" {
		t.Fatalf("selected = %v, want font_family", s)
	}
	if got := line(screen, 1); got != "Fonts" {
		t.Errorf("line 1 = %q, want Fonts header", got)
	}
	if got := line(screen, 2); !strings.HasPrefix(got, "  font_family") || !strings.HasSuffix(got, "monospace") {
		t.Errorf("line 2 = %q", got)
	}
	if got := line(screen, 0); !strings.Contains(got, "0 changed") {
		t.Errorf("title = %q", got)
	}
}

func TestEditor_EditValue(t *testing.T) {
	e, _, sess := newTestEditor(t)
	ctx := context.Background()

	e.HandleEvent(ctx, key(tcell.KeyDown)) // font_size
	if s := e.selected(); s.Key != "font_size" {
		t.Fatalf("selected = %s, want font_size", s.Key)
	}

	e.HandleEvent(ctx, key(tcell.KeyEnter))
	e.HandleEvent(ctx, key(tcell.KeyCtrlU))
	typeText(e, "14")
	e.HandleEvent(ctx, key(tcell.KeyEnter))

	if got := sess.Store().Get("font_size"); got != "14" {
		t.Errorf("font_size = %q, want 14", got)
	}

	e.HandleEvent(ctx, key(tcell.KeyEnter))
	typeText(e, "99")
	e.HandleEvent(ctx, key(tcell.KeyEscape))
	if got := sess.Store().Get("font_size"); got != "14" {
		t.Errorf("font_size after cancel = %q, want 14", got)
	}

	e.HandleEvent(ctx, runeKey('r'))
	if got := sess.Store().Get("font_size"); got != "11.0" {
		t.Errorf("font_size after reset = %q, want default", got)
	}
}

func TestEditor_ToggleAndCycle(t *testing.T) {
	e, _, sess := newTestEditor(t)
	ctx := context.Background()

	typeText(e, "/enable_audio")
	e.HandleEvent(ctx, key(tcell.KeyEnter))
	if s := e.selected(); s == nil || s.Key != "enable_audio_bell" {
		t.Fatalf("selected = %v, want enable_audio_bell", s)
	}
	e.HandleEvent(ctx, key(tcell.KeyEnter))
	if got := sess.Store().Get("enable_audio_bell"); got != "no" {
		t.Errorf("enable_audio_bell = %q, want no", got)
	}

	typeText(e, "/")
	for i := 0; i < len("enable_audio"); i++ {
		e.HandleEvent(ctx, key(tcell.KeyBackspace2))
	}
	typeText(e, "cursor_shape")
	e.HandleEvent(ctx, key(tcell.KeyEnter))
	if s := e.selected(); s == nil || s.Key != "cursor_shape" {
		t.Fatalf("selected = %v, want cursor_shape", s)
	}

	s := e.selected()
	e.HandleEvent(ctx, key(tcell.KeyRight))
	if got := sess.Store().Get("cursor_shape"); got != s.Options[1] {
		t.Errorf("cursor_shape = %q, want %q", got, s.Options[1])
	}
	e.HandleEvent(ctx, key(tcell.KeyLeft))
	e.HandleEvent(ctx, key(tcell.KeyLeft))
	if got := sess.Store().Get("cursor_shape"); got != s.Options[len(s.Options)-1] {
		t.Errorf("cursor_shape = %q, want last option", got)
	}
}

func TestEditor_FilterEscapeRestores(t *testing.T) {
	e, _, _ := newTestEditor(t)
	all := len(e.rows)

	typeText(e, "/background")
	if len(e.rows) >= all {
		t.Errorf("filtered rows = %d, want fewer than %d", len(e.rows), all)
	}
	e.HandleEvent(context.Background(), key(tcell.KeyEscape))
	if len(e.rows) != all {
		t.Errorf("rows after escape = %d, want %d", len(e.rows), all)
	}
}

func TestEditor_Share(t *testing.T) {
	var copied string
	e, _, sess := newTestEditor(t, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	ctx := context.Background()

	e.HandleEvent(ctx, runeKey('s'))
	if e.status != "Nothing to share" || copied != "" {
		t.Errorf("status = %q, copied = %q", e.status, copied)
	}

	_ = sess.Set(ctx, "background", "#112233")
	e.HandleEvent(ctx, runeKey('s'))
	if e.status != "Link copied!" || !strings.HasPrefix(copied, "https://x.dev/#c=") {
		t.Errorf("status = %q, copied = %q", e.status, copied)
	}
}

func TestEditor_ShareTooLong(t *testing.T) {
	e, _, sess := newTestEditor(t, WithMaxURLLength(10), WithClipboard(func(string) error {
		return errors.New("should not copy")
	}))
	ctx := context.Background()

	_ = sess.Set(ctx, "background", "#112233")
	e.HandleEvent(ctx, runeKey('s'))
	if e.status != "URL too long" {
		t.Errorf("status = %q, want URL too long", e.status)
	}
}

func TestEditor_Quit(t *testing.T) {
	e, _, _ := newTestEditor(t)
	if !e.HandleEvent(context.Background(), runeKey('q')) {
		t.Error("q did not quit")
	}
}

func TestEditor_RedrawsOnExternalChange(t *testing.T) {
	e, screen, sess := newTestEditor(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	_ = sess.Set(context.Background(), "font_family", "Fira Code")
	screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := <-done; err != nil {
		t.Fatalf("Run error: %v", err)
	}
	cancel()

	if got := line(screen, 2); !strings.HasSuffix(got, "Fira Code") {
		t.Errorf("line 2 = %q, want Fira Code", got)
	}
}

func TestEditor_RunQuitLeavesNoInterrupt(t *testing.T) {
	e, screen, _ := newTestEditor(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := e.Run(ctx); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	// Cancelling after Run returned must not post anything to the screen.
	cancel()
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	ev := screen.PollEvent()
	k, ok := ev.(*tcell.EventKey)
	if !ok || k.Rune() != 'x' {
		t.Errorf("next event = %T %v, want the x key", ev, ev)
	}
}
