// Package tui is a terminal form editor for a kittyconf session.
//
// The editor lists every setting grouped by category. It reads and writes
// values only through the session, and redraws whenever the session
// notifies a change, so edits made elsewhere (a watcher, a preset) show up
// immediately.
//
// Keys:
//
//	up/down, pgup/pgdn, home/end   move
//	enter                          edit the value (toggle for yes/no)
//	left/right                     cycle enum options
//	r / R                          reset setting / reset everything
//	s                              copy share link to the clipboard
//	/                              filter by key or label
//	q, ctrl+c                      quit
package tui

import (
	"context"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kittyconf/internal/catalog"
	"github.com/dshills/kittyconf/internal/notify"
	"github.com/dshills/kittyconf/internal/session"
	"github.com/dshills/kittyconf/internal/share"
)

// mode is the current input mode.
type mode uint8

const (
	modeBrowse mode = iota
	modeEdit
	modeFilter
)

// row is one line of the list: a category header or a setting.
type row struct {
	header  string
	setting *catalog.Setting
}

// Editor is the form editor.
type Editor struct {
	screen  tcell.Screen
	session *session.Session
	logger  *log.Logger
	copy    func(string) error
	maxURL  int

	rows   []row
	cursor int
	offset int

	mode   mode
	input  []rune
	filter string
	status string

	sub *notify.Subscription
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(e *Editor) {
		if fn != nil {
			e.copy = fn
		}
	}
}

// WithMaxURLLength sets the share link length warning threshold.
func WithMaxURLLength(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.maxURL = n
		}
	}
}

// New creates an editor drawing on screen. The screen must be initialized.
func New(screen tcell.Screen, sess *session.Session, opts ...Option) *Editor {
	e := &Editor{
		screen:  screen,
		session: sess,
		logger:  log.New(io.Discard),
		copy:    clipboard.WriteAll,
		maxURL:  share.MaxURLLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rebuild()

	// Redraw from the event loop, not from the notifying goroutine.
	e.sub = sess.Subscribe(func(notify.Change) {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	return e
}

// Close detaches the editor from the session.
func (e *Editor) Close() {
	e.sub.Unsubscribe()
}

// Run draws and handles events until the user quits or ctx is done.
func (e *Editor) Run(ctx context.Context) error {
	defer e.Close()

	// The waker must be gone before Run returns; the caller may Fini the
	// screen right after.
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
			_ = e.screen.PostEvent(tcell.NewEventInterrupt(ctx))
		case <-done:
		}
	}()
	defer func() {
		close(done)
		wg.Wait()
	}()

	e.Draw()
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if iv, ok := ev.(*tcell.EventInterrupt); ok && iv.Data() == ctx {
			return ctx.Err()
		}
		if e.HandleEvent(ctx, ev) {
			return nil
		}
		e.Draw()
	}
}

// HandleEvent processes one event and reports whether the editor should quit.
func (e *Editor) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		e.screen.Sync()
	case *tcell.EventKey:
		switch e.mode {
		case modeEdit:
			e.handleEditKey(ctx, ev)
		case modeFilter:
			e.handleFilterKey(ev)
		default:
			return e.handleBrowseKey(ctx, ev)
		}
	}
	return false
}

func (e *Editor) handleBrowseKey(ctx context.Context, ev *tcell.EventKey) bool {
	e.status = ""

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyUp:
		e.move(-1)
	case tcell.KeyDown:
		e.move(1)
	case tcell.KeyPgUp:
		e.move(-e.pageSize())
	case tcell.KeyPgDn:
		e.move(e.pageSize())
	case tcell.KeyHome:
		e.cursor = 0
		e.move(0)
	case tcell.KeyEnd:
		e.cursor = len(e.rows) - 1
		e.move(0)
	case tcell.KeyEnter:
		e.beginEdit(ctx)
	case tcell.KeyLeft:
		e.cycle(ctx, -1)
	case tcell.KeyRight:
		e.cycle(ctx, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'j':
			e.move(1)
		case 'k':
			e.move(-1)
		case 'r':
			if s := e.selected(); s != nil {
				e.set(ctx, s.Key, s.Default)
			}
		case 'R':
			if err := e.session.ResetAll(ctx); err != nil {
				e.status = "reset failed: " + err.Error()
			} else {
				e.status = "All settings reset"
			}
		case 's':
			e.shareLink(ctx)
		case '/':
			e.mode = modeFilter
			e.input = []rune(e.filter)
		}
	}
	return false
}

func (e *Editor) handleEditKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.mode = modeBrowse
		e.input = nil
	case tcell.KeyEnter:
		s := e.selected()
		e.mode = modeBrowse
		if s != nil {
			e.set(ctx, s.Key, string(e.input))
		}
		e.input = nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.input) > 0 {
			e.input = e.input[:len(e.input)-1]
		}
	case tcell.KeyCtrlU:
		e.input = e.input[:0]
	case tcell.KeyRune:
		e.input = append(e.input, ev.Rune())
	}
}

func (e *Editor) handleFilterKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.mode = modeBrowse
		e.input = nil
		e.filter = ""
		e.rebuild()
	case tcell.KeyEnter:
		e.mode = modeBrowse
		e.input = nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.input) > 0 {
			e.input = e.input[:len(e.input)-1]
		}
		e.filter = string(e.input)
		e.rebuild()
	case tcell.KeyRune:
		e.input = append(e.input, ev.Rune())
		e.filter = string(e.input)
		e.rebuild()
	}
}

func (e *Editor) beginEdit(ctx context.Context) {
	s := e.selected()
	if s == nil {
		return
	}
	switch s.Type {
	case catalog.TypeBool:
		b, err := catalog.ParseBool(e.session.Store().Get(s.Key))
		if err != nil {
			b = false
		}
		e.set(ctx, s.Key, catalog.FormatBool(!b))
	case catalog.TypeFile:
		e.status = "file settings are set with: kittyconf set " + s.Key + " <path>"
	default:
		e.mode = modeEdit
		e.input = []rune(e.session.Store().Get(s.Key))
	}
}

// cycle moves an enum setting to the next or previous option.
func (e *Editor) cycle(ctx context.Context, dir int) {
	s := e.selected()
	if s == nil || s.Type != catalog.TypeEnum || len(s.Options) == 0 {
		return
	}
	i := slices.Index(s.Options, e.session.Store().Get(s.Key))
	n := len(s.Options)
	i = ((i+dir)%n + n) % n
	e.set(ctx, s.Key, s.Options[i])
}

func (e *Editor) set(ctx context.Context, key, value string) {
	s := e.session.Catalog().Get(key)
	value = catalog.Normalize(s, value)
	if err := s.Check(value); err != nil {
		e.status = err.Error()
	}
	if err := e.session.Set(ctx, key, value); err != nil {
		e.logger.Error("saving setting", "key", key, "err", err)
		e.status = "save failed: " + err.Error()
	}
}

func (e *Editor) shareLink(ctx context.Context) {
	link, err := e.session.ShareURL(ctx)
	switch {
	case err != nil:
		e.status = "share failed: " + err.Error()
		return
	case !strings.Contains(link, "#"):
		e.status = "Nothing to share"
		return
	case len(link) > e.maxURL:
		e.status = "URL too long"
		return
	}
	if err := e.copy(link); err != nil {
		e.logger.Debug("clipboard unavailable", "err", err)
		e.status = link
		return
	}
	e.status = "Link copied!"
}

// rebuild recomputes the visible rows from the catalog and filter.
func (e *Editor) rebuild() {
	var selectedKey string
	if s := e.selected(); s != nil {
		selectedKey = s.Key
	}

	needle := strings.ToLower(e.filter)
	e.rows = e.rows[:0]
	for _, cat := range e.session.Catalog().Categories() {
		var matched []row
		for i := range cat.Settings {
			s := e.session.Catalog().Get(cat.Settings[i].Key)
			if needle != "" &&
				!strings.Contains(s.Key, needle) &&
				!strings.Contains(strings.ToLower(s.Label), needle) {
				continue
			}
			matched = append(matched, row{setting: s})
		}
		if len(matched) == 0 {
			continue
		}
		e.rows = append(e.rows, row{header: cat.Title})
		e.rows = append(e.rows, matched...)
	}

	e.cursor = 0
	for i, r := range e.rows {
		if r.setting != nil && r.setting.Key == selectedKey {
			e.cursor = i
			break
		}
	}
	e.move(0)
}

func (e *Editor) selected() *catalog.Setting {
	if e.cursor < 0 || e.cursor >= len(e.rows) {
		return nil
	}
	return e.rows[e.cursor].setting
}

// move shifts the cursor by delta, skipping headers, and scrolls.
func (e *Editor) move(delta int) {
	if len(e.rows) == 0 {
		e.cursor, e.offset = 0, 0
		return
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	e.cursor = min(max(e.cursor+delta, 0), len(e.rows)-1)
	for e.rows[e.cursor].setting == nil {
		next := e.cursor + step
		if next < 0 || next >= len(e.rows) {
			step = -step
			next = e.cursor + step
		}
		e.cursor = next
	}

	page := e.pageSize()
	if e.cursor < e.offset {
		e.offset = e.cursor
		if e.offset > 0 && e.rows[e.offset-1].setting == nil {
			e.offset--
		}
	}
	if e.cursor >= e.offset+page {
		e.offset = e.cursor - page + 1
	}
}

// pageSize is the number of list rows that fit between title and status.
func (e *Editor) pageSize() int {
	_, h := e.screen.Size()
	return max(h-3, 1)
}
