// Package watcher re-imports a kitty.conf whenever it changes on disk.
//
// The watcher observes the file's directory rather than the file itself so
// that editors which save by writing a temporary file and renaming it over
// the original are still noticed. Bursts of events are debounced into one
// reload.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/dshills/kittyconf/internal/session"
)

// DefaultDebounce is the quiet period before a reload.
const DefaultDebounce = 150 * time.Millisecond

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// Handler is called with the watched path after it settles.
type Handler func(ctx context.Context, path string) error

// Watcher watches one file.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	handler  Handler
	debounce time.Duration
	logger   *log.Logger

	mu     sync.Mutex
	closed bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before the handler runs.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher for path. The file must exist.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		handler:  handler,
		debounce: DefaultDebounce,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute watched path.
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers reloads until ctx is done or the watcher is closed. Handler
// errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("config changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)

		case <-timer.C:
			if _, err := os.Stat(w.path); err != nil {
				w.logger.Debug("config missing, waiting", "path", w.path)
				continue
			}
			if err := w.handler(ctx, w.path); err != nil {
				w.logger.Error("reload failed", "path", w.path, "err", err)
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.fsw.Close()
}

// Reimport returns a Handler that imports the file into sess, replacing the
// session state. onDone, if set, receives the import statistics.
func Reimport(sess *session.Session, onDone func(session.ImportStats)) Handler {
	return func(ctx context.Context, path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		stats, err := sess.ImportText(ctx, string(data))
		if err != nil {
			return err
		}
		if onDone != nil {
			onDone(stats)
		}
		return nil
	}
}
