// Package preset runs Lua scripts that edit a kittyconf session.
//
// Scripts run in a sandbox without io, os, debug or module loading; the
// only way out is the kitty module (see registerAPI).
//
//	kitty.set("font_size", 13)
//	kitty.set("cursor_blink_interval", 0)
//	kitty.map("ctrl+shift+t", "new_tab")
package preset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/kittyconf/internal/session"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 5 * time.Second

const sourcePreset = session.SourcePreset

// Result summarizes a script run.
type Result struct {
	// Set counts kitty.set and kitty.reset calls.
	Set int
	// Mapped counts kitty.map calls.
	Mapped int
}

// Runner executes preset scripts against a session.
//
// gopher-lua states are not goroutine-safe; Runner serializes runs.
type Runner struct {
	mu      sync.Mutex
	session *session.Session
	timeout time.Duration
	logger  *log.Logger
	output  io.Writer
	result  Result
	closed  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the per-run time budget.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithOutput sets where print writes. Default is the logger at info level.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.output = w
	}
}

// NewRunner creates a runner for sess.
func NewRunner(sess *session.Session, opts ...Option) *Runner {
	r := &Runner{
		session: sess,
		timeout: DefaultTimeout,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunFile executes the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) (Result, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading preset: %w", err)
	}
	return r.Run(ctx, path, string(code))
}

// Run executes code. name is used in error messages. Changes made before
// an error are kept.
func (r *Runner) Run(ctx context.Context, name, code string) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return Result{}, ErrRunnerClosed
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	L.SetContext(ctx)

	openSafeLibraries(L)
	installSandbox(L, r.print)
	r.registerAPI(L)

	r.result = Result{}
	err := doWithRecovery(func() error {
		fn, err := L.Load(strings.NewReader(code), name)
		if err != nil {
			return err
		}
		L.Push(fn)
		return L.PCall(0, lua.MultRet, nil)
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return r.result, fmt.Errorf("%w: %s", ErrTimeout, name)
		}
		return r.result, fmt.Errorf("preset %s: %w", name, err)
	}

	r.logger.Debug("preset finished", "name", name, "set", r.result.Set, "mapped", r.result.Mapped)
	return r.result, nil
}

func (r *Runner) print(msg string) {
	if r.output != nil {
		fmt.Fprintln(r.output, msg)
		return
	}
	r.logger.Info(msg)
}

// Close makes further runs fail.
func (r *Runner) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
