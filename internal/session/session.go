// Package session composes the value store, the mapping list and the share
// codec into one editing session.
//
// A Session replaces what would otherwise be process-wide state: it owns the
// store, the mapping list, the Location the session was opened from and any
// share link that is waiting for the user to resolve a conflict.
package session

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/dshills/kittyconf/internal/catalog"
	"github.com/dshills/kittyconf/internal/conffile"
	"github.com/dshills/kittyconf/internal/keymap"
	"github.com/dshills/kittyconf/internal/notify"
	"github.com/dshills/kittyconf/internal/persist"
	"github.com/dshills/kittyconf/internal/share"
	"github.com/dshills/kittyconf/internal/store"
)

// Change sources reported in notifications.
const (
	SourceUser   = "user"
	SourceURL    = "url"
	SourceImport = "import"
	SourcePreset = "preset"
)

// Result is the outcome of LoadFromURL.
type Result uint8

const (
	// None means the location carried nothing usable.
	None Result = iota
	// Applied means the link content is now the session state.
	Applied
	// Conflict means the link differs from local edits and is pending.
	Conflict
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case None:
		return "none"
	case Applied:
		return "applied"
	case Conflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Session is one kittyconf editing session.
//
// Thread Safety:
// Session is safe for concurrent use.
type Session struct {
	// mu guards mappings and pending.
	mu       sync.Mutex
	mappings keymap.List
	pending  *share.Payload

	store    *store.Store
	catalog  *catalog.Catalog
	storage  persist.Storage
	notifier *notify.Notifier
	location Location
	logger   *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithStorage sets durable storage for settings and mappings.
func WithStorage(s persist.Storage) Option {
	return func(sess *Session) {
		sess.storage = s
	}
}

// WithLocation sets the location the session was opened from.
func WithLocation(l Location) Option {
	return func(sess *Session) {
		if l != nil {
			sess.location = l
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(sess *Session) {
		if l != nil {
			sess.logger = l
		}
	}
}

// New creates a session over cat. Call Hydrate to load persisted state.
func New(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog:  cat,
		notifier: notify.New(),
		location: NewLocation(""),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	storeOpts := []store.Option{
		store.WithNotifier(s.notifier),
		store.WithLogger(s.logger),
	}
	if s.storage != nil {
		storeOpts = append(storeOpts, store.WithStorage(s.storage))
	}
	s.store = store.New(cat, storeOpts...)
	return s
}

// Store returns the value store.
func (s *Session) Store() *store.Store {
	return s.store
}

// Catalog returns the settings catalog.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Location returns the session location.
func (s *Session) Location() Location {
	return s.location
}

// Subscribe registers an observer for settings and mapping changes.
func (s *Session) Subscribe(observer notify.Observer) *notify.Subscription {
	return s.notifier.Subscribe(observer)
}

// Hydrate loads persisted settings and mappings.
func (s *Session) Hydrate(ctx context.Context) error {
	if err := s.store.Hydrate(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadMappings(ctx)
}

// HasLocalChanges reports whether any setting differs from its default or
// any mapping exists.
func (s *Session) HasLocalChanges() bool {
	s.mu.Lock()
	n := len(s.mappings)
	s.mu.Unlock()
	return n > 0 || s.store.HasChanges()
}

// LoadFromURL reconciles the share token in the location with local state.
//
// Without local changes the link is applied. With local changes the link is
// applied only when every value it carries already matches; otherwise it is
// kept pending and Conflict is returned with the store untouched. A missing
// or undecodable token yields None. The returned error reports persistence
// failures only.
func (s *Session) LoadFromURL(ctx context.Context) (Result, error) {
	token := share.TokenFromURL(s.location.URL())
	if token == "" {
		return None, nil
	}

	payload, err := share.Decode(s.catalog, token)
	if err != nil {
		s.logger.Debug("ignoring share token", "err", err)
		return None, nil
	}
	if len(payload.Entries) == 0 && len(payload.Mappings) == 0 {
		return None, nil
	}

	if !s.HasLocalChanges() {
		if err := s.replace(ctx, payload, SourceURL); err != nil {
			return Applied, err
		}
		return Applied, nil
	}

	if s.matches(payload) {
		return Applied, nil
	}

	s.mu.Lock()
	s.pending = &payload
	s.mu.Unlock()
	return Conflict, nil
}

// matches reports whether every value the payload carries equals the current
// value exactly. Settings the payload does not mention are not compared.
func (s *Session) matches(p share.Payload) bool {
	for _, e := range p.Entries {
		if s.store.Get(e.Key) != e.Value {
			return false
		}
	}
	if len(p.Mappings) == 0 {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return p.Mappings.Same(s.mappings)
}

// Pending reports whether a conflicting link is waiting.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// PendingPayload returns the waiting link content.
func (s *Session) PendingPayload() (share.Payload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return share.Payload{}, false
	}
	return *s.pending, true
}

// ApplyPending replaces the session state with the pending link content.
// It does nothing when no link is pending.
func (s *Session) ApplyPending(ctx context.Context) error {
	s.mu.Lock()
	p := s.pending
	s.pending = nil
	s.mu.Unlock()

	if p == nil {
		return nil
	}
	return s.replace(ctx, *p, SourceURL)
}

// DismissPending drops the pending link and removes the fragment from the
// location so a reload does not ask again.
func (s *Session) DismissPending() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
	stripFragment(s.location)
}

// replace resets to defaults, then applies p: settings and mappings in one
// notification.
func (s *Session) replace(ctx context.Context, p share.Payload, source string) error {
	s.mu.Lock()
	s.mappings = p.Mappings.Renumber()
	mapErr := s.saveMappings(ctx)
	s.mu.Unlock()

	if err := s.store.Replace(ctx, p.Entries, source); err != nil {
		return err
	}
	return mapErr
}

// ShareURL returns the location without fragment plus "#c=<token>", or the
// bare location when there is nothing to share.
func (s *Session) ShareURL(_ context.Context) (string, error) {
	s.mu.Lock()
	mappings := s.mappings.Clone()
	s.mu.Unlock()

	token, err := share.Encode(s.catalog, s.store.ShareableEntries(), mappings)
	if err != nil {
		return "", fmt.Errorf("encoding share link: %w", err)
	}
	return share.BuildURL(s.location.URL(), token), nil
}

// ResetAll returns every setting to its default, clears the mappings and
// removes the fragment from the location.
func (s *Session) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	s.mappings = nil
	mapErr := s.saveMappings(ctx)
	s.mu.Unlock()

	stripFragment(s.location)

	if err := s.store.ResetAll(ctx, SourceUser); err != nil {
		return err
	}
	return mapErr
}

// Set stores one setting value.
func (s *Session) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, key, value, SourceUser)
}

// Mappings returns a copy of the mapping list.
func (s *Session) Mappings() keymap.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mappings.Clone()
}

// SetMappings replaces the mapping list.
func (s *Session) SetMappings(ctx context.Context, list keymap.List) error {
	for _, m := range list {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.mappings = list.Renumber()
	err := s.saveMappings(ctx)
	s.mu.Unlock()

	s.notifier.Notify(notify.Change{Type: notify.ChangeMappings, Source: SourceUser})
	return err
}

// AddMapping appends m and returns its id.
func (s *Session) AddMapping(ctx context.Context, m keymap.Mapping) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	var id string
	s.mappings, id = s.mappings.Append(m)
	err := s.saveMappings(ctx)
	s.mu.Unlock()

	s.notifier.Notify(notify.Change{Type: notify.ChangeMappings, Source: SourceUser})
	return id, err
}

// RemoveMapping removes the mapping with the given id.
func (s *Session) RemoveMapping(ctx context.Context, id string) error {
	s.mu.Lock()
	list, ok := s.mappings.Remove(id)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrMappingNotFound, id)
	}
	s.mappings = list
	err := s.saveMappings(ctx)
	s.mu.Unlock()

	s.notifier.Notify(notify.Change{Type: notify.ChangeMappings, Source: SourceUser})
	return err
}

// ImportStats summarizes an import.
type ImportStats struct {
	Applied  int
	Mappings int
	Unknown  []string
}

// ImportText resets the session and applies a kitty.conf text.
func (s *Session) ImportText(ctx context.Context, text string) (ImportStats, error) {
	doc, err := conffile.ParseString(text, s.catalog)
	if err != nil {
		return ImportStats{}, err
	}
	return s.ImportDocument(ctx, doc)
}

// ImportDocument resets the session and applies doc in one notification.
// Like ResetAll it removes the fragment from the location.
func (s *Session) ImportDocument(ctx context.Context, doc *conffile.Document) (ImportStats, error) {
	stripFragment(s.location)

	stats := ImportStats{
		Applied:  len(doc.Entries),
		Mappings: len(doc.Mappings),
		Unknown:  doc.Unknown,
	}
	err := s.replace(ctx, share.Payload{Entries: doc.Resolved(), Mappings: doc.Mappings}, SourceImport)
	return stats, err
}

// Generate writes the session as kitty.conf. When withPermalink is set the
// share link is included as a comment.
func (s *Session) Generate(ctx context.Context, w io.Writer, version string, withPermalink bool) error {
	in := conffile.Input{
		Catalog:   s.catalog,
		Entries:   s.store.ChangedEntries(),
		Mappings:  s.Mappings(),
		FileNames: make(map[string]string),
		Version:   version,
	}
	for _, e := range in.Entries {
		if name := s.store.FileName(e.Key); name != "" {
			in.FileNames[e.Key] = name
		}
	}

	if withPermalink {
		link, err := s.ShareURL(ctx)
		if err != nil {
			return err
		}
		if hasFragment(link) {
			in.Permalink = link
		}
	}
	return conffile.Generate(w, in)
}
