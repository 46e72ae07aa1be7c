// Package store holds the live values of a kittyconf session.
//
// The store maps every catalog key to its current string value. Values stay
// type-erased strings, mirroring kitty.conf; typed views are provided by the
// accessors in accessor.go. Every effective mutation is persisted before
// observers are notified, so an observer always sees a settled, persisted
// state.
package store

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/dshills/kittyconf/internal/catalog"
	"github.com/dshills/kittyconf/internal/notify"
	"github.com/dshills/kittyconf/internal/persist"
)

// Entry is a (key, value) pair.
type Entry struct {
	Key   string
	Value string
}

// Store is the value store for one session.
//
// Thread Safety:
// Store is safe for concurrent use. Mutations are serialized; observers run
// after the mutating lock is released and may call back into the store.
type Store struct {
	// writeMu serializes mutate-persist sequences.
	writeMu sync.Mutex

	// mu guards values and fileNames.
	mu        sync.RWMutex
	values    map[string]string
	fileNames map[string]string

	catalog  *catalog.Catalog
	storage  persist.Storage
	notifier *notify.Notifier
	logger   *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithStorage sets the durable storage. Without it the store is memory-only.
func WithStorage(s persist.Storage) Option {
	return func(st *Store) {
		st.storage = s
	}
}

// WithNotifier shares a notifier with other session components.
func WithNotifier(n *notify.Notifier) Option {
	return func(st *Store) {
		if n != nil {
			st.notifier = n
		}
	}
}

// WithLogger sets the logger used for degraded paths.
func WithLogger(l *log.Logger) Option {
	return func(st *Store) {
		if l != nil {
			st.logger = l
		}
	}
}

// New creates a store seeded with the catalog defaults.
func New(cat *catalog.Catalog, opts ...Option) *Store {
	s := &Store{
		values:    cat.Defaults(),
		fileNames: make(map[string]string),
		catalog:   cat,
		notifier:  notify.New(),
		logger:    log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Catalog returns the catalog the store is seeded from.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// Notifier returns the notifier used for change delivery.
func (s *Store) Notifier() *notify.Notifier {
	return s.notifier
}

// Hydrate loads the persisted record over the defaults. A corrupt record
// or unknown keys are ignored; the store then stays at defaults for the
// affected keys. Observers are not notified: hydration happens before any
// consumer has rendered.
func (s *Store) Hydrate(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}

	doc, ok, err := s.storage.GetItem(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("loading persisted state: %w", err)
	}
	if !ok || doc == "" {
		return nil
	}

	entries, err := decodeRecord(doc)
	if err != nil {
		s.logger.Debug("ignoring persisted state", "err", err)
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		if !s.catalog.Has(e.Key) {
			s.logger.Debug("ignoring unknown persisted setting", "key", e.Key)
			continue
		}
		s.values[e.Key] = e.Value
	}
	return nil
}

// Get returns the current value of key, or "" if key is unknown.
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set stores value under key. It is a no-op when value is exactly the
// stored string. Otherwise the state is persisted and observers are notified
// synchronously, in subscription order.
//
// A persistence failure is returned after observers have been notified; the
// in-memory value is authoritative for the rest of the session.
func (s *Store) Set(ctx context.Context, key, value, source string) error {
	if !s.catalog.Has(key) {
		return fmt.Errorf("%w: %s", catalog.ErrUnknownSetting, key)
	}

	s.writeMu.Lock()

	s.mu.Lock()
	old := s.values[key]
	if old == value {
		s.mu.Unlock()
		s.writeMu.Unlock()
		return nil
	}
	s.values[key] = value
	s.mu.Unlock()

	err := s.persist(ctx)
	s.writeMu.Unlock()

	s.notifier.NotifySet(key, old, value, source)
	return err
}

// ResetAll returns every setting to its default, clears the persisted
// record and notifies once.
func (s *Store) ResetAll(ctx context.Context, source string) error {
	s.writeMu.Lock()

	s.mu.Lock()
	s.values = s.catalog.Defaults()
	s.mu.Unlock()

	var err error
	if s.storage != nil {
		if rmErr := s.storage.RemoveItem(ctx, StorageKey); rmErr != nil {
			err = fmt.Errorf("clearing persisted state: %w", rmErr)
		}
	}
	s.writeMu.Unlock()

	s.notifier.Notify(notify.Change{Type: notify.ChangeReset, Source: source})
	return err
}

// Replace resets every setting to its default and then applies entries, as
// one mutation: one persistence write, one notification. Entries for unknown
// keys are dropped.
func (s *Store) Replace(ctx context.Context, entries []Entry, source string) error {
	s.writeMu.Lock()

	values := s.catalog.Defaults()
	for _, e := range entries {
		if !s.catalog.Has(e.Key) {
			s.logger.Debug("dropping unknown setting", "key", e.Key, "source", source)
			continue
		}
		values[e.Key] = e.Value
	}

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()

	err := s.persist(ctx)
	s.writeMu.Unlock()

	s.notifier.Notify(notify.Change{Type: notify.ChangeReplace, Source: source})
	return err
}

// Subscribe registers an observer for every effective mutation.
func (s *Store) Subscribe(observer notify.Observer) *notify.Subscription {
	return s.notifier.Subscribe(observer)
}

// SubscribeKey registers an observer for one key (and whole-state changes).
func (s *Store) SubscribeKey(key string, observer notify.Observer) *notify.Subscription {
	return s.notifier.SubscribeKey(key, observer)
}

// Snapshot returns a copy of every current value.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// FileName returns the recorded display name of an embedded file setting.
func (s *Store) FileName(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fileNames[key]
}

// SetFileName records the display name of an embedded file setting. File
// names are session-only and never persisted or notified.
func (s *Store) SetFileName(key, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fileNames[key] = name
}

// persist writes the changed entries, or removes the record when there are
// none. Callers hold writeMu.
func (s *Store) persist(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}

	changed := s.ChangedEntries()
	if len(changed) == 0 {
		if err := s.storage.RemoveItem(ctx, StorageKey); err != nil {
			return fmt.Errorf("clearing persisted state: %w", err)
		}
		return nil
	}

	doc, err := encodeRecord(changed)
	if err != nil {
		return fmt.Errorf("encoding persisted state: %w", err)
	}
	if err := s.storage.SetItem(ctx, StorageKey, doc); err != nil {
		return fmt.Errorf("saving persisted state: %w", err)
	}
	return nil
}

