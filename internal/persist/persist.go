// Package persist provides durable key/value storage for session state.
//
// Storage mirrors a browser origin's local storage: a flat namespace of
// string keys holding string documents. The directory backend keeps one file
// per key so each record stays a single, inspectable JSON document.
package persist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrInvalidKey indicates a key that cannot be used as a storage name.
var ErrInvalidKey = errors.New("invalid storage key")

// Storage is a flat string key/value store.
type Storage interface {
	// GetItem returns the value for key. ok is false when the key is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// DirStorage stores each key as <dir>/<key>.json.
type DirStorage struct {
	mu  sync.Mutex
	dir string
}

// NewDirStorage creates a directory-backed storage. The directory is
// created lazily on first write.
func NewDirStorage(dir string) *DirStorage {
	return &DirStorage{dir: dir}
}

// Dir returns the backing directory.
func (s *DirStorage) Dir() string {
	return s.dir
}

// GetItem implements Storage.
func (s *DirStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return string(data), true, nil
}

// SetItem implements Storage. The write is atomic: a temporary file is
// renamed over the previous record.
func (s *DirStorage) SetItem(_ context.Context, key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// RemoveItem implements Storage.
func (s *DirStorage) RemoveItem(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}

func (s *DirStorage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// MemoryStorage is an in-memory Storage intended for tests and for
// sessions that should not touch disk.
type MemoryStorage struct {
	mu     sync.RWMutex
	items  map[string]string
	writes int
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

// GetItem implements Storage.
func (s *MemoryStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

// SetItem implements Storage.
func (s *MemoryStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	s.writes++
	return nil
}

// RemoveItem implements Storage.
func (s *MemoryStorage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	s.writes++
	return nil
}

// Writes returns the number of SetItem and RemoveItem calls so far.
func (s *MemoryStorage) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
