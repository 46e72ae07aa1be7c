package session

import (
	"sync"

	"github.com/dshills/kittyconf/internal/share"
)

// Location is the address a session was opened from. Its fragment may carry
// a share token.
type Location interface {
	// URL returns the full address including any fragment.
	URL() string

	// Replace swaps the address without reloading anything.
	Replace(url string)
}

// MemoryLocation is a Location held in memory.
type MemoryLocation struct {
	mu  sync.RWMutex
	url string
}

// NewLocation creates a location for url.
func NewLocation(url string) *MemoryLocation {
	return &MemoryLocation{url: url}
}

// URL implements Location.
func (l *MemoryLocation) URL() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.url
}

// Replace implements Location.
func (l *MemoryLocation) Replace(url string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.url = url
}

func stripFragment(loc Location) {
	if u := loc.URL(); hasFragment(u) {
		loc.Replace(share.StripFragment(u))
	}
}

func hasFragment(u string) bool {
	return share.StripFragment(u) != u
}
