// Package notify provides change notification for the settings session.
//
// Observers are delivered synchronously, in subscription order, after the
// mutation that triggered them has fully settled. Every subscription returns
// a handle whose Unsubscribe removes it, so UI layers that re-render can drop
// stale observers instead of accumulating them.
package notify

import (
	"sync"
)

// ChangeType represents the type of change.
type ChangeType int

const (
	// ChangeSet indicates a single setting was updated.
	ChangeSet ChangeType = iota

	// ChangeReset indicates every setting returned to its default.
	ChangeReset

	// ChangeReplace indicates the whole state was replaced in one step
	// (share link applied, config imported).
	ChangeReplace

	// ChangeMappings indicates the key mapping list changed.
	ChangeMappings
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeReset:
		return "reset"
	case ChangeReplace:
		return "replace"
	case ChangeMappings:
		return "mappings"
	default:
		return "unknown"
	}
}

// Change describes one effective mutation.
type Change struct {
	// Key is the changed setting. Empty for whole-state changes.
	Key string

	// Type is the type of change.
	Type ChangeType

	// OldValue and NewValue are set for ChangeSet.
	OldValue string
	NewValue string

	// Source identifies where the change came from (e.g., "cli", "url", "import").
	Source string
}

// Observer is called when a change occurs.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

type entry struct {
	id       uint64
	key      string // empty for global observers
	observer Observer
}

// Notifier manages change subscriptions.
type Notifier struct {
	mu      sync.RWMutex
	entries []entry
	nextID  uint64
	closed  bool
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	return n.add("", observer)
}

// SubscribeKey registers an observer for changes to one setting key.
// Whole-state changes (reset, replace) are delivered to key observers too.
func (n *Notifier) SubscribeKey(key string, observer Observer) *Subscription {
	return n.add(key, observer)
}

func (n *Notifier) add(key string, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.entries = append(n.entries, entry{id: id, key: key, observer: observer})

	return &Subscription{id: id, notifier: n}
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.entries)
}

// Notify delivers change to every matching observer in subscription order.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		return
	}

	observers := make([]Observer, 0, len(n.entries))
	for _, e := range n.entries {
		if matches(e.key, change) {
			observers = append(observers, e.observer)
		}
	}
	n.mu.RUnlock()

	// Call observers outside the lock so they may subscribe or unsubscribe.
	for _, obs := range observers {
		obs(change)
	}
}

// NotifySet is a convenience method for single-setting changes.
func (n *Notifier) NotifySet(key, oldValue, newValue, source string) {
	n.Notify(Change{
		Key:      key,
		Type:     ChangeSet,
		OldValue: oldValue,
		NewValue: newValue,
		Source:   source,
	})
}

// Close drops all subscriptions and stops delivery. Safe to call multiple times.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.entries = nil
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, e := range n.entries {
		if e.id == id {
			n.entries = append(n.entries[:i:i], n.entries[i+1:]...)
			return
		}
	}
}

func matches(key string, change Change) bool {
	if key == "" {
		return true
	}
	switch change.Type {
	case ChangeSet:
		return change.Key == key
	case ChangeMappings:
		return false
	default:
		return true
	}
}
