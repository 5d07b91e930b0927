// Package alerts implements the client-side store for transient UI
// notifications. It is fully independent of the server components: alerts are
// never persisted and exist only for the lifetime of the UI session.
package alerts

import (
	"sync"

	"github.com/google/uuid"
)

// Severity classifies an alert for display purposes.
type Severity string

const (
	SeverityDanger  Severity = "danger"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

// Alert is a single transient notification.
type Alert struct {
	ID       string   `json:"id"`
	Message  string   `json:"msg"`
	Severity Severity `json:"alertType"`
}

// Store is an ordered collection of alerts with two mutations: Set appends,
// Remove filters by id. Insertion order is display order. Duplicate ids are
// not deduplicated; Remove drops every entry with a matching id.
type Store struct {
	mu     sync.Mutex
	alerts []Alert
	subs   []func([]Alert)
}

// NewStore returns an empty alert store.
func NewStore() *Store {
	return &Store{}
}

// Set appends the alert to the end of the sequence and returns it. An alert
// without an id is assigned one.
func (s *Store) Set(a Alert) Alert {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.alerts = append(s.alerts, a)
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
	return a
}

// Remove drops every alert whose id matches.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	kept := s.alerts[:0]
	for _, a := range s.alerts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.alerts = kept
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

// Alerts returns a snapshot of the current sequence in display order.
func (s *Store) Alerts() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a callback invoked with a fresh snapshot after every
// mutation. Callbacks run on the mutating goroutine.
func (s *Store) Subscribe(fn func([]Alert)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) snapshotLocked() []Alert {
	out := make([]Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

func notify(subs []func([]Alert), snapshot []Alert) {
	for _, fn := range subs {
		fn(snapshot)
	}
}
