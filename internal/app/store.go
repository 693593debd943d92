package app

import (
	"context"
	"sync"
	"time"

	coredashboard "github.com/example/printadmin/internal/core/dashboard"
)

// Identifiable is any entity with a server-assigned id.
type Identifiable interface {
	GetID() string
}

// FetchFunc loads a full collection from the backend.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Store caches the last-fetched collection of one resource. Views read from
// it; orchestrators mutate it after each successful backend call.
type Store[T Identifiable] struct {
	mu        sync.RWMutex
	fetch     FetchFunc[T]
	items     []T
	loading   bool
	err       error
	fetchedAt time.Time
	now       func() time.Time
}

// NewStore creates an empty store backed by fetch.
func NewStore[T Identifiable](fetch FetchFunc[T]) *Store[T] {
	return &Store[T]{fetch: fetch, items: []T{}, now: time.Now}
}

// FetchAll replaces the collection with a fresh copy from the backend.
// On failure the previous collection is kept, Err reports the failure and
// the error is returned. Loading is cleared either way.
func (s *Store[T]) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	items, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		return err
	}
	s.items = append(make([]T, 0, len(items)), items...)
	s.fetchedAt = s.now()
	return nil
}

// Add appends item.
func (s *Store[T]) Add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Edit applies fn to the element with the given id. Unknown ids are a no-op;
// the return value reports whether an element changed.
func (s *Store[T]) Edit(id string, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].GetID() == id {
			fn(&s.items[i])
			return true
		}
	}
	return false
}

// Remove drops the element with the given id. Unknown ids are a no-op.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].GetID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the collection.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]T, 0, len(s.items)), s.items...)
}

// Len returns the number of cached elements.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Find returns the element with the given id.
func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Loading reports whether a FetchAll is in progress.
func (s *Store[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the failure of the last FetchAll, if any.
func (s *Store[T]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// FetchedAt returns when the collection was last replaced, zero if never.
func (s *Store[T]) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// Stale reports whether the collection was never fetched or is older than maxAge.
// Local mutations do not refresh the timestamp.
func (s *Store[T]) Stale(now time.Time, maxAge time.Duration) bool {
	return coredashboard.IsStale(s.FetchedAt(), now, maxAge)
}
