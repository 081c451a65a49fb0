// Package memstore provides the mutex-guarded, insertion-ordered collection
// backing the item catalog and the cart store.
package memstore

import (
	"sync"

	pkgerrors "github.com/angelmondragon/shop-api/pkg/errors"
)

// Store holds records of type T keyed by a monotonically assigned int id.
// Ids start at 1 and are never reused; records are never removed.
type Store[T any] struct {
	collection string

	mu      sync.RWMutex
	seq     int
	records map[int]*T
	order   []int
}

// New returns an empty store. collection names the records in not-found
// errors ("item", "cart").
func New[T any](collection string) *Store[T] {
	return &Store[T]{
		collection: collection,
		records:    make(map[int]*T),
	}
}

// Insert assigns the next id and stores the record produced by build.
func (s *Store[T]) Insert(build func(id int) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := s.seq
	record := build(id)
	s.records[id] = &record
	s.order = append(s.order, id)
	return record
}

// Find returns a copy of the record stored under id.
func (s *Store[T]) Find(id int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		var zero T
		return zero, pkgerrors.NotFound(s.collection, id)
	}
	return *record, nil
}

// Mutate runs fn against the stored record under the write lock and returns
// a copy of the result. If fn fails the error is returned unchanged; fn is
// responsible for leaving the record untouched in that case.
func (s *Store[T]) Mutate(id int, fn func(*T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		var zero T
		return zero, pkgerrors.NotFound(s.collection, id)
	}
	if err := fn(record); err != nil {
		return *record, err
	}
	return *record, nil
}

// Snapshot copies every record in insertion order.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.records[id])
	}
	return out
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
