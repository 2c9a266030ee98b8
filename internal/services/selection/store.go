// Package selection holds the in-memory multi-select state shared
// between gallery browsing and the workflow surfaces. Stores are
// scoped per provider so one surface's selection never bleeds into
// another's.
package selection

import (
	"sync"
)

// Store is a thread-safe ordered collection of selected media item
// IDs. Order follows the sequence of selection and duplicates are
// kept as given.
type Store struct {
	mu  sync.RWMutex
	ids []uint
}

// NewStore creates an empty selection store
func NewStore() *Store {
	return &Store{ids: []uint{}}
}

// Get returns a copy of the selected IDs in selection order
func (s *Store) Get() []uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]uint, len(s.ids))
	copy(out, s.ids)
	return out
}

// Replace swaps the entire selection for the given IDs
func (s *Store) Replace(ids []uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make([]uint, len(ids))
	copy(s.ids, ids)
}

// Add appends an ID to the selection
func (s *Store) Add(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, id)
}

// Remove deletes the first occurrence of an ID from the selection
func (s *Store) Remove(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

// Clear empties the selection
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = []uint{}
}

// Len returns the number of selected IDs
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
