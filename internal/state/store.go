package state

import (
	"encoding/json"
	"sync"
)

// Store owns the in-memory state document. All mutation goes through Write,
// which runs under the write lock, bumps the revision and fires the change
// hook. Repositories in repository/memstore are the only writers.
type Store struct {
	mu       sync.RWMutex
	doc      Document
	revision uint64
	onChange func(revision uint64)
}

func NewStore() *Store {
	return &Store{}
}

// OnChange registers the hook invoked after every successful Write. The hook
// runs outside the lock; it must be safe for concurrent use.
func (s *Store) OnChange(fn func(revision uint64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Hydrate replaces the whole document, e.g. from a loaded snapshot. It does
// not count as a change: hydration must not trigger a save of the data that
// was just loaded.
func (s *Store) Hydrate(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}

// Read runs fn with read access to the document.
func (s *Store) Read(fn func(doc *Document)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.doc)
}

// Write runs fn with exclusive access to the document and records a change.
func (s *Store) Write(fn func(doc *Document)) {
	s.mu.Lock()
	fn(&s.doc)
	s.revision++
	rev := s.revision
	hook := s.onChange
	s.mu.Unlock()

	if hook != nil {
		hook(rev)
	}
}

// Revision returns the current mutation counter.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// MarshalSnapshot serializes the document under the read lock and returns it
// together with the revision it represents.
func (s *Store) MarshalSnapshot() ([]byte, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := json.Marshal(s.doc)
	return data, s.revision, err
}
