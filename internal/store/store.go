// Package store holds the authoritative in-memory collection of data center
// records. It is the only component allowed to change that collection.
package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"dc-directory-api-server/internal/models"
)

var (
	// ErrDuplicateID is returned when a write would leave two records with the same id.
	ErrDuplicateID = errors.New("data center id already exists")
	// ErrNotFound is returned when no record carries the requested id.
	ErrNotFound = errors.New("data center not found")
)

// Op names a committed mutation.
type Op string

const (
	OpReplaceAll Op = "replace_all"
	OpInsert     Op = "insert"
	OpUpdate     Op = "update"
	OpDelete     Op = "delete"
)

// Observer is told about every committed mutation, after the write lock is
// released. size is the collection size right after the commit.
type Observer func(op Op, id string, size int)

// Store owns the canonical collection. Writers are serialised by mu; every
// write installs a fresh backing slice so slices already handed to readers
// are never modified.
type Store struct {
	mu       sync.RWMutex
	records  []models.DataCenter
	index    map[string]int
	observer Observer
}

// New creates an empty store.
func New() *Store {
	return &Store{index: make(map[string]int)}
}

// SetObserver installs fn as the mutation observer. Pass nil to remove it.
func (s *Store) SetObserver(fn Observer) {
	s.mu.Lock()
	s.observer = fn
	s.mu.Unlock()
}

// ReplaceAll swaps the whole collection. The batch is rejected as a unit when it
// repeats an id or holds an invalid record.
func (s *Store) ReplaceAll(records []models.DataCenter) error {
	next := make([]models.DataCenter, len(records))
	index := make(map[string]int, len(records))
	for i, dc := range records {
		if _, dup := index[dc.ID]; dup {
			return fmt.Errorf("replace all: %w: %q", ErrDuplicateID, dc.ID)
		}
		if err := dc.Validate(); err != nil {
			return fmt.Errorf("replace all: %w", err)
		}
		index[dc.ID] = i
		next[i] = cloneDataCenter(dc)
	}

	s.mu.Lock()
	s.records = next
	s.index = index
	obs := s.observer
	s.mu.Unlock()

	s.notify(obs, OpReplaceAll, "", len(next))
	return nil
}

// Insert appends dc to the collection.
func (s *Store) Insert(dc models.DataCenter) error {
	if err := dc.Validate(); err != nil {
		return err
	}
	dc = cloneDataCenter(dc)

	s.mu.Lock()
	if _, ok := s.index[dc.ID]; ok {
		s.mu.Unlock()
		return fmt.Errorf("insert %q: %w", dc.ID, ErrDuplicateID)
	}
	next := make([]models.DataCenter, len(s.records), len(s.records)+1)
	copy(next, s.records)
	next = append(next, dc)
	s.index[dc.ID] = len(next) - 1
	s.records = next
	size := len(next)
	obs := s.observer
	s.mu.Unlock()

	s.notify(obs, OpInsert, dc.ID, size)
	return nil
}

// UpdateByID replaces the record stored under id with dc. dc normally keeps the
// same id; a different id is accepted only while no other record holds it.
func (s *Store) UpdateByID(id string, dc models.DataCenter) error {
	return s.Modify(id, func(models.DataCenter) (models.DataCenter, error) {
		return dc, nil
	})
}

// Modify runs fn on a copy of the record stored under id and commits what fn
// returns, all under the write lock, so edits from concurrent callers never
// overwrite each other. fn must not call back into the store. An error from fn
// or from validation leaves the collection unchanged.
func (s *Store) Modify(id string, fn func(models.DataCenter) (models.DataCenter, error)) error {
	s.mu.Lock()
	pos, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("update %q: %w", id, ErrNotFound)
	}

	dc, err := fn(cloneDataCenter(s.records[pos]))
	if err == nil {
		err = dc.Validate()
	}
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if dc.ID != id {
		if _, taken := s.index[dc.ID]; taken {
			s.mu.Unlock()
			return fmt.Errorf("update %q to %q: %w", id, dc.ID, ErrDuplicateID)
		}
	}

	next := slices.Clone(s.records)
	next[pos] = cloneDataCenter(dc)
	if dc.ID != id {
		delete(s.index, id)
		s.index[dc.ID] = pos
	}
	s.records = next
	size := len(next)
	obs := s.observer
	s.mu.Unlock()

	s.notify(obs, OpUpdate, dc.ID, size)
	return nil
}

// DeleteByID removes the record stored under id and reports whether one was removed.
func (s *Store) DeleteByID(id string) bool {
	s.mu.Lock()
	pos, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return false
	}

	next := make([]models.DataCenter, 0, len(s.records)-1)
	next = append(next, s.records[:pos]...)
	next = append(next, s.records[pos+1:]...)
	s.records = next
	s.index = buildIndex(next)
	size := len(next)
	obs := s.observer
	s.mu.Unlock()

	s.notify(obs, OpDelete, id, size)
	return true
}

// Snapshot returns the collection in insertion order. The result belongs to the
// caller; later writes to the store do not show through it.
func (s *Store) Snapshot() []models.DataCenter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DataCenter, len(s.records))
	for i, dc := range s.records {
		out[i] = cloneDataCenter(dc)
	}
	return out
}

// Get returns the record stored under id.
func (s *Store) Get(id string) (models.DataCenter, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return models.DataCenter{}, false
	}
	return cloneDataCenter(s.records[pos]), true
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) notify(obs Observer, op Op, id string, size int) {
	if obs != nil {
		obs(op, id, size)
	}
}

func buildIndex(records []models.DataCenter) map[string]int {
	index := make(map[string]int, len(records))
	for i, dc := range records {
		index[dc.ID] = i
	}
	return index
}
