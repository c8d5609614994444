package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"shelfd/core/snapshot"
	"shelfd/feature/catalog/models"
)

// Store is the in-memory ordered collection of catalog records and the
// single shared mutable resource of the system. Every mutation is one
// atomic step under the mutex; no partial mutation is observable even while
// a surrounding network call is in flight.
type Store struct {
	mu    sync.Mutex
	books []models.Book

	snap snapshot.Store
	slot string
}

// NewStore creates an empty store. The snapshot store may be nil, in which
// case Snapshot and Restore are no-ops (used by tests and dry runs).
func NewStore(snap snapshot.Store, slot string) *Store {
	return &Store{snap: snap, slot: slot}
}

// All returns the records in insertion order, most recent first for
// created records. The returned slice is a copy.
func (s *Store) All() []models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Len returns the current number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.books)
}

// Find returns the record with the given identity.
func (s *Store) Find(id int) (models.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return models.Book{}, false
}

// InsertFront inserts a record at the front of the collection.
func (s *Store) InsertFront(b models.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = append([]models.Book{b}, s.books...)
}

// Remove removes the record with the given identity and returns it.
func (s *Store) Remove(id int) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.books {
		if b.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return b, nil
		}
	}
	return models.Book{}, ErrNotFound
}

// ReplaceFields applies a partial field replacement in place, keeping the
// identity, and returns a full copy of the record's prior state so the
// caller can restore it later.
func (s *Store) ReplaceFields(id int, p models.Patch) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.books {
		if b.ID == id {
			s.books[i] = p.Apply(b)
			return b, nil
		}
	}
	return models.Book{}, ErrNotFound
}

// Replace substitutes the record with the given identity by a new record,
// keeping its position. The replacement may carry a different identity;
// this is how a placeholder is swapped for the server-assigned record at
// commit time. Returns false when the identity is no longer present.
func (s *Store) Replace(id int, b models.Book) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.books {
		if cur.ID == id {
			s.books[i] = b
			return true
		}
	}
	return false
}

// Hydrate replaces the entire contents. Used at startup.
func (s *Store) Hydrate(books []models.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = make([]models.Book, len(books))
	copy(s.books, books)
}

// Snapshot persists the full current contents to the snapshot slot.
func (s *Store) Snapshot(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}
	payload, err := json.Marshal(s.All())
	if err != nil {
		return fmt.Errorf("failed to serialize catalog: %w", err)
	}
	return s.snap.Save(ctx, s.slot, payload)
}

// Restore hydrates the store from the snapshot slot. A missing snapshot
// leaves the store empty and is not an error.
func (s *Store) Restore(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}
	payload, err := s.snap.Load(ctx, s.slot)
	if errors.Is(err, snapshot.ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return err
	}
	var books []models.Book
	if err := json.Unmarshal(payload, &books); err != nil {
		return fmt.Errorf("failed to decode catalog snapshot: %w", err)
	}
	s.Hydrate(books)
	return nil
}
