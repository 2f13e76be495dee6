// Package store holds the in-memory placeholder item store.
//
// It stands in for a real persistence layer: a process-scoped mapping
// from item identifier to item record, seeded once at startup and gone
// on process exit. The PUT route writes into it as an upsert; the item
// lookup route checks membership in its key set. Nothing survives a
// restart and nothing is supposed to.
package store

import (
	"sync"

	"github.com/spf13/cast"
)

// Record is a JSON-safe item record. Seed records carry item_id and
// item_name; upserted records carry whatever the encoded item body had.
type Record map[string]any

// Store is the placeholder item store.
//
// Identifiers are normalized to strings so the integer-keyed lookup
// route and the string-keyed update route share one key space. A single
// route writes, but the map is still shared across request goroutines,
// so reads and writes take the lock.
type Store struct {
	mu      sync.RWMutex
	records map[string]Record
}

// New returns a store seeded with the three fixed placeholder rows.
func New() *Store {
	return &Store{
		records: map[string]Record{
			"0": {"item_id": 0, "item_name": "Fish"},
			"1": {"item_id": 1, "item_name": "Bear"},
			"2": {"item_id": 2, "item_name": "Bunny"},
		},
	}
}

// Key normalizes any identifier value (int path param, string path
// param) into the store's string key space.
func Key(id any) string {
	return cast.ToString(id)
}

// Has reports whether id is present in the store's key set.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.records[id]
	return ok
}

// Get returns the record stored under id.
func (s *Store) Get(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	return rec, ok
}

// Upsert writes rec under id, inserting or overwriting.
func (s *Store) Upsert(id string, rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[id] = rec
}

// Len returns the number of records currently stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
