package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps records in process memory. Scripted scenarios and tests
// use it in place of a file.
type MemoryStore struct {
	mu      sync.Mutex
	records Records
	saves   int
}

// NewMemoryStore returns a store seeded with a copy of initial.
func NewMemoryStore(initial Records) *MemoryStore {
	if initial == nil {
		initial = Records{}
	}
	return &MemoryStore{records: initial.Clone()}
}

// Load returns a copy of the stored records.
func (s *MemoryStore) Load(ctx context.Context) (Records, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records.Clone(), nil
}

// Save replaces the stored records with a copy of records.
func (s *MemoryStore) Save(ctx context.Context, records Records) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records.Clone()
	s.saves++
	return nil
}

// Saves counts completed Save calls.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Location names the in-memory store.
func (s *MemoryStore) Location() string {
	return "memory"
}

var (
	_ Store   = (*MemoryStore)(nil)
	_ Locator = (*MemoryStore)(nil)
)
