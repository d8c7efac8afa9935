package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/bough/pkg/domain"
)

// Store implements ports.TraceStore using an in-memory map.
// Intended for tests and single-process usage.
type Store struct {
	mu      sync.RWMutex
	records map[string]domain.TraceRecord
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		records: make(map[string]domain.TraceRecord),
	}
}

// Save persists the record, overwriting any previous one with the same ID.
func (s *Store) Save(ctx context.Context, record *domain.TraceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = *record
	return nil
}

// Load retrieves a record by ID.
func (s *Store) Load(ctx context.Context, id string) (*domain.TraceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrTraceNotFound
	}
	return &record, nil
}

// Delete removes a record by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// List returns all stored trace IDs in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids) // Deterministic order
	return ids, nil
}
