package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/strindex/internal/core/domain"
	"github.com/custodia-labs/strindex/internal/core/ports/driven"
)

// Ensure StringStore implements the interface.
var _ driven.StringStore = (*StringStore)(nil)

// StringStore is an in-memory implementation of driven.StringStore.
// Records are kept in insertion order.
type StringStore struct {
	mu      sync.RWMutex
	records []domain.StringRecord
	byValue map[string]int
}

// NewStringStore creates a new in-memory string store.
func NewStringStore() *StringStore {
	return &StringStore{
		byValue: make(map[string]int),
	}
}

// Insert stores the record if its value is not present.
// The ID is a hash of the value, so this also keeps IDs unique.
func (s *StringStore) Insert(_ context.Context, record *domain.StringRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byValue[record.Value]; ok {
		return domain.ErrAlreadyExists
	}
	s.byValue[record.Value] = len(s.records)
	s.records = append(s.records, cloneRecord(record))
	return nil
}

// GetByValue retrieves the record for an exact value.
func (s *StringStore) GetByValue(_ context.Context, value string) (*domain.StringRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byValue[value]
	if !ok {
		return nil, domain.ErrNotFound
	}
	record := cloneRecord(&s.records[i])
	return &record, nil
}

// Find returns matching records in insertion order.
func (s *StringStore) Find(_ context.Context, pred domain.Predicate) ([]domain.StringRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.StringRecord
	for i := range s.records {
		if pred.Matches(&s.records[i]) {
			result = append(result, cloneRecord(&s.records[i]))
		}
	}
	return result, nil
}

// DeleteByValue removes the record for an exact value.
func (s *StringStore) DeleteByValue(_ context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byValue[value]
	if !ok {
		return domain.ErrNotFound
	}

	s.records = append(s.records[:i], s.records[i+1:]...)
	delete(s.byValue, value)
	for j := i; j < len(s.records); j++ {
		s.byValue[s.records[j].Value] = j
	}
	return nil
}

// Count returns the number of stored records.
func (s *StringStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// cloneRecord copies r so callers never share its frequency map.
func cloneRecord(r *domain.StringRecord) domain.StringRecord {
	c := *r
	c.Properties.CharacterFrequencyMap = slices.Clone(r.Properties.CharacterFrequencyMap)
	return c
}
