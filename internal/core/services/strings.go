package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/strindex/internal/core/domain"
	"github.com/custodia-labs/strindex/internal/core/ports/driven"
	"github.com/custodia-labs/strindex/internal/core/ports/driving"
	"github.com/custodia-labs/strindex/internal/logger"
)

// Ensure StringService implements the interface.
var _ driving.StringService = (*StringService)(nil)

// StringService analyses strings and stores them through a StringStore.
type StringService struct {
	store    driven.StringStore
	analyzer *Analyzer
}

// NewStringService creates a new string service.
// If analyzer is nil a default analyzer is used.
func NewStringService(store driven.StringStore, analyzer *Analyzer) *StringService {
	if analyzer == nil {
		analyzer = NewAnalyzer()
	}
	return &StringService{
		store:    store,
		analyzer: analyzer,
	}
}

// Create analyses value and stores the record.
func (s *StringService) Create(ctx context.Context, value string) (*domain.StringRecord, error) {
	if s.store == nil {
		return nil, domain.ErrStorageUnavailable
	}
	if value == "" {
		return nil, fmt.Errorf("%w: missing value", domain.ErrInvalidInput)
	}

	record := s.analyzer.Analyze(value)
	logger.Debug("analysed %s: length=%d palindrome=%t words=%d",
		record.ID[:12], record.Properties.Length, record.Properties.IsPalindrome, record.Properties.WordCount)

	if err := s.store.Insert(ctx, &record); err != nil {
		return nil, storeError("saving string", err)
	}
	return &record, nil
}

// Get retrieves the record for an exact value.
func (s *StringService) Get(ctx context.Context, value string) (*domain.StringRecord, error) {
	if s.store == nil {
		return nil, domain.ErrStorageUnavailable
	}
	record, err := s.store.GetByValue(ctx, value)
	if err != nil {
		return nil, storeError("getting string", err)
	}
	return record, nil
}

// List returns records matching structured filter parameters.
func (s *StringService) List(ctx context.Context, params domain.QueryParams) (*domain.FilterResult, error) {
	pred, err := BuildFilter(params)
	if err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, domain.ErrStorageUnavailable
	}

	logger.Debug("filter: %s", pred)
	records, err := s.find(ctx, pred)
	if err != nil {
		return nil, err
	}

	return &domain.FilterResult{
		Data:           records,
		Count:          len(records),
		FiltersApplied: params.Applied(),
	}, nil
}

// Query returns records matching a recognised natural-language phrase.
func (s *StringService) Query(ctx context.Context, phrase string) (*domain.QueryResult, error) {
	pred, interpreted, err := InterpretPhrase(phrase)
	if err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, domain.ErrStorageUnavailable
	}

	logger.Debug("phrase %q: %s", phrase, pred)
	records, err := s.find(ctx, pred)
	if err != nil {
		return nil, err
	}

	return &domain.QueryResult{
		Data:             records,
		Count:            len(records),
		InterpretedQuery: *interpreted,
	}, nil
}

// Delete removes the record for an exact value.
func (s *StringService) Delete(ctx context.Context, value string) error {
	if s.store == nil {
		return domain.ErrStorageUnavailable
	}
	if err := s.store.DeleteByValue(ctx, value); err != nil {
		return storeError("deleting string", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *StringService) Count(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, domain.ErrStorageUnavailable
	}
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, storeError("counting strings", err)
	}
	return n, nil
}

func (s *StringService) find(ctx context.Context, pred domain.Predicate) ([]domain.StringRecord, error) {
	records, err := s.store.Find(ctx, pred)
	if err != nil {
		return nil, storeError("finding strings", err)
	}
	if records == nil {
		records = []domain.StringRecord{}
	}
	return records, nil
}

// storeError passes domain errors through and marks everything else as a
// storage failure, keeping the cause in the chain.
func storeError(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadyExists) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, op, err)
}
