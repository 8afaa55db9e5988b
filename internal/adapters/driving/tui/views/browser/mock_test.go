package browser

import (
	"context"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

// mockStringService implements driving.StringService for testing.
type mockStringService struct {
	records []domain.StringRecord

	createErr error
	listErr   error
	queryErr  error
	deleteErr error

	lastParams domain.QueryParams
	lastPhrase string
	created    []string
	deleted    []string
}

func (m *mockStringService) Create(_ context.Context, value string) (*domain.StringRecord, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, value)
	rec := testRecord(value)
	m.records = append(m.records, rec)
	return &rec, nil
}

func (m *mockStringService) Get(_ context.Context, value string) (*domain.StringRecord, error) {
	for i := range m.records {
		if m.records[i].Value == value {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockStringService) List(_ context.Context, params domain.QueryParams) (*domain.FilterResult, error) {
	m.lastParams = params
	if m.listErr != nil {
		return nil, m.listErr
	}
	return &domain.FilterResult{
		Data:           m.records,
		Count:          len(m.records),
		FiltersApplied: params.Applied(),
	}, nil
}

func (m *mockStringService) Query(_ context.Context, phrase string) (*domain.QueryResult, error) {
	m.lastPhrase = phrase
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	echo := domain.FilterEcho{{Field: "is_palindrome", Value: true}}
	return &domain.QueryResult{
		Data:             m.records,
		Count:            len(m.records),
		InterpretedQuery: domain.InterpretedQuery{Original: phrase, ParsedFilters: echo},
	}, nil
}

func (m *mockStringService) Delete(_ context.Context, value string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, value)
	return nil
}

func (m *mockStringService) Count(_ context.Context) (int, error) {
	return len(m.records), nil
}

func testRecord(value string) domain.StringRecord {
	return domain.StringRecord{
		ID:    "id-" + value,
		Value: value,
		Properties: domain.StringProperties{
			Length:                len([]rune(value)),
			WordCount:             1,
			SHA256Hash:            "id-" + value,
			CharacterFrequencyMap: domain.FrequencyMap{{Char: 'a', Count: 1}},
		},
		CreatedAt: "2025-08-27T10:30:45Z",
	}
}

func testRecords(values ...string) []domain.StringRecord {
	out := make([]domain.StringRecord, len(values))
	for i, v := range values {
		out[i] = testRecord(v)
	}
	return out
}
