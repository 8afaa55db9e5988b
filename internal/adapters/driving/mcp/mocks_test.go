package mcp

import (
	"context"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

// mockStringService is a mock implementation of driving.StringService.
type mockStringService struct {
	record      *domain.StringRecord
	filter      *domain.FilterResult
	query       *domain.QueryResult
	count       int
	err         error
	lastValue   string
	lastParams  domain.QueryParams
	lastPhrase  string
	deleteCalls int
}

func (m *mockStringService) Create(_ context.Context, value string) (*domain.StringRecord, error) {
	m.lastValue = value
	return m.record, m.err
}

func (m *mockStringService) Get(_ context.Context, value string) (*domain.StringRecord, error) {
	m.lastValue = value
	return m.record, m.err
}

func (m *mockStringService) List(_ context.Context, params domain.QueryParams) (*domain.FilterResult, error) {
	m.lastParams = params
	return m.filter, m.err
}

func (m *mockStringService) Query(_ context.Context, phrase string) (*domain.QueryResult, error) {
	m.lastPhrase = phrase
	return m.query, m.err
}

func (m *mockStringService) Delete(_ context.Context, value string) error {
	m.lastValue = value
	m.deleteCalls++
	return m.err
}

func (m *mockStringService) Count(_ context.Context) (int, error) {
	return m.count, m.err
}

func testRecord(value string) *domain.StringRecord {
	return &domain.StringRecord{
		ID:    "hash-" + value,
		Value: value,
		Properties: domain.StringProperties{
			Length:           len(value),
			IsPalindrome:     true,
			UniqueCharacters: 1,
			WordCount:        1,
			SHA256Hash:       "hash-" + value,
			CharacterFrequencyMap: domain.FrequencyMap{
				{Char: 'a', Count: len(value)},
			},
		},
		CreatedAt: "2025-08-27T10:00:00Z",
	}
}
