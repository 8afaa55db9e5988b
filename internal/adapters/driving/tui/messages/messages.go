// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/strindex/internal/core/domain"
)

// RecordsLoaded carries the outcome of a filter or phrase query.
type RecordsLoaded struct {
	// Input is the query line that produced the records.
	Input string

	// Summary describes how the input was understood.
	Summary string

	Records []domain.StringRecord
	Err     error
}

// RecordCreated is sent after a string was analysed and stored.
type RecordCreated struct {
	Record *domain.StringRecord
	Err    error
}

// RecordDeleted is sent after a delete attempt.
type RecordDeleted struct {
	Value string
	Err   error
}

// ErrorOccurred is sent when an operation fails outside a load.
type ErrorOccurred struct {
	Err error
}
