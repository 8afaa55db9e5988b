package driven

import (
	"context"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

// StringStore persists analysed strings keyed by content hash.
// Implementations must be safe for concurrent use.
type StringStore interface {
	// Insert stores the record only if no record with the same ID exists.
	// Returns domain.ErrAlreadyExists otherwise.
	Insert(ctx context.Context, record *domain.StringRecord) error

	// GetByValue retrieves the record for an exact value.
	// Returns domain.ErrNotFound if none is stored.
	GetByValue(ctx context.Context, value string) (*domain.StringRecord, error)

	// Find returns all records matching the predicate in insertion order.
	Find(ctx context.Context, pred domain.Predicate) ([]domain.StringRecord, error)

	// DeleteByValue removes the record for an exact value.
	// Returns domain.ErrNotFound if none is stored.
	DeleteByValue(ctx context.Context, value string) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
