package driving

import (
	"context"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

// StringService analyses, stores and queries strings.
type StringService interface {
	// Create analyses value and stores the record.
	// Returns domain.ErrAlreadyExists if value is already stored.
	Create(ctx context.Context, value string) (*domain.StringRecord, error)

	// Get retrieves the record for an exact value.
	Get(ctx context.Context, value string) (*domain.StringRecord, error)

	// List returns records matching structured filter parameters.
	List(ctx context.Context, params domain.QueryParams) (*domain.FilterResult, error)

	// Query returns records matching a recognised natural-language phrase.
	Query(ctx context.Context, phrase string) (*domain.QueryResult, error)

	// Delete removes the record for an exact value.
	Delete(ctx context.Context, value string) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
