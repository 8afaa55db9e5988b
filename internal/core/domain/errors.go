package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates no record is stored for the requested value.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a record for the value is already stored.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates the value to analyse is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidValueType indicates the value to analyse is present but not a string.
	ErrInvalidValueType = fmt.Errorf("%w: value must be a string", ErrInvalidInput)

	// Query Errors.

	// ErrInvalidParameter indicates a structured filter parameter is malformed.
	ErrInvalidParameter = errors.New("invalid query parameter")

	// ErrUnparsablePhrase indicates a natural-language query is not in the recognised set.
	ErrUnparsablePhrase = errors.New("unable to parse natural language query")

	// ErrConflictingFilter indicates a query produced contradictory conditions.
	ErrConflictingFilter = errors.New("query parsed but resulted in conflicting filters")

	// Infrastructure Errors.

	// ErrStorageUnavailable wraps unexpected failures from the string store.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
