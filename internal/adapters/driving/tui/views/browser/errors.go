package browser

import "errors"

// Error definitions for the browser view.
var (
	// ErrNoStringService indicates that no string service was provided.
	ErrNoStringService = errors.New("string service is required")
)
