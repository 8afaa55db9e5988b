// Package api provides the HTTP/JSON adapter for strindex.
// It exposes the string service under /strings with CORS, request IDs,
// access logging and rate limiting.
package api

import "errors"

// ErrMissingStringService is returned when the string service is not provided.
var ErrMissingStringService = errors.New("api: string service is required")
