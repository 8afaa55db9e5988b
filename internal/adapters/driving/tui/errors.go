package tui

import "errors"

// ErrMissingStringService is returned when the string service is not provided.
var ErrMissingStringService = errors.New("tui: string service is required")
