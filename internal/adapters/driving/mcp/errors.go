// Package mcp provides an MCP (Model Context Protocol) server adapter for strindex.
// It lets AI assistants analyse, look up and filter stored strings.
package mcp

import "errors"

// ErrMissingStringService is returned when the string service is not provided.
var ErrMissingStringService = errors.New("mcp: string service is required")
