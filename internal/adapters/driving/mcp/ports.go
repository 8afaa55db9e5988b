package mcp

import (
	"github.com/custodia-labs/strindex/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Strings analyses, stores and queries strings.
	Strings driving.StringService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Strings == nil {
		return ErrMissingStringService
	}
	return nil
}
