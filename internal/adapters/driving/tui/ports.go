// Package tui provides an interactive terminal browser for stored strings.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/strindex/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Strings analyses, stores and queries strings.
	Strings driving.StringService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(strings driving.StringService) *Ports {
	return &Ports{Strings: strings}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Strings == nil {
		return ErrMissingStringService
	}
	return nil
}
