package api

import (
	"github.com/custodia-labs/strindex/internal/core/ports/driving"
)

// Ports aggregates the driving ports served over HTTP.
type Ports struct {
	// Strings analyses, stores and queries strings.
	Strings driving.StringService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Strings == nil {
		return ErrMissingStringService
	}
	return nil
}
