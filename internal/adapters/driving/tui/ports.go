// Package tui provides the interactive element browser for htmlreg.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/htmlreg/internal/core/ports/driving"
)

// Ports aggregates the driving ports the browser needs.
type Ports struct {
	// Query answers element lookups.
	Query driving.QueryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}
