package driven

import (
	"context"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
)

// RegistryWriter persists a built registry.
type RegistryWriter interface {
	// SaveRegistry stores reg as the output of build. Implementations must
	// leave any previously stored registry intact when they fail.
	SaveRegistry(ctx context.Context, build domain.Build, reg domain.Registry) error

	// Location describes where the registry is written, for reporting.
	Location() string
}

// RegistryReader loads a registry for querying.
type RegistryReader interface {
	// LoadRegistry returns a validated registry.
	// Returns domain.ErrNotFound if nothing has been stored yet.
	LoadRegistry(ctx context.Context) (domain.Registry, error)
}
