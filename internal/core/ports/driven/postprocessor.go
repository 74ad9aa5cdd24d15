package driven

import (
	"context"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
)

// PostProcessor transforms or checks a parsed registry before it is saved.
type PostProcessor interface {
	// Name identifies the processor in config and error messages.
	Name() string

	// Process returns the registry to pass on. It must not modify reg.
	Process(ctx context.Context, reg domain.Registry) (domain.Registry, error)
}
