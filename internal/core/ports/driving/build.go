package driving

import (
	"context"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
)

// BuildOptions tunes a single build run.
type BuildOptions struct {
	// SourceURL overrides the configured reference page URL.
	SourceURL string
}

// BuildService produces a registry from the reference page.
type BuildService interface {
	// Build fetches, parses and persists the registry. A fetch failure
	// aborts the build before anything is written.
	Build(ctx context.Context, opts BuildOptions) (*domain.BuildReport, error)
}
