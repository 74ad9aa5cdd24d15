package driven

import (
	"context"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
)

// IndexParser extracts element records from the reference index page.
// Missing structure yields a smaller registry, not an error.
type IndexParser interface {
	Parse(ctx context.Context, html []byte) (domain.Registry, error)
}
