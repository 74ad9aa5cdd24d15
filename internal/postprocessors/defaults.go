package postprocessors

import (
	"context"
	"strings"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driven"
)

// Built-in processor names.
const (
	NameValidate   = "validate"
	NameWhitespace = "whitespace"
)

// DefaultNames is the pipeline used when config does not name one.
var DefaultNames = []string{NameValidate}

// RegisterDefaults registers all built-in processors with the catalog.
func RegisterDefaults(c *Catalog) {
	c.Register(NameValidate, func(map[string]any) (driven.PostProcessor, error) {
		return Validate{}, nil
	})
	c.Register(NameWhitespace, func(map[string]any) (driven.PostProcessor, error) {
		return Whitespace{}, nil
	})
}

// Validate rejects a registry the loader would refuse, so a build never
// writes an artifact that cannot be read back.
type Validate struct{}

// Name implements driven.PostProcessor.
func (Validate) Name() string { return NameValidate }

// Process implements driven.PostProcessor.
func (Validate) Process(_ context.Context, reg domain.Registry) (domain.Registry, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// Whitespace collapses runs of whitespace in descriptions and categories
// to a single space. Reference page cells often wrap across source lines.
type Whitespace struct{}

// Name implements driven.PostProcessor.
func (Whitespace) Name() string { return NameWhitespace }

// Process implements driven.PostProcessor.
func (Whitespace) Process(_ context.Context, reg domain.Registry) (domain.Registry, error) {
	out := make(domain.Registry, len(reg))
	for tag, el := range reg {
		el.Description = collapse(el.Description)
		el.Category = collapse(el.Category)
		out[tag] = el
	}
	return out, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
