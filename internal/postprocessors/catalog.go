package postprocessors

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driven"
)

// BuilderFunc creates a PostProcessor from generic config.
// Config is a map of processor-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.PostProcessor, error)

// Catalog maps processor names to their builders.
// It allows dynamic construction of processors from configuration.
type Catalog struct {
	builders map[string]BuilderFunc
}

// NewCatalog creates an empty processor catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a processor builder to the catalog.
// Name should be unique and match the processor's Name() return value.
func (c *Catalog) Register(name string, builder BuilderFunc) {
	c.builders[name] = builder
}

// Build creates a processor by name with the given config.
func (c *Catalog) Build(name string, cfg map[string]any) (driven.PostProcessor, error) {
	builder, ok := c.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown processor %q", domain.ErrInvalidInput, name)
	}
	return builder(cfg)
}

// BuildPipeline creates a pipeline from processor names, in order.
func (c *Catalog) BuildPipeline(names []string) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range names {
		proc, err := c.Build(name, nil)
		if err != nil {
			return nil, err
		}
		p.Add(proc)
	}
	return p, nil
}

// Has returns true if a processor with the given name is registered.
func (c *Catalog) Has(name string) bool {
	_, ok := c.builders[name]
	return ok
}

// Names returns all registered processor names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.builders))
	for name := range c.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
