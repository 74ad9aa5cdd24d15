// Package postprocessors provides registry processing stages that run
// between parsing and saving a build.
package postprocessors

import (
	"context"
	"fmt"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.PostProcessor = (*Pipeline)(nil)

// Pipeline chains multiple PostProcessors and runs them in order.
// A Pipeline is itself a PostProcessor.
type Pipeline struct {
	processors []driven.PostProcessor
}

// NewPipeline creates a new processing pipeline with the given processors.
// Processors are executed in the order provided.
func NewPipeline(processors ...driven.PostProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string {
	return "pipeline"
}

// Process runs the registry through all processors in order. Each
// processor receives the previous one's output.
func (p *Pipeline) Process(ctx context.Context, reg domain.Registry) (domain.Registry, error) {
	for _, processor := range p.processors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var err error
		reg, err = processor.Process(ctx, reg)
		if err != nil {
			return nil, fmt.Errorf("processor %s: %w", processor.Name(), err)
		}
	}

	return reg, nil
}

// Add appends a processor to the pipeline.
func (p *Pipeline) Add(processor driven.PostProcessor) {
	p.processors = append(p.processors, processor)
}

// Len returns the number of processors in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.processors)
}
