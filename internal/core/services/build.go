package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driven"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driving"
	"github.com/custodia-labs/htmlreg/internal/logger"
)

// DefaultSourceURL is the MDN HTML elements reference index.
const DefaultSourceURL = "https://developer.mozilla.org/en-US/docs/Web/HTML/Reference/Elements"

// Ensure BuildService implements the interface.
var _ driving.BuildService = (*BuildService)(nil)

// BuildService fetches the reference page, parses it and writes the result.
type BuildService struct {
	fetcher   driven.PageFetcher
	parser    driven.IndexParser
	writers   []driven.RegistryWriter
	processor driven.PostProcessor
	sourceURL string
	now       func() time.Time
}

// NewBuildService creates a build service. Writers run in order; the first
// one is the primary artifact (normally the JSON file).
func NewBuildService(
	fetcher driven.PageFetcher,
	parser driven.IndexParser,
	sourceURL string,
	writers ...driven.RegistryWriter,
) *BuildService {
	if sourceURL == "" {
		sourceURL = DefaultSourceURL
	}
	return &BuildService{
		fetcher:   fetcher,
		parser:    parser,
		writers:   writers,
		sourceURL: sourceURL,
		now:       time.Now,
	}
}

// WithPostProcessor sets a stage that runs between parsing and saving.
func (s *BuildService) WithPostProcessor(p driven.PostProcessor) *BuildService {
	s.processor = p
	return s
}

// Build runs one fetch, parse and save cycle.
func (s *BuildService) Build(ctx context.Context, opts driving.BuildOptions) (*domain.BuildReport, error) {
	if s.fetcher == nil || s.parser == nil {
		return nil, domain.ErrNotImplemented
	}
	if len(s.writers) == 0 {
		return nil, domain.ErrNoWriters
	}

	sourceURL := s.sourceURL
	if opts.SourceURL != "" {
		sourceURL = opts.SourceURL
	}

	logger.Section("Build")
	logger.Info("Fetching %s", sourceURL)

	// 1. Fetch. Any failure here aborts before a writer is touched.
	page, err := s.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		var fe *domain.FetchError
		if !errors.As(err, &fe) {
			err = &domain.FetchError{URL: sourceURL, Err: err}
		}
		return nil, err
	}
	logger.Debug("Fetched %d bytes", len(page))

	// 2. Parse
	reg, err := s.parser.Parse(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}
	if s.processor != nil {
		if reg, err = s.processor.Process(ctx, reg); err != nil {
			return nil, fmt.Errorf("post-process registry: %w", err)
		}
	}
	if len(reg) == 0 {
		logger.Warn("No elements found in %s; the page layout may have changed", sourceURL)
	}

	build := domain.Build{
		ID:           uuid.New().String(),
		SourceURL:    sourceURL,
		BuiltAt:      s.now().UTC(),
		ElementCount: len(reg),
	}

	// 3. Persist
	report := &domain.BuildReport{
		Build:        build,
		TypeCounts:   countTypes(reg),
		FetchedBytes: len(page),
	}
	for _, w := range s.writers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := w.SaveRegistry(ctx, build, reg); err != nil {
			return nil, fmt.Errorf("save registry to %s: %w", w.Location(), err)
		}
		logger.Info("Wrote %d elements to %s", len(reg), w.Location())
		report.Outputs = append(report.Outputs, w.Location())
	}

	return report, nil
}

func countTypes(reg domain.Registry) map[domain.ElementType]int {
	counts := make(map[domain.ElementType]int)
	for _, el := range reg {
		counts[el.Type]++
	}
	return counts
}
