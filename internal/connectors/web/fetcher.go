package web

import (
	"context"
	"errors"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driven"
	"github.com/custodia-labs/htmlreg/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the builder to the documentation host.
	DefaultUserAgent = "htmlreg/1.0 (+https://github.com/custodia-labs/htmlreg)"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

// Config holds fetcher settings.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// Fetcher downloads pages with colly.
type Fetcher struct {
	userAgent string
	timeout   time.Duration
}

// NewFetcher creates a fetcher, applying defaults to unset fields.
func NewFetcher(cfg Config) *Fetcher {
	f := &Fetcher{
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
	}
	if f.userAgent == "" {
		f.userAgent = DefaultUserAgent
	}
	if f.timeout <= 0 {
		f.timeout = DefaultTimeout
	}
	return f
}

// Fetch downloads url and returns the body.
// Cancelling ctx aborts an in-flight request, and a deadline on ctx
// shortens the request timeout.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}

	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	// A fresh collector per call; colly refuses to revisit a URL otherwise.
	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.MaxDepth(1),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(timeout)

	var (
		body   []byte
		status int
	)
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
		logger.Debug("Error visiting %s: %v", url, err)
	})

	if err := c.Visit(url); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &domain.FetchError{URL: url, Err: ctxErr}
		}
		return nil, &domain.FetchError{URL: url, StatusCode: status, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}
	if body == nil {
		return nil, &domain.FetchError{URL: url, StatusCode: status, Err: errors.New("empty response")}
	}

	return body, nil
}
