package driven

import "context"

// PageFetcher downloads a single page.
type PageFetcher interface {
	// Fetch returns the response body for url. Transport failures and
	// non-success statuses are reported as *domain.FetchError.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
