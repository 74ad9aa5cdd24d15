package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown element type name.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidRegistry indicates a serialised registry violates the schema.
	ErrInvalidRegistry = errors.New("invalid registry")

	// ErrFetchFailed indicates the reference page could not be downloaded.
	// A build that hits this error writes nothing.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrNoWriters indicates a build was started with nowhere to write.
	ErrNoWriters = errors.New("no registry writers configured")
)

// FetchError carries the details of a failed page download.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

// Unwrap allows errors.Is to match ErrFetchFailed and the underlying cause.
func (e *FetchError) Unwrap() []error {
	return []error{ErrFetchFailed, e.Err}
}
