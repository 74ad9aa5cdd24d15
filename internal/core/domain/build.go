package domain

import "time"

// Build records one run of the registry builder.
type Build struct {
	// ID is the unique build identifier.
	ID string

	// SourceURL is the page the registry was scraped from.
	SourceURL string

	// BuiltAt is when the build finished parsing.
	BuiltAt time.Time

	// ElementCount is the number of records produced.
	ElementCount int
}

// BuildReport summarises a completed build for the caller.
type BuildReport struct {
	Build

	// Outputs lists where the registry was written.
	Outputs []string

	// TypeCounts is the number of elements per type.
	TypeCounts map[ElementType]int

	// FetchedBytes is the size of the downloaded page.
	FetchedBytes int
}
