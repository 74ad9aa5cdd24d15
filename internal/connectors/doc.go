// Package connectors provides implementations of the PageFetcher port.
// Each connector knows how to download a page from one kind of source.
package connectors
