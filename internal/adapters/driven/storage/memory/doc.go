// Package memory provides an in-memory registry store for tests and for
// library callers that build a registry without touching disk.
package memory
