// Package normalisers turns fetched reference pages into registry data.
// Each subpackage understands the layout of one documentation source.
package normalisers
