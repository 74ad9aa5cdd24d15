// Package mdn parses the MDN "HTML elements reference" index page into a
// domain.Registry.
//
// The page is a sequence of section blocks, each with an h2 heading and a
// table listing the elements in that section. Headings are mapped to an
// element type through domain.ResolveSection; sections that do not map
// are ignored. Anything structurally unexpected (no table, short rows,
// rows without an element link) is skipped rather than reported, so a
// layout change shows up as a smaller registry.
package mdn
