// Package domain defines the core entities for htmlreg.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines:
//
//   - Element: metadata for one HTML tag
//   - Registry: the tag to Element mapping built from the reference page
//   - ElementType: the closed set of semantic classifications
//   - Build: one run of the registry builder
//
// The section to type table and the void tag set also live here, since both
// are fixed facts about HTML rather than scraped content.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
