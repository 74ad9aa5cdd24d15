package driving

import "github.com/custodia-labs/htmlreg/internal/core/domain"

// QueryService answers classification queries over a loaded registry.
// Every method is read-only, total and case-insensitive on its tag or
// category argument. Returned elements are copies.
type QueryService interface {
	// GetElement looks up a tag. ok is false for unknown tags.
	GetElement(tag string) (el domain.Element, ok bool)

	// IsElementType reports whether tag exists and has type t.
	IsElementType(tag string, t domain.ElementType) bool

	IsBlock(tag string) bool
	IsInline(tag string) bool
	IsMeta(tag string) bool
	IsTable(tag string) bool
	IsForm(tag string) bool
	IsMultimedia(tag string) bool
	IsScript(tag string) bool

	// IsVoid reports whether tag exists and is a void element.
	IsVoid(tag string) bool

	// GetElementsByCategory returns elements whose category matches,
	// ignoring case.
	GetElementsByCategory(category string) []domain.Element

	// GetElementsByType returns elements of type t.
	GetElementsByType(t domain.ElementType) []domain.Element

	// GetVoidElements returns every void element.
	GetVoidElements() []domain.Element

	// GetAllCategories returns distinct categories, sorted.
	GetAllCategories() []string

	// GetAllTypes returns distinct types present, sorted.
	GetAllTypes() []domain.ElementType

	// Len returns the number of elements.
	Len() int
}
