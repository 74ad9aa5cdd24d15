package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driving"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService answers lookups over an immutable registry. It holds a
// private copy of the registry and never writes to it, so it is safe for
// concurrent use without locking.
type QueryService struct {
	elements domain.Registry
	// tags is sorted; list operations iterate in this order.
	tags []string
}

// NewQueryService creates a query service over a copy of reg.
func NewQueryService(reg domain.Registry) *QueryService {
	elements := reg.Clone()
	tags := make([]string, 0, len(elements))
	for tag := range elements {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return &QueryService{
		elements: elements,
		tags:     tags,
	}
}

// Len returns the number of elements.
func (s *QueryService) Len() int {
	return len(s.elements)
}

// GetElement looks up a tag, ignoring case.
func (s *QueryService) GetElement(tag string) (domain.Element, bool) {
	el, ok := s.elements[strings.ToLower(tag)]
	return el, ok
}

// IsElementType reports whether tag exists and has type t.
func (s *QueryService) IsElementType(tag string, t domain.ElementType) bool {
	el, ok := s.GetElement(tag)
	return ok && el.Type == t
}

// IsBlock reports whether tag is a block element.
func (s *QueryService) IsBlock(tag string) bool {
	return s.IsElementType(tag, domain.TypeBlock)
}

// IsInline reports whether tag is an inline element.
func (s *QueryService) IsInline(tag string) bool {
	return s.IsElementType(tag, domain.TypeInline)
}

// IsMeta reports whether tag is a metadata element.
func (s *QueryService) IsMeta(tag string) bool {
	return s.IsElementType(tag, domain.TypeMeta)
}

// IsTable reports whether tag is a table element.
func (s *QueryService) IsTable(tag string) bool {
	return s.IsElementType(tag, domain.TypeTable)
}

// IsForm reports whether tag is a form element.
func (s *QueryService) IsForm(tag string) bool {
	return s.IsElementType(tag, domain.TypeForm)
}

// IsMultimedia reports whether tag is a multimedia element.
func (s *QueryService) IsMultimedia(tag string) bool {
	return s.IsElementType(tag, domain.TypeMultimedia)
}

// IsScript reports whether tag is a scripting element.
func (s *QueryService) IsScript(tag string) bool {
	return s.IsElementType(tag, domain.TypeScript)
}

// IsVoid reports whether tag exists and is a void element.
func (s *QueryService) IsVoid(tag string) bool {
	el, ok := s.GetElement(tag)
	return ok && el.IsVoid
}

// GetElementsByCategory returns every element whose category equals
// category, ignoring case.
func (s *QueryService) GetElementsByCategory(category string) []domain.Element {
	want := strings.ToLower(category)
	return s.filter(func(el domain.Element) bool {
		return strings.ToLower(el.Category) == want
	})
}

// GetElementsByType returns every element of type t.
func (s *QueryService) GetElementsByType(t domain.ElementType) []domain.Element {
	return s.filter(func(el domain.Element) bool {
		return el.Type == t
	})
}

// GetVoidElements returns every void element.
func (s *QueryService) GetVoidElements() []domain.Element {
	return s.filter(func(el domain.Element) bool {
		return el.IsVoid
	})
}

// GetAllCategories returns the distinct categories in lexicographic order.
// The result is never nil.
func (s *QueryService) GetAllCategories() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, el := range s.elements {
		if _, ok := seen[el.Category]; ok {
			continue
		}
		seen[el.Category] = struct{}{}
		out = append(out, el.Category)
	}
	sort.Strings(out)
	return out
}

// GetAllTypes returns the distinct types present, ordered by name. The
// result is never nil.
func (s *QueryService) GetAllTypes() []domain.ElementType {
	seen := make(map[domain.ElementType]struct{})
	out := []domain.ElementType{}
	for _, el := range s.elements {
		if _, ok := seen[el.Type]; ok {
			continue
		}
		seen[el.Type] = struct{}{}
		out = append(out, el.Type)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}

// filter returns copies of the matching elements in tag order. The result
// is never nil.
func (s *QueryService) filter(match func(domain.Element) bool) []domain.Element {
	out := []domain.Element{}
	for _, tag := range s.tags {
		if el := s.elements[tag]; match(el) {
			out = append(out, el)
		}
	}
	return out
}
