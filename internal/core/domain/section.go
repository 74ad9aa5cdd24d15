package domain

import "strings"

// SectionMapping binds a reference-page section heading prefix to a type.
type SectionMapping struct {
	// Prefix is matched against the start of the trimmed heading text.
	Prefix string
	// Type is assigned to every element listed in the section.
	Type ElementType
}

// sectionMappings is ordered; the first matching prefix wins.
var sectionMappings = []SectionMapping{
	{Prefix: "Main root", Type: TypeRoot},
	{Prefix: "Document metadata", Type: TypeMeta},
	{Prefix: "Sectioning root", Type: TypeBody},
	{Prefix: "Content sectioning", Type: TypeBlock},
	{Prefix: "Text content", Type: TypeBlock},
	{Prefix: "Inline text semantics", Type: TypeInline},
	{Prefix: "Image and multimedia", Type: TypeMultimedia},
	{Prefix: "Embedded content", Type: TypeBlock},
	{Prefix: "SVG and MathML", Type: TypeBlock},
	{Prefix: "Scripting", Type: TypeScript},
	{Prefix: "Demarcating edits", Type: TypeBlock},
	{Prefix: "Table content", Type: TypeTable},
	{Prefix: "Forms", Type: TypeForm},
	{Prefix: "Interactive elements", Type: TypeBlock},
	{Prefix: "Web Components", Type: TypeBlock},
	{Prefix: "Obsolete and deprecated elements", Type: TypeBlock},
}

// SectionMappings returns a copy of the ordered section table.
func SectionMappings() []SectionMapping {
	out := make([]SectionMapping, len(sectionMappings))
	copy(out, sectionMappings)
	return out
}

// ResolveSection returns the type for a section heading. The heading is
// trimmed and compared case-sensitively by prefix. ok is false for sections
// that are not mapped.
func ResolveSection(heading string) (ElementType, bool) {
	key := strings.TrimSpace(heading)
	for _, m := range sectionMappings {
		if strings.HasPrefix(key, m.Prefix) {
			return m.Type, true
		}
	}
	return "", false
}
