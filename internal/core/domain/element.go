package domain

import "strings"

// ElementType is the semantic classification of an HTML element.
type ElementType string

const (
	// TypeRoot is the document root (<html>).
	TypeRoot ElementType = "root"
	// TypeMeta covers document metadata elements.
	TypeMeta ElementType = "meta"
	// TypeBody is the sectioning root (<body>).
	TypeBody ElementType = "body"
	// TypeBlock covers block-level and structural content.
	TypeBlock ElementType = "block"
	// TypeInline covers inline text semantics.
	TypeInline ElementType = "inline"
	// TypeMultimedia covers image, audio and video elements.
	TypeMultimedia ElementType = "multimedia"
	// TypeScript covers scripting elements.
	TypeScript ElementType = "script"
	// TypeTable covers table content.
	TypeTable ElementType = "table"
	// TypeForm covers form controls.
	TypeForm ElementType = "form"
)

// ElementTypes lists every valid ElementType in textual order.
func ElementTypes() []ElementType {
	return []ElementType{
		TypeBlock,
		TypeBody,
		TypeForm,
		TypeInline,
		TypeMeta,
		TypeMultimedia,
		TypeRoot,
		TypeScript,
		TypeTable,
	}
}

// IsValid reports whether t is one of the known element types.
func (t ElementType) IsValid() bool {
	switch t {
	case TypeRoot, TypeMeta, TypeBody, TypeBlock, TypeInline,
		TypeMultimedia, TypeScript, TypeTable, TypeForm:
		return true
	}
	return false
}

// ParseElementType converts a case-insensitive name into an ElementType.
func ParseElementType(s string) (ElementType, bool) {
	t := ElementType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// String returns the textual form of the type.
func (t ElementType) String() string {
	return string(t)
}

// Element describes one HTML element kind.
// The JSON field names are the on-disk interchange format and must not change.
type Element struct {
	// Tag is the lowercase tag name without angle brackets (e.g. "div").
	Tag string `json:"tag"`

	// Description is the one-line summary from the reference page. May be empty.
	Description string `json:"description"`

	// Type is the semantic classification derived from the section.
	Type ElementType `json:"type"`

	// Category is the display title of the last section the tag was seen under.
	Category string `json:"category"`

	// URL is the absolute documentation link.
	URL string `json:"url"`

	// IsVoid is true when the element has no closing tag.
	IsVoid bool `json:"isVoid"`
}

// Registry maps a lowercase tag to its element record.
type Registry map[string]Element

// Clone returns a copy of the registry that shares no state with r.
func (r Registry) Clone() Registry {
	out := make(Registry, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// voidTags is the closed set of void elements. Membership never depends on
// scraped content.
var voidTags = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

// IsVoidTag reports whether tag names a void element. tag must already be
// normalised.
func IsVoidTag(tag string) bool {
	_, ok := voidTags[tag]
	return ok
}

// VoidTags returns the void tag set in no particular order.
func VoidTags() []string {
	out := make([]string, 0, len(voidTags))
	for tag := range voidTags {
		out = append(out, tag)
	}
	return out
}

// NormaliseTag strips angle brackets and lowercases raw tag text.
// "<INPUT>" becomes "input". The result may be empty.
func NormaliseTag(raw string) string {
	tag := strings.NewReplacer("<", "", ">", "").Replace(raw)
	return strings.ToLower(tag)
}
