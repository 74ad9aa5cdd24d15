// Package htmlreg is a registry of HTML element metadata: tag name,
// semantic type, category, description, documentation link and whether
// the element is void.
//
// The package-level functions answer queries against a dataset built from
// the MDN element reference and embedded at compile time. Use New or Load
// to query a different dataset.
//
//	htmlreg.IsBlock("DIV")   // true
//	htmlreg.IsVoid("input")  // true
//	el, ok := htmlreg.GetElement("video")
package htmlreg

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/custodia-labs/htmlreg/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/services"
)

//go:embed data/elements.json
var embeddedRegistry []byte

// Element describes one HTML element kind.
type Element = domain.Element

// ElementType is the semantic classification of an element.
type ElementType = domain.ElementType

// Registry maps a lowercase tag to its element.
type Registry = domain.Registry

// Query answers lookups over one registry. It is immutable and safe for
// concurrent use.
type Query = services.QueryService

// Element types.
const (
	TypeRoot       = domain.TypeRoot
	TypeMeta       = domain.TypeMeta
	TypeBody       = domain.TypeBody
	TypeBlock      = domain.TypeBlock
	TypeInline     = domain.TypeInline
	TypeMultimedia = domain.TypeMultimedia
	TypeScript     = domain.TypeScript
	TypeTable      = domain.TypeTable
	TypeForm       = domain.TypeForm
)

// ErrInvalidRegistry is returned when a dataset violates the registry schema.
var ErrInvalidRegistry = domain.ErrInvalidRegistry

var (
	defaultOnce  sync.Once
	defaultQuery *Query
	defaultErr   error
)

// New validates reg and returns a query over a private copy of it.
func New(reg Registry) (*Query, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return services.NewQueryService(reg), nil
}

// Load decodes a registry in the JSON interchange format and returns a
// query over it.
func Load(r io.Reader) (*Query, error) {
	reg, err := jsonfile.Decode(r)
	if err != nil {
		return nil, err
	}
	return services.NewQueryService(reg), nil
}

// Default returns the query over the embedded dataset. The dataset is
// decoded on first use.
func Default() (*Query, error) {
	defaultOnce.Do(func() {
		defaultQuery, defaultErr = Load(bytes.NewReader(embeddedRegistry))
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded registry: %w", defaultErr)
		}
	})
	return defaultQuery, defaultErr
}

func mustDefault() *Query {
	q, err := Default()
	if err != nil {
		panic(err)
	}
	return q
}

// GetElement looks up a tag, ignoring case.
func GetElement(tag string) (Element, bool) { return mustDefault().GetElement(tag) }

// IsElementType reports whether tag exists and has type t.
func IsElementType(tag string, t ElementType) bool { return mustDefault().IsElementType(tag, t) }

// IsBlock reports whether tag exists and is a block element.
func IsBlock(tag string) bool { return mustDefault().IsBlock(tag) }

// IsInline reports whether tag exists and is an inline element.
func IsInline(tag string) bool { return mustDefault().IsInline(tag) }

// IsMeta reports whether tag exists and is a metadata element.
func IsMeta(tag string) bool { return mustDefault().IsMeta(tag) }

// IsTable reports whether tag exists and is a table element.
func IsTable(tag string) bool { return mustDefault().IsTable(tag) }

// IsForm reports whether tag exists and is a form element.
func IsForm(tag string) bool { return mustDefault().IsForm(tag) }

// IsMultimedia reports whether tag exists and is a multimedia element.
func IsMultimedia(tag string) bool { return mustDefault().IsMultimedia(tag) }

// IsScript reports whether tag exists and is a scripting element.
func IsScript(tag string) bool { return mustDefault().IsScript(tag) }

// IsVoid reports whether tag exists and has no closing tag.
func IsVoid(tag string) bool { return mustDefault().IsVoid(tag) }

// GetElementsByCategory returns the elements filed under category,
// ignoring case.
func GetElementsByCategory(category string) []Element {
	return mustDefault().GetElementsByCategory(category)
}

// GetElementsByType returns the elements of type t.
func GetElementsByType(t ElementType) []Element { return mustDefault().GetElementsByType(t) }

// GetVoidElements returns every void element.
func GetVoidElements() []Element { return mustDefault().GetVoidElements() }

// GetAllCategories returns the distinct categories, sorted.
func GetAllCategories() []string { return mustDefault().GetAllCategories() }

// GetAllTypes returns the distinct types present, sorted.
func GetAllTypes() []ElementType { return mustDefault().GetAllTypes() }
