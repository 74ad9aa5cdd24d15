package mdn

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driven"
	"github.com/custodia-labs/htmlreg/internal/logger"
)

const (
	// DefaultBaseURL resolves site-relative element links.
	DefaultBaseURL = "https://developer.mozilla.org"

	// DefaultLinkMarker identifies links to element reference pages.
	DefaultLinkMarker = "/Web/HTML/Reference/Elements/"

	// DefaultSectionSelector matches the section blocks of the index page.
	DefaultSectionSelector = "section.content-section"
)

// Ensure Normaliser implements the interface.
var _ driven.IndexParser = (*Normaliser)(nil)

// Options tunes the selectors and link resolution.
type Options struct {
	BaseURL         string
	LinkMarker      string
	SectionSelector string
}

// Normaliser converts the reference index page into element records.
type Normaliser struct {
	baseURL         string
	linkMarker      string
	sectionSelector string
}

// New creates a normaliser with the MDN defaults.
func New() *Normaliser {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a normaliser, filling unset options with defaults.
func NewWithOptions(opts Options) *Normaliser {
	n := &Normaliser{
		baseURL:         strings.TrimSuffix(opts.BaseURL, "/"),
		linkMarker:      opts.LinkMarker,
		sectionSelector: opts.SectionSelector,
	}
	if n.baseURL == "" {
		n.baseURL = DefaultBaseURL
	}
	if n.linkMarker == "" {
		n.linkMarker = DefaultLinkMarker
	}
	if n.sectionSelector == "" {
		n.sectionSelector = DefaultSectionSelector
	}
	return n
}

// Parse builds a registry from raw HTML. Only a context cancellation or an
// unreadable document produces an error.
func (n *Normaliser) Parse(ctx context.Context, html []byte) (domain.Registry, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("reading html: %w", err)
	}

	reg := make(domain.Registry)
	doc.Find(n.sectionSelector).EachWithBreak(func(_ int, section *goquery.Selection) bool {
		if ctx.Err() != nil {
			return false
		}
		n.parseSection(section, reg)
		return true
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return reg, nil
}

// parseSection adds the rows of one section to reg.
func (n *Normaliser) parseSection(section *goquery.Selection, reg domain.Registry) {
	heading := section.Find("h2").First()
	headingText := heading.Text()

	elementType, ok := domain.ResolveSection(headingText)
	if !ok {
		logger.Debug("Skipping unmapped section %q", strings.TrimSpace(headingText))
		return
	}
	category := sectionTitle(heading)

	table := section.Find("table").First()
	if table.Length() == 0 {
		logger.Warn("Section %q has no table", category)
		return
	}

	added := 0
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		if n.parseRow(row, elementType, category, reg) {
			added++
		}
	})
	logger.Debug("Section %q (%s): %d rows", category, elementType, added)
}

// parseRow upserts the element described by row. It reports whether the
// row produced a record.
//
// A tag seen for the first time gets a full record. A tag seen again keeps
// its original description, type, URL and void flag; only the category
// moves to the current section.
func (n *Normaliser) parseRow(row *goquery.Selection, elementType domain.ElementType, category string, reg domain.Registry) bool {
	cells := row.Find("td")
	if cells.Length() < 2 {
		return false
	}
	elementCell := cells.Eq(0)
	descCell := cells.Eq(1)

	link := elementCell.Find("a[href]").FilterFunction(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		return strings.Contains(href, n.linkMarker)
	}).First()
	if link.Length() == 0 {
		return false
	}
	href, _ := link.Attr("href")
	if href == "" {
		return false
	}

	rawTag := strings.TrimSpace(link.Text())
	if rawTag == "" {
		rawTag = strings.TrimSpace(elementCell.Text())
	}
	if rawTag == "" {
		return false
	}

	tag := domain.NormaliseTag(rawTag)
	if tag == "" {
		return false
	}

	entry, seen := reg[tag]
	if !seen {
		entry = domain.Element{
			Tag:         tag,
			Description: strings.TrimSpace(descCell.Text()),
			Type:        elementType,
			URL:         n.resolveURL(href),
			IsVoid:      domain.IsVoidTag(tag),
		}
	}
	entry.Category = category
	reg[tag] = entry
	return true
}

// resolveURL makes a site-relative href absolute.
func (n *Normaliser) resolveURL(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return n.baseURL + href
}

// sectionTitle prefers the heading's link text and falls back to the full
// heading text.
func sectionTitle(heading *goquery.Selection) string {
	if title := strings.TrimSpace(heading.Find("a").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(heading.Text())
}
