// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/htmlreg/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/htmlreg/internal/core/domain"
)

// ElementList is a scrolling, selectable list of elements.
type ElementList struct {
	elements []domain.Element
	selected int
	offset   int
	styles   *styles.Styles
	width    int
	height   int
}

// NewElementList creates an empty list.
func NewElementList(s *styles.Styles) *ElementList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ElementList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// SetElements replaces the list contents and resets the selection.
func (l *ElementList) SetElements(elements []domain.Element) {
	l.elements = elements
	l.selected = 0
	l.offset = 0
}

// Len returns the number of elements in the list.
func (l *ElementList) Len() int {
	return len(l.elements)
}

// Selected returns the highlighted element.
func (l *ElementList) Selected() (domain.Element, bool) {
	if len(l.elements) == 0 {
		return domain.Element{}, false
	}
	return l.elements[l.selected], true
}

// SelectedIndex returns the index of the highlighted element.
func (l *ElementList) SelectedIndex() int {
	return l.selected
}

// MoveUp moves the selection up, stopping at the first element.
func (l *ElementList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
}

// MoveDown moves the selection down, stopping at the last element.
func (l *ElementList) MoveDown() {
	if l.selected < len(l.elements)-1 {
		l.selected++
	}
	if l.selected >= l.offset+l.visible() {
		l.offset = l.selected - l.visible() + 1
	}
}

// SetSize sets the area available to the list.
func (l *ElementList) SetSize(width, height int) {
	l.width = width
	l.height = height
	if l.selected >= l.offset+l.visible() {
		l.offset = l.selected - l.visible() + 1
	}
}

func (l *ElementList) visible() int {
	if l.height < 1 {
		return 1
	}
	return l.height
}

// View renders the visible rows.
func (l *ElementList) View() string {
	if len(l.elements) == 0 {
		return l.styles.Muted.Render("No matching elements")
	}

	end := l.offset + l.visible()
	if end > len(l.elements) {
		end = len(l.elements)
	}

	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		el := l.elements[i]
		tag := fmt.Sprintf("%-16s", "<"+el.Tag+">")
		rest := l.styles.TypeBadge(el.Type).Render(fmt.Sprintf("%-11s", el.Type)) +
			" " + l.styles.Muted.Render(el.Category)
		if el.IsVoid {
			rest += " " + l.styles.Void.Render("void")
		}

		if i == l.selected {
			lines = append(lines, l.styles.Selected.Render("> "+tag)+" "+rest)
		} else {
			lines = append(lines, "  "+tag+" "+rest)
		}
	}
	return strings.Join(lines, "\n")
}
