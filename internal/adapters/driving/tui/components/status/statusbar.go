// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/htmlreg/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/htmlreg/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/htmlreg/internal/core/domain"
)

// Bar shows the active filters, the match count and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	matches  int
	total    int
	typ      domain.ElementType
	voidOnly bool
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (b *Bar) renderLeft() string {
	parts := []string{fmt.Sprintf("%d/%d", b.matches, b.total)}
	if b.typ != "" {
		parts = append(parts, "type:"+b.typ.String())
	}
	if b.voidOnly {
		parts = append(parts, "void")
	}
	return b.styles.Normal.Render(strings.Join(parts, " "))
}

func (b *Bar) renderRight() string {
	bindings := b.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetCounts sets the number of matching and total elements.
func (b *Bar) SetCounts(matches, total int) {
	b.matches = matches
	b.total = total
}

// SetFilters records the active type and void filters. An empty type means
// all types.
func (b *Bar) SetFilters(t domain.ElementType, voidOnly bool) {
	b.typ = t
	b.voidOnly = voidOnly
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}
