package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/services"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	el := func(tag string, typ domain.ElementType, category string) domain.Element {
		return domain.Element{
			Tag:      tag,
			Type:     typ,
			Category: category,
			URL:      "https://developer.mozilla.org/en-US/docs/Web/HTML/Reference/Elements/" + tag,
			IsVoid:   domain.IsVoidTag(tag),
		}
	}
	reg := domain.Registry{
		"br":    el("br", domain.TypeInline, "Inline text semantics"),
		"div":   el("div", domain.TypeBlock, "Text content"),
		"input": el("input", domain.TypeForm, "Forms"),
		"p":     el("p", domain.TypeBlock, "Text content"),
		"span":  el("span", domain.TypeInline, "Inline text semantics"),
	}

	app, err := NewApp(&Ports{Query: services.NewQueryService(reg)})
	require.NoError(t, err)
	return app
}

func typeText(app *App, s string) {
	for _, r := range s {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewApp_RequiresQuery(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingQueryService)

	_, err = NewApp(nil)
	assert.ErrorIs(t, err, ErrMissingQueryService)
}

func TestNewApp_ShowsEverythingInTagOrder(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, 5, app.MatchCount())
	el, ok := app.Selected()
	require.True(t, ok)
	assert.Equal(t, "br", el.Tag)
	assert.NotNil(t, app.Init())
}

func TestApp_FilterByText(t *testing.T) {
	app := newTestApp(t)

	typeText(app, "<DIV>")

	assert.Equal(t, 1, app.MatchCount())
	el, _ := app.Selected()
	assert.Equal(t, "div", el.Tag)
}

func TestApp_FilterByCategoryText(t *testing.T) {
	app := newTestApp(t)

	typeText(app, "text content")

	assert.Equal(t, 2, app.MatchCount())
}

func TestApp_ClearFilter(t *testing.T) {
	app := newTestApp(t)
	typeText(app, "zzz")
	assert.Equal(t, 0, app.MatchCount())

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, 5, app.MatchCount())
}

func TestApp_CycleTypes(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.TypeBlock, app.TypeFilter())
	assert.Equal(t, 2, app.MatchCount())

	app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.ElementType(""), app.TypeFilter())
	assert.Equal(t, 5, app.MatchCount())

	app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.TypeInline, app.TypeFilter())
}

func TestApp_ToggleVoid(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Equal(t, 2, app.MatchCount())

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Equal(t, 5, app.MatchCount())
}

func TestApp_Navigation(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	el, _ := app.Selected()
	assert.Equal(t, "div", el.Tag)

	app.Update(tea.KeyMsg{Type: tea.KeyUp})
	el, _ = app.Selected()
	assert.Equal(t, "br", el.Tag)
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", app.View())
}

func TestApp_ViewAndResize(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	view := app.View()

	assert.Contains(t, view, "HTML elements")
	assert.Contains(t, view, "<br>")
	assert.Contains(t, view, "5/5")
}
