package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/htmlreg/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/htmlreg/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/htmlreg/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/htmlreg/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/htmlreg/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/htmlreg/internal/core/domain"
)

// chromeHeight is the number of lines used by everything except the list.
const chromeHeight = 12

// App is the element browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	styles *styles.Styles
	keymap *keymap.KeyMap

	filter *input.FilterInput
	list   *list.ElementList
	status *status.Bar

	// all holds every element in tag order.
	all []domain.Element

	// types is the cycle order for the type filter; index 0 means all types.
	types   []domain.ElementType
	typeIdx int

	voidOnly bool
	width    int
	height   int
	quitting bool
}

// NewApp creates the browser over the query service in ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	q := ports.Query

	var all []domain.Element
	types := []domain.ElementType{""}
	for _, t := range q.GetAllTypes() {
		types = append(types, t)
		all = append(all, q.GetElementsByType(t)...)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Tag < all[j].Tag
	})

	a := &App{
		ports:  ports,
		styles: s,
		keymap: km,
		filter: input.NewFilterInput(s),
		list:   list.NewElementList(s),
		status: status.NewBar(s, km),
		all:    all,
		types:  types,
		width:  80,
		height: 24,
	}
	a.applyFilters()
	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.filter.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, a.keymap.Quit):
			a.quitting = true
			return a, tea.Quit
		case keymap.Matches(k, a.keymap.Up):
			a.list.MoveUp()
			return a, nil
		case keymap.Matches(k, a.keymap.Down):
			a.list.MoveDown()
			return a, nil
		case keymap.Matches(k, a.keymap.NextType):
			a.typeIdx = (a.typeIdx + 1) % len(a.types)
			a.applyFilters()
			return a, nil
		case keymap.Matches(k, a.keymap.PrevType):
			a.typeIdx = (a.typeIdx + len(a.types) - 1) % len(a.types)
			a.applyFilters()
			return a, nil
		case keymap.Matches(k, a.keymap.ToggleVoid):
			a.voidOnly = !a.voidOnly
			a.applyFilters()
			return a, nil
		case keymap.Matches(k, a.keymap.Clear):
			a.filter.Reset()
			a.applyFilters()
			return a, nil
		}
	}

	before := a.filter.Value()
	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	if a.filter.Value() != before {
		a.applyFilters()
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	sections := []string{
		a.styles.Title.Render("HTML elements"),
		a.filter.View(),
		a.list.View(),
		a.detailView(),
		a.status.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) detailView() string {
	el, ok := a.list.Selected()
	if !ok {
		return a.styles.Detail.Width(a.width).Render(a.styles.Muted.Render("Nothing selected"))
	}

	lines := []string{
		a.styles.Subtitle.Render("<"+el.Tag+">") + "  " +
			a.styles.TypeBadge(el.Type).Render(el.Type.String()) + "  " +
			a.styles.Muted.Render(el.Category),
		a.styles.Normal.Render(el.Description),
		a.styles.Muted.Render(el.URL),
	}
	return a.styles.Detail.Width(a.width).Render(strings.Join(lines, "\n"))
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	a.filter.SetWidth(width)
	a.status.SetWidth(width)
	a.list.SetSize(width, height-chromeHeight)
}

// applyFilters recomputes the visible list from the filter text, type and
// void toggles.
func (a *App) applyFilters() {
	text := domain.NormaliseTag(strings.TrimSpace(a.filter.Value()))
	typ := a.types[a.typeIdx]

	matches := make([]domain.Element, 0, len(a.all))
	for _, el := range a.all {
		if typ != "" && el.Type != typ {
			continue
		}
		if a.voidOnly && !el.IsVoid {
			continue
		}
		if text != "" &&
			!strings.Contains(el.Tag, text) &&
			!strings.Contains(strings.ToLower(el.Category), text) {
			continue
		}
		matches = append(matches, el)
	}

	a.list.SetElements(matches)
	a.status.SetCounts(len(matches), len(a.all))
	a.status.SetFilters(typ, a.voidOnly)
}

// MatchCount returns the number of elements currently shown.
func (a *App) MatchCount() int {
	return a.list.Len()
}

// Selected returns the highlighted element.
func (a *App) Selected() (domain.Element, bool) {
	return a.list.Selected()
}

// TypeFilter returns the active type filter; empty means all types.
func (a *App) TypeFilter() domain.ElementType {
	return a.types[a.typeIdx]
}
