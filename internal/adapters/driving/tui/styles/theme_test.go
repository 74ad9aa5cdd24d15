package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Secondary))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
}

func TestDefaultTheme_EveryTypeHasColour(t *testing.T) {
	theme := DefaultTheme()

	for _, typ := range domain.ElementTypes() {
		assert.NotEmpty(t, string(theme.Types[typ]), "missing colour for %s", typ)
	}
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.NotNil(t, s.Theme())
}

func TestStyles_TypeBadge(t *testing.T) {
	s := DefaultStyles()

	badge := s.TypeBadge(domain.TypeForm)
	assert.Equal(t, s.Theme().Types[domain.TypeForm], badge.GetForeground())

	assert.Equal(t, s.Muted.GetForeground(), s.TypeBadge("unknown").GetForeground())
}
