package htmlreg

import (
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
)

func TestDefault_EmbeddedRegistryIsValid(t *testing.T) {
	q, err := Default()
	require.NoError(t, err)
	assert.Greater(t, q.Len(), 100)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, q, again)
}

func TestEmbedded_Div(t *testing.T) {
	el, ok := GetElement("div")
	require.True(t, ok)
	assert.Equal(t, TypeBlock, el.Type)
	assert.Equal(t, "Text content", el.Category)
	assert.True(t, IsBlock("DIV"))

	var tags []string
	for _, e := range GetElementsByCategory("text content") {
		tags = append(tags, e.Tag)
	}
	assert.Contains(t, tags, "div")
}

func TestEmbedded_Input(t *testing.T) {
	el, ok := GetElement("INPUT")
	require.True(t, ok)
	assert.Equal(t, "input", el.Tag)
	assert.Equal(t, TypeForm, el.Type)
	assert.Equal(t, "Forms", el.Category)
	assert.True(t, el.IsVoid)

	assert.True(t, IsForm("input"))
	assert.True(t, IsVoid("Input"))
	assert.False(t, IsBlock("input"))
}

func TestEmbedded_UnknownTag(t *testing.T) {
	_, ok := GetElement("notarealtag")
	assert.False(t, ok)
	assert.False(t, IsVoid("notarealtag"))
	assert.False(t, IsElementType("notarealtag", TypeBlock))
	assert.Empty(t, GetElementsByCategory("not a category"))
}

func TestEmbedded_Predicates(t *testing.T) {
	assert.True(t, IsInline("span"))
	assert.True(t, IsMeta("title"))
	assert.True(t, IsTable("td"))
	assert.True(t, IsMultimedia("video"))
	assert.True(t, IsScript("script"))
	assert.True(t, IsElementType("html", TypeRoot))
	assert.True(t, IsElementType("body", TypeBody))
}

func TestEmbedded_VoidElementsMatchVoidSet(t *testing.T) {
	var got []string
	for _, el := range GetVoidElements() {
		got = append(got, el.Tag)
	}
	want := domain.VoidTags()
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestEmbedded_TypesAndCategories(t *testing.T) {
	types := GetAllTypes()
	assert.Equal(t, domain.ElementTypes(), types)

	categories := GetAllCategories()
	assert.True(t, sort.StringsAreSorted(categories))
	assert.Contains(t, categories, "Forms")
	assert.Contains(t, categories, "Text content")

	total := 0
	for _, typ := range types {
		total += len(GetElementsByType(typ))
	}
	q, err := Default()
	require.NoError(t, err)
	assert.Equal(t, q.Len(), total)
}

func TestEmbedded_ReturnsCopies(t *testing.T) {
	el, ok := GetElement("p")
	require.True(t, ok)
	el.Description = "changed"

	again, _ := GetElement("p")
	assert.NotEqual(t, "changed", again.Description)
}

func TestEmbedded_ConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, IsBlock("div"))
			assert.NotEmpty(t, GetElementsByType(TypeInline))
		}()
	}
	wg.Wait()
}

func TestNew(t *testing.T) {
	reg := Registry{
		"custom": {
			Tag:      "custom",
			Type:     TypeInline,
			Category: "Custom",
			URL:      "https://example.com/custom",
		},
	}
	q, err := New(reg)
	require.NoError(t, err)
	assert.True(t, q.IsInline("CUSTOM"))

	delete(reg, "custom")
	assert.Equal(t, 1, q.Len())
}

func TestNew_RejectsInvalid(t *testing.T) {
	_, err := New(Registry{"Div": {Tag: "Div", Type: TypeBlock, URL: "https://example.com"}})
	assert.ErrorIs(t, err, ErrInvalidRegistry)
}

func TestLoad(t *testing.T) {
	q, err := Load(strings.NewReader(`{
  "br": {"tag": "br", "description": "", "type": "inline", "category": "Inline text semantics", "url": "https://example.com/br", "isVoid": true}
}`))
	require.NoError(t, err)
	assert.True(t, q.IsVoid("br"))

	_, err = Load(strings.NewReader(`{"br": {"tag": "br", "type": "widget", "url": "https://example.com/br", "isVoid": true}}`))
	assert.ErrorIs(t, err, ErrInvalidRegistry)
}
