package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validElement(tag string, et ElementType) Element {
	return Element{
		Tag:      tag,
		Type:     et,
		Category: "Test",
		URL:      "https://developer.mozilla.org/en-US/docs/Web/HTML/Reference/Elements/" + tag,
		IsVoid:   IsVoidTag(tag),
	}
}

func TestRegistry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		reg     Registry
		wantErr bool
	}{
		{
			name: "valid",
			reg: Registry{
				"div":   validElement("div", TypeBlock),
				"input": validElement("input", TypeForm),
			},
		},
		{
			name: "empty registry",
			reg:  Registry{},
		},
		{
			name:    "tag mismatch",
			reg:     Registry{"div": validElement("span", TypeInline)},
			wantErr: true,
		},
		{
			name: "uppercase key",
			reg: Registry{"DIV": func() Element {
				el := validElement("div", TypeBlock)
				el.Tag = "DIV"
				return el
			}()},
			wantErr: true,
		},
		{
			name:    "unknown type",
			reg:     Registry{"div": validElement("div", "heading")},
			wantErr: true,
		},
		{
			name: "relative url",
			reg: Registry{"div": func() Element {
				el := validElement("div", TypeBlock)
				el.URL = "/en-US/docs/Web/HTML/Reference/Elements/div"
				return el
			}()},
			wantErr: true,
		},
		{
			name: "void flag disagrees",
			reg: Registry{"br": func() Element {
				el := validElement("br", TypeInline)
				el.IsVoid = false
				return el
			}()},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRegistry)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFetchError(t *testing.T) {
	cause := assert.AnError
	err := &FetchError{URL: "https://example.com", StatusCode: 503, Err: cause}

	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "status 503")

	noStatus := &FetchError{URL: "https://example.com", Err: cause}
	assert.NotContains(t, noStatus.Error(), "status")
}
