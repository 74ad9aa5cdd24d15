package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks every record against the interchange schema.
// The first violation is returned wrapped in ErrInvalidRegistry.
func (r Registry) Validate() error {
	for key, el := range r {
		if err := validateElement(key, el); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidRegistry, key, err)
		}
	}
	return nil
}

func validateElement(key string, el Element) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if key != strings.ToLower(key) {
		return fmt.Errorf("key is not lowercase")
	}
	if el.Tag != key {
		return fmt.Errorf("tag %q does not match key", el.Tag)
	}
	if !el.Type.IsValid() {
		return fmt.Errorf("%w %q", ErrUnsupportedType, el.Type)
	}
	u, err := url.Parse(el.URL)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("url %q is not absolute", el.URL)
	}
	if el.IsVoid != IsVoidTag(key) {
		return fmt.Errorf("isVoid=%t disagrees with the void tag set", el.IsVoid)
	}
	return nil
}
