package jsonfile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
)

// Decode reads and validates a registry. Unknown fields, trailing data and
// schema violations are rejected with domain.ErrInvalidRegistry.
func Decode(r io.Reader) (domain.Registry, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var reg domain.Registry
	if err := dec.Decode(&reg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRegistry, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after registry object", domain.ErrInvalidRegistry)
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: registry is null", domain.ErrInvalidRegistry)
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// Encode writes reg as two-space indented JSON with sorted keys.
func Encode(w io.Writer, reg domain.Registry) error {
	if reg == nil {
		reg = domain.Registry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(reg)
}
