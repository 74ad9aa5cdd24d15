package jsonfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driven"
)

// Ensure Store implements the interfaces.
var (
	_ driven.RegistryWriter = (*Store)(nil)
	_ driven.RegistryReader = (*Store)(nil)
)

// Store reads and writes the registry at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for path. The file need not exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Location returns the file path.
func (s *Store) Location() string {
	return s.path
}

// SaveRegistry writes reg to a temporary file next to the target and
// renames it into place, so a failed save leaves the old file untouched.
func (s *Store) SaveRegistry(ctx context.Context, _ domain.Build, reg domain.Registry) error {
	if s.path == "" {
		return fmt.Errorf("%w: empty output path", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	w := bufio.NewWriter(tmp)
	if err := Encode(w, reg); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding registry: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("writing registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// LoadRegistry reads and validates the file.
// Returns domain.ErrNotFound if the file does not exist.
func (s *Store) LoadRegistry(_ context.Context) (domain.Registry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.path, domain.ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	reg, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return reg, nil
}
