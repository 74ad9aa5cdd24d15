package sqlite

import (
	"context"
	"sync"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driven"
)

var _ driven.RegistryWriter = (*LazyWriter)(nil)

// LazyWriter defers opening the database until the first SaveRegistry call,
// so a build that fails before saving leaves no database file behind.
type LazyWriter struct {
	path string

	mu    sync.Mutex
	store *Store
}

// NewLazyWriter returns a writer for the database at dbPath. Nothing is
// created on disk until a registry is saved.
func NewLazyWriter(dbPath string) *LazyWriter {
	return &LazyWriter{path: dbPath}
}

// SaveRegistry opens the store if needed and saves reg.
func (w *LazyWriter) SaveRegistry(ctx context.Context, build domain.Build, reg domain.Registry) error {
	store, err := w.open()
	if err != nil {
		return err
	}
	return store.SaveRegistry(ctx, build, reg)
}

// Location returns the database file path.
func (w *LazyWriter) Location() string {
	return w.path
}

// Opened reports whether the database has been opened.
func (w *LazyWriter) Opened() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store != nil
}

// Close closes the database if it was opened.
func (w *LazyWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.store == nil {
		return nil
	}
	err := w.store.Close()
	w.store = nil
	return err
}

func (w *LazyWriter) open() (*Store, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.store != nil {
		return w.store, nil
	}
	store, err := NewStore(w.path)
	if err != nil {
		return nil, err
	}
	w.store = store
	return store, nil
}
