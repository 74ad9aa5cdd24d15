package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driven"
)

// Ensure RegistryStore implements the interfaces.
var (
	_ driven.RegistryWriter = (*RegistryStore)(nil)
	_ driven.RegistryReader = (*RegistryStore)(nil)
)

// RegistryStore is an in-memory implementation of the registry ports.
// It keeps only the most recent build.
type RegistryStore struct {
	mu       sync.RWMutex
	registry domain.Registry
	build    *domain.Build
}

// NewRegistryStore creates an empty store.
func NewRegistryStore() *RegistryStore {
	return &RegistryStore{}
}

// NewRegistryStoreFrom creates a store pre-loaded with reg.
func NewRegistryStoreFrom(reg domain.Registry) *RegistryStore {
	return &RegistryStore{registry: reg.Clone()}
}

// SaveRegistry replaces the stored registry with a copy of reg.
func (s *RegistryStore) SaveRegistry(_ context.Context, build domain.Build, reg domain.Registry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = reg.Clone()
	s.build = &build
	return nil
}

// LoadRegistry returns a copy of the stored registry.
func (s *RegistryStore) LoadRegistry(_ context.Context) (domain.Registry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil, domain.ErrNotFound
	}
	return s.registry.Clone(), nil
}

// LastBuild returns the most recent build, if any.
func (s *RegistryStore) LastBuild() (domain.Build, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.build == nil {
		return domain.Build{}, false
	}
	return *s.build, true
}

// Location identifies the store in build reports.
func (s *RegistryStore) Location() string {
	return "memory"
}
