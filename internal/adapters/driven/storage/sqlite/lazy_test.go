package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlreg/internal/core/domain"
)

func TestLazyWriter_NothingOnDiskUntilSave(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "new", "elements.db")
	w := NewLazyWriter(dbPath)

	assert.Equal(t, dbPath, w.Location())
	assert.False(t, w.Opened())
	require.NoError(t, w.Close())

	_, err := os.Stat(filepath.Dir(dbPath))
	assert.True(t, os.IsNotExist(err))
}

func TestLazyWriter_SaveOpensStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "new", "elements.db")
	w := NewLazyWriter(dbPath)

	build := domain.Build{ID: "b1", SourceURL: "https://example.com", BuiltAt: time.Now().UTC()}
	require.NoError(t, w.SaveRegistry(context.Background(), build, testRegistry()))
	assert.True(t, w.Opened())
	require.NoError(t, w.Close())
	assert.False(t, w.Opened())

	store, err := NewStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	reg, err := store.LoadRegistry(context.Background())
	require.NoError(t, err)
	assert.Len(t, reg, len(testRegistry()))
}
