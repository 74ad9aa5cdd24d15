package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlreg/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/htmlreg/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/logger"
)

func TestGetCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := executeCommand(t, "get")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestGetCmd_PrintsElement(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	out, err := executeCommand(t, "get", "DIV")

	require.NoError(t, err)
	assert.Contains(t, out, "<div>")
	assert.Contains(t, out, "Type:     block")
	assert.Contains(t, out, "Category: Text content")
	assert.Contains(t, out, "Void:     false")
	assert.Contains(t, out, testURLBase+"div")
}

func TestGetCmd_JSON(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	out, err := executeCommand(t, "get", "input", "--json")
	require.NoError(t, err)

	var el domain.Element
	require.NoError(t, json.Unmarshal([]byte(out), &el))
	assert.Equal(t, "input", el.Tag)
	assert.Equal(t, domain.TypeForm, el.Type)
	assert.Equal(t, "Forms", el.Category)
	assert.True(t, el.IsVoid)
}

func TestGetCmd_UnknownTag(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	_, err := executeCommand(t, "get", "notarealtag")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIsCmd(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"input is form", []string{"is", "form", "input"}, "true"},
		{"input is not block", []string{"is", "block", "input"}, "false"},
		{"type is case-insensitive", []string{"is", "BLOCK", "Div"}, "true"},
		{"unknown tag", []string{"is", "block", "notarealtag"}, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestIsCmd_UnknownType(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	_, err := executeCommand(t, "is", "widget", "div")

	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestVoidCmd(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	out, err := executeCommand(t, "void", "INPUT")
	require.NoError(t, err)
	assert.Equal(t, "true", strings.TrimSpace(out))

	out, err = executeCommand(t, "void", "notarealtag")
	require.NoError(t, err)
	assert.Equal(t, "false", strings.TrimSpace(out))
}

func TestListCmd_All(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	out, err := executeCommand(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Total: 6 elements")
	assert.Less(t, strings.Index(out, "br"), strings.Index(out, "span"))
}

func TestListCmd_ByCategory(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	out, err := executeCommand(t, "list", "--category", "TEXT CONTENT")

	require.NoError(t, err)
	assert.Contains(t, out, "div")
	assert.Contains(t, out, "Total: 2 elements")
	assert.NotContains(t, out, "span")
}

func TestListCmd_ByTypeJSON(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	out, err := executeCommand(t, "list", "--type", "inline", "--json")
	require.NoError(t, err)

	var elements []domain.Element
	require.NoError(t, json.Unmarshal([]byte(out), &elements))
	require.Len(t, elements, 2)
	assert.Equal(t, "br", elements[0].Tag)
	assert.Equal(t, "span", elements[1].Tag)
}

func TestListCmd_Void(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	out, err := executeCommand(t, "list", "--void")

	require.NoError(t, err)
	assert.Contains(t, out, "Total: 2 elements")
}

func TestListCmd_NoMatchesJSONIsEmptyArray(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	out, err := executeCommand(t, "list", "--category", "nope", "--json")

	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(out))
}

func TestListCmd_FiltersAreExclusive(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	_, err := executeCommand(t, "list", "--category", "Forms", "--type", "form")

	assert.Error(t, err)
}

func TestListCmd_UnknownType(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	_, err := executeCommand(t, "list", "--type", "widget")

	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestCategoriesCmd(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	out, err := executeCommand(t, "categories")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Document metadata",
		"Forms",
		"Inline text semantics",
		"Text content",
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestTypesCmd(t *testing.T) {
	cleanup := setupTestQuery()
	defer cleanup()

	out, err := executeCommand(t, "types")

	require.NoError(t, err)
	assert.Equal(t, []string{"block", "form", "inline", "meta"}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestQuery_EmbeddedRegistry(t *testing.T) {
	out, err := executeCommand(t, "is", "block", "div")

	require.NoError(t, err)
	assert.Equal(t, "true", strings.TrimSpace(out))
}

func TestQuery_JSONRegistryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elements.json")
	require.NoError(t, jsonfile.NewStore(path).SaveRegistry(context.Background(), domain.Build{}, testRegistry()))

	out, err := executeCommand(t, "--registry", path, "types")

	require.NoError(t, err)
	assert.Equal(t, "block\nform\ninline\nmeta", strings.TrimSpace(out))
}

func TestQuery_SQLiteRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elements.db")
	store, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveRegistry(context.Background(), domain.Build{ID: "b1", SourceURL: "https://example.com"}, testRegistry()))
	require.NoError(t, store.Close())

	out, err := executeCommand(t, "--registry", path, "void", "br")

	require.NoError(t, err)
	assert.Equal(t, "true", strings.TrimSpace(out))
}

func TestQuery_MissingRegistry(t *testing.T) {
	_, err := executeCommand(t, "--registry", filepath.Join(t.TempDir(), "missing.json"), "types")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuery_InvalidRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elements.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"div": {"tag": "span"}}`), 0644))

	_, err := executeCommand(t, "--registry", path, "types")

	assert.ErrorIs(t, err, domain.ErrInvalidRegistry)
}

func TestRoot_VerboseFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "verbose.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("verbose = true\n"), 0600))

	_, err := executeCommand(t, "--config", cfgPath, "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}
