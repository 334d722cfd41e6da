package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_SetPersistsImmediately(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("scan.min_length", 4))

	// A fresh store reads the same values back from disk.
	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, reopened.GetInt("scan.min_length"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("scan.min_length", 4))
	require.NoError(t, store.Set("llm.provider", "ollama"))

	// Dotted keys serialise as TOML tables, not quoted keys.
	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[scan]")
	assert.Contains(t, string(raw), "[llm]")
	assert.NotContains(t, string(raw), `"scan.min_length"`)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("llm.provider", "ollama"))
	require.NoError(t, store.Set("scan.max_length", 20))
	require.NoError(t, store.Set("verbose", true))
	require.NoError(t, store.Set("themes", []string{"nature", "time"}))

	assert.Equal(t, "ollama", store.GetString("llm.provider"))
	assert.Equal(t, 20, store.GetInt("scan.max_length"))
	assert.True(t, store.GetBool("verbose"))
	assert.Equal(t, []string{"nature", "time"}, store.GetStringSlice("themes"))

	// Missing or mistyped keys yield zero values.
	assert.Empty(t, store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("llm.provider"))
	assert.False(t, store.GetBool("missing"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_FlattensNestedTOML(t *testing.T) {
	dir := t.TempDir()
	content := "[scan]\nmin_length = 4\nmax_length = 20\n\n[llm]\nprovider = \"openai\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 4, store.GetInt("scan.min_length"))
	assert.Equal(t, 20, store.GetInt("scan.max_length"))
	assert.Equal(t, "openai", store.GetString("llm.provider"))
}

func TestConfigStore_LoadMissingFileIsFine(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Load())
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_LoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not toml {{{{"), 0600))

	_, err := NewConfigStore(dir)

	assert.Error(t, err)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("llm.api_key", "sk-secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
