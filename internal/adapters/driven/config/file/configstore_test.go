package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())

	// Nothing is written until Save
	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestDefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".advent"), dir)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("inputs.dir", "puzzles"))
	require.NoError(t, store.Set("fetch.year", 2020))
	require.NoError(t, store.Set("run.continue_on_error", true))

	assert.Equal(t, "puzzles", store.GetString("inputs.dir"))
	assert.Equal(t, 2020, store.GetInt("fetch.year"))
	assert.True(t, store.GetBool("run.continue_on_error"))

	// Wrong types and missing keys return zero values
	assert.Equal(t, "", store.GetString("fetch.year"))
	assert.Equal(t, 0, store.GetInt("inputs.dir"))
	assert.False(t, store.GetBool("inputs.dir"))
	assert.False(t, store.GetBool("nonexistent"))

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Set_InvalidKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", ".dir", "inputs."} {
		assert.Error(t, store.Set(key, "x"), key)
	}
}

func TestConfigStore_SaveWritesTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("inputs.dir", "puzzles"))
	require.NoError(t, store.Set("inputs.pattern", "%d.txt"))
	require.NoError(t, store.Set("fetch.year", 2021))
	require.NoError(t, store.Save())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[inputs]")
	assert.Contains(t, string(data), "[fetch]")
	assert.NotContains(t, string(data), `"inputs.dir"`)

	// Reload from disk
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "puzzles", store2.GetString("inputs.dir"))
	assert.Equal(t, "%d.txt", store2.GetString("inputs.pattern"))
	assert.Equal(t, 2021, store2.GetInt("fetch.year"))
}

func TestConfigStore_LoadNestedFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte(`
[run]
lenient_parsing = true

[history]
enabled = false
`)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.True(t, store.GetBool("run.lenient_parsing"))
	assert.False(t, store.GetBool("history.enabled"))
	_, ok := store.Get("history.enabled")
	assert.True(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("fetch.session", "secret"))
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()

	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key." + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_ = store.GetBool(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
	require.NoError(t, store.Save())
}

// TestNewConfigStore_MkdirAllError tests error handling when directory creation fails
func TestNewConfigStore_MkdirAllError(t *testing.T) {
	invalidPath := "/dev/null/cannot/create/dirs"

	store, err := NewConfigStore(invalidPath)

	assert.Error(t, err)
	assert.Nil(t, store)
}

// TestNewConfigStore_LoadCorruptedFile tests error handling when loading corrupted TOML
func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()

	corruptedContent := []byte("this is not valid TOML {{{[[")
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), corruptedContent, 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

// TestConfigStore_Save_WriteFileError tests error handling when WriteFile fails
func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	// A directory where the file should be makes the write fail
	require.NoError(t, os.Mkdir(store.Path(), 0700))
	require.NoError(t, store.Set("test", "value"))

	assert.Error(t, store.Save())
}

func TestNestMap(t *testing.T) {
	nested, err := nestMap(map[string]any{"a.b": 1, "a.c": "x", "d": true})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": map[string]any{"b": 1, "c": "x"},
		"d": true,
	}, nested)

	_, err = nestMap(map[string]any{"a": 1, "a.b": 2})
	assert.Error(t, err)

	assert.Equal(t, map[string]any{"a.b": 1, "a.c": "x", "d": true}, flattenMap(nested, ""))
}
