package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults Without File", func(t *testing.T) {
		c, err := LoadConfig(filepath.Join(t.TempDir(), ConfigFile))
		require.NoError(t, err)
		assert.Equal(t, "data/addressbook.json", c.DataFile)
		assert.Equal(t, AdapterFS, c.Adapter)
		assert.False(t, c.Versioning)
		assert.Empty(t, c.File)
	})

	t.Run("File Values", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ConfigFile)
		require.NoError(t, os.WriteFile(path, []byte("data_file: book.yaml\nversioning: true\nwatch: true\n"), 0644))

		c, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "book.yaml"), c.DataFile)
		assert.True(t, c.Versioning)
		assert.True(t, c.Watch)
		assert.Equal(t, AdapterFS, c.Adapter)
	})

	t.Run("Env Overrides File", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ConfigFile)
		require.NoError(t, os.WriteFile(path, []byte("adapter: fs\nread_only: false\n"), 0644))
		t.Setenv("RAPPORT_ADAPTER", "sqlite")
		t.Setenv("RAPPORT_READ_ONLY", "true")
		t.Setenv("RAPPORT_DATA_FILE", "/srv/rapport.db")

		c, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, AdapterSQLite, c.Adapter)
		assert.True(t, c.ReadOnly)
		assert.Equal(t, "/srv/rapport.db", c.DataFile)
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFile)
		require.NoError(t, os.WriteFile(path, []byte("adapter: [unclosed"), 0644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("Save Round Trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFile)
		c := &Config{DataFile: "data/addressbook.yaml", Adapter: AdapterFS, Versioning: true}
		require.NoError(t, c.Save(path))

		loaded, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(filepath.Dir(path), "data/addressbook.yaml"), loaded.DataFile)
		assert.True(t, loaded.Versioning)
	})
}
