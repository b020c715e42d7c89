package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/rapport/internal/platform"
	"github.com/aretw0/rapport/pkg/adapters/fs"
	"github.com/aretw0/rapport/pkg/adapters/sqlite"
	"github.com/aretw0/rapport/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDataFile(t *testing.T) {
	dir := t.TempDir()

	got, err := platform.ResolveDataFile(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "addressbook.json"), got)

	got, err = platform.ResolveDataFile(filepath.Join(dir, "data"), "yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "addressbook.yaml"), got)

	got, err = platform.ResolveDataFile(filepath.Join(dir, "book.yml"), "json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "book.yml"), got)

	_, err = platform.ResolveDataFile(dir, "toml")
	assert.Error(t, err)

	_, err = platform.ResolveDataFile(" ", "")
	assert.Error(t, err)
}

func TestOpenStorage(t *testing.T) {
	t.Run("FS Creates Directory", func(t *testing.T) {
		dataDir := filepath.Join(t.TempDir(), "data")
		storage, err := platform.OpenStorage(dataDir, platform.WithFormat("yaml"))
		require.NoError(t, err)

		repo, ok := storage.(*fs.Repository)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(dataDir, "addressbook.yaml"), repo.Path)

		info, err := os.Stat(dataDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("SQLite", func(t *testing.T) {
		storage, err := platform.OpenStorage(filepath.Join(t.TempDir(), "rapport.db"), platform.WithAdapter(platform.AdapterSQLite))
		require.NoError(t, err)
		store, ok := storage.(*sqlite.Store)
		require.True(t, ok)
		assert.NoError(t, store.Close())
	})

	t.Run("Unknown Adapter", func(t *testing.T) {
		_, err := platform.OpenStorage(t.TempDir(), platform.WithAdapter("s3"))
		assert.Error(t, err)
	})

	t.Run("Injected Storage Wins", func(t *testing.T) {
		injected := &stubStorage{}
		storage, err := platform.OpenStorage("ignored", platform.WithAdapter("s3"), platform.WithStorage(injected))
		require.NoError(t, err)
		assert.Same(t, injected, storage)
	})
}

type stubStorage struct{}

func (*stubStorage) Initialize(ctx context.Context) error { return nil }
func (*stubStorage) Load(ctx context.Context) (*core.AddressBook, error) {
	return core.NewAddressBook(), core.ErrNoData
}
func (*stubStorage) Save(ctx context.Context, ab core.ReadOnlyAddressBook) error { return nil }
