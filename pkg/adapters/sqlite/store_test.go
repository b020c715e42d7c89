package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/core/coretest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, path string, readOnly bool) *Store {
	t.Helper()
	store, err := Open(Config{Path: path, ReadOnly: readOnly})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(Config{})
	assert.Error(t, err)
}

func TestInitializeCreatesTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rapport.db")
	store := openStore(t, path, false)
	require.NoError(t, store.Initialize(context.Background()))

	sqlDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer sqlDB.Close()

	for _, table := range []string{"contacts", "meetings"} {
		var name string
		err := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestLoadEmpty(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "rapport.db"), false)
	require.NoError(t, store.Initialize(context.Background()))

	ab, err := store.Load(context.Background())
	assert.ErrorIs(t, err, core.ErrNoData)
	require.NotNil(t, ab)
	assert.Empty(t, ab.Contacts())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "rapport.db"), false)
	require.NoError(t, store.Initialize(ctx))

	book := coretest.TypicalAddressBook()
	require.NoError(t, store.Save(ctx, book))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, coretest.EqualBooks(book, loaded))

	t.Run("Save Replaces Rows", func(t *testing.T) {
		smaller := core.CopyAddressBook(book)
		require.NoError(t, smaller.RemoveMeeting(smaller.Meetings()[0]))
		require.NoError(t, store.Save(ctx, smaller))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, loaded.Meetings(), len(book.Meetings())-1)
		assert.True(t, coretest.EqualBooks(smaller, loaded))
	})
}

func TestReadOnly(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rapport.db")

	writer := openStore(t, path, false)
	require.NoError(t, writer.Initialize(ctx))
	require.NoError(t, writer.Save(ctx, coretest.TypicalAddressBook()))

	reader := openStore(t, path, true)
	require.NoError(t, reader.Initialize(ctx))
	ab, err := reader.Load(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, ab.Contacts())

	assert.ErrorIs(t, reader.Save(ctx, ab), core.ErrReadOnly)

	st, ok := reader.State().(StoreState)
	require.True(t, ok)
	assert.True(t, st.ReadOnly)
}
