package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if !IsInstalled() {
		t.Skip("git not installed")
	}
	t.Setenv("GIT_AUTHOR_NAME", "Rapport Test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@rapport.local")
	t.Setenv("GIT_COMMITTER_NAME", "Rapport Test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@rapport.local")
}

func TestClient_Lock(t *testing.T) {
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, "", nil)

	unlock, err := client.Lock(context.Background())
	require.NoError(t, err)

	lockPath := filepath.Join(tmpDir, ".rapport.lock")
	_, err = os.Stat(lockPath)
	require.NoError(t, err, "lock file not created")

	t.Run("Contention Times Out", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := client.Lock(ctx)
		assert.ErrorIs(t, err, ErrLockTimeout)
	})

	unlock()

	_, err = os.Stat(lockPath)
	assert.True(t, os.IsNotExist(err), "lock file not removed after unlock")
}

func TestClient_InitAndCommit(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, "", nil)

	require.NoError(t, client.Init(ctx))
	assert.True(t, client.IsRepo(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "addressbook.json"), []byte("{}"), 0o644))
	require.NoError(t, client.Add(ctx, "addressbook.json"))
	require.NoError(t, client.Commit(ctx, "chore(data): first"))

	// Nothing staged: no error, no new commit.
	require.NoError(t, client.Commit(ctx, "chore(data): empty"))

	log, err := client.Log(ctx, 5, "addressbook.json")
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Contains(t, log[0], "chore(data): first")
}
