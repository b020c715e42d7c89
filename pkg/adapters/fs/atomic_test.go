package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Replaces Content", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "addressbook.json")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))

		require.NoError(t, writeFileAtomic(target, []byte("new"), 0o644))

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, writeFileAtomic(filepath.Join(dir, "a.yaml"), []byte("x: 1"), 0o600))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), e.Name())
		}
	})

	t.Run("Fails If Directory Missing", func(t *testing.T) {
		err := writeFileAtomic(filepath.Join(t.TempDir(), "missing", "a.json"), []byte("{}"), 0o644)
		assert.Error(t, err)
	})
}
