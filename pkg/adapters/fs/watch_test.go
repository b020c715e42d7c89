package fs_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aretw0/rapport/pkg/adapters/fs"
	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/core/coretest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	repo, _, _ := setupRepo(t, func(c *fs.Config) { c.Debounce = 20 * time.Millisecond })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, repo.Initialize(ctx))
	require.NoError(t, repo.Save(ctx, core.NewAddressBook()))

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	t.Run("Ignores Own Writes", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, coretest.TypicalAddressBook()))
		select {
		case e := <-events:
			t.Fatalf("unexpected event for own write: %v", e)
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("Reports External Edit", func(t *testing.T) {
		require.NoError(t, os.WriteFile(repo.Path, []byte(`{"contacts":[],"meetings":[]}`), 0o644))
		select {
		case e := <-events:
			assert.Equal(t, repo.Path, e.Source)
			assert.NotEqual(t, core.EventDelete, e.Type)
		case <-time.After(3 * time.Second):
			t.Fatal("timed out waiting for event")
		}
	})

	t.Run("Closes On Cancel", func(t *testing.T) {
		cancel()
		deadline := time.After(3 * time.Second)
		for {
			select {
			case _, ok := <-events:
				if !ok {
					return
				}
			case <-deadline:
				t.Fatal("events channel not closed after cancel")
			}
		}
	})
}
