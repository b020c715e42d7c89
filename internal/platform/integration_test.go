package platform_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/rapport/internal/platform"
	"github.com/aretw0/rapport/pkg/commands"
	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PersistsAcrossSessions(t *testing.T) {
	for _, adapter := range []string{platform.AdapterFS, platform.AdapterSQLite} {
		t.Run(adapter, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "data")
			if adapter == platform.AdapterSQLite {
				path = filepath.Join(path, "rapport.db")
			}
			opts := []platform.Option{platform.WithAdapter(adapter), platform.WithAutoInit(true)}

			mgr, err := platform.New(path, opts...)
			require.NoError(t, err)
			_, err = mgr.Execute(ctx, "add contact n/Amy Bee p/85355255 e/amy@example.com t/friend")
			require.NoError(t, err)
			_, err = mgr.Execute(ctx, "add meeting ti/Lunch tm/02/03/2023 12:00 pl/Canteen c/Amy Bee")
			require.NoError(t, err)
			_, err = mgr.Execute(ctx, "add note i/1 note/Order ahead")
			require.NoError(t, err)
			require.NoError(t, mgr.Close())

			reopened, err := platform.New(path, opts...)
			require.NoError(t, err)
			defer reopened.Close()

			reopened.Snapshot(func(model core.Model, _ *commands.View) {
				require.Len(t, model.FilteredContacts(), 1)
				require.Len(t, model.FilteredMeetings(), 1)
				m := model.FilteredMeetings()[0]
				assert.Equal(t, "Lunch", m.Title().String())
				assert.Equal(t, 1, m.Notes().Len())
				assert.True(t, m.HasContact(model.FilteredContacts()[0].Name()))
			})
		})
	}
}

func TestNew_VersionedHistory(t *testing.T) {
	if !git.IsInstalled() {
		t.Skip("git not installed")
	}
	t.Setenv("GIT_AUTHOR_NAME", "Rapport Test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@rapport.local")
	t.Setenv("GIT_COMMITTER_NAME", "Rapport Test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@rapport.local")

	ctx := context.Background()
	mgr, err := platform.New(filepath.Join(t.TempDir(), "addressbook.json"),
		platform.WithAutoInit(true), platform.WithVersioning(true))
	require.NoError(t, err)

	_, err = mgr.Execute(ctx, "add contact n/Amy Bee p/85355255 e/amy@example.com")
	require.NoError(t, err)
	_, err = mgr.Execute(ctx, "delete contact 1")
	require.NoError(t, err)

	history, err := mgr.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Contains(t, history[0], "chore(data): delete contact 1")
	assert.Contains(t, history[1], "chore(data): add contact n/Amy Bee")
}

func TestNew_ReadOnlyRejectsChanges(t *testing.T) {
	mgr, err := platform.New(filepath.Join(t.TempDir(), "addressbook.json"), platform.WithReadOnly(true))
	require.NoError(t, err)

	_, err = mgr.Execute(context.Background(), "add contact n/Amy Bee p/85355255 e/amy@example.com")
	assert.ErrorIs(t, err, core.ErrReadOnly)
}
