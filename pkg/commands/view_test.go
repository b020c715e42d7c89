package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rapport/pkg/commands"
	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/core/coretest"
)

func TestView_NilIsSafe(t *testing.T) {
	var view *commands.View
	view.ShowMeeting(coretest.NewMeetingBuilder().Build())
	view.Clear()
	view.Refresh(newModel())

	_, ok := view.Meeting()
	assert.False(t, ok)
}

func TestView_Refresh(t *testing.T) {
	model := newModel()
	view := &commands.View{}
	contact := model.FilteredContacts()[0]
	meeting := model.FilteredMeetings()[0]
	view.ShowContact(contact)
	view.ShowMeeting(meeting)

	t.Run("picks up edits", func(t *testing.T) {
		edited := meeting.WithNotes(core.NewNoteSet())
		require.NoError(t, model.SetMeeting(meeting, edited))

		view.Refresh(model)
		shown, ok := view.Meeting()
		require.True(t, ok)
		assert.Equal(t, 0, shown.Notes().Len())
	})

	t.Run("drops removed entries", func(t *testing.T) {
		model.SetAddressBook(core.NewAddressBook())

		view.Refresh(model)
		_, ok := view.Contact()
		assert.False(t, ok)
		_, ok = view.Meeting()
		assert.False(t, ok)
	})
}
