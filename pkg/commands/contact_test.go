package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rapport/pkg/commands"
	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/core/coretest"
)

func TestAddContact(t *testing.T) {
	model := newModel()
	amy := coretest.NewContactBuilder().Build()

	res, err := commands.AddContact{Contact: amy}.Execute(model, nil)
	require.NoError(t, err)
	assert.Equal(t, "New contact added: "+amy.String(), res.Feedback)

	// same name, different phone -> duplicate
	clash := coretest.FromContact(amy).WithPhone("11111111").Build()
	_, err = commands.AddContact{Contact: clash}.Execute(model, nil)
	assert.ErrorIs(t, err, core.ErrDuplicateContact)
	assert.Len(t, model.FilteredContacts(), 8)
}

func TestEditContact(t *testing.T) {
	t.Run("Edits Fields", func(t *testing.T) {
		model := newModel()
		phone, _ := core.NewPhone("11112222")
		_, err := commands.EditContact{Index: 1, Descriptor: commands.EditContactDescriptor{Phone: &phone}}.Execute(model, nil)
		require.NoError(t, err)
		assert.Equal(t, "11112222", model.FilteredContacts()[0].Phone().String())
		assert.Len(t, model.FilteredContacts()[0].Notes(), 1, "notes are preserved")
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		model := newModel()
		name := coretest.Name("Benson Meier")
		_, err := commands.EditContact{Index: 1, Descriptor: commands.EditContactDescriptor{Name: &name}}.Execute(model, nil)
		assert.ErrorIs(t, err, core.ErrDuplicateContact)
		assert.Equal(t, "Alice Pauline", model.FilteredContacts()[0].Name().String())
	})

	t.Run("Invalid Index In Filtered List", func(t *testing.T) {
		model := newModel()
		model.UpdateFilteredContactList(core.ContactNameContains([]string{"Alice"}))
		name := coretest.Name("Someone Else")
		_, err := commands.EditContact{Index: 2, Descriptor: commands.EditContactDescriptor{Name: &name}}.Execute(model, nil)
		assert.ErrorIs(t, err, commands.ErrInvalidContactIndex)
	})

	t.Run("Clears Tags", func(t *testing.T) {
		model := newModel()
		empty := []core.Tag{}
		_, err := commands.EditContact{Index: 2, Descriptor: commands.EditContactDescriptor{Tags: &empty}}.Execute(model, nil)
		require.NoError(t, err)
		assert.Empty(t, model.FilteredContacts()[1].Tags())
	})
}

func TestDeleteContact(t *testing.T) {
	model := newModel()
	view := &commands.View{}
	alice := model.FilteredContacts()[0]
	view.ShowContact(alice)

	_, err := commands.DeleteContact{Index: 1}.Execute(model, view)
	require.NoError(t, err)
	assert.False(t, model.HasContact(alice))
	_, shown := view.Contact()
	assert.False(t, shown)

	_, err = commands.DeleteContact{Index: 7}.Execute(model, view)
	assert.ErrorIs(t, err, commands.ErrInvalidContactIndex)
}

func TestContactChangesReachShownMeeting(t *testing.T) {
	alice := coretest.Name("Alice Pauline")

	t.Run("Delete Unlinks", func(t *testing.T) {
		model := newModel()
		view := &commands.View{}
		require.True(t, model.FilteredMeetings()[0].HasContact(alice))
		view.ShowMeeting(model.FilteredMeetings()[0])

		_, err := commands.DeleteContact{Index: 1}.Execute(model, view)
		require.NoError(t, err)

		shown, ok := view.Meeting()
		require.True(t, ok)
		assert.False(t, shown.HasContact(alice))
		assert.True(t, shown.Equal(model.FilteredMeetings()[0]))
	})

	t.Run("Rename Relinks", func(t *testing.T) {
		model := newModel()
		view := &commands.View{}
		view.ShowContact(model.FilteredContacts()[0])
		view.ShowMeeting(model.FilteredMeetings()[0])
		renamed := coretest.Name("Alice Tan")

		_, err := commands.EditContact{Index: 1, Descriptor: commands.EditContactDescriptor{Name: &renamed}}.Execute(model, view)
		require.NoError(t, err)

		meeting, ok := view.Meeting()
		require.True(t, ok)
		assert.False(t, meeting.HasContact(alice))
		assert.True(t, meeting.HasContact(renamed))
		contact, ok := view.Contact()
		require.True(t, ok)
		assert.Equal(t, renamed, contact.Name())
	})
}

func TestFindAndListContacts(t *testing.T) {
	model := newModel()

	res, err := commands.FindContact{Keywords: []string{coretest.KeywordMatchingMeier}}.Execute(model, nil)
	require.NoError(t, err)
	assert.Equal(t, "2 contacts listed!", res.Feedback)

	_, err = commands.FindContact{Keywords: []string{"Meier"}, Tags: []string{"owesMoney"}}.Execute(model, nil)
	require.NoError(t, err)
	assert.Len(t, model.FilteredContacts(), 1)

	_, err = commands.ListAllContacts{}.Execute(model, nil)
	require.NoError(t, err)
	assert.Len(t, model.FilteredContacts(), 7)
}

func TestContactNotes(t *testing.T) {
	model := newModel()
	view := &commands.View{}

	_, err := commands.AddContactNote{Index: 1, Content: "Plays chess"}.Execute(model, view)
	require.NoError(t, err)
	notes := model.FilteredContacts()[0].Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "Plays chess", notes[1].Content)

	_, err = commands.DeleteContactNote{Index: 1, NoteIndex: 1}.Execute(model, view)
	require.NoError(t, err)
	notes = model.FilteredContacts()[0].Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "Plays chess", notes[0].Content)
	assert.Equal(t, 1, notes[0].ID)

	_, err = commands.DeleteContactNote{Index: 1, NoteIndex: 5}.Execute(model, view)
	assert.ErrorIs(t, err, commands.ErrInvalidNoteIndex)

	shown, ok := view.Contact()
	require.True(t, ok)
	assert.Equal(t, "Alice Pauline", shown.Name().String())
}

func TestGeneralCommands(t *testing.T) {
	model := newModel()
	view := &commands.View{}
	view.ShowMeeting(model.FilteredMeetings()[0])

	res, err := commands.Clear{}.Execute(model, view)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Feedback)
	assert.Empty(t, model.FilteredContacts())
	assert.Empty(t, model.FilteredMeetings())
	_, shown := view.Meeting()
	assert.False(t, shown)

	res, _ = commands.Help{}.Execute(model, view)
	assert.True(t, res.ShowHelp)
	res, _ = commands.Exit{}.Execute(model, view)
	assert.True(t, res.Exit)
	assert.False(t, commands.Mutates(commands.Exit{}))
	assert.True(t, commands.Mutates(commands.Clear{}))
}
