package commands_test

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rapport/pkg/commands"
	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/core/coretest"
)

func newModel() *core.ModelManager {
	return core.NewModel(coretest.TypicalAddressBook(), core.Prefs{})
}

func TestDeleteMeetingNote_RemovesNote(t *testing.T) {
	model := newModel()
	view := &commands.View{}
	before := model.FilteredMeetings()[0]
	require.Equal(t, 2, before.Notes().Len())

	res, err := commands.DeleteMeetingNote{Index: 1, NoteID: 1}.Execute(model, view)
	require.NoError(t, err)

	after := model.FilteredMeetings()[0]
	assert.Equal(t, 1, after.Notes().Len())
	_, ok := after.Notes().Get(1)
	assert.False(t, ok)
	assert.Equal(t, before.ID(), after.ID())
	assert.Equal(t, before.Title(), after.Title())
	assert.Equal(t, before.Contacts(), after.Contacts())

	assert.Equal(t, fmt.Sprintf("Removed note from Meeting: %s", after), res.Feedback)
	assert.Equal(t, commands.ListMeetings, res.List)
	assert.False(t, res.Exit)

	shown, ok := view.Meeting()
	require.True(t, ok)
	assert.True(t, shown.Equal(after))
}

func TestDeleteMeetingNote_AbsentIDIsNoop(t *testing.T) {
	model := newModel()
	before := model.FilteredMeetings()[0]

	_, err := commands.DeleteMeetingNote{Index: 1, NoteID: 99}.Execute(model, &commands.View{})
	require.NoError(t, err)

	assert.True(t, model.FilteredMeetings()[0].Equal(before))
}

func TestDeleteMeetingNote_InvalidIndex(t *testing.T) {
	model := newModel()
	model.UpdateFilteredMeetingList(core.MeetingTitleContains([]string{"CS2103"}))
	snapshot := core.CopyAddressBook(model.AddressBook())

	_, err := commands.DeleteMeetingNote{Index: 2, NoteID: 1}.Execute(model, &commands.View{})
	assert.ErrorIs(t, err, commands.ErrInvalidMeetingIndex)

	var cmdErr *commands.Error
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, commands.WordDeleteMeetingNote, cmdErr.Command)

	for i, m := range model.AddressBook().Meetings() {
		assert.True(t, m.Equal(snapshot.Meetings()[i]))
	}
	assert.Len(t, model.FilteredMeetings(), 1, "filter is untouched on failure")
}

func TestDeleteMeetingNote_ResetsFilter(t *testing.T) {
	model := newModel()
	model.UpdateFilteredMeetingList(core.MeetingTitleContains([]string{"GES2001"}))

	_, err := commands.DeleteMeetingNote{Index: 1, NoteID: 1}.Execute(model, &commands.View{})
	require.NoError(t, err)
	assert.Len(t, model.FilteredMeetings(), 4)
}

func TestProperty_DeleteMeetingNote(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	build := func(n int) (*core.ModelManager, core.Meeting) {
		contents := make([]string, n)
		for i := range contents {
			contents[i] = fmt.Sprintf("note %d", i+1)
		}
		m := coretest.NewMeetingBuilder().WithNotes(contents...).WithContacts("Alice Pauline").Build()
		ab := core.NewAddressBook()
		_ = ab.AddContact(coretest.NewContactBuilder().WithName("Alice Pauline").Build())
		_ = ab.AddMeeting(m)
		return core.NewModel(ab, core.Prefs{}), m
	}

	properties.Property("deleting an absent id leaves the notes unchanged", prop.ForAll(
		func(n, offset int) bool {
			model, m := build(n)
			_, err := commands.DeleteMeetingNote{Index: 1, NoteID: n + offset}.Execute(model, nil)
			return err == nil && model.FilteredMeetings()[0].Notes().Equal(m.Notes())
		},
		gen.IntRange(0, 10),
		gen.IntRange(1, 50),
	))

	properties.Property("deleting a present id removes exactly that note", prop.ForAll(
		func(n, pick int) bool {
			id := pick%n + 1
			model, m := build(n)
			if _, err := (commands.DeleteMeetingNote{Index: 1, NoteID: id}).Execute(model, nil); err != nil {
				return false
			}
			after := model.FilteredMeetings()[0]
			_, stillThere := after.Notes().Get(id)
			return after.Notes().Len() == n-1 &&
				!stillThere &&
				after.WithNotes(m.Notes()).Equal(m)
		},
		gen.IntRange(1, 10),
		gen.IntRange(0, 100),
	))

	properties.Property("out-of-range indexes fail without changes", prop.ForAll(
		func(idx int) bool {
			model, m := build(3)
			_, err := commands.DeleteMeetingNote{Index: commands.Index(idx), NoteID: 1}.Execute(model, nil)
			return err != nil && model.AddressBook().Meetings()[0].Equal(m)
		},
		gen.IntRange(2, 100),
	))

	properties.TestingRun(t)
}

func TestAddMeetingNote(t *testing.T) {
	model := newModel()
	view := &commands.View{}

	_, err := commands.AddMeetingNote{Index: 1, Content: "Agenda"}.Execute(model, view)
	require.NoError(t, err)

	notes := model.FilteredMeetings()[0].Notes()
	n, ok := notes.Get(3)
	require.True(t, ok)
	assert.Equal(t, "Agenda", n.Content)

	_, err = commands.AddMeetingNote{Index: 1, Content: "  "}.Execute(model, view)
	assert.ErrorIs(t, err, core.ErrInvalidField)
}
