package commands

import (
	"fmt"

	"github.com/aretw0/rapport/pkg/core"
)

const (
	WordAddContactNote    = "add contact note"
	WordDeleteContactNote = "delete contact note"
)

const (
	UsageAddContactNote = WordAddContactNote + ": Adds a note to the contact identified by the index number " +
		"used in the displayed contact list.\nParameters: i/INDEX note/NOTE\n" +
		"Example: " + WordAddContactNote + " i/1 note/Likes coffee"
	UsageDeleteContactNote = WordDeleteContactNote + ": Deletes a note of the contact identified by the index " +
		"number used in the displayed contact list.\nParameters: i/INDEX n/NOTE_INDEX\n" +
		"Example: " + WordDeleteContactNote + " i/1 n/2"
)

// AddContactNote appends a note to a displayed contact.
type AddContactNote struct {
	mutating
	Index   Index
	Content string
}

func (c AddContactNote) Execute(model core.Model, view *View) (Result, error) {
	target, err := contactAt(model, c.Index)
	if err != nil {
		return fail(WordAddContactNote, err)
	}
	notes := target.Notes()
	note, err := core.NewNote(len(notes)+1, c.Content)
	if err != nil {
		return fail(WordAddContactNote, err)
	}
	edited := target.WithNotes(append(notes, note))
	if err := model.SetContact(target, edited); err != nil {
		return fail(WordAddContactNote, err)
	}
	model.UpdateFilteredContactList(core.ShowAllContacts)
	view.ShowContact(edited)
	return Result{Feedback: fmt.Sprintf("Added note to Contact: %s", edited), List: ListContacts}, nil
}

// DeleteContactNote removes the note at a 1-based position from a displayed contact.
type DeleteContactNote struct {
	mutating
	Index     Index
	NoteIndex Index
}

func (c DeleteContactNote) Execute(model core.Model, view *View) (Result, error) {
	target, err := contactAt(model, c.Index)
	if err != nil {
		return fail(WordDeleteContactNote, err)
	}
	notes := target.Notes()
	i := c.NoteIndex.Zero()
	if i < 0 || i >= len(notes) {
		return fail(WordDeleteContactNote, ErrInvalidNoteIndex)
	}
	remaining := make([]core.Note, 0, len(notes)-1)
	for j, n := range notes {
		if j == i {
			continue
		}
		n.ID = len(remaining) + 1
		remaining = append(remaining, n)
	}
	edited := target.WithNotes(remaining)
	if err := model.SetContact(target, edited); err != nil {
		return fail(WordDeleteContactNote, err)
	}
	model.UpdateFilteredContactList(core.ShowAllContacts)
	view.ShowContact(edited)
	return Result{Feedback: fmt.Sprintf("Removed note from Contact: %s", edited), List: ListContacts}, nil
}
