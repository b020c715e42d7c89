package commands

import (
	"fmt"

	"github.com/aretw0/rapport/pkg/core"
)

const (
	WordAddMeetingNote    = "add note"
	WordDeleteMeetingNote = "delete note"
)

const (
	UsageAddMeetingNote = WordAddMeetingNote + ": Adds a note to the meeting identified by the index number " +
		"used in the displayed meeting list.\nParameters: i/INDEX note/NOTE\n" +
		"Example: " + WordAddMeetingNote + " i/1 note/Bring slides"
	UsageDeleteMeetingNote = WordDeleteMeetingNote + ": Deletes the note of the meeting identified by the " +
		"index number used in the displayed meeting list.\nParameters: i/INDEX (must be a positive integer) n/NOTE_ID\n" +
		"Example: " + WordDeleteMeetingNote + " i/1 n/1"
)

// AddMeetingNote adds a note with the next free id to a displayed meeting.
type AddMeetingNote struct {
	mutating
	Index   Index
	Content string
}

func (c AddMeetingNote) Execute(model core.Model, view *View) (Result, error) {
	target, err := meetingAt(model, c.Index)
	if err != nil {
		return fail(WordAddMeetingNote, err)
	}
	note, err := core.NewNote(0, c.Content)
	if err != nil {
		return fail(WordAddMeetingNote, err)
	}
	notes, _ := target.Notes().Add(note)
	edited := target.WithNotes(notes)
	if err := model.SetMeeting(target, edited); err != nil {
		return fail(WordAddMeetingNote, err)
	}
	model.UpdateFilteredMeetingList(core.ShowAllMeetings)
	view.ShowMeeting(edited)
	return Result{Feedback: fmt.Sprintf("Added note to Meeting: %s", edited), List: ListMeetings}, nil
}

// DeleteMeetingNote removes the note with NoteID from a displayed meeting.
// An id that matches no note leaves the notes unchanged and still succeeds.
type DeleteMeetingNote struct {
	mutating
	Index  Index
	NoteID int
}

func (c DeleteMeetingNote) Execute(model core.Model, view *View) (Result, error) {
	target, err := meetingAt(model, c.Index)
	if err != nil {
		return fail(WordDeleteMeetingNote, err)
	}
	edited := target.WithNotes(target.Notes().Remove(c.NoteID))
	if err := model.SetMeeting(target, edited); err != nil {
		return fail(WordDeleteMeetingNote, err)
	}
	model.UpdateFilteredMeetingList(core.ShowAllMeetings)
	view.ShowMeeting(edited)
	return Result{Feedback: fmt.Sprintf("Removed note from Meeting: %s", edited), List: ListMeetings}, nil
}
