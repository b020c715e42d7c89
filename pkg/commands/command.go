// Package commands implements one type per user action. Each command runs
// against a core.Model and reports a Result or an error; on error the model is
// left exactly as it was before the command ran.
package commands

import (
	"errors"

	"github.com/aretw0/rapport/pkg/core"
)

// ListType tells the presentation layer which list to show after a command.
type ListType int

const (
	ListUnchanged ListType = iota
	ListContacts
	ListMeetings
)

func (l ListType) String() string {
	switch l {
	case ListContacts:
		return "contacts"
	case ListMeetings:
		return "meetings"
	default:
		return "unchanged"
	}
}

// Result is the outcome of a successful command.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
	List     ListType
}

// Command is a single executable user action.
type Command interface {
	Execute(model core.Model, view *View) (Result, error)
}

// Mutator is implemented by commands that change the address book and
// therefore require the data to be saved afterwards.
type Mutator interface {
	Mutates() bool
}

// Mutates reports whether cmd changes the address book.
func Mutates(cmd Command) bool {
	m, ok := cmd.(Mutator)
	return ok && m.Mutates()
}

// mutating is embedded by commands that change the address book.
type mutating struct{}

func (mutating) Mutates() bool { return true }

// Index is a 1-based position in a displayed list.
type Index int

// Zero returns the 0-based offset.
func (i Index) Zero() int { return int(i) - 1 }

// Errors reported for references to list positions that are not displayed.
var (
	ErrInvalidContactIndex = errors.New("the contact index provided is invalid")
	ErrInvalidMeetingIndex = errors.New("the meeting index provided is invalid")
	ErrInvalidNoteIndex    = errors.New("the note index provided is invalid")
	ErrNotLinked           = errors.New("this contact is not linked to the meeting")
	ErrAlreadyLinked       = errors.New("this contact is already linked to the meeting")
)

// Error wraps a failure with the command word that produced it.
type Error struct {
	Command string
	Err     error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func fail(word string, err error) (Result, error) {
	return Result{}, &Error{Command: word, Err: err}
}

func contactAt(model core.Model, idx Index) (core.Contact, error) {
	shown := model.FilteredContacts()
	if idx.Zero() < 0 || idx.Zero() >= len(shown) {
		return core.Contact{}, ErrInvalidContactIndex
	}
	return shown[idx.Zero()], nil
}

func meetingAt(model core.Model, idx Index) (core.Meeting, error) {
	shown := model.FilteredMeetings()
	if idx.Zero() < 0 || idx.Zero() >= len(shown) {
		return core.Meeting{}, ErrInvalidMeetingIndex
	}
	return shown[idx.Zero()], nil
}
