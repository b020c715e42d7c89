package commands

import (
	"fmt"

	"github.com/aretw0/rapport/pkg/core"
)

const (
	WordLink   = "link"
	WordUnlink = "unlink"
)

const (
	UsageLink = WordLink + ": Links a contact to the meeting identified by the index number used in the " +
		"displayed meeting list.\nParameters: i/INDEX c/CONTACT_NAME\n" +
		"Example: " + WordLink + " i/1 c/Alice Pauline"
	UsageUnlink = WordUnlink + ": Removes a contact from the meeting identified by the index number used " +
		"in the displayed meeting list.\nParameters: i/INDEX c/CONTACT_NAME\n" +
		"Example: " + WordUnlink + " i/1 c/Alice Pauline"
)

// Link attaches an existing contact to a displayed meeting.
type Link struct {
	mutating
	Index   Index
	Contact core.Name
}

func (c Link) Execute(model core.Model, view *View) (Result, error) {
	target, err := meetingAt(model, c.Index)
	if err != nil {
		return fail(WordLink, err)
	}
	if _, ok := model.ContactByName(c.Contact); !ok {
		return fail(WordLink, fmt.Errorf("%w: %s", core.ErrUnknownContact, c.Contact))
	}
	if target.HasContact(c.Contact) {
		return fail(WordLink, ErrAlreadyLinked)
	}
	edited := target.WithContacts(append(target.Contacts(), c.Contact))
	if err := model.SetMeeting(target, edited); err != nil {
		return fail(WordLink, err)
	}
	model.UpdateFilteredMeetingList(core.ShowAllMeetings)
	view.ShowMeeting(edited)
	return Result{Feedback: fmt.Sprintf("Linked %s to Meeting: %s", c.Contact, edited.Title()), List: ListMeetings}, nil
}

// Unlink detaches a contact from a displayed meeting.
type Unlink struct {
	mutating
	Index   Index
	Contact core.Name
}

func (c Unlink) Execute(model core.Model, view *View) (Result, error) {
	target, err := meetingAt(model, c.Index)
	if err != nil {
		return fail(WordUnlink, err)
	}
	if !target.HasContact(c.Contact) {
		return fail(WordUnlink, ErrNotLinked)
	}
	var names []core.Name
	for _, n := range target.Contacts() {
		if n != c.Contact {
			names = append(names, n)
		}
	}
	edited := target.WithContacts(names)
	if err := model.SetMeeting(target, edited); err != nil {
		return fail(WordUnlink, err)
	}
	model.UpdateFilteredMeetingList(core.ShowAllMeetings)
	view.ShowMeeting(edited)
	return Result{Feedback: fmt.Sprintf("Unlinked %s from Meeting: %s", c.Contact, edited.Title()), List: ListMeetings}, nil
}
