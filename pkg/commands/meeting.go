package commands

import (
	"errors"
	"fmt"

	"github.com/aretw0/rapport/pkg/core"
)

const (
	WordAddMeeting    = "add meeting"
	WordEditMeeting   = "edit meeting"
	WordDeleteMeeting = "delete meeting"
	WordListMeetings  = "list"
	WordFindMeeting   = "find meeting"
	WordViewMeeting   = "view meeting"
)

const (
	UsageAddMeeting = WordAddMeeting + ": Adds a meeting to the address book. " +
		"Parameters: ti/TITLE tm/dd/MM/yyyy HH:mm pl/PLACE [d/DESCRIPTION] [c/CONTACT_NAME]...\n" +
		"Example: " + WordAddMeeting + " ti/Project sync tm/01/02/2024 10:00 pl/Zoom c/Alice Pauline"
	UsageEditMeeting = WordEditMeeting + ": Edits the meeting identified by the index number used in the " +
		"displayed meeting list.\nParameters: INDEX (must be a positive integer) [ti/TITLE] [tm/TIME] [pl/PLACE] [d/DESCRIPTION]\n" +
		"Example: " + WordEditMeeting + " 1 pl/Room 3"
	UsageDeleteMeeting = WordDeleteMeeting + ": Deletes the meeting identified by the index number used in " +
		"the displayed meeting list.\nParameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordDeleteMeeting + " 1"
	UsageListMeetings = WordListMeetings + ": Lists all meetings."
	UsageFindMeeting  = WordFindMeeting + ": Finds all meetings whose titles contain any of the keywords, " +
		"optionally within a time window.\nParameters: [KEYWORD]... [from/TIME to/TIME] [c/CONTACT_NAME]\n" +
		"Example: " + WordFindMeeting + " sync from/01/01/2024 00:00 to/31/01/2024 23:59"
	UsageViewMeeting = WordViewMeeting + ": Shows the meeting identified by the index number used in the " +
		"displayed meeting list.\nParameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordViewMeeting + " 1"
)

// AddMeeting adds a meeting. Every linked contact must exist.
type AddMeeting struct {
	mutating
	Title       core.Title
	Time        core.MeetingTime
	Place       core.Place
	Description core.Description
	Contacts    []core.Name
}

func (c AddMeeting) Execute(model core.Model, view *View) (Result, error) {
	for _, name := range c.Contacts {
		if _, ok := model.ContactByName(name); !ok {
			return fail(WordAddMeeting, fmt.Errorf("%w: %s", core.ErrUnknownContact, name))
		}
	}
	m := core.NewMeeting(c.Title, c.Time, c.Place, c.Description, core.NoteSet{}, c.Contacts)
	if err := model.AddMeeting(m); err != nil {
		return fail(WordAddMeeting, err)
	}
	return Result{Feedback: fmt.Sprintf("New meeting added: %s", m), List: ListMeetings}, nil
}

// EditMeetingDescriptor holds the fields to change; nil fields are kept.
type EditMeetingDescriptor struct {
	Title       *core.Title
	Time        *core.MeetingTime
	Place       *core.Place
	Description *core.Description
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditMeetingDescriptor) IsAnyFieldEdited() bool {
	return d.Title != nil || d.Time != nil || d.Place != nil || d.Description != nil
}

func (d EditMeetingDescriptor) apply(m core.Meeting) core.Meeting {
	title, at, place, desc := m.Title(), m.Time(), m.Place(), m.Description()
	if d.Title != nil {
		title = *d.Title
	}
	if d.Time != nil {
		at = *d.Time
	}
	if d.Place != nil {
		place = *d.Place
	}
	if d.Description != nil {
		desc = *d.Description
	}
	return m.WithDetails(title, at, place, desc)
}

// EditMeeting replaces fields of a displayed meeting, keeping its id.
type EditMeeting struct {
	mutating
	Index      Index
	Descriptor EditMeetingDescriptor
}

func (c EditMeeting) Execute(model core.Model, view *View) (Result, error) {
	target, err := meetingAt(model, c.Index)
	if err != nil {
		return fail(WordEditMeeting, err)
	}
	edited := c.Descriptor.apply(target)
	if err := model.SetMeeting(target, edited); err != nil {
		return fail(WordEditMeeting, err)
	}
	model.UpdateFilteredMeetingList(core.ShowAllMeetings)
	view.ShowMeeting(edited)
	return Result{Feedback: fmt.Sprintf("Edited Meeting: %s", edited), List: ListMeetings}, nil
}

// DeleteMeeting removes a displayed meeting.
type DeleteMeeting struct {
	mutating
	Index Index
}

func (c DeleteMeeting) Execute(model core.Model, view *View) (Result, error) {
	target, err := meetingAt(model, c.Index)
	if err != nil {
		return fail(WordDeleteMeeting, err)
	}
	if err := model.DeleteMeeting(target); err != nil {
		return fail(WordDeleteMeeting, err)
	}
	view.forgetMeeting(target)
	return Result{Feedback: fmt.Sprintf("Deleted Meeting: %s", target), List: ListMeetings}, nil
}

// ListAllMeetings resets the meeting filter so every meeting is shown.
type ListAllMeetings struct{}

func (ListAllMeetings) Execute(model core.Model, view *View) (Result, error) {
	model.UpdateFilteredMeetingList(core.ShowAllMeetings)
	return Result{Feedback: "Listed all meetings.", List: ListMeetings}, nil
}

// FindMeeting filters the meeting list.
type FindMeeting struct {
	Keywords []string
	From     *core.MeetingTime
	To       *core.MeetingTime
	Contact  *core.Name
}

func (c FindMeeting) Execute(model core.Model, view *View) (Result, error) {
	var preds []core.Predicate[core.Meeting]
	if len(c.Keywords) > 0 {
		preds = append(preds, core.MeetingTitleContains(c.Keywords))
	}
	if c.From != nil && c.To != nil {
		if c.To.Before(*c.From) {
			return fail(WordFindMeeting, errors.New("the start of the time window must not be after its end"))
		}
		preds = append(preds, core.MeetingBetween(*c.From, *c.To))
	}
	if c.Contact != nil {
		preds = append(preds, core.MeetingWithContact(*c.Contact))
	}
	if len(preds) == 0 {
		return fail(WordFindMeeting, errors.New("at least one keyword, time window or contact is required"))
	}
	model.UpdateFilteredMeetingList(core.And(preds...))
	n := len(model.FilteredMeetings())
	return Result{Feedback: fmt.Sprintf("%d meetings listed!", n), List: ListMeetings}, nil
}

// ViewMeeting shows a displayed meeting in detail.
type ViewMeeting struct {
	Index Index
}

func (c ViewMeeting) Execute(model core.Model, view *View) (Result, error) {
	target, err := meetingAt(model, c.Index)
	if err != nil {
		return fail(WordViewMeeting, err)
	}
	view.ShowMeeting(target)
	return Result{Feedback: fmt.Sprintf("Viewing Meeting: %s", target.Title()), List: ListMeetings}, nil
}
