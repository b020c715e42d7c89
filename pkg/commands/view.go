package commands

import "github.com/aretw0/rapport/pkg/core"

// View is the presentation context commands write to: which contact and
// which meeting are currently shown in detail. It is owned by the caller
// (the shell) and passed to every command.
type View struct {
	contact *core.Contact
	meeting *core.Meeting
}

// ShowContact puts c in the contact detail slot.
func (v *View) ShowContact(c core.Contact) {
	if v != nil {
		v.contact = &c
	}
}

// ShowMeeting puts m in the meeting detail slot.
func (v *View) ShowMeeting(m core.Meeting) {
	if v != nil {
		v.meeting = &m
	}
}

// Contact returns the contact in detail, if any.
func (v *View) Contact() (core.Contact, bool) {
	if v == nil || v.contact == nil {
		return core.Contact{}, false
	}
	return *v.contact, true
}

// Meeting returns the meeting in detail, if any.
func (v *View) Meeting() (core.Meeting, bool) {
	if v == nil || v.meeting == nil {
		return core.Meeting{}, false
	}
	return *v.meeting, true
}

// Clear empties both slots.
func (v *View) Clear() {
	if v != nil {
		v.contact, v.meeting = nil, nil
	}
}

// forgetMeeting clears the meeting slot when it shows m.
func (v *View) forgetMeeting(m core.Meeting) {
	if cur, ok := v.Meeting(); ok && cur.IsSameMeeting(m) {
		v.meeting = nil
	}
}

// Refresh re-reads both slots from model, dropping entries that no longer exist.
func (v *View) Refresh(model core.Model) {
	if v == nil {
		return
	}
	if c, ok := v.Contact(); ok {
		v.contact = nil
		if fresh, found := model.ContactByName(c.Name()); found {
			v.contact = &fresh
		}
	}
	if m, ok := v.Meeting(); ok {
		v.meeting = nil
		for _, fresh := range model.AddressBook().Meetings() {
			if fresh.IsSameMeeting(m) {
				v.meeting = &fresh
				break
			}
		}
	}
}
