package core

// ReadOnlyAddressBook is the read side of an address book, consumed by storage adapters.
type ReadOnlyAddressBook interface {
	Contacts() []Contact
	Meetings() []Meeting
}

// AddressBook holds every contact and meeting, enforcing uniqueness.
// Contacts are unique by name, meetings by id.
type AddressBook struct {
	contacts []Contact
	meetings []Meeting
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// CopyAddressBook returns a new address book holding the data of src.
func CopyAddressBook(src ReadOnlyAddressBook) *AddressBook {
	ab := NewAddressBook()
	ab.ResetData(src)
	return ab
}

// ResetData replaces the contents of ab with the data of src.
func (ab *AddressBook) ResetData(src ReadOnlyAddressBook) {
	ab.contacts = src.Contacts()
	ab.meetings = src.Meetings()
}

// Contacts returns a copy of the contact list.
func (ab *AddressBook) Contacts() []Contact {
	return append([]Contact(nil), ab.contacts...)
}

// Meetings returns a copy of the meeting list.
func (ab *AddressBook) Meetings() []Meeting {
	return append([]Meeting(nil), ab.meetings...)
}

// --- Contacts ---

func (ab *AddressBook) indexOfContact(c Contact) int {
	for i, existing := range ab.contacts {
		if existing.IsSameContact(c) {
			return i
		}
	}
	return -1
}

// ContactByName returns the contact with the given name.
func (ab *AddressBook) ContactByName(name Name) (Contact, bool) {
	for _, c := range ab.contacts {
		if c.name == name {
			return c, true
		}
	}
	return Contact{}, false
}

// HasContact reports whether a contact with the same identity as c exists.
func (ab *AddressBook) HasContact(c Contact) bool {
	return ab.indexOfContact(c) >= 0
}

// AddContact appends c. It fails if a contact with the same name exists.
func (ab *AddressBook) AddContact(c Contact) error {
	if ab.HasContact(c) {
		return ErrDuplicateContact
	}
	ab.contacts = append(ab.contacts, c)
	return nil
}

// SetContact replaces target with edited. Meetings linked to a renamed
// contact follow the new name.
func (ab *AddressBook) SetContact(target, edited Contact) error {
	i := ab.indexOfContact(target)
	if i < 0 {
		return ErrContactNotFound
	}
	if !target.IsSameContact(edited) && ab.HasContact(edited) {
		return ErrDuplicateContact
	}
	ab.contacts[i] = edited
	if target.name != edited.name {
		ab.relink(target.name, &edited.name)
	}
	return nil
}

// RemoveContact deletes the contact and unlinks it from every meeting.
func (ab *AddressBook) RemoveContact(c Contact) error {
	i := ab.indexOfContact(c)
	if i < 0 {
		return ErrContactNotFound
	}
	ab.contacts = append(ab.contacts[:i:i], ab.contacts[i+1:]...)
	ab.relink(c.name, nil)
	return nil
}

// relink swaps from for to in every meeting; a nil to unlinks.
func (ab *AddressBook) relink(from Name, to *Name) {
	for i, m := range ab.meetings {
		if !m.HasContact(from) {
			continue
		}
		names := make([]Name, 0, len(m.contacts))
		for _, n := range m.contacts {
			switch {
			case n != from:
				names = append(names, n)
			case to != nil:
				names = append(names, *to)
			}
		}
		ab.meetings[i] = m.WithContacts(names)
	}
}

// --- Meetings ---

func (ab *AddressBook) indexOfMeeting(m Meeting) int {
	for i, existing := range ab.meetings {
		if existing.IsSameMeeting(m) {
			return i
		}
	}
	return -1
}

// HasMeeting reports whether a meeting with the same id as m exists.
func (ab *AddressBook) HasMeeting(m Meeting) bool {
	return ab.indexOfMeeting(m) >= 0
}

// AddMeeting appends m. It fails if a meeting with the same id exists.
func (ab *AddressBook) AddMeeting(m Meeting) error {
	if ab.HasMeeting(m) {
		return ErrDuplicateMeeting
	}
	ab.meetings = append(ab.meetings, m)
	return nil
}

// SetMeeting replaces target with edited.
func (ab *AddressBook) SetMeeting(target, edited Meeting) error {
	i := ab.indexOfMeeting(target)
	if i < 0 {
		return ErrMeetingNotFound
	}
	if !target.IsSameMeeting(edited) && ab.HasMeeting(edited) {
		return ErrDuplicateMeeting
	}
	ab.meetings[i] = edited
	return nil
}

// RemoveMeeting deletes the meeting.
func (ab *AddressBook) RemoveMeeting(m Meeting) error {
	i := ab.indexOfMeeting(m)
	if i < 0 {
		return ErrMeetingNotFound
	}
	ab.meetings = append(ab.meetings[:i:i], ab.meetings[i+1:]...)
	return nil
}

var _ ReadOnlyAddressBook = (*AddressBook)(nil)
