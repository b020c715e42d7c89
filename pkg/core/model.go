package core

// Prefs holds the user preferences the model carries around.
type Prefs struct {
	DataFile string
}

// Model is the API the commands operate on.
type Model interface {
	Prefs() Prefs
	SetPrefs(p Prefs)

	// AddressBook returns the backing store for reading.
	AddressBook() ReadOnlyAddressBook
	// SetAddressBook replaces all data with the contents of ab.
	SetAddressBook(ab ReadOnlyAddressBook)

	// HasContact reports whether a contact with the same identity as c exists.
	HasContact(c Contact) bool
	// AddContact adds c, which must not already exist, and shows all contacts.
	AddContact(c Contact) error
	// DeleteContact removes target, which must exist.
	DeleteContact(target Contact) error
	// SetContact replaces target, which must exist, with edited. The identity of
	// edited must not match another existing contact.
	SetContact(target, edited Contact) error
	// ContactByName looks a contact up by its exact name.
	ContactByName(name Name) (Contact, bool)

	HasMeeting(m Meeting) bool
	AddMeeting(m Meeting) error
	DeleteMeeting(target Meeting) error
	SetMeeting(target, edited Meeting) error

	// FilteredContacts returns the contacts matching the active filter.
	FilteredContacts() []Contact
	// UpdateFilteredContactList replaces the active contact filter.
	UpdateFilteredContactList(p Predicate[Contact])

	// FilteredMeetings returns the meetings matching the active filter.
	FilteredMeetings() []Meeting
	// UpdateFilteredMeetingList replaces the active meeting filter.
	UpdateFilteredMeetingList(p Predicate[Meeting])
}

// ModelManager is the in-memory Model implementation.
type ModelManager struct {
	book          *AddressBook
	prefs         Prefs
	contactFilter Predicate[Contact]
	meetingFilter Predicate[Meeting]
}

// NewModel creates a model over a copy of ab. A nil ab starts empty.
func NewModel(ab ReadOnlyAddressBook, prefs Prefs) *ModelManager {
	book := NewAddressBook()
	if ab != nil {
		book.ResetData(ab)
	}
	return &ModelManager{
		book:          book,
		prefs:         prefs,
		contactFilter: ShowAllContacts,
		meetingFilter: ShowAllMeetings,
	}
}

func (m *ModelManager) Prefs() Prefs     { return m.prefs }
func (m *ModelManager) SetPrefs(p Prefs) { m.prefs = p }

func (m *ModelManager) AddressBook() ReadOnlyAddressBook { return m.book }

func (m *ModelManager) SetAddressBook(ab ReadOnlyAddressBook) {
	m.book.ResetData(ab)
}

// --- Contacts ---

func (m *ModelManager) HasContact(c Contact) bool { return m.book.HasContact(c) }

func (m *ModelManager) AddContact(c Contact) error {
	if err := m.book.AddContact(c); err != nil {
		return err
	}
	m.UpdateFilteredContactList(ShowAllContacts)
	return nil
}

func (m *ModelManager) DeleteContact(target Contact) error {
	return m.book.RemoveContact(target)
}

func (m *ModelManager) SetContact(target, edited Contact) error {
	return m.book.SetContact(target, edited)
}

func (m *ModelManager) ContactByName(name Name) (Contact, bool) {
	return m.book.ContactByName(name)
}

// --- Meetings ---

func (m *ModelManager) HasMeeting(mt Meeting) bool { return m.book.HasMeeting(mt) }

func (m *ModelManager) AddMeeting(mt Meeting) error {
	if err := m.book.AddMeeting(mt); err != nil {
		return err
	}
	m.UpdateFilteredMeetingList(ShowAllMeetings)
	return nil
}

func (m *ModelManager) DeleteMeeting(target Meeting) error {
	return m.book.RemoveMeeting(target)
}

func (m *ModelManager) SetMeeting(target, edited Meeting) error {
	return m.book.SetMeeting(target, edited)
}

// --- Filtered views ---

func (m *ModelManager) FilteredContacts() []Contact {
	return filter(m.book.contacts, m.contactFilter)
}

func (m *ModelManager) UpdateFilteredContactList(p Predicate[Contact]) {
	if p == nil {
		p = ShowAllContacts
	}
	m.contactFilter = p
}

func (m *ModelManager) FilteredMeetings() []Meeting {
	return filter(m.book.meetings, m.meetingFilter)
}

func (m *ModelManager) UpdateFilteredMeetingList(p Predicate[Meeting]) {
	if p == nil {
		p = ShowAllMeetings
	}
	m.meetingFilter = p
}

func filter[T any](items []T, keep Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

var _ Model = (*ModelManager)(nil)
