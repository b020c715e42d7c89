package core

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// sequence hands out process-wide monotonic meeting ids.
type sequence struct {
	last atomic.Int64
}

func (s *sequence) next() int {
	return int(s.last.Add(1))
}

// observe advances the sequence so that next never returns id or anything below it.
func (s *sequence) observe(id int) {
	for {
		cur := s.last.Load()
		if int64(id) <= cur || s.last.CompareAndSwap(cur, int64(id)) {
			return
		}
	}
}

var meetingSequence sequence

// Meeting represents a scheduled event with notes and linked contacts.
// Meetings are immutable and keep their id across edits.
type Meeting struct {
	id          int
	title       Title
	time        MeetingTime
	place       Place
	description Description
	notes       NoteSet
	contacts    []Name
}

// NewMeeting builds a meeting with a fresh id.
func NewMeeting(title Title, at MeetingTime, place Place, desc Description, notes NoteSet, contacts []Name) Meeting {
	return RestoreMeeting(meetingSequence.next(), title, at, place, desc, notes, contacts)
}

// RestoreMeeting rebuilds a meeting with a known id, typically one loaded from
// storage. Ids handed out afterwards by NewMeeting are greater than id.
func RestoreMeeting(id int, title Title, at MeetingTime, place Place, desc Description, notes NoteSet, contacts []Name) Meeting {
	meetingSequence.observe(id)
	return Meeting{
		id:          id,
		title:       title,
		time:        at,
		place:       place,
		description: desc,
		notes:       notes.Clone(),
		contacts:    uniqueNames(contacts),
	}
}

func uniqueNames(names []Name) []Name {
	seen := make(map[Name]struct{}, len(names))
	out := make([]Name, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].value < out[j].value })
	return out
}

func (m Meeting) ID() int                  { return m.id }
func (m Meeting) Title() Title             { return m.title }
func (m Meeting) Time() MeetingTime        { return m.time }
func (m Meeting) Place() Place             { return m.place }
func (m Meeting) Description() Description { return m.description }

// Notes returns an independent copy of the meeting's notes.
func (m Meeting) Notes() NoteSet { return m.notes.Clone() }

// Contacts returns the names of the linked contacts, sorted.
func (m Meeting) Contacts() []Name { return append([]Name(nil), m.contacts...) }

// HasContact reports whether name is linked to the meeting.
func (m Meeting) HasContact(name Name) bool {
	for _, n := range m.contacts {
		if n == name {
			return true
		}
	}
	return false
}

// WithNotes returns a copy of m with its notes replaced.
func (m Meeting) WithNotes(notes NoteSet) Meeting {
	c := m
	c.notes = notes.Clone()
	return c
}

// WithContacts returns a copy of m with its linked contacts replaced.
func (m Meeting) WithContacts(contacts []Name) Meeting {
	c := m
	c.contacts = uniqueNames(contacts)
	return c
}

// WithDetails returns a copy of m with its descriptive fields replaced.
func (m Meeting) WithDetails(title Title, at MeetingTime, place Place, desc Description) Meeting {
	c := m
	c.title, c.time, c.place, c.description = title, at, place, desc
	c.contacts = m.Contacts()
	c.notes = m.notes.Clone()
	return c
}

// IsSameMeeting reports whether both meetings share an id.
func (m Meeting) IsSameMeeting(other Meeting) bool {
	return m.id == other.id
}

// Equal reports whether every field of both meetings matches.
func (m Meeting) Equal(other Meeting) bool {
	if m.id != other.id || m.title != other.title || !m.time.value.Equal(other.time.value) ||
		m.place != other.place || m.description != other.description {
		return false
	}
	if len(m.contacts) != len(other.contacts) {
		return false
	}
	for i := range m.contacts {
		if m.contacts[i] != other.contacts[i] {
			return false
		}
	}
	return m.notes.Equal(other.notes)
}

func (m Meeting) String() string {
	names := make([]string, len(m.contacts))
	for i, n := range m.contacts {
		names[i] = n.value
	}
	return fmt.Sprintf("%s; Time: %s; Place: %s; Description: %s; Notes: %s; Contacts: [%s]",
		m.title, m.time, m.place, m.description, m.notes, strings.Join(names, ", "))
}
