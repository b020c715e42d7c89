package core

import (
	"fmt"
	"sort"
	"strings"
)

// Note is a short text annotation attached to a contact or a meeting.
type Note struct {
	ID      int
	Content string
}

// NewNote validates the content and builds a Note. An id of 0 means
// "unassigned"; NoteSet.Add picks the next free id for it.
func NewNote(id int, content string) (Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Note{}, &ValidationError{Field: "note", Value: content, Constraint: "notes should not be blank"}
	}
	if id < 0 {
		return Note{}, &ValidationError{Field: "note id", Value: fmt.Sprint(id), Constraint: "note ids should be positive"}
	}
	return Note{ID: id, Content: content}, nil
}

func (n Note) String() string {
	return fmt.Sprintf("[%d] %s", n.ID, n.Content)
}

// NoteSet holds the notes of a meeting keyed by note id.
// The zero value is an empty set. NoteSet values are never mutated in place:
// every modifier returns a new set.
type NoteSet struct {
	notes map[int]Note
}

// NewNoteSet builds a set from notes. A later note replaces an earlier one
// with the same id; notes with id 0 get the next free id.
func NewNoteSet(notes ...Note) NoteSet {
	s := NoteSet{notes: make(map[int]Note, len(notes))}
	for _, n := range notes {
		s.put(n)
	}
	return s
}

func (s *NoteSet) put(n Note) Note {
	if n.ID == 0 {
		n.ID = s.NextID()
	}
	s.notes[n.ID] = n
	return n
}

// NextID returns the smallest id greater than every id in the set.
func (s NoteSet) NextID() int {
	next := 1
	for id := range s.notes {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// Add returns a copy of s containing n, and n as stored (with its id assigned).
func (s NoteSet) Add(n Note) (NoteSet, Note) {
	c := s.Clone()
	stored := c.put(n)
	return c, stored
}

// Remove returns a copy of s without the note identified by id.
// If no such note exists the copy equals s.
func (s NoteSet) Remove(id int) NoteSet {
	c := s.Clone()
	delete(c.notes, id)
	return c
}

// Get returns the note with the given id.
func (s NoteSet) Get(id int) (Note, bool) {
	n, ok := s.notes[id]
	return n, ok
}

// Len returns the number of notes.
func (s NoteSet) Len() int { return len(s.notes) }

// Sorted returns the notes ordered by ascending id.
func (s NoteSet) Sorted() []Note {
	out := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Clone returns an independent copy of s.
func (s NoteSet) Clone() NoteSet {
	c := NoteSet{notes: make(map[int]Note, len(s.notes))}
	for id, n := range s.notes {
		c.notes[id] = n
	}
	return c
}

// Equal reports whether both sets hold the same notes.
func (s NoteSet) Equal(other NoteSet) bool {
	if len(s.notes) != len(other.notes) {
		return false
	}
	for id, n := range s.notes {
		if o, ok := other.notes[id]; !ok || o != n {
			return false
		}
	}
	return true
}

func (s NoteSet) String() string {
	parts := make([]string, 0, len(s.notes))
	for _, n := range s.Sorted() {
		parts = append(parts, n.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
