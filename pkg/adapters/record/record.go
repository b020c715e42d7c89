// Package record holds the serializable shape of the address book shared by
// the storage adapters.
package record

import (
	"fmt"

	"github.com/aretw0/rapport/pkg/core"
)

// Book is the on-disk shape of an address book.
type Book struct {
	Contacts []Contact `json:"contacts" yaml:"contacts"`
	Meetings []Meeting `json:"meetings" yaml:"meetings"`
}

type Note struct {
	ID      int    `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
}

type Contact struct {
	Name  string   `json:"name" yaml:"name"`
	Phone string   `json:"phone" yaml:"phone"`
	Email string   `json:"email" yaml:"email"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Notes []Note   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

type Meeting struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Time        string   `json:"time" yaml:"time"`
	Place       string   `json:"place" yaml:"place"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Notes       []Note   `json:"notes,omitempty" yaml:"notes,omitempty"`
	Contacts    []string `json:"contacts,omitempty" yaml:"contacts,omitempty"`
}

// FromAddressBook converts an address book into its serializable form.
func FromAddressBook(ab core.ReadOnlyAddressBook) Book {
	rec := Book{Contacts: []Contact{}, Meetings: []Meeting{}}
	for _, c := range ab.Contacts() {
		rec.Contacts = append(rec.Contacts, FromContact(c))
	}
	for _, m := range ab.Meetings() {
		rec.Meetings = append(rec.Meetings, FromMeeting(m))
	}
	return rec
}

// FromContact converts a single contact.
func FromContact(c core.Contact) Contact {
	cr := Contact{Name: c.Name().String(), Phone: c.Phone().String(), Email: c.Email().String()}
	for _, t := range c.Tags() {
		cr.Tags = append(cr.Tags, t.String())
	}
	for _, n := range c.Notes() {
		cr.Notes = append(cr.Notes, Note{ID: n.ID, Content: n.Content})
	}
	return cr
}

// FromMeeting converts a single meeting. Notes are ordered by id.
func FromMeeting(m core.Meeting) Meeting {
	mr := Meeting{
		ID:          m.ID(),
		Title:       m.Title().String(),
		Time:        m.Time().String(),
		Place:       m.Place().String(),
		Description: m.Description().String(),
	}
	for _, n := range m.Notes().Sorted() {
		mr.Notes = append(mr.Notes, Note{ID: n.ID, Content: n.Content})
	}
	for _, name := range m.Contacts() {
		mr.Contacts = append(mr.Contacts, name.String())
	}
	return mr
}

// AddressBook validates every field and rebuilds the address book.
func (rec Book) AddressBook() (*core.AddressBook, error) {
	ab := core.NewAddressBook()
	for i, cr := range rec.Contacts {
		c, err := cr.ToContact()
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", i+1, err)
		}
		if err := ab.AddContact(c); err != nil {
			return nil, fmt.Errorf("contact %d: %w", i+1, err)
		}
	}
	for i, mr := range rec.Meetings {
		m, err := mr.ToMeeting()
		if err != nil {
			return nil, fmt.Errorf("meeting %d: %w", i+1, err)
		}
		for _, name := range m.Contacts() {
			if _, ok := ab.ContactByName(name); !ok {
				return nil, fmt.Errorf("meeting %d: %w: %s", i+1, core.ErrUnknownContact, name)
			}
		}
		if err := ab.AddMeeting(m); err != nil {
			return nil, fmt.Errorf("meeting %d: %w", i+1, err)
		}
	}
	return ab, nil
}

func (cr Contact) ToContact() (core.Contact, error) {
	name, err := core.NewName(cr.Name)
	if err != nil {
		return core.Contact{}, err
	}
	phone, err := core.NewPhone(cr.Phone)
	if err != nil {
		return core.Contact{}, err
	}
	email, err := core.NewEmail(cr.Email)
	if err != nil {
		return core.Contact{}, err
	}
	tags := make([]core.Tag, 0, len(cr.Tags))
	for _, t := range cr.Tags {
		tag, err := core.NewTag(t)
		if err != nil {
			return core.Contact{}, err
		}
		tags = append(tags, tag)
	}
	notes := make([]core.Note, 0, len(cr.Notes))
	for i, n := range cr.Notes {
		note, err := core.NewNote(i+1, n.Content)
		if err != nil {
			return core.Contact{}, err
		}
		notes = append(notes, note)
	}
	return core.NewContact(name, phone, email, tags, notes), nil
}

func (mr Meeting) ToMeeting() (core.Meeting, error) {
	if mr.ID <= 0 {
		return core.Meeting{}, &core.ValidationError{Field: "meeting id", Value: fmt.Sprint(mr.ID), Constraint: "meeting ids should be positive"}
	}
	title, err := core.NewTitle(mr.Title)
	if err != nil {
		return core.Meeting{}, err
	}
	at, err := core.NewMeetingTime(mr.Time)
	if err != nil {
		return core.Meeting{}, err
	}
	place, err := core.NewPlace(mr.Place)
	if err != nil {
		return core.Meeting{}, err
	}
	notes := make([]core.Note, 0, len(mr.Notes))
	seen := make(map[int]bool, len(mr.Notes))
	for _, n := range mr.Notes {
		note, err := core.NewNote(n.ID, n.Content)
		if err != nil {
			return core.Meeting{}, err
		}
		if note.ID == 0 || seen[note.ID] {
			return core.Meeting{}, &core.ValidationError{Field: "note id", Value: fmt.Sprint(n.ID), Constraint: "note ids should be positive and unique within a meeting"}
		}
		seen[note.ID] = true
		notes = append(notes, note)
	}
	names := make([]core.Name, 0, len(mr.Contacts))
	for _, c := range mr.Contacts {
		name, err := core.NewName(c)
		if err != nil {
			return core.Meeting{}, err
		}
		names = append(names, name)
	}
	return core.RestoreMeeting(mr.ID, title, at, place, core.NewDescription(mr.Description), core.NewNoteSet(notes...), names), nil
}
