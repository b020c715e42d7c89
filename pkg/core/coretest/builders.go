// Package coretest provides builders and a typical address book for tests.
package coretest

import (
	"github.com/aretw0/rapport/pkg/core"
)

const (
	DefaultName        = "Amy Bee"
	DefaultPhone       = "85355255"
	DefaultEmail       = "amy@gmail.com"
	DefaultTitle       = "Standup"
	DefaultTime        = "02/03/2024 09:30"
	DefaultPlace       = "Zoom"
	DefaultDescription = "Daily sync"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// ContactBuilder builds contacts with valid defaults.
type ContactBuilder struct {
	name  string
	phone string
	email string
	tags  []string
	notes []string
}

// NewContactBuilder returns a builder preloaded with the default contact.
func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{name: DefaultName, phone: DefaultPhone, email: DefaultEmail}
}

// FromContact returns a builder preloaded with c.
func FromContact(c core.Contact) *ContactBuilder {
	b := &ContactBuilder{name: c.Name().String(), phone: c.Phone().String(), email: c.Email().String()}
	for _, t := range c.Tags() {
		b.tags = append(b.tags, t.String())
	}
	for _, n := range c.Notes() {
		b.notes = append(b.notes, n.Content)
	}
	return b
}

func (b *ContactBuilder) WithName(s string) *ContactBuilder  { b.name = s; return b }
func (b *ContactBuilder) WithPhone(s string) *ContactBuilder { b.phone = s; return b }
func (b *ContactBuilder) WithEmail(s string) *ContactBuilder { b.email = s; return b }

func (b *ContactBuilder) WithTags(tags ...string) *ContactBuilder {
	b.tags = tags
	return b
}

func (b *ContactBuilder) WithNotes(notes ...string) *ContactBuilder {
	b.notes = notes
	return b
}

func (b *ContactBuilder) Build() core.Contact {
	tags := make([]core.Tag, 0, len(b.tags))
	for _, t := range b.tags {
		tags = append(tags, must(core.NewTag(t)))
	}
	notes := make([]core.Note, 0, len(b.notes))
	for i, n := range b.notes {
		notes = append(notes, must(core.NewNote(i+1, n)))
	}
	return core.NewContact(
		must(core.NewName(b.name)),
		must(core.NewPhone(b.phone)),
		must(core.NewEmail(b.email)),
		tags, notes,
	)
}

// MeetingBuilder builds meetings with valid defaults.
type MeetingBuilder struct {
	title       string
	time        string
	place       string
	description string
	notes       []core.Note
	contacts    []string
}

// NewMeetingBuilder returns a builder preloaded with the default meeting.
func NewMeetingBuilder() *MeetingBuilder {
	return &MeetingBuilder{title: DefaultTitle, time: DefaultTime, place: DefaultPlace, description: DefaultDescription}
}

func (b *MeetingBuilder) WithTitle(s string) *MeetingBuilder       { b.title = s; return b }
func (b *MeetingBuilder) WithTime(s string) *MeetingBuilder        { b.time = s; return b }
func (b *MeetingBuilder) WithPlace(s string) *MeetingBuilder       { b.place = s; return b }
func (b *MeetingBuilder) WithDescription(s string) *MeetingBuilder { b.description = s; return b }

// WithNotes adds notes numbered 1..n in order.
func (b *MeetingBuilder) WithNotes(contents ...string) *MeetingBuilder {
	b.notes = nil
	for i, c := range contents {
		b.notes = append(b.notes, must(core.NewNote(i+1, c)))
	}
	return b
}

func (b *MeetingBuilder) WithContacts(names ...string) *MeetingBuilder {
	b.contacts = names
	return b
}

// Build creates the meeting with a fresh id.
func (b *MeetingBuilder) Build() core.Meeting {
	names := make([]core.Name, 0, len(b.contacts))
	for _, n := range b.contacts {
		names = append(names, must(core.NewName(n)))
	}
	return core.NewMeeting(
		must(core.NewTitle(b.title)),
		must(core.NewMeetingTime(b.time)),
		must(core.NewPlace(b.place)),
		core.NewDescription(b.description),
		core.NewNoteSet(b.notes...),
		names,
	)
}

// Name parses s or panics.
func Name(s string) core.Name { return must(core.NewName(s)) }

// Time parses s or panics.
func Time(s string) core.MeetingTime { return must(core.NewMeetingTime(s)) }
