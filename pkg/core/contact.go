package core

import (
	"fmt"
	"sort"
	"strings"
)

// Contact represents a person in the address book.
// Contacts are immutable: edits build a new Contact that replaces the old one.
type Contact struct {
	name  Name
	phone Phone
	email Email
	tags  []Tag
	notes []Note
}

// NewContact builds a Contact. Duplicate tags collapse; note order is kept.
func NewContact(name Name, phone Phone, email Email, tags []Tag, notes []Note) Contact {
	return Contact{
		name:  name,
		phone: phone,
		email: email,
		tags:  uniqueTags(tags),
		notes: append([]Note(nil), notes...),
	}
}

func uniqueTags(tags []Tag) []Tag {
	seen := make(map[string]struct{}, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t.value]; ok {
			continue
		}
		seen[t.value] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].value < out[j].value })
	return out
}

func (c Contact) Name() Name   { return c.name }
func (c Contact) Phone() Phone { return c.phone }
func (c Contact) Email() Email { return c.email }

// Tags returns a copy of the contact's tags, sorted.
func (c Contact) Tags() []Tag { return append([]Tag(nil), c.tags...) }

// Notes returns a copy of the contact's notes in insertion order.
func (c Contact) Notes() []Note { return append([]Note(nil), c.notes...) }

// HasTag reports whether the contact carries the tag (case-insensitive).
func (c Contact) HasTag(tag string) bool {
	for _, t := range c.tags {
		if strings.EqualFold(t.value, tag) {
			return true
		}
	}
	return false
}

// WithNotes returns a copy of c with its notes replaced.
func (c Contact) WithNotes(notes []Note) Contact {
	return NewContact(c.name, c.phone, c.email, c.tags, notes)
}

// IsSameContact reports whether both contacts have the same name.
// This is the weak identity used for duplicate detection.
func (c Contact) IsSameContact(other Contact) bool {
	return c.name == other.name
}

// Equal reports whether both contacts have the same identity and data fields.
func (c Contact) Equal(other Contact) bool {
	if c.name != other.name || c.phone != other.phone || c.email != other.email {
		return false
	}
	if len(c.tags) != len(other.tags) || len(c.notes) != len(other.notes) {
		return false
	}
	for i := range c.tags {
		if c.tags[i] != other.tags[i] {
			return false
		}
	}
	for i := range c.notes {
		if c.notes[i] != other.notes[i] {
			return false
		}
	}
	return true
}

// Compare orders contacts by name.
func (c Contact) Compare(other Contact) int {
	return strings.Compare(c.name.value, other.name.value)
}

func (c Contact) String() string {
	tags := make([]string, len(c.tags))
	for i, t := range c.tags {
		tags[i] = t.value
	}
	notes := make([]string, len(c.notes))
	for i, n := range c.notes {
		notes[i] = n.Content
	}
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Tags: [%s]; Notes: [%s]",
		c.name, c.phone, c.email, strings.Join(tags, ", "), strings.Join(notes, ", "))
}
