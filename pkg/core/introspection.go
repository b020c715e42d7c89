package core

import (
	"github.com/aretw0/introspection"
)

// ModelState exposes internal model state for observability.
type ModelState struct {
	Contacts         int    `json:"contacts"`
	Meetings         int    `json:"meetings"`
	FilteredContacts int    `json:"filtered_contacts"`
	FilteredMeetings int    `json:"filtered_meetings"`
	DataFile         string `json:"data_file"`
}

// State implements introspection.Introspectable.
func (m *ModelManager) State() any {
	return ModelState{
		Contacts:         len(m.book.contacts),
		Meetings:         len(m.book.meetings),
		FilteredContacts: len(m.FilteredContacts()),
		FilteredMeetings: len(m.FilteredMeetings()),
		DataFile:         m.prefs.DataFile,
	}
}

// ComponentType implements introspection.Component.
func (m *ModelManager) ComponentType() string {
	return "model"
}

var _ introspection.Introspectable = (*ModelManager)(nil)
var _ introspection.Component = (*ModelManager)(nil)
