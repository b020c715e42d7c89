// Package core holds the domain of Rapport: contacts, meetings and notes,
// the address book that stores them, and the Model the commands operate on.
package core

// EventType represents the type of change observed in storage.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to the persisted address book.
type Event struct {
	Type      EventType
	Source    string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Source
}

type contextKey string

// ChangeReasonKey is the context key for passing the change reason
// (e.g. a commit message) to Storage.Save.
const ChangeReasonKey contextKey = "change_reason"
