package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrReadOnly = errors.New("storage is in read-only mode")
	ErrNoData   = errors.New("no address book data found")

	ErrInvalidField = errors.New("invalid field")

	ErrDuplicateContact = errors.New("this contact already exists in the address book")
	ErrContactNotFound  = errors.New("contact not found in the address book")
	ErrUnknownContact   = errors.New("no contact with this name exists in the address book")

	ErrDuplicateMeeting = errors.New("this meeting already exists in the address book")
	ErrMeetingNotFound  = errors.New("meeting not found in the address book")
)

// ValidationError reports a field value that violates its constraint.
type ValidationError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Constraint)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidField
}
