package core

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// MeetingTimeLayout is the input and display layout for meeting times.
const MeetingTimeLayout = "02/01/2006 15:04"

var namePattern = regexp.MustCompile(`^[\p{L}\p{N}]+( [\p{L}\p{N}]+)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	return v
}

func check(field, value, tag, constraint string) error {
	if err := validate.Var(value, tag); err != nil {
		return &ValidationError{Field: field, Value: value, Constraint: constraint}
	}
	return nil
}

// Name identifies a contact.
type Name struct{ value string }

// NewName validates and builds a Name.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if err := check("name", s, "required,personname",
		"names should only contain alphanumeric characters and spaces, and it should not be blank"); err != nil {
		return Name{}, err
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Phone is a contact phone number.
type Phone struct{ value string }

// NewPhone validates and builds a Phone.
func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if err := check("phone", s, "required,number,min=3",
		"phone numbers should only contain numbers, and it should be at least 3 digits long"); err != nil {
		return Phone{}, err
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

// Email is a contact email address.
type Email struct{ value string }

// NewEmail validates and builds an Email.
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if err := check("email", s, "required,email",
		"emails should be of the format local-part@domain"); err != nil {
		return Email{}, err
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }

// Tag is a validated label attached to a contact.
type Tag struct{ value string }

// NewTag validates and builds a Tag.
func NewTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if err := check("tag", s, "required,alphanum",
		"tag names should be alphanumeric"); err != nil {
		return Tag{}, err
	}
	return Tag{value: s}, nil
}

func (t Tag) String() string { return t.value }

// Title is the headline of a meeting.
type Title struct{ value string }

// NewTitle validates and builds a Title.
func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if err := check("title", s, "required", "titles can take any values, and it should not be blank"); err != nil {
		return Title{}, err
	}
	return Title{value: s}, nil
}

func (t Title) String() string { return t.value }

// Place is where a meeting happens.
type Place struct{ value string }

// NewPlace validates and builds a Place.
func NewPlace(s string) (Place, error) {
	s = strings.TrimSpace(s)
	if err := check("place", s, "required", "places can take any values, and it should not be blank"); err != nil {
		return Place{}, err
	}
	return Place{value: s}, nil
}

func (p Place) String() string { return p.value }

// Description is free text attached to a meeting. It may be empty.
type Description struct{ value string }

// NewDescription builds a Description.
func NewDescription(s string) Description {
	return Description{value: strings.TrimSpace(s)}
}

func (d Description) String() string { return d.value }

// MeetingTime is the scheduled start of a meeting, minute precision.
type MeetingTime struct{ value time.Time }

// NewMeetingTime parses s using MeetingTimeLayout.
func NewMeetingTime(s string) (MeetingTime, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(MeetingTimeLayout, s)
	if err != nil {
		return MeetingTime{}, &ValidationError{
			Field:      "time",
			Value:      s,
			Constraint: "times should be of the format dd/MM/yyyy HH:mm",
		}
	}
	return MeetingTime{value: t}, nil
}

// Time returns the underlying instant.
func (m MeetingTime) Time() time.Time { return m.value }

// Before reports whether m is strictly earlier than other.
func (m MeetingTime) Before(other MeetingTime) bool { return m.value.Before(other.value) }

// After reports whether m is strictly later than other.
func (m MeetingTime) After(other MeetingTime) bool { return m.value.After(other.value) }

func (m MeetingTime) String() string { return m.value.Format(MeetingTimeLayout) }
