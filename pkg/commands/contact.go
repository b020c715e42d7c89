package commands

import (
	"errors"
	"fmt"

	"github.com/aretw0/rapport/pkg/core"
)

const (
	WordAddContact    = "add contact"
	WordEditContact   = "edit contact"
	WordDeleteContact = "delete contact"
	WordListContacts  = "list contacts"
	WordFindContact   = "find contact"
	WordViewContact   = "view contact"
)

const (
	UsageAddContact = WordAddContact + ": Adds a contact to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL [t/TAG]... [note/NOTE]...\n" +
		"Example: " + WordAddContact + " n/John Doe p/98765432 e/johnd@example.com t/friends note/Likes coffee"
	UsageEditContact = WordEditContact + ": Edits the contact identified by the index number used in the " +
		"displayed contact list. Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [t/TAG]...\n" +
		"Example: " + WordEditContact + " 1 p/91234567 e/johndoe@example.com"
	UsageDeleteContact = WordDeleteContact + ": Deletes the contact identified by the index number used in " +
		"the displayed contact list.\nParameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordDeleteContact + " 1"
	UsageFindContact = WordFindContact + ": Finds all contacts whose names contain any of the specified " +
		"keywords (case-insensitive, * and ? wildcards allowed) or carry any of the tags.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]... or t/TAG...\n" +
		"Example: " + WordFindContact + " alice bob* charlie"
	UsageViewContact = WordViewContact + ": Shows the contact identified by the index number used in the " +
		"displayed contact list.\nParameters: INDEX (must be a positive integer)\n" +
		"Example: " + WordViewContact + " 1"
)

// AddContact adds a contact to the address book.
type AddContact struct {
	mutating
	Contact core.Contact
}

func (c AddContact) Execute(model core.Model, view *View) (Result, error) {
	if model.HasContact(c.Contact) {
		return fail(WordAddContact, core.ErrDuplicateContact)
	}
	if err := model.AddContact(c.Contact); err != nil {
		return fail(WordAddContact, err)
	}
	return Result{Feedback: fmt.Sprintf("New contact added: %s", c.Contact), List: ListContacts}, nil
}

// EditContactDescriptor holds the fields to change; nil fields are kept.
type EditContactDescriptor struct {
	Name  *core.Name
	Phone *core.Phone
	Email *core.Email
	Tags  *[]core.Tag
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditContactDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Tags != nil
}

func (d EditContactDescriptor) apply(c core.Contact) core.Contact {
	name, phone, email, tags := c.Name(), c.Phone(), c.Email(), c.Tags()
	if d.Name != nil {
		name = *d.Name
	}
	if d.Phone != nil {
		phone = *d.Phone
	}
	if d.Email != nil {
		email = *d.Email
	}
	if d.Tags != nil {
		tags = *d.Tags
	}
	return core.NewContact(name, phone, email, tags, c.Notes())
}

// EditContact replaces fields of a displayed contact.
type EditContact struct {
	mutating
	Index      Index
	Descriptor EditContactDescriptor
}

func (c EditContact) Execute(model core.Model, view *View) (Result, error) {
	target, err := contactAt(model, c.Index)
	if err != nil {
		return fail(WordEditContact, err)
	}
	edited := c.Descriptor.apply(target)
	if !target.IsSameContact(edited) && model.HasContact(edited) {
		return fail(WordEditContact, core.ErrDuplicateContact)
	}
	if err := model.SetContact(target, edited); err != nil {
		return fail(WordEditContact, err)
	}
	model.UpdateFilteredContactList(core.ShowAllContacts)
	if cur, ok := view.Contact(); ok && cur.IsSameContact(target) {
		view.ShowContact(edited)
	}
	// Renames relink meetings, so the meeting in detail may have changed.
	view.Refresh(model)
	return Result{Feedback: fmt.Sprintf("Edited Contact: %s", edited), List: ListContacts}, nil
}

// DeleteContact removes a displayed contact.
type DeleteContact struct {
	mutating
	Index Index
}

func (c DeleteContact) Execute(model core.Model, view *View) (Result, error) {
	target, err := contactAt(model, c.Index)
	if err != nil {
		return fail(WordDeleteContact, err)
	}
	if err := model.DeleteContact(target); err != nil {
		return fail(WordDeleteContact, err)
	}
	view.Refresh(model)
	return Result{Feedback: fmt.Sprintf("Deleted Contact: %s", target), List: ListContacts}, nil
}

// ListAllContacts shows every contact.
type ListAllContacts struct{}

func (ListAllContacts) Execute(model core.Model, view *View) (Result, error) {
	model.UpdateFilteredContactList(core.ShowAllContacts)
	return Result{Feedback: "Listed all contacts.", List: ListContacts}, nil
}

// FindContact filters the contact list.
type FindContact struct {
	Keywords []string
	Tags     []string
}

func (c FindContact) Execute(model core.Model, view *View) (Result, error) {
	var preds []core.Predicate[core.Contact]
	if len(c.Keywords) > 0 {
		preds = append(preds, core.ContactNameContains(c.Keywords))
	}
	if len(c.Tags) > 0 {
		preds = append(preds, core.ContactHasTag(c.Tags))
	}
	if len(preds) == 0 {
		return fail(WordFindContact, errors.New("at least one keyword or tag is required"))
	}
	model.UpdateFilteredContactList(core.And(preds...))
	n := len(model.FilteredContacts())
	return Result{Feedback: fmt.Sprintf("%d contacts listed!", n), List: ListContacts}, nil
}

// ViewContact shows a displayed contact in detail.
type ViewContact struct {
	Index Index
}

func (c ViewContact) Execute(model core.Model, view *View) (Result, error) {
	target, err := contactAt(model, c.Index)
	if err != nil {
		return fail(WordViewContact, err)
	}
	view.ShowContact(target)
	return Result{Feedback: fmt.Sprintf("Viewing Contact: %s", target.Name()), List: ListContacts}, nil
}
