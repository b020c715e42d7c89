package commands

import "github.com/aretw0/rapport/pkg/core"

const (
	WordClear = "clear"
	WordHelp  = "help"
	WordExit  = "exit"
)

// Clear empties the address book.
type Clear struct {
	mutating
}

func (Clear) Execute(model core.Model, view *View) (Result, error) {
	model.SetAddressBook(core.NewAddressBook())
	model.UpdateFilteredContactList(core.ShowAllContacts)
	model.UpdateFilteredMeetingList(core.ShowAllMeetings)
	view.Clear()
	return Result{Feedback: "Address book has been cleared!"}, nil
}

// Help asks the presentation layer to show usage information.
type Help struct{}

func (Help) Execute(model core.Model, view *View) (Result, error) {
	return Result{Feedback: "Opened help window.", ShowHelp: true}, nil
}

// Exit asks the application to terminate.
type Exit struct{}

func (Exit) Execute(model core.Model, view *View) (Result, error) {
	return Result{Feedback: "Exiting Address Book as requested ...", Exit: true}, nil
}

// Usages lists the usage text of every command, in help order.
var Usages = []string{
	UsageAddContact, UsageEditContact, UsageDeleteContact, WordListContacts + ": Lists all contacts.",
	UsageFindContact, UsageViewContact, UsageAddContactNote, UsageDeleteContactNote,
	UsageAddMeeting, UsageEditMeeting, UsageDeleteMeeting, UsageListMeetings,
	UsageFindMeeting, UsageViewMeeting, UsageAddMeetingNote, UsageDeleteMeetingNote,
	UsageLink, UsageUnlink,
	WordClear + ": Clears all entries from the address book.",
	WordHelp + ": Shows this message.",
	WordExit + ": Exits the program.",
}
