package coretest

import "github.com/aretw0/rapport/pkg/core"

const KeywordMatchingMeier = "Meier"

// TypicalContacts returns a fresh set of well-known contacts.
func TypicalContacts() []core.Contact {
	return []core.Contact{
		NewContactBuilder().WithName("Alice Pauline").WithEmail("alice@example.com").
			WithPhone("94351253").WithTags("friends").WithNotes("Likes Benson").Build(),
		NewContactBuilder().WithName("Benson Meier").WithEmail("johnd@example.com").
			WithPhone("98765432").WithTags("owesMoney", "friends").WithNotes("Likes chicken").Build(),
		NewContactBuilder().WithName("Carl Kurz").WithPhone("95352563").
			WithEmail("heinz@example.com").WithNotes("Enjoys rom-coms").Build(),
		NewContactBuilder().WithName("Daniel Meier").WithPhone("87652533").
			WithEmail("cornelia@example.com").WithTags("friends").WithNotes("Hates football").Build(),
		NewContactBuilder().WithName("Elle Meyer").WithPhone("9482224").
			WithEmail("werner@example.com").WithNotes("Keyboard geek").Build(),
		NewContactBuilder().WithName("Fiona Kunz").WithPhone("9482427").
			WithEmail("lydia@example.com").WithNotes("Gym rat").Build(),
		NewContactBuilder().WithName("George Best").WithPhone("9482442").
			WithEmail("anna@example.com").WithNotes("Likes bread").Build(),
	}
}

// TypicalMeetings returns a fresh set of well-known meetings, each with new ids.
func TypicalMeetings() []core.Meeting {
	return []core.Meeting{
		NewMeetingBuilder().WithTitle("CS2103 Meeting").WithTime("01/01/2023 00:00").
			WithPlace("Zoom").WithDescription("").WithNotes("Bring laptop", "Review PR").
			WithContacts("Alice Pauline").Build(),
		NewMeetingBuilder().WithTitle("GES2001 Meeting").WithTime("01/01/2023 20:30").
			WithPlace("Discord").WithDescription("Project details").WithNotes("Slides due").
			WithContacts("Benson Meier", "Carl Kurz").Build(),
		NewMeetingBuilder().WithTitle("LAJ2101 Meeting").WithTime("01/01/2023 16:00").
			WithPlace("Classroom A").WithDescription("").Build(),
		NewMeetingBuilder().WithTitle("Date with Girlfriend").WithTime("01/05/2023 18:00").
			WithPlace("Sentosa").WithDescription("Picnic with Sandwiches!").
			WithNotes("Buy flowers").Build(),
	}
}

// TypicalAddressBook returns an address book with the typical contacts and meetings.
func TypicalAddressBook() *core.AddressBook {
	ab := core.NewAddressBook()
	for _, c := range TypicalContacts() {
		if err := ab.AddContact(c); err != nil {
			panic(err)
		}
	}
	for _, m := range TypicalMeetings() {
		if err := ab.AddMeeting(m); err != nil {
			panic(err)
		}
	}
	return ab
}

// EqualBooks reports whether both address books hold equal contacts and
// meetings in the same order.
func EqualBooks(a, b core.ReadOnlyAddressBook) bool {
	ac, bc := a.Contacts(), b.Contacts()
	am, bm := a.Meetings(), b.Meetings()
	if len(ac) != len(bc) || len(am) != len(bm) {
		return false
	}
	for i := range ac {
		if !ac[i].Equal(bc[i]) {
			return false
		}
	}
	for i := range am {
		if !am[i].Equal(bm[i]) {
			return false
		}
	}
	return true
}
