package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/rapport/pkg/commands"
	"github.com/aretw0/rapport/pkg/core"
)

// render prints what a command result asks to be shown.
func render(w io.Writer, res commands.Result, model core.Model, view *commands.View) {
	fmt.Fprintln(w, res.Feedback)

	if res.ShowHelp {
		renderHelp(w)
		return
	}

	switch res.List {
	case commands.ListContacts:
		renderContacts(w, model.FilteredContacts())
		if c, ok := view.Contact(); ok {
			renderContact(w, c)
		}
	case commands.ListMeetings:
		renderMeetings(w, model.FilteredMeetings())
		if m, ok := view.Meeting(); ok {
			renderMeeting(w, m)
		}
	}
}

func renderHelp(w io.Writer) {
	fmt.Fprintln(w)
	for _, u := range commands.Usages {
		fmt.Fprintf(w, "  %s\n\n", u)
	}
}

func renderContacts(w io.Writer, contacts []core.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(w, "  (no contacts)")
		return
	}
	for i, c := range contacts {
		tags := make([]string, 0, len(c.Tags()))
		for _, t := range c.Tags() {
			tags = append(tags, "#"+t.String())
		}
		fmt.Fprintf(w, "%3d. %-24s %-12s %s %s\n", i+1, c.Name(), c.Phone(), c.Email(), strings.Join(tags, " "))
	}
}

func renderMeetings(w io.Writer, meetings []core.Meeting) {
	if len(meetings) == 0 {
		fmt.Fprintln(w, "  (no meetings)")
		return
	}
	for i, m := range meetings {
		fmt.Fprintf(w, "%3d. %-24s %s @ %s (%d notes)\n", i+1, m.Title(), m.Time(), m.Place(), m.Notes().Len())
	}
}

func renderContact(w io.Writer, c core.Contact) {
	fmt.Fprintf(w, "\n== %s ==\nPhone: %s\nEmail: %s\n", c.Name(), c.Phone(), c.Email())
	notes := c.Notes()
	if len(notes) == 0 {
		return
	}
	fmt.Fprintln(w, "Notes:")
	for i, n := range notes {
		fmt.Fprintf(w, "  %d. %s\n", i+1, n.Content)
	}
}

func renderMeeting(w io.Writer, m core.Meeting) {
	fmt.Fprintf(w, "\n== %s ==\nTime: %s\nPlace: %s\n", m.Title(), m.Time(), m.Place())
	if d := m.Description().String(); d != "" {
		fmt.Fprintf(w, "Description: %s\n", d)
	}
	if names := m.Contacts(); len(names) > 0 {
		parts := make([]string, len(names))
		for i, n := range names {
			parts[i] = n.String()
		}
		fmt.Fprintf(w, "With: %s\n", strings.Join(parts, ", "))
	}
	notes := m.Notes().Sorted()
	if len(notes) == 0 {
		return
	}
	fmt.Fprintln(w, "Notes:")
	for _, n := range notes {
		fmt.Fprintf(w, "  %s\n", n)
	}
}
