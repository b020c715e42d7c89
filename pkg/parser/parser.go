// Package parser turns a line of user input into a commands.Command.
package parser

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/aretw0/rapport/pkg/commands"
	"github.com/aretw0/rapport/pkg/core"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFormat  = errors.New("invalid command format")
	ErrInvalidIndex   = errors.New("index is not a non-zero unsigned integer")
)

// Error reports input that could not be turned into a command.
type Error struct {
	Err   error
	Usage string
}

func (e *Error) Error() string {
	if e.Usage == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s\n%s", e.Err, e.Usage)
}

func (e *Error) Unwrap() error { return e.Err }

func invalid(usage string, format string, args ...any) error {
	return &Error{Err: fmt.Errorf("%w: "+format, append([]any{ErrInvalidFormat}, args...)...), Usage: usage}
}

func fieldError(usage string, err error) error {
	return &Error{Err: err, Usage: usage}
}

type parseFunc func(args string) (commands.Command, error)

var registry = map[string]parseFunc{
	commands.WordAddContact:        parseAddContact,
	commands.WordEditContact:       parseEditContact,
	commands.WordDeleteContact:     indexCommand(commands.UsageDeleteContact, func(i commands.Index) commands.Command { return commands.DeleteContact{Index: i} }),
	commands.WordListContacts:      noArgs(commands.ListAllContacts{}),
	commands.WordFindContact:       parseFindContact,
	commands.WordViewContact:       indexCommand(commands.UsageViewContact, func(i commands.Index) commands.Command { return commands.ViewContact{Index: i} }),
	commands.WordAddContactNote:    parseAddContactNote,
	commands.WordDeleteContactNote: parseDeleteContactNote,
	commands.WordAddMeeting:        parseAddMeeting,
	commands.WordEditMeeting:       parseEditMeeting,
	commands.WordDeleteMeeting:     indexCommand(commands.UsageDeleteMeeting, func(i commands.Index) commands.Command { return commands.DeleteMeeting{Index: i} }),
	commands.WordListMeetings:      noArgs(commands.ListAllMeetings{}),
	commands.WordFindMeeting:       parseFindMeeting,
	commands.WordViewMeeting:       indexCommand(commands.UsageViewMeeting, func(i commands.Index) commands.Command { return commands.ViewMeeting{Index: i} }),
	commands.WordAddMeetingNote:    parseAddMeetingNote,
	commands.WordDeleteMeetingNote: parseDeleteMeetingNote,
	commands.WordLink:              parseLink,
	commands.WordUnlink:            parseUnlink,
	commands.WordClear:             noArgs(commands.Clear{}),
	commands.WordHelp:              noArgs(commands.Help{}),
	commands.WordExit:              noArgs(commands.Exit{}),
}

// words holds the registry keys, longest first, so "list contacts" wins over "list".
var words = func() []string {
	out := make([]string, 0, len(registry))
	for w := range registry {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}()

// Words returns every known command word.
func Words() []string {
	return append([]string(nil), words...)
}

// Parse parses a full line of user input.
func Parse(input string) (commands.Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, &Error{Err: fmt.Errorf("%w: empty input", ErrInvalidFormat)}
	}
	for _, w := range words {
		head, rest := splitWords(input, len(strings.Fields(w)))
		if strings.Join(head, " ") == w {
			return registry[w](rest)
		}
	}
	return nil, &Error{Err: ErrUnknownCommand}
}

// splitWords takes the first n whitespace-separated words off s and returns
// them with the untouched remainder.
func splitWords(s string, n int) ([]string, string) {
	var head []string
	for len(head) < n {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		if s == "" {
			break
		}
		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			end = len(s)
		}
		head = append(head, s[:end])
		s = s[end:]
	}
	return head, strings.TrimSpace(s)
}

// ParseIndex parses a 1-based index.
func ParseIndex(s string) (commands.Index, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, ErrInvalidIndex
	}
	return commands.Index(n), nil
}

func noArgs(cmd commands.Command) parseFunc {
	return func(string) (commands.Command, error) { return cmd, nil }
}

func indexCommand(usage string, build func(commands.Index) commands.Command) parseFunc {
	return func(args string) (commands.Command, error) {
		idx, err := ParseIndex(args)
		if err != nil {
			return nil, invalid(usage, "%v", err)
		}
		return build(idx), nil
	}
}

func requireOnce(m ArgMultimap, usage string, ps ...Prefix) error {
	if dup := m.duplicated(ps...); len(dup) > 0 {
		return invalid(usage, "multiple values specified for the following single-valued field(s): %v", dup)
	}
	return nil
}

// --- Contacts ---

func parseAddContact(args string) (commands.Command, error) {
	usage := commands.UsageAddContact
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixTag, PrefixNote)
	if !m.Has(PrefixName) || !m.Has(PrefixPhone) || !m.Has(PrefixEmail) || m.Preamble() != "" {
		return nil, invalid(usage, "name, phone and email are required")
	}
	if err := requireOnce(m, usage, PrefixName, PrefixPhone, PrefixEmail); err != nil {
		return nil, err
	}
	name, _ := m.Value(PrefixName)
	phone, _ := m.Value(PrefixPhone)
	email, _ := m.Value(PrefixEmail)

	n, err := core.NewName(name)
	if err != nil {
		return nil, fieldError(usage, err)
	}
	p, err := core.NewPhone(phone)
	if err != nil {
		return nil, fieldError(usage, err)
	}
	e, err := core.NewEmail(email)
	if err != nil {
		return nil, fieldError(usage, err)
	}
	tags, err := parseTags(m.All(PrefixTag))
	if err != nil {
		return nil, fieldError(usage, err)
	}
	var notes []core.Note
	for i, content := range m.All(PrefixNote) {
		note, err := core.NewNote(i+1, content)
		if err != nil {
			return nil, fieldError(usage, err)
		}
		notes = append(notes, note)
	}
	return commands.AddContact{Contact: core.NewContact(n, p, e, tags, notes)}, nil
}

func parseTags(values []string) ([]core.Tag, error) {
	tags := make([]core.Tag, 0, len(values))
	for _, v := range values {
		t, err := core.NewTag(v)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func parseEditContact(args string) (commands.Command, error) {
	usage := commands.UsageEditContact
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixTag)
	idx, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalid(usage, "%v", err)
	}
	if err := requireOnce(m, usage, PrefixName, PrefixPhone, PrefixEmail); err != nil {
		return nil, err
	}

	var d commands.EditContactDescriptor
	if v, ok := m.Value(PrefixName); ok {
		n, err := core.NewName(v)
		if err != nil {
			return nil, fieldError(usage, err)
		}
		d.Name = &n
	}
	if v, ok := m.Value(PrefixPhone); ok {
		p, err := core.NewPhone(v)
		if err != nil {
			return nil, fieldError(usage, err)
		}
		d.Phone = &p
	}
	if v, ok := m.Value(PrefixEmail); ok {
		e, err := core.NewEmail(v)
		if err != nil {
			return nil, fieldError(usage, err)
		}
		d.Email = &e
	}
	if m.Has(PrefixTag) {
		values := m.All(PrefixTag)
		// a single empty t/ clears every tag
		if len(values) == 1 && values[0] == "" {
			values = nil
		}
		tags, err := parseTags(values)
		if err != nil {
			return nil, fieldError(usage, err)
		}
		d.Tags = &tags
	}
	if !d.IsAnyFieldEdited() {
		return nil, invalid(usage, "at least one field to edit must be provided")
	}
	return commands.EditContact{Index: idx, Descriptor: d}, nil
}

func parseFindContact(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixTag)
	cmd := commands.FindContact{Keywords: strings.Fields(m.Preamble()), Tags: m.All(PrefixTag)}
	if len(cmd.Keywords) == 0 && len(cmd.Tags) == 0 {
		return nil, invalid(commands.UsageFindContact, "no keywords given")
	}
	return cmd, nil
}

func parseAddContactNote(args string) (commands.Command, error) {
	usage := commands.UsageAddContactNote
	idx, content, err := indexAndValue(args, usage, PrefixNote)
	if err != nil {
		return nil, err
	}
	return commands.AddContactNote{Index: idx, Content: content}, nil
}

func parseDeleteContactNote(args string) (commands.Command, error) {
	usage := commands.UsageDeleteContactNote
	idx, raw, err := indexAndValue(args, usage, PrefixNoteID)
	if err != nil {
		return nil, err
	}
	noteIdx, err := ParseIndex(raw)
	if err != nil {
		return nil, invalid(usage, "note %v", err)
	}
	return commands.DeleteContactNote{Index: idx, NoteIndex: noteIdx}, nil
}

// indexAndValue parses the "i/INDEX <p>VALUE" shape shared by note and link commands.
func indexAndValue(args, usage string, p Prefix) (commands.Index, string, error) {
	m := Tokenize(args, PrefixIndex, p)
	if !m.Has(PrefixIndex) || !m.Has(p) || m.Preamble() != "" {
		return 0, "", invalid(usage, "both %s and %s are required", PrefixIndex, p)
	}
	if err := requireOnce(m, usage, PrefixIndex, p); err != nil {
		return 0, "", err
	}
	raw, _ := m.Value(PrefixIndex)
	idx, err := ParseIndex(raw)
	if err != nil {
		return 0, "", invalid(usage, "%v", err)
	}
	v, _ := m.Value(p)
	return idx, v, nil
}

// --- Meetings ---

func parseAddMeeting(args string) (commands.Command, error) {
	usage := commands.UsageAddMeeting
	m := Tokenize(args, PrefixTitle, PrefixTime, PrefixPlace, PrefixDescription, PrefixContact)
	if !m.Has(PrefixTitle) || !m.Has(PrefixTime) || !m.Has(PrefixPlace) || m.Preamble() != "" {
		return nil, invalid(usage, "title, time and place are required")
	}
	if err := requireOnce(m, usage, PrefixTitle, PrefixTime, PrefixPlace, PrefixDescription); err != nil {
		return nil, err
	}
	title, _ := m.Value(PrefixTitle)
	at, _ := m.Value(PrefixTime)
	place, _ := m.Value(PrefixPlace)
	desc, _ := m.Value(PrefixDescription)

	cmd := commands.AddMeeting{Description: core.NewDescription(desc)}
	var err error
	if cmd.Title, err = core.NewTitle(title); err != nil {
		return nil, fieldError(usage, err)
	}
	if cmd.Time, err = core.NewMeetingTime(at); err != nil {
		return nil, fieldError(usage, err)
	}
	if cmd.Place, err = core.NewPlace(place); err != nil {
		return nil, fieldError(usage, err)
	}
	for _, v := range m.All(PrefixContact) {
		n, err := core.NewName(v)
		if err != nil {
			return nil, fieldError(usage, err)
		}
		cmd.Contacts = append(cmd.Contacts, n)
	}
	return cmd, nil
}

func parseEditMeeting(args string) (commands.Command, error) {
	usage := commands.UsageEditMeeting
	m := Tokenize(args, PrefixTitle, PrefixTime, PrefixPlace, PrefixDescription)
	idx, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalid(usage, "%v", err)
	}
	if err := requireOnce(m, usage, PrefixTitle, PrefixTime, PrefixPlace, PrefixDescription); err != nil {
		return nil, err
	}

	var d commands.EditMeetingDescriptor
	if v, ok := m.Value(PrefixTitle); ok {
		t, err := core.NewTitle(v)
		if err != nil {
			return nil, fieldError(usage, err)
		}
		d.Title = &t
	}
	if v, ok := m.Value(PrefixTime); ok {
		t, err := core.NewMeetingTime(v)
		if err != nil {
			return nil, fieldError(usage, err)
		}
		d.Time = &t
	}
	if v, ok := m.Value(PrefixPlace); ok {
		p, err := core.NewPlace(v)
		if err != nil {
			return nil, fieldError(usage, err)
		}
		d.Place = &p
	}
	if v, ok := m.Value(PrefixDescription); ok {
		desc := core.NewDescription(v)
		d.Description = &desc
	}
	if !d.IsAnyFieldEdited() {
		return nil, invalid(usage, "at least one field to edit must be provided")
	}
	return commands.EditMeeting{Index: idx, Descriptor: d}, nil
}

func parseFindMeeting(args string) (commands.Command, error) {
	usage := commands.UsageFindMeeting
	m := Tokenize(args, PrefixFrom, PrefixTo, PrefixContact)
	if err := requireOnce(m, usage, PrefixFrom, PrefixTo, PrefixContact); err != nil {
		return nil, err
	}
	cmd := commands.FindMeeting{Keywords: strings.Fields(m.Preamble())}
	if m.Has(PrefixFrom) != m.Has(PrefixTo) {
		return nil, invalid(usage, "from/ and to/ must be given together")
	}
	if m.Has(PrefixFrom) {
		from, _ := m.Value(PrefixFrom)
		to, _ := m.Value(PrefixTo)
		start, err := core.NewMeetingTime(from)
		if err != nil {
			return nil, fieldError(usage, err)
		}
		end, err := core.NewMeetingTime(to)
		if err != nil {
			return nil, fieldError(usage, err)
		}
		cmd.From, cmd.To = &start, &end
	}
	if v, ok := m.Value(PrefixContact); ok {
		n, err := core.NewName(v)
		if err != nil {
			return nil, fieldError(usage, err)
		}
		cmd.Contact = &n
	}
	if len(cmd.Keywords) == 0 && cmd.From == nil && cmd.Contact == nil {
		return nil, invalid(usage, "no search criteria given")
	}
	return cmd, nil
}

func parseAddMeetingNote(args string) (commands.Command, error) {
	idx, content, err := indexAndValue(args, commands.UsageAddMeetingNote, PrefixNote)
	if err != nil {
		return nil, err
	}
	return commands.AddMeetingNote{Index: idx, Content: content}, nil
}

func parseDeleteMeetingNote(args string) (commands.Command, error) {
	usage := commands.UsageDeleteMeetingNote
	idx, raw, err := indexAndValue(args, usage, PrefixNoteID)
	if err != nil {
		return nil, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return nil, invalid(usage, "note id must be a positive integer")
	}
	return commands.DeleteMeetingNote{Index: idx, NoteID: id}, nil
}

func parseLink(args string) (commands.Command, error) {
	idx, name, err := parseLinkArgs(args, commands.UsageLink)
	if err != nil {
		return nil, err
	}
	return commands.Link{Index: idx, Contact: name}, nil
}

func parseUnlink(args string) (commands.Command, error) {
	idx, name, err := parseLinkArgs(args, commands.UsageUnlink)
	if err != nil {
		return nil, err
	}
	return commands.Unlink{Index: idx, Contact: name}, nil
}

func parseLinkArgs(args, usage string) (commands.Index, core.Name, error) {
	idx, raw, err := indexAndValue(args, usage, PrefixContact)
	if err != nil {
		return 0, core.Name{}, err
	}
	name, err := core.NewName(raw)
	if err != nil {
		return 0, core.Name{}, fieldError(usage, err)
	}
	return idx, name, nil
}
