package core

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Predicate selects the entities shown in a filtered view.
type Predicate[T any] func(T) bool

// ShowAllContacts is the predicate that keeps every contact.
func ShowAllContacts(Contact) bool { return true }

// ShowAllMeetings is the predicate that keeps every meeting.
func ShowAllMeetings(Meeting) bool { return true }

// And keeps an entity when every predicate keeps it.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// matchKeyword reports whether keyword matches a word of text or text as a whole.
// Plain keywords need a case-insensitive whole-word match; keywords with glob
// metacharacters are matched with doublestar.
func matchKeyword(text, keyword string) bool {
	text = strings.ToLower(text)
	keyword = strings.ToLower(keyword)
	glob := strings.ContainsAny(keyword, "*?[{")
	candidates := append(strings.Fields(text), text)
	for _, word := range candidates {
		if !glob {
			if word == keyword {
				return true
			}
			continue
		}
		if ok, err := doublestar.Match(keyword, word); err == nil && ok {
			return true
		}
	}
	return false
}

func matchAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if matchKeyword(text, k) {
			return true
		}
	}
	return false
}

// ContactNameContains keeps contacts whose name matches any keyword.
func ContactNameContains(keywords []string) Predicate[Contact] {
	keywords = append([]string(nil), keywords...)
	return func(c Contact) bool {
		return matchAny(c.name.value, keywords)
	}
}

// ContactHasTag keeps contacts carrying any of the tags.
func ContactHasTag(tags []string) Predicate[Contact] {
	tags = append([]string(nil), tags...)
	return func(c Contact) bool {
		for _, t := range tags {
			if c.HasTag(t) {
				return true
			}
		}
		return false
	}
}

// MeetingTitleContains keeps meetings whose title matches any keyword.
func MeetingTitleContains(keywords []string) Predicate[Meeting] {
	keywords = append([]string(nil), keywords...)
	return func(m Meeting) bool {
		return matchAny(m.title.value, keywords)
	}
}

// MeetingBetween keeps meetings scheduled within [start, end].
func MeetingBetween(start, end MeetingTime) Predicate[Meeting] {
	return func(m Meeting) bool {
		return !m.time.Before(start) && !m.time.After(end)
	}
}

// MeetingWithContact keeps meetings linked to the named contact.
func MeetingWithContact(name Name) Predicate[Meeting] {
	return func(m Meeting) bool {
		return m.HasContact(name)
	}
}
