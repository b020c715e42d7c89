package parser

import (
	"sort"
	"strings"
)

// Prefix marks the start of an argument, e.g. "n/".
type Prefix string

const (
	PrefixName        Prefix = "n/"
	PrefixPhone       Prefix = "p/"
	PrefixEmail       Prefix = "e/"
	PrefixTag         Prefix = "t/"
	PrefixNote        Prefix = "note/"
	PrefixIndex       Prefix = "i/"
	PrefixNoteID      Prefix = "n/"
	PrefixTitle       Prefix = "ti/"
	PrefixTime        Prefix = "tm/"
	PrefixPlace       Prefix = "pl/"
	PrefixDescription Prefix = "d/"
	PrefixContact     Prefix = "c/"
	PrefixFrom        Prefix = "from/"
	PrefixTo          Prefix = "to/"
)

// ArgMultimap maps each prefix to the values that followed it, in order.
// The text before the first prefix is the preamble.
type ArgMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first prefix.
func (m ArgMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m ArgMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// All returns every value given for p.
func (m ArgMultimap) All(p Prefix) []string {
	return append([]string(nil), m.values[p]...)
}

// Has reports whether p was given at least once.
func (m ArgMultimap) Has(p Prefix) bool { return len(m.values[p]) > 0 }

// duplicated returns the prefixes among ps given more than once.
func (m ArgMultimap) duplicated(ps ...Prefix) []Prefix {
	var out []Prefix
	for _, p := range ps {
		if len(m.values[p]) > 1 {
			out = append(out, p)
		}
	}
	return out
}

type position struct {
	at     int
	prefix Prefix
}

// Tokenize splits args into a preamble and prefixed values. A prefix is only
// recognised at the start of args or after whitespace.
func Tokenize(args string, prefixes ...Prefix) ArgMultimap {
	padded := " " + args
	var found []position
	for _, p := range prefixes {
		needle := " " + string(p)
		from := 0
		for {
			i := strings.Index(padded[from:], needle)
			if i < 0 {
				break
			}
			found = append(found, position{at: from + i + 1, prefix: p})
			from += i + 1
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].at < found[j].at })

	m := ArgMultimap{values: make(map[Prefix][]string)}
	end := len(padded)
	if len(found) > 0 {
		end = found[0].at
	}
	m.preamble = strings.TrimSpace(padded[:end])
	for i, f := range found {
		stop := len(padded)
		if i+1 < len(found) {
			stop = found[i+1].at
		}
		value := strings.TrimSpace(padded[f.at+len(f.prefix) : stop])
		m.values[f.prefix] = append(m.values[f.prefix], value)
	}
	return m
}
