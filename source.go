package marktext

import (
	"strings"
	"unicode"
)

type sourceKind uint8

const (
	sourceNone sourceKind = iota
	sourceText
	sourceItems
	sourceSections
)

// Section is one heading/body pair of a sectioned source.
type Section struct {
	Heading string
	Body    string
}

// Source is a tagged input variant. Only a Text source enters the rich
// markup pipeline; item lists and keyed sections have fixed plain
// formatting rules and rich rendering of them degrades to an error
// message rather than failing.
type Source struct {
	kind     sourceKind
	text     string
	items    []string
	sections []Section
}

// Text wraps a plain string as a source.
func Text(s string) Source {
	return Source{kind: sourceText, text: s}
}

// Items wraps an ordered list; each item renders on its own line.
func Items(items ...string) Source {
	return Source{kind: sourceItems, items: items}
}

// Sections wraps heading/body pairs; each renders as the heading, the
// body, and a blank separator line.
func Sections(sections ...Section) Source {
	return Source{kind: sourceSections, sections: sections}
}

// IsZero reports whether the source holds no input at all.
func (s Source) IsZero() bool { return s.kind == sourceNone }

// Rich reports whether the source may enter the markup pipeline.
func (s Source) Rich() bool { return s.kind == sourceText }

// Flatten resolves the source to a single string using its formatting
// rule, with leading whitespace stripped per string.
func (s Source) Flatten() string {
	switch s.kind {
	case sourceText:
		return stripLeading(s.text)
	case sourceItems:
		var b strings.Builder
		for _, item := range s.items {
			b.WriteString(stripLeading(item))
			b.WriteByte('\n')
		}
		return b.String()
	case sourceSections:
		var b strings.Builder
		for _, sec := range s.sections {
			b.WriteString(stripLeading(sec.Heading))
			b.WriteByte('\n')
			b.WriteString(stripLeading(sec.Body))
			b.WriteString("\n\n")
		}
		return b.String()
	default:
		return ""
	}
}

func stripLeading(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
