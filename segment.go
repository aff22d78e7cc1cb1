package marktext

import "strings"

// StyleSet is a bitset of inline styles active on a run of text.
type StyleSet uint8

const (
	// StyleBold marks bold text (** or *** markers).
	StyleBold StyleSet = 1 << iota
	// StyleItalic marks italic text (* or *** markers).
	StyleItalic
	// StyleUnderline marks underlined text (__ markers).
	StyleUnderline
)

// NumStyleSets is the number of distinct style combinations, including
// the empty set. Renderers can index a [NumStyleSets]-sized table
// directly with a StyleSet.
const NumStyleSets = 8

// Has reports whether all styles in q are active in s.
func (s StyleSet) Has(q StyleSet) bool { return s&q == q }

func (s StyleSet) String() string {
	if s == 0 {
		return "plain"
	}
	var parts []string
	if s.Has(StyleBold) {
		parts = append(parts, "bold")
	}
	if s.Has(StyleItalic) {
		parts = append(parts, "italic")
	}
	if s.Has(StyleUnderline) {
		parts = append(parts, "underline")
	}
	return strings.Join(parts, "+")
}

// Alignment is a paragraph justification carried by a block.
type Alignment uint8

const (
	// AlignDefault means no directive applied; renderers treat it as left.
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "default"
	}
}

// Segment is the parser's final output unit: a run of text sharing one
// exact style combination and justification. Concatenating segment
// texts in emission order reconstructs the line with paired markers
// stripped and unpaired markers retained.
type Segment struct {
	Styles StyleSet
	Align  Alignment
	Text   string
}

// Block is a contiguous span of text with a single paragraph alignment,
// produced by ParseBlocks. Blocks partition the input in source order;
// concatenating block texts reconstructs the input modulo the directive
// markers themselves.
type Block struct {
	Align Alignment
	Text  string
}
