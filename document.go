package marktext

// ElementKind classifies a document element.
type ElementKind uint8

const (
	// ElementHeading is a level 1..3 heading line.
	ElementHeading ElementKind = iota
	// ElementParagraph is one body line of styled segments.
	ElementParagraph
	// ElementBreak is a collapsed paragraph break.
	ElementBreak
)

// Element is one renderable unit of a parsed document: a heading, a
// styled body line, or a paragraph break, each carrying its block's
// alignment.
type Element struct {
	Kind     ElementKind
	Level    int
	Align    Alignment
	Text     string
	Segments []Segment
}

// ParseDocument runs the full pipeline: blocks, line classification and
// inline styling, flattened into an ordered element list for renderers.
func ParseDocument(text string) []Element {
	var out []Element
	for _, block := range ParseBlocks(text) {
		for _, line := range ClassifyLines(block.Text) {
			switch line.Kind {
			case LineHeading:
				out = append(out, Element{Kind: ElementHeading, Level: line.Level, Align: block.Align, Text: line.Text})
			case LineBody:
				segs := ParseLine(line.Text)
				for i := range segs {
					segs[i].Align = block.Align
				}
				out = append(out, Element{Kind: ElementParagraph, Align: block.Align, Segments: segs})
			case LineBreak:
				out = append(out, Element{Kind: ElementBreak})
			}
		}
	}
	return out
}
