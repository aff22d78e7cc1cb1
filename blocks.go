package marktext

import "strings"

const (
	directiveOpen  = "[justify:"
	directiveClose = "[/justify]"
)

// ParseBlocks splits text into justification blocks. Directive pairs
// may span multiple lines; the enclosed content, newlines included, is
// captured literally. Text outside any pair becomes AlignDefault
// blocks. Malformed, unknown-keyword or unterminated directives are
// literal text. Whitespace-only blocks are dropped, so the result can
// be empty for blank input.
func ParseBlocks(text string) []Block {
	var blocks []Block
	last := 0
	i := 0
	for {
		rel := strings.Index(text[i:], directiveOpen)
		if rel < 0 {
			break
		}
		start := i + rel
		align, contentStart, ok := parseDirective(text, start)
		if !ok {
			i = start + 1
			continue
		}
		end := strings.Index(text[contentStart:], directiveClose)
		if end < 0 {
			// Unterminated: nothing after this point can close a
			// directive either, so the rest is literal.
			break
		}
		contentEnd := contentStart + end
		if start > last {
			blocks = append(blocks, Block{Text: text[last:start]})
		}
		if contentEnd > contentStart {
			blocks = append(blocks, Block{Align: align, Text: text[contentStart:contentEnd]})
		}
		last = contentEnd + len(directiveClose)
		i = last
	}
	if last < len(text) {
		blocks = append(blocks, Block{Text: text[last:]})
	}
	if len(blocks) == 0 {
		blocks = append(blocks, Block{Text: text})
	}
	kept := blocks[:0]
	for _, b := range blocks {
		if strings.TrimSpace(b.Text) != "" {
			kept = append(kept, b)
		}
	}
	return kept
}

// parseDirective validates an opening directive at start (which must
// point at "[justify:") and returns the alignment and the offset of the
// first content byte after the closing bracket.
func parseDirective(text string, start int) (Alignment, int, bool) {
	rest := text[start+len(directiveOpen):]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return AlignDefault, 0, false
	}
	var align Alignment
	switch rest[:end] {
	case "left":
		align = AlignLeft
	case "center":
		align = AlignCenter
	case "right":
		align = AlignRight
	default:
		return AlignDefault, 0, false
	}
	return align, start + len(directiveOpen) + end + 1, true
}
