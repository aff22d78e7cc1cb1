package marktext

import "strings"

// LineKind classifies one newline-delimited unit of a block's text.
type LineKind uint8

const (
	// LineBody is a non-blank, non-heading line eligible for inline
	// style parsing.
	LineBody LineKind = iota
	// LineHeading is a heading of Level 1..3.
	LineHeading
	// LineBreak is a paragraph break; consecutive blank lines collapse
	// to a single break.
	LineBreak
)

// Line is a classified line of a block.
type Line struct {
	Kind  LineKind
	Level int
	Text  string
}

// ClassifyLines splits a block's text on newlines and classifies each
// line. Heading detection runs on the trimmed line and takes precedence
// over style parsing; body lines keep their original spacing so inline
// offsets stay exact.
func ClassifyLines(text string) []Line {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	var out []Line
	breakEmitted := false
	for _, raw := range lines {
		raw = strings.TrimSuffix(raw, "\r")
		stripped := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(stripped, "### "):
			out = append(out, Line{Kind: LineHeading, Level: 3, Text: stripped[4:]})
			breakEmitted = false
		case strings.HasPrefix(stripped, "## "):
			out = append(out, Line{Kind: LineHeading, Level: 2, Text: stripped[3:]})
			breakEmitted = false
		case strings.HasPrefix(stripped, "# "):
			out = append(out, Line{Kind: LineHeading, Level: 1, Text: stripped[2:]})
			breakEmitted = false
		case stripped != "":
			out = append(out, Line{Kind: LineBody, Text: raw})
			breakEmitted = false
		default:
			if !breakEmitted {
				out = append(out, Line{Kind: LineBreak})
				breakEmitted = true
			}
		}
	}
	return out
}
