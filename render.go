package marktext

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"

	"pkt.systems/marktext/internal/palette"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Source  Source
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

const (
	noContentText      = "No text available"
	richInputErrorText = "Error: rich text mode requires plain text input."
)

// Render parses the source and writes it as ANSI-styled, justified
// text. Anomalous input degrades to a placeholder or error line; the
// only returned errors come from the writer.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := renderConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	styles := theme.Styles()
	w := bufio.NewWriter(req.Writer)
	switch {
	case req.Source.IsZero():
		writeStyledLine(w, styles.Text, noContentText)
	case cfg.plain:
		writePlain(w, styles, req.Source.Flatten())
	case !req.Source.Rich():
		writeStyledLine(w, styles.Text, richInputErrorText)
	default:
		text := req.Source.Flatten()
		if err := ValidateInput([]byte(text)); err != nil {
			writeStyledLine(w, styles.Text, "Error: "+err.Error())
			break
		}
		writeElements(w, styles, ParseDocument(text), req.Width)
	}
	if cfg.footer != "" {
		writeStyledLine(w, styles.Footer, cfg.footer)
	}
	return w.Flush()
}

func writeElements(w *bufio.Writer, styles Styles, elements []Element, width int) {
	for _, el := range elements {
		switch el.Kind {
		case ElementBreak:
			w.WriteByte('\n')
		case ElementHeading:
			writeAligned(w, styled(styles.Heading[el.Level-1], el.Text), el.Align, width)
		case ElementParagraph:
			var b strings.Builder
			for _, seg := range el.Segments {
				b.WriteString(styled(styles.Span[seg.Styles], seg.Text))
			}
			writeAligned(w, b.String(), el.Align, width)
		}
	}
}

// writeAligned wraps the line ANSI-aware at width and pads each wrapped
// line per the block alignment, measured by printable rune width.
func writeAligned(w *bufio.Writer, line string, align Alignment, width int) {
	if width <= 0 {
		w.WriteString(line)
		w.WriteByte('\n')
		return
	}
	wrapped := wordwrap.String(line, width)
	for _, part := range strings.Split(wrapped, "\n") {
		pad := 0
		if printable := ansi.PrintableRuneWidth(part); printable < width {
			switch align {
			case AlignCenter:
				pad = (width - printable) / 2
			case AlignRight:
				pad = width - printable
			}
		}
		if pad > 0 {
			w.WriteString(strings.Repeat(" ", pad))
		}
		w.WriteString(part)
		w.WriteByte('\n')
	}
}

func writePlain(w *bufio.Writer, styles Styles, text string) {
	text = strings.TrimSuffix(text, "\n")
	for _, line := range strings.Split(text, "\n") {
		writeStyledLine(w, styles.Text, line)
	}
}

func writeStyledLine(w *bufio.Writer, st Style, text string) {
	w.WriteString(styled(st, text))
	w.WriteByte('\n')
}

func styled(st Style, text string) string {
	if st.Prefix == "" || text == "" {
		return text
	}
	return st.Prefix + text + palette.Reset
}
