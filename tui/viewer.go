// Package tui renders parsed marktext documents to a terminal screen
// with scrolling and a footer line.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"pkt.systems/marktext"
)

const (
	noContentText      = "No text available"
	richInputErrorText = "Error: rich text mode requires plain text input."
)

// Option configures a Viewer.
type Option func(*Viewer)

// WithFooter sets the footer text shown on the bottom line.
func WithFooter(text string) Option {
	return func(v *Viewer) {
		v.footer = text
	}
}

// WithPlain disables markup interpretation.
func WithPlain(enabled bool) Option {
	return func(v *Viewer) {
		v.plain = enabled
	}
}

type span struct {
	style tcell.Style
	text  string
}

type visualLine struct {
	spans []span
	width int
	align marktext.Alignment
}

// Viewer displays a parsed document on a tcell screen. Layout is
// recomputed when the screen width changes.
type Viewer struct {
	source     marktext.Source
	footer     string
	plain      bool
	offset     int
	viewHeight int
	layoutW    int
	lines      []visualLine
}

// NewViewer creates a viewer for the source.
func NewViewer(source marktext.Source, opts ...Option) *Viewer {
	v := &Viewer{source: source}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// SetSource replaces the displayed source and resets scrolling.
func (v *Viewer) SetSource(source marktext.Source) {
	v.source = source
	v.offset = 0
	v.layoutW = 0
}

// ScrollBy moves the viewport by delta lines; Draw clamps the result.
func (v *Viewer) ScrollBy(delta int) {
	v.offset += delta
}

// ScrollTo jumps the viewport to the given top line.
func (v *Viewer) ScrollTo(top int) {
	v.offset = top
}

// Draw renders the visible window and footer. The caller shows the
// screen.
func (v *Viewer) Draw(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if w != v.layoutW {
		v.relayout(w)
	}
	view := h - 1
	if view < 1 {
		view = h
	}
	v.viewHeight = view
	maxOffset := len(v.lines) - view
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
	s.Clear()
	for y := 0; y < view && v.offset+y < len(v.lines); y++ {
		line := v.lines[v.offset+y]
		x := alignOffset(line, w)
		for _, sp := range line.spans {
			for _, r := range sp.text {
				cw := runewidth.RuneWidth(r)
				if cw == 0 {
					continue
				}
				if x+cw > w {
					break
				}
				s.SetContent(x, y, r, nil, sp.style)
				x += cw
			}
		}
	}
	if h > 1 {
		v.drawFooter(s, w, h-1, maxOffset)
	}
}

func alignOffset(line visualLine, width int) int {
	if line.width >= width {
		return 0
	}
	switch line.align {
	case marktext.AlignCenter:
		return (width - line.width) / 2
	case marktext.AlignRight:
		return width - line.width
	default:
		return 0
	}
}

func (v *Viewer) drawFooter(s tcell.Screen, width, y, maxOffset int) {
	pos := "All"
	if maxOffset > 0 {
		switch v.offset {
		case 0:
			pos = "Top"
		case maxOffset:
			pos = "Bot"
		default:
			pos = fmt.Sprintf("%d%%", v.offset*100/maxOffset)
		}
	}
	x := 0
	for _, r := range v.footer {
		cw := runewidth.RuneWidth(r)
		if cw == 0 || x+cw > width-len(pos)-1 {
			break
		}
		s.SetContent(x, y, r, nil, footerStyle)
		x += cw
	}
	x = width - len(pos)
	for _, r := range pos {
		if x >= 0 && x < width {
			s.SetContent(x, y, r, nil, footerStyle)
		}
		x++
	}
}

func (v *Viewer) relayout(width int) {
	v.layoutW = width
	v.lines = v.lines[:0]
	switch {
	case v.source.IsZero():
		v.lines = append(v.lines, wrapSpans([]span{{style: textStyle, text: noContentText}}, width, marktext.AlignDefault)...)
	case v.plain:
		text := strings.TrimSuffix(v.source.Flatten(), "\n")
		for _, line := range strings.Split(text, "\n") {
			v.lines = append(v.lines, wrapSpans([]span{{style: textStyle, text: line}}, width, marktext.AlignDefault)...)
		}
	case !v.source.Rich():
		v.lines = append(v.lines, wrapSpans([]span{{style: textStyle, text: richInputErrorText}}, width, marktext.AlignDefault)...)
	default:
		for _, el := range marktext.ParseDocument(v.source.Flatten()) {
			switch el.Kind {
			case marktext.ElementBreak:
				v.lines = append(v.lines, visualLine{})
			case marktext.ElementHeading:
				v.lines = append(v.lines, wrapSpans([]span{{style: headingStyle(el.Level), text: el.Text}}, width, el.Align)...)
			case marktext.ElementParagraph:
				spans := make([]span, 0, len(el.Segments))
				for _, seg := range el.Segments {
					spans = append(spans, span{style: spanStyle(seg.Styles), text: seg.Text})
				}
				v.lines = append(v.lines, wrapSpans(spans, width, el.Align)...)
			}
		}
	}
	if len(v.lines) == 0 {
		v.lines = append(v.lines, visualLine{})
	}
}

// wrapSpans hard-wraps a styled line at the screen width, accounting
// for rune cell widths. A space causing the break is dropped so wrapped
// lines do not start with it.
func wrapSpans(spans []span, width int, align marktext.Alignment) []visualLine {
	if width <= 0 {
		width = 1
	}
	var out []visualLine
	cur := visualLine{align: align}
	var pend strings.Builder
	var pendStyle tcell.Style
	flushSpan := func() {
		if pend.Len() > 0 {
			cur.spans = append(cur.spans, span{style: pendStyle, text: pend.String()})
			pend.Reset()
		}
	}
	for _, sp := range spans {
		if pend.Len() > 0 && sp.style != pendStyle {
			flushSpan()
		}
		pendStyle = sp.style
		for _, r := range sp.text {
			cw := runewidth.RuneWidth(r)
			if cur.width > 0 && cur.width+cw > width {
				flushSpan()
				out = append(out, cur)
				cur = visualLine{align: align}
				if r == ' ' {
					continue
				}
			}
			pend.WriteRune(r)
			cur.width += cw
		}
	}
	flushSpan()
	out = append(out, cur)
	return out
}

// Run opens a screen, displays the source and blocks until the user
// quits with q or Escape.
func Run(source marktext.Source, opts ...Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tui: init screen: %w", err)
	}
	defer screen.Fini()
	v := NewViewer(source, opts...)
	v.eventLoop(screen)
	return nil
}

func (v *Viewer) eventLoop(s tcell.Screen) {
	for {
		v.Draw(s)
		s.Show()
		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if !v.handleKey(s, ev) {
				return
			}
		}
	}
}

// handleKey returns false when the viewer should close.
func (v *Viewer) handleKey(s tcell.Screen, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.ScrollBy(-1)
	case tcell.KeyDown:
		v.ScrollBy(1)
	case tcell.KeyPgUp:
		v.ScrollBy(-v.viewHeight)
	case tcell.KeyPgDn:
		v.ScrollBy(v.viewHeight)
	case tcell.KeyHome:
		v.ScrollTo(0)
	case tcell.KeyEnd:
		v.ScrollTo(len(v.lines))
	case tcell.KeyCtrlL:
		s.Sync()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			v.ScrollBy(-1)
		case 'j':
			v.ScrollBy(1)
		case ' ':
			v.ScrollBy(v.viewHeight)
		case 'g':
			v.ScrollTo(0)
		case 'G':
			v.ScrollTo(len(v.lines))
		}
	}
	return true
}
