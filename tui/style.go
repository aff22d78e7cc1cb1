package tui

import (
	"github.com/gdamore/tcell/v2"

	"pkt.systems/marktext"
)

var (
	colorHeading1 = tcell.NewRGBColor(0x7a, 0xa2, 0xf7)
	colorHeading2 = tcell.NewRGBColor(0x2a, 0xc3, 0xde)
	colorHeading3 = tcell.NewRGBColor(0x7d, 0xcf, 0xff)
	colorFooter   = tcell.NewRGBColor(0x56, 0x5f, 0x89)
)

var (
	textStyle   = tcell.StyleDefault
	footerStyle = tcell.StyleDefault.Foreground(colorFooter)
)

func headingStyle(level int) tcell.Style {
	st := tcell.StyleDefault.Bold(true)
	switch level {
	case 1:
		return st.Foreground(colorHeading1)
	case 2:
		return st.Foreground(colorHeading2)
	default:
		return st.Foreground(colorHeading3)
	}
}

// spanStyle maps a style combination to tcell attributes.
func spanStyle(set marktext.StyleSet) tcell.Style {
	st := tcell.StyleDefault
	if set.Has(marktext.StyleBold) {
		st = st.Bold(true)
	}
	if set.Has(marktext.StyleItalic) {
		st = st.Italic(true)
	}
	if set.Has(marktext.StyleUnderline) {
		st = st.Underline(true)
	}
	return st
}
