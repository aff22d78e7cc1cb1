// Package palette holds ANSI escape constants and the color palettes
// backing the built-in themes.
package palette

// SGR attribute prefixes shared by all palettes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Faint     = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette is a set of foreground colors for the semantic styles. Empty
// fields mean "terminal default".
type Palette struct {
	Text           string
	H1             string
	H2             string
	H3             string
	Emphasis       string
	Strong         string
	EmphasisStrong string
}

func fg(n int) string {
	return "\x1b[38;5;" + itoa(n) + "m"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// PaletteMono uses attributes only, no colors.
var PaletteMono = Palette{}

var PaletteDefault = Palette{
	Text:           "",
	H1:             fg(81),
	H2:             fg(75),
	H3:             fg(69),
	Emphasis:       fg(222),
	Strong:         fg(215),
	EmphasisStrong: fg(209),
}

var PaletteGruvbox = Palette{
	Text:           fg(223),
	H1:             fg(214),
	H2:             fg(142),
	H3:             fg(109),
	Emphasis:       fg(108),
	Strong:         fg(208),
	EmphasisStrong: fg(167),
}

var PaletteNord = Palette{
	Text:           fg(189),
	H1:             fg(110),
	H2:             fg(109),
	H3:             fg(111),
	Emphasis:       fg(144),
	Strong:         fg(139),
	EmphasisStrong: fg(174),
}

var PaletteDracula = Palette{
	Text:           fg(253),
	H1:             fg(141),
	H2:             fg(117),
	H3:             fg(84),
	Emphasis:       fg(228),
	Strong:         fg(212),
	EmphasisStrong: fg(215),
}
