package marktext

import (
	"sort"
	"strings"

	"pkt.systems/marktext/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the ANSI renderer. Span is
// a fixed table over the eight style combinations, indexed directly by
// a StyleSet bitset; Span[0] is the plain content style.
type Styles struct {
	Text    Style
	Heading [3]Style
	Span    [NumStyleSets]Style
	Footer  Style
}

// Theme provides named styles for rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	var span [NumStyleSets]Style
	for i := range span {
		set := StyleSet(i)
		var prefixes []string
		color := p.Text
		if set.Has(StyleBold) {
			prefixes = append(prefixes, palette.Bold)
			color = p.Strong
		}
		if set.Has(StyleItalic) {
			prefixes = append(prefixes, palette.Italic)
			if set.Has(StyleBold) {
				color = p.EmphasisStrong
			} else {
				color = p.Emphasis
			}
		}
		if set.Has(StyleUnderline) {
			prefixes = append(prefixes, palette.Underline)
		}
		prefixes = append(prefixes, color)
		span[i] = style(prefixes...)
	}
	return Styles{
		Text:    style(p.Text),
		Heading: [3]Style{style(palette.Bold, p.H1), style(palette.Bold, p.H2), style(palette.Bold, p.H3)},
		Span:    span,
		Footer:  style(palette.Faint, p.Text),
	}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"mono":    theme{name: "mono", styles: stylesFromPalette(palette.PaletteMono)},
	"gruvbox": theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"nord":    theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"dracula": theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
