// Package marktext parses a lightweight markup dialect into ordered,
// styled, justified text runs ready for any text-display surface.
//
// The dialect covers three things: block-level justification directives
// ([justify:left|center|right] ... [/justify]), line-initial headings
// (#, ##, ###), and inline emphasis markers (*italic*, **bold**,
// ***bold italic***, __underline__, composable by nesting). Everything
// the parser does not recognize stays literal; there are no fatal parse
// errors.
//
// Parsing is a pure batch computation: each call allocates its own
// state and the output is a flat sequence of segments or elements.
// Calls may run concurrently on independent inputs.
//
// Example:
//
//	err := marktext.Render(marktext.RenderRequest{
//		Source: marktext.Text("# Hello\n\n**bold** and *italic*\n"),
//		Writer: os.Stdout,
//		Width:  80,
//		Theme:  marktext.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The lower-level entry points ParseBlocks, ParseLine and ParseDocument
// expose the parse result directly for custom renderers; the tui
// subpackage renders the same output to a terminal screen.
package marktext
