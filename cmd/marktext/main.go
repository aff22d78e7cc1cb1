package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/marktext"
	"pkt.systems/marktext/tui"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/marktext")
}

func main() {
	var (
		themeName  string
		widthFlag  int
		listThemes bool
		outPath    string
		plain      bool
		boring     bool
		tuiMode    bool
		footer     string
	)

	flags := pflag.NewFlagSet("marktext", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&plain, "plain", "p", false, "Disable markup interpretation")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate non-ANSI output")
	flags.BoolVar(&tuiMode, "tui", false, "Open an interactive viewer instead of writing output")
	flags.StringVar(&footer, "footer", "", "Footer line appended after the content")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: marktext [flags] [files...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no file is provided, text is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		printThemes()
		return
	}

	text, err := readInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	source := marktext.Text(text)

	theme, ok := marktext.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		printThemes()
		os.Exit(2)
	}
	if boring {
		theme = marktext.NewTheme("boring", marktext.Styles{})
	}

	if tuiMode {
		opts := []tui.Option{tui.WithFooter(footer), tui.WithPlain(plain)}
		if err := tui.Run(source, opts...); err != nil {
			fmt.Fprintf(os.Stderr, "tui: %v\n", err)
			os.Exit(1)
		}
		return
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	var options []marktext.RenderOption
	if plain {
		options = append(options, marktext.WithPlain(true))
	}
	if footer != "" {
		options = append(options, marktext.WithFooter(footer))
	}
	if err := marktext.Render(marktext.RenderRequest{
		Source:  source,
		Writer:  writer,
		Width:   resolveWidth(widthFlag),
		Theme:   theme,
		Options: options,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func printThemes() {
	for _, name := range marktext.AvailableThemes() {
		fmt.Fprintln(os.Stdout, name)
	}
}

// readInputs reads stdin or the named files, concatenated in argument
// order. The parser is a batch function, so inputs are read fully.
func readInputs(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	var b strings.Builder
	for _, arg := range args {
		data, err := os.ReadFile(normalizePath(arg))
		if err != nil {
			return "", err
		}
		b.Write(data)
	}
	return b.String(), nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}
