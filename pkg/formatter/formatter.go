package formatter

import (
	"runtime"
	"strings"

	"github.com/grindlemire/viewfmt/internal/errors"
	"github.com/grindlemire/viewfmt/pkg/printer"
	"github.com/grindlemire/viewfmt/pkg/view"
)

// Formatter formats .view source code. It holds no per-pass state and may
// be used from several goroutines.
type Formatter struct {
	// Settings controls layout. Validated on every Format call.
	Settings Settings
	// Values renders leaf and attribute payloads (default: GoValueRenderer).
	Values ValueRenderer
}

// New creates a new Formatter with the given settings.
func New(settings Settings) *Formatter {
	return &Formatter{
		Settings: settings,
		Values:   GoValueRenderer{},
	}
}

// Format parses and reformats the given .view source code.
// Returns the formatted code and any error encountered during parsing.
func (f *Formatter) Format(filename, source string) (string, error) {
	nodes, err := view.Parse(filename, source)
	if err != nil {
		return "", err
	}

	formatted, err := f.FormatNodes(nodes)
	if err != nil {
		return "", err
	}

	return f.lineEndings(formatted, source), nil
}

// FormatResult contains the result of formatting a file.
type FormatResult struct {
	// Content is the formatted content.
	Content string
	// Changed indicates if the content was different from the original.
	Changed bool
}

// FormatWithResult formats the source and indicates if it changed.
func (f *Formatter) FormatWithResult(filename, source string) (FormatResult, error) {
	formatted, err := f.Format(filename, source)
	if err != nil {
		return FormatResult{}, err
	}

	return FormatResult{
		Content: formatted,
		Changed: formatted != source,
	}, nil
}

// FormatNodes lowers already parsed root nodes into one document separated
// by line breaks, ending in a single "\n". No roots produce "".
//
// A malformed document is reported as an error for which
// errors.IsAssertionFailure is true; any other panic propagates.
func (f *Formatter) FormatNodes(nodes []view.Node) (out string, err error) {
	if err := f.Settings.Validate(); err != nil {
		return "", err
	}
	if len(nodes) == 0 {
		return "", nil
	}

	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if !ok || !errors.IsAssertionFailure(perr) {
				panic(r)
			}
			out, err = "", perr
		}
	}()

	p := printer.New(f.Settings.printerOptions())
	for i, n := range nodes {
		if i > 0 {
			p.Hardbreak()
		}
		f.Node(p, n)
	}
	return p.EOF() + "\n", nil
}

// lineEndings applies the configured newline style. source decides the
// style in auto mode.
func (f *Formatter) lineEndings(formatted, source string) string {
	var crlf bool
	switch f.Settings.NewlineStyle {
	case NewlineWindows:
		crlf = true
	case NewlineNative:
		crlf = runtime.GOOS == "windows"
	case NewlineAuto:
		i := strings.IndexByte(source, '\n')
		crlf = i > 0 && source[i-1] == '\r'
	}

	formatted = strings.ReplaceAll(formatted, "\r\n", "\n")
	if crlf {
		formatted = strings.ReplaceAll(formatted, "\n", "\r\n")
	}
	return formatted
}
