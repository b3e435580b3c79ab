package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/viewfmt/internal/errors"
)

// spanOps is an element-like document: <span>"hello"</span> whose content
// moves to its own indented line when the group breaks. Flat width is 20.
func spanOps() []Op {
	return []Op{
		Begin(),
		Text("<span>"),
		Indent(4),
		Break(""),
		Text(`"hello"`),
		Dedent(),
		Break(""),
		Text("</span>"),
		End(),
	}
}

// nestedOps is an outer group of width 10 holding an inner group of width 5.
func nestedOps() []Op {
	return []Op{
		Begin(),
		Text("aaaa"),
		Indent(2),
		Break(" "),
		Begin(),
		Text("bb"),
		Break(" "),
		Text("cc"),
		End(),
		Dedent(),
		End(),
	}
}

func render(opts Options, ops []Op) string {
	p := New(opts)
	p.Emit(ops...)
	return p.EOF()
}

func TestPrinterGroups(t *testing.T) {
	type tc struct {
		maxWidth int
		ops      []Op
		want     string
	}

	tests := map[string]tc{
		"group fits on one line": {
			maxWidth: 40,
			ops:      spanOps(),
			want:     `<span>"hello"</span>`,
		},
		"exact fit stays flat": {
			maxWidth: 20,
			ops:      spanOps(),
			want:     `<span>"hello"</span>`,
		},
		"one column short breaks": {
			maxWidth: 19,
			ops:      spanOps(),
			want:     "<span>\n    \"hello\"\n</span>",
		},
		"flat outer group flattens inner group": {
			maxWidth: 10,
			ops:      nestedOps(),
			want:     "aaaa bb cc",
		},
		"inner group re-measured after outer breaks": {
			maxWidth: 8,
			ops:      nestedOps(),
			want:     "aaaa\n  bb cc",
		},
		"inner group breaks at current indentation": {
			maxWidth: 6,
			ops:      nestedOps(),
			want:     "aaaa\n  bb\n  cc",
		},
		"hard break forces the group to break": {
			maxWidth: 100,
			ops:      []Op{Begin(), Text("a"), Break(" "), Text("b"), Hardbreak(), Text("c"), End()},
			want:     "a\nb\nc",
		},
		"break outside any group is broken": {
			maxWidth: 100,
			ops:      []Op{Text("a"), Break(" "), Text("b")},
			want:     "a\nb",
		},
		"overlong text is emitted verbatim": {
			maxWidth: 10,
			ops:      []Op{Begin(), Text(strings.Repeat("x", 30)), End()},
			want:     strings.Repeat("x", 30),
		},
		"multi-line text breaks its group": {
			maxWidth: 100,
			ops:      []Op{Begin(), Text("a\nbb"), Break(" "), Text("c"), End()},
			want:     "a\nbb\nc",
		},
		"blank lines carry no indentation": {
			maxWidth: 100,
			ops:      []Op{Indent(4), Hardbreak(), Hardbreak(), Text("x"), Dedent()},
			want:     "\n\n    x",
		},
		"dedent restores the outer indentation": {
			maxWidth: 100,
			ops: []Op{
				Text("a"), Indent(2), Hardbreak(), Text("b"), Indent(2), Hardbreak(), Text("c"),
				Dedent(), Hardbreak(), Text("d"), Dedent(), Hardbreak(), Text("e"),
			},
			want: "a\n  b\n    c\n  d\ne",
		},
		"trailing text spaces are kept": {
			maxWidth: 100,
			ops:      []Op{Text("<!DOCTYPE html> ")},
			want:     "<!DOCTYPE html> ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := render(Options{MaxWidth: tt.maxWidth, IndentWidth: 4}, tt.ops)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrinterFitsFromCurrentColumn(t *testing.T) {
	// The group starts at column 6 and is 5 wide, so it needs a width of 11.
	ops := []Op{Text("prefix"), Begin(), Text("ab"), Break(" "), Text("cd"), End()}

	assert.Equal(t, "prefixab cd", render(Options{MaxWidth: 11}, ops))
	assert.Equal(t, "prefixab\ncd", render(Options{MaxWidth: 10}, ops))
}

func TestPrinterHardTabs(t *testing.T) {
	ops := []Op{Text("a"), Indent(4), Indent(2), Hardbreak(), Text("x"), Dedent(), Dedent()}

	got := render(Options{IndentWidth: 4, HardTabs: true}, ops)
	assert.Equal(t, "a\n\t  x", got)

	got = render(Options{IndentWidth: 4}, ops)
	assert.Equal(t, "a\n      x", got)
}

func TestPrinterWideCharacters(t *testing.T) {
	// Each CJK ideograph occupies two cells: flat width is 6 + 1 + 2.
	ops := []Op{Begin(), Text("日本語"), Break(" "), Text("ab"), End()}

	assert.Equal(t, "日本語 ab", render(Options{MaxWidth: 9}, ops))
	assert.Equal(t, "日本語\nab", render(Options{MaxWidth: 8}, ops))
}

func TestPrinterDeterministic(t *testing.T) {
	for width := 1; width <= 30; width++ {
		first := render(Options{MaxWidth: width}, nestedOps())
		second := render(Options{MaxWidth: width}, nestedOps())
		require.Equal(t, first, second, "width %d", width)
	}
}

func TestPrinterDefaults(t *testing.T) {
	p := New(Options{})
	assert.Equal(t, DefaultMaxWidth, p.Options().MaxWidth)
	assert.Equal(t, DefaultIndentWidth, p.Options().IndentWidth)
}

func TestPrinterMethodsRecordOps(t *testing.T) {
	p := New(Options{MaxWidth: 40})
	p.Begin()
	p.Word("a")
	p.Space()
	p.Zerobreak()
	p.Break(", ")
	p.Hardbreak()
	p.Indent(2)
	p.Dedent()
	p.End()

	var kinds []Kind
	for _, op := range p.Ops() {
		kinds = append(kinds, op.Kind())
	}
	assert.Equal(t, []Kind{
		KindBegin, KindText, KindBreak, KindBreak, KindBreak, KindHardbreak, KindIndent, KindDedent, KindEnd,
	}, kinds)
	assert.Equal(t, `Break(", ")`, p.Ops()[4].String())
	assert.Equal(t, "Indent(2)", p.Ops()[6].String())
}

// requireAssertionPanic runs fn and checks that it panics with an
// assertion-failure error.
func requireAssertionPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.IsAssertionFailure(err), "panic %v is not an assertion failure", err)
	}()
	fn()
}

func TestPrinterStructuralDefects(t *testing.T) {
	type tc struct {
		run func(p *Printer)
	}

	tests := map[string]tc{
		"end without begin": {
			run: func(p *Printer) { p.Word("a"); p.End() },
		},
		"dedent without indent": {
			run: func(p *Printer) { p.Dedent() },
		},
		"dedent closes a group": {
			run: func(p *Printer) { p.Begin(); p.Dedent() },
		},
		"end closes an indent": {
			run: func(p *Printer) { p.Indent(4); p.End() },
		},
		"crossed scopes": {
			run: func(p *Printer) { p.Begin(); p.Indent(4); p.End(); p.Dedent() },
		},
		"eof with open group": {
			run: func(p *Printer) { p.Begin(); p.Word("a"); p.EOF() },
		},
		"eof with open indent": {
			run: func(p *Printer) { p.Indent(2); p.EOF() },
		},
		"write after eof": {
			run: func(p *Printer) { p.EOF(); p.Word("a") },
		},
		"eof twice": {
			run: func(p *Printer) { p.EOF(); p.EOF() },
		},
		"unknown operation": {
			run: func(p *Printer) { p.Emit(Op{}) },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			requireAssertionPanic(t, func() {
				tt.run(New(Options{MaxWidth: 40}))
			})
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Begin", KindBegin.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.Equal(t, `Text("x")`, Text("x").String())
	assert.Equal(t, "Hardbreak", Hardbreak().String())
}
