package printer

import (
	"github.com/grindlemire/viewfmt/internal/errors"
)

const (
	// DefaultMaxWidth is used when Options.MaxWidth is zero.
	DefaultMaxWidth = 100
	// DefaultIndentWidth is used when Options.IndentWidth is zero.
	DefaultIndentWidth = 4
)

// Options controls how a document is resolved.
type Options struct {
	// MaxWidth is the target maximum line width.
	MaxWidth int
	// IndentWidth is the number of columns of one indentation level. It is
	// also the display width of a tab.
	IndentWidth int
	// HardTabs indents with tabs (one per IndentWidth columns) instead of spaces.
	HardTabs bool
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.IndentWidth <= 0 {
		o.IndentWidth = DefaultIndentWidth
	}
	return o
}

// Printer records document operations for one formatting pass and resolves
// them into text on EOF. A Printer must not be shared between goroutines.
type Printer struct {
	opts Options
	ops  []Op

	// scopes holds the op index of every open group or indentation scope.
	scopes []int
	done   bool
}

// New creates a Printer. Zero option fields take their defaults.
func New(opts Options) *Printer {
	return &Printer{opts: opts.withDefaults()}
}

// Options returns the options the printer resolves with.
func (p *Printer) Options() Options {
	return p.opts
}

// Word appends literal text.
func (p *Printer) Word(s string) {
	p.Emit(Text(s))
}

// Break appends a separator rendering as flat when the enclosing group fits.
func (p *Printer) Break(flat string) {
	p.Emit(Break(flat))
}

// Space appends a break that renders as a single space when flat.
func (p *Printer) Space() {
	p.Emit(Break(" "))
}

// Zerobreak appends a break that renders as nothing when flat.
func (p *Printer) Zerobreak() {
	p.Emit(Break(""))
}

// Hardbreak appends an unconditional newline.
func (p *Printer) Hardbreak() {
	p.Emit(Hardbreak())
}

// Begin opens a group.
func (p *Printer) Begin() {
	p.Emit(Begin())
}

// End closes the innermost group.
func (p *Printer) End() {
	p.Emit(End())
}

// Indent opens an indentation scope of delta columns.
func (p *Printer) Indent(delta int) {
	p.Emit(Indent(delta))
}

// Dedent closes the innermost indentation scope.
func (p *Printer) Dedent() {
	p.Emit(Dedent())
}

// Emit appends raw operations, checking that groups and indentation scopes
// stay balanced.
func (p *Printer) Emit(ops ...Op) {
	for _, op := range ops {
		p.emit(op)
	}
}

func (p *Printer) emit(op Op) {
	if p.done {
		panic(errors.AssertionFailedf("printer: %s after EOF", op))
	}

	switch op.kind {
	case KindText, KindBreak, KindHardbreak:
	case KindBegin, KindIndent:
		p.scopes = append(p.scopes, len(p.ops))
	case KindEnd:
		p.close(KindBegin, op)
	case KindDedent:
		p.close(KindIndent, op)
	default:
		panic(errors.AssertionFailedf("printer: unknown operation %s", op))
	}

	p.ops = append(p.ops, op)
}

// close pops the innermost scope, which must have been opened by want.
func (p *Printer) close(want Kind, op Op) {
	if len(p.scopes) == 0 {
		panic(errors.AssertionFailedf("printer: %s at op %d without matching %s", op, len(p.ops), want))
	}
	top := p.scopes[len(p.scopes)-1]
	if got := p.ops[top].kind; got != want {
		panic(errors.AssertionFailedf("printer: %s at op %d closes %s opened at op %d", op, len(p.ops), got, top))
	}
	p.scopes = p.scopes[:len(p.scopes)-1]
}

// Ops returns a copy of the operations recorded so far.
func (p *Printer) Ops() []Op {
	ops := make([]Op, len(p.ops))
	copy(ops, p.ops)
	return ops
}

// EOF resolves the recorded document and returns the output. The printer
// cannot be written to afterwards. Unclosed groups or indentation scopes
// cause a panic with an assertion failure.
func (p *Printer) EOF() string {
	if p.done {
		panic(errors.AssertionFailedf("printer: EOF called twice"))
	}
	if n := len(p.scopes); n > 0 {
		top := p.scopes[n-1]
		panic(errors.AssertionFailedf("printer: EOF with %d unclosed scope(s); innermost is %s at op %d",
			n, p.ops[top], top))
	}
	p.done = true

	l := newLayout(p.opts, p.ops)
	return l.render()
}
