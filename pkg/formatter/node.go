package formatter

import (
	"github.com/grindlemire/viewfmt/internal/errors"
	"github.com/grindlemire/viewfmt/pkg/printer"
	"github.com/grindlemire/viewfmt/pkg/view"
)

// Node lowers n into p. Unknown node types are a programming error and
// panic with an assertion failure.
func (f *Formatter) Node(p *printer.Printer, n view.Node) {
	switch n := n.(type) {
	case *view.Element:
		f.element(p, n)
	case *view.Attribute:
		f.attribute(p, n)
	case *view.Text:
		f.values().RenderValue(p, n.Value, false, false)
	case *view.Comment:
		f.comment(p, n)
	case *view.Doctype:
		f.doctype(p, n)
	case *view.Block:
		f.values().RenderValue(p, n.Value, false, false)
	case *view.Fragment:
		f.fragment(p, n)
	default:
		panic(errors.AssertionFailedf("formatter: unknown node type %T", n))
	}
}

// comment never breaks, however long it is.
func (f *Formatter) comment(p *printer.Printer, c *view.Comment) {
	p.Word("<!-- ")
	f.values().RenderValue(p, c.Value, false, false)
	p.Word(" -->")
}

// doctype is followed by a single space.
func (f *Formatter) doctype(p *printer.Printer, d *view.Doctype) {
	p.Word("<!DOCTYPE ")
	f.values().RenderValue(p, d.Value, false, false)
	p.Word("> ")
}

func (f *Formatter) values() ValueRenderer {
	if f.Values == nil {
		return GoValueRenderer{}
	}
	return f.Values
}
