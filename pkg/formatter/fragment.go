package formatter

import (
	"github.com/grindlemire/viewfmt/pkg/printer"
	"github.com/grindlemire/viewfmt/pkg/view"
)

// fragment lowers <>children</> as one group.
func (f *Formatter) fragment(p *printer.Printer, frag *view.Fragment) {
	p.Begin()
	p.Word("<>")
	f.children(p, frag.Children, true)
	p.Word("</>")
	p.End()
}
