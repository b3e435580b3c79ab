package formatter

import (
	"github.com/grindlemire/viewfmt/pkg/printer"
	"github.com/grindlemire/viewfmt/pkg/view"
)

// children lowers the content of an element or fragment, indented one
// level. Textual children may share a line with their parent's tags when
// soft is allowed; anything else puts every child on its own line.
func (f *Formatter) children(p *printer.Printer, children []view.Node, soft bool) {
	if len(children) == 0 {
		return
	}
	soft = soft && allTextual(children)

	p.Indent(p.Options().IndentWidth)
	for i, child := range children {
		switch {
		case !soft:
			p.Hardbreak()
		case i == 0:
			p.Zerobreak()
		default:
			p.Space()
		}
		f.Node(p, child)
	}
	p.Dedent()

	if soft {
		p.Zerobreak()
	} else {
		p.Hardbreak()
	}
}

func allTextual(nodes []view.Node) bool {
	for _, n := range nodes {
		if !view.IsTextual(n) {
			return false
		}
	}
	return true
}
