package formatter

import (
	"github.com/grindlemire/viewfmt/pkg/printer"
	"github.com/grindlemire/viewfmt/pkg/view"
)

// voidElements are the HTML elements that never have content.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// element lowers <name attrs/> or <name attrs>children</name> as one group.
func (f *Formatter) element(p *printer.Printer, e *view.Element) {
	selfClosing := f.selfClosing(e)

	p.Begin()
	p.Word("<" + e.Name)

	if selfClosing {
		f.attributes(p, e.Attributes, "/>")
	} else {
		f.attributes(p, e.Attributes, ">")
		f.children(p, e.Children, len(e.Attributes) <= 1)
		p.Word("</" + e.Name + ">")
	}

	p.End()
}

// selfClosing decides the form of the element's closing tag.
func (f *Formatter) selfClosing(e *view.Element) bool {
	if len(e.Children) > 0 {
		return false
	}
	if voidElements[e.Name] {
		return true
	}

	switch f.Settings.ClosingTagStyle {
	case ClosingSelfClosing:
		return true
	case ClosingNonSelfClosing:
		return false
	default:
		return e.SelfClosing
	}
}
