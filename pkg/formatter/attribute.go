package formatter

import (
	"github.com/grindlemire/viewfmt/pkg/printer"
	"github.com/grindlemire/viewfmt/pkg/view"
)

// attributes lowers an element's attribute list followed by closer, the
// ">" or "/>" ending the opening tag. Two or more attributes form a group
// that, when broken, puts each attribute on its own indented line and the
// closer back at the column of the "<".
func (f *Formatter) attributes(p *printer.Printer, attrs []*view.Attribute, closer string) {
	switch len(attrs) {
	case 0:
		p.Word(closer)
	case 1:
		p.Word(" ")
		f.attribute(p, attrs[0])
		p.Word(closer)
	default:
		p.Begin()
		p.Indent(p.Options().IndentWidth)
		for _, attr := range attrs {
			p.Space()
			f.attribute(p, attr)
		}
		p.Dedent()
		p.Zerobreak()
		p.Word(closer)
		p.End()
	}
}

// attribute lowers key, key=value or a {block} attribute.
func (f *Formatter) attribute(p *printer.Printer, a *view.Attribute) {
	if a.IsBlock() {
		v := a.Value
		v.Kind = view.ValueBraced
		f.values().RenderValue(p, v, false, false)
		return
	}

	p.Word(a.Key)
	if a.Value.IsZero() {
		return
	}
	p.Word("=")
	f.values().RenderValue(p, f.braceAttrValue(a.Value), false, false)
}

// braceAttrValue rewrites an attribute value to the configured brace style.
func (f *Formatter) braceAttrValue(v view.Value) view.Value {
	switch f.Settings.AttrValueBraceStyle {
	case BraceAlways:
		if v.Kind == view.ValueLiteral || v.Kind == view.ValueExpr {
			v.Kind = view.ValueBraced
		}

	case BraceAlwaysUnlessLit:
		switch v.Kind {
		case view.ValueExpr:
			v.Kind = view.ValueBraced
		case view.ValueBraced:
			if classifyGoExpr(v.Source) == exprLiteral {
				v = unbrace(v, view.ValueLiteral)
			}
		}

	case BraceWhenRequired:
		if v.Kind == view.ValueBraced {
			switch classifyGoExpr(v.Source) {
			case exprLiteral:
				v = unbrace(v, view.ValueLiteral)
			case exprPath:
				v = unbrace(v, view.ValueExpr)
			}
		}
	}
	return v
}

func unbrace(v view.Value, kind view.ValueKind) view.Value {
	v.Source, _ = formatGoExpr(v.Source)
	v.Kind = kind
	return v
}
