// Package printer is a width-aware pretty printer for layout documents.
//
// A document is a flat stream of operations: literal text, breaks that
// render as a space-like filler when their group fits on the line and as a
// newline otherwise, groups, and indentation scopes. Callers record the
// stream through a [Printer] and resolve it once with [Printer.EOF]:
//
//	p := printer.New(printer.Options{MaxWidth: 40})
//	p.Begin()
//	p.Word("<span>")
//	p.Indent(4)
//	p.Zerobreak()
//	p.Word(`"hello"`)
//	p.Dedent()
//	p.Zerobreak()
//	p.Word("</span>")
//	p.End()
//	out := p.EOF()
//
// Groups and indentation scopes must nest like balanced parentheses. A
// violation is a programming error in the caller; the printer panics with an
// assertion failure from github.com/cockroachdb/errors.
package printer
