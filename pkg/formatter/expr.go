package formatter

import (
	"bytes"
	"go/ast"
	goparser "go/parser"
	goprinter "go/printer"
	"go/scanner"
	"go/token"
	"strings"

	"github.com/grindlemire/viewfmt/pkg/printer"
	"github.com/grindlemire/viewfmt/pkg/view"
)

// ValueRenderer lowers the payload of leaf nodes and attributes.
//
// blockContext asks for a multi-line braced value to put its braces on
// their own lines with the body indented. trailingPunct appends a comma.
type ValueRenderer interface {
	RenderValue(p *printer.Printer, v view.Value, blockContext, trailingPunct bool)
}

// GoValueRenderer renders values whose expressions are Go. Expressions are
// printed the way gofmt prints them; source that does not parse is kept
// as written.
type GoValueRenderer struct{}

// gofmt's printer configuration.
var goPrinterConfig = goprinter.Config{Mode: goprinter.UseSpaces | goprinter.TabIndent, Tabwidth: 8}

// RenderValue implements ValueRenderer.
func (GoValueRenderer) RenderValue(p *printer.Printer, v view.Value, blockContext, trailingPunct bool) {
	switch v.Kind {
	case view.ValueNone:
	case view.ValueLiteral, view.ValueRaw:
		p.Word(v.Source)
	case view.ValueExpr:
		text, ok := formatGoExpr(v.Source)
		emitLines(p, text, !ok)
	case view.ValueBraced:
		text, ok := formatGoExpr(v.Source)
		if blockContext && strings.Contains(text, "\n") {
			p.Word("{")
			p.Indent(p.Options().IndentWidth)
			p.Hardbreak()
			emitLines(p, text, !ok)
			p.Dedent()
			p.Hardbreak()
			p.Word("}")
		} else {
			p.Word("{")
			emitLines(p, text, !ok)
			p.Word("}")
		}
	default:
		p.Word(v.Source)
	}

	if trailingPunct {
		p.Word(",")
	}
}

// emitLines writes multi-line text line by line. Leading whitespace of
// continuation lines becomes indentation scopes, a tab counting as one
// indentation unit, so the text follows the surrounding indentation and
// indentation style. With verbatim set, the indentation shared by all
// continuation lines is dropped first: it is where the text was last
// printed.
func emitLines(p *printer.Printer, text string, verbatim bool) {
	// Raw strings may span lines; their content must not be re-indented.
	if !strings.Contains(text, "\n") || strings.Contains(text, "`") {
		p.Word(text)
		return
	}

	unit := p.Options().IndentWidth
	lines := strings.Split(text, "\n")
	shared := 0
	if verbatim {
		shared = sharedIndent(lines[1:], unit)
	}

	p.Word(lines[0])
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			p.Hardbreak()
			continue
		}

		depth := indentColumns(line[:len(line)-len(trimmed)], unit) - shared
		if depth > 0 {
			p.Indent(depth)
		}
		p.Hardbreak()
		p.Word(trimmed)
		if depth > 0 {
			p.Dedent()
		}
	}
}

// indentColumns measures leading whitespace: a tab is one indentation
// unit, a space one column.
func indentColumns(ws string, unit int) int {
	n := 0
	for _, c := range ws {
		if c == '\t' {
			n += unit
		} else {
			n++
		}
	}
	return n
}

// sharedIndent returns the smallest indentation of the non-blank lines.
func sharedIndent(lines []string, unit int) int {
	shared := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		if n := indentColumns(line[:len(line)-len(trimmed)], unit); shared < 0 || n < shared {
			shared = n
		}
	}
	return max(shared, 0)
}

// formatGoExpr returns the gofmt form of a Go expression and whether it
// parsed. Unparseable or commented source is returned trimmed.
func formatGoExpr(src string) (string, bool) {
	src = strings.TrimSpace(src)
	if src == "" || hasGoComment(src) {
		return src, false
	}

	fset := token.NewFileSet()
	expr, err := goparser.ParseExprFrom(fset, "", src, 0)
	if err != nil {
		return src, false
	}

	var buf bytes.Buffer
	if err := goPrinterConfig.Fprint(&buf, fset, expr); err != nil {
		return src, false
	}
	return buf.String(), true
}

// hasGoComment reports whether src contains a Go comment. Printing a lone
// expression would drop it.
func hasGoComment(src string) bool {
	var s scanner.Scanner
	fset := token.NewFileSet()
	s.Init(fset.AddFile("", fset.Base(), len(src)), []byte(src), nil, scanner.ScanComments)
	for {
		_, tok, _ := s.Scan()
		switch tok {
		case token.EOF:
			return false
		case token.COMMENT:
			return true
		}
	}
}

type exprClass uint8

const (
	exprOther exprClass = iota
	exprLiteral
	exprPath
)

// classifyGoExpr reports whether src is a single literal (optionally
// negated number) or an identifier path such as a.b.c.
func classifyGoExpr(src string) exprClass {
	expr, err := goparser.ParseExpr(strings.TrimSpace(src))
	if err != nil {
		return exprOther
	}

	switch e := expr.(type) {
	case *ast.BasicLit:
		return exprLiteral
	case *ast.UnaryExpr:
		if lit, ok := e.X.(*ast.BasicLit); ok && e.Op == token.SUB && lit.Kind != token.STRING && lit.Kind != token.CHAR {
			return exprLiteral
		}
	case *ast.Ident, *ast.SelectorExpr:
		if isPath(e) {
			return exprPath
		}
	}
	return exprOther
}

func isPath(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		return isPath(e.X)
	}
	return false
}
