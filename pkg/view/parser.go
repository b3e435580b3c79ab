package view

import (
	"strings"
)

// Parser parses .view source into a forest of syntax nodes.
type Parser struct {
	lexer   *Lexer
	current Token
	errors  *ErrorList
}

// NewParser creates a new Parser for the given lexer. Lexer and parser
// errors are collected in one list.
func NewParser(lexer *Lexer) *Parser {
	p := &Parser{
		lexer:  lexer,
		errors: lexer.errors,
	}
	p.advance()
	return p
}

// Errors returns any errors encountered during lexing and parsing.
func (p *Parser) Errors() *ErrorList {
	return p.errors
}

// advance moves to the next token. The parser never looks further ahead
// than the current token, so the lexer always sits right after it and
// composite tokens can be read on demand.
func (p *Parser) advance() {
	p.current = p.lexer.Next()
}

// position returns the current token's position.
func (p *Parser) position() Position {
	return Position{
		File:   p.lexer.filename,
		Line:   p.current.Line,
		Column: p.current.Column,
	}
}

// expect checks if the current token matches the expected type and advances.
// Returns true if matched, false otherwise (and records an error).
func (p *Parser) expect(typ TokenType) bool {
	if p.current.Type == typ {
		p.advance()
		return true
	}
	p.errors.addf(p.position(), "expected %s, got %s", typ, p.current.Type)
	return false
}

// Parse parses a complete .view source into its root nodes.
func Parse(filename, src string) ([]Node, error) {
	return NewParser(NewLexer(filename, src)).ParseNodes()
}

// ParseNodes parses nodes until end of input.
func (p *Parser) ParseNodes() ([]Node, error) {
	var nodes []Node

	for p.current.Type != TokenEOF {
		switch p.current.Type {
		case TokenLAngleSlash, TokenFragmentClose:
			p.errors.add(p.position(), "unexpected closing tag", "remove it or add the matching opening tag")
			p.skipClosingTag()
			continue
		}

		if n := p.parseNode(); n != nil {
			nodes = append(nodes, n)
		}
	}

	if err := p.errors.Err(); err != nil {
		return nil, err
	}
	return nodes, nil
}

// parseNode parses a single node at the current token. It always consumes
// at least one token.
func (p *Parser) parseNode() Node {
	switch p.current.Type {
	case TokenLAngle:
		if elem := p.parseElement(); elem != nil {
			return elem
		}
	case TokenFragmentOpen:
		return p.parseFragment()
	case TokenCommentOpen:
		if c := p.parseComment(); c != nil {
			return c
		}
	case TokenDoctype:
		if d := p.parseDoctype(); d != nil {
			return d
		}
	case TokenString, TokenRawString:
		text := &Text{
			Value:    p.literal(),
			Position: p.position(),
		}
		p.advance()
		return text
	case TokenLBrace:
		pos := p.position()
		value, ok := p.parseBraced()
		if ok {
			return &Block{Value: value, Position: pos}
		}
	case TokenError:
		// already reported by the lexer
		p.advance()
	default:
		p.errors.addf(p.position(), "unexpected %s", p.current.Type)
		p.advance()
	}
	return nil
}

// literal returns the current token as a literal Value.
func (p *Parser) literal() Value {
	return Value{Kind: ValueLiteral, Source: p.current.Literal, Position: p.position()}
}

// parseElement parses <name attrs/> or <name attrs>children</name>.
func (p *Parser) parseElement() *Element {
	pos := p.position()
	p.advance() // consume <

	if p.current.Type != TokenName {
		p.errors.add(p.position(), "expected element name", "use <> for a fragment")
		return nil
	}

	elem := &Element{
		Name:     p.current.Literal,
		Position: pos,
	}
	p.advance()

	elem.Attributes = p.parseAttributes()

	if p.current.Type == TokenSlashAngle {
		elem.SelfClosing = true
		p.advance()
		return elem
	}

	if !p.expect(TokenRAngle) {
		return elem
	}

	elem.Children = p.parseChildren()

	if p.current.Type != TokenLAngleSlash {
		p.errors.add(pos, "unclosed element <"+elem.Name+">", "add </"+elem.Name+">")
		return elem
	}
	p.advance()

	if p.current.Type != TokenName || p.current.Literal != elem.Name {
		p.errors.add(p.position(),
			"mismatched closing tag: expected </"+elem.Name+">, got </"+p.current.Literal+">",
			"element opened at "+pos.String())
	}
	if p.current.Type == TokenName {
		p.advance()
	}
	p.expect(TokenRAngle)

	return elem
}

// parseAttributes parses attributes until > or /> or an unexpected token.
func (p *Parser) parseAttributes() []*Attribute {
	var attrs []*Attribute

	for {
		switch p.current.Type {
		case TokenName:
			if attr := p.parseAttribute(); attr != nil {
				attrs = append(attrs, attr)
			}
		case TokenLBrace:
			pos := p.position()
			if value, ok := p.parseBraced(); ok {
				attrs = append(attrs, &Attribute{Value: value, Position: pos})
			}
		default:
			return attrs
		}
	}
}

// parseAttribute parses key or key=value.
func (p *Parser) parseAttribute() *Attribute {
	attr := &Attribute{
		Key:      p.current.Literal,
		Position: p.position(),
	}
	p.advance()

	// Bare attribute such as `hidden`
	if p.current.Type != TokenEquals {
		return attr
	}
	p.advance() // consume =

	switch p.current.Type {
	case TokenString, TokenRawString, TokenRune, TokenNumber:
		attr.Value = p.literal()
		p.advance()
	case TokenName:
		attr.Value = Value{Kind: ValueExpr, Source: p.current.Literal, Position: p.position()}
		p.advance()
	case TokenLBrace:
		value, ok := p.parseBraced()
		if !ok {
			return nil
		}
		attr.Value = value
	default:
		p.errors.add(p.position(), "expected value for attribute "+attr.Key+", got "+p.current.Type.String(),
			"wrap expressions in braces: "+attr.Key+"={...}")
		return nil
	}

	return attr
}

// parseChildren parses children until a closing tag or end of input.
func (p *Parser) parseChildren() []Node {
	var children []Node

	for {
		switch p.current.Type {
		case TokenLAngleSlash, TokenFragmentClose, TokenEOF:
			return children
		}

		if n := p.parseNode(); n != nil {
			children = append(children, n)
		}
	}
}

// parseFragment parses <>children</>.
func (p *Parser) parseFragment() *Fragment {
	frag := &Fragment{Position: p.position()}
	p.advance() // consume <>

	frag.Children = p.parseChildren()

	if p.current.Type != TokenFragmentClose {
		p.errors.add(frag.Position, "unclosed fragment", "add </>")
		return frag
	}
	p.advance()

	return frag
}

// parseComment parses <!-- "text" -->.
func (p *Parser) parseComment() *Comment {
	pos := p.position()
	p.advance() // consume <!--

	if p.current.Type != TokenString && p.current.Type != TokenRawString {
		p.errors.add(p.position(), "expected string literal in comment", `write comments as <!-- "text" -->`)
		p.skipPast(TokenCommentClose)
		return nil
	}

	comment := &Comment{
		Value:    p.literal(),
		Position: pos,
	}
	p.advance()

	if !p.expect(TokenCommentClose) {
		p.skipPast(TokenCommentClose)
	}
	return comment
}

// parseDoctype parses <!DOCTYPE value>. The value's whitespace runs are
// collapsed to single spaces.
func (p *Parser) parseDoctype() *Doctype {
	pos := p.position()

	tok := p.lexer.ReadDoctype()
	p.advance()
	if tok.Type == TokenError {
		return nil
	}

	return &Doctype{
		Value: Value{
			Kind:     ValueRaw,
			Source:   strings.Join(strings.Fields(tok.Literal), " "),
			Position: Position{File: p.lexer.filename, Line: tok.Line, Column: tok.Column},
		},
		Position: pos,
	}
}

// parseBraced parses {expr} at the current { token.
func (p *Parser) parseBraced() (Value, bool) {
	tok := p.lexer.ReadBraced()
	p.advance()
	if tok.Type == TokenError {
		return Value{}, false
	}

	return Value{
		Kind:     ValueBraced,
		Source:   tok.Literal,
		Position: Position{File: p.lexer.filename, Line: tok.Line, Column: tok.Column},
	}, true
}

// skipClosingTag skips a stray </name> or </>.
func (p *Parser) skipClosingTag() {
	if p.current.Type == TokenFragmentClose {
		p.advance()
		return
	}
	p.advance() // consume </
	if p.current.Type == TokenName {
		p.advance()
	}
	if p.current.Type == TokenRAngle {
		p.advance()
	}
}

// skipPast advances until typ has been consumed or input ends.
func (p *Parser) skipPast(typ TokenType) {
	for p.current.Type != typ && p.current.Type != TokenEOF {
		p.advance()
	}
	if p.current.Type == typ {
		p.advance()
	}
}
