package view

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes .view source.
type Lexer struct {
	filename string
	source   string
	pos      int  // current position in source
	readPos  int  // next position to read
	ch       rune // current character
	line     int  // current line (1-based)
	column   int  // current column (1-based)

	// Track the start position of current token
	tokenLine   int
	tokenColumn int

	errors *ErrorList
}

// NewLexer creates a new Lexer for the given source.
func NewLexer(filename, source string) *Lexer {
	l := &Lexer{
		filename: filename,
		source:   source,
		line:     1,
		column:   0,
		errors:   &ErrorList{},
	}
	l.readChar()
	return l
}

// Errors returns any errors encountered during lexing.
func (l *Lexer) Errors() *ErrorList {
	return l.errors
}

// readChar advances to the next character in the source.
func (l *Lexer) readChar() {
	prevWasNewline := l.ch == '\n'

	if l.readPos >= len(l.source) {
		l.ch = 0
		l.pos = len(l.source)
		l.readPos = len(l.source) + 1
	} else {
		r, size := utf8.DecodeRuneInString(l.source[l.readPos:])
		l.ch = r
		l.pos = l.readPos
		l.readPos += size
	}

	if prevWasNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// eof reports whether the whole source has been consumed. A NUL byte in
// the source is an ordinary character.
func (l *Lexer) eof() bool {
	return l.pos >= len(l.source)
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPos:])
	return r
}

// hasPrefix reports whether the source at the current character starts with s.
func (l *Lexer) hasPrefix(s string) bool {
	return l.pos < len(l.source) && strings.HasPrefix(l.source[l.pos:], s)
}

// hasPrefixFold is hasPrefix ignoring ASCII case.
func (l *Lexer) hasPrefixFold(s string) bool {
	end := l.pos + len(s)
	return end <= len(l.source) && strings.EqualFold(l.source[l.pos:end], s)
}

// skip consumes n characters.
func (l *Lexer) skip(n int) {
	for range n {
		l.readChar()
	}
}

// startToken marks the beginning of a new token.
func (l *Lexer) startToken() {
	l.tokenLine = l.line
	l.tokenColumn = l.column
}

// makeToken creates a token with the current start position.
func (l *Lexer) makeToken(typ TokenType, literal string) Token {
	return Token{
		Type:    typ,
		Literal: literal,
		Line:    l.tokenLine,
		Column:  l.tokenColumn,
	}
}

// position returns the start Position of the current token.
func (l *Lexer) position() Position {
	return Position{
		File:   l.filename,
		Line:   l.tokenLine,
		Column: l.tokenColumn,
	}
}

// here returns the Position of the current character.
func (l *Lexer) here() Position {
	return Position{File: l.filename, Line: l.line, Column: l.column}
}

// Next returns the next token from the source.
func (l *Lexer) Next() Token {
	l.skipWhitespaceAndComments()

	l.startToken()

	if l.eof() {
		return l.makeToken(TokenEOF, "")
	}

	switch l.ch {
	case '<':
		switch {
		case l.hasPrefix("<!--"):
			l.skip(4)
			return l.makeToken(TokenCommentOpen, "<!--")
		case l.hasPrefixFold("<!DOCTYPE"):
			lit := l.source[l.pos : l.pos+len("<!DOCTYPE")]
			l.skip(len(lit))
			return l.makeToken(TokenDoctype, lit)
		case l.hasPrefix("</>"):
			l.skip(3)
			return l.makeToken(TokenFragmentClose, "</>")
		case l.hasPrefix("</"):
			l.skip(2)
			return l.makeToken(TokenLAngleSlash, "</")
		case l.hasPrefix("<>"):
			l.skip(2)
			return l.makeToken(TokenFragmentOpen, "<>")
		}
		l.readChar()
		return l.makeToken(TokenLAngle, "<")

	case '>':
		l.readChar()
		return l.makeToken(TokenRAngle, ">")

	case '/':
		if l.peekChar() == '>' {
			l.skip(2)
			return l.makeToken(TokenSlashAngle, "/>")
		}

	case '=':
		l.readChar()
		return l.makeToken(TokenEquals, "=")

	case '{':
		l.readChar()
		return l.makeToken(TokenLBrace, "{")

	case '}':
		l.readChar()
		return l.makeToken(TokenRBrace, "}")

	case '-':
		if l.hasPrefix("-->") {
			l.skip(3)
			return l.makeToken(TokenCommentClose, "-->")
		}
		if isDigit(l.peekChar()) || l.peekChar() == '.' {
			return l.readNumber()
		}

	case '.':
		if isDigit(l.peekChar()) {
			return l.readNumber()
		}

	case '"':
		return l.readString()

	case '`':
		return l.readRawString()

	case '\'':
		return l.readRune()

	default:
		if isLetter(l.ch) {
			return l.readName()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
	}

	// Unknown character
	ch := l.ch
	l.readChar()
	l.errors.addf(l.position(), "unexpected character %q", ch)
	return l.makeToken(TokenError, string(ch))
}

// skipWhitespaceAndComments skips whitespace, newlines and host-language comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '/':
			if l.peekChar() == '/' {
				l.skipLineComment()
			} else if l.peekChar() == '*' {
				l.skipBlockComment()
			} else {
				return
			}
		default:
			return
		}
	}
}

// skipLineComment skips a // comment until end of line.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && !l.eof() {
		l.readChar()
	}
}

// skipBlockComment skips a /* */ comment.
func (l *Lexer) skipBlockComment() {
	pos := l.here()
	l.skip(2)

	for {
		if l.eof() {
			l.errors.add(pos, "unterminated block comment", "")
			return
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.skip(2)
			return
		}
		l.readChar()
	}
}

// readName reads an element, attribute or identifier name. Names may
// contain '-', ':' and '.' after the first character, so on:click,
// data-id and styles.Body are single tokens.
func (l *Lexer) readName() Token {
	startPos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == ':' || l.ch == '.' || (l.ch == '-' && !l.hasPrefix("--")) {
		l.readChar()
	}
	return l.makeToken(TokenName, l.source[startPos:l.pos])
}

// readString reads a double-quoted string literal and returns its source,
// quotes and escapes included.
func (l *Lexer) readString() Token {
	startPos := l.pos
	l.readChar() // consume opening "

	for l.ch != '"' {
		if l.eof() || l.ch == '\n' {
			l.errors.add(l.position(), "unterminated string literal", "")
			return l.makeToken(TokenError, l.source[startPos:l.pos])
		}
		if l.ch == '\\' {
			l.readChar() // keep the escaped character whatever it is
		}
		l.readChar()
	}

	l.readChar() // consume closing "
	return l.makeToken(TokenString, l.source[startPos:l.pos])
}

// readRawString reads a backtick-quoted raw string, backticks included.
func (l *Lexer) readRawString() Token {
	startPos := l.pos
	l.readChar() // consume opening `

	for l.ch != '`' && !l.eof() {
		l.readChar()
	}

	if l.eof() {
		l.errors.add(l.position(), "unterminated raw string literal", "")
		return l.makeToken(TokenError, l.source[startPos:l.pos])
	}

	l.readChar() // consume closing `
	return l.makeToken(TokenRawString, l.source[startPos:l.pos])
}

// readRune reads a rune literal, quotes included.
func (l *Lexer) readRune() Token {
	startPos := l.pos
	l.readChar() // consume opening '

	for l.ch != '\'' {
		if l.eof() || l.ch == '\n' {
			l.errors.add(l.position(), "unterminated rune literal", "")
			return l.makeToken(TokenError, l.source[startPos:l.pos])
		}
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}

	l.readChar() // consume closing '
	return l.makeToken(TokenRune, l.source[startPos:l.pos])
}

// readNumber reads a Go number literal with an optional leading minus.
// Validation is left to the Go parser; this only finds the extent.
func (l *Lexer) readNumber() Token {
	startPos := l.pos
	if l.ch == '-' {
		l.readChar()
	}

	for isDigit(l.ch) || isLetter(l.ch) || l.ch == '.' {
		exponent := l.ch == 'e' || l.ch == 'E' || l.ch == 'p' || l.ch == 'P'
		l.readChar()
		if exponent && (l.ch == '+' || l.ch == '-') {
			l.readChar()
		}
	}

	return l.makeToken(TokenNumber, l.source[startPos:l.pos])
}

// ReadBraced reads the source up to the '}' matching an already consumed
// '{', handling nested braces and Go string, raw string and rune literals.
// The closing brace is consumed but not included.
func (l *Lexer) ReadBraced() Token {
	l.startToken()

	startPos := l.pos
	depth := 1

	for !l.eof() {
		switch l.ch {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			l.skipQuoted('"')
			continue
		case '\'':
			l.skipQuoted('\'')
			continue
		case '`':
			l.skipRawString()
			continue
		}

		if depth == 0 {
			break
		}
		l.readChar()
	}

	if depth != 0 {
		l.errors.add(l.position(), "unterminated expression: unmatched '{'", "")
		return l.makeToken(TokenError, l.source[startPos:l.pos])
	}

	expr := l.source[startPos:l.pos]
	l.readChar() // consume closing }

	return l.makeToken(TokenBraced, expr)
}

// ReadDoctype reads the declaration after <!DOCTYPE up to and including the
// closing '>'. The returned literal excludes the '>'.
func (l *Lexer) ReadDoctype() Token {
	l.startToken()

	startPos := l.pos
	for l.ch != '>' && !l.eof() {
		l.readChar()
	}

	if l.eof() {
		l.errors.add(l.position(), "unterminated doctype", "close the declaration with '>'")
		return l.makeToken(TokenError, l.source[startPos:l.pos])
	}

	body := l.source[startPos:l.pos]
	l.readChar() // consume >

	return l.makeToken(TokenDoctypeBody, body)
}

// skipQuoted skips an interpreted string or rune literal inside an expression.
func (l *Lexer) skipQuoted(quote rune) {
	l.readChar() // consume opening quote
	for l.ch != quote && !l.eof() && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar() // skip escape
		}
		l.readChar()
	}
	if l.ch == quote {
		l.readChar() // consume closing quote
	}
}

// skipRawString skips a raw string literal inside an expression.
func (l *Lexer) skipRawString() {
	l.readChar() // consume opening `
	for l.ch != '`' && !l.eof() {
		l.readChar()
	}
	if l.ch == '`' {
		l.readChar() // consume closing `
	}
}

// isLetter returns true if the rune is a letter or underscore.
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// isDigit returns true if the rune is a digit.
func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}
