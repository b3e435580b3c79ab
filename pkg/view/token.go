package view

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Special tokens
	TokenEOF   TokenType = iota // end of file
	TokenError                  // lexer error

	// Literals
	TokenName      // element, attribute or identifier name: div, on:click, data-id, a.b
	TokenNumber    // number literal: 12, 1.5, 0x1f, -3
	TokenString    // interpreted string literal, quotes included: "..."
	TokenRawString // raw string literal, backticks included: `...`
	TokenRune      // rune literal, quotes included: 'x'

	// Markup punctuation
	TokenLAngle        // <
	TokenRAngle        // >
	TokenLAngleSlash   // </
	TokenSlashAngle    // />
	TokenFragmentOpen  // <>
	TokenFragmentClose // </>
	TokenCommentOpen   // <!--
	TokenCommentClose  // -->
	TokenDoctype       // <!DOCTYPE
	TokenEquals        // =
	TokenLBrace        // {
	TokenRBrace        // }

	// Composite tokens read on demand by the parser
	TokenBraced      // source between matching { and }
	TokenDoctypeBody // source between <!DOCTYPE and >
)

// tokenNames maps token types to their string names for debugging.
var tokenNames = map[TokenType]string{
	TokenEOF:           "EOF",
	TokenError:         "Error",
	TokenName:          "Name",
	TokenNumber:        "Number",
	TokenString:        "String",
	TokenRawString:     "RawString",
	TokenRune:          "Rune",
	TokenLAngle:        "<",
	TokenRAngle:        ">",
	TokenLAngleSlash:   "</",
	TokenSlashAngle:    "/>",
	TokenFragmentOpen:  "<>",
	TokenFragmentClose: "</>",
	TokenCommentOpen:   "<!--",
	TokenCommentClose:  "-->",
	TokenDoctype:       "<!DOCTYPE",
	TokenEquals:        "=",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenBraced:        "Braced",
	TokenDoctypeBody:   "DoctypeBody",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Token(%d)", t)
}

// Token represents a lexical token with its type, literal value, and position.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("%s at %d:%d", t.Type, t.Line, t.Column)
	}
	// Truncate long literals for readability
	lit := t.Literal
	if len(lit) > 20 {
		lit = lit[:17] + "..."
	}
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, lit, t.Line, t.Column)
}

// Position represents a source code location for error reporting.
type Position struct {
	File   string
	Line   int
	Column int
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}
