package view

// Node is the interface implemented by all syntax nodes.
type Node interface {
	node()         // marker method to ensure type safety
	Pos() Position // returns the source position of the node
}

// ValueKind describes how a Value was written in the source.
type ValueKind uint8

const (
	// ValueNone is the missing value of a bare attribute such as `hidden`.
	ValueNone ValueKind = iota
	// ValueLiteral is a Go string, raw string, rune or number literal.
	ValueLiteral
	// ValueExpr is an unbraced identifier or selector path: name, a.b.c.
	ValueExpr
	// ValueBraced is an expression written between { and }. Source holds the
	// text between the braces.
	ValueBraced
	// ValueRaw is uninterpreted text, used for doctype declarations.
	ValueRaw
)

var valueKindNames = [...]string{
	ValueNone:    "None",
	ValueLiteral: "Literal",
	ValueExpr:    "Expr",
	ValueBraced:  "Braced",
	ValueRaw:     "Raw",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "ValueKind(?)"
}

// Value is the payload of a leaf node or attribute: the source of an
// embedded Go expression and the form it was written in.
type Value struct {
	Kind     ValueKind
	Source   string
	Position Position
}

// IsZero reports whether the value is absent.
func (v Value) IsZero() bool { return v.Kind == ValueNone }

// Element represents a markup element: <name attrs>children</name> or <name attrs/>
type Element struct {
	Name        string
	Attributes  []*Attribute
	Children    []Node // Element, Text, Comment, Block, Fragment
	SelfClosing bool   // written as <name/>
	Position    Position
}

func (e *Element) node()         {}
func (e *Element) Pos() Position { return e.Position }

// Attribute represents an element attribute: key, key=value, or a block
// attribute {expr} spreading a value into the element.
type Attribute struct {
	Key      string // empty for a block attribute
	Value    Value
	Position Position
}

func (a *Attribute) node()         {}
func (a *Attribute) Pos() Position { return a.Position }

// IsBlock reports whether the attribute is a bare {expr} with no key.
func (a *Attribute) IsBlock() bool { return a.Key == "" }

// Text is a string literal child: "hello".
type Text struct {
	Value    Value
	Position Position
}

func (t *Text) node()         {}
func (t *Text) Pos() Position { return t.Position }

// Comment is a markup comment: <!-- "text" -->.
type Comment struct {
	Value    Value
	Position Position
}

func (c *Comment) node()         {}
func (c *Comment) Pos() Position { return c.Position }

// Doctype is a doctype declaration: <!DOCTYPE html>.
type Doctype struct {
	Value    Value
	Position Position
}

func (d *Doctype) node()         {}
func (d *Doctype) Pos() Position { return d.Position }

// Block is an embedded Go expression child: {expr}.
type Block struct {
	Value    Value
	Position Position
}

func (b *Block) node()         {}
func (b *Block) Pos() Position { return b.Position }

// Fragment groups children without a wrapping element: <>children</>.
type Fragment struct {
	Children []Node
	Position Position
}

func (f *Fragment) node()         {}
func (f *Fragment) Pos() Position { return f.Position }

// IsTextual reports whether n is rendered inline with its siblings: Text
// and Block children may share a line.
func IsTextual(n Node) bool {
	switch n.(type) {
	case *Text, *Block:
		return true
	}
	return false
}
