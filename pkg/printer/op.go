package printer

import "fmt"

// Kind identifies a document operation.
type Kind uint8

const (
	KindText      Kind = iota + 1 // literal text
	KindBreak                     // conditional separator
	KindHardbreak                 // unconditional newline
	KindBegin                     // group open
	KindEnd                       // group close
	KindIndent                    // indentation scope open
	KindDedent                    // indentation scope close
)

var kindNames = map[Kind]string{
	KindText:      "Text",
	KindBreak:     "Break",
	KindHardbreak: "Hardbreak",
	KindBegin:     "Begin",
	KindEnd:       "End",
	KindIndent:    "Indent",
	KindDedent:    "Dedent",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Op is a single document operation.
type Op struct {
	kind  Kind
	text  string // literal for KindText, flat replacement for KindBreak
	delta int    // columns for KindIndent
}

// Text returns an operation that appends a literal. Text never breaks.
func Text(s string) Op { return Op{kind: KindText, text: s} }

// Break returns a separator that renders as flat when its group fits and as
// a newline plus the current indentation otherwise.
func Break(flat string) Op { return Op{kind: KindBreak, text: flat} }

// Hardbreak returns a separator that always renders as a newline. A group
// containing one never fits.
func Hardbreak() Op { return Op{kind: KindHardbreak} }

// Begin opens a group.
func Begin() Op { return Op{kind: KindBegin} }

// End closes the innermost group.
func End() Op { return Op{kind: KindEnd} }

// Indent opens a scope that adds delta columns to newlines produced in it.
func Indent(delta int) Op { return Op{kind: KindIndent, delta: delta} }

// Dedent closes the innermost indentation scope.
func Dedent() Op { return Op{kind: KindDedent} }

// Kind returns the operation kind.
func (o Op) Kind() Kind { return o.kind }

// String returns a debug representation of the operation.
func (o Op) String() string {
	switch o.kind {
	case KindText, KindBreak:
		return fmt.Sprintf("%s(%q)", o.kind, o.text)
	case KindIndent:
		return fmt.Sprintf("%s(%d)", o.kind, o.delta)
	default:
		return o.kind.String()
	}
}
