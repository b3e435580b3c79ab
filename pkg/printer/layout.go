package printer

import (
	"strings"
)

// layout resolves a balanced operation stream into text.
type layout struct {
	Options

	ops []Op

	// Per KindBegin op: flat width of the group and whether it can never
	// be flat (it holds a hard break or multi-line text).
	width  []int
	broken []bool

	out     strings.Builder
	column  int
	indent  []int  // absolute indentation of each open scope
	flat    []bool // mode of each open group
	pending bool   // a newline was written; indentation is owed
}

func newLayout(opts Options, ops []Op) *layout {
	l := &layout{
		Options: opts,
		ops:     ops,
		width:   make([]int, len(ops)),
		broken:  make([]bool, len(ops)),
	}
	l.measure()
	return l
}

// measure computes the flattened width of every group in one pass using
// running totals: a group's width is the total at its End minus the total at
// its Begin.
func (l *layout) measure() {
	type open struct {
		index, total, hard int
	}
	var (
		stack []open
		total int
		hard  int
	)

	for i, op := range l.ops {
		switch op.kind {
		case KindText:
			if strings.Contains(op.text, "\n") {
				hard++
			}
			total += stringWidth(op.text, l.IndentWidth)
		case KindBreak:
			total += stringWidth(op.text, l.IndentWidth)
		case KindHardbreak:
			hard++
		case KindBegin:
			stack = append(stack, open{index: i, total: total, hard: hard})
		case KindEnd:
			o := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			l.width[o.index] = total - o.total
			l.broken[o.index] = hard > o.hard
		}
	}
}

// render walks the stream deciding each group's mode as it is entered.
func (l *layout) render() string {
	for i, op := range l.ops {
		switch op.kind {
		case KindText:
			l.write(op.text)

		case KindBreak:
			if l.isFlat() {
				l.write(op.text)
			} else {
				l.newline()
			}

		case KindHardbreak:
			l.newline()

		case KindBegin:
			// A flat parent flattens everything inside it. Otherwise the
			// group is measured on its own against the remaining room;
			// an exact fit counts as fitting.
			flat := l.isFlat() || (!l.broken[i] && l.width[i] <= l.MaxWidth-l.column)
			l.flat = append(l.flat, flat)

		case KindEnd:
			l.flat = l.flat[:len(l.flat)-1]

		case KindIndent:
			l.indent = append(l.indent, l.currentIndent()+op.delta)

		case KindDedent:
			l.indent = l.indent[:len(l.indent)-1]
		}
	}
	return l.out.String()
}

// isFlat reports whether breaks at the current position render flat. Breaks
// outside of any group are always broken.
func (l *layout) isFlat() bool {
	return len(l.flat) > 0 && l.flat[len(l.flat)-1]
}

func (l *layout) currentIndent() int {
	if len(l.indent) == 0 {
		return 0
	}
	return max(0, l.indent[len(l.indent)-1])
}

// newline ends the current line. Indentation for the next line is fixed now
// but written lazily so blank lines stay empty.
func (l *layout) newline() {
	l.out.WriteByte('\n')
	l.column = l.currentIndent()
	l.pending = true
}

func (l *layout) write(s string) {
	if s == "" {
		return
	}
	if l.pending {
		l.writeIndent(l.column)
		l.pending = false
	}
	l.out.WriteString(s)

	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		l.column = stringWidth(s[i+1:], l.IndentWidth)
	} else {
		l.column += stringWidth(s, l.IndentWidth)
	}
}

func (l *layout) writeIndent(columns int) {
	if l.HardTabs {
		for ; columns >= l.IndentWidth; columns -= l.IndentWidth {
			l.out.WriteByte('\t')
		}
	}
	for ; columns > 0; columns-- {
		l.out.WriteByte(' ')
	}
}
