package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Leaves(t *testing.T) {
	type tc struct {
		input string
		check func(t *testing.T, n Node)
	}

	tests := map[string]tc{
		"text": {
			input: `"hello"`,
			check: func(t *testing.T, n Node) {
				text := n.(*Text)
				assert.Equal(t, Value{Kind: ValueLiteral, Source: `"hello"`, Position: Position{File: "test.view", Line: 1, Column: 1}}, text.Value)
			},
		},
		"raw text": {
			input: "`a\nb`",
			check: func(t *testing.T, n Node) {
				assert.Equal(t, "`a\nb`", n.(*Text).Value.Source)
			},
		},
		"block": {
			input: "{ user.Name }",
			check: func(t *testing.T, n Node) {
				block := n.(*Block)
				assert.Equal(t, ValueBraced, block.Value.Kind)
				assert.Equal(t, " user.Name ", block.Value.Source)
			},
		},
		"comment": {
			input: `<!-- "note" -->`,
			check: func(t *testing.T, n Node) {
				comment := n.(*Comment)
				assert.Equal(t, ValueLiteral, comment.Value.Kind)
				assert.Equal(t, `"note"`, comment.Value.Source)
			},
		},
		"doctype whitespace is collapsed": {
			input: "<!DOCTYPE   html\n  PUBLIC >",
			check: func(t *testing.T, n Node) {
				doctype := n.(*Doctype)
				assert.Equal(t, ValueRaw, doctype.Value.Kind)
				assert.Equal(t, "html PUBLIC", doctype.Value.Source)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			nodes, err := Parse("test.view", tt.input)
			require.NoError(t, err)
			require.Len(t, nodes, 1)
			tt.check(t, nodes[0])
		})
	}
}

func TestParser_Element(t *testing.T) {
	nodes, err := Parse("test.view", `<div class="a" hidden id=name n=-1 {attrs} on:click={|| go()}>"hi" {x}<br/></div>`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	div, ok := nodes[0].(*Element)
	require.True(t, ok)
	assert.Equal(t, "div", div.Name)
	assert.False(t, div.SelfClosing)

	require.Len(t, div.Attributes, 6)
	type attr struct {
		key    string
		kind   ValueKind
		source string
		block  bool
	}
	var got []attr
	for _, a := range div.Attributes {
		got = append(got, attr{a.Key, a.Value.Kind, a.Value.Source, a.IsBlock()})
	}
	assert.Equal(t, []attr{
		{"class", ValueLiteral, `"a"`, false},
		{"hidden", ValueNone, "", false},
		{"id", ValueExpr, "name", false},
		{"n", ValueLiteral, "-1", false},
		{"", ValueBraced, "attrs", true},
		{"on:click", ValueBraced, "|| go()", false},
	}, got)

	require.Len(t, div.Children, 3)
	assert.IsType(t, &Text{}, div.Children[0])
	assert.IsType(t, &Block{}, div.Children[1])
	br := div.Children[2].(*Element)
	assert.Equal(t, "br", br.Name)
	assert.True(t, br.SelfClosing)
	assert.Empty(t, br.Children)
}

func TestParser_Nesting(t *testing.T) {
	src := `<!DOCTYPE html>
<html>
    // host comment
    <>
        <ui.Card></ui.Card>
        <!-- "x" -->
    </>
</html>`

	nodes, err := Parse("test.view", src)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.IsType(t, &Doctype{}, nodes[0])

	html := nodes[1].(*Element)
	assert.Equal(t, Position{File: "test.view", Line: 2, Column: 1}, html.Pos())
	require.Len(t, html.Children, 1)

	frag := html.Children[0].(*Fragment)
	require.Len(t, frag.Children, 2)
	card := frag.Children[0].(*Element)
	assert.Equal(t, "ui.Card", card.Name)
	assert.Empty(t, card.Children)
	assert.IsType(t, &Comment{}, frag.Children[1])
}

func TestParser_Errors(t *testing.T) {
	type tc struct {
		input    string
		wantMsg  string
		wantHint string
	}

	tests := map[string]tc{
		"mismatched closing tag": {
			input:    "<div></span>",
			wantMsg:  "mismatched closing tag: expected </div>, got </span>",
			wantHint: "element opened at test.view:1:1",
		},
		"unclosed element": {
			input:    "<div>\"x\"",
			wantMsg:  "unclosed element <div>",
			wantHint: "add </div>",
		},
		"unclosed fragment": {
			input:    "<>",
			wantMsg:  "unclosed fragment",
			wantHint: "add </>",
		},
		"stray closing tag": {
			input:    "</div>",
			wantMsg:  "unexpected closing tag",
			wantHint: "remove it or add the matching opening tag",
		},
		"missing element name": {
			input:    "< >",
			wantMsg:  "expected element name",
			wantHint: "use <> for a fragment",
		},
		"attribute without value": {
			input:    "<a href=></a>",
			wantMsg:  "expected value for attribute href, got >",
			wantHint: "wrap expressions in braces: href={...}",
		},
		"NUL byte does not end the input": {
			input:   "<a></a>\x00<b></b>",
			wantMsg: "unexpected character '\\x00'",
		},
		"comment without literal": {
			input:    "<!-- note -->",
			wantMsg:  "expected string literal in comment",
			wantHint: `write comments as <!-- "text" -->`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			nodes, err := Parse("test.view", tt.input)
			require.Error(t, err)
			assert.Nil(t, nodes)

			var list *ErrorList
			require.ErrorAs(t, err, &list)
			first := list.Errors()[0]
			assert.Equal(t, tt.wantMsg, first.Message)
			assert.Equal(t, tt.wantHint, first.Hint)
		})
	}
}

func TestParser_EmptyInput(t *testing.T) {
	nodes, err := Parse("test.view", "  \n// only a comment\n")
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestIsTextual(t *testing.T) {
	assert.True(t, IsTextual(&Text{}))
	assert.True(t, IsTextual(&Block{}))
	assert.False(t, IsTextual(&Element{}))
	assert.False(t, IsTextual(&Comment{}))
	assert.False(t, IsTextual(&Fragment{}))
}

func TestErrorList_SortedAndUnwrapped(t *testing.T) {
	var el ErrorList
	el.add(Position{Line: 3, Column: 1}, "third", "")
	el.add(Position{Line: 1, Column: 5}, "first", "a hint")
	el.add(Position{Line: 1, Column: 5}, "duplicate", "")

	require.Equal(t, 2, el.Len())
	assert.Equal(t, "1:5: error: first (a hint)\n3:1: error: third", el.Error())

	var target *Error
	require.ErrorAs(t, el.Err(), &target)
	assert.Equal(t, "first", target.Message)
}
