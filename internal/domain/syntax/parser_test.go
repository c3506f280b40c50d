package syntax

import (
	"fmt"
	"testing"

	m "github.com/mouse-blink/crowbar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// describe renders each declaration as "kind[ mut] name: type = init" for
// compact assertions.
func describe(tree *Tree) []string {
	var out []string

	for _, n := range tree.Declarations() {
		d := n.Decl

		s := string(d.Kind)
		if d.Mutable {
			s += " mut"
		}

		s += " " + tree.Text(d.Name)

		if d.Type != nil {
			s += ": " + tree.Text(d.Type)
		}

		if d.Init != nil {
			s += " = " + tree.Text(d.Init)
		}

		out = append(out, s)
	}

	return out
}

func mustParse(t *testing.T, src string) *Tree {
	t.Helper()

	tree, err := Parse([]byte(src))
	require.NoError(t, err)
	require.NoError(t, tree.Validate())
	require.Equal(t, src, string(tree.Bytes()), "serialization must be lossless")

	return tree
}

func TestParse_Declarations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "simple let",
			src:  "let x: i32 = 5;",
			want: []string{"let x: i32 = 5"},
		},
		{
			name: "let without type or init",
			src:  "let mut counter;",
			want: []string{"let mut counter"},
		},
		{
			name: "items",
			src:  "const MAX: u32 = 10;\nstatic mut COUNT: usize = 0;\npub static NAME: &str = \"crowbar\";\npub(crate) const NEG: i8 = -1;",
			want: []string{
				"const MAX: u32 = 10",
				"static mut COUNT: usize = 0",
				`static NAME: &str = "crowbar"`,
				"const NEG: i8 = -1",
			},
		},
		{
			name: "nested blocks",
			src:  "fn main() {\n    let a = 1;\n    {\n        let b = 2.0;\n    }\n    match a { _ => { let c = true; } }\n}",
			want: []string{"let a = 1", "let b = 2.0", "let c = true"},
		},
		{
			name: "declaration inside initializer",
			src:  "let f = |x| { let y = x; y };",
			want: []string{"let f = |x| { let y = x; y }", "let y = x"},
		},
		{
			name: "impl constant and attribute",
			src:  "impl S {\n    #[allow(dead_code)]\n    const LIMIT: u64 = 0xFF;\n}",
			want: []string{"const LIMIT: u64 = 0xFF"},
		},
		{
			name: "generic type with equals",
			src:  "let it: Box<dyn Iterator<Item = u8>> = make();",
			want: []string{"let it: Box<dyn Iterator<Item = u8>> = make()"},
		},
		{
			name: "type closed by >=",
			src:  "let v: Vec<u8>= vec![];",
			want: []string{"let v: Vec<u8> = vec![]"},
		},
		{
			name: "type closed by >>=",
			src:  "let v: Vec<Vec<u8>>= Vec::new();",
			want: []string{"let v: Vec<Vec<u8>> = Vec::new()"},
		},
		{
			name: "function pointer type",
			src:  "let f: fn(u8) -> u8 = id;",
			want: []string{"let f: fn(u8) -> u8 = id"},
		},
		{
			name: "comments around parts",
			src:  "let /* a */ x /* b */ : /* c */ u8 /* d */ = /* e */ 7 /* f */ ; // g",
			want: []string{"let x: u8 = 7"},
		},
		{
			name: "raw identifier",
			src:  "let r#match = 3;",
			want: []string{"let r#match = 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustParse(t, tt.src)
			assert.Equal(t, tt.want, describe(tree))
		})
	}
}

func TestParse_NotDeclarations(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "tuple pattern", src: "let (a, b) = (1, 2);"},
		{name: "struct pattern", src: "let Point { x, y } = p;"},
		{name: "wildcard", src: "let _ = 5;"},
		{name: "ref pattern", src: "let ref r = v;"},
		{name: "if let", src: "fn f() { if let Some(x) = y { } }"},
		{name: "while let", src: "fn f() { while let Some(x) = it.next() { } }"},
		{name: "const fn", src: "const fn f() -> u8 { 1 }"},
		{name: "const without type", src: "const X = 1;"},
		{name: "anonymous const", src: "const _: () = ();"},
		{name: "const generic argument", src: "fn f<const N: usize>() {}"},
		{name: "identifier named let", src: "x.let_me();"},
		{name: "macro metavariable", src: "macro_rules! m { ($x:expr) => { let $x = 1; }; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustParse(t, tt.src)
			assert.Empty(t, describe(tree))
		})
	}
}

func TestParse_DeclarationStructure(t *testing.T) {
	src := "fn main() {\n    let mut total: u64 = 1_000; // budget\n}\n"
	tree := mustParse(t, src)

	decls := tree.Declarations()
	require.Len(t, decls, 1)

	n := decls[0]
	assert.Equal(t, NodeDeclaration, n.Kind)
	assert.Equal(t, "let mut total: u64 = 1_000;", tree.Text(n))
	assert.True(t, n.Decl.Mutable)
	assert.Equal(t, m.DeclLet, n.Decl.Kind)

	init := n.Decl.Init
	assert.Equal(t, NodeInitializer, init.Kind)
	require.Len(t, init.Children, 1)
	assert.Equal(t, TokenInt, init.Children[0].Token)
	assert.Equal(t, 2, tree.Position(init.Span.Start).Line)
	assert.Equal(t, 26, tree.Position(init.Span.Start).Column)

	assert.Equal(t, NodeType, n.Decl.Type.Kind)
}

func TestParse_GroupsKeepDelimiters(t *testing.T) {
	tree := mustParse(t, "f(a, [b], {c})")

	var groups []string

	tree.Walk(func(n *Node) bool {
		if n.Kind == NodeGroup {
			sig := n.Significant()
			groups = append(groups, fmt.Sprintf("%s..%s", tree.Text(sig[0]), tree.Text(sig[len(sig)-1])))
		}

		return true
	})

	assert.Equal(t, []string{"(..)", "[..]", "{..}"}, groups)
}

func TestParse_SerializeIsIdempotent(t *testing.T) {
	src := "// header\r\nconst A: f32 = 1.5;\r\n\r\nfn main() {\tlet s = r#\"x\"#; }\n\n"
	tree := mustParse(t, src)

	once := Serialize(tree)
	again, err := Parse(once)
	require.NoError(t, err)

	assert.Equal(t, once, Serialize(again))
	assert.Equal(t, src, string(once))
}

func TestParse_EmptyInput(t *testing.T) {
	tree := mustParse(t, "")
	assert.Empty(t, tree.Root.Children)
	assert.Empty(t, tree.Declarations())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		category Category
		line     int
		column   int
	}{
		{
			name:     "unclosed brace points at opener",
			src:      "fn main() {\n    let x = 1;\n",
			category: CategoryUnbalanced,
			line:     1,
			column:   11,
		},
		{
			name:     "stray closer",
			src:      "let x = 1;\n)",
			category: CategoryUnbalanced,
			line:     2,
			column:   1,
		},
		{
			name:     "mismatched closer",
			src:      "f(a]",
			category: CategoryUnbalanced,
			line:     1,
			column:   4,
		},
		{
			name:     "unterminated string in block",
			src:      "fn main() {\n    let s = \"oops;\n}\n",
			category: CategoryUnterminated,
			line:     2,
			column:   13,
		},
		{
			name:     "missing semicolon",
			src:      "let x = 1",
			category: CategoryUnexpected,
			line:     1,
			column:   10,
		},
		{
			name:     "missing semicolon in block",
			src:      "{ let x = 1 }",
			category: CategoryUnexpected,
			line:     1,
			column:   13,
		},
		{
			name:     "missing initializer",
			src:      "let x = ;",
			category: CategoryUnexpected,
			line:     1,
			column:   9,
		},
		{
			name:     "missing type",
			src:      "let x: = 1;",
			category: CategoryUnexpected,
			line:     1,
			column:   8,
		},
		{
			name:     "name at end of input",
			src:      "let x",
			category: CategoryUnexpected,
			line:     1,
			column:   6,
		},
		{
			name:     "type never terminated",
			src:      "let x: u8",
			category: CategoryUnexpected,
			line:     1,
			column:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Parse([]byte(tt.src))
			require.Error(t, err)
			assert.Nil(t, tree)
			assert.ErrorIs(t, err, ErrParse)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.category, pe.Category, pe.Error())
			assert.Equal(t, tt.line, pe.Line, pe.Error())
			assert.Equal(t, tt.column, pe.Column, pe.Error())
		})
	}
}

func TestParseError_Format(t *testing.T) {
	_, err := Parse([]byte("let s = \"x"))
	require.Error(t, err)
	assert.Equal(t, "1:9: unterminated literal: unterminated string literal", err.Error())
}
