package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/crowbar/internal/domain/syntax"
	"github.com/mouse-blink/crowbar/internal/domain/values"
	m "github.com/mouse-blink/crowbar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSourceFromFile(t *testing.T, path string) []byte {
	t.Helper()

	src, err := os.ReadFile(path)
	require.NoError(t, err)

	return src
}

func parseSource(t *testing.T, src string) *syntax.Tree {
	t.Helper()

	tree, err := syntax.Parse([]byte(src))
	require.NoError(t, err)

	return tree
}

// summary is a compact view of a catalog entry for table assertions.
type summary struct {
	ID   string
	Kind m.ValueKind
	Text string // the bytes under the entry's span
	Via  string
}

func summarize(tree *syntax.Tree, entries []m.CatalogEntry) []summary {
	out := make([]summary, 0, len(entries))

	for _, e := range entries {
		out = append(out, summary{
			ID:   e.ID.String(),
			Kind: e.Kind,
			Text: string(tree.Source[e.Span.Start:e.Span.End]),
			Via:  e.Via,
		})
	}

	return out
}

func TestScan_BasicExample(t *testing.T) {
	src := loadSourceFromFile(t, filepath.Join("..", "..", "examples", "basic", "main.rs"))

	tree, err := syntax.Parse(src)
	require.NoError(t, err)

	entries, errs := Scan(tree)
	require.Empty(t, errs)

	assert.Equal(t, []summary{
		{ID: "0:MAX_RETRIES", Kind: m.KindInteger, Text: "3"},
		{ID: "1:GREETING", Kind: m.KindString, Text: `"hello"`},
		{ID: "2:width", Kind: m.KindInteger, Text: "80"},
		{ID: "3:ratio", Kind: m.KindFloat, Text: "0.75"},
		{ID: "4:verbose", Kind: m.KindBoolean, Text: "false"},
		{ID: "5:name", Kind: m.KindString, Text: `"crowbar"`},
		{ID: "6:retries", Kind: m.KindInteger, Text: "MAX_RETRIES", Via: "MAX_RETRIES"},
		{ID: "7:offset", Kind: m.KindInteger, Text: "-12"},
	}, summarize(tree, entries))

	width := entries[2]
	assert.Equal(t, m.DeclLet, width.Decl)
	assert.Equal(t, "i32", width.TypeHint)
	assert.Equal(t, 5, width.Line)
	assert.Equal(t, "80", width.Display())

	assert.Equal(t, m.DeclConst, entries[0].Decl)
	assert.Equal(t, "u32", entries[0].TypeHint)
	assert.Equal(t, m.DeclStatic, entries[1].Decl)

	retries := entries[6]
	assert.True(t, m.IntValue(3).Equal(retries.Value))
}

func TestScan_StringsExample(t *testing.T) {
	src := loadSourceFromFile(t, filepath.Join("..", "..", "examples", "strings", "main.rs"))

	tree, err := syntax.Parse(src)
	require.NoError(t, err)

	entries, errs := Scan(tree)
	require.Empty(t, errs)

	assert.Equal(t, []summary{
		{ID: "0:plain", Kind: m.KindString, Text: `"tab\there"`},
		{ID: "1:raw", Kind: m.KindString, Text: `r#"C:\Users\"crowbar""#`},
		{ID: "2:owned", Kind: m.KindString, Text: `"owned"`},
		{ID: "3:cloned", Kind: m.KindString, Text: `"cloned"`},
		{ID: "4:label", Kind: m.KindString, Text: `"label"`},
	}, summarize(tree, entries))

	assert.Equal(t, "tab\there", entries[0].Value.Str)
	assert.Equal(t, `C:\Users\"crowbar"`, entries[1].Value.Str)
	assert.Equal(t, m.QuoteRaw, entries[1].Value.Style.Quote)
}

func TestScan_ShadowedNamesGetDistinctEntries(t *testing.T) {
	src := loadSourceFromFile(t, filepath.Join("..", "..", "examples", "shadowing", "main.rs"))

	tree, err := syntax.Parse(src)
	require.NoError(t, err)

	entries, errs := Scan(tree)
	require.Empty(t, errs)

	assert.Equal(t, []summary{
		{ID: "0:limit", Kind: m.KindInteger, Text: "10"},
		{ID: "2:limit", Kind: m.KindInteger, Text: "3"},
		{ID: "3:counter", Kind: m.KindInteger, Text: "0u64"},
	}, summarize(tree, entries))

	assert.True(t, entries[2].Mutable)
	assert.Equal(t, "u64", entries[2].Value.Style.Suffix)
}

func TestScan_Initializers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []summary
	}{
		{
			name: "negative literal includes sign",
			src:  "let x = -5;",
			want: []summary{{ID: "0:x", Kind: m.KindInteger, Text: "-5"}},
		},
		{
			name: "negative float",
			src:  "let x = -2.5e3;",
			want: []summary{{ID: "0:x", Kind: m.KindFloat, Text: "-2.5e3"}},
		},
		{
			name: "detached minus is an expression",
			src:  "let x = - 5;",
			want: []summary{},
		},
		{
			name: "negated string is not eligible",
			src:  `let x = -"a";`,
			want: []summary{},
		},
		{
			name: "spaced String::from",
			src:  `let s = String :: from ( "x" /* why */ );`,
			want: []summary{{ID: "0:s", Kind: m.KindString, Text: `"x"`}},
		},
		{
			name: "String::from with two arguments",
			src:  `let s = String::from("x", y);`,
			want: []summary{},
		},
		{
			name: "to_string with argument",
			src:  `let s = "x".to_string(1);`,
			want: []summary{},
		},
		{
			name: "raw to_owned",
			src:  `let s = r"x".to_owned();`,
			want: []summary{{ID: "0:s", Kind: m.KindString, Text: `r"x"`}},
		},
		{
			name: "function call",
			src:  "let x = compute();",
			want: []summary{},
		},
		{
			name: "arithmetic",
			src:  "let x = 1 + 2;",
			want: []summary{},
		},
		{
			name: "char and byte string",
			src:  `let c = 'a'; let b = b"x";`,
			want: []summary{},
		},
		{
			name: "declaration without initializer",
			src:  "let x; x = 1;",
			want: []summary{},
		},
		{
			name: "constant indirection",
			src:  "const A: u8 = 1;\nlet b = A;",
			want: []summary{
				{ID: "0:A", Kind: m.KindInteger, Text: "1"},
				{ID: "1:b", Kind: m.KindInteger, Text: "A", Via: "A"},
			},
		},
		{
			name: "constant declared after use",
			src:  "fn main() { let b = LIMIT; }\nconst LIMIT: i64 = -1;",
			want: []summary{
				{ID: "0:b", Kind: m.KindInteger, Text: "LIMIT", Via: "LIMIT"},
				{ID: "1:LIMIT", Kind: m.KindInteger, Text: "-1"},
			},
		},
		{
			name: "indirection is one hop",
			src:  "const A: u8 = 1;\nconst B: u8 = A;\nlet c = B;",
			want: []summary{
				{ID: "0:A", Kind: m.KindInteger, Text: "1"},
				{ID: "1:B", Kind: m.KindInteger, Text: "A", Via: "A"},
			},
		},
		{
			name: "mutable static is not a constant",
			src:  "static mut S: u8 = 1;\nlet b = S;",
			want: []summary{{ID: "0:S", Kind: m.KindInteger, Text: "1"}},
		},
		{
			name: "let binding is not a constant",
			src:  "let a = 1;\nlet b = a;",
			want: []summary{{ID: "0:a", Kind: m.KindInteger, Text: "1"}},
		},
		{
			name: "unknown identifier",
			src:  "let b = UNKNOWN;",
			want: []summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseSource(t, tt.src)

			entries, errs := Scan(tree)
			assert.Empty(t, errs)
			assert.Equal(t, tt.want, summarize(tree, entries))
		})
	}
}

func TestScan_FirstConstantWins(t *testing.T) {
	tree := parseSource(t, "const A: u8 = 1;\nconst A: u8 = 2;\nlet b = A;")

	entries, errs := Scan(tree)
	require.Empty(t, errs)
	require.Len(t, entries, 3)

	b := entries[2]
	assert.Equal(t, "A", b.Via)
	assert.True(t, m.IntValue(1).Equal(b.Value))
}

func TestScan_UndecodableLiteral(t *testing.T) {
	tree := parseSource(t, "fn main() {\n    let ok = 1;\n    let bad = 7q;\n}\n")

	entries, errs := Scan(tree)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], values.ErrValue)

	require.Len(t, entries, 1)
	assert.Equal(t, m.EntryID{Ordinal: 0, Name: "ok"}, entries[0].ID)
}

func TestScan_IsDeterministic(t *testing.T) {
	src := "const A: u8 = 0xFF;\nfn main() { let x = A; let y = \"s\".to_string(); }"

	first, _ := Scan(parseSource(t, src))
	second, _ := Scan(parseSource(t, src))

	assert.Equal(t, first, second)
}
