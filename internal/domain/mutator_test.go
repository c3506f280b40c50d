package domain

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/crowbar/internal/domain/syntax"
	"github.com/mouse-blink/crowbar/internal/domain/values"
	m "github.com/mouse-blink/crowbar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutate(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		id    m.EntryID
		value m.Value
		want  string
	}{
		{
			name:  "integer",
			src:   "let x: i32 = 5;",
			id:    m.EntryID{Ordinal: 0, Name: "x"},
			value: m.IntValue(42),
			want:  "let x: i32 = 42;",
		},
		{
			name:  "string is escaped",
			src:   `let s = "hi";`,
			id:    m.EntryID{Ordinal: 0, Name: "s"},
			value: m.StringValue("hello\nworld"),
			want:  `let s = "hello\nworld";`,
		},
		{
			name:  "trivia around the literal survives",
			src:   "let x = /* keep */ 1; // trailing\n",
			id:    m.EntryID{Ordinal: 0, Name: "x"},
			value: m.IntValue(2),
			want:  "let x = /* keep */ 2; // trailing\n",
		},
		{
			name:  "negative to positive",
			src:   "let x = -5;",
			id:    m.EntryID{Ordinal: 0, Name: "x"},
			value: m.IntValue(7),
			want:  "let x = 7;",
		},
		{
			name:  "positive to negative",
			src:   "const X: i8 = 5;",
			id:    m.EntryID{Ordinal: 0, Name: "X"},
			value: m.IntValue(-8),
			want:  "const X: i8 = -8;",
		},
		{
			name:  "hex style and suffix kept",
			src:   "let mask = 0xFFu32;",
			id:    m.EntryID{Ordinal: 0, Name: "mask"},
			value: m.IntValue(4095),
			want:  "let mask = 0xFFFu32;",
		},
		{
			name:  "float falls back to exponent",
			src:   "let r = 0.75;",
			id:    m.EntryID{Ordinal: 0, Name: "r"},
			value: m.FloatValue(1e-9),
			want:  "let r = 1e-09;",
		},
		{
			name:  "boolean",
			src:   "let on = false;",
			id:    m.EntryID{Ordinal: 0, Name: "on"},
			value: m.BoolValue(true),
			want:  "let on = true;",
		},
		{
			name:  "wrapped string keeps the wrapper",
			src:   `let s = String::from("a");`,
			id:    m.EntryID{Ordinal: 0, Name: "s"},
			value: m.StringValue("b"),
			want:  `let s = String::from("b");`,
		},
		{
			name:  "raw string grows its fence",
			src:   `let p = r"C:\x".to_owned();`,
			id:    m.EntryID{Ordinal: 0, Name: "p"},
			value: m.StringValue(`say "hi"`),
			want:  `let p = r#"say "hi""#.to_owned();`,
		},
		{
			name:  "constant reference becomes a literal",
			src:   "const A: u8 = 0x10;\nlet b = A;",
			id:    m.EntryID{Ordinal: 1, Name: "b"},
			value: m.IntValue(32),
			want:  "const A: u8 = 0x10;\nlet b = 0x20;",
		},
		{
			name:  "bare name",
			src:   "fn main() {\n    let depth = 3;\n}\n",
			id:    m.EntryID{Ordinal: -1, Name: "depth"},
			value: m.IntValue(4),
			want:  "fn main() {\n    let depth = 4;\n}\n",
		},
		{
			name:  "only the addressed shadow changes",
			src:   "let a = 1;\n{ let a = 1; }",
			id:    m.EntryID{Ordinal: 1, Name: "a"},
			value: m.IntValue(9),
			want:  "let a = 1;\n{ let a = 9; }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseSource(t, tt.src)

			out, err := Mutate(tree, tt.id, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
			assert.Equal(t, tt.src, string(tree.Bytes()), "the input tree must not change")
		})
	}
}

func TestMutate_NoOpIsIdentity(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		id    m.EntryID
		value m.Value
	}{
		{name: "same integer", src: "let x = 0x05_u8;", id: m.EntryID{Ordinal: 0, Name: "x"}, value: m.IntValue(5)},
		{name: "same float", src: "let f = 1_0.0e0;", id: m.EntryID{Ordinal: 0, Name: "f"}, value: m.FloatValue(10)},
		{name: "same string", src: `let s = "\x41";`, id: m.EntryID{Ordinal: 0, Name: "s"}, value: m.StringValue("A")},
		{name: "same constant", src: "const A: u8 = 1;\nlet b = A;", id: m.EntryID{Ordinal: 1, Name: "b"}, value: m.IntValue(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseSource(t, tt.src)

			out, err := Mutate(tree, tt.id, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.src, string(out))
		})
	}
}

func TestMutate_Errors(t *testing.T) {
	src := "let x = 5;\nlet s = \"a\";\nlet s = \"b\";\nlet r = 1.5;"

	tests := []struct {
		name   string
		id     m.EntryID
		value  m.Value
		target error
	}{
		{
			name:   "kind mismatch",
			id:     m.EntryID{Ordinal: 0, Name: "x"},
			value:  m.StringValue("5"),
			target: ErrKindMismatch,
		},
		{
			name:   "ordinal out of range",
			id:     m.EntryID{Ordinal: 9, Name: "x"},
			value:  m.IntValue(1),
			target: ErrEntryNotFound,
		},
		{
			name:   "name does not match ordinal",
			id:     m.EntryID{Ordinal: 1, Name: "x"},
			value:  m.IntValue(1),
			target: ErrEntryNotFound,
		},
		{
			name:   "unknown bare name",
			id:     m.EntryID{Ordinal: -1, Name: "missing"},
			value:  m.IntValue(1),
			target: ErrEntryNotFound,
		},
		{
			name:   "ambiguous bare name",
			id:     m.EntryID{Ordinal: -1, Name: "s"},
			value:  m.StringValue("c"),
			target: ErrAmbiguousEntry,
		},
		{
			name:   "non-finite float",
			id:     m.EntryID{Ordinal: 3, Name: "r"},
			value:  m.FloatValue(math.Inf(1)),
			target: values.ErrValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseSource(t, src)

			out, err := Mutate(tree, tt.id, tt.value)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.target)

			var me *MutateError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, src, string(tree.Bytes()))
		})
	}
}

func TestMutateError_Message(t *testing.T) {
	tree := parseSource(t, "let x = 5;")

	_, err := Mutate(tree, m.EntryID{Ordinal: 0, Name: "x"}, m.BoolValue(true))
	require.Error(t, err)
	assert.Equal(t, "entry 0:x: kind mismatch: want integer, got boolean", err.Error())

	var me *MutateError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, m.KindInteger, me.Want)
	assert.Equal(t, m.KindBoolean, me.Got)

	_, err = Mutate(tree, m.EntryID{Ordinal: 4, Name: "y"}, m.IntValue(1))
	assert.EqualError(t, err, "entry 4:y: entry not found")
}

func TestMutate_KeepsCatalogIdentity(t *testing.T) {
	src := loadSourceFromFile(t, filepath.Join("..", "..", "examples", "basic", "main.rs"))

	tree, err := syntax.Parse(src)
	require.NoError(t, err)

	before, _ := Scan(tree)

	out, err := Mutate(tree, m.EntryID{Ordinal: 3, Name: "ratio"}, m.FloatValue(0.5))
	require.NoError(t, err)

	edited, err := syntax.Parse(out)
	require.NoError(t, err)

	after, _ := Scan(edited)
	require.Len(t, after, len(before))

	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)

		if before[i].ID.Name == "ratio" {
			assert.True(t, m.FloatValue(0.5).Equal(after[i].Value))

			continue
		}

		assert.True(t, before[i].Value.Equal(after[i].Value), "entry %s changed", before[i].ID)
	}

	// Only the ratio literal changed, byte for byte.
	assert.Equal(t, len(src)+len("0.5")-len("0.75"), len(out))
	assert.Contains(t, string(out), "let ratio = 0.5;")
}

func TestResolve(t *testing.T) {
	entries := []m.CatalogEntry{
		{ID: m.EntryID{Ordinal: 0, Name: "a"}},
		{ID: m.EntryID{Ordinal: 2, Name: "b"}},
		{ID: m.EntryID{Ordinal: 5, Name: "b"}},
	}

	got, err := Resolve(entries, m.EntryID{Ordinal: 5, Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, entries[2].ID, got.ID)

	got, err = Resolve(entries, m.EntryID{Ordinal: -1, Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, entries[0].ID, got.ID)

	_, err = Resolve(entries, m.EntryID{Ordinal: -1, Name: "b"})
	assert.ErrorIs(t, err, ErrAmbiguousEntry)
	assert.ErrorContains(t, err, `"b" matches 2 entries`)

	_, err = Resolve(entries, m.EntryID{Ordinal: 1, Name: "a"})
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = Resolve(nil, m.EntryID{Ordinal: -1, Name: "a"})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestApplyEdits(t *testing.T) {
	src := []byte("const LIMIT: u32 = 10;\nfn main() {\n    let name = \"x\".to_string();\n    let on = false;\n}\n")

	out, err := ApplyEdits(src,
		m.EditRequest{ID: m.EntryID{Ordinal: 0, Name: "LIMIT"}, Value: m.IntValue(1_000)},
		m.EditRequest{ID: m.EntryID{Ordinal: -1, Name: "name"}, Value: m.StringValue("crowbar")},
		m.EditRequest{ID: m.EntryID{Ordinal: 2, Name: "on"}, Value: m.BoolValue(true)},
	)
	require.NoError(t, err)

	assert.Equal(t,
		"const LIMIT: u32 = 1000;\nfn main() {\n    let name = \"crowbar\".to_string();\n    let on = true;\n}\n",
		string(out))
}

func TestApplyEdits_StopsAtFirstError(t *testing.T) {
	src := []byte("let a = 1;\nlet b = 2;")

	out, err := ApplyEdits(src,
		m.EditRequest{ID: m.EntryID{Ordinal: 0, Name: "a"}, Value: m.IntValue(3)},
		m.EditRequest{ID: m.EntryID{Ordinal: 1, Name: "b"}, Value: m.StringValue("x")},
	)
	require.ErrorIs(t, err, ErrKindMismatch)
	assert.Nil(t, out)
	assert.Equal(t, "let a = 1;\nlet b = 2;", string(src))
}

func TestApplyEdits_InvalidSource(t *testing.T) {
	_, err := ApplyEdits([]byte("let a = (1;"))
	assert.ErrorIs(t, err, syntax.ErrParse)
}

func TestReplaceRange(t *testing.T) {
	content := []byte("let x = 1;")

	assert.Equal(t, "let x = 42;", string(replaceRange(content, 8, 9, "42")))
	assert.Equal(t, "let x = 1;", string(content))
	assert.Equal(t, "let x = 1;", string(replaceRange(content, 9, 8, "42")))
	assert.Equal(t, "let x = 1;", string(replaceRange(content, 0, 99, "42")))
}
