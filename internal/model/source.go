// Package model defines the data structures shared by the crowbar editor core.
package model

// Path represents a file system path.
type Path string

// File identifies a source file on disk.
type File struct {
	Path Path
}

// Span is a half-open byte range [Start, End) into a source text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether o lies entirely within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Position is a 1-based line and column derived from a byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

// PositionOf converts a byte offset into a line/column position. Columns
// count bytes, not runes.
func PositionOf(src []byte, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}

	line, col := 1, 1

	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			col = 1

			continue
		}

		col++
	}

	return Position{Offset: offset, Line: line, Column: col}
}
