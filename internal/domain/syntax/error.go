package syntax

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/crowbar/internal/model"
)

// ErrParse is matched by every *ParseError via errors.Is.
var ErrParse = errors.New("parse error")

// Category classifies a parse failure.
type Category string

const (
	CategoryUnterminated Category = "unterminated literal"
	CategoryUnexpected   Category = "unexpected token"
	CategoryUnbalanced   Category = "unbalanced delimiter"
)

// ParseError reports malformed source with the location of the fault.
type ParseError struct {
	m.Position
	Category Category
	Msg      string
}

func newParseError(src []byte, offset int, cat Category, format string, args ...any) *ParseError {
	return &ParseError{
		Position: m.PositionOf(src, offset),
		Category: cat,
		Msg:      fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Category, e.Msg)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
