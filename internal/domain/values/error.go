// Package values decodes Rust scalar literals into model values and encodes
// them back, preserving the original literal style when possible.
package values

import (
	"errors"
	"fmt"
)

// ErrValue is matched by every *ValueError via errors.Is.
var ErrValue = errors.New("value error")

// ValueError reports a literal that cannot be decoded or a value that cannot
// be written as a literal.
type ValueError struct {
	Text string
	Msg  string
}

func errorf(text, format string, args ...any) *ValueError {
	return &ValueError{Text: text, Msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	if e.Text == "" {
		return e.Msg
	}

	return fmt.Sprintf("%s: %q", e.Msg, e.Text)
}

// Is reports whether target is ErrValue.
func (e *ValueError) Is(target error) bool {
	return target == ErrValue
}
