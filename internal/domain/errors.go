package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/crowbar/internal/model"
)

var (
	// ErrEntryNotFound means no declaration matches an entry ID. The caller
	// should rescan the source.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrKindMismatch means an edit supplied a value of the wrong kind.
	ErrKindMismatch = errors.New("kind mismatch")
	// ErrAmbiguousEntry means a bare name matched more than one entry.
	ErrAmbiguousEntry = errors.New("ambiguous entry name")
	// ErrRunFailed means the program failed to compile or exited non-zero.
	ErrRunFailed = errors.New("run failed")
	// ErrChangedOnDisk means the file was modified by someone else after the
	// session loaded or saved it.
	ErrChangedOnDisk = errors.New("file changed on disk")
)

// MutateError describes a rejected edit.
type MutateError struct {
	ID   m.EntryID
	Err  error
	Want m.ValueKind
	Got  m.ValueKind
}

// Error implements the error interface.
func (e *MutateError) Error() string {
	if errors.Is(e.Err, ErrKindMismatch) {
		return fmt.Sprintf("entry %s: %v: want %s, got %s", e.ID, e.Err, e.Want, e.Got)
	}

	return fmt.Sprintf("entry %s: %v", e.ID, e.Err)
}

// Unwrap returns the sentinel cause.
func (e *MutateError) Unwrap() error {
	return e.Err
}
