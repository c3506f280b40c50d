// Package controller renders crowbar's output, either as plain text or
// through the interactive Bubble Tea editor.
package controller

import (
	"context"
	"errors"

	m "github.com/mouse-blink/crowbar/internal/model"
)

// ErrNotInteractive is returned when the editor is requested without a
// terminal.
var ErrNotInteractive = errors.New("interactive editor requires a terminal")

// Editor is the editing session the interactive UI drives.
type Editor interface {
	Path() m.Path
	Catalog() []m.CatalogEntry
	Edit(req m.EditRequest) error
	Save() error
	Dirty() bool
	// Snapshot returns a copy of the current source.
	Snapshot() []byte
	// Run builds and executes src. Callers pass a Snapshot taken before
	// handing the work to another goroutine.
	Run(ctx context.Context, src []byte) (m.RunResult, error)
}

// UI defines how workflows present results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayCatalog(path m.Path, entries []m.CatalogEntry, err error) error
	DisplaySource(src []byte) error
	DisplayDiff(diff string) error
	DisplayRunResult(result m.RunResult, err error) error
	Edit(ctx context.Context, editor Editor) error
}
