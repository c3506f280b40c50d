package controller

import (
	m "github.com/mouse-blink/crowbar/internal/model"
)

// Message types.
type runFinishedMsg struct {
	result m.RunResult
	err    error
}

// List item types.
type entryItem struct {
	entry m.CatalogEntry
}

func (e entryItem) FilterValue() string {
	return e.entry.ID.Name
}
