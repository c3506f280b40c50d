package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI returns the interactive TUI when useTTY is set and a SimpleUI
// writing through cmd's streams otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if !useTTY {
		return NewSimpleUI(cmd)
	}

	return NewTUI(cmd.InOrStdin(), cmd.OutOrStdout())
}

// IsTTY reports whether w is a character device. Pipes, regular files and
// in-memory writers are not, and TERM=dumb turns terminal output off.
func IsTTY(w io.Writer) bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(interface{ Stat() (os.FileInfo, error) })
	if !ok {
		return false
	}

	info, err := f.Stat()

	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
