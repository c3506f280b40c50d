package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	m "github.com/mouse-blink/crowbar/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCatalog prints the catalog of one file as a table, or the error
// that prevented scanning it.
func (s *SimpleUI) DisplayCatalog(path m.Path, entries []m.CatalogEntry, err error) error {
	if err != nil {
		s.errorf("%s: %v\n", path, err)

		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Decl", "Type", "Kind", "Value", "Line"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, e := range entries {
		table.Append(catalogRow(e))
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(entries)), "", "", "", "", ""})

	table.Render()
	s.printf("%s\n%s", path, tableBuffer.String())

	return nil
}

func catalogRow(e m.CatalogEntry) []string {
	typ := e.TypeHint
	if typ == "" {
		typ = "-"
	}

	value := e.Display()
	if e.Via != "" {
		value += " (via " + e.Via + ")"
	}

	return []string{e.ID.String(), declLabel(e), typ, string(e.Kind), value, strconv.Itoa(e.Line)}
}

func declLabel(e m.CatalogEntry) string {
	if e.Mutable {
		return string(e.Decl) + " mut"
	}

	return string(e.Decl)
}

// DisplaySource writes src verbatim.
func (s *SimpleUI) DisplaySource(src []byte) error {
	_, err := s.cmd.OutOrStdout().Write(src)

	return err
}

// DisplayDiff writes a unified diff. An empty diff prints nothing.
func (s *SimpleUI) DisplayDiff(diff string) error {
	if diff == "" {
		return nil
	}

	s.printf("%s", diff)

	return nil
}

// DisplayRunResult prints the program output. Compiler diagnostics and the
// program's stderr go to the error stream.
func (s *SimpleUI) DisplayRunResult(result m.RunResult, err error) error {
	if err != nil {
		s.errorf("run error: %v\n", err)

		return err
	}

	if result.Stage == m.StageCompile {
		s.errorf("compilation failed (exit %d):\n%s", result.ExitCode, result.Stderr)

		return nil
	}

	s.printf("%s", result.Stdout)

	if result.Stderr != "" {
		s.errorf("%s", result.Stderr)
	}

	if result.ExitCode != 0 {
		s.errorf("exit status %d\n", result.ExitCode)
	}

	return nil
}

// Edit is not available without a terminal.
func (s *SimpleUI) Edit(_ context.Context, _ Editor) error {
	return ErrNotInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
