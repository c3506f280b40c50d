package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mouse-blink/crowbar/internal/log"
	m "github.com/mouse-blink/crowbar/internal/model"
)

// TUI implements UI with lipgloss-styled output and a Bubble Tea editor.
type TUI struct {
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// DisplayCatalog prints a styled catalog for one file.
func (t *TUI) DisplayCatalog(path m.Path, entries []m.CatalogEntry, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "%s %s\n", errStyle.Render("✗ "+string(path)), err)

		return err
	}

	var b strings.Builder

	for _, e := range entries {
		b.WriteString(renderEntry(e, 0, false))
		b.WriteByte('\n')
	}

	if len(entries) == 0 {
		b.WriteString(mutedStyle.Render("no editable bindings"))
		b.WriteByte('\n')
	}

	_, _ = fmt.Fprintf(t.output, "%s %s\n%s",
		titleStyle.Render(string(path)),
		mutedStyle.Render(fmt.Sprintf("(%d)", len(entries))),
		b.String(),
	)

	return nil
}

// DisplaySource writes src verbatim.
func (t *TUI) DisplaySource(src []byte) error {
	_, err := t.output.Write(src)

	return err
}

// DisplayDiff prints a unified diff with added and removed lines colored.
func (t *TUI) DisplayDiff(diff string) error {
	if diff == "" {
		return nil
	}

	_, _ = fmt.Fprint(t.output, colorizeDiff(diff))

	return nil
}

func colorizeDiff(diff string) string {
	lines := strings.SplitAfter(diff, "\n")

	var b strings.Builder

	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]

		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			b.WriteString(titleStyle.Render(body))
		case strings.HasPrefix(body, "@@"):
			b.WriteString(accentStyle.Render(body))
		case strings.HasPrefix(body, "+"):
			b.WriteString(addedStyle.Render(body))
		case strings.HasPrefix(body, "-"):
			b.WriteString(removedStyle.Render(body))
		default:
			b.WriteString(body)
		}

		b.WriteString(nl)
	}

	return b.String()
}

// DisplayRunResult prints a status line followed by the program output.
func (t *TUI) DisplayRunResult(result m.RunResult, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "%s %v\n", errStyle.Render("run error:"), err)

		return err
	}

	_, _ = fmt.Fprint(t.output, formatRunResult(result))

	return nil
}

func runStatus(result m.RunResult) string {
	switch {
	case result.Stage == m.StageCompile:
		return errStyle.Render(fmt.Sprintf("✗ compilation failed (exit %d)", result.ExitCode))
	case result.ExitCode != 0:
		return errStyle.Render(fmt.Sprintf("✗ exited with status %d", result.ExitCode))
	default:
		return okStyle.Render("✓ ok") + mutedStyle.Render(fmt.Sprintf(" in %s", result.Duration.Round(time.Millisecond)))
	}
}

func formatRunResult(result m.RunResult) string {
	var b strings.Builder

	b.WriteString(runStatus(result))
	b.WriteByte('\n')

	if result.Stdout != "" {
		b.WriteString(result.Stdout)

		if !strings.HasSuffix(result.Stdout, "\n") {
			b.WriteByte('\n')
		}
	}

	if result.Stderr != "" {
		b.WriteString(mutedStyle.Render(strings.TrimRight(result.Stderr, "\n")))
		b.WriteByte('\n')
	}

	return b.String()
}

// Edit runs the interactive editor until the user quits. Logging is muted
// while the editor owns the screen.
func (t *TUI) Edit(ctx context.Context, editor Editor) error {
	defer muteLogs()()

	p := tea.NewProgram(
		newEditorModel(ctx, editor),
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	return nil
}

// muteLogs sends the default logger to Discard until the returned func runs.
func muteLogs() func() {
	prev := log.Default()
	log.SetDefault(log.Discard())

	return func() { log.SetDefault(prev) }
}
