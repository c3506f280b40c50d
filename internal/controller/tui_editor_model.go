package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/crowbar/internal/domain/values"
	m "github.com/mouse-blink/crowbar/internal/model"
)

type editorMode int

const (
	modeBrowse editorMode = iota
	modeInput
	modeOutput
	modeSource
)

// entryDelegate renders one catalog entry per line.
type entryDelegate struct{}

func (d entryDelegate) Height() int  { return 1 }
func (d entryDelegate) Spacing() int { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d entryDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}

	_, _ = fmt.Fprint(w, renderEntry(it.entry, lm.Width(), index == lm.Index()))
}

// renderEntry lays out "ID  kind  value". A width of zero disables
// truncation.
func renderEntry(e m.CatalogEntry, width int, selected bool) string {
	id := fmt.Sprintf("%-20s", truncateToWidth(e.ID.String(), 20))
	kind := fmt.Sprintf("%-8s", e.Kind)

	value := e.Display()
	if e.Via != "" {
		value += " ← " + e.Via
	}

	if width > 0 {
		value = truncateToWidth(value, width-lipgloss.Width(id)-lipgloss.Width(kind)-4)
	}

	if selected {
		return selectedStyle.Render(fmt.Sprintf("%s  %s  %s", id, kind, value))
	}

	vs, ok := kindStyle[string(e.Kind)]
	if !ok {
		vs = lipgloss.NewStyle()
	}

	return fmt.Sprintf("%s  %s  %s", pathStyle.Render(id), mutedStyle.Render(kind), vs.Render(value))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// editorModel is the interactive catalog editor.
type editorModel struct {
	ctx    context.Context
	editor Editor

	width  int
	height int

	entries list.Model
	input   textinput.Model
	output  viewport.Model
	source  viewport.Model

	mode      editorMode
	editing   m.CatalogEntry
	status    string
	statusErr bool
	running   bool
	hasOutput bool
	quitArmed bool
}

func newEditorModel(ctx context.Context, editor Editor) editorModel {
	entries := list.New(nil, entryDelegate{}, 80, 20)
	entries.SetShowPagination(false)
	entries.SetShowHelp(false)
	entries.SetShowTitle(false)
	entries.SetShowStatusBar(false)
	entries.DisableQuitKeybindings()
	entries.FilterInput.Placeholder = "Filter by name…"

	input := textinput.New()
	input.Prompt = "> "

	em := editorModel{
		ctx:     ctx,
		editor:  editor,
		entries: entries,
		input:   input,
		output:  viewport.New(80, 20),
		source:  viewport.New(80, 20),
	}
	em.refresh()

	return em
}

// refresh reloads the list from the editor, keeping the selection.
func (em *editorModel) refresh() {
	catalog := em.editor.Catalog()

	items := make([]list.Item, 0, len(catalog))
	for _, e := range catalog {
		items = append(items, entryItem{entry: e})
	}

	index := em.entries.Index()
	em.entries.SetItems(items)

	if index < len(items) {
		em.entries.Select(index)
	}
}

func (em *editorModel) setStatus(msg string, isErr bool) {
	em.status = msg
	em.statusErr = isErr
}

func (em editorModel) selected() (m.CatalogEntry, bool) {
	it, ok := em.entries.SelectedItem().(entryItem)
	if !ok {
		return m.CatalogEntry{}, false
	}

	return it.entry, true
}

func (em editorModel) Init() tea.Cmd {
	return nil
}

func (em editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.resize(msg.Width, msg.Height)

		return em, nil
	case runFinishedMsg:
		return em.handleRunFinished(msg), nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return em, tea.Quit
		}

		switch em.mode {
		case modeInput:
			return em.updateInput(msg)
		case modeOutput:
			return em.updateOutput(msg)
		case modeSource:
			return em.updateSource(msg)
		default:
			return em.updateBrowse(msg)
		}
	}

	return em, nil
}

func (em *editorModel) resize(width, height int) {
	em.width = width
	em.height = height

	// title, status, footer and the container border
	body := max(height-7, 3)
	inner := max(width-4, 10)

	em.entries.SetSize(inner, body)
	em.output.Width = inner
	em.output.Height = body
	em.source.Width = inner
	em.source.Height = body
	em.input.Width = inner - 2
}

func (em editorModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if em.entries.FilterState() == list.Filtering {
		var cmd tea.Cmd

		em.entries, cmd = em.entries.Update(msg)

		return em, cmd
	}

	key := msg.String()
	if key != "q" {
		em.quitArmed = false
	}

	switch key {
	case "q":
		if em.editor.Dirty() && !em.quitArmed {
			em.quitArmed = true
			em.setStatus("unsaved changes: press w to save or q again to quit", true)

			return em, nil
		}

		return em, tea.Quit
	case "enter", "e":
		entry, ok := em.selected()
		if !ok {
			return em, nil
		}

		em.mode = modeInput
		em.editing = entry
		em.input.SetValue(values.FormatInput(entry.Value))
		em.input.CursorEnd()
		em.setStatus("", false)

		return em, em.input.Focus()
	case " ":
		entry, ok := em.selected()
		if !ok || entry.Kind != m.KindBoolean {
			return em, nil
		}

		em.apply(entry, m.BoolValue(!entry.Value.Bool))

		return em, nil
	case "w":
		if err := em.editor.Save(); err != nil {
			em.setStatus(err.Error(), true)
		} else {
			em.setStatus("saved "+string(em.editor.Path()), false)
		}

		return em, nil
	case "r":
		if em.running {
			return em, nil
		}

		em.running = true
		em.setStatus("compiling…", false)

		return em, runCmd(em.ctx, em.editor, em.editor.Snapshot())
	case "o":
		if em.hasOutput {
			em.mode = modeOutput
		}

		return em, nil
	case "s":
		em.showSource()

		return em, nil
	}

	var cmd tea.Cmd

	em.entries, cmd = em.entries.Update(msg)

	return em, cmd
}

func (em editorModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		em.mode = modeBrowse
		em.input.Blur()
		em.setStatus("edit cancelled", false)

		return em, nil
	case "enter":
		v, err := values.ParseInput(em.editing.Kind, em.input.Value())
		if err != nil {
			em.setStatus(err.Error(), true)

			return em, nil
		}

		if em.apply(em.editing, v) {
			em.mode = modeBrowse
			em.input.Blur()
		}

		return em, nil
	}

	var cmd tea.Cmd

	em.input, cmd = em.input.Update(msg)

	return em, cmd
}

// apply sends one edit to the session and reports whether it was accepted.
func (em *editorModel) apply(entry m.CatalogEntry, v m.Value) bool {
	if err := em.editor.Edit(m.EditRequest{ID: entry.ID, Value: v}); err != nil {
		em.setStatus(err.Error(), true)

		return false
	}

	em.refresh()
	em.quitArmed = false
	em.setStatus(fmt.Sprintf("%s = %s", entry.ID.Name, v), false)

	return true
}

func (em editorModel) updateOutput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "o", "q":
		em.mode = modeBrowse

		return em, nil
	}

	var cmd tea.Cmd

	em.output, cmd = em.output.Update(msg)

	return em, cmd
}

// runCmd builds src off the Update goroutine. src must not be shared with
// the session.
// showSource switches to the read-only source view with the selected entry's
// literal highlighted and scrolled into view.
func (em *editorModel) showSource() {
	entry, _ := em.selected()

	em.source.SetContent(highlightSpan(string(em.editor.Snapshot()), entry.Span))
	em.source.SetYOffset(max(entry.Line-1-em.source.Height/2, 0))
	em.mode = modeSource
}

// highlightSpan renders src with the bytes under span emphasized. An empty
// or out-of-range span leaves src as is.
func highlightSpan(src string, span m.Span) string {
	if span.Start < 0 || span.End > len(src) || span.Start >= span.End {
		return src
	}

	return src[:span.Start] + selectedStyle.Render(src[span.Start:span.End]) + src[span.End:]
}

func (em editorModel) updateSource(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "s", "q":
		em.mode = modeBrowse

		return em, nil
	}

	var cmd tea.Cmd

	em.source, cmd = em.source.Update(msg)

	return em, cmd
}

func runCmd(ctx context.Context, editor Editor, src []byte) tea.Cmd {
	return func() tea.Msg {
		result, err := editor.Run(ctx, src)

		return runFinishedMsg{result: result, err: err}
	}
}

func (em editorModel) handleRunFinished(msg runFinishedMsg) editorModel {
	em.running = false

	if msg.err != nil {
		em.setStatus("run error: "+msg.err.Error(), true)

		return em
	}

	em.output.SetContent(formatRunResult(msg.result))
	em.output.GotoTop()
	em.hasOutput = true

	if em.mode == modeBrowse {
		em.mode = modeOutput
	}

	switch {
	case msg.result.Stage == m.StageCompile:
		em.setStatus("compilation failed", true)
	case msg.result.ExitCode != 0:
		em.setStatus(fmt.Sprintf("exited with status %d", msg.result.ExitCode), true)
	default:
		em.setStatus("run finished", false)
	}

	return em
}

func (em editorModel) View() string {
	title := titleStyle.Render("crowbar") + " " + pathStyle.Render(string(em.editor.Path()))
	if em.editor.Dirty() {
		title += accentStyle.Render(" [modified]")
	}

	var body string

	switch em.mode {
	case modeOutput:
		body = em.output.View()
	case modeSource:
		body = em.source.View()
	default:
		body = em.entries.View()
	}

	lines := []string{title, containerStyle.Render(body)}

	if em.mode == modeInput {
		lines = append(lines, fmt.Sprintf("%s %s", accentStyle.Render(em.editing.ID.Name), mutedStyle.Render("("+string(em.editing.Kind)+")")))
		lines = append(lines, em.input.View())
	}

	switch {
	case em.running:
		lines = append(lines, accentStyle.Render("compiling…"))
	case em.status != "" && em.statusErr:
		lines = append(lines, errStyle.Render(em.status))
	case em.status != "":
		lines = append(lines, okStyle.Render(em.status))
	}

	lines = append(lines, mutedStyle.Render(em.help()))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (em editorModel) help() string {
	switch em.mode {
	case modeInput:
		return "enter apply • esc cancel"
	case modeOutput:
		return "↑/↓ scroll • o/esc back"
	case modeSource:
		return "↑/↓ scroll • s/esc back"
	default:
		keys := []string{"↑/↓ move", "enter edit", "space toggle", "/ filter", "s source", "r run", "w save", "q quit"}
		if em.hasOutput {
			keys = append(keys, "o output")
		}

		return strings.Join(keys, " • ")
	}
}
