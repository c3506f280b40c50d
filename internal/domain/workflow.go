package domain

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/crowbar/internal/adapter"
	"github.com/mouse-blink/crowbar/internal/controller"
	"github.com/mouse-blink/crowbar/internal/diff"
	"github.com/mouse-blink/crowbar/internal/domain/syntax"
	"github.com/mouse-blink/crowbar/internal/domain/values"
	"github.com/mouse-blink/crowbar/internal/log"
	m "github.com/mouse-blink/crowbar/internal/model"
)

// ListArgs contains the arguments for listing catalogs.
type ListArgs struct {
	Paths    []m.Path
	Filter   string
	Parallel int
}

// SetArgs contains the arguments for applying edits to a file.
type SetArgs struct {
	Path        m.Path
	Assignments []string // ID=VALUE
	Write       bool
	Diff        bool
}

// RunArgs contains the arguments for compiling and running a file.
type RunArgs struct {
	Path        m.Path
	Assignments []string // ID=VALUE, applied in memory before the build
}

// EditArgs contains the arguments for the interactive editor.
type EditArgs struct {
	Path m.Path
}

// Workflow is the set of operations the CLI exposes.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Set(ctx context.Context, args SetArgs) error
	Run(ctx context.Context, args RunArgs) error
	Edit(ctx context.Context, args EditArgs) error
}

type workflow struct {
	fsAdapter    adapter.SourceFSAdapter
	ui           controller.UI
	orchestrator Orchestrator
}

// NewWorkflow wires the filesystem, UI and orchestrator into a Workflow.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI, orchestrator Orchestrator) Workflow {
	return &workflow{
		fsAdapter:    fsAdapter,
		ui:           ui,
		orchestrator: orchestrator,
	}
}

type catalogResult struct {
	path    m.Path
	entries []m.CatalogEntry
	err     error
}

// List scans every file under args.Paths concurrently and displays the
// catalogs in path order.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	files, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return fmt.Errorf("failed to collect sources: %w", err)
	}

	results := make([]catalogResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(args.Parallel, 1))

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = w.catalog(file.Path, args.Filter)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0

	for _, r := range results {
		if err := w.ui.DisplayCatalog(r.path, r.entries, r.err); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) could not be scanned", failed, len(results))
	}

	return nil
}

func (w *workflow) catalog(path m.Path, filter string) catalogResult {
	src, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return catalogResult{path: path, err: err}
	}

	tree, err := syntax.Parse(src)
	if err != nil {
		log.Default().Debug("parse failed", "path", string(path), "error", err)

		return catalogResult{path: path, err: err}
	}

	entries, _ := Scan(tree)

	return catalogResult{path: path, entries: FilterCatalog(entries, filter)}
}

// Set applies the assignments to one file. The result is written back, shown
// as a diff, or printed, depending on args.
func (w *workflow) Set(_ context.Context, args SetArgs) error {
	src, err := w.fsAdapter.ReadFile(args.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args.Path, err)
	}

	out, err := w.applyAssignments(src, args.Assignments)
	if err != nil {
		return fmt.Errorf("%s: %w", args.Path, err)
	}

	if args.Diff {
		text, err := diff.Unified(string(args.Path), src, out)
		if err != nil {
			return err
		}

		if err := w.ui.DisplayDiff(text); err != nil {
			return err
		}
	}

	if args.Write {
		if bytes.Equal(src, out) {
			return nil
		}

		perm := defaultFileMode
		if info, err := w.fsAdapter.FileInfo(args.Path); err == nil {
			perm = info.Mode().Perm()
		}

		if err := w.fsAdapter.WriteFile(args.Path, out, perm); err != nil {
			return fmt.Errorf("failed to write %s: %w", args.Path, err)
		}

		return nil
	}

	if args.Diff {
		return nil
	}

	return w.ui.DisplaySource(out)
}

// Run builds and executes the file with the assignments applied in memory.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	src, err := w.fsAdapter.ReadFile(args.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args.Path, err)
	}

	snapshot, err := w.applyAssignments(src, args.Assignments)
	if err != nil {
		return fmt.Errorf("%s: %w", args.Path, err)
	}

	result, err := w.orchestrator.Run(ctx, snapshot)
	if displayErr := w.ui.DisplayRunResult(result, err); displayErr != nil && err == nil {
		return displayErr
	}

	if err != nil {
		return err
	}

	if !result.OK() {
		return fmt.Errorf("%w: %s stage exited with code %d", ErrRunFailed, result.Stage, result.ExitCode)
	}

	return nil
}

// Edit opens the interactive editor on one file.
func (w *workflow) Edit(ctx context.Context, args EditArgs) error {
	session := NewSession(w.fsAdapter)
	if err := session.Load(args.Path); err != nil {
		return err
	}

	for _, problem := range session.Problems() {
		log.Default().Warn("literal skipped", "path", string(args.Path), "error", problem)
	}

	return w.ui.Edit(ctx, &editor{Session: session, orchestrator: w.orchestrator})
}

func (w *workflow) applyAssignments(src []byte, assignments []string) ([]byte, error) {
	if len(assignments) == 0 {
		return src, nil
	}

	reqs, err := ParseAssignments(src, assignments)
	if err != nil {
		return nil, err
	}

	return ApplyEdits(src, reqs...)
}

// ParseAssignments turns ID=VALUE strings into edit requests. Each VALUE is
// parsed as the kind of the entry its ID resolves to in src.
func ParseAssignments(src []byte, assignments []string) ([]m.EditRequest, error) {
	tree, err := syntax.Parse(src)
	if err != nil {
		return nil, err
	}

	entries, _ := Scan(tree)
	reqs := make([]m.EditRequest, 0, len(assignments))

	for _, assignment := range assignments {
		rawID, text, found := strings.Cut(assignment, "=")
		if !found {
			return nil, fmt.Errorf("invalid assignment %q: want ID=VALUE", assignment)
		}

		id, err := m.ParseEntryID(rawID)
		if err != nil {
			return nil, err
		}

		entry, err := Resolve(entries, id)
		if err != nil {
			return nil, &MutateError{ID: id, Err: err}
		}

		v, err := values.ParseInput(entry.Kind, text)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", entry.ID, err)
		}

		reqs = append(reqs, m.EditRequest{ID: entry.ID, Value: v})
	}

	return reqs, nil
}

// editor adapts a Session to the interactive UI.
type editor struct {
	*Session
	orchestrator Orchestrator
}

func (e *editor) Run(ctx context.Context, src []byte) (m.RunResult, error) {
	return e.orchestrator.Run(ctx, src)
}
