package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/mouse-blink/crowbar/internal/adapter"
	"github.com/mouse-blink/crowbar/internal/log"
	m "github.com/mouse-blink/crowbar/internal/model"
)

const (
	sourceName = "main.rs"
	binaryName = "main"

	// DefaultWorkspacePattern names the scratch directories builds run in.
	DefaultWorkspacePattern = "crowbar-run-*"
)

// Orchestrator builds a source snapshot in a scratch workspace and runs the
// resulting program.
type Orchestrator interface {
	Run(ctx context.Context, src []byte) (m.RunResult, error)
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	toolchain adapter.ToolchainAdapter
	pattern   string
	timeout   time.Duration
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*orchestrator)

// WithTimeout bounds compile and run together. Zero means no bound beyond
// the caller's context.
func WithTimeout(d time.Duration) OrchestratorOption {
	return func(o *orchestrator) {
		o.timeout = d
	}
}

// WithWorkspacePattern sets the os.MkdirTemp pattern for scratch workspaces.
func WithWorkspacePattern(pattern string) OrchestratorOption {
	return func(o *orchestrator) {
		if pattern != "" {
			o.pattern = pattern
		}
	}
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem and toolchain adapters.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, toolchain adapter.ToolchainAdapter, opts ...OrchestratorOption) Orchestrator {
	o := &orchestrator{
		fsAdapter: fsAdapter,
		toolchain: toolchain,
		pattern:   DefaultWorkspacePattern,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Run writes src into a fresh workspace, compiles it, and executes the
// binary when compilation succeeds. A compile failure is a result, not an
// error; errors mean the toolchain could not be driven at all.
func (o *orchestrator) Run(ctx context.Context, src []byte) (m.RunResult, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	tmpDir, err := o.fsAdapter.CreateTempDir(o.pattern)
	if err != nil {
		return m.RunResult{}, fmt.Errorf("failed to create temp dir: %w", err)
	}

	defer o.cleanupTempDir(tmpDir)

	srcPath := o.fsAdapter.JoinPath(string(tmpDir), sourceName)
	binPath := o.fsAdapter.JoinPath(string(tmpDir), binaryName)

	if err := o.fsAdapter.WriteFile(srcPath, src, 0o600); err != nil {
		return m.RunResult{}, fmt.Errorf("failed to write source: %w", err)
	}

	start := time.Now()

	out, err := o.toolchain.Compile(ctx, string(tmpDir), string(srcPath), string(binPath))
	if err != nil {
		return m.RunResult{}, fmt.Errorf("failed to compile: %w", err)
	}

	if out.ExitCode != 0 {
		return resultFor(m.StageCompile, out, time.Since(start)), nil
	}

	out, err = o.toolchain.Execute(ctx, string(tmpDir), string(binPath))
	if err != nil {
		return m.RunResult{}, fmt.Errorf("failed to run: %w", err)
	}

	return resultFor(m.StageRun, out, time.Since(start)), nil
}

func resultFor(stage m.RunStage, out adapter.ProcessOutput, elapsed time.Duration) m.RunResult {
	return m.RunResult{
		Stage:    stage,
		Stdout:   out.Stdout,
		Stderr:   out.Stderr,
		ExitCode: out.ExitCode,
		Duration: elapsed,
	}
}

// cleanupTempDir removes the workspace; failures are only logged.
func (o *orchestrator) cleanupTempDir(tmpDir m.Path) {
	if err := o.fsAdapter.RemoveAll(tmpDir); err != nil {
		log.Default().Warn("failed to remove workspace", "dir", string(tmpDir), "error", err)
	}
}
