package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ProcessOutput is what a finished child process left behind.
type ProcessOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ToolchainAdapter compiles and executes Rust programs. A non-zero exit is
// reported through ProcessOutput.ExitCode; the error return is reserved for
// processes that could not be started or were cancelled.
type ToolchainAdapter interface {
	// Compile builds src into the executable out, running in dir.
	Compile(ctx context.Context, dir, src, out string) (ProcessOutput, error)

	// Execute runs the executable bin with dir as its working directory.
	Execute(ctx context.Context, dir, bin string) (ProcessOutput, error)
}

// LocalToolchainAdapter shells out to a rustc-compatible compiler.
type LocalToolchainAdapter struct {
	compiler string
	args     []string
}

// NewLocalToolchainAdapter builds an adapter invoking compiler with args
// placed before the source file.
func NewLocalToolchainAdapter(compiler string, args ...string) *LocalToolchainAdapter {
	return &LocalToolchainAdapter{compiler: compiler, args: args}
}

// Compile runs "<compiler> <args...> <src> -o <out>".
func (a *LocalToolchainAdapter) Compile(ctx context.Context, dir, src, out string) (ProcessOutput, error) {
	args := make([]string, 0, len(a.args)+3)
	args = append(args, a.args...)
	args = append(args, src, "-o", out)

	// #nosec G204 - compiler comes from the user's own configuration
	cmd := exec.CommandContext(ctx, a.compiler, args...)
	cmd.Dir = dir

	return run(ctx, cmd)
}

// Execute runs the compiled program.
func (a *LocalToolchainAdapter) Execute(ctx context.Context, dir, bin string) (ProcessOutput, error) {
	// #nosec G204 - bin is the executable crowbar just built
	cmd := exec.CommandContext(ctx, bin)
	cmd.Dir = dir

	return run(ctx, cmd)
}

func run(ctx context.Context, cmd *exec.Cmd) (ProcessOutput, error) {
	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	out := ProcessOutput{Stdout: stdout.String(), Stderr: stderr.String()}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return out, fmt.Errorf("%s: %w", cmd.Path, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()

		return out, nil
	}

	if err != nil {
		return out, fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}

	return out, nil
}
