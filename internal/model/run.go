package model

import "time"

// RunStage is the last toolchain step a run reached.
type RunStage string

const (
	// StageCompile means compilation failed or was interrupted.
	StageCompile RunStage = "compile"
	// StageRun means the program was built and executed.
	StageRun RunStage = "run"
)

// RunResult holds the outcome of compiling and running a source snapshot.
type RunResult struct {
	Stage    RunStage
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// OK reports whether the program compiled and exited with status zero.
func (r RunResult) OK() bool {
	return r.Stage == StageRun && r.ExitCode == 0
}
