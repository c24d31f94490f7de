// Package sandbox defines the interfaces to the external safe-DSL compiler
// and executor, and the aggregation of their per-step results into the
// human-readable summaries recorded on jobs.
package sandbox

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Compiler compiles a safe-DSL script within a sandbox workspace.
type Compiler interface {
	Compile(ctx context.Context, script, workspace string) (Compiled, error)
}

// Compiled is an opaque compiled program, executable once.
type Compiled interface {
	Execute(ctx context.Context) (*Result, error)
}

// Registrar registers a named sandbox workspace with the external
// provisioner. Used by the create-container executor.
type Registrar interface {
	Register(ctx context.Context, sandboxName, rootPath string) error
}

// Result is the execution outcome of a compiled program.
type Result struct {
	AllSucceeded  bool
	Steps         []StepResult
	TotalDuration time.Duration
}

// StepResult is one step's outcome.
type StepResult struct {
	Index    int
	Verb     string
	Success  bool
	Attempts int
	Duration time.Duration
	Error    string
}

// Summarize renders a result as the per-step status report stored in a
// job's result data.
func Summarize(result *Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d step(s) in %s\n", len(result.Steps), result.TotalDuration.Round(time.Millisecond))
	for _, step := range result.Steps {
		status := "ok"
		if !step.Success {
			status = "FAILED"
		}
		fmt.Fprintf(&b, "  %d. %s: %s", step.Index+1, step.Verb, status)
		if step.Attempts > 1 {
			fmt.Fprintf(&b, " (%d attempts)", step.Attempts)
		}
		if step.Error != "" {
			fmt.Fprintf(&b, " — %s", step.Error)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FirstFailure returns the first failing step, or nil when all succeeded.
func FirstFailure(result *Result) *StepResult {
	for i := range result.Steps {
		if !result.Steps[i].Success {
			return &result.Steps[i]
		}
	}
	return nil
}
