// Package shell spawns real interpreter processes for dangerous-shell jobs.
// Nothing here is sandboxed: authorization happens before a job reaches this
// package.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/codeready-toolchain/warden/ent/job"
)

// Result captures one process run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Runner executes scripts through a real interpreter.
type Runner interface {
	Run(ctx context.Context, kind job.ShellKind, script, workdir string) (*Result, error)
}

// LocalRunner runs processes on the local host.
type LocalRunner struct{}

// NewLocalRunner creates a LocalRunner.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{}
}

// command maps a shell kind and script to the interpreter invocation.
// GitSubcommand treats the script as git arguments, not as shell input.
func command(kind job.ShellKind, script string) ([]string, error) {
	switch kind {
	case job.ShellKindBash:
		return []string{"bash", "-c", script}, nil
	case job.ShellKindPowershellCrossPlatform:
		return []string{"pwsh", "-NoProfile", "-Command", script}, nil
	case job.ShellKindCommandPromptWindows:
		return []string{"cmd", "/C", script}, nil
	case job.ShellKindGitSubcommand:
		return append([]string{"git"}, strings.Fields(script)...), nil
	}
	return nil, fmt.Errorf("unknown shell kind %q", kind)
}

// Run spawns the interpreter and captures stdout and stderr separately.
// A non-zero exit is reported in Result, not as an error; the error return
// covers spawn failures and cancellation. There is no built-in timeout: the
// context is the sole stop signal, and cancelling it kills the child.
func (r *LocalRunner) Run(ctx context.Context, kind job.ShellKind, script, workdir string) (*Result, error) {
	argv, err := command(kind, script)
	if err != nil {
		return nil, err
	}

	if workdir != "" {
		if _, statErr := os.Stat(workdir); os.IsNotExist(statErr) {
			return nil, fmt.Errorf("working directory does not exist: %s", workdir)
		}
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = workdir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if runErr != nil {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("failed to run %s: %w", argv[0], runErr)
	}
	return result, nil
}

var _ Runner = (*LocalRunner)(nil)
