package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CLICompiler drives the external safe-DSL toolchain binary. Compilation
// pipes the script to `<cmd> compile -workspace <ws>` and keeps the program
// token it prints; execution runs `<cmd> run -workspace <ws> <token>` and
// parses the JSON step report from stdout.
type CLICompiler struct {
	command string
}

// NewCLICompiler returns a compiler around the given toolchain binary.
func NewCLICompiler(command string) *CLICompiler {
	return &CLICompiler{command: command}
}

func (c *CLICompiler) Compile(ctx context.Context, script, workspace string) (Compiled, error) {
	cmd := exec.CommandContext(ctx, c.command, "compile", "-workspace", workspace)
	cmd.Stdin = strings.NewReader(script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diagnostic := strings.TrimSpace(stderr.String())
		if diagnostic == "" {
			diagnostic = err.Error()
		}
		return nil, fmt.Errorf("compile failed: %s", diagnostic)
	}

	token := strings.TrimSpace(stdout.String())
	if token == "" {
		return nil, fmt.Errorf("compiler emitted no program token")
	}
	return &cliProgram{command: c.command, workspace: workspace, token: token}, nil
}

type cliProgram struct {
	command   string
	workspace string
	token     string
}

// stepReport is the toolchain's JSON execution report.
type stepReport struct {
	AllSucceeded    bool  `json:"all_succeeded"`
	TotalDurationMs int64 `json:"total_duration_ms"`
	Steps           []struct {
		Index      int    `json:"index"`
		Verb       string `json:"verb"`
		Success    bool   `json:"success"`
		Attempts   int    `json:"attempts"`
		DurationMs int64  `json:"duration_ms"`
		Error      string `json:"error,omitempty"`
	} `json:"steps"`
}

func (p *cliProgram) Execute(ctx context.Context) (*Result, error) {
	cmd := exec.CommandContext(ctx, p.command, "run", "-workspace", p.workspace, p.token)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// A non-zero exit still carries a step report when any step ran; the
	// report, not the exit code, is the outcome of record.
	runErr := cmd.Run()

	var report stepReport
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		if runErr != nil {
			return nil, fmt.Errorf("sandbox execution failed: %s", strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("unreadable sandbox report: %w", err)
	}

	result := &Result{
		AllSucceeded:  report.AllSucceeded,
		TotalDuration: time.Duration(report.TotalDurationMs) * time.Millisecond,
	}
	for _, s := range report.Steps {
		result.Steps = append(result.Steps, StepResult{
			Index:    s.Index,
			Verb:     s.Verb,
			Success:  s.Success,
			Attempts: s.Attempts,
			Duration: time.Duration(s.DurationMs) * time.Millisecond,
			Error:    s.Error,
		})
	}
	return result, nil
}

// FSRegistrar provisions named workspaces under a fixed root. A name maps to
// a symlink root/<name> pointing at the workspace path, so re-registering the
// same name with the same path is idempotent while repointing is rejected.
type FSRegistrar struct {
	root string
}

// NewFSRegistrar returns a registrar rooted at dir.
func NewFSRegistrar(dir string) *FSRegistrar {
	return &FSRegistrar{root: dir}
}

func (r *FSRegistrar) Register(_ context.Context, sandboxName, rootPath string) error {
	if sandboxName == "" || strings.ContainsAny(sandboxName, "/\\") {
		return fmt.Errorf("invalid sandbox name %q", sandboxName)
	}

	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return fmt.Errorf("creating workspace %s: %w", rootPath, err)
	}
	if err := os.MkdirAll(r.root, 0o755); err != nil {
		return fmt.Errorf("creating registry root %s: %w", r.root, err)
	}

	link := filepath.Join(r.root, sandboxName)
	if existing, err := os.Readlink(link); err == nil {
		if existing == rootPath {
			return nil
		}
		return fmt.Errorf("sandbox %s already registered at %s", sandboxName, existing)
	}

	if err := os.Symlink(rootPath, link); err != nil {
		return fmt.Errorf("registering sandbox %s: %w", sandboxName, err)
	}
	return nil
}
