package shell

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandMapping(t *testing.T) {
	tests := []struct {
		kind job.ShellKind
		want []string
	}{
		{job.ShellKindBash, []string{"bash", "-c", "echo hi"}},
		{job.ShellKindPowershellCrossPlatform, []string{"pwsh", "-NoProfile", "-Command", "echo hi"}},
		{job.ShellKindCommandPromptWindows, []string{"cmd", "/C", "echo hi"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			argv, err := command(tt.kind, "echo hi")
			require.NoError(t, err)
			assert.Equal(t, tt.want, argv)
		})
	}

	t.Run("git subcommand splits arguments", func(t *testing.T) {
		argv, err := command(job.ShellKindGitSubcommand, "status --short")
		require.NoError(t, err)
		assert.Equal(t, []string{"git", "status", "--short"}, argv)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := command(job.ShellKind("zsh"), "echo hi")
		assert.Error(t, err)
	})
}

func TestRunCapturesStdout(t *testing.T) {
	result, err := NewLocalRunner().Run(context.Background(), job.ShellKindBash, "echo hello", "")
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Stdout, "hello")
	assert.Empty(t, result.Stderr)
}

func TestRunNonZeroExit(t *testing.T) {
	result, err := NewLocalRunner().Run(context.Background(), job.ShellKindBash, "echo oops >&2; exit 3", "")
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Contains(t, result.Stderr, "oops")
}

func TestRunMissingWorkdir(t *testing.T) {
	_, err := NewLocalRunner().Run(context.Background(), job.ShellKindBash, "true", "/does/not/exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "working directory does not exist")
}

func TestRunWorkdir(t *testing.T) {
	dir := t.TempDir()
	result, err := NewLocalRunner().Run(context.Background(), job.ShellKindBash, "pwd", dir)
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, dir)
}

func TestRunCancellationKillsChild(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewLocalRunner().Run(ctx, job.ShellKindBash, "sleep 30", "")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
