package sandbox

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeToolchain drops a shell script standing in for the external safe-DSL
// binary and returns its path.
func writeToolchain(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandboxc")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestCLICompilerCompileAndRun(t *testing.T) {
	bin := writeToolchain(t, `
if [ "$1" = "compile" ]; then
  cat >/dev/null
  echo "prog-1"
  exit 0
fi
cat <<'EOF'
{"all_succeeded": true, "total_duration_ms": 120, "steps": [
  {"index": 0, "verb": "copy", "success": true, "attempts": 1, "duration_ms": 70},
  {"index": 1, "verb": "move", "success": true, "attempts": 2, "duration_ms": 50}
]}
EOF
`)

	compiler := NewCLICompiler(bin)
	compiled, err := compiler.Compile(context.Background(), "copy a b\nmove b c", t.TempDir())
	require.NoError(t, err)

	result, err := compiled.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, result.AllSucceeded)
	require.Len(t, result.Steps, 2)
	assert.Equal(t, "copy", result.Steps[0].Verb)
	assert.Equal(t, 2, result.Steps[1].Attempts)
	assert.Nil(t, FirstFailure(result))
}

func TestCLICompilerCompileDiagnostic(t *testing.T) {
	bin := writeToolchain(t, `
cat >/dev/null
echo "line 2: unknown verb 'launch'" >&2
exit 1
`)

	_, err := NewCLICompiler(bin).Compile(context.Background(), "launch x", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown verb 'launch'")
}

func TestCLICompilerFailedStepReport(t *testing.T) {
	bin := writeToolchain(t, `
if [ "$1" = "compile" ]; then cat >/dev/null; echo "prog-1"; exit 0; fi
cat <<'EOF'
{"all_succeeded": false, "total_duration_ms": 40, "steps": [
  {"index": 0, "verb": "copy", "success": false, "attempts": 3, "duration_ms": 40, "error": "no such file"}
]}
EOF
exit 1
`)

	compiled, err := NewCLICompiler(bin).Compile(context.Background(), "copy a b", t.TempDir())
	require.NoError(t, err)

	result, err := compiled.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, result.AllSucceeded)

	failure := FirstFailure(result)
	require.NotNil(t, failure)
	assert.Equal(t, "no such file", failure.Error)
}

func TestFSRegistrar(t *testing.T) {
	root := t.TempDir()
	workspace := filepath.Join(t.TempDir(), "ws-1")
	registrar := NewFSRegistrar(root)

	require.NoError(t, registrar.Register(context.Background(), "build-env", workspace))
	assert.DirExists(t, workspace)

	// Same name, same path: idempotent.
	require.NoError(t, registrar.Register(context.Background(), "build-env", workspace))

	// Same name, different path: rejected.
	err := registrar.Register(context.Background(), "build-env", filepath.Join(t.TempDir(), "other"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	require.Error(t, registrar.Register(context.Background(), "../escape", workspace))
}
