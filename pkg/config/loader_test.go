package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFile), []byte(content), 0o644))
}

func TestInitializeDefaultsOnly(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost:50051", cfg.Bridge.Address)
	assert.Equal(t, 64, cfg.Transcription.QueueSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestInitializeYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  port: 9000
bridge:
  address: bridge.internal:50051
log_level: debug
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "bridge.internal:50051", cfg.Bridge.Address)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched sections keep their defaults.
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, 50, cfg.Chat.HistoryLimit)
}

func TestInitializeEnvExpansionInYAML(t *testing.T) {
	t.Setenv("BRIDGE_HOST", "bridge.prod")
	dir := t.TempDir()
	writeConfig(t, dir, `
bridge:
  address: ${BRIDGE_HOST}:50051
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, "bridge.prod:50051", cfg.Bridge.Address)
}

func TestInitializePortEnvOverridesYAML(t *testing.T) {
	t.Setenv("PORT", "7777")
	dir := t.TempDir()
	writeConfig(t, dir, "server:\n  port: 9000\n")

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, 7777, cfg.Server.Port)
}

func TestInitializeLogLevelEnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestInitializeDotEnvDoesNotOverrideRealEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o644))

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestInitializeDotEnvLoadsMissingVars(t *testing.T) {
	// The var must not leak between tests; t.Setenv registers the cleanup.
	t.Setenv("WARDEN_TEST_FROM_DOTENV", "")
	os.Unsetenv("WARDEN_TEST_FROM_DOTENV")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WARDEN_TEST_FROM_DOTENV=loaded\n"), 0o644))
	writeConfig(t, dir, "bridge:\n  address: ${WARDEN_TEST_FROM_DOTENV}:1\n")

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, "loaded:1", cfg.Bridge.Address)
}

func TestInitializeRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "bad port", yaml: "server:\n  port: -1\n"},
		{name: "bad log level", yaml: "log_level: verbose\n"},
		{name: "bad retention interval", yaml: "retention:\n  interval: -1s\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tc.yaml)
			_, err := Initialize(dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestInitializeMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "server: [not a mapping\n")

	_, err := Initialize(dir)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, configFile, loadErr.File)
}

func TestExpandEnvEscapedDollar(t *testing.T) {
	t.Setenv("WARDEN_EXPAND_X", "value")
	out := ExpandEnv([]byte("a: ${WARDEN_EXPAND_X} and $$literal"))
	assert.Equal(t, "a: value and $literal", string(out))
}

func TestDatabaseURLRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	_, err := DatabaseURL()
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/warden")
	url, err := DatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/warden", url)
}
