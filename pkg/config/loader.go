package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configFile = "warden.yaml"

// Initialize loads, merges, and validates the configuration.
//
// Steps performed:
//  1. Load .env from configDir (never overriding real env)
//  2. Read warden.yaml, expand ${VAR} references
//  3. Merge the YAML over the built-in defaults
//  4. Apply env overrides (PORT, LOG_LEVEL)
//  5. Validate
//
// A missing warden.yaml is fine: the defaults plus env cover a bare
// deployment.
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)

	envPath := filepath.Join(configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading %s: %w", envPath, err)
		}
	} else {
		log.Info("Loaded environment file", "path", envPath)
	}

	cfg := defaultConfig()
	cfg.configDir = configDir

	loaded, err := loadYAML(filepath.Join(configDir, configFile))
	if err != nil {
		return nil, NewLoadError(configFile, err)
	}
	if loaded != nil {
		// User values override defaults; unset fields keep them.
		if err := mergo.Merge(cfg, loaded, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging configuration: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	log.Info("Configuration initialized",
		"port", cfg.Server.Port,
		"bridge", cfg.Bridge.Address,
		"chunk_duration", cfg.Transcription.ChunkDuration,
		"log_level", cfg.LogLevel)
	return cfg, nil
}

// loadYAML reads and parses the config file; a missing file returns nil
// without error.
func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	data = ExpandEnv(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

// applyEnvOverrides applies the env vars that beat the YAML file.
func applyEnvOverrides(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			cfg.Server.Port = p
		} else {
			slog.Warn("Ignoring invalid PORT env var", "value", port)
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d", ErrInvalidValue, cfg.Server.Port)
	}
	if cfg.Bridge.Address == "" {
		return fmt.Errorf("%w: bridge.address must not be empty", ErrInvalidValue)
	}
	if cfg.Transcription.ChunkDuration <= 0 {
		return fmt.Errorf("%w: transcription.chunk_duration must be positive", ErrInvalidValue)
	}
	if cfg.Transcription.QueueSize <= 0 {
		return fmt.Errorf("%w: transcription.queue_size must be positive", ErrInvalidValue)
	}
	if cfg.Chat.HistoryLimit <= 0 {
		return fmt.Errorf("%w: chat.history_limit must be positive", ErrInvalidValue)
	}
	if cfg.Sandbox.CompilerCommand == "" {
		return fmt.Errorf("%w: sandbox.compiler_command must not be empty", ErrInvalidValue)
	}
	if cfg.Retention.JobRetention <= 0 || cfg.Retention.ChatRetention <= 0 || cfg.Retention.Interval <= 0 {
		return fmt.Errorf("%w: retention durations must be positive", ErrInvalidValue)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidValue, cfg.LogLevel)
	}
	return nil
}

// DatabaseURL reads the connection string from the environment; the pool
// settings live in YAML but the URL carries credentials and never does.
func DatabaseURL() (string, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return "", fmt.Errorf("%w: DATABASE_URL is not set", ErrInvalidValue)
	}
	return url, nil
}

// MasterKey reads the secrets master key from the environment. Empty is
// allowed; the cipher then refuses to encrypt.
func MasterKey() string {
	return os.Getenv("WARDEN_MASTER_KEY")
}
