// Package config loads the warden configuration: a YAML file with
// mergo-merged defaults, ${VAR} env expansion inside values, and a .env file
// loaded via godotenv before anything reads the environment.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize and
// threaded through cmd/warden.
type Config struct {
	configDir string

	Server        *ServerConfig        `yaml:"server"`
	Database      *DatabaseConfig      `yaml:"database"`
	Bridge        *BridgeConfig        `yaml:"bridge"`
	Transcription *TranscriptionConfig `yaml:"transcription"`
	Chat          *ChatConfig          `yaml:"chat"`
	Shell         *ShellConfig         `yaml:"shell"`
	Sandbox       *SandboxConfig       `yaml:"sandbox"`
	Retention     *RetentionConfig     `yaml:"retention"`

	// LogLevel is debug, info, warn, or error. The LOG_LEVEL env var
	// overrides the YAML value.
	LogLevel string `yaml:"log_level"`
}

// ServerConfig holds the HTTP listen settings.
type ServerConfig struct {
	// Port is the HTTP listen port. The PORT env var overrides it.
	Port int `yaml:"port"`

	// AllowedWSOrigins are extra origin patterns accepted on the websocket
	// endpoint besides the listen host itself.
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`

	// WriteTimeout bounds one websocket write.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// ShutdownTimeout is the max wait for in-flight requests on shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig holds connection pool settings. The connection string
// itself always comes from DATABASE_URL.
type DatabaseConfig struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// BridgeConfig holds the provider bridge connection settings.
type BridgeConfig struct {
	// Address is the gRPC host:port of the provider bridge. Dialing is
	// lazy, so there is no dial timeout to configure.
	Address string `yaml:"address"`

	// MaxRetries and BaseBackoff tune the transient-error retry policy for
	// provider calls.
	MaxRetries  int           `yaml:"max_retries"`
	BaseBackoff time.Duration `yaml:"base_backoff"`
}

// TranscriptionConfig tunes the live transcription orchestrator.
type TranscriptionConfig struct {
	// ChunkDuration is the audio capture chunk length.
	ChunkDuration time.Duration `yaml:"chunk_duration"`

	// QueueSize is the capture-to-consumer chunk buffer per stream.
	QueueSize int `yaml:"queue_size"`
}

// ChatConfig tunes the tool-call loop.
type ChatConfig struct {
	// HistoryLimit is how many persisted messages seed the model
	// conversation.
	HistoryLimit int `yaml:"history_limit"`
}

// ShellConfig holds shell executor settings.
type ShellConfig struct {
	// SandboxRoot is the fallback workspace for sandboxed DSL execution
	// when neither the job nor the system user names one.
	SandboxRoot string `yaml:"sandbox_root"`
}

// RetentionConfig tunes the background retention sweeper.
type RetentionConfig struct {
	// JobRetention is how long terminal jobs and their logs/segments are
	// kept after completion.
	JobRetention time.Duration `yaml:"job_retention"`

	// ChatRetention is how long channel history is kept.
	ChatRetention time.Duration `yaml:"chat_retention"`

	// Interval is the sweep cadence.
	Interval time.Duration `yaml:"interval"`
}

// SandboxConfig points at the external safe-DSL toolchain.
type SandboxConfig struct {
	// CompilerCommand is the compiler/executor binary invoked per script.
	CompilerCommand string `yaml:"compiler_command"`

	// Root is where the registrar provisions named workspaces.
	Root string `yaml:"root"`
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// defaultConfig returns the built-in defaults; the YAML file overrides them
// field by field.
func defaultConfig() *Config {
	return &Config{
		Server: &ServerConfig{
			Port:            8080,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Database: &DatabaseConfig{
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			ConnMaxIdleTime: 5 * time.Minute,
		},
		Bridge: &BridgeConfig{
			Address:     "localhost:50051",
			MaxRetries:  3,
			BaseBackoff: 2 * time.Second,
		},
		Transcription: &TranscriptionConfig{
			ChunkDuration: 3 * time.Second,
			QueueSize:     64,
		},
		Chat: &ChatConfig{
			HistoryLimit: 50,
		},
		Shell: &ShellConfig{},
		Sandbox: &SandboxConfig{
			CompilerCommand: "sandboxc",
			Root:            "/var/lib/warden/sandboxes",
		},
		Retention: &RetentionConfig{
			JobRetention:  30 * 24 * time.Hour,
			ChatRetention: 90 * 24 * time.Hour,
			Interval:      time.Hour,
		},
		LogLevel: "info",
	}
}
