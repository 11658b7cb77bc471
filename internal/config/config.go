// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load() layers an optional YAML file and ARENA_-prefixed env vars on top.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxUploadBytes caps the size of an uploaded schedule document.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// ReadTimeoutSec / WriteTimeoutSec / IdleTimeoutSec configure the
	// HTTP server, in seconds.
	ReadTimeoutSec  int `koanf:"read_timeout_sec"`
	WriteTimeoutSec int `koanf:"write_timeout_sec"`
	IdleTimeoutSec  int `koanf:"idle_timeout_sec"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		MaxUploadBytes:  10 << 20,
		ReadTimeoutSec:  10,
		WriteTimeoutSec: 30,
		IdleTimeoutSec:  60,
	}
}
