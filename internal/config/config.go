// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's sentinel kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Welcome is the text view shown before the first round starts.
	Welcome string `koanf:"welcome"`

	// AllowedPlayers pre-seeds the submission allow-list with player ids.
	// Empty accepts every submission.
	AllowedPlayers []string `koanf:"allowed_players"`

	// MaxResultsBatch caps how many rows one POST /results may carry.
	MaxResultsBatch int `koanf:"max_results_batch"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		Welcome:         "Welcome to Code Golf Party #1!",
		MaxResultsBatch: 500,
	}
}
