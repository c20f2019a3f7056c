package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the process-level settings resolved from the environment.
// Command-line flags take precedence over these.
type Env struct {
	// DBPath points at the SQLite database file.
	DBPath string `env:"SOROBAN_DB"`
	// ConfigPath points at a JSON tunables file; empty means defaults.
	ConfigPath string `env:"SOROBAN_CONFIG"`
	// Seed fixes the problem-generator RNG; 0 means time-seeded.
	Seed int64 `env:"SOROBAN_SEED"`
}

// FromEnv parses the environment into Env.
func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}
