package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings read from the environment. The CLI uses
// them as flag defaults, so flags still win.
type Env struct {
	FPS        int    `env:"TRAPJUMP_FPS" envDefault:"60"`
	Seed       int64  `env:"TRAPJUMP_SEED"`
	DBPath     string `env:"TRAPJUMP_DB" envDefault:"~/.trapjump/runs.db"`
	ConfigPath string `env:"TRAPJUMP_CONFIG"`
	LevelsPath string `env:"TRAPJUMP_LEVELS"`
	Difficulty string `env:"TRAPJUMP_DIFFICULTY" envDefault:"normal"`
	LogLevel   string `env:"TRAPJUMP_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"TRAPJUMP_LOG_FILE" envDefault:"~/.trapjump/trapjump.log"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv returns the environment settings with defaults applied.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
