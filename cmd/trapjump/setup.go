package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trapjump/internal/config"
	"github.com/vovakirdan/trapjump/internal/games/trapjump"
	"github.com/vovakirdan/trapjump/internal/games/trapjump/levels"
)

// newLogger builds the command logger at the requested level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "trapjump",
		Level:           lvl,
	}), nil
}

// openLogFile opens the play log for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //#nosec G304 -- user-chosen log path
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// loadGame builds a game from the global config, difficulty and level flags.
func loadGame() (*trapjump.Game, error) {
	cfg, err := config.LoadTrapJump(flagConfig)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	rules := trapjump.RulesFromConfig(cfg)
	lvls, err := levels.Load(flagLevels, rules)
	if err != nil {
		return nil, err
	}
	return trapjump.New(trapjump.Options{Config: cfg, Levels: lvls, Difficulty: preset})
}
