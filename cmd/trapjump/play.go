package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trapjump/internal/core"
	"github.com/vovakirdan/trapjump/internal/platform/tui"
	"github.com/vovakirdan/trapjump/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start playing from the first level.

Controls:
  Left/A, Right/D   - Move
  Up/W/Space        - Jump
  R                 - Restart (after dying, or a new game at the end)
  Ctrl+S            - Save a screenshot
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow-vanishing platforms, short control reversal
  normal - The classic tuning
  hard   - Two lives, fast-vanishing platforms, long control reversal

Examples:
  trapjump play
  trapjump play --difficulty easy
  trapjump play --levels ./my-levels.yaml
  trapjump play --config ./my-trapjump.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal, so logs go to a file.
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, flagLogLevel)
	if err != nil {
		return err
	}

	game, err := loadGame()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger:     logger,
		Difficulty: flagDifficulty,
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		opts.Runs = store
	}

	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
