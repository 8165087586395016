package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trapjump/internal/core"
	"github.com/vovakirdan/trapjump/internal/games/trapjump"
	"github.com/vovakirdan/trapjump/internal/games/trapjump/engine"
)

var flagScript string

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted input sequence headless",
	Long: `Play an input script without a terminal UI and print the final state.
The same script and seed always produce the same result and hash.

Script format:
  seed: 7
  steps:
    - { hold: [right], ticks: 40 }
    - { hold: [right, space], ticks: 3 }
    - { hold: [r], ticks: 1 }

Examples:
  trapjump sim --script ./speedrun.yaml
  trapjump sim --script ./speedrun.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Path to input script YAML (required)")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagScript == "" {
		return errors.New("--script is required")
	}
	data, err := os.ReadFile(flagScript)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	script, err := trapjump.ParseScript(data)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		script.Seed = flagSeed
	}

	logger, err := newLogger(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}
	game, err := loadGame()
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	res := trapjump.RunScript(game, script, runtime, func(ev engine.Event) {
		logger.Debug(ev.Kind.String(), "level", ev.Level+1, "trap", ev.TrapID, "cause", ev.Cause)
	})
	logger.Info("simulation finished", "ticks", res.Ticks)

	printResult(cmd.OutOrStdout(), res)
	return nil
}

func printResult(w io.Writer, res trapjump.ScriptResult) {
	snap := res.Final
	fmt.Fprintf(w, "ticks:      %d (%d ms simulated)\n", res.Ticks, snap.ClockMS)
	fmt.Fprintf(w, "state:      %s\n", snap.State)
	fmt.Fprintf(w, "level:      %d/%d %s\n", snap.LevelIndex+1, snap.LevelCount, snap.LevelName)
	fmt.Fprintf(w, "lives:      %d\n", snap.Lives)
	fmt.Fprintf(w, "position:   (%.2f, %.2f) grounded=%v\n", snap.Pos.X, snap.Pos.Y, snap.Grounded)
	fmt.Fprintf(w, "reversed:   %v (%d ms left)\n", snap.Reversed, snap.ReversedRemainingMS)
	if snap.DeathMessage != "" {
		fmt.Fprintf(w, "last death: %s\n", snap.DeathMessage)
	}
	fmt.Fprintf(w, "deaths:     %d  restarts: %d  cleared: %d\n",
		res.Summary.Deaths, res.Summary.Restarts, res.Summary.LevelsCleared)

	kinds := make([]engine.EventKind, 0, len(res.Events))
	for k := range res.Events {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(w, "event:      %-18s %d\n", k, res.Events[k])
	}
	fmt.Fprintf(w, "hash:       %d\n", snap.Hash())
}
