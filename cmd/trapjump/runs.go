package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trapjump/internal/platform/tui"
	"github.com/vovakirdan/trapjump/internal/storage"
)

var (
	flagRunsPlain bool
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display finished runs: how far each got, how often you died and how long
it took. Only outcomes are stored; every game starts from the first level.

Examples:
  trapjump runs
  trapjump runs --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a plain text table instead of the interactive view")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs for --plain")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRunsPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		runs, err := store.RecentRuns(flagRunsLimit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded yet.")
			fmt.Fprintln(out, "Play 'trapjump play' to record the first one!")
			return nil
		}
		return tui.WriteRunsPlain(out, runs)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.RunRuns(store, width, height)
}
