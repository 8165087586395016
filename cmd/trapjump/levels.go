package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trapjump/internal/config"
	"github.com/vovakirdan/trapjump/internal/games/trapjump"
	"github.com/vovakirdan/trapjump/internal/games/trapjump/engine"
	"github.com/vovakirdan/trapjump/internal/games/trapjump/levels"
	"github.com/vovakirdan/trapjump/internal/games/trapjump/levels/formats"
)

var flagLevelsYAML bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Validate and list levels",
	Long: `Load the built-in campaign, or the file or directory given by --levels,
check it and print a summary of every level.

Examples:
  trapjump levels
  trapjump levels --levels ./my-levels/
  trapjump levels --yaml > campaign.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagLevelsYAML, "yaml", false, "Print the levels as normalized YAML")
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadTrapJump(flagConfig)
	if err != nil {
		return err
	}
	lvls, err := levels.Load(flagLevels, trapjump.RulesFromConfig(cfg))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagLevelsYAML {
		data, err := formats.MarshalYAML(lvls)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	printLevels(out, lvls)
	return nil
}

// printLevels writes one line per level with its trap mix.
func printLevels(w io.Writer, lvls []engine.Level) {
	fmt.Fprintf(w, "%d levels\n\n", len(lvls))
	fmt.Fprintf(w, "  %-3s  %-32s  %-9s  %s\n", "#", "Name", "Platforms", "Traps")
	fmt.Fprintf(w, "  %-3s  %-32s  %-9s  %s\n", "-", "----", "---------", "-----")
	for i, l := range lvls {
		fmt.Fprintf(w, "  %-3d  %-32s  %-9d  %s\n", i+1, l.Name, len(l.Platforms), trapMix(l.Traps))
	}
}

func trapMix(traps []engine.Trap) string {
	if len(traps) == 0 {
		return "none"
	}
	counts := make(map[engine.TrapKind]int)
	for _, t := range traps {
		counts[t.Kind]++
	}
	kinds := make([]string, 0, len(counts))
	for k, n := range counts {
		kinds = append(kinds, fmt.Sprintf("%s x%d", k, n))
	}
	sort.Strings(kinds)
	return strings.Join(kinds, ", ")
}
