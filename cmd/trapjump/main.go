// trapjump is a terminal platformer where the platforms lie.
//
// Usage:
//
//	trapjump play              - Play the campaign
//	trapjump levels            - Validate and list levels
//	trapjump sim --script f    - Run a scripted input sequence headless
//	trapjump runs              - Show recorded runs
//
// Global flags (defaults come from TRAPJUMP_* environment variables):
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible death messages
//	--db <path>           - Set database path (default: ~/.trapjump/runs.db)
//	--config <path>       - Custom config YAML
//	--levels <path>       - Level file or directory instead of the built-in campaign
//	--difficulty <name>   - easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trapjump/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string

	// envErr is reported once the command runs, so --help still works.
	envErr error
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trapjump",
	Short: "Trap Jump - a platformer where you can't trust the platforms",
	Long: `Trap Jump is a terminal platformer. Some platforms vanish, some are not
there at all, some are covered in spikes and some turn your controls around.
Reach the exit of every level before you run out of lives.

Available commands:
  play     - Play the campaign
  levels   - Validate and list levels
  sim      - Run a scripted input sequence without a terminal UI
  runs     - Show recorded runs

Examples:
  trapjump play
  trapjump play --difficulty hard
  trapjump levels --levels ./my-levels/
  trapjump sim --script ./speedrun.yaml
  trapjump runs --plain`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envErr != nil {
			return envErr
		}
		_, err := config.ParsePreset(flagDifficulty)
		return err
	},
}

func init() {
	env, err := config.LoadEnv()
	if err != nil {
		envErr = err
		env = config.Env{FPS: 60, DBPath: "~/.trapjump/runs.db", Difficulty: "normal", LogLevel: "info", LogFile: "~/.trapjump/trapjump.log"}
	}

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", env.DBPath, "Path to runs database")
	pf.StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom config YAML")
	pf.StringVar(&flagLevels, "levels", env.LevelsPath, "Level file or directory (default: built-in campaign)")
	pf.StringVar(&flagDifficulty, "difficulty", env.Difficulty, "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", env.LogFile, "Log file used while playing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
}
