// Package trapjump adapts the trapjump engine to the platform's game loop:
// it maps input frames to engine input, projects the world onto a terminal
// screen and reports run outcomes.
package trapjump

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/trapjump/internal/config"
	"github.com/vovakirdan/trapjump/internal/core"
	"github.com/vovakirdan/trapjump/internal/games/trapjump/engine"
)

// ID is the game identifier used for screenshots and logs.
const ID = "trapjump"

// Options configures a Game.
type Options struct {
	Config     config.TrapJumpConfig
	Levels     []engine.Level // loaded by the caller, checked by New
	Difficulty config.DifficultyPreset
}

// RunSummary describes a session's outcome for run history.
type RunSummary struct {
	LevelsCleared int
	LevelCount    int
	Deaths        int
	Restarts      int
	Ticks         uint64
	DurationMS    int64
	Finished      bool
	GameOver      bool
	Seed          int64
}

// Game implements the trapjump adapter.
type Game struct {
	opts    Options
	rules   engine.Rules
	runtime core.RuntimeConfig

	session *engine.Session
	events  []engine.Event
	seed    int64 // seed of the current session
	runs    int   // sessions started since Reset
}

// RulesFromConfig converts loaded configuration into engine rules.
func RulesFromConfig(cfg config.TrapJumpConfig) engine.Rules {
	return engine.Rules{
		Gravity:     cfg.Physics.Gravity,
		MoveSpeed:   cfg.Physics.MoveSpeed,
		JumpImpulse: cfg.Physics.JumpImpulse,

		PlayerW:   cfg.Sizes.Player.W,
		PlayerH:   cfg.Sizes.Player.H,
		PlatformW: cfg.Sizes.Platform.W,
		PlatformH: cfg.Sizes.Platform.H,
		ExitW:     cfg.Sizes.Exit.W,
		ExitH:     cfg.Sizes.Exit.H,

		MinX:   cfg.Physics.MinX,
		MaxX:   cfg.Physics.MaxX,
		DeathY: cfg.Physics.DeathY,
		WorldW: cfg.Sizes.World.W,
		WorldH: cfg.Sizes.World.H,

		TickMS:            cfg.Timing.TickMS,
		DisappearDelayMS:  cfg.Timing.DisappearDelayMS,
		ReverseDurationMS: cfg.Timing.ReverseDurationMS,
		LevelPauseMS:      cfg.Timing.LevelPauseMS,

		Lives: cfg.Gameplay.Lives,
	}
}

// New creates a game after checking the configuration and levels.
func New(opts Options) (*Game, error) {
	if opts.Difficulty != "" {
		config.ApplyTrapJumpPreset(&opts.Config, opts.Difficulty)
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	rules := RulesFromConfig(opts.Config)
	if err := rules.Check(); err != nil {
		return nil, fmt.Errorf("trapjump: %w", err)
	}
	if err := engine.ValidateLevels(opts.Levels, rules); err != nil {
		return nil, fmt.Errorf("trapjump: %w", err)
	}
	return &Game{opts: opts, rules: rules}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Trap Jump" }

// Rules returns the engine rules in effect.
func (g *Game) Rules() engine.Rules { return g.rules }

// HoldTicks is how long the terminal input layer treats a key press as held.
func (g *Game) HoldTicks() int { return g.opts.Config.Input.HoldTicks }

// Reset starts a brand-new session seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.runs = 0
	g.startSession(runtime.Seed)
}

func (g *Game) startSession(seed int64) {
	rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
	s, err := engine.NewSession(g.opts.Levels, g.rules, rng)
	if err != nil {
		// Levels and rules were checked by New.
		panic(fmt.Sprintf("trapjump: %v", err))
	}
	g.session = s
	g.seed = seed
	g.runs++
	g.events = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// A finished campaign is terminal for the engine; restarting begins a new session.
	if in.Has(core.ActionRestart) && g.session.State() == engine.StateGameFinished {
		g.startSession(g.runtime.Seed + int64(g.runs))
		return core.StepResult{State: g.State()}
	}

	g.events = g.session.Step(InputFromFrame(in))
	return core.StepResult{State: g.State()}
}

// InputFromFrame maps platform actions to engine input.
func InputFromFrame(in core.InputFrame) engine.Input {
	return engine.Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Jump:    in.Has(core.ActionJump),
		Restart: in.Has(core.ActionRestart),
	}
}

// State returns the current game state. Score counts cleared levels.
func (g *Game) State() core.GameState {
	stats := g.session.Stats()
	return core.GameState{
		Score:    stats.LevelsCleared,
		Lives:    g.session.Lives(),
		GameOver: g.session.State() == engine.StateDead && g.session.Lives() == 0,
		Won:      g.session.State() == engine.StateGameFinished,
	}
}

// LastEvents returns the events of the most recent Step.
func (g *Game) LastEvents() []engine.Event { return g.events }

// Snapshot returns the engine snapshot of the current session.
func (g *Game) Snapshot() engine.Snapshot { return g.session.Snapshot() }

// Summary reports the current session's run statistics.
func (g *Game) Summary() RunSummary {
	st := g.State()
	stats := g.session.Stats()
	return RunSummary{
		LevelsCleared: stats.LevelsCleared,
		LevelCount:    g.session.LevelCount(),
		Deaths:        stats.Deaths,
		Restarts:      stats.Restarts,
		Ticks:         stats.Ticks,
		DurationMS:    int64(stats.Ticks) * g.rules.TickMS, //#nosec G115 -- tick counts stay far below MaxInt64
		Finished:      st.Won,
		GameOver:      st.GameOver,
		Seed:          g.seed,
	}
}
