package core

import "time"

// RuntimeConfig is what the platform hands a game when it starts a run.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Wall-clock steps per second
	Seed     int64 // Zero asks the platform to pick one
}

// DefaultConfig is an 80x24 terminal stepping 60 times per second, unseeded.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// WithSeed returns c with a seed derived from now if none was set.
func (c RuntimeConfig) WithSeed(now time.Time) RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}

// GameState is the run status the platform polls after each step.
type GameState struct {
	Score    int  // Levels cleared in the current run
	Lives    int  // Lives left
	GameOver bool // Out of lives
	Won      bool // Campaign finished
}

// Ended reports whether the run has an outcome.
func (s GameState) Ended() bool { return s.GameOver || s.Won }

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
