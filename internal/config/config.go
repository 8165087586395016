// Package config provides YAML-based game configuration loading and
// difficulty presets for trapjump.
package config

import (
	"errors"
	"fmt"
)

// TrapJumpConfig contains all tunables of the simulation and its input layer.
type TrapJumpConfig struct {
	Physics  TrapJumpPhysics  `yaml:"physics"`
	Sizes    TrapJumpSizes    `yaml:"sizes"`
	Timing   TrapJumpTiming   `yaml:"timing"`
	Gameplay TrapJumpGameplay `yaml:"gameplay"`
	Input    TrapJumpInput    `yaml:"input"`
}

// TrapJumpPhysics defines per-tick motion parameters.
type TrapJumpPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	MoveSpeed   float64 `yaml:"move_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative is up
	MinX        float64 `yaml:"min_x"`
	MaxX        float64 `yaml:"max_x"`
	DeathY      float64 `yaml:"death_y"`
}

// Size is a width/height pair in world units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// TrapJumpSizes defines the bounding boxes of game objects.
type TrapJumpSizes struct {
	Player   Size `yaml:"player"`
	Platform Size `yaml:"platform"`
	Exit     Size `yaml:"exit"`
	World    Size `yaml:"world"`
}

// TrapJumpTiming defines the tick interval and timed trap effects.
type TrapJumpTiming struct {
	TickMS            int64 `yaml:"tick_ms"`
	DisappearDelayMS  int64 `yaml:"disappear_delay_ms"`
	ReverseDurationMS int64 `yaml:"reverse_duration_ms"`
	LevelPauseMS      int64 `yaml:"level_pause_ms"`
}

// TrapJumpGameplay defines session rules.
type TrapJumpGameplay struct {
	Lives int `yaml:"lives"`
}

// TrapJumpInput tunes the terminal input collector.
type TrapJumpInput struct {
	// HoldTicks is how many ticks a key press counts as held. Terminals
	// report presses and repeats but never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// MaxLives is the upper bound for lives.
const MaxLives = 3

// Validate reports every setting that would break the simulation.
func (c TrapJumpConfig) Validate() error {
	var errs []error

	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Timing.DisappearDelayMS < 0 || c.Timing.ReverseDurationMS < 0 || c.Timing.LevelPauseMS < 0 {
		errs = append(errs, errors.New("timing durations must not be negative"))
	}
	sizes := []struct {
		name string
		Size
	}{
		{"player", c.Sizes.Player},
		{"platform", c.Sizes.Platform},
		{"exit", c.Sizes.Exit},
		{"world", c.Sizes.World},
	}
	for _, s := range sizes {
		if s.W <= 0 || s.H <= 0 {
			errs = append(errs, fmt.Errorf("sizes.%s must be positive, got %gx%g", s.name, s.W, s.H))
		}
	}
	if c.Physics.MaxX < c.Physics.MinX {
		errs = append(errs, fmt.Errorf("physics.max_x %g below min_x %g", c.Physics.MaxX, c.Physics.MinX))
	}
	if c.Gameplay.Lives < 1 || c.Gameplay.Lives > MaxLives {
		errs = append(errs, fmt.Errorf("gameplay.lives must be within 1..%d, got %d", MaxLives, c.Gameplay.Lives))
	}
	if c.Input.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("input.hold_ticks must be at least 1, got %d", c.Input.HoldTicks))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
