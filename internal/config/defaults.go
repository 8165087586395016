package config

import (
	_ "embed"
)

//go:embed defaults/trapjump.yaml
var defaultTrapJumpYAML []byte

// DefaultTrapJumpConfig returns the default trapjump configuration.
func DefaultTrapJumpConfig() TrapJumpConfig {
	return TrapJumpConfig{
		Physics: TrapJumpPhysics{
			Gravity:     0.8,
			MoveSpeed:   5,
			JumpImpulse: -15,
			MinX:        0,
			MaxX:        850,
			DeathY:      600,
		},
		Sizes: TrapJumpSizes{
			Player:   Size{W: 20, H: 30},
			Platform: Size{W: 100, H: 20},
			Exit:     Size{W: 50, H: 60},
			World:    Size{W: 870, H: 600},
		},
		Timing: TrapJumpTiming{
			TickMS:            16,
			DisappearDelayMS:  300,
			ReverseDurationMS: 5000,
			LevelPauseMS:      2000,
		},
		Gameplay: TrapJumpGameplay{
			Lives: 3,
		},
		Input: TrapJumpInput{
			HoldTicks: 8, // Covers the usual terminal key-repeat gap at 60fps
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTrapJumpYAML
}
