// Package engine is the pure trapjump simulation: fixed-step physics,
// collision against platforms and traps, the trap lifecycle and the
// level/session state machine. It has no I/O and no wall clock; time only
// advances when Step is called.
package engine

import "fmt"

// Rules holds every tunable constant of the simulation.
// Distances are world units, durations are simulated milliseconds.
type Rules struct {
	Gravity     float64 // added to vel.y every tick
	MoveSpeed   float64 // horizontal speed while a direction is held
	JumpImpulse float64 // vel.y after a jump (negative is up)

	PlayerW, PlayerH     float64
	PlatformW, PlatformH float64
	ExitW, ExitH         float64

	MinX, MaxX float64 // horizontal clamp for the player's left edge
	DeathY     float64 // falling below this kills
	WorldW     float64 // bounds used to validate spawn and exit placement
	WorldH     float64

	TickMS            int64
	DisappearDelayMS  int64
	ReverseDurationMS int64
	LevelPauseMS      int64

	Lives int
}

// DefaultRules returns the classic tuning.
func DefaultRules() Rules {
	return Rules{
		Gravity:     0.8,
		MoveSpeed:   5,
		JumpImpulse: -15,

		PlayerW:   20,
		PlayerH:   30,
		PlatformW: 100,
		PlatformH: 20,
		ExitW:     50,
		ExitH:     60,

		MinX:   0,
		MaxX:   850,
		DeathY: 600,
		WorldW: 870,
		WorldH: 600,

		TickMS:            16,
		DisappearDelayMS:  300,
		ReverseDurationMS: 5000,
		LevelPauseMS:      2000,

		Lives: 3,
	}
}

// Check reports the first rule that would make the simulation meaningless.
func (r Rules) Check() error {
	switch {
	case r.TickMS <= 0:
		return fmt.Errorf("engine: tick interval must be positive, got %d", r.TickMS)
	case r.PlayerW <= 0 || r.PlayerH <= 0:
		return fmt.Errorf("engine: player size must be positive, got %gx%g", r.PlayerW, r.PlayerH)
	case r.PlatformW <= 0 || r.PlatformH <= 0:
		return fmt.Errorf("engine: platform size must be positive, got %gx%g", r.PlatformW, r.PlatformH)
	case r.ExitW <= 0 || r.ExitH <= 0:
		return fmt.Errorf("engine: exit size must be positive, got %gx%g", r.ExitW, r.ExitH)
	case r.MaxX < r.MinX:
		return fmt.Errorf("engine: max x %g below min x %g", r.MaxX, r.MinX)
	case r.Lives < 1:
		return fmt.Errorf("engine: lives must be at least 1, got %d", r.Lives)
	}
	return nil
}
