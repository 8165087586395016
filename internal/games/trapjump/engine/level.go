package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/trapjump/internal/core"
)

// TrapKind selects how a trap platform betrays the player.
type TrapKind string

const (
	TrapDisappearing TrapKind = "disappearing" // solid until it vanishes after being stood on
	TrapFake         TrapKind = "fake"         // looks solid, kills on contact
	TrapSpike        TrapKind = "spike"        // kills on contact
	TrapReverse      TrapKind = "reverse"      // swaps left and right for a while
)

// Valid reports whether k is one of the known kinds.
func (k TrapKind) Valid() bool {
	switch k {
	case TrapDisappearing, TrapFake, TrapSpike, TrapReverse:
		return true
	}
	return false
}

// Platform is a static ledge. Its size comes from Rules.
type Platform struct {
	X, Y float64
}

// Box returns the platform's bounds.
func (p Platform) Box(r Rules) core.Box {
	return core.Box{X: p.X, Y: p.Y, W: r.PlatformW, H: r.PlatformH}
}

// Trap is a deceptive platform with its own size.
type Trap struct {
	ID   string
	Kind TrapKind
	X, Y float64
	W, H float64
}

// Box returns the trap's bounds.
func (t Trap) Box() core.Box {
	return core.Box{X: t.X, Y: t.Y, W: t.W, H: t.H}
}

// Level is immutable during play.
type Level struct {
	ID        int
	Name      string
	Platforms []Platform
	Traps     []Trap
	Exit      core.Vec
	Spawn     core.Vec
}

// Trap looks up a trap by id.
func (l *Level) Trap(id string) (Trap, bool) {
	for _, t := range l.Traps {
		if t.ID == id {
			return t, true
		}
	}
	return Trap{}, false
}

// ExitBox returns the exit region.
func (l *Level) ExitBox(r Rules) core.Box {
	return core.BoxAt(l.Exit, r.ExitW, r.ExitH)
}

// ErrInvalidLevelData is wrapped by every level validation failure.
var ErrInvalidLevelData = errors.New("invalid level data")

// Validation codes.
const (
	CodeNoLevels        = "NO_LEVELS"
	CodeNoPlatforms     = "NO_PLATFORMS"
	CodeEmptyTrapID     = "EMPTY_TRAP_ID"
	CodeDuplicateTrapID = "DUPLICATE_TRAP_ID"
	CodeUnknownTrapKind = "UNKNOWN_TRAP_KIND"
	CodeBadTrapSize     = "BAD_TRAP_SIZE"
	CodeSpawnOutOfWorld = "SPAWN_OUT_OF_WORLD"
	CodeExitOutOfWorld  = "EXIT_OUT_OF_WORLD"
)

// ValidationError describes why a level list was rejected.
// Level is the zero-based position in the list, or -1 for list-wide problems.
type ValidationError struct {
	Code    string
	Level   int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Level < 0 {
		return fmt.Sprintf("%s: [%s] %s", ErrInvalidLevelData, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: level %d: [%s] %s", ErrInvalidLevelData, e.Level+1, e.Code, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidLevelData
}

// ValidateLevels checks level data once at load time so nothing has to be
// checked during play.
func ValidateLevels(levels []Level, r Rules) error {
	if len(levels) == 0 {
		return &ValidationError{Code: CodeNoLevels, Level: -1, Message: "campaign has no levels"}
	}
	world := core.Box{W: r.WorldW, H: r.WorldH}

	for i := range levels {
		lvl := &levels[i]
		if len(lvl.Platforms) == 0 {
			return &ValidationError{Code: CodeNoPlatforms, Level: i,
				Message: fmt.Sprintf("%q has no platforms", lvl.Name)}
		}

		seen := make(map[string]bool, len(lvl.Traps))
		for _, t := range lvl.Traps {
			if t.ID == "" {
				return &ValidationError{Code: CodeEmptyTrapID, Level: i,
					Message: fmt.Sprintf("%s trap at (%g,%g) has no id", t.Kind, t.X, t.Y)}
			}
			if seen[t.ID] {
				return &ValidationError{Code: CodeDuplicateTrapID, Level: i,
					Message: fmt.Sprintf("trap id %q used more than once", t.ID)}
			}
			seen[t.ID] = true
			if !t.Kind.Valid() {
				return &ValidationError{Code: CodeUnknownTrapKind, Level: i,
					Message: fmt.Sprintf("trap %q has unknown kind %q", t.ID, t.Kind)}
			}
			if t.W <= 0 || t.H <= 0 {
				return &ValidationError{Code: CodeBadTrapSize, Level: i,
					Message: fmt.Sprintf("trap %q has size %gx%g", t.ID, t.W, t.H)}
			}
		}

		if !core.BoxAt(lvl.Spawn, r.PlayerW, r.PlayerH).Within(world) {
			return &ValidationError{Code: CodeSpawnOutOfWorld, Level: i,
				Message: fmt.Sprintf("spawn (%g,%g) outside %gx%g world", lvl.Spawn.X, lvl.Spawn.Y, r.WorldW, r.WorldH)}
		}
		if !lvl.ExitBox(r).Within(world) {
			return &ValidationError{Code: CodeExitOutOfWorld, Level: i,
				Message: fmt.Sprintf("exit (%g,%g) outside %gx%g world", lvl.Exit.X, lvl.Exit.Y, r.WorldW, r.WorldH)}
		}
	}
	return nil
}
