package engine

import (
	"math"

	"github.com/vovakirdan/trapjump/internal/core"
)

// TrapView is a trap as presentation sees it.
type TrapView struct {
	ID     string
	Kind   TrapKind
	Box    core.Box
	Status TrapStatus
}

// Snapshot is the read-only state handed to presentation each tick.
type Snapshot struct {
	Tick       uint64
	ClockMS    int64
	Generation uint64

	LevelIndex int
	LevelCount int
	LevelName  string

	State        State
	Lives        int
	DeathMessage string

	Pos      core.Vec
	Vel      core.Vec
	Facing   int
	Grounded bool

	Reversed            bool
	ReversedRemainingMS int64

	Traps []TrapView
	Stats RunStats
}

// Snapshot captures the session's observable state.
func (s *Session) Snapshot() Snapshot {
	lvl := s.prog.Current()
	traps := make([]TrapView, len(lvl.Traps))
	for i, t := range lvl.Traps {
		traps[i] = TrapView{ID: t.ID, Kind: t.Kind, Box: t.Box(), Status: s.traps.Status(t.ID)}
	}

	return Snapshot{
		Tick:       s.tick,
		ClockMS:    s.clock,
		Generation: s.generation,

		LevelIndex: s.prog.Index(),
		LevelCount: s.prog.Count(),
		LevelName:  lvl.Name,

		State:        s.state,
		Lives:        s.lives,
		DeathMessage: s.deathMessage,

		Pos:      s.body.Pos,
		Vel:      s.body.Vel,
		Facing:   s.body.Facing,
		Grounded: s.body.Grounded,

		Reversed:            s.reversed,
		ReversedRemainingMS: s.ReversedRemainingMS(),

		Traps: traps,
		Stats: s.stats,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.ClockMS) //#nosec G115 -- hash computation
	h = h*31 + snap.Generation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Pos.X)
	h = h*31 + math.Float64bits(snap.Pos.Y)
	h = h*31 + math.Float64bits(snap.Vel.X)
	h = h*31 + math.Float64bits(snap.Vel.Y)
	h = h*31 + uint64(snap.Facing+1) //#nosec G115 -- hash computation
	if snap.Grounded {
		h = h*31 + 1
	}
	if snap.Reversed {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.ReversedRemainingMS) //#nosec G115 -- hash computation

	for _, t := range snap.Traps {
		h = h*31 + uint64(t.Status) //#nosec G115 -- hash computation
	}
	for _, r := range snap.DeathMessage {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.Stats.Deaths)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.LevelsCleared) //#nosec G115 -- hash computation
	return h
}
