package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/trapjump/internal/core"
)

func classicLevels() []Level {
	return []Level{
		{
			ID:   1,
			Name: "LEVEL 1: Baby Steps",
			Platforms: []Platform{
				{X: 0, Y: 500}, {X: 100, Y: 500}, {X: 200, Y: 500}, {X: 300, Y: 500},
				{X: 500, Y: 400}, {X: 700, Y: 300},
			},
			Traps: []Trap{
				{ID: "t1", Kind: TrapDisappearing, X: 400, Y: 500, W: 100, H: 20},
			},
			Exit:  core.Vec{X: 750, Y: 280},
			Spawn: core.Vec{X: 50, Y: 450},
		},
		{
			ID:   2,
			Name: "LEVEL 2: Trust Issues Begin",
			Platforms: []Platform{
				{X: 0, Y: 500}, {X: 150, Y: 450}, {X: 350, Y: 400},
				{X: 550, Y: 350}, {X: 750, Y: 300},
			},
			Traps: []Trap{
				{ID: "t1", Kind: TrapFake, X: 250, Y: 425, W: 100, H: 20},
				{ID: "t2", Kind: TrapSpike, X: 600, Y: 330, W: 50, H: 20},
			},
			Exit:  core.Vec{X: 800, Y: 280},
			Spawn: core.Vec{X: 50, Y: 450},
		},
		{
			ID:   3,
			Name: "LEVEL 3: Deception Mastery",
			Platforms: []Platform{
				{X: 0, Y: 500}, {X: 200, Y: 450}, {X: 450, Y: 400},
				{X: 650, Y: 350}, {X: 300, Y: 300},
			},
			Traps: []Trap{
				{ID: "t1", Kind: TrapDisappearing, X: 100, Y: 500, W: 100, H: 20},
				{ID: "t2", Kind: TrapFake, X: 350, Y: 425, W: 100, H: 20},
				{ID: "t3", Kind: TrapReverse, X: 500, Y: 380, W: 100, H: 20},
			},
			Exit:  core.Vec{X: 350, Y: 280},
			Spawn: core.Vec{X: 50, Y: 450},
		},
	}
}

// dropLevel has a single disappearing trap directly under the spawn point.
func dropLevel() Level {
	return Level{
		ID:        1,
		Name:      "drop",
		Platforms: []Platform{{X: 0, Y: 500}},
		Traps:     []Trap{{ID: "d", Kind: TrapDisappearing, X: 200, Y: 500, W: 100, H: 20}},
		Exit:      core.Vec{X: 800, Y: 100},
		Spawn:     core.Vec{X: 240, Y: 450},
	}
}

// pitLevel has nothing under the spawn point.
func pitLevel() Level {
	return Level{
		ID:        1,
		Name:      "pit",
		Platforms: []Platform{{X: 700, Y: 100}},
		Exit:      core.Vec{X: 800, Y: 20},
		Spawn:     core.Vec{X: 50, Y: 450},
	}
}

func newTestSession(t *testing.T, levels []Level) *Session {
	t.Helper()
	s, err := NewSession(levels, DefaultRules(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// placeOn moves the session to a level with the player at pos.
func placeOn(s *Session, level int, pos core.Vec) {
	s.prog.index = level
	s.traps = NewTrapBook(s.prog.Current())
	s.body = SpawnBody(pos)
	s.state = StatePlaying
}

func stepN(s *Session, n int, in Input) {
	for i := 0; i < n; i++ {
		s.Step(in)
	}
}

// stepUntil steps until cond holds, failing after limit steps.
func stepUntil(t *testing.T, s *Session, in Input, limit int, cond func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if cond() {
			return
		}
		s.Step(in)
	}
	if !cond() {
		t.Fatalf("condition not reached within %d steps (tick %d, state %s, pos %+v)",
			limit, s.Tick(), s.State(), s.Position())
	}
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
