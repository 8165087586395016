package engine

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/trapjump/internal/core"
)

func TestSessionStartsAtFirstSpawn(t *testing.T) {
	s := newTestSession(t, classicLevels())

	if s.State() != StatePlaying {
		t.Errorf("initial state = %s, expected playing", s.State())
	}
	if s.Lives() != 3 {
		t.Errorf("initial lives = %d, expected 3", s.Lives())
	}
	if s.LevelIndex() != 0 || s.LevelCount() != 3 {
		t.Errorf("level = %d/%d, expected 0/3", s.LevelIndex(), s.LevelCount())
	}
	if s.Position() != (core.Vec{X: 50, Y: 450}) {
		t.Errorf("initial position = %+v, expected spawn (50,450)", s.Position())
	}
}

func TestNewSessionRejectsInvalidLevels(t *testing.T) {
	if _, err := NewSession(nil, DefaultRules(), nil); err == nil {
		t.Error("NewSession with no levels should fail")
	}

	rules := DefaultRules()
	rules.TickMS = 0
	if _, err := NewSession(classicLevels(), rules, nil); err == nil {
		t.Error("NewSession with zero tick interval should fail")
	}
}

func TestSessionLandsFromSpawn(t *testing.T) {
	s := newTestSession(t, classicLevels())

	stepN(s, 6, Input{})
	if s.Grounded() {
		t.Fatalf("player should still be falling after 6 ticks, y=%g", s.Position().Y)
	}

	s.Step(Input{})
	b := s.Body()
	if !b.Grounded {
		t.Fatalf("player should land on tick 7, y=%g", b.Pos.Y)
	}
	if b.Pos.Y != 470 {
		t.Errorf("landed y = %g, expected 470 (platform top 500 - height 30)", b.Pos.Y)
	}
	if b.Vel.Y != 0 {
		t.Errorf("landed vel.y = %g, expected 0", b.Vel.Y)
	}

	// Standing still keeps the player on the platform.
	stepN(s, 100, Input{})
	if !s.Grounded() || s.Position().Y != 470 {
		t.Errorf("player should stay grounded at 470, got grounded=%v y=%g", s.Grounded(), s.Position().Y)
	}
}

func TestSessionJumpOncePerPress(t *testing.T) {
	s := newTestSession(t, classicLevels())
	stepUntil(t, s, Input{}, 20, s.Grounded)

	jump := Input{Jump: true}
	s.Step(jump)
	b := s.Body()
	if b.Grounded || b.Vel.Y != -15 {
		t.Fatalf("jump should set vel.y=-15 and clear grounded, got %+v", b)
	}

	// Holding jump through the whole arc must not re-jump on landing.
	stepN(s, 80, jump)
	if !s.Grounded() || s.Position().Y != 470 {
		t.Fatalf("player should be back on the ground, got grounded=%v y=%g", s.Grounded(), s.Position().Y)
	}
	s.Step(jump)
	if !s.Grounded() {
		t.Error("held jump should not fire again after landing")
	}

	// Release then press again.
	s.Step(Input{})
	s.Step(jump)
	if s.Body().Vel.Y != -15 {
		t.Errorf("a new press should jump, vel.y=%g", s.Body().Vel.Y)
	}
}

func TestSessionHorizontalMovement(t *testing.T) {
	s := newTestSession(t, classicLevels())
	stepUntil(t, s, Input{}, 20, s.Grounded)

	s.Step(Input{Right: true})
	if got := s.Position().X; got != 55 {
		t.Errorf("right: x = %g, expected 55", got)
	}
	s.Step(Input{Left: true})
	if got := s.Position().X; got != 50 {
		t.Errorf("left: x = %g, expected 50", got)
	}
	s.Step(Input{Left: true, Right: true})
	if got := s.Position().X; got != 50 {
		t.Errorf("both held: x = %g, expected 50", got)
	}

	// The left wall clamps.
	stepN(s, 30, Input{Left: true})
	if got := s.Position().X; got != 0 {
		t.Errorf("x should clamp at 0, got %g", got)
	}
}

func TestSessionFakeTrapKillsOnContact(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec
		velY float64
	}{
		{"falling onto it", core.Vec{X: 290, Y: 380}, 0},
		{"rising into it", core.Vec{X: 290, Y: 440}, -10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, classicLevels())
			placeOn(s, 1, tc.pos)
			s.body.Vel.Y = tc.velY

			stepUntil(t, s, Input{}, 20, func() bool { return s.State() == StateDead })
			if s.DeathCause() != CauseFake {
				t.Errorf("death cause = %s, expected fake", s.DeathCause())
			}
			if s.TrapStatus("t1") != TrapTriggered {
				t.Errorf("fake trap status = %s, expected triggered", s.TrapStatus("t1"))
			}
			if s.Lives() != 2 {
				t.Errorf("lives = %d, expected 2", s.Lives())
			}
		})
	}
}

func TestSessionSpikeOnlyKills(t *testing.T) {
	s := newTestSession(t, classicLevels())
	placeOn(s, 1, core.Vec{X: 610, Y: 300})

	events := s.Step(Input{})
	if s.State() != StateDead {
		t.Fatalf("state = %s, expected dead", s.State())
	}
	if s.DeathCause() != CauseSpike {
		t.Errorf("death cause = %s, expected spike", s.DeathCause())
	}
	if s.Reversed() {
		t.Error("spike must not reverse controls")
	}
	if s.LevelIndex() != 1 {
		t.Errorf("spike must not change level, got %d", s.LevelIndex())
	}
	if !hasEvent(events, EventDeath) || hasEvent(events, EventControlsReversed) || hasEvent(events, EventLevelComplete) {
		t.Errorf("unexpected events for spike: %+v", events)
	}
}

func TestSessionDisappearingTrap(t *testing.T) {
	s := newTestSession(t, []Level{dropLevel()})
	stepUntil(t, s, Input{}, 20, s.Grounded)

	if s.Position().Y != 470 {
		t.Fatalf("should land on the trap at y=470, got %g", s.Position().Y)
	}
	if s.TrapStatus("d") != TrapTriggered {
		t.Fatalf("landing should trigger the trap, status %s", s.TrapStatus("d"))
	}
	due := s.ClockMS() + s.Rules().DisappearDelayMS

	// Still solid until the delay has elapsed.
	for s.ClockMS()+s.Rules().TickMS < due {
		s.Step(Input{})
		if !s.Grounded() || s.TrapStatus("d") != TrapTriggered {
			t.Fatalf("trap should hold until %dms, at %dms grounded=%v status=%s",
				due, s.ClockMS(), s.Grounded(), s.TrapStatus("d"))
		}
	}

	events := s.Step(Input{})
	if s.TrapStatus("d") != TrapDisappeared {
		t.Fatalf("trap should be gone at %dms, status %s", s.ClockMS(), s.TrapStatus("d"))
	}
	if !hasEvent(events, EventTrapDisappeared) {
		t.Error("expected a trap_disappeared event")
	}
	if s.Grounded() {
		t.Error("player should no longer be supported")
	}

	stepUntil(t, s, Input{}, 60, func() bool { return s.State() == StateDead })
	if s.DeathCause() != CauseFall {
		t.Errorf("death cause = %s, expected fall", s.DeathCause())
	}
}

func TestSessionStaleTimerIgnoredAfterRestart(t *testing.T) {
	s := newTestSession(t, []Level{dropLevel()})
	stepUntil(t, s, Input{}, 20, s.Grounded)
	oldDue := s.ClockMS() + s.Rules().DisappearDelayMS

	stepN(s, 3, Input{})
	s.Step(Input{Restart: true})
	if s.TrapStatus("d") != TrapArmed {
		t.Fatalf("restart should re-arm the trap, status %s", s.TrapStatus("d"))
	}

	// The old timer comes due while the new attempt's trap is triggered but fresh.
	stepUntil(t, s, Input{}, 100, func() bool { return s.ClockMS() >= oldDue+16 })
	if s.TrapStatus("d") == TrapDisappeared {
		t.Error("a timer from the previous attempt removed the trap")
	}
	if !s.Grounded() {
		t.Error("player should still stand on the trap")
	}
}

func TestSessionReverseTrap(t *testing.T) {
	s := newTestSession(t, classicLevels())
	placeOn(s, 2, core.Vec{X: 520, Y: 370})

	events := s.Step(Input{})
	if !s.Reversed() {
		t.Fatal("standing on the reverse trap should reverse controls")
	}
	if !hasEvent(events, EventControlsReversed) {
		t.Error("expected a controls_reversed event")
	}
	if got := s.ReversedRemainingMS(); got != 5000 {
		t.Errorf("remaining = %dms, expected 5000", got)
	}
	until := s.ClockMS() + 5000

	s.Step(Input{Right: true})
	if got := s.Position().X; got != 515 {
		t.Errorf("reversed right should move left: x = %g, expected 515", got)
	}

	// Keep touching the trap; the duration must not extend.
	for s.ClockMS()+s.Rules().TickMS < until {
		s.Step(Input{})
		if !s.Reversed() {
			t.Fatalf("controls restored early at %dms (until %dms)", s.ClockMS(), until)
		}
	}
	events = s.Step(Input{})
	if s.Reversed() {
		t.Fatalf("controls should be restored at %dms", s.ClockMS())
	}
	if !hasEvent(events, EventControlsRestored) {
		t.Error("expected a controls_restored event")
	}
	if s.TrapStatus("t3") != TrapTriggered {
		t.Errorf("reverse trap stays in the trigger set, status %s", s.TrapStatus("t3"))
	}

	s.Step(Input{Right: true})
	if got := s.Position().X; got != 520 {
		t.Errorf("right should move right again: x = %g, expected 520", got)
	}
}

func TestSessionReverseExactDuration(t *testing.T) {
	rules := DefaultRules()
	rules.TickMS = 20
	s, err := NewSession(classicLevels(), rules, nil)
	if err != nil {
		t.Fatal(err)
	}
	placeOn(s, 2, core.Vec{X: 520, Y: 370})

	s.Step(Input{})
	start := s.ClockMS()
	for s.Reversed() {
		s.Step(Input{})
	}
	if got := s.ClockMS() - start; got != 5000 {
		t.Errorf("reversal lasted %dms, expected 5000", got)
	}
}

func TestSessionDeathAndRestartKeepsLevel(t *testing.T) {
	s := newTestSession(t, classicLevels())
	placeOn(s, 1, core.Vec{X: 610, Y: 300})
	s.Step(Input{})

	if s.State() != StateDead || s.Lives() != 2 {
		t.Fatalf("expected dead with 2 lives, got %s with %d", s.State(), s.Lives())
	}
	if !slices.Contains(DeathMessages, s.DeathMessage()) {
		t.Errorf("death message %q not from the pool", s.DeathMessage())
	}

	// Dead sessions do not simulate.
	pos := s.Position()
	stepN(s, 10, Input{Right: true})
	if s.Position() != pos {
		t.Error("player moved while dead")
	}

	s.Step(Input{Restart: true})
	if s.State() != StatePlaying {
		t.Errorf("state after restart = %s, expected playing", s.State())
	}
	if s.Lives() != 2 || s.LevelIndex() != 1 {
		t.Errorf("restart with lives left should keep lives and level, got lives=%d level=%d", s.Lives(), s.LevelIndex())
	}
	if s.Position() != (core.Vec{X: 50, Y: 450}) {
		t.Errorf("restart should move to spawn, got %+v", s.Position())
	}
	if len(s.TriggeredTrapIDs()) != 0 {
		t.Errorf("restart should clear the trigger set, got %v", s.TriggeredTrapIDs())
	}
}

func TestSessionLastLifeFullRestart(t *testing.T) {
	s := newTestSession(t, []Level{pitLevel()})
	dead := func() bool { return s.State() == StateDead }

	for want := 2; want >= 1; want-- {
		stepUntil(t, s, Input{}, 100, dead)
		if s.Lives() != want {
			t.Fatalf("lives = %d, expected %d", s.Lives(), want)
		}
		s.Restart()
	}

	var events []Event
	for i := 0; i < 100; i++ {
		events = s.Step(Input{})
		if dead() {
			break
		}
	}
	if s.Lives() != 0 {
		t.Fatalf("lives = %d, expected 0", s.Lives())
	}
	if s.DeathMessage() != GameOverMessage {
		t.Errorf("death message = %q, expected game over message", s.DeathMessage())
	}
	if !hasEvent(events, EventGameOver) {
		t.Error("expected a game_over event")
	}
	if s.Stats().Deaths != 3 {
		t.Errorf("deaths = %d, expected 3", s.Stats().Deaths)
	}

	s.Step(Input{Restart: true})
	if s.Lives() != 3 || s.LevelIndex() != 0 || s.State() != StatePlaying {
		t.Errorf("full restart: lives=%d level=%d state=%s, expected 3/0/playing", s.Lives(), s.LevelIndex(), s.State())
	}
	if s.Stats().Deaths != 0 {
		t.Errorf("full restart should clear run stats, deaths=%d", s.Stats().Deaths)
	}
}

func TestSessionFullRestartReturnsToFirstLevel(t *testing.T) {
	s := newTestSession(t, classicLevels())
	placeOn(s, 1, core.Vec{X: 610, Y: 300})
	s.lives = 1

	s.Step(Input{})
	if s.Lives() != 0 || s.State() != StateDead {
		t.Fatalf("expected dead with 0 lives, got %s with %d", s.State(), s.Lives())
	}

	s.Restart()
	if s.LevelIndex() != 0 || s.Lives() != 3 {
		t.Errorf("full restart should reset to level 0 with 3 lives, got level=%d lives=%d", s.LevelIndex(), s.Lives())
	}
	if s.Position() != (core.Vec{X: 50, Y: 450}) {
		t.Errorf("full restart should spawn on level 1, got %+v", s.Position())
	}
}

func TestSessionLevelCompleteAndPause(t *testing.T) {
	s := newTestSession(t, classicLevels())
	placeOn(s, 0, core.Vec{X: 760, Y: 290})

	events := s.Step(Input{})
	if s.State() != StateLevelComplete {
		t.Fatalf("state = %s, expected level_complete", s.State())
	}
	if !hasEvent(events, EventLevelComplete) {
		t.Error("expected a level_complete event")
	}
	if s.LevelIndex() != 1 {
		t.Errorf("level index = %d, expected 1", s.LevelIndex())
	}
	due := s.ClockMS() + 2000

	for s.ClockMS()+s.Rules().TickMS < due {
		s.Step(Input{Right: true})
		if s.State() != StateLevelComplete {
			t.Fatalf("pause ended early at %dms", s.ClockMS())
		}
	}

	events = s.Step(Input{})
	if s.State() != StatePlaying {
		t.Fatalf("state after pause = %s, expected playing", s.State())
	}
	if !hasEvent(events, EventAttemptStarted) {
		t.Error("expected an attempt_started event")
	}
	if s.Position() != (core.Vec{X: 50, Y: 450}) {
		t.Errorf("position = %+v, expected level 2 spawn (50,450)", s.Position())
	}
	if s.Lives() != 3 {
		t.Errorf("lives = %d, expected 3", s.Lives())
	}
}

func TestSessionRestartDuringPauseDropsPauseTimer(t *testing.T) {
	s := newTestSession(t, classicLevels())
	placeOn(s, 0, core.Vec{X: 760, Y: 290})
	s.Step(Input{})

	s.Step(Input{Restart: true})
	if s.State() != StatePlaying || s.LevelIndex() != 1 {
		t.Fatalf("restart during pause: state=%s level=%d", s.State(), s.LevelIndex())
	}
	gen := s.Generation()

	stepN(s, 200, Input{})
	if s.Generation() != gen {
		t.Errorf("stale pause timer reset the attempt: generation %d -> %d", gen, s.Generation())
	}
}

func TestSessionGameFinishedIsTerminal(t *testing.T) {
	s := newTestSession(t, classicLevels())
	placeOn(s, 2, core.Vec{X: 360, Y: 250})

	events := s.Step(Input{})
	if s.State() != StateGameFinished {
		t.Fatalf("state = %s, expected game_finished", s.State())
	}
	if !hasEvent(events, EventGameFinished) {
		t.Error("expected a game_finished event")
	}

	s.Step(Input{Restart: true})
	stepN(s, 10, Input{Right: true})
	if s.State() != StateGameFinished || s.LevelIndex() != 2 {
		t.Errorf("finished game changed: state=%s level=%d", s.State(), s.LevelIndex())
	}
	if s.Stats().LevelsCleared != 1 {
		t.Errorf("levels cleared = %d, expected 1", s.Stats().LevelsCleared)
	}
}

func TestSessionLivesNeverIncreaseWithinRun(t *testing.T) {
	s := newTestSession(t, classicLevels())
	rng := rand.New(rand.NewSource(99))

	prev := s.Lives()
	for i := 0; i < 20000; i++ {
		in := Input{
			Left:  rng.Intn(3) == 0,
			Right: rng.Intn(2) == 0,
			Jump:  rng.Intn(4) == 0,
		}
		fullRestart := false
		if s.State() == StateDead {
			in.Restart = true
			fullRestart = s.Lives() == 0
		}
		s.Step(in)

		lives := s.Lives()
		if lives < 0 || lives > 3 {
			t.Fatalf("tick %d: lives %d out of range", i, lives)
		}
		if lives > prev && !fullRestart {
			t.Fatalf("tick %d: lives rose from %d to %d without a full restart", i, prev, lives)
		}
		prev = lives
	}
}

func TestSessionDeterminism(t *testing.T) {
	script := make([]Input, 3000)
	for i := range script {
		switch {
		case i%200 < 90:
			script[i].Right = true
		case i%200 < 120:
			script[i].Left = true
		}
		script[i].Jump = i%37 < 12
		script[i].Restart = i%500 == 499
	}

	run := func() Snapshot {
		s, err := NewSession(classicLevels(), DefaultRules(), rand.New(rand.NewSource(12345)))
		if err != nil {
			t.Fatal(err)
		}
		for _, in := range script {
			if s.State() == StateDead {
				in.Restart = true
			}
			s.Step(in)
		}
		return s.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Pos != snap2.Pos || snap1.DeathMessage != snap2.DeathMessage {
		t.Errorf("determinism failed: %+v vs %+v", snap1.Pos, snap2.Pos)
	}
}

func TestSnapshotReflectsSession(t *testing.T) {
	s := newTestSession(t, classicLevels())
	placeOn(s, 2, core.Vec{X: 520, Y: 370})
	s.Step(Input{})

	snap := s.Snapshot()
	if snap.LevelIndex != 2 || snap.LevelName != "LEVEL 3: Deception Mastery" {
		t.Errorf("snapshot level = %d %q", snap.LevelIndex, snap.LevelName)
	}
	if !snap.Reversed || snap.ReversedRemainingMS != 5000 {
		t.Errorf("snapshot reversal = %v %dms", snap.Reversed, snap.ReversedRemainingMS)
	}
	if len(snap.Traps) != 3 || snap.Traps[2].Status != TrapTriggered {
		t.Errorf("snapshot traps = %+v", snap.Traps)
	}
	if !snap.Grounded || snap.Pos.Y != 370 {
		t.Errorf("snapshot body = grounded %v at %+v", snap.Grounded, snap.Pos)
	}

	before := snap.Hash()
	s.Step(Input{})
	after := s.Snapshot()
	if after.Hash() == before {
		t.Error("hash should change as the clock advances")
	}
}
