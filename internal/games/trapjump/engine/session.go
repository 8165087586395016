package engine

import (
	"math/rand"

	"github.com/vovakirdan/trapjump/internal/core"
)

// State is the session's top-level state.
type State int

const (
	StatePlaying State = iota
	StateDead
	StateLevelComplete
	StateGameFinished
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	case StateLevelComplete:
		return "level_complete"
	case StateGameFinished:
		return "game_finished"
	default:
		return "unknown"
	}
}

// DeathMessages is the pool a non-final death picks from.
var DeathMessages = []string{
	"Should've jumped with your eyes closed!",
	"Trust no platform, not even yourself.",
	"That wasn't supposed to be solid...",
	"Welcome to trust issues simulator!",
	"Plot twist: Everything is a lie.",
	"Did you really think that would work?",
	"The cake is a lie, and so is that platform.",
	"Paranoia level: Insufficient.",
}

// GameOverMessage is shown when the last life is lost.
const GameOverMessage = "Game Over! Your trust issues are now complete."

// RunStats accumulates over one full-game run and is cleared by a full restart.
type RunStats struct {
	Deaths        int
	Restarts      int
	LevelsCleared int
	Ticks         uint64
}

// Session is the top-level state machine for one play session.
// It is not safe for concurrent use; the caller serializes Step and Restart.
type Session struct {
	rules  Rules
	rng    *rand.Rand
	prog   *Progression
	traps  *TrapBook
	timers TimerQueue

	body  Body
	state State
	lives int

	reversed      bool
	reversedUntil int64

	generation uint64
	clock      int64
	tick       uint64

	deathMessage string
	deathCause   DeathCause
	stats        RunStats
	events       []Event
}

// NewSession validates the levels and starts on the first one.
// rng drives death message selection; nil means a fixed seed.
func NewSession(levels []Level, rules Rules, rng *rand.Rand) (*Session, error) {
	if err := rules.Check(); err != nil {
		return nil, err
	}
	if err := ValidateLevels(levels, rules); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) //#nosec G404 -- gameplay randomness
	}

	s := &Session{
		rules: rules,
		rng:   rng,
		prog:  NewProgression(levels),
		lives: rules.Lives,
	}
	s.traps = NewTrapBook(s.prog.Current())
	s.resetAttempt()
	s.events = nil
	return s, nil
}

// Step advances the simulation by one tick and returns what happened.
func (s *Session) Step(in Input) []Event {
	s.events = nil
	s.tick++
	s.stats.Ticks++
	s.clock += s.rules.TickMS

	gen := s.generation
	s.fireTimers()
	if s.generation != gen {
		// The pause ended and a new attempt starts at spawn; it moves next tick.
		return s.events
	}

	if in.Restart {
		s.Restart()
		return s.events
	}
	if s.state != StatePlaying {
		return s.events
	}

	body, evs := Integrate(s.body, in, s.reversed, s.prog.Current(), s.traps, s.rules)
	s.body = body

	for _, ev := range evs {
		switch ev.Kind {
		case EventTrapTouched:
			s.touchTrap(ev.TrapID)
		case EventDeath:
			s.die(ev.Cause)
			return s.events
		}
	}

	if s.prog.CheckExit(s.body.Pos, s.rules) {
		s.completeLevel()
	}
	return s.events
}

// Restart handles a restart request. With lives left only the current
// attempt is reset; with none the whole run starts over. A finished
// campaign is terminal and ignores restarts.
func (s *Session) Restart() {
	switch {
	case s.state == StateGameFinished:
		return
	case s.lives > 0:
		s.stats.Restarts++
		s.resetAttempt()
	default:
		s.prog.Restart()
		s.lives = s.rules.Lives
		s.stats = RunStats{}
		s.traps = NewTrapBook(s.prog.Current())
		s.resetAttempt()
	}
}

func (s *Session) emit(ev Event) {
	ev.Level = s.prog.Index()
	s.events = append(s.events, ev)
}

// resetAttempt starts a fresh attempt on the current level. Bumping the
// generation invalidates every timer scheduled under the previous attempt.
func (s *Session) resetAttempt() {
	s.generation++
	s.traps.Reset()
	s.reversed = false
	s.reversedUntil = 0
	s.body = SpawnBody(s.prog.Current().Spawn)
	s.state = StatePlaying
	s.emit(Event{Kind: EventAttemptStarted})
}

func (s *Session) fireTimers() {
	for _, t := range s.timers.PopDue(s.clock) {
		if t.Generation != s.generation {
			continue
		}
		switch t.Kind {
		case TimerDisappear:
			if s.traps.Disappear(t.TrapID) {
				s.emit(Event{Kind: EventTrapDisappeared, TrapID: t.TrapID})
			}
		case TimerRestoreControls:
			// A later reversal may have pushed the deadline out.
			if s.reversed && s.clock >= s.reversedUntil {
				s.reversed = false
				s.emit(Event{Kind: EventControlsRestored, TrapID: t.TrapID})
			}
		case TimerLevelPause:
			if s.state == StateLevelComplete {
				s.resetAttempt()
			}
		}
	}
}

func (s *Session) touchTrap(id string) {
	trap := s.traps.mustKnow(id)
	if !s.traps.Trigger(id) {
		return
	}
	s.emit(Event{Kind: EventTrapTriggered, TrapID: id})

	switch trap.Kind {
	case TrapDisappearing:
		s.timers.Schedule(Timer{
			Kind:       TimerDisappear,
			DueMS:      s.clock + s.rules.DisappearDelayMS,
			Generation: s.generation,
			TrapID:     id,
		})
	case TrapReverse:
		s.reversed = true
		s.reversedUntil = s.clock + s.rules.ReverseDurationMS
		s.timers.Schedule(Timer{
			Kind:       TimerRestoreControls,
			DueMS:      s.reversedUntil,
			Generation: s.generation,
			TrapID:     id,
		})
		s.emit(Event{Kind: EventControlsReversed, TrapID: id})
	}
}

func (s *Session) die(cause DeathCause) {
	s.stats.Deaths++
	s.deathCause = cause
	if s.lives > 1 {
		s.lives--
		s.deathMessage = DeathMessages[s.rng.Intn(len(DeathMessages))]
	} else {
		s.lives = 0
		s.deathMessage = GameOverMessage
	}
	s.state = StateDead
	s.emit(Event{Kind: EventDeath, Cause: cause, Message: s.deathMessage})
	if s.lives == 0 {
		s.emit(Event{Kind: EventGameOver, Message: s.deathMessage})
	}
}

func (s *Session) completeLevel() {
	s.stats.LevelsCleared++
	s.emit(Event{Kind: EventLevelComplete})

	if !s.prog.HasNext() {
		s.state = StateGameFinished
		s.emit(Event{Kind: EventGameFinished})
		return
	}

	s.prog.Advance()
	s.generation++
	s.traps = NewTrapBook(s.prog.Current())
	s.reversed = false
	s.reversedUntil = 0
	s.state = StateLevelComplete
	s.timers.Schedule(Timer{
		Kind:       TimerLevelPause,
		DueMS:      s.clock + s.rules.LevelPauseMS,
		Generation: s.generation,
	})
}

// State returns the current top-level state.
func (s *Session) State() State { return s.state }

// Lives returns the remaining lives, always within [0, Rules.Lives].
func (s *Session) Lives() int { return s.lives }

// LevelIndex returns the zero-based index of the current level.
func (s *Session) LevelIndex() int { return s.prog.Index() }

// LevelCount returns the number of levels in the campaign.
func (s *Session) LevelCount() int { return s.prog.Count() }

// Level returns the current level.
func (s *Session) Level() *Level { return s.prog.Current() }

// Body returns the player's kinematic state.
func (s *Session) Body() Body { return s.body }

// Position returns the player's top-left corner.
func (s *Session) Position() core.Vec { return s.body.Pos }

// Grounded reports whether the player landed this tick.
func (s *Session) Grounded() bool { return s.body.Grounded }

// Reversed reports whether horizontal controls are currently swapped.
func (s *Session) Reversed() bool { return s.reversed }

// ReversedRemainingMS returns how long the current reversal still lasts.
func (s *Session) ReversedRemainingMS() int64 {
	if !s.reversed {
		return 0
	}
	return max(s.reversedUntil-s.clock, 0)
}

// TrapStatus returns the lifecycle state of a trap on the current level.
func (s *Session) TrapStatus(id string) TrapStatus { return s.traps.Status(id) }

// TriggeredTrapIDs returns the current attempt's trigger set.
func (s *Session) TriggeredTrapIDs() []string { return s.traps.TriggeredIDs() }

// DeathMessage returns the message of the most recent death.
func (s *Session) DeathMessage() string { return s.deathMessage }

// DeathCause returns what caused the most recent death.
func (s *Session) DeathCause() DeathCause { return s.deathCause }

// ClockMS returns the simulated time in milliseconds.
func (s *Session) ClockMS() int64 { return s.clock }

// Tick returns the number of steps taken.
func (s *Session) Tick() uint64 { return s.tick }

// Generation returns the attempt counter used to invalidate timers.
func (s *Session) Generation() uint64 { return s.generation }

// Stats returns the current run's statistics.
func (s *Session) Stats() RunStats { return s.stats }

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules { return s.rules }
