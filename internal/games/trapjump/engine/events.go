package engine

// EventKind identifies what happened during a step.
type EventKind int

const (
	// Emitted by Resolve and consumed by the session.
	EventTrapTouched EventKind = iota
	EventDeath

	// Emitted by the session for presentation and logging.
	EventTrapTriggered
	EventTrapDisappeared
	EventControlsReversed
	EventControlsRestored
	EventLevelComplete
	EventAttemptStarted
	EventGameOver
	EventGameFinished
)

func (k EventKind) String() string {
	switch k {
	case EventTrapTouched:
		return "trap_touched"
	case EventDeath:
		return "death"
	case EventTrapTriggered:
		return "trap_triggered"
	case EventTrapDisappeared:
		return "trap_disappeared"
	case EventControlsReversed:
		return "controls_reversed"
	case EventControlsRestored:
		return "controls_restored"
	case EventLevelComplete:
		return "level_complete"
	case EventAttemptStarted:
		return "attempt_started"
	case EventGameOver:
		return "game_over"
	case EventGameFinished:
		return "game_finished"
	default:
		return "unknown"
	}
}

// DeathCause says what killed the player.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseFall
	CauseFake
	CauseSpike
)

func (c DeathCause) String() string {
	switch c {
	case CauseFall:
		return "fall"
	case CauseFake:
		return "fake"
	case CauseSpike:
		return "spike"
	default:
		return "none"
	}
}

// Event is one observable outcome. Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	TrapID  string
	Cause   DeathCause
	Message string
	Level   int // zero-based level index the event happened on
}
