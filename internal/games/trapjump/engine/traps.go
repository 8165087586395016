package engine

import (
	"fmt"
	"sort"
)

// TrapStatus is the per-attempt lifecycle of a trap.
type TrapStatus int

const (
	TrapArmed TrapStatus = iota
	TrapTriggered
	TrapDisappeared // disappearing traps only; terminal for the attempt
)

func (s TrapStatus) String() string {
	switch s {
	case TrapArmed:
		return "armed"
	case TrapTriggered:
		return "triggered"
	case TrapDisappeared:
		return "disappeared"
	default:
		return "unknown"
	}
}

// TrapBook tracks which traps of one level have fired during the current
// attempt. The triggered set is the only thing collision consults to decide
// whether a trap is still live.
type TrapBook struct {
	level       *Level
	triggered   map[string]bool
	disappeared map[string]bool
}

// NewTrapBook creates an all-armed book for the level.
func NewTrapBook(level *Level) *TrapBook {
	return &TrapBook{
		level:       level,
		triggered:   make(map[string]bool, len(level.Traps)),
		disappeared: make(map[string]bool),
	}
}

// mustKnow panics on ids that are not part of the level. Level data is
// validated at load time, so an unknown id here is a bug in the caller.
func (b *TrapBook) mustKnow(id string) Trap {
	t, ok := b.level.Trap(id)
	if !ok {
		panic(fmt.Sprintf("engine: trap %q is not in level %q", id, b.level.Name))
	}
	return t
}

// Trigger records the first touch of a trap.
// Returns false when the trap had already fired this attempt.
func (b *TrapBook) Trigger(id string) bool {
	b.mustKnow(id)
	if b.triggered[id] {
		return false
	}
	b.triggered[id] = true
	return true
}

// Disappear removes a triggered disappearing trap from collision.
// Returns false if the trap was not triggered or is already gone.
func (b *TrapBook) Disappear(id string) bool {
	t := b.mustKnow(id)
	if t.Kind != TrapDisappearing || !b.triggered[id] || b.disappeared[id] {
		return false
	}
	b.disappeared[id] = true
	return true
}

// IsTriggered reports whether the trap fired during this attempt.
func (b *TrapBook) IsTriggered(id string) bool {
	return b.triggered[id]
}

// IsDisappeared reports whether the trap no longer takes part in collision.
func (b *TrapBook) IsDisappeared(id string) bool {
	return b.disappeared[id]
}

// Status returns the lifecycle state of a trap.
func (b *TrapBook) Status(id string) TrapStatus {
	switch {
	case b.disappeared[id]:
		return TrapDisappeared
	case b.triggered[id]:
		return TrapTriggered
	default:
		return TrapArmed
	}
}

// TriggeredIDs returns the triggered set in sorted order.
func (b *TrapBook) TriggeredIDs() []string {
	ids := make([]string, 0, len(b.triggered))
	for id := range b.triggered {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reset re-arms every trap.
func (b *TrapBook) Reset() {
	clear(b.triggered)
	clear(b.disappeared)
}
