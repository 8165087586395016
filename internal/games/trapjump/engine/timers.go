package engine

import "sort"

// TimerKind names the delayed effects the session can schedule.
type TimerKind int

const (
	TimerDisappear       TimerKind = iota // remove a triggered disappearing trap
	TimerRestoreControls                  // end a control reversal
	TimerLevelPause                       // leave the level-complete pause
)

// Timer is a one-shot effect due at a point on the simulated clock.
// Generation is the attempt it was scheduled under; the session drops timers
// whose generation no longer matches.
type Timer struct {
	Kind       TimerKind
	DueMS      int64
	Generation uint64
	TrapID     string

	seq uint64
}

// TimerQueue holds pending timers. It is driven by the session's clock,
// never by wall time, so runs stay reproducible.
type TimerQueue struct {
	pending []Timer
	nextSeq uint64
}

// Schedule adds a timer.
func (q *TimerQueue) Schedule(t Timer) {
	t.seq = q.nextSeq
	q.nextSeq++
	q.pending = append(q.pending, t)
}

// PopDue removes and returns every timer due at or before now,
// ordered by due time and then by scheduling order.
func (q *TimerQueue) PopDue(now int64) []Timer {
	var due []Timer
	kept := q.pending[:0]
	for _, t := range q.pending {
		if t.DueMS <= now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	q.pending = kept

	sort.Slice(due, func(i, j int) bool {
		if due[i].DueMS != due[j].DueMS {
			return due[i].DueMS < due[j].DueMS
		}
		return due[i].seq < due[j].seq
	})
	return due
}

// Len returns the number of pending timers, stale ones included.
func (q *TimerQueue) Len() int {
	return len(q.pending)
}

// Clear drops every pending timer.
func (q *TimerQueue) Clear() {
	q.pending = q.pending[:0]
}
