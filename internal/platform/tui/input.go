package tui

import "github.com/vovakirdan/trapjump/internal/core"

// InputCollector turns key presses into held actions.
//
// Terminals report presses and auto-repeats but never releases, so a press
// keeps its action held for a number of ticks and every repeat refreshes it.
// Pressing one direction releases the other. Restart is held for one tick.
type InputCollector struct {
	hold      int
	remaining map[core.Action]int
}

// NewInputCollector creates a collector that holds presses for holdTicks.
func NewInputCollector(holdTicks int) *InputCollector {
	return &InputCollector{
		hold:      core.Max(1, holdTicks),
		remaining: make(map[core.Action]int),
	}
}

// Press records a key press for the given action.
func (c *InputCollector) Press(a core.Action) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionLeft:
		delete(c.remaining, core.ActionRight)
	case core.ActionRight:
		delete(c.remaining, core.ActionLeft)
	case core.ActionRestart:
		c.remaining[a] = 1
		return
	}
	c.remaining[a] = c.hold
}

// Frame returns the actions currently held.
func (c *InputCollector) Frame() core.InputFrame {
	var f core.InputFrame
	for a := range c.remaining {
		f.Set(a)
	}
	return f
}

// Advance ages every held action by one tick.
func (c *InputCollector) Advance() {
	for a, n := range c.remaining {
		if n <= 1 {
			delete(c.remaining, a)
			continue
		}
		c.remaining[a] = n - 1
	}
}

// Release drops every held action.
func (c *InputCollector) Release() {
	clear(c.remaining)
}
