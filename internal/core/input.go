package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionJump           // Up arrow, W, Space
	ActionRestart        // R - restart level or game
	ActionQuit           // Q, Ctrl+C - exit (platform only, never reaches the simulation)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionForKey maps a raw key name to its logical action.
// Names follow the browser/terminal conventions ("left", "arrowleft", "a", " ", "space").
// Unknown keys map to ActionNone.
func ActionForKey(key string) Action {
	switch strings.ToLower(key) {
	case "left", "arrowleft", "a":
		return ActionLeft
	case "right", "arrowright", "d":
		return ActionRight
	case "up", "arrowup", "w", " ", "space":
		return ActionJump
	case "r":
		return ActionRestart
	case "q", "ctrl+c":
		return ActionQuit
	}
	return ActionNone
}

// InputFrame is the set of actions held during one simulation tick.
// The platform builds it from its key collector and hands it to the game;
// the game never sees raw key events. The zero value holds nothing.
type InputFrame struct {
	held uint8
}

func actionBit(a Action) uint8 {
	if a <= ActionNone || a > ActionQuit {
		return 0
	}
	return 1 << uint(a-1) //#nosec G115 -- a is within 1..ActionQuit
}

// Set marks an action as held. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) { f.held |= actionBit(a) }

// Unset releases an action.
func (f *InputFrame) Unset(a Action) { f.held &^= actionBit(a) }

// Has reports whether a is held.
func (f InputFrame) Has(a Action) bool {
	bit := actionBit(a)
	return bit != 0 && f.held&bit != 0
}

// Clear releases every action.
func (f *InputFrame) Clear() { f.held = 0 }

// Empty reports whether nothing is held.
func (f InputFrame) Empty() bool { return f.held == 0 }

// Actions lists the held actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionLeft; a <= ActionQuit; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// String renders the held actions as "Left+Jump", or "None".
func (f InputFrame) String() string {
	acts := f.Actions()
	if len(acts) == 0 {
		return ActionNone.String()
	}
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = a.String()
	}
	return strings.Join(names, "+")
}
