package engine

import "github.com/vovakirdan/trapjump/internal/core"

// Input is the set of held logical keys sampled at the start of a tick.
type Input struct {
	Left    bool
	Right   bool
	Jump    bool
	Restart bool
}

// Body is the player's kinematic state.
type Body struct {
	Pos      core.Vec
	Vel      core.Vec
	Grounded bool
	Facing   int // -1 left, 1 right

	// AwaitingRelease is set by a jump and cleared once jump is no longer
	// held, so one press yields one jump however long it is held.
	AwaitingRelease bool
}

// SpawnBody places a fresh body at p.
func SpawnBody(p core.Vec) Body {
	return Body{Pos: p, Facing: 1}
}

// horizontalVelocity maps held directions to vel.x.
// Both or neither held means standing still.
func horizontalVelocity(in Input, reversed bool, speed float64) float64 {
	var dir float64
	switch {
	case in.Left && !in.Right:
		dir = -1
	case in.Right && !in.Left:
		dir = 1
	default:
		return 0
	}
	if reversed {
		dir = -dir
	}
	return dir * speed
}

// Integrate advances the body by one tick: gravity, horizontal input,
// tentative move, collision, then jump.
func Integrate(b Body, in Input, reversed bool, lvl *Level, book *TrapBook, r Rules) (Body, []Event) {
	vel := b.Vel
	vel.Y += r.Gravity
	vel.X = horizontalVelocity(in, reversed, r.MoveSpeed)

	switch {
	case vel.X < 0:
		b.Facing = -1
	case vel.X > 0:
		b.Facing = 1
	}

	res := Resolve(ResolveInput{Prev: b.Pos, Tentative: b.Pos.Add(vel), Vel: vel}, lvl, book, r)
	b.Pos, b.Vel, b.Grounded = res.Pos, res.Vel, res.Grounded

	if !in.Jump {
		b.AwaitingRelease = false
	} else if b.Grounded && !b.AwaitingRelease {
		b.Vel.Y = r.JumpImpulse
		b.Grounded = false
		b.AwaitingRelease = true
	}
	return b, res.Events
}
