package engine

import "github.com/vovakirdan/trapjump/internal/core"

// ResolveInput is the player's motion for one tick.
type ResolveInput struct {
	Prev      core.Vec // position before this tick's move
	Tentative core.Vec // Prev + Vel
	Vel       core.Vec
}

// Resolution is the final body state for the tick plus what was touched.
type Resolution struct {
	Pos      core.Vec
	Vel      core.Vec
	Grounded bool
	Events   []Event
}

// Resolve settles a tentative move against the level's platforms and traps.
//
// A surface is a landing candidate when the player box overlaps it, the
// player is falling, and the player's top was above the surface top before
// the move. Among candidates the highest top wins; on equal tops platforms
// beat traps and earlier entries beat later ones.
//
// Disappearing traps count as surfaces until they have disappeared. Fake,
// spike and reverse traps are never surfaces; overlapping them emits
// EventTrapTouched, plus EventDeath for fake and spike.
func Resolve(in ResolveInput, lvl *Level, book *TrapBook, r Rules) Resolution {
	res := Resolution{Pos: in.Tentative, Vel: in.Vel}
	player := core.BoxAt(in.Tentative, r.PlayerW, r.PlayerH)

	var (
		found   bool
		bestTop float64
		bestID  string
	)
	consider := func(surface core.Box, trapID string) {
		if in.Vel.Y <= 0 || !player.Intersects(surface) || in.Prev.Y >= surface.Top() {
			return
		}
		if !found || surface.Top() < bestTop {
			found, bestTop, bestID = true, surface.Top(), trapID
		}
	}

	for _, p := range lvl.Platforms {
		consider(p.Box(r), "")
	}
	for _, t := range lvl.Traps {
		if t.Kind == TrapDisappearing && !book.IsDisappeared(t.ID) {
			consider(t.Box(), t.ID)
		}
	}

	if found {
		res.Pos.Y = bestTop - r.PlayerH
		res.Vel.Y = 0
		res.Grounded = true
		if bestID != "" {
			res.Events = append(res.Events, Event{Kind: EventTrapTouched, TrapID: bestID})
		}
	}

	for _, t := range lvl.Traps {
		if t.Kind == TrapDisappearing || !player.Intersects(t.Box()) {
			continue
		}
		res.Events = append(res.Events, Event{Kind: EventTrapTouched, TrapID: t.ID})
		switch t.Kind {
		case TrapFake:
			res.Events = append(res.Events, Event{Kind: EventDeath, TrapID: t.ID, Cause: CauseFake})
		case TrapSpike:
			res.Events = append(res.Events, Event{Kind: EventDeath, TrapID: t.ID, Cause: CauseSpike})
		}
	}

	res.Pos.X = core.ClampF(res.Pos.X, r.MinX, r.MaxX)

	if res.Pos.Y > r.DeathY {
		res.Events = append(res.Events, Event{Kind: EventDeath, Cause: CauseFall})
	}
	return res
}
