package engine

import (
	"fmt"

	"github.com/vovakirdan/trapjump/internal/core"
)

// Progression walks an ordered, validated list of levels.
type Progression struct {
	levels []Level
	index  int
}

// NewProgression starts at the first level.
func NewProgression(levels []Level) *Progression {
	return &Progression{levels: levels}
}

// Current returns the level being played.
func (p *Progression) Current() *Level {
	return &p.levels[p.index]
}

// Index returns the zero-based index of the current level.
func (p *Progression) Index() int {
	return p.index
}

// Count returns the number of levels.
func (p *Progression) Count() int {
	return len(p.levels)
}

// HasNext reports whether another level follows the current one.
func (p *Progression) HasNext() bool {
	return p.index+1 < len(p.levels)
}

// Advance moves to the next level. Advancing past the last level is a
// caller bug and panics.
func (p *Progression) Advance() {
	if !p.HasNext() {
		panic(fmt.Sprintf("engine: cannot advance past level %d of %d", p.index+1, len(p.levels)))
	}
	p.index++
}

// Restart returns to the first level.
func (p *Progression) Restart() {
	p.index = 0
}

// CheckExit reports whether a player at pos overlaps the current exit.
func (p *Progression) CheckExit(pos core.Vec, r Rules) bool {
	player := core.BoxAt(pos, r.PlayerW, r.PlayerH)
	return player.Intersects(p.Current().ExitBox(r))
}
