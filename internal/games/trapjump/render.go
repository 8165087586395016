package trapjump

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/trapjump/internal/core"
	"github.com/vovakirdan/trapjump/internal/games/trapjump/engine"
)

// Visual characters for rendering
const (
	PlatformChar  = '█'
	FakeChar      = '▓'
	TriggeredChar = '▒'
	ExitChar      = '░'
	PlayerChar    = '█'
	SpikeChar     = '▲'
	ReverseChar   = '↔'
	HeartFull     = '♥'
	HeartEmpty    = '♡'
)

// Minimum terminal size that still shows the whole world.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Rows reserved outside the play field: HUD on top, two instruction lines below.
const (
	hudRows    = 1
	footerRows = 2
)

const (
	instructions = "Arrows/WASD move - Space jump - R restart - Q quit"
	tagline      = "Trust nothing. Question everything."
)

// viewport projects world coordinates onto the play field.
type viewport struct {
	top, w, h      int
	worldW, worldH float64
}

func newViewport(dst *core.Screen, r engine.Rules) viewport {
	return viewport{
		top:    hudRows,
		w:      dst.Width(),
		h:      dst.Height() - hudRows - footerRows,
		worldW: r.WorldW,
		worldH: r.WorldH,
	}
}

func (v viewport) col(x float64) int { return int(x * float64(v.w) / v.worldW) }
func (v viewport) row(y float64) int { return v.top + int(y*float64(v.h)/v.worldH) }

// rect maps a world box to cells. Anything visible is at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.Left()), v.row(b.Top())
	x1, y1 := v.col(b.Right()), v.row(b.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// clip keeps a rect inside the play field so overlays never hit the HUD.
func (v viewport) clip(r core.Rect) core.Rect {
	top := core.Clamp(r.Y, v.top, v.top+v.h)
	bottom := core.Clamp(r.Bottom(), v.top, v.top+v.h)
	if bottom <= top {
		return core.NewRect(r.X, top, r.W, 0)
	}
	return core.NewRect(r.X, top, r.W, bottom-top)
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.PrintCentered(dst.Height()/2, "Terminal too small", core.ColorAlert)
		dst.PrintCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	snap := g.session.Snapshot()
	lvl := g.session.Level()
	v := newViewport(dst, g.rules)

	g.drawLevel(dst, v, lvl, snap)
	g.drawPlayer(dst, v, snap)
	drawHUD(dst, snap)

	h := dst.Height()
	dst.PrintCentered(h-2, instructions, core.ColorText)
	dst.PrintCentered(h-1, tagline, core.ColorMuted)

	switch snap.State {
	case engine.StateDead:
		title, action := "OOPS!", "Try Again (R)"
		if snap.Lives == 0 {
			title, action = "GAME OVER", "Restart Game (R)"
		}
		lines := []string{title, fmt.Sprintf("%q", snap.DeathMessage)}
		if snap.Lives > 0 {
			lines = append(lines, "Lives Remaining: "+strings.Repeat(string(HeartFull), snap.Lives))
		}
		lines = append(lines, action)
		drawMessageBox(dst, core.ColorAlert, lines...)
	case engine.StateLevelComplete:
		drawMessageBox(dst, core.ColorSuccess, "Level Complete!", "Preparing next challenge...")
	case engine.StateGameFinished:
		drawMessageBox(dst, core.ColorTrophy,
			"Game Complete!",
			"You've mastered the art of mistrust!",
			fmt.Sprintf("Deaths: %d  |  Press R to play again", snap.Stats.Deaths))
	}
}

func (g *Game) drawLevel(dst *core.Screen, v viewport, lvl *engine.Level, snap engine.Snapshot) {
	for _, p := range lvl.Platforms {
		dst.Fill(v.clip(v.rect(p.Box(g.rules))), PlatformChar, core.ColorSolid)
	}

	for _, t := range snap.Traps {
		drawTrap(dst, v, t)
	}

	exit := v.clip(v.rect(lvl.ExitBox(g.rules)))
	dst.Fill(exit, ExitChar, core.ColorExit)
	if exit.W >= 4 && exit.H > 0 {
		dst.Print(exit.X+(exit.W-4)/2, exit.Y+exit.H/2, "EXIT", core.ColorSuccess)
	}
}

// drawTrap renders a trap. Armed traps look like plain platforms; a fake
// one is only slightly off.
func drawTrap(dst *core.Screen, v viewport, t engine.TrapView) {
	r := v.clip(v.rect(t.Box))
	armed := t.Status == engine.TrapArmed

	switch t.Kind {
	case engine.TrapDisappearing:
		switch t.Status {
		case engine.TrapDisappeared:
			return
		case engine.TrapTriggered:
			dst.Fill(r, TriggeredChar, core.ColorDanger)
		default:
			dst.Fill(r, PlatformChar, core.ColorSolid)
		}
	case engine.TrapFake:
		dst.Fill(r, FakeChar, core.ColorSolid)
	case engine.TrapSpike:
		if armed {
			dst.Fill(r, PlatformChar, core.ColorSolid)
			return
		}
		dst.Fill(r, PlatformChar, core.ColorDanger)
		if r.Y-1 >= v.top {
			for x := r.X; x < r.Right(); x++ {
				dst.Put(x, r.Y-1, SpikeChar, core.ColorAlert)
			}
		}
	case engine.TrapReverse:
		if armed {
			dst.Fill(r, PlatformChar, core.ColorSolid)
			return
		}
		dst.Fill(r, PlatformChar, core.ColorReverse)
		dst.Put(r.X+r.W/2, r.Y, ReverseChar, core.ColorHighlight)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport, snap engine.Snapshot) {
	if snap.State == engine.StateDead {
		return
	}
	box := core.BoxAt(snap.Pos, g.rules.PlayerW, g.rules.PlayerH)
	r := v.clip(v.rect(box))
	color := core.ColorPlayer
	if snap.Reversed {
		color = core.ColorWarped
	}
	dst.Fill(r, PlayerChar, color)

	// Eye on the facing side
	eyeX := r.X
	if snap.Facing > 0 {
		eyeX = r.Right() - 1
	}
	dst.Put(eyeX, r.Y, '•', core.ColorEye)
}

func drawHUD(dst *core.Screen, snap engine.Snapshot) {
	dst.Print(1, 0, "Lives:", core.ColorDefault)
	for i := 0; i < 3; i++ {
		if i < snap.Lives {
			dst.Put(8+i*2, 0, HeartFull, core.ColorAlert)
		} else {
			dst.Put(8+i*2, 0, HeartEmpty, core.ColorMuted)
		}
	}

	title := snap.LevelName
	if title == "" {
		title = fmt.Sprintf("Level %d", snap.LevelIndex+1)
	}
	titleColor := core.ColorHighlight
	if snap.Reversed {
		titleColor = core.ColorWarped
	}
	dst.PrintCentered(0, title, titleColor)

	if snap.Reversed {
		secs := (snap.ReversedRemainingMS + 999) / 1000
		status := fmt.Sprintf("CONTROLS REVERSED! %ds", secs)
		dst.Print(dst.Width()-len(status)-1, 0, status, core.ColorReverse)
	}
}

// drawMessageBox draws a bordered box in the center of the screen. The
// first line is the title and takes the given color.
func drawMessageBox(dst *core.Screen, titleColor core.Color, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW = core.Min(boxW+4, dst.Width())
	boxH := len(lines) + 3
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.Fill(box, ' ', core.ColorDefault)
	dst.Frame(box, core.ColorDefault)

	for i, l := range lines {
		y := boxY + 1 + i
		if i > 0 {
			y++ // blank line under the title
		}
		x := boxX + (boxW-len([]rune(l)))/2
		if i == 0 {
			dst.Print(x, y, l, titleColor)
			continue
		}
		dst.Print(x, y, l, core.ColorDefault)
	}
}
