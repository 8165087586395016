package core

// Color is the role of a screen cell. Games pick roles; the platform
// decides what each role looks like on the terminal.
type Color uint8

const (
	ColorDefault   Color = iota
	ColorText            // footer instructions
	ColorMuted           // tagline, lost lives
	ColorHighlight       // level title, trap markers
	ColorSolid           // anything the player may stand on, or believe so
	ColorExit
	ColorSuccess // exit label, level complete
	ColorDanger  // sprung traps
	ColorAlert   // spikes, hearts, death overlay
	ColorPlayer
	ColorWarped // player and title while controls are reversed
	ColorReverse
	ColorEye
	ColorTrophy

	colorCount
)

// Colors lists every role except ColorDefault.
func Colors() []Color {
	out := make([]Color, 0, colorCount-1)
	for c := ColorDefault + 1; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
