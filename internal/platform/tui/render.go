package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trapjump/internal/core"
)

// palette gives each color role its ANSI 256 code.
var palette = map[core.Color]string{
	core.ColorText:      "7",
	core.ColorMuted:     "243",
	core.ColorHighlight: "15",
	core.ColorSolid:     "250",
	core.ColorExit:      "2",
	core.ColorSuccess:   "10",
	core.ColorDanger:    "1",
	core.ColorAlert:     "9",
	core.ColorPlayer:    "11",
	core.ColorWarped:    "13",
	core.ColorReverse:   "5",
	core.ColorEye:       "4",
	core.ColorTrophy:    "220",
}

// colorStyles holds one lipgloss style per role.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share an escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.At(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.At(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
