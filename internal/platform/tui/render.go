package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// palette holds the lipgloss style for each core.Color, indexed by value.
var palette = [...]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       fg("1"),
	core.ColorGreen:     fg("2"),
	core.ColorYellow:    fg("3"),
	core.ColorBlue:      fg("4"),
	core.ColorPurple:    fg("5"),
	core.ColorOrange:    fg("208"),
	core.ColorLightBlue: fg("14"),
	core.ColorCyan:      fg("6"),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "240"}),
	core.ColorBright:    fg("15").Bold(true),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

func styleFor(c core.Color) lipgloss.Style {
	if !c.Valid() || int(c) >= len(palette) {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells of the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
