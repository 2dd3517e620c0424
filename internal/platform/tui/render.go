package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hoppy/internal/core"
)

// colorStyles maps palette slots to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorHero:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorCarrot:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorLeaf:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorGrass:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorScore:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorDanger:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
