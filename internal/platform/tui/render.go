package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// True-color palette entries; lipgloss downsamples them on limited terminals.
func init() {
	for _, c := range []core.Color{core.ColorSilver, core.ColorGold, core.ColorRose, core.ColorLime, core.ColorSky} {
		colorStyles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is written as spans of one color, so a style is applied once
// per span rather than once per cell.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	var span []rune
	for y := range rows {
		var line strings.Builder
		span = span[:0]
		spanColor := core.ColorDefault

		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != spanColor && len(span) > 0 {
				line.WriteString(styleFor(spanColor).Render(string(span)))
				span = span[:0]
			}
			spanColor = cell.Color
			span = append(span, cell.Rune)
		}
		if len(span) > 0 {
			line.WriteString(styleFor(spanColor).Render(string(span)))
		}
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}

// styleFor returns the style of a color, falling back to the plain style
// for colors without an entry.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
