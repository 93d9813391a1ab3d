package tui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"goplot/internal/render"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	errFg     = lipgloss.Color("#F87171")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle   = lipgloss.NewStyle().Foreground(errFg)
)

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// plotTheme is the palette for dark terminals. The grid is dotted so curves
// stay readable at braille resolution.
func plotTheme() render.Theme {
	return render.Theme{
		Axes:  render.Style{Color: rgb(0xE6E6E6), Width: 1},
		Grid:  render.Style{Color: rgb(0x243141), Width: 1, Dash: 1},
		Curve: render.Style{Color: rgb(0x7C3AED), Width: 1},
		Line:  render.Style{Color: rgb(0x22C55E), Width: 1},
		Label: render.Font{Color: rgb(0x6B7280), Size: 4},
	}
}
