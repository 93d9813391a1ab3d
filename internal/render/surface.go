package render

import (
	"errors"
	"image/color"
)

// ErrSurfaceUnavailable is returned when there is nothing to draw on. No
// drawing happens for that frame.
var ErrSurfaceUnavailable = errors.New("render: surface unavailable")

// Style configures a stroke.
type Style struct {
	Color color.Color
	Width float64 // pixels
	Dash  float64 // on/off run length in pixels, 0 for solid
}

// Font configures label text. Size is the line height in pixels.
type Font struct {
	Color color.Color
	Size  float64
}

// Surface is a raster drawing target in pixel space: origin top-left,
// Y growing downward. Path operations build a path that Stroke paints and
// discards. Text positions name the left end of the baseline.
type Surface interface {
	Size() (width, height int)
	ClearRect(x, y, w, h float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke(s Style)
	FillText(text string, x, y float64, f Font)
	TextWidth(text string, f Font) float64
}

// Theme is the palette of one plot.
type Theme struct {
	Axes  Style
	Grid  Style
	Curve Style
	Line  Style
	Label Font
}

// DefaultTheme is black axes, a light grid, a blue curve and green annotations.
func DefaultTheme() Theme {
	return Theme{
		Axes:  Style{Color: color.Black, Width: 1},
		Grid:  Style{Color: color.RGBA{R: 0xd0, G: 0xd4, B: 0xdc, A: 0xff}, Width: 1},
		Curve: Style{Color: color.RGBA{B: 0xff, A: 0xff}, Width: 2},
		Line:  Style{Color: color.RGBA{G: 0x80, A: 0xff}, Width: 3},
		Label: Font{Color: color.Black, Size: 12},
	}
}
