package render

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"

	"goplot/internal/plane"
)

// Grid draws axes, gridlines and scale labels for one view snapshot.
type Grid struct {
	surface Surface
	view    plane.ViewState
	labels  plane.LabelScale
	theme   Theme
}

// NewGrid draws onto s through the view v, spacing lines by ls.
func NewGrid(s Surface, v plane.ViewState, ls plane.LabelScale, th Theme) *Grid {
	return &Grid{surface: s, view: v, labels: ls, theme: th}
}

// Gridlines holds the pixel positions shared by DrawGrid and
// DrawScaleIndicators.
type Gridlines struct {
	Interval plane.Interval
	X        []float64 // pixel columns of vertical gridlines
	Y        []float64 // pixel rows of horizontal gridlines
}

// Gridlines steps from the first on-screen offset through the axis range,
// anchored on the center snapped to the spatial interval. One trailing step
// covers the snap; positions outside the viewport are dropped.
func (g *Grid) Gridlines() Gridlines {
	v := g.view
	iv := plane.PlanInterval(v, g.labels)
	gl := Gridlines{Interval: iv}

	if v.Width == 0 || v.Height == 0 {
		return gl
	}
	ax := plane.Snap(v.Center.X, iv.Spatial)
	for _, i := range plane.Steps(v.XAxisRange()+iv.Spatial, iv.Spatial) {
		px := v.ToPixel(plane.Point{X: ax + i}).X
		if px >= 0 && px <= float64(v.Width) {
			gl.X = append(gl.X, px)
		}
	}
	ay := plane.Snap(v.Center.Y, iv.Spatial)
	for _, j := range plane.Steps(v.YAxisRange()+iv.Spatial, iv.Spatial) {
		py := v.ToPixel(plane.Point{Y: ay + j}).Y
		if py >= 0 && py <= float64(v.Height) {
			gl.Y = append(gl.Y, py)
		}
	}
	return gl
}

// DrawAxes strokes the lines through the Cartesian origin across the whole
// viewport. Off-screen axes are left to the surface to clip.
func (g *Grid) DrawAxes() error {
	if g.surface == nil {
		return ErrSurfaceUnavailable
	}
	o := g.view.ToPixel(plane.Point{})
	w, h := float64(g.view.Width), float64(g.view.Height)
	s := g.surface
	s.BeginPath()
	s.MoveTo(0, o.Y)
	s.LineTo(w, o.Y)
	s.MoveTo(o.X, 0)
	s.LineTo(o.X, h)
	s.Stroke(g.theme.Axes)
	return nil
}

// DrawGrid strokes every gridline in one path.
func (g *Grid) DrawGrid() error {
	if g.surface == nil {
		return ErrSurfaceUnavailable
	}
	gl := g.Gridlines()
	if len(gl.X) == 0 && len(gl.Y) == 0 {
		return nil
	}
	w, h := float64(g.view.Width), float64(g.view.Height)
	s := g.surface
	s.BeginPath()
	for _, x := range gl.X {
		s.MoveTo(x, 0)
		s.LineTo(x, h)
	}
	for _, y := range gl.Y {
		s.MoveTo(0, y)
		s.LineTo(w, y)
	}
	s.Stroke(g.theme.Grid)
	return nil
}

// Label is one placed scale indicator.
type Label struct {
	Text string
	At   plane.Point // baseline start, pixels
}

// ScaleLabels formats the Cartesian value of every gridline and places it
// next to its axis. Labels stay inside the viewport when the axis is off
// screen; the origin is skipped.
func (g *Grid) ScaleLabels() []Label {
	v := g.view
	gl := g.Gridlines()
	prec := gl.Interval.Precision()
	half := gl.Interval.Spatial / 2
	f := g.theme.Label
	w, h := float64(v.Width), float64(v.Height)
	o := v.ToPixel(plane.Point{})

	var out []Label
	baseline := clamp(o.Y+f.Size+2, f.Size, h-2)
	for _, x := range gl.X {
		val := v.ToCartesian(plane.Point{X: x}).X
		if math.Abs(val) < half {
			continue
		}
		text := FormatValue(val, prec)
		px := clamp(x+2, 0, w-g.textWidth(text))
		out = append(out, Label{Text: text, At: plane.Point{X: px, Y: baseline}})
	}
	for _, y := range gl.Y {
		val := v.ToCartesian(plane.Point{Y: y}).Y
		if math.Abs(val) < half {
			continue
		}
		text := FormatValue(val, prec)
		px := clamp(o.X+5, 0, w-g.textWidth(text))
		py := clamp(y+f.Size/2, f.Size, h-2)
		out = append(out, Label{Text: text, At: plane.Point{X: px, Y: py}})
	}
	return out
}

func (g *Grid) textWidth(text string) float64 {
	if g.surface == nil {
		return 0
	}
	return g.surface.TextWidth(text, g.theme.Label)
}

// DrawScaleIndicators fills the ScaleLabels text.
func (g *Grid) DrawScaleIndicators() error {
	if g.surface == nil {
		return ErrSurfaceUnavailable
	}
	for _, l := range g.ScaleLabels() {
		g.surface.FillText(l.Text, l.At.X, l.At.Y, g.theme.Label)
	}
	return nil
}

// FormatValue renders v with a fixed number of decimals and no negative zero.
func FormatValue(v float64, prec int) string {
	r := scalar.Round(v, prec)
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', prec, 64)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
