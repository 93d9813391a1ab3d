package render

import (
	"math"

	"goplot/internal/plane"
)

// Func is a real function of one real argument. It may return NaN or ±Inf,
// or panic, for any input.
type Func func(x float64) float64

// Trace is a sampled curve in pixel space.
type Trace struct {
	Paths  [][]plane.Point // subpaths separated by gaps and breaks
	Gaps   int             // columns whose sample was not finite
	Breaks int             // jumps across the viewport between adjacent columns
}

// offscreen bounds finite samples to a few viewports beyond the edges so
// surfaces never rasterise a coordinate near overflow.
const offscreen = 4

// bisections is how often a suspected jump is halved before it is called a
// discontinuity.
const bisections = 24

// Sample evaluates f once per pixel column of v. A non-finite sample ends
// the current subpath; the next finite sample starts a new one. So does a
// jump from above the viewport to below it (or back) that does not shrink
// under bisection, such as the pole of 1/x between two columns.
func Sample(v plane.ViewState, f Func) Trace {
	var tr Trace
	if f == nil {
		return tr
	}
	h := float64(v.Height)
	lo, hi := -offscreen*h-1, (offscreen+1)*h+1
	var cur []plane.Point
	var prevX, prevY float64
	for x := 0; x < v.Width; x++ {
		cx := v.ToCartesian(plane.Point{X: float64(x)}).X
		y := row(v, f, cx)
		if !finite(y) {
			tr.Gaps++
			if len(cur) > 0 {
				tr.Paths = append(tr.Paths, cur)
				cur = nil
			}
			continue
		}
		if len(cur) > 0 && crosses(prevY, y, h) && discontinuous(v, f, prevX, cx, prevY, y) {
			tr.Breaks++
			tr.Paths = append(tr.Paths, cur)
			cur = nil
		}
		cur = append(cur, plane.Point{X: float64(x), Y: math.Max(lo, math.Min(y, hi))})
		prevX, prevY = cx, y
	}
	if len(cur) > 0 {
		tr.Paths = append(tr.Paths, cur)
	}
	return tr
}

// row is the unclamped pixel row of f(x).
func row(v plane.ViewState, f Func, x float64) float64 {
	return v.ToPixel(plane.Point{Y: eval(f, x)}).Y
}

func finite(y float64) bool { return !math.IsNaN(y) && !math.IsInf(y, 0) }

// crosses reports whether rows a and b lie on opposite sides of a viewport h
// pixels high.
func crosses(a, b, h float64) bool {
	return (a < 0 && b > h) || (a > h && b < 0)
}

// discontinuous bisects [x0, x1], keeping the half that still crosses the
// viewport. A continuous f enters the viewport at some midpoint or shrinks
// its jump below the viewport height; a pole or step does neither.
func discontinuous(v plane.ViewState, f Func, x0, x1, y0, y1 float64) bool {
	h := float64(v.Height)
	for i := 0; i < bisections; i++ {
		xm := (x0 + x1) / 2
		if xm == x0 || xm == x1 {
			break
		}
		ym := row(v, f, xm)
		switch {
		case !finite(ym):
			return true
		case crosses(y0, ym, h):
			x1, y1 = xm, ym
		case crosses(ym, y1, h):
			x0, y0 = xm, ym
		default:
			return false
		}
	}
	return math.Abs(y1-y0) > h
}

func eval(f Func, x float64) (y float64) {
	defer func() {
		if recover() != nil {
			y = math.NaN()
		}
	}()
	return f(x)
}

// Curve draws sampled functions and straight annotation lines.
type Curve struct {
	surface Surface
	view    plane.ViewState
	theme   Theme
}

// NewCurve draws onto s through the view v.
func NewCurve(s Surface, v plane.ViewState, th Theme) *Curve {
	return &Curve{surface: s, view: v, theme: th}
}

// DrawFunction samples f across the viewport and strokes the result.
func (c *Curve) DrawFunction(f Func) (Trace, error) {
	if c.surface == nil {
		return Trace{}, ErrSurfaceUnavailable
	}
	tr := Sample(c.view, f)
	if len(tr.Paths) == 0 {
		return tr, nil
	}
	s := c.surface
	s.BeginPath()
	for _, path := range tr.Paths {
		s.MoveTo(path[0].X, path[0].Y)
		for _, p := range path[1:] {
			s.LineTo(p.X, p.Y)
		}
	}
	s.Stroke(c.theme.Curve)
	return tr, nil
}

// DrawLine strokes a straight segment between two Cartesian points.
func (c *Curve) DrawLine(a, b plane.Point) error {
	if c.surface == nil {
		return ErrSurfaceUnavailable
	}
	pa, pb := c.view.ToPixel(a), c.view.ToPixel(b)
	s := c.surface
	s.BeginPath()
	s.MoveTo(pa.X, pa.Y)
	s.LineTo(pb.X, pb.Y)
	s.Stroke(c.theme.Line)
	return nil
}
