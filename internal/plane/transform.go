package plane

import "math"

// ToPixel maps a Cartesian point into pixel space. Pixel Y grows downward.
func (v ViewState) ToPixel(p Point) Point {
	return Point{
		X: (p.X-v.Center.X)*v.Scale + float64(v.Width)/2,
		Y: float64(v.Height)/2 - (p.Y-v.Center.Y)*v.Scale,
	}
}

// ToCartesian is the inverse of ToPixel.
func (v ViewState) ToCartesian(p Point) Point {
	return Point{
		X: (p.X-float64(v.Width)/2)/v.Scale + v.Center.X,
		Y: (float64(v.Height)/2-p.Y)/v.Scale + v.Center.Y,
	}
}

// XAxisRange is half the visible horizontal extent in Cartesian units, rounded up.
func (v ViewState) XAxisRange() float64 {
	return math.Ceil(float64(v.Width) / (2 * v.Scale))
}

// YAxisRange is half the visible vertical extent in Cartesian units, rounded up.
func (v ViewState) YAxisRange() float64 {
	return math.Ceil(float64(v.Height) / (2 * v.Scale))
}

// IsOriginVisible reports whether the Cartesian origin lands inside the viewport.
// The test is on the origin's pixel, [0,W]x[0,H], not on the rounded-up axis ranges.
func (v ViewState) IsOriginVisible() bool {
	o := v.ToPixel(Point{})
	return o.X >= 0 && o.X <= float64(v.Width) && o.Y >= 0 && o.Y <= float64(v.Height)
}

// Transform owns the view state and guards every mutation of it.
// Renderers take a State snapshot so one pass sees one view.
type Transform struct {
	state     ViewState
	homeScale float64
}

// NewTransform returns a transform centred on the origin.
func NewTransform(width, height int, scale float64) (*Transform, error) {
	if !validScale(scale) {
		return nil, ErrInvalidScale
	}
	if width < 0 || height < 0 {
		return nil, ErrInvalidViewport
	}
	return &Transform{
		state:     ViewState{Scale: scale, Width: width, Height: height},
		homeScale: scale,
	}, nil
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (t *Transform) State() ViewState { return t.state }
func (t *Transform) Center() Point    { return t.state.Center }
func (t *Transform) Scale() float64   { return t.state.Scale }
func (t *Transform) Width() int       { return t.state.Width }
func (t *Transform) Height() int      { return t.state.Height }

func (t *Transform) ToPixel(p Point) Point     { return t.state.ToPixel(p) }
func (t *Transform) ToCartesian(p Point) Point { return t.state.ToCartesian(p) }
func (t *Transform) XAxisRange() float64       { return t.state.XAxisRange() }
func (t *Transform) YAxisRange() float64       { return t.state.YAxisRange() }
func (t *Transform) IsOriginVisible() bool     { return t.state.IsOriginVisible() }

// Pan moves the center by delta Cartesian units.
func (t *Transform) Pan(delta Point) error {
	c := t.state.Center.Add(delta)
	if !finite(delta) || !finite(c) {
		return ErrInvalidOffset
	}
	t.state.Center = c
	return nil
}

// PanPixels moves the view so content follows a drag of d pixels.
func (t *Transform) PanPixels(d Point) error {
	return t.Pan(Point{X: -d.X / t.state.Scale, Y: d.Y / t.state.Scale})
}

// Zoom multiplies the scale by factor. The state is unchanged on error.
func (t *Transform) Zoom(factor float64) error {
	return t.SetScale(t.state.Scale * factor)
}

// ZoomAt zooms by factor keeping the Cartesian point under pixel p in place.
func (t *Transform) ZoomAt(factor float64, p Point) error {
	s := t.state.Scale * factor
	if !validScale(s) || !finite(p) {
		return ErrInvalidScale
	}
	anchor := t.state.ToCartesian(p)
	c := t.state.Center
	center := Point{
		X: anchor.X + (c.X-anchor.X)/factor,
		Y: anchor.Y + (c.Y-anchor.Y)/factor,
	}
	if !finite(center) {
		return ErrInvalidScale
	}
	t.state.Scale = s
	t.state.Center = center
	return nil
}

// SetScale replaces the scale, keeping the center.
func (t *Transform) SetScale(s float64) error {
	if !validScale(s) {
		return ErrInvalidScale
	}
	t.state.Scale = s
	return nil
}

// SetCenter places c at the middle of the viewport.
func (t *Transform) SetCenter(c Point) error {
	if !finite(c) {
		return ErrInvalidOffset
	}
	t.state.Center = c
	return nil
}

// Resize updates the viewport to the surface's current pixel size.
func (t *Transform) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return ErrInvalidViewport
	}
	t.state.Width, t.state.Height = width, height
	return nil
}

// Reset recentres on the origin at the initial scale.
func (t *Transform) Reset() {
	t.state.Center = Point{}
	t.state.Scale = t.homeScale
}
