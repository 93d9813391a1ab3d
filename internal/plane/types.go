package plane

import "errors"

// Point is an (x, y) pair. The same type carries Cartesian and pixel
// coordinates; only Transform converts between the two.
type Point struct {
	X float64
	Y float64
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Sub returns p - d.
func (p Point) Sub(d Point) Point { return Point{X: p.X - d.X, Y: p.Y - d.Y} }

// Segment is a straight line between two Cartesian points.
type Segment struct {
	A Point
	B Point
}

// ViewState is the complete parameter set of the Cartesian to pixel mapping.
type ViewState struct {
	Center Point   // Cartesian point shown at the middle of the viewport
	Scale  float64 // pixels per Cartesian unit
	Width  int     // viewport width in pixels
	Height int     // viewport height in pixels
}

var (
	ErrInvalidScale    = errors.New("invalid scale: must be positive and finite")
	ErrInvalidOffset   = errors.New("invalid pan offset: must be finite")
	ErrInvalidViewport = errors.New("invalid viewport: dimensions must be non-negative")
)
