package geom

import (
	"errors"
	"math"

	"goplot/internal/plane"
)

var (
	ErrNoGeometry  = errors.New("no geometries found")
	ErrUnsupported = errors.New("unsupported format")
)

// CrossArm is the half-length, in Cartesian units, of the cross drawn for a point.
const CrossArm = 0.1

// BBox is an axis-aligned Cartesian box.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

func (b BBox) Center() plane.Point {
	return plane.Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Data holds annotations: loose points and polylines in Cartesian space.
type Data struct {
	Points []plane.Point
	Lines  [][]plane.Point
	BBox   BBox
}

func (d Data) Empty() bool { return len(d.Points) == 0 && len(d.Lines) == 0 }

func (d *Data) updateBBox() {
	first := true
	grow := func(p plane.Point) {
		if first {
			d.BBox = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			first = false
			return
		}
		d.BBox.MinX = math.Min(d.BBox.MinX, p.X)
		d.BBox.MinY = math.Min(d.BBox.MinY, p.Y)
		d.BBox.MaxX = math.Max(d.BBox.MaxX, p.X)
		d.BBox.MaxY = math.Max(d.BBox.MaxY, p.Y)
	}
	for _, p := range d.Points {
		grow(p)
	}
	for _, ls := range d.Lines {
		for _, p := range ls {
			grow(p)
		}
	}
}

// Segments flattens polylines into segments. Each point becomes a cross of
// arm CrossArm.
func (d Data) Segments() []plane.Segment {
	var out []plane.Segment
	for _, ls := range d.Lines {
		for i := 1; i < len(ls); i++ {
			out = append(out, plane.Segment{A: ls[i-1], B: ls[i]})
		}
	}
	for _, p := range d.Points {
		out = append(out,
			plane.Segment{A: plane.Point{X: p.X - CrossArm, Y: p.Y}, B: plane.Point{X: p.X + CrossArm, Y: p.Y}},
			plane.Segment{A: plane.Point{X: p.X, Y: p.Y - CrossArm}, B: plane.Point{X: p.X, Y: p.Y + CrossArm}},
		)
	}
	return out
}

// Fit centres t on b and picks the largest scale that shows b with a 10%
// margin. A box with no extent only recentres.
func Fit(t *plane.Transform, b BBox) error {
	if err := t.SetCenter(b.Center()); err != nil {
		return err
	}
	w, h := float64(t.Width()), float64(t.Height())
	if w == 0 || h == 0 {
		return nil
	}
	s := math.Inf(1)
	if b.Width() > 0 {
		s = w / (b.Width() * 1.1)
	}
	if b.Height() > 0 {
		s = math.Min(s, h/(b.Height()*1.1))
	}
	if math.IsInf(s, 1) {
		return nil
	}
	return t.SetScale(s)
}
