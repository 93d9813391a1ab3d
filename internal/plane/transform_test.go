package plane

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func samePoint(a, b Point) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) && scalar.EqualWithinAbs(a.Y, b.Y, tol)
}

func mustTransform(t *testing.T, w, h int, scale float64) *Transform {
	t.Helper()
	tr, err := NewTransform(w, h, scale)
	if err != nil {
		t.Fatalf("NewTransform(%d, %d, %v): %v", w, h, scale, err)
	}
	return tr
}

func TestRoundTrip(t *testing.T) {
	views := []ViewState{
		{Scale: 50, Width: 800, Height: 600},
		{Center: Point{X: -3.25, Y: 7.5}, Scale: 80, Width: 800, Height: 600},
		{Center: Point{X: 1e3, Y: -1e3}, Scale: 0.25, Width: 1920, Height: 1080},
		{Center: Point{X: 0.001, Y: 0.002}, Scale: 12345.678, Width: 161, Height: 97},
		{Scale: 1, Width: 0, Height: 0},
	}
	points := []Point{
		{}, {X: 1, Y: 1}, {X: -17.5, Y: 3.125}, {X: 400, Y: 300}, {X: 1e4, Y: -2e4}, {X: 0.3, Y: -0.7},
	}
	for _, v := range views {
		for _, p := range points {
			if got := v.ToPixel(v.ToCartesian(p)); !samePoint(got, p) {
				t.Errorf("%+v: ToPixel(ToCartesian(%v)) = %v", v, p, got)
			}
			if got := v.ToCartesian(v.ToPixel(p)); !samePoint(got, p) {
				t.Errorf("%+v: ToCartesian(ToPixel(%v)) = %v", v, p, got)
			}
		}
	}
}

func TestToPixel(t *testing.T) {
	v := ViewState{Center: Point{X: 1, Y: 2}, Scale: 10, Width: 200, Height: 100}
	tests := []struct {
		in, want Point
	}{
		{in: Point{X: 1, Y: 2}, want: Point{X: 100, Y: 50}},
		{in: Point{X: 2, Y: 2}, want: Point{X: 110, Y: 50}},
		{in: Point{X: 1, Y: 3}, want: Point{X: 100, Y: 40}},
		{in: Point{}, want: Point{X: 90, Y: 70}},
	}
	for _, tt := range tests {
		if got := v.ToPixel(tt.in); !samePoint(got, tt.want) {
			t.Errorf("ToPixel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAxisRangeMonotonic(t *testing.T) {
	v := ViewState{Width: 800, Height: 600, Scale: 1}
	prevX, prevY := v.XAxisRange(), v.YAxisRange()
	for v.Scale < 300 {
		v.Scale *= 2
		x, y := v.XAxisRange(), v.YAxisRange()
		if x >= prevX || y >= prevY {
			t.Fatalf("scale %v: ranges (%v, %v) did not shrink from (%v, %v)", v.Scale, x, y, prevX, prevY)
		}
		prevX, prevY = x, y
	}
	// Small steps never grow the range.
	for s := 1.0; s < 400; s += 0.5 {
		a := ViewState{Width: 800, Height: 600, Scale: s}
		b := ViewState{Width: 800, Height: 600, Scale: s + 0.5}
		if b.XAxisRange() > a.XAxisRange() || b.YAxisRange() > a.YAxisRange() {
			t.Fatalf("range grew between scale %v and %v", s, s+0.5)
		}
	}
}

func TestOriginVisibility(t *testing.T) {
	tr := mustTransform(t, 800, 600, 80)
	if !tr.IsOriginVisible() {
		t.Error("origin should be visible at center (0,0)")
	}
	if err := tr.SetCenter(Point{X: 1000, Y: 1000}); err != nil {
		t.Fatal(err)
	}
	if tr.IsOriginVisible() {
		t.Error("origin should not be visible at center (1000,1000)")
	}
	if err := tr.SetCenter(Point{X: 4.9, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if !tr.IsOriginVisible() {
		t.Error("origin 8px inside the left edge should be visible")
	}
}

func TestOriginVisibilityUsesPixels(t *testing.T) {
	tr := mustTransform(t, 820, 600, 80)
	if err := tr.SetCenter(Point{X: 5.3}); err != nil {
		t.Fatal(err)
	}
	if r := tr.XAxisRange(); r <= 5.3 {
		t.Fatalf("XAxisRange() = %v, want it to cover the center offset", r)
	}
	if px := tr.ToPixel(Point{}).X; px >= 0 {
		t.Fatalf("origin at px %v, want it left of the viewport", px)
	}
	if tr.IsOriginVisible() {
		t.Error("origin 14px left of the viewport should not be visible")
	}
}

func TestZoomRejectsInvalid(t *testing.T) {
	tr := mustTransform(t, 800, 600, 80)
	if err := tr.Pan(Point{X: 2, Y: -1}); err != nil {
		t.Fatal(err)
	}
	before := tr.State()
	for _, f := range []float64{0, -1, math.Inf(1), math.NaN()} {
		if err := tr.Zoom(f); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("Zoom(%v) err = %v, want ErrInvalidScale", f, err)
		}
		if err := tr.ZoomAt(f, Point{X: 10, Y: 10}); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("ZoomAt(%v) err = %v, want ErrInvalidScale", f, err)
		}
		if got := tr.State(); got != before {
			t.Errorf("Zoom(%v) changed state to %+v", f, got)
		}
	}
	if err := tr.Zoom(2); err != nil {
		t.Fatal(err)
	}
	if tr.Scale() != 160 {
		t.Errorf("scale = %v, want 160", tr.Scale())
	}
}

func TestPan(t *testing.T) {
	tr := mustTransform(t, 100, 100, 10)
	if err := tr.Pan(Point{X: 1.5, Y: -2}); err != nil {
		t.Fatal(err)
	}
	if got := tr.Center(); got != (Point{X: 1.5, Y: -2}) {
		t.Errorf("center = %v", got)
	}
	if err := tr.Pan(Point{X: math.NaN()}); !errors.Is(err, ErrInvalidOffset) {
		t.Errorf("Pan(NaN) err = %v", err)
	}
	if got := tr.Center(); got != (Point{X: 1.5, Y: -2}) {
		t.Errorf("rejected pan moved center to %v", got)
	}
	// Dragging content right by one unit moves the center left by one unit.
	if err := tr.PanPixels(Point{X: 10, Y: 10}); err != nil {
		t.Fatal(err)
	}
	if got := tr.Center(); !samePoint(got, Point{X: 0.5, Y: -1}) {
		t.Errorf("center after drag = %v", got)
	}
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	tr := mustTransform(t, 640, 480, 40)
	px := Point{X: 100, Y: 400}
	before := tr.ToCartesian(px)
	if err := tr.ZoomAt(1.2, px); err != nil {
		t.Fatal(err)
	}
	if got := tr.ToCartesian(px); !samePoint(got, before) {
		t.Errorf("anchor moved from %v to %v", before, got)
	}
	if !scalar.EqualWithinAbs(tr.Scale(), 48, tol) {
		t.Errorf("scale = %v", tr.Scale())
	}
}

func TestResizeAndReset(t *testing.T) {
	if _, err := NewTransform(10, 10, 0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("NewTransform scale 0 err = %v", err)
	}
	tr := mustTransform(t, 10, 10, 5)
	if err := tr.Resize(-1, 3); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("Resize(-1, 3) err = %v", err)
	}
	if err := tr.Resize(300, 200); err != nil {
		t.Fatal(err)
	}
	_ = tr.Zoom(3)
	_ = tr.Pan(Point{X: 4, Y: 4})
	tr.Reset()
	want := ViewState{Scale: 5, Width: 300, Height: 200}
	if got := tr.State(); got != want {
		t.Errorf("after Reset state = %+v, want %+v", got, want)
	}
}
