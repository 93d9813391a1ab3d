package render

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"goplot/internal/plane"
)

func view(cx, cy float64) plane.ViewState {
	return plane.ViewState{Center: plane.Point{X: cx, Y: cy}, Scale: 80, Width: 800, Height: 600}
}

func TestGridlinesEvenlySpaced(t *testing.T) {
	g := NewGrid(newRecorder(800, 600), view(0, 0), plane.NiceLabels{}, DefaultTheme())
	gl := g.Gridlines()
	if gl.Interval.Spatial != 0.5 {
		t.Fatalf("Spatial = %v", gl.Interval.Spatial)
	}
	if len(gl.X) != 21 {
		t.Errorf("got %d vertical gridlines, want 21", len(gl.X))
	}
	if len(gl.Y) != 15 {
		t.Errorf("got %d horizontal gridlines, want 15", len(gl.Y))
	}
	for i := 1; i < len(gl.X); i++ {
		if d := gl.X[i] - gl.X[i-1]; !scalar.EqualWithinAbs(d, 40, 1e-9) {
			t.Fatalf("x spacing %v at %d", d, i)
		}
	}
}

func TestLabelsAlignWithGridlines(t *testing.T) {
	for _, c := range []plane.Point{{}, {X: 0.3, Y: -1.7}, {X: -12.25, Y: 4}} {
		v := view(c.X, c.Y)
		g := NewGrid(newRecorder(800, 600), v, plane.NiceLabels{}, DefaultTheme())
		gl := g.Gridlines()
		prec := gl.Interval.Precision()
		want := map[string]bool{}
		for _, x := range gl.X {
			want[FormatValue(v.ToCartesian(plane.Point{X: x}).X, prec)] = true
		}
		for _, y := range gl.Y {
			want[FormatValue(v.ToCartesian(plane.Point{Y: y}).Y, prec)] = true
		}
		labels := g.ScaleLabels()
		if len(labels) == 0 {
			t.Fatalf("center %v: no labels", c)
		}
		for _, l := range labels {
			if !want[l.Text] {
				t.Errorf("center %v: label %q is not at a gridline", c, l.Text)
			}
			val, err := strconv.ParseFloat(l.Text, 64)
			if err != nil {
				t.Fatalf("label %q: %v", l.Text, err)
			}
			if val == 0 {
				t.Errorf("center %v: origin label was not skipped", c)
			}
			if k := val / gl.Interval.Spatial; !scalar.EqualWithinAbs(k, math.Round(k), 1e-6) {
				t.Errorf("center %v: label %v is not a multiple of %v", c, val, gl.Interval.Spatial)
			}
		}
	}
}

func TestLabelsStayOnScreen(t *testing.T) {
	v := view(1000, 1000)
	g := NewGrid(newRecorder(800, 600), v, plane.NiceLabels{}, DefaultTheme())
	for _, l := range g.ScaleLabels() {
		if l.At.X < 0 || l.At.X > 800 || l.At.Y < 0 || l.At.Y > 600 {
			t.Errorf("label %q placed off screen at %v", l.Text, l.At)
		}
	}
}

func TestDrawAxes(t *testing.T) {
	r := newRecorder(800, 600)
	if err := NewGrid(r, view(0, 0), nil, DefaultTheme()).DrawAxes(); err != nil {
		t.Fatal(err)
	}
	want := [][2][2]float64{
		{{0, 300}, {800, 300}},
		{{400, 0}, {400, 600}},
	}
	if len(r.segs) != len(want) {
		t.Fatalf("got %d segments", len(r.segs))
	}
	for i := range want {
		if r.segs[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, r.segs[i], want[i])
		}
	}
}

func TestGridDegenerateViewport(t *testing.T) {
	r := newRecorder(0, 0)
	g := NewGrid(r, plane.ViewState{Scale: 50}, plane.RatioLabels{}, DefaultTheme())
	if err := g.DrawGrid(); err != nil {
		t.Fatal(err)
	}
	if err := g.DrawScaleIndicators(); err != nil {
		t.Fatal(err)
	}
	if len(r.segs) != 0 || len(r.texts) != 0 {
		t.Errorf("degenerate viewport drew %d segments and %d labels", len(r.segs), len(r.texts))
	}
}

func TestGridWithoutSurface(t *testing.T) {
	g := NewGrid(nil, view(0, 0), nil, DefaultTheme())
	for name, fn := range map[string]func() error{
		"axes":   g.DrawAxes,
		"grid":   g.DrawGrid,
		"labels": g.DrawScaleIndicators,
	} {
		if err := fn(); !errors.Is(err, ErrSurfaceUnavailable) {
			t.Errorf("%s: err = %v", name, err)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{1.5, 1, "1.5"},
		{-0.00001, 2, "0.00"},
		{2.0000000001, 0, "2"},
		{-3.25, 2, "-3.25"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v, tt.prec); got != tt.want {
			t.Errorf("FormatValue(%v, %d) = %q, want %q", tt.v, tt.prec, got, tt.want)
		}
	}
}
