package canvas

import (
	"bytes"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"goplot/internal/plane"
	"goplot/internal/render"
)

func TestRenderPNG(t *testing.T) {
	tr, err := plane.NewTransform(200, 100, 20)
	if err != nil {
		t.Fatal(err)
	}
	p := render.NewPlotter(tr, plane.NiceLabels{})
	var buf bytes.Buffer
	rep, err := RenderPNG(&buf, p, render.Scene{Func: math.Sin, Grid: true, Labels: true})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Gaps != 0 || len(rep.Gridlines.X) == 0 {
		t.Errorf("report = %+v", rep)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("bounds = %v", b)
	}
}

func TestRenderPNGEmptyViewport(t *testing.T) {
	tr, err := plane.NewTransform(0, 0, 20)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := RenderPNG(&buf, render.NewPlotter(tr, plane.NiceLabels{}), render.Scene{}); err == nil {
		t.Error("rendered a 0x0 image")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes", buf.Len())
	}
}

func TestSavePNG(t *testing.T) {
	tr, err := plane.NewTransform(64, 64, 8)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "plot.png")
	if _, err := SavePNG(path, render.NewPlotter(tr, plane.NiceLabels{}), render.Scene{Grid: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := SavePNG(filepath.Join(t.TempDir(), "no", "such", "dir.png"), render.NewPlotter(tr, plane.NiceLabels{}), render.Scene{}); err == nil {
		t.Error("saved into a missing directory")
	}
}
