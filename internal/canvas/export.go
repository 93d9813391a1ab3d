package canvas

import (
	"image/color"
	"io"
	"os"

	"goplot/internal/render"
)

// RenderPNG redraws scene through p onto a white image the size of p's
// viewport and encodes it to w.
func RenderPNG(w io.Writer, p *render.Plotter, scene render.Scene) (render.Report, error) {
	v := p.Transform.State()
	img, err := NewImage(v.Width, v.Height, color.White)
	if err != nil {
		return render.Report{}, err
	}
	rep, err := p.Redraw(img, scene)
	if err != nil {
		return rep, err
	}
	return rep, img.EncodePNG(w)
}

// SavePNG is RenderPNG into a new file at path.
func SavePNG(path string, p *render.Plotter, scene render.Scene) (rep render.Report, err error) {
	f, err := os.Create(path)
	if err != nil {
		return render.Report{}, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return RenderPNG(f, p, scene)
}
