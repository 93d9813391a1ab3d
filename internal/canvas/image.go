package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"goplot/internal/render"
)

// Image is an RGBA raster surface for PNG export. Paths are stroked by
// draw2d; labels use the fixed 7x13 face, so Font.Size is ignored.
type Image struct {
	img  *image.RGBA
	gc   *draw2dimg.GraphicContext
	bg   color.Color
	pen  [2]float64
	open bool // the gc path ends at pen
}

// NewImage returns a width x height image filled with bg.
func NewImage(width, height int, bg color.Color) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d pixels", render.ErrSurfaceUnavailable, width, height)
	}
	if bg == nil {
		bg = color.White
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	s := &Image{img: img, gc: draw2dimg.NewGraphicContext(img), bg: bg}
	s.ClearRect(0, 0, float64(width), float64(height))
	return s, nil
}

func (s *Image) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Image) Image() *image.RGBA { return s.img }

func (s *Image) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.NewUniform(s.bg), image.Point{}, draw.Src)
}

func (s *Image) BeginPath() {
	s.gc.BeginPath()
	s.open = false
}

func (s *Image) MoveTo(x, y float64) {
	s.pen = [2]float64{x, y}
	s.open = false
}

// LineTo clips each segment to a margin around the image before handing it
// to draw2d, whose fixed-point rasteriser overflows on far-away points.
func (s *Image) LineTo(x, y float64) {
	w, h := s.Size()
	const margin = 16
	x0, y0, x1, y1, ok := clipSegment(s.pen[0], s.pen[1], x, y, -margin, -margin, float64(w+margin), float64(h+margin))
	if ok {
		if !s.open || x0 != s.pen[0] || y0 != s.pen[1] {
			s.gc.MoveTo(x0, y0)
		}
		s.gc.LineTo(x1, y1)
	}
	s.open = ok && x1 == x && y1 == y
	s.pen = [2]float64{x, y}
}

func (s *Image) Stroke(st render.Style) {
	c := st.Color
	if c == nil {
		c = color.Black
	}
	s.gc.SetStrokeColor(c)
	s.gc.SetLineWidth(math.Max(st.Width, 0.5))
	if st.Dash > 0 {
		s.gc.SetLineDash([]float64{st.Dash, st.Dash}, 0)
	} else {
		s.gc.SetLineDash(nil, 0)
	}
	s.gc.Stroke()
	s.gc.BeginPath()
	s.open = false
}

func (s *Image) FillText(text string, x, y float64, f render.Font) {
	c := f.Color
	if c == nil {
		c = color.Black
	}
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(int(math.Round(x))), Y: fixed.I(int(math.Round(y)))},
	}
	d.DrawString(text)
}

func (s *Image) TextWidth(text string, f render.Font) float64 {
	return float64(font.MeasureString(basicfont.Face7x13, text).Ceil())
}

// EncodePNG writes the raster as PNG.
func (s *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}
