package canvas

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"goplot/internal/render"
)

// Braille is a terminal raster: every text cell carries a 2x4 grid of
// micro pixels drawn as a Unicode braille glyph. Stroke width is ignored;
// a dot is the finest mark the terminal can show.
type Braille struct {
	w, h int          // in cells
	m    [][]uint8    // per-cell 8-bit mask
	ink  [][]string   // per-cell color of the last stroke, "" for default
	text [][]rune     // label overlay, 0 where empty
	tint [][]string   // label color per cell
	segs [][4]float64 // current path
	pen  [2]float64
}

// NewBraille returns a blank surface of cols x rows cells.
func NewBraille(cols, rows int) (*Braille, error) {
	if cols < 0 || rows < 0 {
		return nil, fmt.Errorf("%w: %dx%d cells", render.ErrSurfaceUnavailable, cols, rows)
	}
	b := &Braille{w: cols, h: rows}
	b.m = make([][]uint8, rows)
	b.ink = make([][]string, rows)
	b.text = make([][]rune, rows)
	b.tint = make([][]string, rows)
	for i := 0; i < rows; i++ {
		b.m[i] = make([]uint8, cols)
		b.ink[i] = make([]string, cols)
		b.text[i] = make([]rune, cols)
		b.tint[i] = make([]string, cols)
	}
	return b, nil
}

// Size is the micro-pixel resolution.
func (b *Braille) Size() (int, int) { return b.w * 2, b.h * 4 }

var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *Braille) setPixel(mx, my int, ink string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
	b.ink[cy][cx] = ink
}

func (b *Braille) clearPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] &^= brailleBits[rx][ry]
	b.text[cy][cx] = 0
	if b.m[cy][cx] == 0 {
		b.ink[cy][cx] = ""
	}
}

// Pixel reports whether the micro pixel at (mx, my) is set.
func (b *Braille) Pixel(mx, my int) bool {
	if mx < 0 || my < 0 || mx/2 >= b.w || my/4 >= b.h {
		return false
	}
	return b.m[my/4][mx/2]&brailleBits[mx%2][my%4] != 0
}

// drawLineMicro draws a line on the microgrid using Bresenham. With dash > 0
// only every other run of dash pixels is set.
func (b *Braille) drawLineMicro(x0, y0, x1, y1, dash int, ink string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for n := 0; ; n++ {
		if dash <= 0 || (n/dash)%2 == 0 {
			b.setPixel(x0, y0, ink)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *Braille) ClearRect(x, y, w, h float64) {
	x0, y0 := int(math.Max(0, math.Floor(x))), int(math.Max(0, math.Floor(y)))
	mw, mh := b.Size()
	x1, y1 := min(mw, int(math.Ceil(x+w))), min(mh, int(math.Ceil(y+h)))
	for my := y0; my < y1; my++ {
		for mx := x0; mx < x1; mx++ {
			b.clearPixel(mx, my)
		}
	}
}

func (b *Braille) BeginPath() { b.segs = b.segs[:0] }

func (b *Braille) MoveTo(x, y float64) { b.pen = [2]float64{x, y} }

func (b *Braille) LineTo(x, y float64) {
	b.segs = append(b.segs, [4]float64{b.pen[0], b.pen[1], x, y})
	b.pen = [2]float64{x, y}
}

// Stroke rasterises the current path clipped to the surface.
func (b *Braille) Stroke(s render.Style) {
	mw, mh := b.Size()
	if mw == 0 || mh == 0 {
		b.segs = b.segs[:0]
		return
	}
	ink := hexColor(s.Color)
	dash := int(math.Round(s.Dash))
	for _, sg := range b.segs {
		x0, y0, x1, y1, ok := clipSegment(sg[0], sg[1], sg[2], sg[3], 0, 0, float64(mw-1), float64(mh-1))
		if !ok {
			continue
		}
		b.drawLineMicro(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), dash, ink)
	}
	b.segs = b.segs[:0]
}

// FillText writes text into whole cells; the baseline sits on the bottom
// row of the cell containing y-1.
func (b *Braille) FillText(text string, x, y float64, f render.Font) {
	cy := int(math.Floor((y - 1) / 4))
	if cy < 0 || cy >= b.h {
		return
	}
	cx := int(math.Floor(x / 2))
	ink := hexColor(f.Color)
	for _, r := range text {
		if cx >= 0 && cx < b.w {
			b.text[cy][cx] = r
			b.tint[cy][cx] = ink
		}
		cx++
	}
}

func (b *Braille) TextWidth(text string, f render.Font) float64 {
	return float64(2 * len([]rune(text)))
}

func (b *Braille) cell(x, y int) (rune, string) {
	if r := b.text[y][x]; r != 0 {
		return r, b.tint[y][x]
	}
	if mask := b.m[y][x]; mask != 0 {
		return rune(0x2800 + int(mask)), b.ink[y][x]
	}
	return ' ', ""
}

// Lines returns the plain glyph rows without color.
func (b *Braille) Lines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x], _ = b.cell(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// Render returns the rows joined by newlines, colored with lipgloss. Runs of
// cells that share a color are styled together.
func (b *Braille) Render() string {
	rows := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		runInk := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runInk == "" {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runInk)).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			r, ink := b.cell(x, y)
			if r == ' ' {
				ink = runInk
			}
			if ink != runInk {
				flush()
				runInk = ink
			}
			run = append(run, r)
		}
		flush()
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

func hexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, bl, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
