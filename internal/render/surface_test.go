package render

import "fmt"

// recorder is a Surface that logs every call.
type recorder struct {
	w, h  int
	ops   []string
	path  [][2][2]float64 // segments of the current path
	pen   [2]float64
	segs  [][2][2]float64 // stroked segments
	texts []string
}

func newRecorder(w, h int) *recorder { return &recorder{w: w, h: h} }

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) ClearRect(x, y, w, h float64) {
	r.ops = append(r.ops, "clear")
}

func (r *recorder) BeginPath() {
	r.ops = append(r.ops, "begin")
	r.path = nil
}

func (r *recorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, "move")
	r.pen = [2]float64{x, y}
}

func (r *recorder) LineTo(x, y float64) {
	r.ops = append(r.ops, "line")
	r.path = append(r.path, [2][2]float64{r.pen, {x, y}})
	r.pen = [2]float64{x, y}
}

func (r *recorder) Stroke(s Style) {
	r.ops = append(r.ops, fmt.Sprintf("stroke:%v", s.Width))
	r.segs = append(r.segs, r.path...)
	r.path = nil
}

func (r *recorder) FillText(text string, x, y float64, f Font) {
	r.ops = append(r.ops, "text")
	r.texts = append(r.texts, text)
}

func (r *recorder) TextWidth(text string, f Font) float64 {
	return float64(len(text)) * 6
}
