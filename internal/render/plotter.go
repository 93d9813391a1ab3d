package render

import "goplot/internal/plane"

// Scene is what one frame shows.
type Scene struct {
	Func   Func            // nil draws no curve
	Lines  []plane.Segment // Cartesian annotations
	Grid   bool
	Labels bool
}

// Report summarises a finished frame.
type Report struct {
	View      plane.ViewState
	Gridlines Gridlines
	Gaps      int
	Breaks    int
}

// Plotter runs redraw passes against a shared transform.
type Plotter struct {
	Transform *plane.Transform
	Labels    plane.LabelScale
	Theme     Theme
}

// NewPlotter returns a plotter with the default theme.
func NewPlotter(t *plane.Transform, ls plane.LabelScale) *Plotter {
	return &Plotter{Transform: t, Labels: ls, Theme: DefaultTheme()}
}

// Redraw clears s and draws grid, axes, labels, curve and annotations in
// that order, all against one snapshot of the view.
func (p *Plotter) Redraw(s Surface, scene Scene) (Report, error) {
	if s == nil || p.Transform == nil {
		return Report{}, ErrSurfaceUnavailable
	}
	v := p.Transform.State()
	rep := Report{View: v}
	w, h := s.Size()
	s.ClearRect(0, 0, float64(w), float64(h))

	g := NewGrid(s, v, p.Labels, p.Theme)
	rep.Gridlines = g.Gridlines()
	if scene.Grid {
		if err := g.DrawGrid(); err != nil {
			return rep, err
		}
	}
	if err := g.DrawAxes(); err != nil {
		return rep, err
	}
	if scene.Labels {
		if err := g.DrawScaleIndicators(); err != nil {
			return rep, err
		}
	}

	c := NewCurve(s, v, p.Theme)
	if scene.Func != nil {
		tr, err := c.DrawFunction(scene.Func)
		if err != nil {
			return rep, err
		}
		rep.Gaps, rep.Breaks = tr.Gaps, tr.Breaks
	}
	for _, l := range scene.Lines {
		if err := c.DrawLine(l.A, l.B); err != nil {
			return rep, err
		}
	}
	return rep, nil
}
