package tui

import (
	"fmt"
	"log"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"goplot/internal/formula"
	"goplot/internal/geom"
	"goplot/internal/plane"
	"goplot/internal/render"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
	zoomStep     = 1.2
)

// Options seed a Model.
type Options struct {
	Expr     string           // defaults to sin(x)
	Scale    float64          // micro-pixels per unit, defaults to 10
	Center   plane.Point      // initial view center
	Labels   plane.LabelScale // defaults to NiceLabels
	Annotate string           // optional annotation file
	Fit      bool             // fit the annotations once the size is known
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool
	fitPending  bool

	tr      *plane.Transform
	plot    *render.Plotter
	formula *formula.Formula

	showGrid   bool
	showLabels bool

	status string
	errMsg bool

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Annotations
	annot geom.Data
	segs  []plane.Segment

	// expression editor
	editing bool
	ta      textarea.Model

	// view-state popup
	popup string

	// hover state
	hovering bool
	hover    plane.Point

	// left-button drag, in micro-pixels
	dragging bool
	dragFrom plane.Point

	// values table
	showValues bool
	tbl        table.Model
}

func New(o Options) (Model, error) {
	if o.Expr == "" {
		o.Expr = "sin(x)"
	}
	if o.Scale == 0 {
		o.Scale = 10
	}
	if o.Labels == nil {
		o.Labels = plane.NiceLabels{}
	}
	f, err := formula.Compile(o.Expr)
	if err != nil {
		return Model{}, err
	}
	tr, err := plane.NewTransform(0, 0, o.Scale)
	if err != nil {
		return Model{}, err
	}
	if err := tr.SetCenter(o.Center); err != nil {
		return Model{}, err
	}
	p := render.NewPlotter(tr, o.Labels)
	p.Theme = plotTheme()
	m := Model{
		helpVisible: true,
		tr:          tr,
		plot:        p,
		formula:     f,
		showGrid:    true,
		showLabels:  true,
		status:      "goplot ready",
		fitPending:  o.Fit,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Annotations"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Expression in x, e.g. sin(x) * x^2. Enter to plot; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.ShowLineNumbers = false
	m.ta.SetWidth(50)
	m.ta.SetHeight(3)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	if o.Annotate != "" {
		if err := m.loadPath(o.Annotate); err != nil {
			return Model{}, err
		}
	}
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// layout is the cell geometry of one frame.
type layout struct {
	contentW, contentH int
	mapX, mapY         int // top-left cell of the plot
	mapW, mapH         int // plot size in cells
}

func (m Model) layout() layout {
	var lay layout
	lay.contentH = max(4, m.height-headerHeight-footerHeight)
	lay.contentW = max(10, m.width)
	lay.mapW = lay.contentW
	if m.showSidebar {
		lay.mapX = sidebarWidth + 1
		lay.mapW -= lay.mapX
	}
	lay.mapW = max(10, lay.mapW)
	lay.mapY = headerHeight
	lay.mapH = lay.contentH
	return lay
}

// resize fits the transform viewport to the braille plot: each cell holds
// 2x4 micro-pixels.
func (m *Model) resize() {
	lay := m.layout()
	if err := m.tr.Resize(lay.mapW*2, lay.mapH*4); err != nil {
		m.setError(err)
	}
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentH-2)
	}
}

// cellToMicro maps a terminal cell to the micro-pixel at its center.
// ok is false outside the plot.
func (m Model) cellToMicro(x, y int) (plane.Point, bool) {
	lay := m.layout()
	cx, cy := x-lay.mapX, y-lay.mapY
	if cx < 0 || cx >= lay.mapW || cy < 0 || cy >= lay.mapH {
		return plane.Point{}, false
	}
	return plane.Point{X: float64(cx*2) + 1, Y: float64(cy*4) + 2}, true
}

func (m Model) scene() render.Scene {
	return render.Scene{
		Func:   m.formula.Eval,
		Lines:  m.segs,
		Grid:   m.showGrid,
		Labels: m.showLabels,
	}
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.errMsg = false
}

func (m *Model) setError(err error) {
	log.Printf("error: %v", err)
	m.status = err.Error()
	m.errMsg = true
}
