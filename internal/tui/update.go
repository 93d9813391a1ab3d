package tui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"goplot/internal/formula"
	"goplot/internal/geom"
	"goplot/internal/plane"
)

// Update is the only place the view state changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.fitPending {
			m.fitPending = false
			m.fit()
		}
		if m.showValues {
			m.refreshValues()
		}
	case snapshotMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("snapshot: %w", msg.err))
		} else {
			log.Printf("snapshot: %s", msg.path)
			m.setStatus("saved %s", msg.path)
		}
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.editing {
		switch msg.String() {
		case "esc":
			m.editing = false
			m.ta.Blur()
			m.setStatus("edit cancelled")
			return m, nil
		case "enter":
			f, err := formula.Compile(strings.TrimSpace(m.ta.Value()))
			if err != nil {
				m.setError(err)
				return m, nil
			}
			log.Printf("expression: %s", f)
			m.formula = f
			m.editing = false
			m.ta.Blur()
			m.setStatus("y = %s", f)
			if m.showValues {
				m.refreshValues()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		return m, cmd
	}
	key := msg.String()
	if m.showSidebar {
		switch key {
		case "up", "down", "pgup", "pgdown", "home", "end", "/":
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
	}
	if m.showValues {
		switch key {
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
	}
	viewChanged := false
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "down", "left", "right":
		m.pan(key)
		viewChanged = true
	case "+", "=":
		m.zoom(zoomStep)
		viewChanged = true
	case "-", "_":
		m.zoom(1 / zoomStep)
		viewChanged = true
	case "0":
		m.tr.Reset()
		m.setStatus("view reset")
		viewChanged = true
	case "f":
		m.fit()
		viewChanged = true
	case "e":
		m.editing = true
		m.ta.SetValue(m.formula.String())
		m.ta.Focus()
		m.setStatus("edit expression")
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
		}
		m.resize()
		viewChanged = true
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				_ = m.loadPath(it.path) // error already on the status line
			}
		}
	case "v":
		m.showValues = !m.showValues
		if m.showValues {
			m.refreshValues()
		}
	case "g":
		m.showGrid = !m.showGrid
		m.setStatus("grid: %v", m.showGrid)
	case "t":
		m.showLabels = !m.showLabels
		m.setStatus("labels: %v", m.showLabels)
	case "n":
		if m.plot.Labels.Name() == "nice" {
			m.plot.Labels = plane.RatioLabels{Divisor: 100}
		} else {
			m.plot.Labels = plane.NiceLabels{}
		}
		m.setStatus("label scale: %s", m.plot.Labels.Name())
		viewChanged = true
	case "i":
		if m.popup != "" {
			m.popup = ""
		} else {
			m.popup = m.describeView()
		}
	case "s":
		m.setStatus("saving snapshot…")
		return m, m.snapshot()
	case "h":
		m.helpVisible = !m.helpVisible
	}
	if viewChanged {
		if m.popup != "" {
			m.popup = m.describeView()
		}
		if m.showValues {
			m.refreshValues()
		}
	}
	return m, nil
}

// pan moves the view one spatial interval in the arrow's direction.
func (m *Model) pan(key string) {
	step := plane.PlanInterval(m.tr.State(), m.plot.Labels).Spatial
	var d plane.Point
	switch key {
	case "up":
		d.Y = step
	case "down":
		d.Y = -step
	case "left":
		d.X = -step
	case "right":
		d.X = step
	}
	if err := m.tr.Pan(d); err != nil {
		m.setError(err)
		return
	}
	c := m.tr.Center()
	m.setStatus("center: (%.4g, %.4g)", c.X, c.Y)
}

func (m *Model) zoom(factor float64) {
	if err := m.tr.Zoom(factor); err != nil {
		m.setError(fmt.Errorf("zoom rejected: %w", err))
		return
	}
	m.setStatus("scale: %.4g px/unit", m.tr.Scale())
}

func (m *Model) fit() {
	if m.annot.Empty() {
		m.setError(errors.New("fit: no annotations loaded"))
		return
	}
	if err := geom.Fit(m.tr, m.annot.BBox); err != nil {
		m.setError(fmt.Errorf("fit: %w", err))
		return
	}
	m.setStatus("fitted to annotations")
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	p, inside := m.cellToMicro(msg.X, msg.Y)
	m.hovering = inside
	if inside {
		m.hover = m.tr.ToCartesian(p)
	}
	switch {
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	case !inside || m.editing || m.showValues:
		return
	case msg.Button == tea.MouseButtonWheelUp:
		m.zoomAt(zoomStep, p)
	case msg.Button == tea.MouseButtonWheelDown:
		m.zoomAt(1/zoomStep, p)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = true
		m.dragFrom = p
	case msg.Action == tea.MouseActionMotion && m.dragging:
		if err := m.tr.PanPixels(p.Sub(m.dragFrom)); err != nil {
			m.setError(err)
			return
		}
		m.dragFrom = p
		m.hover = m.tr.ToCartesian(p)
	}
}

func (m *Model) zoomAt(factor float64, p plane.Point) {
	if err := m.tr.ZoomAt(factor, p); err != nil {
		m.setError(fmt.Errorf("zoom rejected: %w", err))
		return
	}
	m.setStatus("scale: %.4g px/unit", m.tr.Scale())
}

func (m Model) describeView() string {
	v := m.tr.State()
	iv := plane.PlanInterval(v, m.plot.Labels)
	meta := []string{
		fmt.Sprintf("y = %s", m.formula),
		fmt.Sprintf("center: (%.6g, %.6g)", v.Center.X, v.Center.Y),
		fmt.Sprintf("scale: %.6g px/unit", v.Scale),
		fmt.Sprintf("viewport: %dx%d px", v.Width, v.Height),
		fmt.Sprintf("x range: ±%g", v.XAxisRange()),
		fmt.Sprintf("y range: ±%g", v.YAxisRange()),
		fmt.Sprintf("interval: %g (labels %g, %s)", iv.Spatial, iv.Numeric, m.plot.Labels.Name()),
		fmt.Sprintf("origin visible: %v", v.IsOriginVisible()),
	}
	if m.selPath != "" {
		b := m.annot.BBox
		meta = append(meta, fmt.Sprintf("annotations: %s [%.4g, %.4g, %.4g, %.4g]", m.selPath, b.MinX, b.MinY, b.MaxX, b.MaxY))
	}
	return strings.Join(meta, "\n")
}
