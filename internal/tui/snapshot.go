package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"goplot/internal/canvas"
	"goplot/internal/formula"
	"goplot/internal/plane"
	"goplot/internal/render"
)

const (
	snapshotWidth  = 800
	snapshotHeight = 600
)

type snapshotMsg struct {
	path string
	err  error
}

// snapshot saves the current view as a PNG off the update loop. The PNG
// shows the same horizontal extent as the terminal plot.
func (m Model) snapshot() tea.Cmd {
	v := m.tr.State()
	ls := m.plot.Labels
	src := m.formula.String()
	segs := m.segs
	grid, labels := m.showGrid, m.showLabels
	path := filepath.Join(m.cwd, "goplot-"+time.Now().Format("20060102-150405")+".png")
	return func() tea.Msg {
		// the formula environment is not shared with the running view
		f, err := formula.Compile(src)
		if err != nil {
			return snapshotMsg{err: err}
		}
		err = writeSnapshot(path, v, ls, render.Scene{Func: f.Eval, Lines: segs, Grid: grid, Labels: labels})
		return snapshotMsg{path: path, err: err}
	}
}

func writeSnapshot(path string, v plane.ViewState, ls plane.LabelScale, scene render.Scene) error {
	if v.Width == 0 {
		return errors.New("empty view")
	}
	tr, err := plane.NewTransform(snapshotWidth, snapshotHeight, v.Scale*snapshotWidth/float64(v.Width))
	if err != nil {
		return err
	}
	if err := tr.SetCenter(v.Center); err != nil {
		return err
	}
	if _, err := canvas.SavePNG(path, render.NewPlotter(tr, ls), scene); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}
