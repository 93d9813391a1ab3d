package tui

import (
	"math"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
	"gonum.org/v1/gonum/floats/scalar"

	"goplot/internal/plane"
	"goplot/internal/render"
)

// valueRows samples f at every vertical gridline of v.
func valueRows(v plane.ViewState, ls plane.LabelScale, f render.Func) []table.Row {
	gl := render.NewGrid(nil, v, ls, render.Theme{}).Gridlines()
	prec := gl.Interval.Precision()
	rows := make([]table.Row, 0, len(gl.X))
	for _, px := range gl.X {
		// evaluate at the value the label shows
		x := scalar.Round(v.ToCartesian(plane.Point{X: px}).X, prec)
		if x == 0 {
			x = 0 // no negative zero
		}
		y := f(x)
		fy := "undefined"
		if !math.IsNaN(y) && !math.IsInf(y, 0) {
			fy = strconv.FormatFloat(y, 'g', 6, 64)
		}
		rows = append(rows, table.Row{render.FormatValue(x, prec), fy})
	}
	return rows
}

// refreshValues rebuilds the values table for the current view and formula.
func (m *Model) refreshValues() {
	rows := valueRows(m.tr.State(), m.plot.Labels, m.formula.Eval)
	if len(rows) == 0 {
		m.showValues = false
		m.setStatus("no gridlines in view")
		return
	}
	// clear rows before columns so the table never sees a mismatch
	m.tbl.SetRows(nil)
	m.tbl.SetColumns([]table.Column{
		{Title: "x", Width: 14},
		{Title: "f(x) = " + m.formula.String(), Width: 24},
	})
	m.tbl.SetRows(rows)
}
