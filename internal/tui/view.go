package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"goplot/internal/canvas"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Header
	header := titleStyle.Render(" goplot ─ y = " + m.formula.String() + " ")
	header = lipgloss.NewStyle().Width(lay.contentW).MaxHeight(headerHeight).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.editing:
		m.ta.SetWidth(lay.mapW)
		editor := lipgloss.JoinVertical(lipgloss.Left, dimStyle.Render("y ="), m.ta.View())
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(editor)
	case m.showValues:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lay.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.mapH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, box)
	default:
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(m.renderPlot(lay.mapW, lay.mapH))
	}

	// view-state popup overlays the left of the body
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}
	if m.popup != "" && !m.editing {
		box := boxStyle.MaxWidth(min(56, lay.contentW)).Render(m.popup)
		body = lipgloss.Place(lay.contentW, lay.contentH, lipgloss.Left, lipgloss.Center, box)
	}

	// Footer / help
	st := dimStyle
	if m.errMsg {
		st = errStyle
	}
	status := st.Render(" " + m.status + " ")
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.5g y=%.5g  ", m.hover.X, m.hover.Y))
	}
	top := lipgloss.NewStyle().Width(lay.contentW).MaxHeight(1).Render(lipgloss.JoinHorizontal(lipgloss.Bottom,
		status, lipgloss.PlaceHorizontal(max(0, lay.contentW-lipgloss.Width(status)), lipgloss.Right, coords)))
	help := lipgloss.NewStyle().MaxWidth(lay.contentW).Render(m.renderHelp())
	footer := lipgloss.JoinVertical(lipgloss.Left, top, help)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

// renderPlot draws one frame into a braille canvas of w x h cells.
func (m Model) renderPlot(w, h int) string {
	b, err := canvas.NewBraille(w, h)
	if err != nil {
		return errStyle.Render(err.Error())
	}
	if _, err := m.plot.Redraw(b, m.scene()); err != nil {
		return errStyle.Render(err.Error())
	}
	return b.Render()
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"q quit",
		"h help",
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"f fit",
		"e edit",
		"Tab files",
		"v values",
		"g grid",
		"t labels",
		"n nice/ratio",
		"i info",
		"s save",
	}
	return dimStyle.Render(" " + strings.Join(keys, "  "))
}
