package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	}

	// Header
	title := " quadview ─ " + m.name + " "
	header := titleStyle.Render(title)
	header = lipgloss.NewStyle().Width(lo.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View())
	}

	var mapView string
	if m.showAttrs {
		// Render the measurement table centered in the map area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lo.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.mapH-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, attrsBox)
	} else {
		var canvas string
		if m.promptMode {
			m.ta.SetWidth(min(lo.mapW, 60))
			canvas = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, boxStyle.Render(m.ta.View()))
		} else {
			canvas = m.renderCanvas(lo.mapW, lo.mapH)
		}
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(canvas)
	}

	// Inspect popup replaces the body while open
	body := mapView
	if m.inspectPopup != "" && !m.showAttrs {
		maxPopupW := max(20, min(48, lo.contentW/2))
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		body = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Left, lipgloss.Center, box)
	}
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", body)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if t := m.hoverText(); t != "" {
		coords = dimStyle.Render("  " + t + "  ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"1-6 shape",
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"Tab sidebar",
		"p prompt",
		"u units",
		"g angles",
		"a table",
		"i inspect",
		"e export",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
