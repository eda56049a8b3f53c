package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"quadview/internal/geom"
	"quadview/internal/render"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.promptMode {
			switch msg.String() {
			case "esc":
				m.promptMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "enter":
				name := strings.ToLower(strings.TrimSpace(m.ta.Value()))
				if name == "" {
					m.status = "prompt: empty"
					return m, nil
				}
				m.promptMode = false
				m.ta.Blur()
				m.setShape(name)
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6":
			m.setShape(geom.Kind(key[0] - '1').String())
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "up":
			m.offsetY -= m.panStep()
		case "down":
			m.offsetY += m.panStep()
		case "left":
			m.offsetX -= m.panStep()
		case "right":
			m.offsetX += m.panStep()
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
		case "p":
			m.promptMode = true
			m.ta.SetValue("")
			m.status = "prompt mode"
			m.ta.Focus()
		case "u":
			if m.cfg.Labels == render.LabelsRaw.String() {
				m.cfg.Labels = render.LabelsConverted.String()
			} else {
				m.cfg.Labels = render.LabelsRaw.String()
			}
			m.rebuildRenderer()
			m.status = "labels: " + m.cfg.Labels
		case "g":
			if m.cfg.Angles == render.AnglesDerived.String() {
				m.cfg.Angles = render.AnglesIllustrative.String()
			} else {
				m.cfg.Angles = render.AnglesDerived.String()
			}
			m.rebuildRenderer()
			m.status = "angles: " + m.cfg.Angles
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				m.status = "view mode"
				break
			}
			if text, ok := m.inspect(); ok {
				m.inspectPopup = text
				m.status = "inspect popup"
			} else {
				m.status = "nothing to inspect"
			}
		case "e":
			m.exportCurrent()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(shapeItem); ok {
					m.setShape(it.kind.String())
				}
			}
		case "esc":
			m.inspectPopup = ""
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
		if m.hovering && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.hoverVertex >= 0 {
			m.status = fmt.Sprintf("%s: %s", m.kind, m.hoverText())
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
