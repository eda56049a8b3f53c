package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"quadview/internal/export"
	"quadview/internal/geom"
	"quadview/internal/render"
)

type shapeItem struct {
	kind geom.Kind
}

func (s shapeItem) Title() string       { return fmt.Sprintf("%d %s", int(s.kind)+1, s.kind) }
func (s shapeItem) Description() string { return "" }
func (s shapeItem) FilterValue() string { return s.kind.String() }

func shapeItems() []list.Item {
	var items []list.Item
	for _, k := range geom.Kinds() {
		items = append(items, shapeItem{kind: k})
	}
	return items
}

// setShape switches the canvas to name. Unknown names are kept and draw
// nothing.
func (m *Model) setShape(name string) {
	m.name = name
	m.kind, m.known = geom.ParseKind(name)
	m.inspectPopup = ""
	m.hovering = false
	if m.known {
		m.l.Select(int(m.kind))
		m.status = "shape: " + name
	} else {
		m.status = fmt.Sprintf("unknown shape %q", name)
		m.log.Warn("unknown shape", "name", name)
	}
	// If the table is open, rebuild it for the new shape
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// rebuildRenderer applies config changes made from the keyboard.
func (m *Model) rebuildRenderer() {
	m.renderer = render.New(m.cfg.RenderOptions())
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// exportCurrent writes every export format for the current shape.
func (m *Model) exportCurrent() {
	if !m.known {
		m.status = "nothing to export"
		return
	}
	paths, err := export.All(m.exportDir, m.kind, m.cfg)
	if err != nil {
		m.status = "export error: " + err.Error()
		m.log.Error("export failed", "shape", m.kind, "err", err)
		return
	}
	m.log.Info("exported", "shape", m.kind, "files", len(paths))
	m.status = fmt.Sprintf("exported %s.{%s} to %s", m.kind, strings.Join(trimDots(export.Formats), ","), m.exportDir)
}

func trimDots(exts []string) []string {
	out := make([]string, len(exts))
	for i, e := range exts {
		out[i] = strings.TrimPrefix(e, ".")
	}
	return out
}
