package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/paulmach/orb"

	"quadview/internal/draw"
	"quadview/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

var hoverColor = color.NRGBA{R: 0xFF, G: 0xA5, A: 0xFF}

// layout is the screen geometry shared by View and mouse handling.
type layout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	var lo layout
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
	}
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	lo.mapW = max(10, lo.contentW-lo.sidebarW-1)
	lo.mapH = lo.contentH
	if m.showSidebar {
		lo.mapX = lo.sidebarW + 1
	}
	lo.mapY = headerHeight
	return lo
}

// surface returns an empty braille surface of w x h cells looking at the
// current zoom and pan window.
func (m Model) surface(w, h int) *draw.Braille {
	cw, ch := float64(m.cfg.Width), float64(m.cfg.Height)
	b := draw.NewBraille(w, h, cw, ch)
	vw, vh := cw/m.zoom, ch/m.zoom
	b.SetView(cw/2-vw/2-m.offsetX, ch/2-vh/2-m.offsetY, vw, vh)
	return b
}

// canvas renders the current shape onto a fresh braille surface sized to
// the map area.
func (m Model) canvas(w, h int) *draw.Braille {
	b := m.surface(w, h)
	m.renderer.Render(m.name, b)
	return b
}

// panStep is one arrow-key move at the current zoom.
func (m Model) panStep() float64 {
	return 20 / m.zoom
}

// vertices returns the current shape's corners in absolute canvas coords.
func (m Model) vertices() (geom.Quad, bool) {
	if !m.known {
		return geom.Quad{}, false
	}
	spec, ok := geom.Default(m.kind)
	if !ok {
		return geom.Quad{}, false
	}
	q := spec.Vertices()
	o := m.renderer.Options()
	for i := range q {
		q[i] = orb.Point{q[i][0] + o.OriginX, q[i][1] + float64(m.cfg.Height)/2}
	}
	return q, true
}

func (m Model) renderCanvas(w, h int) string {
	b := m.canvas(w, h)
	// Hover highlight: draw an orange circle at the hovered vertex cell
	if m.hovering && m.hoverVertex >= 0 {
		if q, ok := m.vertices(); ok {
			p := q[m.hoverVertex]
			b.Mark(p[0], p[1], '◯', hoverColor)
		}
	}
	return strings.Join(b.Lines(), "\n")
}

// hover updates the hover state for a mouse position in screen cells.
func (m *Model) hover(x, y int) {
	lo := m.layout()
	if x < lo.mapX || x >= lo.mapX+lo.mapW || y < lo.mapY || y >= lo.mapY+lo.mapH {
		m.hovering = false
		m.hoverVertex = -1
		return
	}
	m.hovering = true
	m.hoverCellX, m.hoverCellY = x-lo.mapX, y-lo.mapY
	b := m.surface(lo.mapW, lo.mapH)
	m.hoverX, m.hoverY = b.Logical(m.hoverCellX, m.hoverCellY)

	// nearest vertex within two cells
	m.hoverVertex = -1
	q, ok := m.vertices()
	if !ok {
		return
	}
	best := 5
	for i, p := range q {
		cx, cy := b.CellOf(p[0], p[1])
		d := abs(cx-m.hoverCellX) + abs(cy-m.hoverCellY)
		if d < best {
			best = d
			m.hoverVertex = i
		}
	}
}

// hoverText is the footer readout, relative to the shape origin.
func (m Model) hoverText() string {
	if !m.hovering {
		return ""
	}
	o := m.renderer.Options()
	x, y := m.hoverX-o.OriginX, m.hoverY-float64(m.cfg.Height)/2
	if m.hoverVertex >= 0 {
		q, _ := m.vertices()
		p := q[m.hoverVertex]
		return fmt.Sprintf("vertex %s %s", vertexNames[m.hoverVertex], fmtPoint(p[0]-o.OriginX, p[1]-float64(m.cfg.Height)/2))
	}
	return fmt.Sprintf("x=%.1f y=%.1f", x, y)
}

// inspect builds the popup text for the current shape.
func (m Model) inspect() (string, bool) {
	if !m.known {
		return "", false
	}
	spec, _ := geom.Default(m.kind)
	q := spec.Vertices()
	bound := q.Bound()
	c := q.Centroid()
	meta := []string{
		fmt.Sprintf("name: %s", m.kind),
	}
	for i, p := range q {
		meta = append(meta, fmt.Sprintf("%s: %s", vertexNames[i], fmtPoint(p[0], p[1])))
	}
	meta = append(meta,
		fmt.Sprintf("bbox: [%.1f, %.1f, %.1f, %.1f]", bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1]),
		fmt.Sprintf("area: %.2f", q.Area()),
		fmt.Sprintf("perimeter: %.2f", q.Perimeter()),
		fmt.Sprintf("winding: %s", winding(q.Winding())),
		fmt.Sprintf("centroid: %s", fmtPoint(c[0], c[1])),
		fmt.Sprintf("simple: %v", q.IsSimple()),
	)
	return strings.Join(meta, "\n"), true
}

func winding(o orb.Orientation) string {
	switch o {
	case orb.CCW:
		return "ccw"
	case orb.CW:
		return "cw"
	}
	return "degenerate"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
