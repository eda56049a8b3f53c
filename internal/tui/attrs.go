package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"quadview/internal/geom"
	"quadview/internal/render"
)

var vertexNames = [4]string{"A", "B", "C", "D"}

// refreshAttrsFromCurrent rebuilds the measurement table for the current shape
func (m *Model) refreshAttrsFromCurrent() {
	rows := m.buildMeasurements()
	if len(rows) == 0 {
		// Do not touch table internals here to avoid re-render during SetColumns
		m.showAttrs = false
		m.status = "no measurements for current shape"
		return
	}
	cols := []table.Column{
		{Title: "measure", Width: 10},
		{Title: "at", Width: 6},
		{Title: "units", Width: 10},
		{Title: "label", Width: 10},
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

// buildMeasurements lists sides, diagonals and angles of the current shape
// as the diagram labels them.
func (m *Model) buildMeasurements() []table.Row {
	if !m.known {
		return nil
	}
	spec, ok := geom.Default(m.kind)
	if !ok {
		return nil
	}
	q := spec.Vertices()
	opts := m.renderer.Options()
	var rows []table.Row
	for i, s := range q.Sides() {
		at := vertexNames[i] + vertexNames[(i+1)%4]
		rows = append(rows, table.Row{"side", at, units(s), render.FormatLength(s, opts)})
	}
	for i, d := range q.Diagonals() {
		at := vertexNames[i] + vertexNames[i+2]
		rows = append(rows, table.Row{"diagonal", at, units(d), render.FormatLength(d, opts)})
	}
	derived := q.InteriorAngles()
	shown := m.renderer.Angles(m.kind)
	for i := range derived {
		rows = append(rows, table.Row{"angle", vertexNames[i], units(derived[i]) + "°", render.FormatAngle(shown[i])})
	}
	rows = append(rows,
		table.Row{"area", "", units(q.Area()), ""},
		table.Row{"perimeter", "", units(q.Perimeter()), render.FormatLength(q.Perimeter(), opts)},
	)
	return rows
}

func units(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func fmtPoint(x, y float64) string {
	return fmt.Sprintf("(%.1f, %.1f)", x, y)
}
