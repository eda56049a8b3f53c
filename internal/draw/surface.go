// Package draw defines the 2D drawing surface the shape renderer paints on,
// and the terminal, raster, SVG and recording implementations of it.
package draw

import (
	"image/color"
	"math"
)

// Font selects label text size and weight. Surfaces that cannot honour a
// size pick the closest face they have.
type Font struct {
	Size float64
	Bold bool
}

// Surface is a canvas-2D style capability set. Stroke and Fill keep the
// current path; BeginPath discards it. Save and Restore cover translation,
// line width, colors and dash pattern.
type Surface interface {
	Size() (w, h float64)
	Clear()
	Save()
	Restore()
	Translate(dx, dy float64)
	SetLineWidth(w float64)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetDash(pattern ...float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Arc(x, y, r, a0, a1 float64)
	Stroke()
	Fill()
	FillText(text string, x, y float64, f Font)
}

type point struct{ x, y float64 }

// pen is the graphics state stack shared by the surfaces that flatten paths
// themselves (braille and SVG).
type pen struct {
	tx, ty    float64
	lineWidth float64
	stroke    color.Color
	fill      color.Color
	dash      []float64
}

type pathState struct {
	pen   pen
	stack []pen

	// subpaths in absolute (translated) coordinates
	subpaths [][]point
	closed   []bool
}

func newPathState() pathState {
	return pathState{pen: defaultPen()}
}

func defaultPen() pen {
	return pen{lineWidth: 1, stroke: color.Black, fill: color.Black}
}

func (s *pathState) reset() {
	s.pen = defaultPen()
	s.stack = s.stack[:0]
	s.subpaths = nil
	s.closed = nil
}

func (s *pathState) Save() {
	p := s.pen
	p.dash = append([]float64(nil), s.pen.dash...)
	s.stack = append(s.stack, p)
}

func (s *pathState) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.pen = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *pathState) Translate(dx, dy float64) {
	s.pen.tx += dx
	s.pen.ty += dy
}

func (s *pathState) SetLineWidth(w float64)       { s.pen.lineWidth = w }
func (s *pathState) SetStrokeColor(c color.Color) { s.pen.stroke = c }
func (s *pathState) SetFillColor(c color.Color)   { s.pen.fill = c }

func (s *pathState) SetDash(pattern ...float64) {
	s.pen.dash = append(s.pen.dash[:0:0], pattern...)
}

func (s *pathState) BeginPath() {
	s.subpaths = nil
	s.closed = nil
}

func (s *pathState) MoveTo(x, y float64) {
	s.subpaths = append(s.subpaths, []point{{x + s.pen.tx, y + s.pen.ty}})
	s.closed = append(s.closed, false)
}

func (s *pathState) LineTo(x, y float64) {
	if len(s.subpaths) == 0 {
		s.MoveTo(x, y)
		return
	}
	i := len(s.subpaths) - 1
	s.subpaths[i] = append(s.subpaths[i], point{x + s.pen.tx, y + s.pen.ty})
}

func (s *pathState) ClosePath() {
	if len(s.closed) > 0 {
		s.closed[len(s.closed)-1] = true
	}
}

// Arc appends a polyline approximation of the arc as a new subpath.
func (s *pathState) Arc(x, y, r, a0, a1 float64) {
	pts := arcPoints(x, y, r, a0, a1)
	if len(pts) == 0 {
		return
	}
	s.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		s.LineTo(p.x, p.y)
	}
}

// segments yields every drawable edge, closing closed subpaths.
func (s *pathState) segments(fn func(a, b point)) {
	for i, sp := range s.subpaths {
		for j := 1; j < len(sp); j++ {
			fn(sp[j-1], sp[j])
		}
		if s.closed[i] && len(sp) > 2 {
			fn(sp[len(sp)-1], sp[0])
		}
	}
}

func arcPoints(x, y, r, a0, a1 float64) []point {
	if r <= 0 {
		return nil
	}
	sweep := a1 - a0
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 16)))
	if n < 1 {
		n = 1
	}
	pts := make([]point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := a0 + sweep*float64(i)/float64(n)
		pts = append(pts, point{x + r*math.Cos(a), y + r*math.Sin(a)})
	}
	return pts
}

// alpha returns the 0..1 opacity of c.
func alpha(c color.Color) float64 {
	if c == nil {
		return 0
	}
	_, _, _, a := c.RGBA()
	return float64(a) / 0xffff
}
