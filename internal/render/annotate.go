package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/paulmach/orb"

	"quadview/internal/draw"
	"quadview/internal/geom"
)

// scene is the per-call drawing context handed to the annotators.
type scene struct {
	s    draw.Surface
	opts *Options
	kind geom.Kind
	q    geom.Quad
}

// annotators draw the guide lines and measurement labels of each kind.
// Positions are relative to the shape origin.
var annotators = map[geom.Kind]func(*scene){
	geom.Square: func(c *scene) {
		c.diagonals()
		s := c.q[1][0] - c.q[0][0]
		c.label("Side = "+c.length(s), s/3, s/2+20)
		c.label("Diagonal = "+c.length(c.q.Diagonals()[0]), s/2-20, 20)
	},
	geom.Rectangle: func(c *scene) {
		c.diagonals()
		w := c.q[1][0] - c.q[0][0]
		h := c.q[3][1] - c.q[0][1]
		c.label("Width = "+c.length(w), w/2-20, h/2+20)
		c.label("Height = "+c.length(h), w+15, 0)
		c.label("Diagonal = "+c.length(c.q.Diagonals()[0]), w/3, -h/2-15)
	},
	geom.Rhombus: func(c *scene) {
		c.diagonals()
		x, y := c.q[1][0], -c.q[0][1]
		d := c.q.Diagonals()
		c.label("Side = "+c.length(c.q.Sides()[0]), x+10, 0)
		c.label(fmt.Sprintf("d₁ = %s, d₂ = %s", c.length(d[0]), c.length(d[1])), -20, -y-15)
	},
	geom.Parallelogram: func(c *scene) {
		c.heightLine()
		base := c.q[1][0] - c.q[0][0]
		h := c.q[3][1] - c.q[0][1]
		c.label("Base = "+c.length(base), base/2-30, h/2+20)
		c.label("Side = "+c.length(geom.Dist(c.q[0], c.q[3])), base+15, h/4)
		c.label("Height = "+c.length(h), c.q[0][0]-55, 0)
	},
	geom.Trapezium: func(c *scene) {
		c.heightLine()
		a := c.q[1][0] - c.q[0][0]
		b := c.q[2][0]
		h := c.q[3][1] - c.q[0][1]
		sides := c.q.Sides()
		c.label("Base₁ = "+c.length(a), a/2-30, -h/2-15)
		c.label("Base₂ = "+c.length(b), b/2, h/2+20)
		c.label("Height = "+c.length(h), c.q[0][0]-45, 0)
		c.label(fmt.Sprintf("Sides: %s, %s", c.length(sides[1]), c.length(sides[2])), a+20, 0)
	},
	geom.Kite: func(c *scene) {
		c.diagonals()
		d := c.q.Diagonals()
		sides := c.q.Sides()
		c.label(fmt.Sprintf("d₁ = %s, d₂ = %s", c.length(d[0]), c.length(d[1])), 10, c.q[0][1]-15)
		c.label(fmt.Sprintf("Sides = %s, %s", c.length(sides[0]), c.length(sides[1])), c.q[1][0]+15, 0)
	},
}

// polygon fills and strokes the outline, then marks each vertex.
func (c *scene) polygon() {
	s := c.s
	s.BeginPath()
	s.MoveTo(c.q[0][0], c.q[0][1])
	for _, p := range c.q[1:] {
		s.LineTo(p[0], p[1])
	}
	s.ClosePath()
	s.SetFillColor(c.opts.Palette.Fill)
	s.Fill()
	s.Stroke()

	s.SetFillColor(c.opts.Palette.Stroke)
	for _, p := range c.q {
		s.BeginPath()
		s.Arc(p[0], p[1], dotRadius, 0, 2*math.Pi)
		s.Fill()
	}
}

func (c *scene) dashed(a, b orb.Point, col color.Color) {
	s := c.s
	s.Save()
	s.SetStrokeColor(col)
	s.SetDash(dashLength, dashLength)
	s.BeginPath()
	s.MoveTo(a[0], a[1])
	s.LineTo(b[0], b[1])
	s.Stroke()
	s.Restore()
}

func (c *scene) diagonals() {
	c.dashed(c.q[0], c.q[2], c.opts.Palette.Stroke)
	c.dashed(c.q[1], c.q[3], c.opts.Palette.Stroke)
}

// heightLine drops from vertex 0 straight down to the lower edge.
func (c *scene) heightLine() {
	c.dashed(c.q[0], orb.Point{c.q[0][0], c.q[3][1]}, c.opts.Palette.Accent)
}

func (c *scene) label(text string, x, y float64) {
	c.s.SetFillColor(c.opts.Palette.Text)
	c.s.FillText(text, x, y, draw.Font{Size: fontSize})
}

func (c *scene) angleLabels() {
	angles := anglesFor(c.kind, c.opts.Angles)
	c.s.SetFillColor(c.opts.Palette.Text)
	for i, p := range c.q {
		c.s.FillText(FormatAngle(angles[i]), p[0]+5, p[1]-5, draw.Font{Size: fontSize, Bold: true})
	}
}

// length formats a drawing-unit length for the current label style.
func (c *scene) length(v float64) string {
	return FormatLength(v, *c.opts)
}

// FormatLength renders v the way diagram labels do.
func FormatLength(v float64, o Options) string {
	if o.Labels == LabelsRaw {
		return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
	}
	return strconv.Itoa(geom.ToDisplay(v, o.UnitScale)) + o.Unit
}

func FormatAngle(deg float64) string {
	return strconv.FormatFloat(math.Round(deg), 'f', -1, 64) + "°"
}
