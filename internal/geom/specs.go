package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// SquareSpec is an axis-aligned square centred vertically on the origin.
type SquareSpec struct {
	Side float64
}

func (SquareSpec) Kind() Kind { return Square }

func (s SquareSpec) Vertices() Quad {
	h := s.Side / 2
	return Quad{{0, -h}, {s.Side, -h}, {s.Side, h}, {0, h}}
}

// RectangleSpec is an axis-aligned rectangle centred vertically.
type RectangleSpec struct {
	Width  float64
	Height float64
}

func (RectangleSpec) Kind() Kind { return Rectangle }

func (s RectangleSpec) Vertices() Quad {
	h := s.Height / 2
	return Quad{{0, -h}, {s.Width, -h}, {s.Width, h}, {0, h}}
}

// RhombusSpec is a diamond built from its side and interior angle. The
// angle sits at the top and bottom vertices.
type RhombusSpec struct {
	Side     float64
	AngleDeg float64
}

func (RhombusSpec) Kind() Kind { return Rhombus }

func (s RhombusSpec) Vertices() Quad {
	half := s.AngleDeg * math.Pi / 180 / 2
	x := math.Sin(half) * s.Side
	y := math.Cos(half) * s.Side
	return Quad{{0, -y}, {x, 0}, {0, y}, {-x, 0}}
}

// ParallelogramSpec has two horizontal edges of length Base, the lower one
// shifted right by Slant.
type ParallelogramSpec struct {
	Base   float64
	Height float64
	Slant  float64
}

func (ParallelogramSpec) Kind() Kind { return Parallelogram }

func (s ParallelogramSpec) Vertices() Quad {
	h := s.Height / 2
	return Quad{
		{0, -h},
		{s.Base, -h},
		{s.Base + s.Slant, h},
		{s.Slant, h},
	}
}

// TrapeziumSpec has a top edge of length Base1 and a lower edge running from
// Inset to Base2, so the figure is not symmetric about its centre.
type TrapeziumSpec struct {
	Base1  float64
	Base2  float64
	Height float64
	Inset  float64
}

func (TrapeziumSpec) Kind() Kind { return Trapezium }

func (s TrapeziumSpec) Vertices() Quad {
	h := s.Height / 2
	return Quad{
		{0, -h},
		{s.Base1, -h},
		{s.Base2, h},
		{s.Inset, h},
	}
}

// KiteSpec places the vertices on two perpendicular diagonals. Diag2 is
// bisected by Diag1; Diag1 is cut at Split (fraction above the crossing).
type KiteSpec struct {
	Diag1 float64
	Diag2 float64
	Split float64
}

func (KiteSpec) Kind() Kind { return Kite }

func (s KiteSpec) Vertices() Quad {
	split := s.Split
	if split <= 0 || split >= 1 {
		split = 0.5
	}
	top := s.Diag1 * split
	return Quad{
		{0, -top},
		{s.Diag2 / 2, 0},
		{0, s.Diag1 - top},
		{-s.Diag2 / 2, 0},
	}
}

var defaults = [numKinds]Spec{
	Square:        SquareSpec{Side: 140},
	Rectangle:     RectangleSpec{Width: 200, Height: 110},
	Rhombus:       RhombusSpec{Side: 140, AngleDeg: 60},
	Parallelogram: ParallelogramSpec{Base: 180, Height: 100, Slant: 40},
	Trapezium:     TrapeziumSpec{Base1: 230, Base2: 120, Height: 100, Inset: 40},
	Kite:          KiteSpec{Diag1: 160, Diag2: 90, Split: 1.0 / 3},
}

// Default returns the fixed parameter record for k.
func Default(k Kind) (Spec, bool) {
	if !k.Valid() {
		return nil, false
	}
	return defaults[k], true
}

var illustrativeAngles = [numKinds][4]float64{
	Square:        {90, 90, 90, 90},
	Rectangle:     {90, 90, 90, 90},
	Rhombus:       {60, 120, 60, 120},
	Parallelogram: {60, 120, 60, 120},
	Trapezium:     {100, 80, 100, 80},
	Kite:          {70, 110, 70, 110},
}

// IllustrativeAngles returns the fixed angle labels shown at each vertex of
// k. They are teaching values and are not checked against the geometry.
func IllustrativeAngles(k Kind) [4]float64 {
	if !k.Valid() {
		return [4]float64{}
	}
	return illustrativeAngles[k]
}

// Centroid is the vertex average; used to push labels outwards.
func (q Quad) Centroid() orb.Point {
	var c orb.Point
	for _, p := range q {
		c[0] += p[0] / 4
		c[1] += p[1] / 4
	}
	return c
}
