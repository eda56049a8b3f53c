package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// DefaultUnitScale is the number of drawing units per display unit.
const DefaultUnitScale = 10

// Dist is the Euclidean distance between two points.
func Dist(a, b orb.Point) float64 { return planar.Distance(a, b) }

// Sides returns the edge lengths 0-1, 1-2, 2-3, 3-0.
func (q Quad) Sides() [4]float64 {
	var out [4]float64
	for i := range q {
		out[i] = Dist(q[i], q[(i+1)%4])
	}
	return out
}

// Diagonals returns the lengths of 0-2 and 1-3.
func (q Quad) Diagonals() [2]float64 {
	return [2]float64{Dist(q[0], q[2]), Dist(q[1], q[3])}
}

// Area is the enclosed area in square drawing units.
func (q Quad) Area() float64 { return planar.Area(q.Ring()) }

// Perimeter is the total edge length.
func (q Quad) Perimeter() float64 { return planar.Length(q.Ring()) }

func (q Quad) Bound() orb.Bound { return q.Ring().Bound() }

// Winding reports the orientation of the ring in orb's (y-up) convention.
// Every default shape winds orb.CCW, which is clockwise on a y-down screen.
func (q Quad) Winding() orb.Orientation { return q.Ring().Orientation() }

// signedArea is the shoelace sum; positive for orb.CCW.
func (q Quad) signedArea() float64 {
	var s float64
	for i := range q {
		a, b := q[i], q[(i+1)%4]
		s += a[0]*b[1] - b[0]*a[1]
	}
	return s / 2
}

// InteriorAngles returns the interior angle at each vertex in degrees,
// derived from the vertex positions. Reflex corners report > 180.
func (q Quad) InteriorAngles() [4]float64 {
	var out [4]float64
	area := q.signedArea()
	for i := range q {
		prev, cur, next := q[(i+3)%4], q[i], q[(i+1)%4]
		ux, uy := prev[0]-cur[0], prev[1]-cur[1]
		wx, wy := next[0]-cur[0], next[1]-cur[1]
		lu, lw := math.Hypot(ux, uy), math.Hypot(wx, wy)
		if lu == 0 || lw == 0 {
			continue
		}
		c := (ux*wx + uy*wy) / (lu * lw)
		c = math.Max(-1, math.Min(1, c))
		a := math.Acos(c) * 180 / math.Pi
		turn := (cur[0]-prev[0])*(next[1]-cur[1]) - (cur[1]-prev[1])*(next[0]-cur[0])
		if turn*area < 0 {
			a = 360 - a
		}
		out[i] = a
	}
	return out
}

// IsSimple reports whether q is a non-degenerate quadrilateral whose
// opposite edges do not cross.
func (q Quad) IsSimple() bool {
	if math.Abs(q.signedArea()) == 0 {
		return false
	}
	for i := range q {
		if q[i] == q[(i+1)%4] {
			return false
		}
	}
	if segmentsIntersect(q[0], q[1], q[2], q[3]) {
		return false
	}
	return !segmentsIntersect(q[1], q[2], q[3], q[0])
}

func cross(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

func onSegment(p, a, b orb.Point) bool {
	return math.Min(a[0], b[0]) <= p[0] && p[0] <= math.Max(a[0], b[0]) &&
		math.Min(a[1], b[1]) <= p[1] && p[1] <= math.Max(a[1], b[1])
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func segmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	d1 := sign(cross(p3, p4, p1))
	d2 := sign(cross(p3, p4, p2))
	d3 := sign(cross(p1, p2, p3))
	d4 := sign(cross(p1, p2, p4))
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	switch {
	case d1 == 0 && onSegment(p1, p3, p4):
		return true
	case d2 == 0 && onSegment(p2, p3, p4):
		return true
	case d3 == 0 && onSegment(p3, p1, p2):
		return true
	case d4 == 0 && onSegment(p4, p1, p2):
		return true
	}
	return false
}

// ToDisplay converts drawing units to display units, rounding up.
// A non-positive scale falls back to DefaultUnitScale.
func ToDisplay(units, scale float64) int {
	if scale <= 0 {
		scale = DefaultUnitScale
	}
	// absorb float noise so 140.00000000000003 still reads as 14
	return int(math.Ceil(units/scale - 1e-9))
}
