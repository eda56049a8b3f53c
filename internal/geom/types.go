package geom

import "github.com/paulmach/orb"

// Kind identifies one of the supported quadrilaterals.
type Kind int

const (
	Square Kind = iota
	Rectangle
	Rhombus
	Parallelogram
	Trapezium
	Kite

	numKinds
)

var kindNames = [numKinds]string{
	Square:        "square",
	Rectangle:     "rectangle",
	Rhombus:       "rhombus",
	Parallelogram: "parallelogram",
	Trapezium:     "trapezium",
	Kite:          "kite",
}

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k names a supported shape.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// ParseKind maps a shape identifier to its Kind. Matching is exact and
// case-sensitive; anything else reports false.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Kinds returns every supported kind in display order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// Quad holds the four vertices of a quadrilateral in drawing order,
// relative to the translated origin (y grows downwards).
type Quad [4]orb.Point

// Ring returns the closed ring (first vertex repeated at the end).
func (q Quad) Ring() orb.Ring {
	r := make(orb.Ring, 0, len(q)+1)
	r = append(r, q[:]...)
	return append(r, q[0])
}

// Spec is the parameter record of one quadrilateral. Each kind has its own
// concrete record; Vertices derives the corner positions from it.
type Spec interface {
	Kind() Kind
	Vertices() Quad
}
