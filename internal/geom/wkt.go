package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// Polygon returns the outline of s as a single-ring orb polygon.
func Polygon(s Spec) orb.Polygon {
	return orb.Polygon{s.Vertices().Ring()}
}

// WKT renders the outline as a POLYGON with a closed 5-point ring.
func WKT(s Spec) string {
	return wkt.MarshalString(Polygon(s))
}
