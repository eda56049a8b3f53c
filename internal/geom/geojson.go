package geom

import (
	"github.com/paulmach/orb/geojson"
)

// Feature wraps the outline in a GeoJSON feature. Properties carry the kind
// and the raw side, diagonal and derived angle measurements.
func Feature(s Spec) *geojson.Feature {
	q := s.Vertices()
	f := geojson.NewFeature(Polygon(s))
	sides := q.Sides()
	diags := q.Diagonals()
	angles := q.InteriorAngles()
	f.Properties["kind"] = s.Kind().String()
	f.Properties["sides"] = sides[:]
	f.Properties["diagonals"] = diags[:]
	f.Properties["angles"] = angles[:]
	f.Properties["area"] = q.Area()
	f.Properties["perimeter"] = q.Perimeter()
	return f
}

// MarshalGeoJSON encodes the specs as a FeatureCollection.
func MarshalGeoJSON(specs ...Spec) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, s := range specs {
		fc.Append(Feature(s))
	}
	return fc.MarshalJSON()
}
