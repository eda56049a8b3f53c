// Package render draws labeled quadrilateral diagrams onto a draw.Surface.
package render

import (
	"math"

	"quadview/internal/draw"
	"quadview/internal/geom"
)

// Renderer draws one shape per call. It keeps no state between calls, so a
// single Renderer can be reused for any number of surfaces.
type Renderer struct {
	opts Options
}

func New(opts Options) *Renderer {
	return &Renderer{opts: opts.withDefaults()}
}

func (r *Renderer) Options() Options { return r.opts }

// Render clears s and draws the named shape on it. A nil surface is a no-op;
// an unknown name leaves the surface cleared and otherwise empty.
func (r *Renderer) Render(shapeType string, s draw.Surface) {
	if s == nil {
		return
	}
	s.Clear()
	k, ok := geom.ParseKind(shapeType)
	if !ok {
		return
	}
	r.draw(k, s)
}

// RenderKind is Render for an already parsed kind.
func (r *Renderer) RenderKind(k geom.Kind, s draw.Surface) {
	if s == nil {
		return
	}
	s.Clear()
	if !k.Valid() {
		return
	}
	r.draw(k, s)
}

func (r *Renderer) draw(k geom.Kind, s draw.Surface) {
	spec, _ := geom.Default(k)
	q := spec.Vertices()
	_, h := s.Size()

	s.Save()
	defer s.Restore()
	s.Translate(r.opts.OriginX, h/2)
	s.SetLineWidth(lineWidth)
	s.SetStrokeColor(r.opts.Palette.Stroke)

	c := &scene{s: s, opts: &r.opts, kind: k, q: q}
	c.polygon()
	annotators[k](c)
	if r.opts.Labels == LabelsConverted {
		c.angleLabels()
	}
}

// Angles returns the angle labels r would print for k, in vertex order.
func (r *Renderer) Angles(k geom.Kind) [4]float64 {
	return anglesFor(k, r.opts.Angles)
}

func anglesFor(k geom.Kind, mode AngleMode) [4]float64 {
	if mode == AnglesDerived {
		spec, ok := geom.Default(k)
		if !ok {
			return [4]float64{}
		}
		a := spec.Vertices().InteriorAngles()
		for i := range a {
			a[i] = math.Round(a[i])
		}
		return a
	}
	return geom.IllustrativeAngles(k)
}
