package render

import (
	"fmt"
	"image/color"

	"quadview/internal/geom"
)

// LabelStyle selects how lengths and angles are annotated.
type LabelStyle int

const (
	// LabelsConverted prints lengths in display units (rounded up) and draws
	// the angle at every vertex.
	LabelsConverted LabelStyle = iota
	// LabelsRaw prints lengths in drawing units and omits angle labels.
	LabelsRaw
)

func (l LabelStyle) String() string {
	switch l {
	case LabelsConverted:
		return "converted"
	case LabelsRaw:
		return "raw"
	}
	return fmt.Sprintf("LabelStyle(%d)", int(l))
}

func ParseLabelStyle(s string) (LabelStyle, error) {
	switch s {
	case "converted", "":
		return LabelsConverted, nil
	case "raw":
		return LabelsRaw, nil
	}
	return 0, fmt.Errorf("unknown label style %q (want converted or raw)", s)
}

// AngleMode selects where angle labels come from.
type AngleMode int

const (
	// AnglesIllustrative shows the fixed teaching values per shape.
	AnglesIllustrative AngleMode = iota
	// AnglesDerived measures the angles from the drawn vertices.
	AnglesDerived
)

func (a AngleMode) String() string {
	switch a {
	case AnglesIllustrative:
		return "illustrative"
	case AnglesDerived:
		return "derived"
	}
	return fmt.Sprintf("AngleMode(%d)", int(a))
}

func ParseAngleMode(s string) (AngleMode, error) {
	switch s {
	case "illustrative", "":
		return AnglesIllustrative, nil
	case "derived":
		return AnglesDerived, nil
	}
	return 0, fmt.Errorf("unknown angle mode %q (want illustrative or derived)", s)
}

// Palette holds the colors used for a diagram.
type Palette struct {
	Stroke color.Color // outline, vertex dots, diagonals
	Fill   color.Color // polygon interior
	Accent color.Color // height lines
	Text   color.Color // labels
}

// Options configure a Renderer. A non-positive UnitScale and nil palette
// colors take the defaults; every other field is used as given, so start
// from DefaultOptions.
type Options struct {
	Labels    LabelStyle
	Angles    AngleMode
	Unit      string
	UnitScale float64
	// OriginX is where x = 0 of every shape lands; y = 0 is the vertical
	// centre of the surface.
	OriginX float64
	Palette Palette
}

const (
	DefaultUnit    = "cm"
	DefaultOriginX = 80

	lineWidth  = 2
	dotRadius  = 3
	fontSize   = 13
	dashLength = 5
)

func DefaultPalette() Palette {
	return Palette{
		Stroke: color.White,
		Fill:   color.NRGBA{R: 79, G: 70, B: 229, A: 15},
		Accent: color.NRGBA{R: 0, G: 255, B: 255, A: 255},
		Text:   color.White,
	}
}

func DefaultOptions() Options {
	return Options{
		Labels:    LabelsConverted,
		Angles:    AnglesIllustrative,
		Unit:      DefaultUnit,
		UnitScale: geom.DefaultUnitScale,
		OriginX:   DefaultOriginX,
		Palette:   DefaultPalette(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.UnitScale <= 0 {
		o.UnitScale = d.UnitScale
	}
	if o.Palette.Stroke == nil {
		o.Palette.Stroke = d.Palette.Stroke
	}
	if o.Palette.Fill == nil {
		o.Palette.Fill = d.Palette.Fill
	}
	if o.Palette.Accent == nil {
		o.Palette.Accent = d.Palette.Accent
	}
	if o.Palette.Text == nil {
		o.Palette.Text = d.Palette.Text
	}
	return o
}
