package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadview/internal/draw"
	"quadview/internal/geom"
)

func record(t *testing.T, opts Options, shape string) *draw.Recorder {
	t.Helper()
	rec := draw.NewRecorder(480, 300)
	New(opts).Render(shape, rec)
	return rec
}

func angleTexts(rec *draw.Recorder) []string {
	var out []string
	for _, o := range rec.Ops() {
		if o.Name == "FillText" && o.Args[4].(bool) {
			out = append(out, o.Args[0].(string))
		}
	}
	return out
}

func TestRenderDrawsEveryShape(t *testing.T) {
	for _, k := range geom.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			rec := record(t, DefaultOptions(), k.String())
			ops := rec.Ops()
			require.NotEmpty(t, ops)
			assert.Equal(t, "Clear", ops[0].Name)
			assert.Equal(t, "Save", ops[1].Name)
			assert.Equal(t, "Translate", ops[2].Name)
			assert.Equal(t, []any{float64(DefaultOriginX), 150.0}, ops[2].Args)
			assert.Equal(t, "Restore", ops[len(ops)-1].Name)

			// outline: one MoveTo, three LineTo, closed
			assert.Equal(t, "MoveTo", ops[6].Name)
			for i := 7; i < 10; i++ {
				assert.Equal(t, "LineTo", ops[i].Name)
			}
			assert.Equal(t, "ClosePath", ops[10].Name)

			assert.Equal(t, 4, rec.Count("Arc"), "vertex dots")
			assert.Equal(t, rec.Count("Save"), rec.Count("Restore"))
			assert.Len(t, angleTexts(rec), 4)
		})
	}
}

func TestRenderGuides(t *testing.T) {
	for _, k := range []geom.Kind{geom.Square, geom.Rectangle, geom.Rhombus, geom.Kite} {
		assert.Equal(t, 2, record(t, DefaultOptions(), k.String()).Count("SetDash"), k.String())
	}
	for _, k := range []geom.Kind{geom.Parallelogram, geom.Trapezium} {
		rec := record(t, DefaultOptions(), k.String())
		assert.Equal(t, 1, rec.Count("SetDash"), k.String())
	}
}

func TestSquareLabels(t *testing.T) {
	rec := record(t, DefaultOptions(), "square")
	texts := rec.Texts()
	assert.Contains(t, texts, "Side = 14cm")
	assert.Contains(t, texts, "Diagonal = 20cm")
	assert.Equal(t, []string{"90°", "90°", "90°", "90°"}, angleTexts(rec))
}

func TestRectangleLabels(t *testing.T) {
	texts := record(t, DefaultOptions(), "rectangle").Texts()
	assert.Contains(t, texts, "Width = 20cm")
	assert.Contains(t, texts, "Height = 11cm")
	assert.Contains(t, texts, "Diagonal = 23cm")
}

func TestRhombusLabels(t *testing.T) {
	rec := record(t, DefaultOptions(), "rhombus")
	assert.Contains(t, rec.Texts(), "Side = 14cm")
	assert.Contains(t, rec.Texts(), "d₁ = 25cm, d₂ = 14cm")
	assert.Equal(t, []string{"60°", "120°", "60°", "120°"}, angleTexts(rec))

	derived := DefaultOptions()
	derived.Angles = AnglesDerived
	assert.Equal(t, angleTexts(rec), angleTexts(record(t, derived, "rhombus")))
}

func TestParallelogramAndTrapeziumLabels(t *testing.T) {
	texts := record(t, DefaultOptions(), "parallelogram").Texts()
	assert.Contains(t, texts, "Base = 18cm")
	assert.Contains(t, texts, "Side = 11cm")
	assert.Contains(t, texts, "Height = 10cm")

	rec := record(t, DefaultOptions(), "trapezium")
	assert.Contains(t, rec.Texts(), "Base₁ = 23cm")
	assert.Contains(t, rec.Texts(), "Base₂ = 12cm")
	assert.Contains(t, rec.Texts(), "Height = 10cm")
	assert.Contains(t, rec.Texts(), "Sides: 15cm, 8cm")
	assert.Equal(t, []string{"100°", "80°", "100°", "80°"}, angleTexts(rec))
}

func TestKiteLabels(t *testing.T) {
	rec := record(t, DefaultOptions(), "kite")
	assert.Contains(t, rec.Texts(), "d₁ = 16cm, d₂ = 9cm")
	assert.Contains(t, rec.Texts(), "Sides = 7cm, 12cm")
	assert.Equal(t, []string{"70°", "110°", "70°", "110°"}, angleTexts(rec))
}

func TestRawLabels(t *testing.T) {
	opts := DefaultOptions()
	opts.Labels = LabelsRaw
	rec := record(t, opts, "square")
	assert.Contains(t, rec.Texts(), "Side = 140")
	assert.Contains(t, rec.Texts(), "Diagonal = 197.99")
	assert.Empty(t, angleTexts(rec))
	for _, txt := range rec.Texts() {
		assert.NotContains(t, txt, "cm")
	}

	rec = record(t, opts, "rectangle")
	assert.Contains(t, rec.Texts(), "Diagonal = 228.25")
	rec = record(t, opts, "rhombus")
	assert.Contains(t, rec.Texts(), "d₁ = 242.49, d₂ = 140")
}

func TestUnknownShapeOnlyClears(t *testing.T) {
	for _, name := range []string{"", "circle", "Square", "pentagon"} {
		rec := record(t, DefaultOptions(), name)
		require.Len(t, rec.Ops(), 1, name)
		assert.Equal(t, "Clear", rec.Ops()[0].Name)
		assert.Zero(t, rec.Count("MoveTo"))
		assert.Zero(t, rec.Count("Stroke"))
	}

	rec := draw.NewRecorder(480, 300)
	New(DefaultOptions()).RenderKind(geom.Kind(99), rec)
	assert.Len(t, rec.Ops(), 1)
}

func TestNilSurfaceIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		New(DefaultOptions()).Render("square", nil)
		New(DefaultOptions()).RenderKind(geom.Square, nil)
	})
}

func TestRenderIsIdempotent(t *testing.T) {
	r := New(DefaultOptions())
	for _, k := range geom.Kinds() {
		rec := draw.NewRecorder(480, 300)
		r.Render(k.String(), rec)
		first := append([]draw.Op(nil), rec.Ops()...)
		r.Render(k.String(), rec)
		assert.Equal(t, first, rec.Ops(), k.String())

		b := draw.NewBraille(80, 24, 480, 300)
		r.Render(k.String(), b)
		once := b.Plain()
		r.Render(k.String(), b)
		assert.Equal(t, once, b.Plain(), k.String())
	}
}

func TestZeroOriginAndEmptyUnitAreKept(t *testing.T) {
	opts := DefaultOptions()
	opts.OriginX = 0
	opts.Unit = ""
	rec := record(t, opts, "square")
	assert.Equal(t, []any{0.0, 150.0}, rec.Ops()[2].Args)
	assert.Contains(t, rec.Texts(), "Side = 14")
}

func TestRenderBrailleShowsShape(t *testing.T) {
	b := draw.NewBraille(96, 30, 480, 300)
	New(DefaultOptions()).Render("square", b)
	out := strings.Join(b.Plain(), "\n")
	assert.Contains(t, out, "Side = 14cm")
	assert.Contains(t, out, "90°")
	// outline corner at (origin, centre - 70)
	assert.True(t, b.Dot(DefaultOriginX, 150-70))
	assert.True(t, b.Dot(DefaultOriginX+140, 150+70))

	New(DefaultOptions()).Render("nope", b)
	for _, row := range b.Plain() {
		assert.Equal(t, strings.Repeat(" ", 96), row)
	}
}

func TestRenderSVG(t *testing.T) {
	s := draw.NewSVG(480, 300, nil)
	New(DefaultOptions()).Render("kite", s)
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, s.Texts(), "d₁ = 16cm, d₂ = 9cm")
	assert.Contains(t, s.Texts(), "Sides = 7cm, 12cm")
}

func TestOptionsDefaults(t *testing.T) {
	r := New(Options{})
	o := r.Options()
	assert.Equal(t, float64(geom.DefaultUnitScale), o.UnitScale)
	assert.NotNil(t, o.Palette.Fill)
	assert.Zero(t, o.OriginX, "zero origin is a valid placement")
	assert.Empty(t, o.Unit)

	ls, err := ParseLabelStyle("raw")
	require.NoError(t, err)
	assert.Equal(t, LabelsRaw, ls)
	_, err = ParseLabelStyle("verbose")
	assert.Error(t, err)
	am, err := ParseAngleMode("derived")
	require.NoError(t, err)
	assert.Equal(t, AnglesDerived, am)
	assert.Equal(t, "derived", am.String())
	_, err = ParseAngleMode("exact")
	assert.Error(t, err)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "20cm", FormatLength(197.99, DefaultOptions()))
	raw := DefaultOptions()
	raw.Labels = LabelsRaw
	assert.Equal(t, "242.49", FormatLength(242.4871, raw))
	assert.Equal(t, "60°", FormatAngle(59.9999))
}
