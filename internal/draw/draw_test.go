package draw

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	faint = color.NRGBA{79, 70, 229, 15}
)

func square(s Surface, x0, y0, x1, y1 float64) {
	s.BeginPath()
	s.MoveTo(x0, y0)
	s.LineTo(x1, y0)
	s.LineTo(x1, y1)
	s.LineTo(x0, y1)
	s.ClosePath()
}

func TestBrailleLine(t *testing.T) {
	b := NewBraille(40, 20, 80, 80)
	cols, rows := b.Cells()
	assert.Equal(t, 40, cols)
	assert.Equal(t, 20, rows)

	b.SetStrokeColor(white)
	b.BeginPath()
	b.MoveTo(0, 0)
	b.LineTo(79, 0)
	b.Stroke()
	assert.True(t, b.Dot(0, 0))
	assert.True(t, b.Dot(40, 0))
	assert.False(t, b.Dot(40, 1))
}

func TestBrailleDash(t *testing.T) {
	b := NewBraille(40, 20, 80, 80)
	b.SetDash(5, 5)
	b.BeginPath()
	b.MoveTo(0, 10)
	b.LineTo(79, 10)
	b.Stroke()
	assert.True(t, b.Dot(2, 10))
	assert.False(t, b.Dot(7, 10))
	assert.True(t, b.Dot(12, 10))
}

func TestBrailleFill(t *testing.T) {
	b := NewBraille(40, 20, 80, 80)
	b.SetFillColor(faint)
	square(b, 10, 10, 30, 30)
	b.Fill()
	assert.False(t, b.Dot(20, 20), "translucent fill is skipped")

	b.SetFillColor(white)
	b.Fill()
	assert.True(t, b.Dot(20, 20))
	assert.False(t, b.Dot(50, 50))
}

func TestBrailleTranslateSaveRestore(t *testing.T) {
	b := NewBraille(40, 20, 80, 80)
	b.Translate(10, 0)
	b.Save()
	b.Translate(30, 0)
	b.Restore()
	b.BeginPath()
	b.MoveTo(0, 5)
	b.LineTo(0, 15)
	b.Stroke()
	assert.True(t, b.Dot(10, 10))
	assert.False(t, b.Dot(40, 10))

	b.Restore() // unbalanced restore is ignored
	b.Clear()
	assert.False(t, b.Dot(10, 10))
}

func TestBrailleText(t *testing.T) {
	b := NewBraille(40, 20, 80, 80)
	b.SetFillColor(white)
	b.FillText("Hi°", 8, 40, Font{Size: 13})
	rows := b.Plain()
	require.Len(t, rows, 20)
	var found bool
	for _, row := range rows {
		if strings.Contains(row, "Hi°") {
			found = true
			assert.Equal(t, 4, strings.Index(row, "Hi°"))
		}
	}
	assert.True(t, found)
	assert.Len(t, b.Lines(), 20)

	// clipped at the right edge without panicking
	b.FillText("overflowing label text", 70, 40, Font{Size: 13})
}

func TestBrailleKeepsAspect(t *testing.T) {
	// 2:1 logical canvas on a square dot grid: top and bottom rows stay empty
	b := NewBraille(20, 10, 200, 100)
	b.SetFillColor(white)
	square(b, 0, 0, 200, 100)
	b.Fill()
	rows := b.Plain()
	assert.Equal(t, strings.Repeat(" ", 20), rows[0])
	assert.Equal(t, strings.Repeat(" ", 20), rows[9])
	assert.NotContains(t, rows[5], " ")

	tall := NewBraille(20, 10, 100, 200)
	tall.SetFillColor(white)
	square(tall, 0, 0, 100, 200)
	tall.Fill()
	row := []rune(tall.Plain()[5])
	assert.Equal(t, ' ', row[0])
	assert.NotEqual(t, ' ', row[10])
}

func TestSVG(t *testing.T) {
	s := NewSVG(100, 50, color.Black)
	s.Translate(5, 5)
	s.SetStrokeColor(white)
	s.SetLineWidth(2)
	square(s, 0, 0, 10, 10)
	s.Stroke()
	s.SetDash(5, 5)
	s.Stroke()
	s.SetFillColor(faint)
	s.Fill()
	s.SetFillColor(white)
	s.FillText("a<b & c", 1, 2, Font{Size: 13, Bold: true})
	assert.Equal(t, 4, s.Elements())
	assert.Equal(t, []string{"a<b & c"}, s.Texts())

	// subpaths stay in y-down surface space
	require.Len(t, s.subpaths, 1)
	assert.Equal(t, point{5, 5}, s.subpaths[0][0])
	assert.Equal(t, point{15, 15}, s.subpaths[0][2])

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "<path")

	s.Clear()
	assert.Equal(t, 0, s.Elements())
	assert.Empty(t, s.Texts())
	s.BeginPath()
	s.Stroke()
	s.Fill()
	assert.Equal(t, 0, s.Elements(), "empty path draws nothing")
}

func TestSVGArc(t *testing.T) {
	s := NewSVG(10, 10, nil)
	s.BeginPath()
	s.Arc(5, 5, 3, 0, 2*math.Pi)
	s.Fill()
	require.Equal(t, 1, s.Elements())
	require.Len(t, s.subpaths, 1)
	first, last := s.subpaths[0][0], s.subpaths[0][len(s.subpaths[0])-1]
	assert.InDelta(t, first.x, last.x, 1e-9)
	assert.InDelta(t, first.y, last.y, 1e-9)
}

func TestRaster(t *testing.T) {
	r := NewRaster(100, 100, color.Black)
	w, h := r.Size()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 100.0, h)

	r.SetFillColor(red)
	square(r, 20, 20, 40, 40)
	r.Fill()
	assert.Equal(t, color.RGBAModel.Convert(red), color.RGBAModel.Convert(r.Image().At(30, 30)))

	r.Save()
	r.Translate(0, 50)
	r.SetStrokeColor(white)
	r.SetLineWidth(2)
	r.BeginPath()
	r.MoveTo(10, 0)
	r.LineTo(90, 0)
	r.Stroke()
	r.Restore()
	cr, _, _, _ := r.Image().At(50, 49).RGBA()
	assert.Greater(t, cr>>8, uint32(200))

	r.SetFillColor(white)
	r.FillText("90°", 10, 90, Font{Size: 13, Bold: true})

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())

	r.Clear()
	assert.Equal(t, color.RGBAModel.Convert(color.Black), color.RGBAModel.Convert(r.Image().At(30, 30)))
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(10, 20)
	r.MoveTo(1, 2)
	r.Clear()
	r.SetDash(5, 5)
	r.SetStrokeColor(white)
	r.FillText("x", 1, 2, Font{Size: 13})
	require.Len(t, r.Ops(), 4)
	assert.Equal(t, "Clear", r.Ops()[0].String())
	assert.Equal(t, "SetDash(5.00, 5.00)", r.Ops()[1].String())
	assert.Equal(t, "SetStrokeColor(rgba(255,255,255,255))", r.Ops()[2].String())
	assert.Equal(t, []string{"x"}, r.Texts())
	assert.Equal(t, 1, r.Count("FillText"))

	var buf bytes.Buffer
	_, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))
}

func TestSurfacesImplementInterface(t *testing.T) {
	var _ Surface = (*Braille)(nil)
	var _ Surface = (*Raster)(nil)
	var _ Surface = (*SVG)(nil)
	var _ Surface = (*Recorder)(nil)
}

func TestBrailleCellMapping(t *testing.T) {
	b := NewBraille(10, 5, 20, 20)
	cx, cy := b.CellOf(5, 9)
	assert.Equal(t, 2, cx)
	assert.Equal(t, 2, cy)
	x, y := b.Logical(2, 2)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 10.0, y)

	b.Mark(5, 9, 'o', color.White)
	assert.Equal(t, 'o', []rune(b.Plain()[2])[2])
	b.Mark(-50, 9, 'x', nil)
	assert.NotContains(t, strings.Join(b.Plain(), ""), "x")
}

func TestBrailleView(t *testing.T) {
	b := NewBraille(10, 5, 20, 20)
	b.SetView(5, 5, 10, 10)
	w, h := b.Size()
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 20.0, h)

	cx, cy := b.CellOf(10, 10)
	assert.Equal(t, 5, cx)
	assert.Equal(t, 2, cy)
	x, y := b.Logical(5, 2)
	assert.Equal(t, 10.5, x)
	assert.Equal(t, 10.0, y)

	b.BeginPath()
	b.MoveTo(5, 5)
	b.LineTo(15, 5)
	b.Stroke()
	assert.True(t, b.Dot(10, 5))
	assert.False(t, b.Dot(2, 5), "outside the view")
}
