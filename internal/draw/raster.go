package draw

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Raster is a PNG Surface backed by a gg context. gg has a single current
// color, so stroke and fill colors are tracked here and applied per call.
type Raster struct {
	dc         *gg.Context
	background color.Color

	stroke, fill color.Color
	stack        [][2]color.Color
}

// NewRaster returns a w x h pixel surface cleared to background.
func NewRaster(w, h int, background color.Color) *Raster {
	if background == nil {
		background = color.Transparent
	}
	r := &Raster{
		dc:         gg.NewContext(w, h),
		background: background,
	}
	r.dc.SetFontFace(basicfont.Face7x13)
	r.Clear()
	return r
}

func (r *Raster) Image() image.Image { return r.dc.Image() }

func (r *Raster) Size() (float64, float64) {
	return float64(r.dc.Width()), float64(r.dc.Height())
}

func (r *Raster) Clear() {
	r.dc.Identity()
	r.dc.ClearPath()
	r.dc.SetDash()
	r.dc.SetLineWidth(1)
	r.stroke, r.fill = color.Black, color.Black
	r.stack = r.stack[:0]
	r.dc.SetColor(r.background)
	r.dc.Clear()
}

func (r *Raster) Save() {
	r.dc.Push()
	r.stack = append(r.stack, [2]color.Color{r.stroke, r.fill})
}

func (r *Raster) Restore() {
	r.dc.Pop()
	if n := len(r.stack); n > 0 {
		r.stroke, r.fill = r.stack[n-1][0], r.stack[n-1][1]
		r.stack = r.stack[:n-1]
	}
}

func (r *Raster) Translate(dx, dy float64)     { r.dc.Translate(dx, dy) }
func (r *Raster) SetLineWidth(w float64)       { r.dc.SetLineWidth(w) }
func (r *Raster) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *Raster) SetFillColor(c color.Color)   { r.fill = c }
func (r *Raster) SetDash(pattern ...float64)   { r.dc.SetDash(pattern...) }
func (r *Raster) BeginPath()                   { r.dc.ClearPath() }
func (r *Raster) MoveTo(x, y float64)          { r.dc.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64)          { r.dc.LineTo(x, y) }
func (r *Raster) ClosePath()                   { r.dc.ClosePath() }

func (r *Raster) Arc(x, y, rad, a0, a1 float64) {
	r.dc.NewSubPath()
	r.dc.DrawArc(x, y, rad, a0, a1)
}

func (r *Raster) Stroke() {
	r.dc.SetColor(r.stroke)
	r.dc.StrokePreserve()
}

func (r *Raster) Fill() {
	r.dc.SetColor(r.fill)
	r.dc.FillPreserve()
}

// FillText draws with the 7x13 bitmap face; bold is a one pixel
// double-strike.
func (r *Raster) FillText(text string, x, y float64, f Font) {
	r.dc.SetColor(r.fill)
	r.dc.DrawString(text, x, y)
	if f.Bold {
		r.dc.DrawString(text, x+1, y)
	}
}

// EncodePNG writes the current image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.dc.Image())
}

// SavePNG writes the image to path, creating parent directories.
func (r *Raster) SavePNG(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()
	if err := r.EncodePNG(f); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
