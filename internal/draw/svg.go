package draw

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontFamily *canvas.FontFamily
	fontErr    error
)

// goFonts loads the Go fonts once for every SVG surface.
func goFonts() (*canvas.FontFamily, error) {
	fontOnce.Do(func() {
		f := canvas.NewFontFamily("go")
		if err := f.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
			fontErr = fmt.Errorf("load regular font: %w", err)
			return
		}
		if err := f.LoadFont(gobold.TTF, 0, canvas.FontBold); err != nil {
			fontErr = fmt.Errorf("load bold font: %w", err)
			return
		}
		fontFamily = f
	})
	return fontFamily, fontErr
}

// SVG is a Surface backed by a tdewolff/canvas context and written with its
// SVG renderer. Paths are collected in y-down surface coordinates and flipped
// into the canvas's y-up space when drawn.
type SVG struct {
	pathState

	W, H       float64
	Background color.Color

	c     *canvas.Canvas
	ctx   *canvas.Context
	draws int
	texts []string
	err   error
}

func NewSVG(w, h float64, background color.Color) *SVG {
	s := &SVG{pathState: newPathState(), W: w, H: h, Background: background}
	s.Clear()
	return s
}

func (s *SVG) Size() (float64, float64) { return s.W, s.H }

func (s *SVG) Clear() {
	s.pathState.reset()
	s.c = canvas.New(s.W, s.H)
	s.ctx = canvas.NewContext(s.c)
	s.draws = 0
	s.texts = s.texts[:0]
	s.err = nil
	if s.Background != nil && alpha(s.Background) > 0 {
		s.ctx.SetStrokeColor(canvas.Transparent)
		s.ctx.SetFillColor(s.Background)
		s.ctx.DrawPath(0, 0, canvas.Rectangle(s.W, s.H))
	}
}

// Elements returns the number of paths and texts drawn since Clear.
func (s *SVG) Elements() int { return s.draws }

// Texts returns the text of every FillText call since Clear, in order.
func (s *SVG) Texts() []string { return s.texts }

// path converts the current subpaths to a canvas path in y-up space.
func (s *SVG) path() *canvas.Path {
	p := &canvas.Path{}
	for i, sp := range s.subpaths {
		for j, pt := range sp {
			if j == 0 {
				p.MoveTo(pt.x, s.H-pt.y)
			} else {
				p.LineTo(pt.x, s.H-pt.y)
			}
		}
		if s.closed[i] {
			p.Close()
		}
	}
	return p
}

func (s *SVG) Stroke() {
	if len(s.subpaths) == 0 {
		return
	}
	s.ctx.SetFillColor(canvas.Transparent)
	s.ctx.SetStrokeColor(paint(s.pen.stroke))
	s.ctx.SetStrokeWidth(s.pen.lineWidth)
	s.ctx.SetDashes(0, s.pen.dash...)
	s.ctx.DrawPath(0, 0, s.path())
	s.draws++
}

func (s *SVG) Fill() {
	if len(s.subpaths) == 0 {
		return
	}
	s.ctx.SetStrokeColor(canvas.Transparent)
	s.ctx.SetFillColor(paint(s.pen.fill))
	s.ctx.DrawPath(0, 0, s.path())
	s.draws++
}

func (s *SVG) FillText(text string, x, y float64, f Font) {
	family, err := goFonts()
	if err != nil {
		s.err = err
		return
	}
	size := f.Size
	if size <= 0 {
		size = 13
	}
	style := canvas.FontRegular
	if f.Bold {
		style = canvas.FontBold
	}
	// canvas font sizes are in points; surface units are pixels
	face := family.Face(size*72/96, paint(s.pen.fill), style, canvas.FontNormal)
	s.ctx.DrawText(x+s.pen.tx, s.H-(y+s.pen.ty), canvas.NewTextLine(face, text, canvas.Left))
	s.texts = append(s.texts, text)
	s.draws++
}

// WriteTo writes the complete document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var buf bytes.Buffer
	if err := s.c.Write(&buf, renderers.SVG()); err != nil {
		return 0, fmt.Errorf("render svg: %w", err)
	}
	return buf.WriteTo(w)
}

func paint(c color.Color) color.Color {
	if c == nil {
		return canvas.Transparent
	}
	return c
}
