package draw

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type brailleBuf struct {
	w, h int             // in cells
	m    [][]uint8       // per-cell 8-bit mask
	fg   [][]color.Color // last color set in the cell
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	fg := make([][]color.Color, h)
	for i := range m {
		m[i] = make([]uint8, w)
		fg[i] = make([]color.Color, w)
	}
	return &brailleBuf{w: w, h: h, m: m, fg: fg}
}

// dot bits by [column][row] inside a 2x4 cell
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, c color.Color) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
	if c != nil {
		b.fg[cy][cx] = c
	}
}

func (b *brailleBuf) pixel(mx, my int) bool {
	if mx < 0 || my < 0 || mx/2 >= b.w || my/4 >= b.h {
		return false
	}
	return b.m[my/4][mx/2]&brailleBits[mx%2][my%4] != 0
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Braille is a terminal Surface. A logical W x H canvas is scaled uniformly
// onto a cols x rows grid of braille cells (2x4 dots each) and centred.
type Braille struct {
	pathState

	W, H float64

	buf   *brailleBuf
	text  [][]rune
	tfg   [][]color.Color
	tbold [][]bool

	scale      float64
	offX, offY float64
	viewX      float64
	viewY      float64
}

// NewBraille returns a cleared surface of cols x rows cells showing a
// logical canvas of w x h drawing units.
func NewBraille(cols, rows int, w, h float64) *Braille {
	cols, rows = max(1, cols), max(1, rows)
	b := &Braille{W: w, H: h, pathState: newPathState()}
	b.buf = newBrailleBuf(cols, rows)
	b.text = make([][]rune, rows)
	b.tfg = make([][]color.Color, rows)
	b.tbold = make([][]bool, rows)
	for y := range b.text {
		b.text[y] = make([]rune, cols)
		b.tfg[y] = make([]color.Color, cols)
		b.tbold[y] = make([]bool, cols)
	}
	b.SetView(0, 0, w, h)
	return b
}

// SetView shows the logical window at (x, y) of size w x h instead of the
// whole canvas. Size is unchanged.
func (b *Braille) SetView(x, y, w, h float64) {
	wMic, hMic := float64(b.buf.w*2), float64(b.buf.h*4)
	b.scale = 0
	if w > 0 && h > 0 {
		b.scale = math.Min(wMic/w, hMic/h)
	}
	b.viewX, b.viewY = x, y
	b.offX = (wMic - w*b.scale) / 2
	b.offY = (hMic - h*b.scale) / 2
}

func (b *Braille) Size() (float64, float64) { return b.W, b.H }

// Cells returns the grid size in cells.
func (b *Braille) Cells() (cols, rows int) { return b.buf.w, b.buf.h }

func (b *Braille) Clear() {
	b.pathState.reset()
	for y := 0; y < b.buf.h; y++ {
		for x := 0; x < b.buf.w; x++ {
			b.buf.m[y][x] = 0
			b.buf.fg[y][x] = nil
			b.text[y][x] = 0
			b.tfg[y][x] = nil
			b.tbold[y][x] = false
		}
	}
}

// micro maps absolute logical coords onto the dot grid.
func (b *Braille) micro(p point) (int, int) {
	return int(math.Floor(b.offX + (p.x-b.viewX)*b.scale)), int(math.Floor(b.offY + (p.y-b.viewY)*b.scale))
}

// Dot reports whether the dot under logical point (x, y) is set. The point
// is absolute: the current translation is not applied.
func (b *Braille) Dot(x, y float64) bool {
	mx, my := b.micro(point{x, y})
	return b.buf.pixel(mx, my)
}

func (b *Braille) Stroke() {
	c := b.pen.stroke
	dash := b.pen.dash
	b.segments(func(p, q point) {
		if len(dash) == 0 {
			b.line(p, q, c)
			return
		}
		b.dashedLine(p, q, dash, c)
	})
}

func (b *Braille) line(p, q point, c color.Color) {
	x0, y0 := b.micro(p)
	x1, y1 := b.micro(q)
	b.buf.drawLineMicro(x0, y0, x1, y1, c)
}

// dashedLine walks the pattern along p->q in logical units.
func (b *Braille) dashedLine(p, q point, dash []float64, c color.Color) {
	total := math.Hypot(q.x-p.x, q.y-p.y)
	var period float64
	for _, d := range dash {
		period += math.Abs(d)
	}
	if total == 0 || period == 0 {
		b.line(p, q, c)
		return
	}
	at := func(t float64) point {
		return point{p.x + (q.x-p.x)*t/total, p.y + (q.y-p.y)*t/total}
	}
	pos, i := 0.0, 0
	for pos < total {
		seg := math.Abs(dash[i%len(dash)])
		end := math.Min(total, pos+seg)
		if i%2 == 0 {
			b.line(at(pos), at(end), c)
		}
		pos = end
		i++
	}
}

// Fill paints the even-odd interior of the current path. Dots are on or
// off, so fills below half opacity are skipped.
func (b *Braille) Fill() {
	c := b.pen.fill
	if alpha(c) < 0.5 {
		return
	}
	var rings [][][2]int
	for _, sp := range b.subpaths {
		if len(sp) < 3 {
			continue
		}
		r := make([][2]int, len(sp))
		for i, p := range sp {
			x, y := b.micro(p)
			r[i] = [2]int{x, y}
		}
		rings = append(rings, r)
	}
	hMic := b.buf.h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for _, r := range rings {
			for i := range r {
				a := r[i]
				n := r[(i+1)%len(r)]
				if a[1] == n[1] { // horizontal edge: skip
					continue
				}
				if (yMic >= a[1] && yMic < n[1]) || (yMic >= n[1] && yMic < a[1]) {
					t := float64(yMic-a[1]) / float64(n[1]-a[1])
					xs = append(xs, int(float64(a[0])+t*float64(n[0]-a[0])))
				}
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				b.buf.setPixel(xMic, yMic, c)
			}
		}
	}
	for _, r := range rings {
		for _, p := range r {
			b.buf.setPixel(p[0], p[1], c)
		}
	}
}

// FillText writes text into the cell row holding the glyph body. y is the
// baseline, as on a canvas.
func (b *Braille) FillText(text string, x, y float64, f Font) {
	size := f.Size
	if size <= 0 {
		size = 13
	}
	mx, my := b.micro(point{x + b.pen.tx, y + b.pen.ty - size/3})
	cx, cy := mx/2, my/4
	if cy < 0 || cy >= b.buf.h {
		return
	}
	for _, r := range text {
		if cx >= b.buf.w {
			break
		}
		if cx >= 0 {
			b.text[cy][cx] = r
			b.tfg[cy][cx] = b.pen.fill
			b.tbold[cy][cx] = f.Bold
		}
		cx++
	}
}

// Plain returns the grid as unstyled text, one string per row.
func (b *Braille) Plain() []string {
	out := make([]string, b.buf.h)
	for y := range out {
		row := make([]rune, b.buf.w)
		for x := range row {
			row[x] = b.cell(x, y)
		}
		out[y] = string(row)
	}
	return out
}

func (b *Braille) cell(x, y int) rune {
	if r := b.text[y][x]; r != 0 {
		return r
	}
	if mask := b.buf.m[y][x]; mask != 0 {
		return rune(0x2800 + int(mask))
	}
	return ' '
}

type cellStyle struct {
	fg   string
	bold bool
}

// Lines returns the grid with lipgloss colors applied; runs of cells that
// share a style are rendered together.
func (b *Braille) Lines() []string {
	out := make([]string, b.buf.h)
	for y := range out {
		var sb strings.Builder
		var run []rune
		var cur cellStyle
		flush := func() {
			if len(run) == 0 {
				return
			}
			if cur.fg == "" && !cur.bold {
				sb.WriteString(string(run))
			} else {
				st := lipgloss.NewStyle().Bold(cur.bold)
				if cur.fg != "" {
					st = st.Foreground(lipgloss.Color(cur.fg))
				}
				sb.WriteString(st.Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.buf.w; x++ {
			var st cellStyle
			if b.text[y][x] != 0 {
				st = cellStyle{fg: hexColor(b.tfg[y][x]), bold: b.tbold[y][x]}
			} else if b.buf.m[y][x] != 0 {
				st = cellStyle{fg: hexColor(b.buf.fg[y][x])}
			}
			if st != cur {
				flush()
				cur = st
			}
			run = append(run, b.cell(x, y))
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func hexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// CellOf returns the cell under absolute logical point (x, y).
func (b *Braille) CellOf(x, y float64) (cx, cy int) {
	mx, my := b.micro(point{x, y})
	return mx / 2, my / 4
}

// Logical maps the centre of cell (cx, cy) back to absolute logical coords.
func (b *Braille) Logical(cx, cy int) (x, y float64) {
	if b.scale == 0 {
		return 0, 0
	}
	mx, my := float64(cx*2)+1, float64(cy*4)+2
	return (mx-b.offX)/b.scale + b.viewX, (my-b.offY)/b.scale + b.viewY
}

// Mark overwrites the cell under absolute logical point (x, y) with r.
func (b *Braille) Mark(x, y float64, r rune, c color.Color) {
	cx, cy := b.CellOf(x, y)
	if cx < 0 || cy < 0 || cx >= b.buf.w || cy >= b.buf.h {
		return
	}
	b.text[cy][cx] = r
	b.tfg[cy][cx] = c
	b.tbold[cy][cx] = true
}
