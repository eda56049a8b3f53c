package draw

import (
	"fmt"
	"image/color"
	"io"
	"strings"
)

// Op is one recorded surface call.
type Op struct {
	Name string
	Args []any
}

func (o Op) String() string {
	if len(o.Args) == 0 {
		return o.Name
	}
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		switch v := a.(type) {
		case float64:
			parts[i] = fmt.Sprintf("%.2f", v)
		case color.Color:
			r, g, b, al := v.RGBA()
			parts[i] = fmt.Sprintf("rgba(%d,%d,%d,%d)", r>>8, g>>8, b>>8, al>>8)
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	return o.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Recorder is a Surface that only logs the calls it receives. Clear drops
// everything recorded before it, like a real surface losing its pixels.
type Recorder struct {
	W, H float64
	ops  []Op
}

func NewRecorder(w, h float64) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) add(name string, args ...any) {
	r.ops = append(r.ops, Op{Name: name, Args: args})
}

// Ops returns the calls made since the last Clear, Clear included.
func (r *Recorder) Ops() []Op { return r.ops }

// Count returns how many recorded ops have the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, o := range r.ops {
		if o.Name == name {
			n++
		}
	}
	return n
}

// Texts returns the text of every FillText call, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, o := range r.ops {
		if o.Name == "FillText" {
			out = append(out, o.Args[0].(string))
		}
	}
	return out
}

// WriteTo prints one op per line.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, o := range r.ops {
		c, err := fmt.Fprintln(w, o.String())
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.ops = nil
	r.add("Clear")
}

func (r *Recorder) Save()                        { r.add("Save") }
func (r *Recorder) Restore()                     { r.add("Restore") }
func (r *Recorder) Translate(dx, dy float64)     { r.add("Translate", dx, dy) }
func (r *Recorder) SetLineWidth(w float64)       { r.add("SetLineWidth", w) }
func (r *Recorder) SetStrokeColor(c color.Color) { r.add("SetStrokeColor", c) }
func (r *Recorder) SetFillColor(c color.Color)   { r.add("SetFillColor", c) }
func (r *Recorder) BeginPath()                   { r.add("BeginPath") }
func (r *Recorder) MoveTo(x, y float64)          { r.add("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64)          { r.add("LineTo", x, y) }
func (r *Recorder) ClosePath()                   { r.add("ClosePath") }
func (r *Recorder) Stroke()                      { r.add("Stroke") }
func (r *Recorder) Fill()                        { r.add("Fill") }

func (r *Recorder) SetDash(pattern ...float64) {
	args := make([]any, len(pattern))
	for i, p := range pattern {
		args[i] = p
	}
	r.add("SetDash", args...)
}

func (r *Recorder) Arc(x, y, rad, a0, a1 float64) { r.add("Arc", x, y, rad, a0, a1) }

func (r *Recorder) FillText(text string, x, y float64, f Font) {
	r.add("FillText", text, x, y, f.Size, f.Bold)
}
