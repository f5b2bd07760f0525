package draw

import "image/color"

// Op identifies the primitive of a recorded Command
type Op int

const (
	OpFillRect Op = iota
	OpFillCircle
	OpFillEllipse
	OpFillPolygon
	OpStrokeLine
	OpStrokePolygon
	OpStrokeArc
	OpText
)

func (o Op) String() string {
	switch o {
	case OpFillRect:
		return "fill-rect"
	case OpFillCircle:
		return "fill-circle"
	case OpFillEllipse:
		return "fill-ellipse"
	case OpFillPolygon:
		return "fill-polygon"
	case OpStrokeLine:
		return "stroke-line"
	case OpStrokePolygon:
		return "stroke-polygon"
	case OpStrokeArc:
		return "stroke-arc"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Command is one recorded draw call. Only the fields relevant to Op are set:
// rects and ellipses use X, Y, W, H; circles and arcs use X, Y, R (arcs also
// Start, End); lines use Points[0..1]; polygons use Points.
type Command struct {
	Op     Op
	X, Y   float64
	W, H   float64
	R      float64
	Start  float64
	End    float64
	Width  float64
	Points []Point
	Text   string
	Color  color.Color
}

// Recorder is a Canvas that keeps every call instead of drawing it
type Recorder struct {
	W, H     int
	Commands []Command
}

// NewRecorder returns an empty recorder with the given logical size
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

// Reset drops recorded commands, keeping capacity
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Count returns how many commands of op were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) add(c Command) {
	r.Commands = append(r.Commands, c)
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.add(Command{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.add(Command{Op: OpFillCircle, X: cx, Y: cy, R: rad, Color: c})
}

func (r *Recorder) FillEllipse(x, y, w, h float64, c color.Color) {
	r.add(Command{Op: OpFillEllipse, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillPolygon(pts []Point, c color.Color) {
	r.add(Command{Op: OpFillPolygon, Points: append([]Point(nil), pts...), Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.add(Command{Op: OpStrokeLine, Points: []Point{{x0, y0}, {x1, y1}}, Width: width, Color: c})
}

func (r *Recorder) StrokePolygon(pts []Point, width float64, c color.Color) {
	r.add(Command{Op: OpStrokePolygon, Points: append([]Point(nil), pts...), Width: width, Color: c})
}

func (r *Recorder) StrokeArc(cx, cy, rad, start, end, width float64, c color.Color) {
	r.add(Command{Op: OpStrokeArc, X: cx, Y: cy, R: rad, Start: start, End: end, Width: width, Color: c})
}

func (r *Recorder) Text(s string, x, y, scale float64, c color.Color) {
	r.add(Command{Op: OpText, X: x, Y: y, W: scale, Text: s, Color: c})
}

// TextWidth assumes the 6 pixel advance of the bitmap font
func (r *Recorder) TextWidth(s string, scale float64) float64 {
	return float64(len([]rune(s))) * 6 * scale
}

func (r *Recorder) Size() (int, int) {
	return r.W, r.H
}
