package draw

import "image/color"

// Point is a screen space coordinate
type Point struct {
	X, Y float64
}

// Canvas is the set of primitives every renderer in the game draws with.
// Renderers never touch the frame buffer directly, so the same code paints
// the ebiten screen and the Recorder used by tests and the headless runner.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	// FillEllipse fills the ellipse inscribed in the given box
	FillEllipse(x, y, w, h float64, c color.Color)
	// FillPolygon fills a convex polygon
	FillPolygon(pts []Point, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	StrokePolygon(pts []Point, width float64, c color.Color)
	// StrokeArc strokes the arc from start to end (radians, clockwise on screen)
	StrokeArc(cx, cy, r, start, end, width float64, c color.Color)
	// Text draws s with its top-left corner at x, y
	Text(s string, x, y, scale float64, c color.Color)
	TextWidth(s string, scale float64) float64
	Size() (w, h int)
}
