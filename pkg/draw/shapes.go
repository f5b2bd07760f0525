package draw

import "math"

// Segments used to approximate curves. Both are enough for the largest
// shapes the game draws (the shadow of the player's bike) to look round.
const (
	EllipseSegments = 24
	ArcSegments     = 12
)

// EllipsePoints returns a convex polygon approximating the ellipse
// inscribed in the box at x, y of size w by h
func EllipsePoints(x, y, w, h float64) []Point {
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2
	pts := make([]Point, EllipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / EllipseSegments
		pts[i] = Point{cx + math.Cos(a)*rx, cy + math.Sin(a)*ry}
	}
	return pts
}

// ArcPoints returns the polyline of the arc of radius r around cx, cy from
// angle start to end. Angles grow clockwise on screen since y points down.
func ArcPoints(cx, cy, r, start, end float64) []Point {
	pts := make([]Point, ArcSegments+1)
	for i := range pts {
		a := start + (end-start)*float64(i)/ArcSegments
		pts[i] = Point{cx + math.Cos(a)*r, cy + math.Sin(a)*r}
	}
	return pts
}

// FanIndices returns triangle indices covering a convex polygon of n
// vertices as a fan around the first one
func FanIndices(n int) []uint16 {
	if n < 3 {
		return nil
	}
	idx := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		idx = append(idx, 0, uint16(i), uint16(i+1))
	}
	return idx
}
