// Package window puts the game on screen with ebiten: a draw.Canvas backed
// by an ebiten image, keyboard input and the ebiten.Game driving the loop.
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/roadrash/pkg/draw"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Screen is a draw.Canvas painting onto an ebiten image
type Screen struct {
	target   *ebiten.Image
	face     text.Face
	vertices []ebiten.Vertex
}

// NewScreen returns a canvas with no target yet
func NewScreen() *Screen {
	return &Screen{
		face: text.NewGoXFace(bitmapfont.Face),
	}
}

// SetTarget points the canvas at the image of the current frame
func (s *Screen) SetTarget(img *ebiten.Image) {
	s.target = img
}

func (s *Screen) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Screen) FillCircle(cx, cy, r float64, c color.Color) {
	vector.FillCircle(s.target, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Screen) FillEllipse(x, y, w, h float64, c color.Color) {
	s.FillPolygon(draw.EllipsePoints(x, y, w, h), c)
}

// FillPolygon draws a convex polygon as a triangle fan over a white texel.
// Vertex colours are premultiplied.
func (s *Screen) FillPolygon(pts []draw.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	cr, cg, cb, ca := draw.VertexColor(c)

	s.vertices = s.vertices[:0]
	for _, p := range pts {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	s.target.DrawTriangles(s.vertices, draw.FanIndices(len(pts)), whiteSubImage, op)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *Screen) StrokePolygon(pts []draw.Point, width float64, c color.Color) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		s.StrokeLine(p.X, p.Y, q.X, q.Y, width, c)
	}
}

func (s *Screen) StrokeArc(cx, cy, r, start, end, width float64, c color.Color) {
	pts := draw.ArcPoints(cx, cy, r, start, end)
	for i := 1; i < len(pts); i++ {
		s.StrokeLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, width, c)
	}
}

func (s *Screen) Text(str string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.target, str, s.face, op)
}

func (s *Screen) TextWidth(str string, scale float64) float64 {
	return text.Advance(str, s.face) * scale
}

func (s *Screen) Size() (int, int) {
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}
