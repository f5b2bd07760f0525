package render

import (
	"image/color"
	"math"

	"github.com/golangdaddy/roadrash/pkg/draw"
)

// Two tone palettes, indexed by stripe parity (painted first)
var (
	grassColors = [2]color.RGBA{{20, 90, 20, 255}, {30, 120, 30, 255}}
	roadColors  = [2]color.RGBA{{44, 44, 44, 255}, {62, 62, 62, 255}}
	kerbColors  = [2]color.RGBA{{220, 30, 30, 255}, {230, 230, 230, 255}}
	dashColor   = color.RGBA{255, 255, 255, 255}
	railColor   = color.RGBA{160, 160, 170, 255}
)

const (
	kerbRatio    = 10.0 // road half width per kerb width
	dashRatio    = 25.0 // road half width per dash half width
	dashMinWidth = 8.0  // narrower roads get no centre line
	railWidth    = 2.5
)

// PaintBands paints the road far to near so nearer bands cover farther ones
func PaintBands(c draw.Canvas, f Frame) {
	for i := len(f.Bands) - 1; i >= 0; i-- {
		PaintBand(c, f.Bands[i])
	}
}

// PaintBand draws grass, road, kerbs, centre dash and guard rail posts for
// one band
func PaintBand(c draw.Canvas, b Band) {
	w, _ := c.Size()
	near, far := b.Near, b.Far
	if far.Y >= near.Y {
		return
	}
	tone := 1
	if b.Painted {
		tone = 0
	}

	c.FillRect(0, far.Y, float64(w), near.Y-far.Y, draw.Fog(grassColors[tone], b.Fog))

	c.FillPolygon([]draw.Point{
		{X: near.X - near.HalfWidth, Y: near.Y},
		{X: near.X + near.HalfWidth, Y: near.Y},
		{X: far.X + far.HalfWidth, Y: far.Y},
		{X: far.X - far.HalfWidth, Y: far.Y},
	}, draw.Fog(roadColors[tone], b.Fog))

	kerb := draw.Fog(kerbColors[tone], b.Fog)
	nk := math.Max(1, near.HalfWidth/kerbRatio)
	fk := math.Max(1, far.HalfWidth/kerbRatio)
	for _, side := range []float64{-1, 1} {
		nx := near.X + side*near.HalfWidth
		fx := far.X + side*far.HalfWidth
		c.FillPolygon([]draw.Point{
			{X: nx, Y: near.Y},
			{X: nx + side*nk, Y: near.Y},
			{X: fx + side*fk, Y: far.Y},
			{X: fx, Y: far.Y},
		}, kerb)
	}

	if b.Painted && far.HalfWidth > dashMinWidth {
		nd := math.Max(1, near.HalfWidth/dashRatio)
		fd := math.Max(1, far.HalfWidth/dashRatio)
		c.FillPolygon([]draw.Point{
			{X: near.X - nd, Y: near.Y},
			{X: near.X + nd, Y: near.Y},
			{X: far.X + fd, Y: far.Y},
			{X: far.X - fd, Y: far.Y},
		}, draw.Fog(dashColor, b.Fog))
	}

	rail := draw.Fog(railColor, b.Fog)
	rw := math.Max(1, railWidth*b.SpriteScale)
	for _, side := range []float64{-1, 1} {
		x := far.X + side*(far.HalfWidth+railGap*b.SpriteScale)
		c.StrokeLine(x, near.Y, x, far.Y, rw, rail)
	}
}
