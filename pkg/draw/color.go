package draw

import (
	"image/color"

	"github.com/samber/lo"
)

// Haze is the colour distant geometry fades into
var Haze = color.RGBA{175, 175, 175, 255}

// Fog blends c toward Haze by f in [0, 1]
func Fog(c color.RGBA, f float64) color.RGBA {
	f = lo.Clamp(f, 0, 1)
	mix := func(v, h uint8) uint8 {
		return uint8(lo.Clamp(float64(v)+f*(float64(h)-float64(v)), 0, 255))
	}
	return color.RGBA{mix(c.R, Haze.R), mix(c.G, Haze.G), mix(c.B, Haze.B), c.A}
}

// Lighten adds d to every channel, saturating at 255
func Lighten(c color.RGBA, d int) color.RGBA {
	add := func(v uint8) uint8 {
		return uint8(lo.Clamp(int(v)+d, 0, 255))
	}
	return color.RGBA{add(c.R), add(c.G), add(c.B), c.A}
}

// WithAlpha returns c as a straight alpha colour with opacity a
func WithAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, a}
}

// VertexColor returns c as premultiplied components in [0, 1], the form
// triangle vertices are drawn with
func VertexColor(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}
