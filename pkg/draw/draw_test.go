package draw

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFog(t *testing.T) {
	c := color.RGBA{20, 90, 20, 255}
	assert.Equal(t, c, Fog(c, 0))
	assert.Equal(t, color.RGBA{175, 175, 175, 255}, Fog(c, 1))
	assert.Equal(t, color.RGBA{175, 175, 175, 255}, Fog(c, 3), "factor is clamped")

	half := Fog(color.RGBA{75, 75, 75, 255}, 0.5)
	assert.Equal(t, uint8(125), half.R)
}

func TestLighten(t *testing.T) {
	assert.Equal(t, color.RGBA{80, 150, 255, 255}, Lighten(color.RGBA{30, 100, 220, 255}, 50))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Lighten(color.RGBA{10, 20, 30, 255}, -50))
}

func TestVertexColorIsPremultiplied(t *testing.T) {
	r, g, b, a := VertexColor(color.NRGBA{255, 255, 255, 90})
	want := float32(90) / 255
	assert.InDelta(t, want, r, 1e-6)
	assert.InDelta(t, want, g, 1e-6)
	assert.InDelta(t, want, b, 1e-6)
	assert.InDelta(t, want, a, 1e-6)

	r, g, b, a = VertexColor(color.RGBA{30, 100, 220, 255})
	assert.InDelta(t, float32(30)/255, r, 1e-6)
	assert.InDelta(t, float32(100)/255, g, 1e-6)
	assert.InDelta(t, float32(220)/255, b, 1e-6)
	assert.InDelta(t, 1, a, 1e-6)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(800, 600)
	pts := []Point{{0, 0}, {10, 0}, {10, 10}}
	r.FillPolygon(pts, color.White)
	pts[0].X = 99
	r.StrokeLine(1, 2, 3, 4, 2, color.Black)
	r.FillRect(0, 0, 5, 5, color.Black)

	assert.Len(t, r.Commands, 3)
	assert.Equal(t, 0.0, r.Commands[0].Points[0].X, "recorded polygon must not alias the caller slice")
	assert.Equal(t, []Point{{1, 2}, {3, 4}}, r.Commands[1].Points)
	assert.Equal(t, 1, r.Count(OpFillRect))
	assert.Equal(t, "stroke-line", r.Commands[1].Op.String())

	w, h := r.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, 36.0, r.TextWidth("SCORE:", 1))

	r.Reset()
	assert.Empty(t, r.Commands)
}
