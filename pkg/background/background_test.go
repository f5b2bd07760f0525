package background

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/roadrash/pkg/draw"
)

func newGenerator(seed int64) *Generator {
	return NewGenerator(800, 600, 228, rand.New(rand.NewSource(seed)))
}

func TestSkyColor(t *testing.T) {
	assert.Equal(t, color.RGBA{8, 25, 80, 255}, SkyColor(0))
	assert.Equal(t, color.RGBA{83, 140, 220, 255}, SkyColor(1))
}

func TestCloudsStayInTheSky(t *testing.T) {
	g := newGenerator(42)
	require.Len(t, g.clouds, Clouds)
	for _, cl := range g.clouds {
		assert.GreaterOrEqual(t, cl.y, float64(cloudTop))
		assert.LessOrEqual(t, cl.y, g.Horizon-cloudClear)
		assert.GreaterOrEqual(t, cl.r, float64(minCloud))
		assert.LessOrEqual(t, cl.r, float64(maxCloud))
	}
}

func TestDrawLayers(t *testing.T) {
	g := newGenerator(1)
	rec := draw.NewRecorder(800, 600)
	g.Draw(rec, 0)

	rows := 228 + skyOverlap
	hills := 800 / int(hillStep)
	require.Len(t, rec.Commands, rows+Clouds+hills+1)

	assert.Equal(t, SkyColor(0), rec.Commands[0].Color)
	for _, c := range rec.Commands[rows : rows+Clouds] {
		assert.Equal(t, draw.OpFillEllipse, c.Op)
		assert.Equal(t, cloudColor, c.Color)
	}
	for _, c := range rec.Commands[rows+Clouds : rows+Clouds+hills] {
		assert.Equal(t, draw.OpFillPolygon, c.Op)
	}

	grass := rec.Commands[len(rec.Commands)-1]
	assert.Equal(t, grassColor, grass.Color)
	assert.Equal(t, 228.0, grass.Y)
	assert.Equal(t, 600.0-228, grass.H)
}

func TestHillsScrollWithPosition(t *testing.T) {
	g := newGenerator(1)
	a := draw.NewRecorder(800, 600)
	b := draw.NewRecorder(800, 600)
	g.Draw(a, 0)
	g.Draw(b, 5000)

	first := 228 + skyOverlap + Clouds
	assert.NotEqual(t, a.Commands[first].Points, b.Commands[first].Points)
	assert.Equal(t, a.Commands[:first], b.Commands[:first], "sky and clouds do not move")
}

func TestSameSeedSameSky(t *testing.T) {
	assert.Equal(t, newGenerator(9).clouds, newGenerator(9).clouds)
}
