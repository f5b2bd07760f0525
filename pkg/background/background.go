// Package background paints the backdrop behind the road: sky, clouds, a
// distant range of hills and the grass plain below the horizon.
package background

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/golangdaddy/roadrash/pkg/draw"
)

const (
	// Clouds is the number of clouds scattered across the sky
	Clouds = 10

	skyOverlap   = 10   // rows of sky painted below the horizon
	hillStep     = 16.0 // horizontal spacing of hill outline points
	hillHeight   = 18.0
	hillPeriod   = 65.0
	hillParallax = 0.00015 // hill phase shift per unit of track position
	hillFoot     = 25.0
	cloudTop     = 8
	cloudClear   = 30 // lowest clouds stay this far above the horizon
	minCloud     = 60
	maxCloud     = 160
	cloudAspect  = 0.55
)

var (
	cloudColor = color.NRGBA{255, 255, 255, 90}
	hillColor  = color.RGBA{18, 85, 18, 255}
	grassColor = color.RGBA{20, 90, 20, 255}
)

type cloud struct {
	x, y, r float64
}

// Generator paints the backdrop for one screen size. Cloud placement is
// seeded once so the sky does not change between frames.
type Generator struct {
	Width   int
	Height  int
	Horizon float64
	clouds  []cloud
}

// NewGenerator creates a backdrop generator and scatters its clouds
func NewGenerator(width, height int, horizon float64, rng *rand.Rand) *Generator {
	g := &Generator{
		Width:   width,
		Height:  height,
		Horizon: horizon,
		clouds:  make([]cloud, Clouds),
	}
	lowest := int(horizon) - cloudClear
	if lowest <= cloudTop {
		lowest = cloudTop + 1
	}
	for i := range g.clouds {
		g.clouds[i] = cloud{
			x: float64(rng.Intn(width + 1)),
			y: float64(cloudTop + rng.Intn(lowest-cloudTop+1)),
			r: float64(minCloud + rng.Intn(maxCloud-minCloud+1)),
		}
	}
	return g
}

// Draw paints the backdrop. position is the rider's distance along the
// track and slides the hills sideways.
func (g *Generator) Draw(c draw.Canvas, position float64) {
	w := float64(g.Width)
	g.drawSky(c)

	for _, cl := range g.clouds {
		c.FillEllipse(cl.x-cl.r, cl.y, cl.r*2, cl.r*cloudAspect, cloudColor)
	}

	g.drawHills(c, position)

	c.FillRect(0, g.Horizon, w, float64(g.Height)-g.Horizon, grassColor)
}

// drawSky paints a one pixel high gradient from deep blue to pale blue
func (g *Generator) drawSky(c draw.Canvas) {
	rows := int(g.Horizon) + skyOverlap
	for y := 0; y < rows; y++ {
		c.FillRect(0, float64(y), float64(g.Width), 1, SkyColor(float64(y)/float64(rows)))
	}
}

// drawHills fills the silhouette of the distant range as one polygon per
// outline step, since the outline itself is not convex
func (g *Generator) drawHills(c draw.Canvas, position float64) {
	foot := g.Horizon + hillFoot
	ridge := func(x float64) float64 {
		return g.Horizon - hillHeight*math.Sin(x/hillPeriod+position*hillParallax)
	}
	for x := 0.0; x < float64(g.Width); x += hillStep {
		nx := x + hillStep
		c.FillPolygon([]draw.Point{
			{X: x, Y: foot},
			{X: x, Y: ridge(x)},
			{X: nx, Y: ridge(nx)},
			{X: nx, Y: foot},
		}, hillColor)
	}
}

// SkyColor returns the sky colour at fraction t of the way down to the
// horizon
func SkyColor(t float64) color.RGBA {
	return color.RGBA{
		uint8(8 + t*75),
		uint8(25 + t*115),
		uint8(80 + t*140),
		255,
	}
}
