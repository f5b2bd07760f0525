package vehicle

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/golangdaddy/roadrash/pkg/draw"
)

const (
	spokes        = 6
	leanShift     = 22.0 // horizontal shift per unit of lean, at scale 1
	flameRatio    = 0.5  // speed ratio above which the player's exhaust burns
	brakingRatio  = 0.3  // speed ratio below which the tail light glows harder
	highlightLift = 50
)

var (
	shadowColor     = color.NRGBA{0, 0, 0, 50}
	tyreColor       = color.RGBA{30, 30, 30, 255}
	rimColor        = color.RGBA{50, 50, 50, 255}
	spokeColor      = color.RGBA{140, 140, 140, 255}
	hubColor        = color.RGBA{180, 180, 180, 255}
	frameColor      = color.RGBA{80, 80, 80, 255}
	engineColor     = color.RGBA{60, 60, 70, 255}
	engineLineColor = color.RGBA{90, 90, 100, 255}
	exhaustColor    = color.RGBA{160, 140, 100, 255}
	brakeLightColor = color.RGBA{255, 30, 30, 255}
	tailLightColor  = color.RGBA{255, 80, 80, 255}
	windscreenColor = color.NRGBA{140, 200, 255, 100}
	windscreenEdge  = color.RGBA{100, 170, 230, 255}
	handlebarColor  = color.RGBA{160, 160, 160, 255}
	gripColor       = color.RGBA{40, 40, 40, 255}
	mirrorStemColor = color.RGBA{150, 150, 150, 255}
	mirrorColor     = color.RGBA{180, 200, 220, 255}
	leathersColor   = color.RGBA{40, 40, 45, 255}
	armColor        = color.RGBA{35, 35, 40, 255}
	helmetColor     = color.RGBA{40, 40, 40, 255}
	visorColor      = color.RGBA{70, 140, 200, 255}
	headlightColor  = color.NRGBA{255, 255, 200, 40}
	flameColors     = [3]color.RGBA{{255, 100, 20, 255}, {255, 180, 30, 255}, {255, 220, 80, 255}}
)

// Draw paints b onto c back to front. rng jitters the exhaust flame; a nil
// rng draws the flame without jitter.
func Draw(c draw.Canvas, b Bike, rng *rand.Rand) {
	if b.Scale < MinScale {
		return
	}
	s := b.Scale
	lx := b.Lean * leanShift * s
	cx := b.X + lx
	by := b.Y
	px := func(v float64) float64 { return math.Max(1, v*s) }

	// shadow
	sw := 65 * s
	c.FillEllipse(b.X-sw+lx/2, by+3*s, sw*2, sw*0.4, shadowColor)

	// rear wheel
	wr := math.Max(3, 22*s)
	c.FillCircle(cx, by, wr, tyreColor)
	c.FillCircle(cx, by, math.Max(2, wr-4*s), rimColor)
	spoke := wr - 3*s
	for i := 0; i < spokes; i++ {
		a := b.WheelPhase + float64(i)*2*math.Pi/spokes
		c.StrokeLine(cx, by, cx+math.Cos(a)*spoke, by+math.Sin(a)*spoke, px(1.5), spokeColor)
	}
	c.FillCircle(cx, by, px(4), hubColor)

	// frame and swing arm
	c.StrokeLine(cx, by, cx, by-40*s, px(4), frameColor)

	// engine
	ew, eh := 28*s, 18*s
	ey := by - 18*s
	c.FillRect(cx-ew/2, ey, ew, eh, engineColor)
	for i := 1; i <= 3; i++ {
		y := ey + float64(i)*eh/4
		c.StrokeLine(cx-ew/2+2*s, y, cx+ew/2-2*s, y, px(1), engineLineColor)
	}

	// exhaust
	tipX := cx + 34*s
	tipY := by + 5*s
	c.StrokeLine(cx+ew/2, ey+eh-2*s, tipX, tipY, px(4), exhaustColor)
	if b.Player && b.SpeedRatio > flameRatio {
		flame := 10 * s * b.SpeedRatio
		for i, col := range flameColors {
			fx, fy := tipX, tipY
			if rng != nil {
				fx += rng.Float64() * flame
				fy += (rng.Float64()*2 - 1) * 3 * s
			}
			c.FillCircle(fx, fy, px(float64(3-i)), col)
		}
	}

	// fairing
	body := []draw.Point{
		{X: cx - 24*s, Y: by - 18*s},
		{X: cx + 24*s, Y: by - 18*s},
		{X: cx + 18*s, Y: by - 58*s},
		{X: cx - 18*s, Y: by - 58*s},
	}
	c.FillPolygon(body, b.Body)
	c.FillPolygon([]draw.Point{
		{X: body[0].X + 4*s, Y: body[0].Y - 2*s},
		{X: body[0].X + 14*s, Y: body[0].Y - 2*s},
		{X: body[3].X + 14*s, Y: body[3].Y + 2*s},
		{X: body[3].X + 4*s, Y: body[3].Y + 2*s},
	}, draw.Lighten(b.Body, highlightLift))

	// tail light
	tlw := math.Max(2, 16*s)
	tail := tailLightColor
	if b.SpeedRatio < brakingRatio {
		tail = brakeLightColor
	}
	c.FillRect(cx-tlw/2, by-20*s, tlw, px(5), tail)

	// windscreen
	screen := []draw.Point{
		{X: cx - 13*s, Y: by - 58*s},
		{X: cx + 13*s, Y: by - 58*s},
		{X: cx + 9*s, Y: by - 72*s},
		{X: cx - 9*s, Y: by - 72*s},
	}
	c.FillPolygon(screen, windscreenColor)
	c.StrokePolygon(screen, px(2), windscreenEdge)

	// handlebars, grips, mirrors
	hbY := by - 68*s
	hbW := 28 * s
	c.StrokeLine(cx-hbW, hbY, cx+hbW, hbY, px(3), handlebarColor)
	for _, side := range []float64{-1, 1} {
		c.FillCircle(cx+side*hbW, hbY, px(3), gripColor)
	}
	for _, side := range []float64{-1, 1} {
		mx := cx + side*(hbW+5*s)
		my := hbY - 5*s
		c.StrokeLine(cx+side*hbW, hbY, mx, my, px(1.5), mirrorStemColor)
		c.FillEllipse(mx-3*s, my-2*s, 6*s, 4*s, mirrorColor)
	}

	// rider
	torsoY := by - 78*s
	tw := 24 * s
	c.FillRect(cx-tw/2, torsoY, tw, 22*s, leathersColor)
	shoulderY := torsoY + 4*s
	for _, side := range []float64{-1, 1} {
		c.StrokeLine(cx+side*12*s, shoulderY, cx+side*hbW, hbY, px(4), armColor)
	}

	hy := torsoY - 14*s
	hr := math.Max(3, 16*s)
	c.FillCircle(cx, hy, hr, helmetColor)
	c.FillEllipse(cx-hr*0.75, hy-hr*0.3, hr*1.5, hr*0.6, visorColor)
	c.StrokeArc(cx, hy, hr, -0.8*math.Pi, -0.2*math.Pi, px(3), b.Body)

	if b.Player {
		c.FillEllipse(cx-10*s, by-65*s, 20*s, 10*s, headlightColor)
	}
}
