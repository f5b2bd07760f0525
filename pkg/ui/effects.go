package ui

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/golangdaddy/roadrash/pkg/draw"
)

const (
	// StreakRatio is the speed ratio above which speed streaks appear
	StreakRatio = 0.6

	streaksAtFull = 8
	streakLength  = 30.0
	streakWidth   = 2.0
	streakAlpha   = 60.0
)

// DrawSpeedLines scatters faint vertical streaks below the horizon. More,
// longer and brighter streaks appear the faster the rider goes.
func DrawSpeedLines(c draw.Canvas, ratio, horizon float64, rng *rand.Rand) {
	if ratio <= StreakRatio {
		return
	}
	w, h := c.Size()
	n := int(ratio * streaksAtFull)
	length := ratio * streakLength
	a := uint8(math.Round(streakAlpha * (ratio - StreakRatio) / (1 - StreakRatio)))
	col := color.NRGBA{255, 255, 255, a}
	span := float64(h) - horizon
	for i := 0; i < n; i++ {
		x := rng.Float64() * float64(w)
		y := horizon + rng.Float64()*span
		c.FillRect(x, y, streakWidth, length, col)
	}
}
