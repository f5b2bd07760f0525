// Package ui draws everything composited over the race: the heads up
// display, the speed streaks and the title and crash overlays.
package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/roadrash/pkg/draw"
)

const (
	// BarHeight is the height of the translucent strip at the top
	BarHeight = 48
	// TopSpeedKmh is the speed shown at full throttle
	TopSpeedKmh = 220

	speedBarWidth  = 200
	speedBarHeight = 16
	speedBarY      = 16
	labelY         = 13
	labelScale     = 2
	helpScale      = 1
)

// Speed bar colour thresholds
const (
	FastRatio     = 0.6
	VeryFastRatio = 0.85
)

var (
	barColor       = color.NRGBA{10, 10, 30, 180}
	speedTextColor = color.RGBA{255, 220, 50, 255}
	scoreTextColor = color.RGBA{255, 255, 255, 255}
	trackColor     = color.RGBA{40, 40, 40, 255}
	outlineColor   = color.RGBA{180, 180, 180, 255}
	helpColor      = color.RGBA{140, 140, 140, 255}
	slowColor      = color.RGBA{50, 220, 50, 255}
	fastColor      = color.RGBA{255, 180, 0, 255}
	veryFastColor  = color.RGBA{255, 60, 60, 255}
)

// HelpText lists the controls along the bottom of the screen
const HelpText = "UP/DOWN Speed  LEFT/RIGHT Steer  ENTER/SPACE Start  ESC Quit"

// HUD is what the heads up display shows
type HUD struct {
	SpeedRatio float64
	Score      int
}

// Kmh converts a speed ratio to the displayed speed
func Kmh(ratio float64) int {
	return int(ratio * TopSpeedKmh)
}

// SpeedBarColor picks green, orange or red for the speed bar
func SpeedBarColor(ratio float64) color.RGBA {
	switch {
	case ratio < FastRatio:
		return slowColor
	case ratio < VeryFastRatio:
		return fastColor
	}
	return veryFastColor
}

// DrawHUD draws the top strip with speed, score and speed bar, and the help
// line at the bottom
func DrawHUD(c draw.Canvas, h HUD) {
	w, height := c.Size()
	fw := float64(w)

	c.FillRect(0, 0, fw, BarHeight, barColor)
	c.Text(fmt.Sprintf("Speed: %d km/h", Kmh(h.SpeedRatio)), 12, labelY, labelScale, speedTextColor)
	c.Text(fmt.Sprintf("Score: %d", h.Score), fw-200, labelY, labelScale, scoreTextColor)

	x := fw/2 - speedBarWidth/2
	c.FillRect(x, speedBarY, speedBarWidth, speedBarHeight, trackColor)
	if bw := float64(int(h.SpeedRatio * speedBarWidth)); bw > 0 {
		c.FillRect(x, speedBarY, bw, speedBarHeight, SpeedBarColor(h.SpeedRatio))
	}
	c.StrokePolygon([]draw.Point{
		{X: x, Y: speedBarY},
		{X: x + speedBarWidth, Y: speedBarY},
		{X: x + speedBarWidth, Y: speedBarY + speedBarHeight},
		{X: x, Y: speedBarY + speedBarHeight},
	}, 1, outlineColor)

	hw := c.TextWidth(HelpText, helpScale)
	c.Text(HelpText, fw/2-hw/2, float64(height)-20, helpScale, helpColor)
}
