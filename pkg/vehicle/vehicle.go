// Package vehicle draws bikes and riders procedurally, seen from behind
package vehicle

import "image/color"

// MinScale is the smallest scale a bike is drawn at
const MinScale = 0.06

// PlayerBodyColor is the fairing colour of the player's bike
var PlayerBodyColor = color.RGBA{30, 100, 220, 255}

// Bike describes one bike and rider to draw
type Bike struct {
	X, Y       float64 // rear wheel hub on screen
	Scale      float64
	Lean       float64 // signed, shifts the whole bike sideways
	WheelPhase float64 // spoke rotation in radians
	SpeedRatio float64 // speed over max speed, [0, 1]
	Body       color.RGBA
	Player     bool // exhaust flame and headlight glow are player only
}
