package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds the tunables of the racer.
// Distances are in world units, rates are per second unless noted.
type Config struct {
	// Window
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	FPS    int    `mapstructure:"fps"`
	Title  string `mapstructure:"title"`

	// Track
	Segments      int     `mapstructure:"segments"`       // number of segments in the ring
	SegmentLength float64 `mapstructure:"segment-length"` // longitudinal length of one segment
	RoadWidth     float64 `mapstructure:"road-width"`     // half width of the road
	TrafficCount  int     `mapstructure:"traffic"`        // rival bikes seeded on reset
	Seed          int64   `mapstructure:"seed"`           // 0 picks a time based seed

	// Projection
	DrawDistance int     `mapstructure:"draw-distance"` // segments projected per frame
	CameraDepth  float64 `mapstructure:"camera-depth"`
	CameraHeight float64 `mapstructure:"camera-height"`
	HorizonRatio float64 `mapstructure:"horizon-ratio"` // horizon y as a fraction of the height
	CurveScale   float64 `mapstructure:"curve-scale"`
	FogExponent  float64 `mapstructure:"fog-exponent"`
	SpriteScale  float64 `mapstructure:"sprite-scale"`

	// Physics
	MaxSpeed      float64 `mapstructure:"max-speed"`
	IdleWheelRate float64 `mapstructure:"idle-wheel-rate"` // radians per second on the title screen
	WheelRate     float64 `mapstructure:"wheel-rate"`      // radians per world unit travelled
	ScoreRate     float64 `mapstructure:"score-rate"`      // points per second at full speed

	// Collision
	CollisionThreshold float64 `mapstructure:"collision-threshold"` // lateral distance that counts as a hit
	CollisionAhead     int     `mapstructure:"collision-ahead"`     // segments checked ahead of the rider
	CollisionBehind    int     `mapstructure:"collision-behind"`    // segments checked behind the rider
}

// Default returns the configuration the game ships with
func Default() Config {
	return Config{
		Width:  800,
		Height: 600,
		FPS:    60,
		Title:  "Road Rash 3D",

		Segments:      300,
		SegmentLength: 200,
		RoadWidth:     2000,
		TrafficCount:  30,

		DrawDistance: 150,
		CameraDepth:  0.84,
		CameraHeight: 1500,
		HorizonRatio: 0.38,
		CurveScale:   16,
		FogExponent:  1.1,
		SpriteScale:  1.2,

		MaxSpeed:      1800,
		IdleWheelRate: 3,
		WheelRate:     0.05,
		ScoreRate:     12,

		CollisionThreshold: 0.2,
		CollisionAhead:     2,
		CollisionBehind:    1,
	}
}

// Horizon returns the screen y of the horizon line
func (c Config) Horizon() float64 {
	return float64(c.Height) * c.HorizonRatio
}

// TrackLength returns the length of the whole ring in world units
func (c Config) TrackLength() float64 {
	return float64(c.Segments) * c.SegmentLength
}

// Validate reports the first field that would break the simulation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.Segments < 10:
		return fmt.Errorf("%w: segments %d, need at least 10", ErrInvalid, c.Segments)
	case c.SegmentLength <= 0:
		return fmt.Errorf("%w: segment-length %v", ErrInvalid, c.SegmentLength)
	case c.RoadWidth <= 0:
		return fmt.Errorf("%w: road-width %v", ErrInvalid, c.RoadWidth)
	case c.TrafficCount < 0:
		return fmt.Errorf("%w: traffic %d", ErrInvalid, c.TrafficCount)
	case c.DrawDistance <= 0 || c.DrawDistance >= c.Segments:
		return fmt.Errorf("%w: draw-distance %d must be in (0, %d)", ErrInvalid, c.DrawDistance, c.Segments)
	case c.CameraDepth <= 0:
		return fmt.Errorf("%w: camera-depth %v", ErrInvalid, c.CameraDepth)
	case c.CameraHeight <= 0:
		return fmt.Errorf("%w: camera-height %v", ErrInvalid, c.CameraHeight)
	case c.HorizonRatio <= 0 || c.HorizonRatio >= 1:
		return fmt.Errorf("%w: horizon-ratio %v", ErrInvalid, c.HorizonRatio)
	case c.FogExponent <= 0:
		return fmt.Errorf("%w: fog-exponent %v", ErrInvalid, c.FogExponent)
	case c.SpriteScale <= 0:
		return fmt.Errorf("%w: sprite-scale %v", ErrInvalid, c.SpriteScale)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("%w: max-speed %v", ErrInvalid, c.MaxSpeed)
	case c.IdleWheelRate < 0 || c.WheelRate < 0:
		return fmt.Errorf("%w: wheel rates must not be negative", ErrInvalid)
	case c.CollisionThreshold < 0:
		return fmt.Errorf("%w: collision-threshold %v", ErrInvalid, c.CollisionThreshold)
	case c.CollisionAhead < 0 || c.CollisionBehind < 0:
		return fmt.Errorf("%w: collision window %d/%d", ErrInvalid, c.CollisionBehind, c.CollisionAhead)
	}
	return nil
}
