// Package particle runs the exhaust sparks thrown up behind the player
package particle

import (
	"image/color"
	"math/rand"

	"github.com/samber/lo"

	"github.com/golangdaddy/roadrash/pkg/draw"
)

const (
	// Gravity is added to a spark's vertical velocity every tick
	Gravity = 0.18
	// MaxAlpha is the opacity of a freshly emitted spark
	MaxAlpha = 220

	spread  = 15.0
	driftX  = 2.0
	minLife = 5
	maxLife = 14
)

var sparkColors = [3]color.RGBA{
	{255, 180, 40, 255},
	{255, 130, 20, 255},
	{220, 220, 220, 255},
}

// Spark is a single short lived particle
type Spark struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   color.RGBA
	Radius  float64
}

// System owns the live sparks
type System struct {
	sparks []Spark
}

// NewSystem returns an empty system
func NewSystem() *System {
	return &System{sparks: make([]Spark, 0, 64)}
}

// Emit adds one spark near (x, y). Faster bikes throw sparks harder.
func (s *System) Emit(x, y, speedRatio float64, rng *rand.Rand) {
	life := minLife + rng.Intn(maxLife-minLife+1)
	s.Add(Spark{
		X:       x + (rng.Float64()*2-1)*spread,
		Y:       y,
		VX:      (rng.Float64()*2 - 1) * driftX,
		VY:      -(1 + rng.Float64()*3) * speedRatio,
		Life:    life,
		MaxLife: life,
		Color:   sparkColors[rng.Intn(len(sparkColors))],
		Radius:  float64(1 + rng.Intn(3)),
	})
}

// Add inserts sp as is. Sparks with no life left are dropped, and a
// MaxLife below Life is raised to it.
func (s *System) Add(sp Spark) {
	if sp.Life <= 0 {
		return
	}
	if sp.MaxLife < sp.Life {
		sp.MaxLife = sp.Life
	}
	s.sparks = append(s.sparks, sp)
}

// Update advances every spark one tick and drops the ones that burnt out
func (s *System) Update() {
	for i := range s.sparks {
		sp := &s.sparks[i]
		sp.X += sp.VX
		sp.Y += sp.VY
		sp.VY += Gravity
		sp.Life--
	}
	s.sparks = lo.Filter(s.sparks, func(sp Spark, _ int) bool {
		return sp.Life > 0
	})
}

// Draw paints the sparks, fading them out as their life runs down
func (s *System) Draw(c draw.Canvas) {
	for _, sp := range s.sparks {
		a := MaxAlpha * sp.Life / sp.MaxLife
		c.FillCircle(sp.X, sp.Y, sp.Radius, draw.WithAlpha(sp.Color, uint8(a)))
	}
}

// Reset drops every spark
func (s *System) Reset() {
	s.sparks = s.sparks[:0]
}

// Len returns the number of live sparks
func (s *System) Len() int {
	return len(s.sparks)
}

// Sparks returns a copy of the live sparks
func (s *System) Sparks() []Spark {
	return append([]Spark(nil), s.sparks...)
}
