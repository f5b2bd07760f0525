package game

import (
	"math"
	"math/rand"

	"github.com/golangdaddy/roadrash/pkg/background"
	"github.com/golangdaddy/roadrash/pkg/draw"
	"github.com/golangdaddy/roadrash/pkg/models"
	"github.com/golangdaddy/roadrash/pkg/render"
	"github.com/golangdaddy/roadrash/pkg/scenery"
	"github.com/golangdaddy/roadrash/pkg/ui"
	"github.com/golangdaddy/roadrash/pkg/vehicle"
)

// Rivals ride slower than the player and their wheels turn slower to match
const (
	rivalWheelRate = 0.7
	rivalSpeedRate = 0.6
)

// Player bike placement, relative to the bottom centre of the screen
const (
	playerLean   = 60.0
	playerLift   = 55.0
	playerBounce = 3.5
)

// Scene draws the simulation. It never changes simulation state; its own
// random source drives purely visual noise such as flames and streaks.
type Scene struct {
	sim      *Simulation
	backdrop *background.Generator
	rng      *rand.Rand
}

// NewScene returns a scene drawing sim
func NewScene(sim *Simulation, rng *rand.Rand) *Scene {
	cfg := sim.Config()
	return &Scene{
		sim:      sim,
		backdrop: background.NewGenerator(cfg.Width, cfg.Height, cfg.Horizon(), rng),
		rng:      rng,
	}
}

// Render paints one full frame: backdrop, road far to near, roadside
// sprites back to front, sparks, the player, streaks, HUD and overlays
func (sc *Scene) Render(c draw.Canvas) {
	cfg := sc.sim.Config()
	rider := sc.sim.Rider()
	ratio := sc.sim.SpeedRatio()

	sc.backdrop.Draw(c, rider.Position)

	frame := render.Project(sc.sim.Track(), render.Camera{
		Position: rider.Position,
		Lateral:  rider.Lateral,
	}, cfg)
	render.PaintBands(c, frame)

	render.SortSprites(frame.Sprites)
	for _, sp := range frame.Sprites {
		sc.drawSprite(c, sp, rider, ratio)
	}

	sc.sim.Sparks().Draw(c)

	w, h := float64(cfg.Width), float64(cfg.Height)
	vehicle.Draw(c, vehicle.Bike{
		X:          w/2 + rider.Lean*playerLean,
		Y:          h - playerLift + math.Sin(rider.Bob)*playerBounce*ratio,
		Scale:      1,
		Lean:       rider.Lean,
		WheelPhase: rider.WheelPhase,
		SpeedRatio: ratio,
		Body:       vehicle.PlayerBodyColor,
		Player:     true,
	}, sc.rng)

	ui.DrawSpeedLines(c, ratio, cfg.Horizon(), sc.rng)
	ui.DrawHUD(c, ui.HUD{SpeedRatio: ratio, Score: rider.Points()})

	switch rider.Phase {
	case models.PhaseTitle:
		ui.DrawTitle(c, sc.sim.Clock())
	case models.PhaseCrashed:
		ui.DrawCrash(c, rider.Points(), rider.HitBy)
	}
}

func (sc *Scene) drawSprite(c draw.Canvas, sp render.Sprite, rider models.Rider, ratio float64) {
	switch s := sp.(type) {
	case render.Tree:
		scenery.DrawTree(c, s.X, s.Y, s.Scale, s.Fog)
	case render.Lamp:
		scenery.DrawLamp(c, s.X, s.Y, s.Scale, s.Fog)
	case render.Building:
		scenery.DrawBuilding(c, s.X, s.Y, s.Scale, s.Fog, s.Palette, s.Windows)
	case render.Enemy:
		vehicle.Draw(c, vehicle.Bike{
			X:          s.X,
			Y:          s.Y,
			Scale:      s.Scale,
			Lean:       s.Lean,
			WheelPhase: rider.WheelPhase * rivalWheelRate,
			SpeedRatio: ratio * rivalSpeedRate,
			Body:       s.Color,
		}, nil)
	}
}
