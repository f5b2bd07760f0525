package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadrash/pkg/config"
	"github.com/golangdaddy/roadrash/pkg/game"
)

// Game implements ebiten.Game on top of a simulation and its scene
type Game struct {
	cfg    config.Config
	sim    *game.Simulation
	scene  *game.Scene
	input  game.Source
	screen *Screen
	logger *zap.Logger
	dt     float64
}

// NewGame wires a simulation, its scene and an input source into a game
func NewGame(sim *game.Simulation, scene *game.Scene, input game.Source, logger *zap.Logger) *Game {
	cfg := sim.Config()
	return &Game{
		cfg:    cfg,
		sim:    sim,
		scene:  scene,
		input:  input,
		screen: NewScreen(),
		logger: logger,
		dt:     1 / float64(cfg.FPS),
	}
}

// Update polls the controls and advances the simulation one fixed step.
// Quitting ends the loop with ebiten.Termination.
func (g *Game) Update() error {
	in := g.input.Poll()
	if in.Quit {
		rider := g.sim.Rider()
		g.logger.Info("quit",
			zap.Stringer("phase", rider.Phase),
			zap.Int("runs", g.sim.Runs()),
			zap.Int("score", rider.Points()),
		)
		return ebiten.Termination
	}
	g.sim.Step(in, g.dt)
	return nil
}

// Draw renders the scene onto the screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.SetTarget(screen)
	g.scene.Render(g.screen)
}

// Layout returns the configured logical size whatever the window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens the window and blocks until the player quits or closes it
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetTPS(g.cfg.FPS)
	g.logger.Info("window opened",
		zap.Int("width", g.cfg.Width),
		zap.Int("height", g.cfg.Height),
		zap.Int("tps", g.cfg.FPS),
	)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
