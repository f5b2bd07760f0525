package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/roadrash/pkg/game"
)

// KeyboardInput reads the controls from the keyboard: arrows or WASD to
// ride, Enter or Space to start, Escape to quit
type KeyboardInput struct{}

// Poll returns the controls held this frame. Start and Quit only fire on
// the frame their key goes down.
func (KeyboardInput) Poll() game.Input {
	return game.Input{
		Throttle: anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Brake:    anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:     anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:    anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Start:    inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
