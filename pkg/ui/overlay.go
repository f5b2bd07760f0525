package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/roadrash/pkg/draw"
)

// Title is the name shown on the title screen
const Title = "ROAD RASH 3D"

var (
	titleShade   = color.NRGBA{0, 0, 0, 90}
	crashShade   = color.NRGBA{100, 0, 0, 110}
	titleColor   = color.RGBA{230, 50, 50, 255}
	taglineColor = color.RGBA{220, 220, 220, 255}
	promptColor  = color.RGBA{255, 220, 50, 255}
	quitColor    = color.RGBA{150, 150, 150, 255}
	crashColor   = color.RGBA{255, 80, 80, 255}
	rivalColor   = color.RGBA{220, 220, 220, 255}
)

// line is one centred line of overlay text
type line struct {
	text  string
	dy    float64 // offset from the middle of the screen
	scale float64
	col   color.Color
}

func drawLines(c draw.Canvas, lines []line) {
	w, h := c.Size()
	for _, l := range lines {
		tw := c.TextWidth(l.text, l.scale)
		c.Text(l.text, float64(w)/2-tw/2, float64(h)/2+l.dy, l.scale, l.col)
	}
}

// Blink reports whether blinking text is showing elapsed seconds in. It is
// on for half a second, then off for half a second.
func Blink(elapsed float64) bool {
	return int(elapsed*2)%2 == 0
}

// Pulse returns a scale factor breathing between 0.9 and 1.1
func Pulse(elapsed float64) float64 {
	return 1 + 0.1*math.Sin(elapsed*2)
}

// DrawTitle darkens the scene and shows the title, with a pulsing name and
// a blinking prompt
func DrawTitle(c draw.Canvas, elapsed float64) {
	w, h := c.Size()
	c.FillRect(0, 0, float64(w), float64(h), titleShade)

	lines := []line{
		{Title, -100, 4 * Pulse(elapsed), titleColor},
		{"Dodge enemy bikers!", -45, 2, taglineColor},
	}
	if Blink(elapsed) {
		lines = append(lines, line{"Press ENTER or SPACE to Race", 5, 2.5, promptColor})
	}
	lines = append(lines, line{"ESC to Quit", 60, 1.5, quitColor})
	drawLines(c, lines)
}

// DrawCrash tints the frozen scene red and shows the final score and who
// the rider hit
func DrawCrash(c draw.Canvas, score int, rival string) {
	w, h := c.Size()
	c.FillRect(0, 0, float64(w), float64(h), crashShade)

	lines := []line{
		{"CRASHED!", -80, 4, crashColor},
		{fmt.Sprintf("Score: %d", score), -10, 3, scoreTextColor},
	}
	if rival != "" {
		lines = append(lines, line{"Taken out by " + rival, 25, 1.5, rivalColor})
	}
	lines = append(lines, line{"Press ENTER or SPACE to Retry", 50, 2, promptColor})
	drawLines(c, lines)
}
