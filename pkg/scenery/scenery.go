// Package scenery draws the roadside objects: trees, street lamps and
// buildings. Every colour is pulled toward the haze by the fog factor of the
// segment the object stands on.
package scenery

import (
	"image/color"
	"math"

	"github.com/golangdaddy/roadrash/pkg/draw"
)

const (
	// MinTreeScale is the smallest scale a tree is drawn at
	MinTreeScale = 0.02
	// MinLampScale is the smallest scale a lamp is drawn at
	MinLampScale = 0.03
	// MinBuildingScale is the smallest scale a building is drawn at
	MinBuildingScale = 0.03
)

var (
	trunkColor    = color.RGBA{100, 60, 25, 255}
	canopyColor   = color.RGBA{15, 110, 15, 255}
	leafLight     = color.RGBA{25, 140, 25, 255}
	leafMid       = color.RGBA{20, 125, 20, 255}
	poleColor     = color.RGBA{150, 150, 160, 255}
	lampColor     = color.RGBA{240, 220, 120, 255}
	glowColor     = color.NRGBA{255, 240, 150, 40}
	roofColor     = color.RGBA{100, 80, 60, 255}
	windowLit     = color.RGBA{220, 210, 150, 255}
	windowDark    = color.RGBA{80, 70, 50, 255}
	buildingTones = [4]color.RGBA{
		{65, 45, 85, 255},
		{85, 55, 105, 255},
		{55, 65, 45, 255},
		{70, 55, 45, 255},
	}
)

// DrawTree draws a trunk with three overlapping canopy circles, standing on
// (x, y)
func DrawTree(c draw.Canvas, x, y, scale, fog float64) {
	if scale < MinTreeScale {
		return
	}
	th := math.Max(2, 70*scale)
	tw := math.Max(1, 12*scale)
	cr := math.Max(2, 38*scale)

	c.FillRect(x-tw/2, y-th, tw, th, draw.Fog(trunkColor, fog))
	c.FillCircle(x, y-th, cr, draw.Fog(canopyColor, fog))
	c.FillCircle(x-cr/3, y-th-cr/3, cr*0.6, draw.Fog(leafLight, fog))
	c.FillCircle(x+cr/4, y-th+cr/4, cr*0.45, draw.Fog(leafMid, fog))
}

// DrawLamp draws a street lamp: pole, arm, light and a translucent glow
func DrawLamp(c draw.Canvas, x, y, scale, fog float64) {
	if scale < MinLampScale {
		return
	}
	ph := math.Max(4, 85*scale)
	pw := math.Max(1, 5*scale)
	arm := math.Max(2, 22*scale)
	lr := math.Max(2, 7*scale)
	pole := draw.Fog(poleColor, fog)
	top := y - ph

	c.FillRect(x-pw/2, top, pw, ph, pole)
	c.StrokeLine(x, top, x+arm, top, pw, pole)
	c.FillCircle(x+arm, top, lr, draw.Fog(lampColor, fog))
	c.FillCircle(x+arm, top, lr*2, glowColor)
}

// DrawBuilding draws a block with a roof edge and a grid of windows. Bit k of
// windows (mod 64) says whether the k-th window is lit, so a building keeps
// the same lights from frame to frame.
func DrawBuilding(c draw.Canvas, x, y, scale, fog float64, palette int, windows uint64) {
	if scale < MinBuildingScale {
		return
	}
	bw := math.Max(4, 130*scale)
	bh := math.Max(6, 200*scale)
	left := x - bw/2
	top := y - bh

	c.FillRect(left, top, bw, bh, draw.Fog(buildingTones[palette&3], fog))
	c.StrokeLine(left, top, left+bw, top, math.Max(1, 3*scale), draw.Fog(roofColor, fog))

	wr := math.Max(1, 11*scale)
	wh := math.Max(1, 14*scale)
	lit := draw.Fog(windowLit, fog)
	dark := draw.Fog(windowDark, fog)
	k := 0
	for wx := left + wr; wx < x+bw/2-wr; wx += wr * 3 {
		for wy := top + wh + 4*scale; wy < y-wh; wy += wh * 3 {
			col := dark
			if windows&(1<<(k%64)) != 0 {
				col = lit
			}
			c.FillRect(wx, wy, wr, wh, col)
			k++
		}
	}
}
