package render

import (
	"image/color"
	"sort"
)

// Anchor is where a sprite stands on screen: the bottom centre of the
// object and the uniform scale it is drawn at
type Anchor struct {
	X, Y  float64
	Scale float64
}

// Sprite is a depth sorted draw request collected during projection.
// The concrete types are Tree, Lamp, Building and Enemy.
type Sprite interface {
	At() Anchor
	sprite()
}

type Tree struct {
	Anchor
	Fog float64
}

type Lamp struct {
	Anchor
	Fog float64
}

type Building struct {
	Anchor
	Fog     float64
	Palette int
	Windows uint64
}

type Enemy struct {
	Anchor
	Color color.RGBA
	Lean  float64
}

func (s Anchor) At() Anchor { return s }

func (Tree) sprite()     {}
func (Lamp) sprite()     {}
func (Building) sprite() {}
func (Enemy) sprite()    {}

// SortSprites orders sprites back to front: smaller screen y first, and on
// equal y the smaller (farther) sprite first. Equal keys keep their
// collection order.
func SortSprites(sprites []Sprite) {
	sort.SliceStable(sprites, func(i, j int) bool {
		a, b := sprites[i].At(), sprites[j].At()
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Scale < b.Scale
	})
}
