package road

import "image/color"

// ObjectKind is the kind of a roadside object
type ObjectKind int

const (
	ObjectTree ObjectKind = iota
	ObjectLamp
	ObjectBuilding
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectTree:
		return "tree"
	case ObjectLamp:
		return "lamp"
	case ObjectBuilding:
		return "building"
	}
	return "unknown"
}

// Object placement strides. Trees line both sides every few segments,
// lamps and buildings alternate sides at random.
const (
	treeStride     = 3
	lampOffset     = 5
	lampStride     = 7
	buildingOffset = 10
	buildingStride = 14
)

// Traffic seeding
const (
	trafficFirstSegment = 8 // keeps the start line clear ahead of the rider
	trafficLaneSpread   = 0.65
)

// RivalColors are the bodywork colours of traffic bikes
var RivalColors = []color.RGBA{
	{200, 40, 40, 255},
	{40, 180, 40, 255},
	{220, 160, 30, 255},
	{180, 40, 180, 255},
	{40, 180, 180, 255},
}

// Object is a piece of roadside scenery attached to a segment
type Object struct {
	Side    int // -1 left, 1 right
	Kind    ObjectKind
	Palette int    // building colour index
	Windows uint64 // building window mask, bit set = lit
}

// Occupant is a rival bike parked on a segment
type Occupant struct {
	Lane  float64 // lateral offset relative to the road half width, in [-1, 1]
	Color color.RGBA
	Name  string
}
