package road

import (
	"math"
	"math/rand"

	"github.com/golangdaddy/roadrash/pkg/config"
	"github.com/golangdaddy/roadrash/pkg/data"
)

// Segment is one slice of the road ring
type Segment struct {
	Index     int
	Curve     float64 // signed, positive bends right
	Elevation float64 // height gained over this segment, in world units
	Objects   []Object
	Traffic   []Occupant
}

// Track is the closed ring of segments the race runs on
type Track struct {
	segments      []Segment
	segmentLength float64
	trafficCount  int
	clearBehind   int // segments at the end of the ring kept free of traffic
}

// Curvature and hill profiles, in cycles per lap so the ring closes smoothly
const (
	curveCyclesA = 3.0
	curveAmpA    = 0.55
	curveCyclesB = 1.5
	curveAmpB    = 0.3

	hillCyclesA = 2.0
	hillAmpA    = 1500.0
	hillCyclesB = 1.0
	hillAmpB    = 700.0
)

// curveAt returns the curvature at normalised position t in [0, 1)
func curveAt(t float64) float64 {
	return math.Sin(t*2*math.Pi*curveCyclesA)*curveAmpA + math.Sin(t*2*math.Pi*curveCyclesB)*curveAmpB
}

// hillAt returns the absolute height at normalised position t
func hillAt(t float64) float64 {
	return math.Sin(t*2*math.Pi*hillCyclesA)*hillAmpA + math.Sin(t*2*math.Pi*hillCyclesB)*hillAmpB
}

// New builds the ring described by cfg. rng only decides which side lamps
// and buildings stand on and which building windows are lit; the shape of
// the road is fixed. Traffic is seeded with ResetTraffic.
func New(cfg config.Config, rng *rand.Rand) *Track {
	n := cfg.Segments
	t := &Track{
		segments:      make([]Segment, n),
		segmentLength: cfg.SegmentLength,
		trafficCount:  cfg.TrafficCount,
		clearBehind:   cfg.CollisionBehind,
	}
	for i := range t.segments {
		pos := float64(i) / float64(n)
		next := float64(i+1) / float64(n)
		t.segments[i] = Segment{
			Index:     i,
			Curve:     curveAt(pos),
			Elevation: hillAt(next) - hillAt(pos),
		}
	}

	for i := 0; i < n; i += treeStride {
		t.segments[i].Objects = append(t.segments[i].Objects,
			Object{Side: -1, Kind: ObjectTree},
			Object{Side: 1, Kind: ObjectTree},
		)
	}
	for i := lampOffset; i < n; i += lampStride {
		t.segments[i].Objects = append(t.segments[i].Objects, Object{Side: randomSide(rng), Kind: ObjectLamp})
	}
	for i := buildingOffset; i < n; i += buildingStride {
		t.segments[i].Objects = append(t.segments[i].Objects, Object{
			Side:    randomSide(rng),
			Kind:    ObjectBuilding,
			Palette: i % 4,
			Windows: windowMask(rng),
		})
	}
	return t
}

func randomSide(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// windowMask lights roughly three windows in four
func windowMask(rng *rand.Rand) uint64 {
	var mask uint64
	for bit := 0; bit < 64; bit++ {
		if rng.Float64() > 0.25 {
			mask |= 1 << bit
		}
	}
	return mask
}

// Len returns the number of segments
func (t *Track) Len() int {
	return len(t.segments)
}

// SegmentLength returns the longitudinal size of a segment
func (t *Track) SegmentLength() float64 {
	return t.segmentLength
}

// Length returns the length of the whole ring
func (t *Track) Length() float64 {
	return float64(len(t.segments)) * t.segmentLength
}

// SegmentAt returns the segment at index modulo the ring size.
// Negative indices wrap backwards.
func (t *Track) SegmentAt(index int) *Segment {
	n := len(t.segments)
	i := index % n
	if i < 0 {
		i += n
	}
	return &t.segments[i]
}

// IndexAt returns the index of the segment containing the world position
func (t *Track) IndexAt(position float64) int {
	i := int(math.Floor(position/t.segmentLength)) % len(t.segments)
	if i < 0 {
		i += len(t.segments)
	}
	return i
}

// Wrap folds a world position into [0, Length)
func (t *Track) Wrap(position float64) float64 {
	l := t.Length()
	p := math.Mod(position, l)
	if p < 0 {
		p += l
	}
	return p
}

// ClearTraffic removes every rival from the ring
func (t *Track) ClearTraffic() {
	for i := range t.segments {
		t.segments[i].Traffic = nil
	}
}

// Place parks a rival on the segment at index
func (t *Track) Place(index int, o Occupant) {
	seg := t.SegmentAt(index)
	seg.Traffic = append(seg.Traffic, o)
}

// ResetTraffic clears the ring and seeds a fresh field of rivals. The first
// segments and the last ones, which the collision check reaches back into
// from the start line, are left empty.
func (t *Track) ResetTraffic(rng *rand.Rand) {
	t.ClearTraffic()
	first := trafficFirstSegment
	span := len(t.segments) - first - t.clearBehind
	if span <= 0 {
		first, span = 0, len(t.segments)
	}
	for n := 0; n < t.trafficCount; n++ {
		t.Place(first+rng.Intn(span), Occupant{
			Lane:  (rng.Float64()*2 - 1) * trafficLaneSpread,
			Color: RivalColors[rng.Intn(len(RivalColors))],
			Name:  data.RivalName(rng),
		})
	}
}

// TrafficCount returns how many rivals are currently on the ring
func (t *Track) TrafficCount() int {
	n := 0
	for i := range t.segments {
		n += len(t.segments[i].Traffic)
	}
	return n
}
