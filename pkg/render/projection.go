package render

import (
	"math"

	"github.com/golangdaddy/roadrash/pkg/config"
	"github.com/golangdaddy/roadrash/pkg/road"
)

const (
	// MinDistance keeps the scale finite for segments right at the camera
	MinDistance = 1.0
	// MinSpriteScale drops sprites too small to cover a pixel
	MinSpriteScale = 0.02
	// ClipMargin is how far past the screen edges a segment may project
	ClipMargin = 20.0

	enemyScale     = 0.8
	objectGap      = 40.0 // distance of scenery from the kerb, at sprite scale 1
	railGap        = 5.0
	fogReach       = 0.85 // fraction of the draw distance at which fog is total
	enemyLeanSpeed = 0.01
	enemyLeanPhase = 0.1
	enemyLeanMax   = 0.3
)

// Camera is the viewpoint a frame is projected from
type Camera struct {
	Position float64 // distance along the ring
	Lateral  float64 // rider offset in road half widths
}

// Edge is the projected cross section at the near end of a segment
type Edge struct {
	X, Y      float64 // centre of the road on screen
	HalfWidth float64
	Scale     float64
}

// Band is the strip of road between two consecutive projected edges
type Band struct {
	Index       int // segment index
	Depth       int // segments ahead of the camera
	Near        Edge
	Far         Edge
	Fog         float64
	Painted     bool    // alternating stripe parity
	SpriteScale float64 // scale of sprites standing on the far edge
}

// Frame is everything projection produces for one rendered frame
type Frame struct {
	Bands   []Band // near to far
	Sprites []Sprite
}

// Scale returns the perspective factor for a segment distance ahead of the
// camera. Distances below MinDistance are clamped to it; past that the
// factor falls strictly as distance grows.
func Scale(cfg config.Config, distance float64) float64 {
	return cfg.CameraDepth * cfg.SegmentLength / math.Max(distance, MinDistance)
}

// FogFactor returns the haze weight for a segment depth segments ahead
func FogFactor(cfg config.Config, depth int) float64 {
	f := math.Min(1, float64(depth)/(float64(cfg.DrawDistance)*fogReach))
	return math.Pow(f, cfg.FogExponent)
}

// Project walks the ring from the camera outwards and returns the bands and
// sprites to draw. Curvature is integrated twice (heading, then lateral
// shift) and elevation once (height), for every segment in range whether or
// not it ends up on screen, so hidden segments still bend what lies beyond.
func Project(track *road.Track, cam Camera, cfg config.Config) Frame {
	w := float64(cfg.Width)
	h := float64(cfg.Height)
	ppu := w / cfg.RoadWidth
	horizon := cfg.Horizon()
	segLen := track.SegmentLength()

	pos := track.Wrap(cam.Position)
	cam.Position = pos
	base := track.IndexAt(pos)
	into := pos - float64(base)*segLen

	frame := Frame{
		Bands:   make([]Band, 0, cfg.DrawDistance),
		Sprites: make([]Sprite, 0, 64),
	}

	var heading, shift, height float64
	var prev Edge
	havePrev := false
	clipY := h + ClipMargin

	for i := 1; i <= cfg.DrawDistance; i++ {
		seg := track.SegmentAt(base + i)
		heading += seg.Curve
		shift += heading
		height += seg.Elevation

		distance := float64(i)*segLen - into
		if distance < MinDistance {
			continue
		}
		s := Scale(cfg, distance)
		edge := Edge{
			X:         w/2 + s*(-cam.Lateral*cfg.RoadWidth-shift*cfg.CurveScale)*ppu,
			Y:         horizon + s*(cfg.CameraHeight-height)*ppu,
			HalfWidth: s * w,
			Scale:     s,
		}
		if math.IsNaN(edge.X) || math.IsNaN(edge.Y) || math.IsInf(edge.X, 0) || math.IsInf(edge.Y, 0) {
			continue
		}

		near := prev
		first := !havePrev
		prev, havePrev = edge, true
		if first {
			continue
		}
		// hidden behind nearer road (a crest), falling away, or off the top
		if edge.Y >= clipY || edge.Y >= near.Y || edge.Y < -ClipMargin {
			continue
		}
		clipY = edge.Y

		spriteScale := s * cfg.SpriteScale
		band := Band{
			Index:       seg.Index,
			Depth:       i,
			Near:        near,
			Far:         edge,
			Fog:         FogFactor(cfg, i),
			Painted:     seg.Index%2 == 0,
			SpriteScale: spriteScale,
		}
		frame.Bands = append(frame.Bands, band)
		frame.Sprites = collectSprites(frame.Sprites, seg, band, cam)
	}
	return frame
}

func collectSprites(out []Sprite, seg *road.Segment, band Band, cam Camera) []Sprite {
	edge := band.Far
	scale := band.SpriteScale
	if scale < MinSpriteScale {
		return out
	}
	for _, o := range seg.Objects {
		a := Anchor{
			X:     edge.X + float64(o.Side)*(edge.HalfWidth+objectGap*scale),
			Y:     edge.Y,
			Scale: scale,
		}
		switch o.Kind {
		case road.ObjectTree:
			out = append(out, Tree{Anchor: a, Fog: band.Fog})
		case road.ObjectLamp:
			out = append(out, Lamp{Anchor: a, Fog: band.Fog})
		case road.ObjectBuilding:
			out = append(out, Building{Anchor: a, Fog: band.Fog, Palette: o.Palette, Windows: o.Windows})
		}
	}
	for _, car := range seg.Traffic {
		x := edge.X + car.Lane*edge.HalfWidth
		out = append(out, Enemy{
			Anchor: Anchor{X: x, Y: edge.Y, Scale: scale * enemyScale},
			Color:  car.Color,
			Lean:   math.Sin(cam.Position*enemyLeanSpeed+x*enemyLeanPhase) * enemyLeanMax,
		})
	}
	return out
}
