package road

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/roadrash/pkg/config"
)

func newTestTrack(t *testing.T, seed int64) *Track {
	t.Helper()
	cfg := config.Default()
	return New(cfg, rand.New(rand.NewSource(seed)))
}

func TestSegmentAtWraps(t *testing.T) {
	tr := newTestTrack(t, 1)
	n := tr.Len()
	require.Equal(t, 300, n)

	for i := -2 * n; i < 3*n; i += 7 {
		assert.Same(t, tr.SegmentAt(i), tr.SegmentAt(i+n), "index %d", i)
	}
	assert.Equal(t, n-1, tr.SegmentAt(-1).Index)
	assert.Equal(t, 0, tr.SegmentAt(n).Index)
}

func TestShapeIsIndependentOfSeed(t *testing.T) {
	a := newTestTrack(t, 1)
	b := newTestTrack(t, 99)
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.SegmentAt(i).Curve, b.SegmentAt(i).Curve)
		assert.Equal(t, a.SegmentAt(i).Elevation, b.SegmentAt(i).Elevation)
	}
}

func TestElevationClosesTheLoop(t *testing.T) {
	tr := newTestTrack(t, 1)
	sum := 0.0
	for i := 0; i < tr.Len(); i++ {
		sum += tr.SegmentAt(i).Elevation
	}
	assert.InDelta(t, 0, sum, 1e-6, "heights must return to the start after one lap")
}

func TestObjectPlacement(t *testing.T) {
	tr := newTestTrack(t, 3)
	for i := 0; i < tr.Len(); i++ {
		seg := tr.SegmentAt(i)
		trees, lamps, buildings := 0, 0, 0
		for _, o := range seg.Objects {
			assert.Contains(t, []int{-1, 1}, o.Side)
			switch o.Kind {
			case ObjectTree:
				trees++
			case ObjectLamp:
				lamps++
			case ObjectBuilding:
				buildings++
				assert.Equal(t, i%4, o.Palette)
			}
		}
		if i%treeStride == 0 {
			assert.Equal(t, 2, trees, "segment %d", i)
		} else {
			assert.Zero(t, trees, "segment %d", i)
		}
		assert.Equal(t, i >= lampOffset && (i-lampOffset)%lampStride == 0, lamps == 1, "segment %d", i)
		assert.Equal(t, i >= buildingOffset && (i-buildingOffset)%buildingStride == 0, buildings == 1, "segment %d", i)
	}
}

func TestResetTraffic(t *testing.T) {
	tr := newTestTrack(t, 5)
	rng := rand.New(rand.NewSource(5))
	tr.ResetTraffic(rng)
	assert.Equal(t, 30, tr.TrafficCount())

	for i := 0; i < tr.Len(); i++ {
		for _, o := range tr.SegmentAt(i).Traffic {
			assert.GreaterOrEqual(t, i, trafficFirstSegment)
			assert.Less(t, i, tr.Len()-config.Default().CollisionBehind, "ring tail behind the start line stays clear")
			assert.LessOrEqual(t, math.Abs(o.Lane), trafficLaneSpread)
			assert.Contains(t, RivalColors, o.Color)
			assert.NotEmpty(t, o.Name)
		}
	}

	tr.ResetTraffic(rng)
	assert.Equal(t, 30, tr.TrafficCount(), "reset replaces rather than adds")

	tr.ClearTraffic()
	assert.Zero(t, tr.TrafficCount())
	tr.Place(-298, Occupant{Lane: 0.1})
	assert.Len(t, tr.SegmentAt(2).Traffic, 1)
}

func TestPositionHelpers(t *testing.T) {
	tr := newTestTrack(t, 1)
	assert.Equal(t, 60000.0, tr.Length())
	assert.Equal(t, 0, tr.IndexAt(0))
	assert.Equal(t, 0, tr.IndexAt(199.9))
	assert.Equal(t, 1, tr.IndexAt(200))
	assert.Equal(t, 0, tr.IndexAt(60000))
	assert.Equal(t, 299, tr.IndexAt(-1))
	assert.InDelta(t, 100, tr.Wrap(60100), 1e-9)
	assert.InDelta(t, 59900, tr.Wrap(-100), 1e-9)
}
