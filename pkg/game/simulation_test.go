package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/golangdaddy/roadrash/pkg/config"
	"github.com/golangdaddy/roadrash/pkg/models"
	"github.com/golangdaddy/roadrash/pkg/particle"
	"github.com/golangdaddy/roadrash/pkg/road"
)

const dt = 1.0 / 60

func newSim(t *testing.T) *Simulation {
	t.Helper()
	return New(config.Default(), rand.New(rand.NewSource(11)), zap.NewNop())
}

// running returns a simulation mid race on an empty ring
func running(t *testing.T) *Simulation {
	t.Helper()
	s := newSim(t)
	require.Equal(t, EventStarted, s.Step(Input{Start: true}, dt))
	s.track.ClearTraffic()
	return s
}

func TestTitleIdles(t *testing.T) {
	s := newSim(t)
	for i := 0; i < 30; i++ {
		assert.Equal(t, EventNone, s.Step(Input{Throttle: true, Left: true}, dt))
	}
	r := s.Rider()
	assert.Equal(t, models.PhaseTitle, r.Phase)
	assert.InDelta(t, 30*dt*s.cfg.MaxSpeed*titleSpeed, r.Position, 1e-6)
	assert.InDelta(t, 30*dt*s.cfg.IdleWheelRate, r.WheelPhase, 1e-9)
	assert.Zero(t, r.Speed, "controls are ignored until the race starts")
	assert.Zero(t, r.Lateral)
	assert.Zero(t, r.Score)
}

func TestStartResetsRun(t *testing.T) {
	s := newSim(t)
	s.Step(Input{}, dt)
	assert.Equal(t, EventStarted, s.Step(Input{Start: true}, dt))
	r := s.Rider()
	assert.Equal(t, models.PhaseRunning, r.Phase)
	assert.Zero(t, r.Position)
	assert.Zero(t, r.Speed)
	assert.Equal(t, 1, s.Runs())
	assert.Equal(t, s.cfg.TrafficCount, s.track.TrafficCount())
}

func TestThrottleBrakeCoast(t *testing.T) {
	s := running(t)
	top := s.cfg.MaxSpeed

	s.Step(Input{Throttle: true}, dt)
	assert.InDelta(t, top*dt*accelRate, s.rider.Speed, 1e-9)

	for i := 0; i < 120; i++ {
		s.Step(Input{Throttle: true}, dt)
		require.LessOrEqual(t, s.rider.Speed, top)
	}
	assert.Equal(t, top, s.rider.Speed, "speed is capped")

	s.Step(Input{}, dt)
	assert.InDelta(t, top-top*dt*coastRate, s.rider.Speed, 1e-9)

	before := s.rider.Speed
	s.Step(Input{Brake: true}, dt)
	assert.InDelta(t, before-top*dt*brakeRate, s.rider.Speed, 1e-9)

	for i := 0; i < 120; i++ {
		s.Step(Input{Brake: true}, dt)
		require.GreaterOrEqual(t, s.rider.Speed, 0.0)
	}
	assert.Zero(t, s.rider.Speed)
}

func TestFullThrottleStaysOnCentreLine(t *testing.T) {
	s := running(t)
	s.rider.Speed = s.cfg.MaxSpeed

	const frames = 2500 // wraps the ring once
	for i := 0; i < frames; i++ {
		require.Equal(t, EventNone, s.Step(Input{Throttle: true}, dt))
	}
	r := s.Rider()
	want := math.Mod(s.cfg.MaxSpeed*dt*frames, s.track.Length())
	assert.InDelta(t, want, r.Position, 1e-6)
	assert.Zero(t, r.Lateral)
	assert.Zero(t, r.Lean)
	assert.InDelta(t, s.cfg.ScoreRate*dt*frames, r.Score, 1e-6)
}

func TestPositionMatchesIntegratedSpeed(t *testing.T) {
	s := running(t)
	want := 0.0
	for i := 0; i < 400; i++ {
		s.Step(Input{Throttle: true}, dt)
		want += s.rider.Speed * dt
	}
	assert.InDelta(t, math.Mod(want, s.track.Length()), s.rider.Position, 1e-6)
	assert.Less(t, s.rider.Position, s.track.Length())
}

func TestSteeringBounds(t *testing.T) {
	s := running(t)
	s.rider.Speed = s.cfg.MaxSpeed
	for i := 0; i < 600; i++ {
		s.Step(Input{Throttle: true, Right: true}, dt)
		r := s.rider
		require.LessOrEqual(t, r.Lateral, MaxLateral)
		require.LessOrEqual(t, math.Abs(r.Lean), 1.0)
	}
	assert.Equal(t, MaxLateral, s.rider.Lateral)
	assert.Greater(t, s.rider.Lean, 0.0)

	for i := 0; i < 600; i++ {
		s.Step(Input{Left: true}, dt)
		require.GreaterOrEqual(t, s.rider.Lateral, -MaxLateral)
	}
	assert.Equal(t, -MaxLateral, s.rider.Lateral)
}

func TestSteeringAtStandstill(t *testing.T) {
	s := running(t)
	s.Step(Input{Left: true}, dt)
	assert.InDelta(t, -dt*steerRate*steerFloor, s.rider.Lateral, 1e-12)
	assert.Zero(t, s.rider.Lean, "no lean without speed")
}

func TestVergeSlowsRider(t *testing.T) {
	s := running(t)
	s.rider.Speed = 1000
	s.rider.Lateral = 0.9
	s.Step(Input{}, dt)
	coasted := 1000 - s.cfg.MaxSpeed*dt*coastRate
	assert.InDelta(t, coasted*vergeDrag, s.rider.Speed, 1e-9)
}

func TestCrashOnRivalAhead(t *testing.T) {
	s := running(t)
	s.track.Place(2, road.Occupant{Lane: 0, Name: "Dirk Stone"})

	assert.Equal(t, EventCrashed, s.Step(Input{}, dt))
	r := s.Rider()
	assert.Equal(t, models.PhaseCrashed, r.Phase)
	assert.Equal(t, "Dirk Stone", r.HitBy)
}

func TestFreshRunNeverStartsCrashed(t *testing.T) {
	for seed := int64(1); seed <= 2000; seed++ {
		s := New(config.Default(), rand.New(rand.NewSource(seed)), zap.NewNop())
		require.Equal(t, EventStarted, s.Step(Input{Start: true}, dt))
		require.Equal(t, EventNone, s.Step(Input{}, dt), "seed %d crashed on the start line", seed)
	}
}

func TestCollisionWindow(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		lane   float64
		crash  bool
	}{
		{"same segment", 0, 0, true},
		{"one behind", -1, 0, true},
		{"two ahead", 2, 0.1, true},
		{"three ahead", 3, 0, false},
		{"two behind", -2, 0, false},
		{"other lane", 1, 0.5, false},
		{"edge of threshold", 1, 0.2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := running(t)
			s.rider.Position = 50 * s.track.SegmentLength()
			s.track.Place(50+tt.offset, road.Occupant{Lane: tt.lane})
			ev := s.Step(Input{}, dt)
			if tt.crash {
				assert.Equal(t, EventCrashed, ev)
			} else {
				assert.Equal(t, EventNone, ev)
			}
		})
	}
}

func TestCollisionThresholdIsConfigurable(t *testing.T) {
	s := running(t)
	s.cfg.CollisionThreshold = 0.6
	s.track.Place(1, road.Occupant{Lane: 0.5})
	assert.Equal(t, EventCrashed, s.Step(Input{}, dt))
}

func TestCrashedIsFrozen(t *testing.T) {
	s := running(t)
	s.rider.Speed = 900
	s.track.Place(1, road.Occupant{Lane: 0})
	require.Equal(t, EventCrashed, s.Step(Input{Throttle: true}, dt))
	frozen := s.Rider()

	for i := 0; i < 20; i++ {
		assert.Equal(t, EventNone, s.Step(Input{Throttle: true, Right: true, Brake: true}, dt))
	}
	assert.Equal(t, frozen, s.Rider())
}

func TestRestartAfterCrash(t *testing.T) {
	s := running(t)
	for i := 0; i < 90; i++ {
		s.Step(Input{Throttle: true}, dt)
	}
	s.sparks.Add(particle.Spark{Life: 50})
	s.track.Place(s.track.IndexAt(s.rider.Position)+1, road.Occupant{Lane: s.rider.Lateral})
	require.Equal(t, EventCrashed, s.Step(Input{Throttle: true}, dt))
	require.NotZero(t, s.rider.Score)

	assert.Equal(t, EventStarted, s.Step(Input{Start: true}, dt))
	r := s.Rider()
	assert.Equal(t, models.PhaseRunning, r.Phase)
	assert.Zero(t, r.Score)
	assert.Zero(t, r.Position)
	assert.Zero(t, r.Speed)
	assert.Zero(t, r.Lean)
	assert.Empty(t, r.HitBy)
	assert.Zero(t, s.sparks.Len())
	assert.Equal(t, s.cfg.TrafficCount, s.track.TrafficCount(), "traffic is re-seeded")
	for i := 0; i < 8; i++ {
		assert.Empty(t, s.track.SegmentAt(i).Traffic, "start line is kept clear")
	}
}

func TestWheelPhaseFollowsDistance(t *testing.T) {
	s := running(t)
	inputs := make([]Input, 0, 400)
	for i := 0; i < 150; i++ {
		inputs = append(inputs, Input{Throttle: true, Left: i%40 < 20})
	}
	for i := 0; i < 60; i++ {
		inputs = append(inputs, Input{})
	}
	for i := 0; i < 120; i++ {
		inputs = append(inputs, Input{Brake: true})
	}

	for i, in := range inputs {
		before := s.Rider()
		s.Step(in, dt)
		after := s.Rider()
		travelled := after.Speed * dt
		require.GreaterOrEqual(t, after.WheelPhase, before.WheelPhase, "step %d", i)
		require.InDelta(t, travelled*s.cfg.WheelRate, after.WheelPhase-before.WheelPhase, 1e-9, "step %d", i)
	}
	require.Zero(t, s.rider.Speed)

	stopped := s.Rider().WheelPhase
	s.Step(Input{}, dt)
	assert.Equal(t, stopped, s.rider.WheelPhase, "wheels stand still at zero speed")

	s.rider.Speed = 900
	s.track.Place(s.track.IndexAt(s.rider.Position)+1, road.Occupant{Lane: s.rider.Lateral})
	require.Equal(t, EventCrashed, s.Step(Input{Throttle: true}, dt))
	crashed := s.Rider().WheelPhase
	for i := 0; i < 30; i++ {
		s.Step(Input{Throttle: true}, dt)
	}
	assert.Equal(t, crashed, s.rider.WheelPhase, "wheels do not turn while crashed")
}

func TestSparksOnlyAtSpeed(t *testing.T) {
	s := running(t)
	s.rider.Speed = s.cfg.MaxSpeed * 0.3
	for i := 0; i < 200; i++ {
		s.Step(Input{}, dt)
	}
	assert.Zero(t, s.sparks.Len())

	s.rider.Speed = s.cfg.MaxSpeed
	emitted := 0
	for i := 0; i < 60; i++ {
		s.Step(Input{Throttle: true}, dt)
		emitted = max(emitted, s.sparks.Len())
	}
	assert.Positive(t, emitted)
	for _, sp := range s.sparks.Sparks() {
		assert.Less(t, sp.Y, float64(s.cfg.Height))
	}
}

func TestEventsAreLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := New(config.Default(), rand.New(rand.NewSource(2)), zap.New(core))
	s.Step(Input{Start: true}, dt)
	s.track.ClearTraffic()
	s.track.Place(1, road.Occupant{Lane: 0, Name: "Jade Hart"})
	s.Step(Input{}, dt)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "race started", logs.All()[0].Message)
	crash := logs.All()[1]
	assert.Equal(t, "crashed", crash.Message)
	assert.Equal(t, "Jade Hart", crash.ContextMap()["rival"])
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "none", EventNone.String())
	assert.Equal(t, "started", EventStarted.String())
	assert.Equal(t, "crashed", EventCrashed.String())
	assert.Equal(t, "unknown", Event(7).String())
}
