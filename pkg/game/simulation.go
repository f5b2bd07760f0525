package game

import (
	"math"
	"math/rand"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadrash/pkg/config"
	"github.com/golangdaddy/roadrash/pkg/models"
	"github.com/golangdaddy/roadrash/pkg/particle"
	"github.com/golangdaddy/roadrash/pkg/road"
)

// Handling. Acceleration rates are fractions of the maximum speed per
// second.
const (
	accelRate  = 1.5
	brakeRate  = 3.0
	coastRate  = 0.5
	titleSpeed = 0.35 // road scroll on the title screen, as a fraction of max speed

	leanKeep   = 0.72
	leanGain   = 0.28
	steerRate  = 2.2
	steerFloor = 0.15 // steering authority left at standstill

	// MaxLateral bounds the rider's offset from the centre line
	MaxLateral = 0.95
	// Verge is the offset past which the rider is off the tarmac and slowed
	Verge     = 0.85
	vergeDrag = 0.92

	bobRate = 0.006 // suspension radians per world unit travelled
)

// Sparks fly from under the player's bike once it is fast enough
const (
	sparkRatio  = 0.4
	sparkChance = 0.5 // per frame, scaled by the speed ratio
	sparkLean   = 50.0
	sparkLift   = 40.0
)

// Event reports what a Step changed
type Event int

const (
	EventNone Event = iota
	EventStarted
	EventCrashed
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventStarted:
		return "started"
	case EventCrashed:
		return "crashed"
	}
	return "unknown"
}

// MarshalText lets an Event print by name in JSON
func (e Event) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Simulation owns every piece of mutable game state: the track and its
// traffic, the rider and the sparks. It is advanced one frame at a time with
// Step.
type Simulation struct {
	cfg    config.Config
	track  *road.Track
	rider  *models.Rider
	sparks *particle.System
	rng    *rand.Rand
	logger *zap.Logger

	clock float64 // seconds simulated since construction
	runs  int
}

// New builds the track, seeds the traffic and parks the rider on the title
// screen
func New(cfg config.Config, rng *rand.Rand, logger *zap.Logger) *Simulation {
	if logger == nil {
		logger = zap.NewNop()
	}
	track := road.New(cfg, rng)
	track.ResetTraffic(rng)
	logger.Debug("track built",
		zap.Int("segments", track.Len()),
		zap.Float64("length", track.Length()),
		zap.Int("traffic", track.TrafficCount()),
	)
	return &Simulation{
		cfg:    cfg,
		track:  track,
		rider:  models.NewRider(),
		sparks: particle.NewSystem(),
		rng:    rng,
		logger: logger,
	}
}

// Step advances the game by dt seconds under input in
func (s *Simulation) Step(in Input, dt float64) Event {
	s.clock += dt
	r := s.rider

	switch r.Phase {
	case models.PhaseTitle:
		if in.Start {
			s.start()
			return EventStarted
		}
		r.Position = s.track.Wrap(r.Position + s.cfg.MaxSpeed*titleSpeed*dt)
		r.WheelPhase += s.cfg.IdleWheelRate * dt

	case models.PhaseCrashed:
		if in.Start {
			s.start()
			return EventStarted
		}

	case models.PhaseRunning:
		s.ride(in, dt)
		if rival := s.collision(); rival != nil {
			r.Phase = models.PhaseCrashed
			r.HitBy = rival.Name
			s.logger.Info("crashed",
				zap.String("rival", rival.Name),
				zap.Int("score", r.Points()),
				zap.Int("segment", s.track.IndexAt(r.Position)),
				zap.Float64("lateral", r.Lateral),
			)
			return EventCrashed
		}
	}
	return EventNone
}

// start resets the run and puts the rider on the start line
func (s *Simulation) start() {
	s.reset()
	s.runs++
	s.logger.Info("race started", zap.Int("run", s.runs))
}

// reset restores score, position, speed, lean and sparks, and re-seeds the
// traffic
func (s *Simulation) reset() {
	s.rider.Reset()
	s.sparks.Reset()
	s.track.ResetTraffic(s.rng)
}

func (s *Simulation) ride(in Input, dt float64) {
	r := s.rider
	maxSpeed := s.cfg.MaxSpeed
	a := maxSpeed * dt

	switch {
	case in.Throttle:
		r.Speed = math.Min(r.Speed+a*accelRate, maxSpeed)
	case in.Brake:
		r.Speed = math.Max(r.Speed-a*brakeRate, 0)
	default:
		r.Speed = math.Max(r.Speed-a*coastRate, 0)
	}

	steer := in.Steer()
	ratio := r.SpeedRatio(maxSpeed)
	r.Lean = r.Lean*leanKeep + steer*ratio*leanGain
	r.Lateral = lo.Clamp(r.Lateral+steer*dt*steerRate*(ratio+steerFloor), -MaxLateral, MaxLateral)
	if math.Abs(r.Lateral) > Verge {
		r.Speed *= vergeDrag
	}

	travelled := r.Speed * dt
	r.Position = s.track.Wrap(r.Position + travelled)
	r.Score += s.cfg.ScoreRate * ratio * dt
	r.Bob += travelled * bobRate
	r.WheelPhase += travelled * s.cfg.WheelRate

	if ratio > sparkRatio && s.rng.Float64() < ratio*sparkChance {
		x := float64(s.cfg.Width)/2 + r.Lean*sparkLean
		y := float64(s.cfg.Height) - sparkLift
		s.sparks.Emit(x, y, ratio, s.rng)
	}
	s.sparks.Update()
}

// collision returns the first rival within the collision window of the
// rider, or nil
func (s *Simulation) collision() *road.Occupant {
	r := s.rider
	here := s.track.IndexAt(r.Position)
	for d := -s.cfg.CollisionBehind; d <= s.cfg.CollisionAhead; d++ {
		seg := s.track.SegmentAt(here + d)
		for i := range seg.Traffic {
			if math.Abs(seg.Traffic[i].Lane-r.Lateral) < s.cfg.CollisionThreshold {
				return &seg.Traffic[i]
			}
		}
	}
	return nil
}

// Config returns the configuration the simulation was built with
func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Track returns the ring the race runs on
func (s *Simulation) Track() *road.Track {
	return s.track
}

// Rider returns a copy of the rider's state
func (s *Simulation) Rider() models.Rider {
	return *s.rider
}

// Sparks returns the spark system
func (s *Simulation) Sparks() *particle.System {
	return s.sparks
}

// SpeedRatio returns the rider's speed as a fraction of the maximum
func (s *Simulation) SpeedRatio() float64 {
	return s.rider.SpeedRatio(s.cfg.MaxSpeed)
}

// Clock returns the seconds simulated so far
func (s *Simulation) Clock() float64 {
	return s.clock
}

// Runs returns how many races have been started
func (s *Simulation) Runs() int {
	return s.runs
}
