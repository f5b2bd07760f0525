package models

// Phase is the stage of a run the game is in
type Phase int

const (
	// PhaseTitle idles on the title screen with the road scrolling slowly
	PhaseTitle Phase = iota
	// PhaseRunning is a race in progress
	PhaseRunning
	// PhaseCrashed freezes the scene after hitting a rival
	PhaseCrashed
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseRunning:
		return "running"
	case PhaseCrashed:
		return "crashed"
	}
	return "unknown"
}

// MarshalText lets a Phase print by name in logs and JSON
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Rider is the player's state for the current run
type Rider struct {
	Position   float64 `json:"position"` // distance along the ring
	Speed      float64 `json:"speed"`
	Lateral    float64 `json:"lateral"` // offset from the centre line in road half widths
	Lean       float64 `json:"lean"`
	Score      float64 `json:"score"`
	WheelPhase float64 `json:"wheel_phase"`
	Bob        float64 `json:"bob"` // suspension phase
	Phase      Phase   `json:"phase"`
	HitBy      string  `json:"hit_by,omitempty"` // rival the last run ended on
}

// NewRider returns a rider waiting on the title screen
func NewRider() *Rider {
	return &Rider{Phase: PhaseTitle}
}

// Reset puts the rider back on the start line for a new run. The wheels keep
// turning from where they were.
func (r *Rider) Reset() {
	*r = Rider{
		WheelPhase: r.WheelPhase,
		Phase:      PhaseRunning,
	}
}

// SpeedRatio returns speed as a fraction of maxSpeed
func (r *Rider) SpeedRatio(maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return 0
	}
	return r.Speed / maxSpeed
}

// Points returns the score as shown to the player
func (r *Rider) Points() int {
	return int(r.Score)
}
