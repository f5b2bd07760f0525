package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadScript is wrapped by every script parse failure
var ErrBadScript = errors.New("bad input script")

// Input is the state of the five logical controls for one frame. Steering
// is split into its two directions.
type Input struct {
	Throttle bool
	Brake    bool
	Left     bool
	Right    bool
	Start    bool
	Quit     bool
}

// Steer returns -1 for left, 1 for right and 0 for neither. Right wins when
// both are held.
func (in Input) Steer() float64 {
	switch {
	case in.Right:
		return 1
	case in.Left:
		return -1
	}
	return 0
}

// Source yields the controls for the next frame
type Source interface {
	Poll() Input
}

// Step holds one input for a number of frames
type Step struct {
	Input  Input
	Frames int
}

// Script is a Source that replays a fixed list of steps and then keeps
// repeating the input of the last one
type Script struct {
	steps []Step
	step  int
	frame int
}

// NewScript returns a script over steps. Steps with no frames are skipped.
func NewScript(steps ...Step) *Script {
	kept := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s.Frames > 0 {
			kept = append(kept, s)
		}
	}
	return &Script{steps: kept}
}

// Poll returns the input for the next frame
func (s *Script) Poll() Input {
	if len(s.steps) == 0 {
		return Input{}
	}
	if s.step >= len(s.steps) {
		return s.steps[len(s.steps)-1].Input
	}
	in := s.steps[s.step].Input
	s.frame++
	if s.frame >= s.steps[s.step].Frames {
		s.step++
		s.frame = 0
	}
	return in
}

// Done reports whether every step has been played
func (s *Script) Done() bool {
	return s.step >= len(s.steps)
}

// Frames returns the total number of scripted frames
func (s *Script) Frames() int {
	n := 0
	for _, st := range s.steps {
		n += st.Frames
	}
	return n
}

// ParseScript reads a script written as comma separated steps of the form
// controls:frames, where controls joins control names with "+", e.g.
//
//	start:1,throttle:120,throttle+left:30,brake:60,quit:1
//
// Valid names are throttle, brake, left, right, start, quit and idle.
// A step without ":frames" lasts one frame.
func ParseScript(src string) (*Script, error) {
	var steps []Step
	for _, tok := range strings.Split(src, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		controls, count, found := strings.Cut(tok, ":")
		frames := 1
		if found {
			n, err := strconv.Atoi(count)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: frame count %q in %q", ErrBadScript, count, tok)
			}
			frames = n
		}
		var in Input
		for _, name := range strings.Split(controls, "+") {
			switch strings.ToLower(strings.TrimSpace(name)) {
			case "throttle", "up":
				in.Throttle = true
			case "brake", "down":
				in.Brake = true
			case "left":
				in.Left = true
			case "right":
				in.Right = true
			case "start":
				in.Start = true
			case "quit":
				in.Quit = true
			case "idle", "":
			default:
				return nil, fmt.Errorf("%w: unknown control %q", ErrBadScript, name)
			}
		}
		steps = append(steps, Step{Input: in, Frames: frames})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrBadScript)
	}
	return NewScript(steps...), nil
}
