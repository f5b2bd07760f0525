package game

import (
	"github.com/golangdaddy/roadrash/pkg/draw"
	"github.com/golangdaddy/roadrash/pkg/models"
)

// Record is an event and the frame it happened on
type Record struct {
	Frame int   `json:"frame"`
	Event Event `json:"event"`
}

// Summary describes a headless run
type Summary struct {
	Frames   int          `json:"frames"`
	Starts   int          `json:"starts"`
	Crashes  int          `json:"crashes"`
	Commands int          `json:"commands"` // draw commands issued over the whole run
	Events   []Record     `json:"events"`
	Rider    models.Rider `json:"rider"`
}

// Play runs up to frames fixed steps of dt seconds with controls from src,
// rendering every frame into rec. It stops early when src asks to quit.
func Play(sim *Simulation, scene *Scene, src Source, frames int, dt float64, rec *draw.Recorder) Summary {
	var sum Summary
	for f := 0; f < frames; f++ {
		in := src.Poll()
		if in.Quit {
			break
		}
		ev := sim.Step(in, dt)
		switch ev {
		case EventStarted:
			sum.Starts++
		case EventCrashed:
			sum.Crashes++
		}
		if ev != EventNone {
			sum.Events = append(sum.Events, Record{Frame: f, Event: ev})
		}

		rec.Reset()
		scene.Render(rec)
		sum.Commands += len(rec.Commands)
		sum.Frames++
	}
	sum.Rider = sim.Rider()
	return sum
}
