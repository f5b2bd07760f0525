package game

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/roadrash/pkg/draw"
	"github.com/golangdaddy/roadrash/pkg/models"
	"github.com/golangdaddy/roadrash/pkg/road"
)

func TestPlay(t *testing.T) {
	s := newSim(t)
	scene := NewScene(s, rand.New(rand.NewSource(1)))
	script, err := ParseScript("idle:10,start:1,throttle:100")
	require.NoError(t, err)

	rec := draw.NewRecorder(800, 600)
	sum := Play(s, scene, script, 60, dt, rec)

	assert.Equal(t, 60, sum.Frames)
	assert.Equal(t, 1, sum.Starts)
	assert.Equal(t, []Record{{Frame: 10, Event: EventStarted}}, sum.Events[:1])
	assert.Greater(t, sum.Commands, 60*100)
	assert.NotEqual(t, models.PhaseTitle, sum.Rider.Phase)
}

func TestPlayStopsOnQuit(t *testing.T) {
	s := newSim(t)
	scene := NewScene(s, rand.New(rand.NewSource(1)))
	script := NewScript(
		Step{Input: Input{}, Frames: 5},
		Step{Input: Input{Quit: true}, Frames: 1},
	)
	sum := Play(s, scene, script, 100, dt, draw.NewRecorder(800, 600))
	assert.Equal(t, 5, sum.Frames)
	assert.Empty(t, sum.Events)
}

func TestPlayCountsCrashes(t *testing.T) {
	s := running(t)
	s.track.Place(2, road.Occupant{Lane: 0, Name: "Luna Okafor"})
	scene := NewScene(s, rand.New(rand.NewSource(1)))
	sum := Play(s, scene, NewScript(Step{Frames: 3}), 3, dt, draw.NewRecorder(800, 600))

	assert.Equal(t, 1, sum.Crashes)
	assert.Equal(t, "Luna Okafor", sum.Rider.HitBy)

	out, err := json.Marshal(sum)
	require.NoError(t, err)
	assert.Contains(t, string(out), `{"frame":0,"event":"crashed"}`)
}
