package midiout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/chordgrid/model"
)

func TestVoicingBuildsChordTones(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]uint8{48, 52, 55}, voicing("C"))
	assert.Equal([]uint8{57, 60, 64, 67}, voicing("Am7"))
	assert.Equal([]uint8{48, 52, 55, 59}, voicing("Cmaj7"))
	// slash bass sits an octave below the chord
	assert.Equal([]uint8{40, 57, 61, 64}, voicing("A/E"))
}

func TestVoicingSkipsSilenceAndGarbage(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(voicing("N.C."))
	assert.Nil(voicing(""))
	assert.Nil(voicing("InvalidChord"))
}

func TestSecondsToTicks(t *testing.T) {
	assert := assert.New(t)
	// at 120 bpm one second is two quarters
	assert.Equal(uint32(2*ticksPerQtr), secondsToTicks(1.0, 120))
	assert.Equal(uint32(0), secondsToTicks(-1.0, 120))
}

func TestRenderProducesOneTrack(t *testing.T) {
	synced := []model.SynchronizedBeat{
		{BeatIndex: 0, Chord: "C"},
		{BeatIndex: 1, Chord: "C"},
		{BeatIndex: 2, Chord: "F"},
		{BeatIndex: 3, Chord: "F"},
	}
	s := Render(synced, []float64{0, 0.5, 1.0, 1.5}, 120)
	assert.Len(t, s.Tracks, 1)
}

func TestRenderToleratesEmptyInput(t *testing.T) {
	s := Render(nil, nil, 0)
	assert.Len(t, s.Tracks, 1)
}
