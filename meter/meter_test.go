package meter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/chordgrid/beatsync"
	"github.com/jsphweid/chordgrid/model"
)

func TestScoreAlignmentRewardsOnBeatChanges(t *testing.T) {
	// changes at positions 2, 4, 6
	series := []string{"C", "C", "F", "F", "G", "G", "C", "C"}

	a := ScoreAlignment(series, 4)
	assert := assert.New(t)
	// shift 2 catches changes at 2 and 6: 2*2 - 1*1
	assert.Equal(2, a.BestShift)
	assert.Equal(3, a.Score)

	a = ScoreAlignment(series, 3)
	// changes fall on 2,1,0 mod 3, one per shift: 2*1 - 1*2 everywhere,
	// lowest shift wins the tie
	assert.Equal(0, a.BestShift)
	assert.Equal(0, a.Score)
}

func TestScoreAlignmentIgnoresNoChordBoundaries(t *testing.T) {
	series := []string{"C", "N.C.", "F", "F", "", "G"}
	a := ScoreAlignment(series, 2)
	// entering or leaving a silent stretch is not a chord change
	assert.Equal(t, 0, a.Score)
}

func TestScoreAlignmentOnlyDependsOnChangePattern(t *testing.T) {
	before := []string{"C", "C", "F", "F", "G", "G", "C", "C"}
	after := []string{"Db", "Db", "A7", "A7", "Em", "Em", "Db", "Db"}

	assert.Equal(t, ScoreAlignment(before, 4), ScoreAlignment(after, 4))
}

func TestScoreAlignmentDegenerateInputs(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Alignment{}, ScoreAlignment(nil, 4))
	assert.Equal(Alignment{}, ScoreAlignment([]string{"C"}, 4))
	assert.Equal(Alignment{}, ScoreAlignment([]string{"C", "F"}, 0))
}

func TestChoosePicksTheSignatureThatExplainsTheChanges(t *testing.T) {
	// C F G C over 8 beats, two beats per chord: changes land on every
	// other beat, which a 4/4 reading with shift 2 explains best
	chords := []model.ChordEvent{
		{Chord: "C", OnsetTime: 0},
		{Chord: "F", OnsetTime: 2},
		{Chord: "G", OnsetTime: 4},
		{Chord: "C", OnsetTime: 6},
	}
	beats := beatsync.BeatsFromTimes([]float64{0, 1, 2, 3, 4, 5, 6, 7})
	candidates := []model.MeterCandidate{
		{TimeSignature: 3},
		{TimeSignature: 4, Downbeats: []float64{0, 4}},
	}

	choice := Choose(chords, beats, candidates)

	assert := assert.New(t)
	assert.Equal(4, choice.TimeSignature)
	assert.Equal(2, choice.Shift)
	assert.Equal([]float64{0, 4}, choice.Downbeats)
}

func TestChooseTieGoesToCommonTime(t *testing.T) {
	// a single unchanging chord scores zero everywhere
	chords := []model.ChordEvent{{Chord: "C", OnsetTime: 0}}
	beats := beatsync.BeatsFromTimes([]float64{0, 1, 2, 3, 4, 5})

	choice := Choose(chords, beats, nil)
	assert.Equal(t, PreferredOnTie, choice.TimeSignature)
}

func TestChooseDegenerateInput(t *testing.T) {
	choice := Choose(nil, nil, nil)
	assert := assert.New(t)
	assert.Equal(PreferredOnTie, choice.TimeSignature)
	assert.Equal(0, choice.Score)
}

func TestEstimateTempo(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(120.0, EstimateTempo(beatsync.BeatsFromTimes([]float64{0, 0.5, 1.0, 1.5})), 1e-9)
	assert.InDelta(60.0, EstimateTempo(beatsync.BeatsFromTimes([]float64{10, 11, 12})), 1e-9)
	assert.Zero(EstimateTempo(nil))
	assert.Zero(EstimateTempo(beatsync.BeatsFromTimes([]float64{1})))
	assert.Zero(EstimateTempo(beatsync.BeatsFromTimes([]float64{2, 2, 2})))
}
