package beatsync

import (
	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/model"
)

// Synchronize samples the chord stream at each beat: the chord sounding at
// a beat is the one with the latest onset at or before the beat time
// (step-function sampling, last chord wins). Beats before the first onset
// get the no-chord sentinel. Output length always equals len(beats).
//
// Precondition: both inputs are sorted ascending by time. Unsorted input
// is the caller's bug, not defended against here.
func Synchronize(chords []model.ChordEvent, beats []model.BeatEvent) []model.SynchronizedBeat {
	res := make([]model.SynchronizedBeat, 0, len(beats))
	curr := -1
	for i, beat := range beats {
		for curr+1 < len(chords) && chords[curr+1].OnsetTime <= beat.Time {
			curr++
		}
		label := chord.NoChordLabel
		if curr >= 0 {
			label = chords[curr].Chord
		}
		res = append(res, model.SynchronizedBeat{BeatIndex: i, Chord: label})
	}
	return res
}

// BeatsFromTimes lifts a raw timestamp array into beat events. The direct
// upload pipeline delivers bare numbers where the streaming pipeline
// delivers objects; normalizing here is what keeps the two downstream
// grids identical.
func BeatsFromTimes(times []float64) []model.BeatEvent {
	beats := make([]model.BeatEvent, len(times))
	for i, t := range times {
		beats[i] = model.BeatEvent{Time: t, Index: i}
	}
	return beats
}

// Times extracts the plain timestamp array from beat events.
func Times(beats []model.BeatEvent) []float64 {
	times := make([]float64, len(beats))
	for i, b := range beats {
		times[i] = b.Time
	}
	return times
}

// Labels flattens a synchronized series to its per-beat chord labels.
func Labels(synced []model.SynchronizedBeat) []string {
	labels := make([]string, len(synced))
	for i, s := range synced {
		labels[i] = s.Chord
	}
	return labels
}
