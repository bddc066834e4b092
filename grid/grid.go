package grid

import (
	"github.com/jsphweid/chordgrid/beatsync"
	"github.com/jsphweid/chordgrid/model"
	"github.com/jsphweid/chordgrid/util"
)

const defaultTimeSignature = 4

// Params control how the flat synchronized series is padded into measures.
type Params struct {
	TimeSignature    int
	ShiftCount       int
	PickupBeatsCount int
}

// Build constructs the visual grid from a synchronized beat series and the
// matching beat timestamps. Pickup cells come first, then shift cells, then
// the real cells; the tail is filled out to a whole measure. Padding cells
// carry an empty chord and a nil beat. OriginalAudioMapping records, for
// every real cell, which audio index and timestamp it stands for, so
// playback can always recover the audio moment behind visual cell K.
func Build(synced []model.SynchronizedBeat, beatTimes []float64, p Params) model.ChordGridData {
	ts := p.TimeSignature
	if ts <= 0 {
		ts = defaultTimeSignature
	}
	shift := max(p.ShiftCount, 0) % ts
	pickup := max(p.PickupBeatsCount, 0)
	total := shift + pickup

	n := util.Min(len(synced), len(beatTimes))
	out := model.ChordGridData{
		TimeSignature:        ts,
		HasPadding:           pickup > 0,
		PaddingCount:         pickup,
		ShiftCount:           shift,
		TotalPaddingCount:    total,
		HasPickupBeats:       pickup > 0,
		PickupBeatsCount:     pickup,
		Chords:               make([]string, 0, total+n),
		Beats:                make([]*float64, 0, total+n),
		OriginalAudioMapping: make([]model.AudioMapping, 0, n),
	}

	for i := 0; i < total; i++ {
		out.Chords = append(out.Chords, "")
		out.Beats = append(out.Beats, nil)
	}
	for i := 0; i < n; i++ {
		t := beatTimes[i]
		out.Chords = append(out.Chords, synced[i].Chord)
		out.Beats = append(out.Beats, &t)
		out.OriginalAudioMapping = append(out.OriginalAudioMapping, model.AudioMapping{
			Chord:       synced[i].Chord,
			Timestamp:   t,
			VisualIndex: total + i,
			AudioIndex:  i,
		})
	}

	// fill the last measure; trailing fill is cosmetic and not counted
	// in any padding total
	for len(out.Chords)%ts != 0 {
		out.Chords = append(out.Chords, "")
		out.Beats = append(out.Beats, nil)
	}
	return out
}

// BuildFromBeatEvents builds the grid from the streaming pipeline's shape,
// where beats arrive as objects with a time field.
func BuildFromBeatEvents(synced []model.SynchronizedBeat, beats []model.BeatEvent, p Params) model.ChordGridData {
	return Build(synced, beatsync.Times(beats), p)
}

// BuildFromTimes builds the grid from the upload pipeline's shape, where
// beats arrive as a raw number array. Must agree cell for cell with
// BuildFromBeatEvents given equivalent input.
func BuildFromTimes(synced []model.SynchronizedBeat, times []float64, p Params) model.ChordGridData {
	return Build(synced, times, p)
}

// Measures groups the flat cell sequence into rows of TimeSignature cells.
func Measures(g model.ChordGridData) [][]string {
	if g.TimeSignature <= 0 {
		return nil
	}
	var rows [][]string
	for i := 0; i < len(g.Chords); i += g.TimeSignature {
		end := util.Min(i+g.TimeSignature, len(g.Chords))
		rows = append(rows, g.Chords[i:end])
	}
	return rows
}
