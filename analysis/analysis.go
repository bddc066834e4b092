package analysis

import (
	"github.com/jsphweid/chordgrid/beatsync"
	"github.com/jsphweid/chordgrid/grid"
	"github.com/jsphweid/chordgrid/meter"
	"github.com/jsphweid/chordgrid/model"
)

// Request is everything one analysis run needs: the raw output of the
// external beat and chord models plus optional meter hypotheses.
type Request struct {
	Chords           []model.ChordEvent
	Beats            []model.BeatEvent
	Candidates       []model.MeterCandidate
	PickupBeatsCount int
}

// Run executes the full pipeline: synchronize chords onto beats, choose
// the meter and downbeat shift, build the visual grid, estimate tempo.
// Pure and stateless; safe to run concurrently per open analysis.
func Run(req Request) model.AnalysisResult {
	synced := beatsync.Synchronize(req.Chords, req.Beats)
	choice := meter.Choose(req.Chords, req.Beats, req.Candidates)
	g := grid.BuildFromBeatEvents(synced, req.Beats, grid.Params{
		TimeSignature:    choice.TimeSignature,
		ShiftCount:       choice.Shift,
		PickupBeatsCount: req.PickupBeatsCount,
	})
	return model.AnalysisResult{
		TimeSignature: choice.TimeSignature,
		Shift:         choice.Shift,
		BPM:           meter.EstimateTempo(req.Beats),
		SyncedBeats:   synced,
		Grid:          g,
	}
}

// RunRaw is the upload-pipeline entry point: beats as a bare timestamp
// array. Produces a grid identical to Run given equivalent input.
func RunRaw(chords []model.ChordEvent, beatTimes []float64, candidates []model.MeterCandidate, pickup int) model.AnalysisResult {
	return Run(Request{
		Chords:           chords,
		Beats:            beatsync.BeatsFromTimes(beatTimes),
		Candidates:       candidates,
		PickupBeatsCount: pickup,
	})
}
