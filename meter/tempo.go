package meter

import (
	"gonum.org/v1/gonum/stat"

	"github.com/jsphweid/chordgrid/model"
)

// EstimateTempo derives beats per minute from the mean inter-beat
// interval. Returns 0 for degenerate input (fewer than two beats, or
// timestamps that don't advance).
func EstimateTempo(beats []model.BeatEvent) float64 {
	if len(beats) < 2 {
		return 0
	}
	intervals := make([]float64, 0, len(beats)-1)
	for i := 1; i < len(beats); i++ {
		intervals = append(intervals, beats[i].Time-beats[i-1].Time)
	}
	mean := stat.Mean(intervals, nil)
	if mean <= 0 {
		return 0
	}
	return 60.0 / mean
}
