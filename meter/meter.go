package meter

import (
	"github.com/jsphweid/chordgrid/beatsync"
	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/model"
)

// PreferredOnTie is the meter chosen when two signatures score equally.
// Product decision: 4/4 is overwhelmingly the most common meter, so a tie
// goes to it rather than to whichever candidate happened to come first.
const PreferredOnTie = 4

// Scoring weights. Deliberately asymmetric: an on-beat chord change is
// worth twice what an off-beat change costs, so a modest majority of
// on-beat changes is enough to win.
const (
	changeReward  = 2
	changePenalty = 1
)

// Alignment is the outcome of scoring one time signature.
type Alignment struct {
	Score     int
	BestShift int
}

// ScoreAlignment scores how well chord changes line up with downbeats for
// a given time signature. For each phase shift in [0, timeSignature) it
// counts changes landing on positions congruent to the shift and scores
// 2*onBeat - offBeat; the best shift wins, ties going to the lowest shift
// since iteration ascends and only a strictly greater score replaces.
func ScoreAlignment(series []string, timeSignature int) Alignment {
	if timeSignature <= 0 || len(series) < 2 {
		return Alignment{}
	}
	changes := changePositions(series)
	var best Alignment
	for shift := 0; shift < timeSignature; shift++ {
		var onBeat, offBeat int
		for _, pos := range changes {
			if pos%timeSignature == shift {
				onBeat++
			} else {
				offBeat++
			}
		}
		score := changeReward*onBeat - changePenalty*offBeat
		if shift == 0 || score > best.Score {
			best = Alignment{Score: score, BestShift: shift}
		}
	}
	return best
}

// changePositions finds the beat positions where the sounding chord
// changes. A change needs two adjacent, distinct, actually-sounding
// labels; entering or leaving a no-chord stretch doesn't count.
func changePositions(series []string) []int {
	var positions []int
	for i := 1; i < len(series); i++ {
		if !sounding(series[i-1]) || !sounding(series[i]) {
			continue
		}
		if series[i] != series[i-1] {
			positions = append(positions, i)
		}
	}
	return positions
}

func sounding(label string) bool {
	return !chord.IsNoChord(label)
}

// Choice is the selected meter for a piece.
type Choice struct {
	TimeSignature int
	Shift         int
	Score         int
	Downbeats     []float64
}

// defaultCandidates covers the common 3-vs-4 question when the upstream
// model supplied no downbeat hypotheses.
var defaultCandidates = []model.MeterCandidate{
	{TimeSignature: 3},
	{TimeSignature: 4},
}

// Choose synchronizes the chords onto the beats and picks the candidate
// time signature whose downbeats best explain where the chords change.
// This deliberately second-guesses the upstream model: chord-change
// statistics are a stronger meter signal than a single beat tracker.
func Choose(chords []model.ChordEvent, beats []model.BeatEvent, candidates []model.MeterCandidate) Choice {
	if len(candidates) == 0 {
		candidates = defaultCandidates
	}
	series := beatsync.Labels(beatsync.Synchronize(chords, beats))

	var best Choice
	for i, cand := range candidates {
		a := ScoreAlignment(series, cand.TimeSignature)
		c := Choice{
			TimeSignature: cand.TimeSignature,
			Shift:         a.BestShift,
			Score:         a.Score,
			Downbeats:     cand.Downbeats,
		}
		if i == 0 || c.Score > best.Score || (c.Score == best.Score && betterTiebreak(c, best)) {
			best = c
		}
	}
	return best
}

func betterTiebreak(c, best Choice) bool {
	return c.TimeSignature == PreferredOnTie && best.TimeSignature != PreferredOnTie
}
