package midiout

import (
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/model"
)

const (
	defaultBPM  = 120.0
	rootOctave  = 48 // C3
	bassOctave  = 36 // C2
	velocity    = 80
	ticksPerQtr = 960
)

// event is a note message at an absolute tick, before delta encoding.
type event struct {
	tick uint32
	off  bool // note-offs sort before note-ons at the same tick
	msg  midi.Message
}

// Render turns a synchronized chord track into a single-track SMF: one
// block voicing per chord run, held until the next chord change or the
// final beat. Labels that don't parse are skipped, same as the display
// layer skips them.
func Render(synced []model.SynchronizedBeat, beatTimes []float64, bpm float64) *smf.SMF {
	if bpm <= 0 {
		bpm = defaultBPM
	}
	clock := smf.MetricTicks(ticksPerQtr)

	var events []event
	n := len(synced)
	if n > len(beatTimes) {
		n = len(beatTimes)
	}
	for start := 0; start < n; {
		end := start + 1
		for end < n && synced[end].Chord == synced[start].Chord {
			end++
		}
		keys := voicing(synced[start].Chord)
		if len(keys) > 0 {
			onTick := secondsToTicks(beatTimes[start], bpm)
			offTick := secondsToTicks(runEndTime(beatTimes, end, n), bpm)
			for _, key := range keys {
				events = append(events, event{tick: onTick, msg: midi.NoteOn(0, key, velocity)})
				events = append(events, event{tick: offTick, off: true, msg: midi.NoteOff(0, key)})
			}
		}
		start = end
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].off && !events[j].off
	})

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("chords"))
	tr.Add(0, smf.MetaTempo(bpm))
	var lastTick uint32
	for _, evt := range events {
		tr.Add(evt.tick-lastTick, evt.msg)
		lastTick = evt.tick
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	s.Add(tr)
	return s
}

// WriteFile renders the chord track and writes it as a standard MIDI file.
func WriteFile(path string, synced []model.SynchronizedBeat, beatTimes []float64, bpm float64) error {
	return Render(synced, beatTimes, bpm).WriteFile(path)
}

// voicing maps a chord label to MIDI keys: chord tones around C3 plus the
// slash bass an octave below when present. Unparsable labels and no-chord
// stretches voice to nothing.
func voicing(label string) []uint8 {
	sym, ok := chord.Parse(label)
	if !ok || sym.Quality == chord.None {
		return nil
	}
	var keys []uint8
	if sym.HasBass {
		keys = append(keys, uint8(bassOctave+sym.Bass.Class()))
	}
	root := rootOctave + sym.Root.Class()
	for _, interval := range sym.Quality.Tones() {
		keys = append(keys, uint8(root+interval))
	}
	return keys
}

// runEndTime holds the last run through one extra beat interval so the
// final chord doesn't cut off exactly on its own onset.
func runEndTime(beatTimes []float64, end, n int) float64 {
	if end < n {
		return beatTimes[end]
	}
	last := beatTimes[n-1]
	if n >= 2 {
		return last + (last-beatTimes[n-2])
	}
	return last + 1
}

func secondsToTicks(seconds, bpm float64) uint32 {
	if seconds < 0 {
		seconds = 0
	}
	return uint32(seconds * bpm / 60.0 * ticksPerQtr)
}
