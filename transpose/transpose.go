package transpose

import (
	"strings"

	"github.com/jsphweid/chordgrid/chord"
	"github.com/jsphweid/chordgrid/pitch"
	"github.com/jsphweid/chordgrid/util"
)

// Window bounds the semitone shift taken from callers. Values outside it
// are clamped, never rejected: the pitch-shift UI only exposes +/-6 anyway.
const Window = 6

// Chord shifts a chord label by semitones and respells it in the
// sharp/flat family implied by targetKey. Labels that don't parse (noisy
// model output) and no-chord sentinels come back unchanged — transposition
// is best effort over a heterogeneous label stream and must never fail it.
func Chord(label string, semitones int, targetKey string) string {
	sym, ok := chord.Parse(label)
	if !ok || sym.Quality == chord.None {
		return label
	}
	semitones = util.Clamp(semitones, -Window, Window)
	flats := PrefersFlats(targetKey)
	sym.Root = pitch.Spell(sym.Root.Class()+semitones, flats)
	if sym.HasBass {
		sym.Bass = pitch.Spell(sym.Bass.Class()+semitones, flats)
	}
	return sym.String()
}

// Batch transposes every label with one spelling convention so a whole
// grid stays consistent.
func Batch(labels []string, semitones int, targetKey string) []string {
	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = Chord(label, semitones, targetKey)
	}
	return out
}

// Conventional key names per pitch class. Major prefers the signature with
// fewer accidentals (Db over C#, but F# over Gb).
var majorKeyNames = [12]string{
	"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B",
}

var minorKeyNames = [12]string{
	"C", "C#", "D", "Eb", "E", "F", "F#", "G", "G#", "A", "Bb", "B",
}

// TargetKey shifts a key name by semitones, keeping any minor/major suffix
// and picking the conventional spelling for the result. Unparsable key
// names pass through unchanged.
func TargetKey(key string, semitones int) string {
	root, suffix, ok := pitch.ParseNote(strings.TrimSpace(key))
	if !ok {
		return key
	}
	class := pitch.Mod12(root.Class() + util.Clamp(semitones, -Window, Window))
	if isMinorSuffix(suffix) {
		return minorKeyNames[class] + suffix
	}
	return majorKeyNames[class] + suffix
}

// PrefersFlats reports whether a key conventionally spells accidentals as
// flats. Flat-accidental keys do; sharp-accidental keys don't; among the
// naturals, F major and the d/g/c/f minors carry flat signatures.
func PrefersFlats(key string) bool {
	root, suffix, ok := pitch.ParseNote(strings.TrimSpace(key))
	if !ok {
		return false
	}
	if root.Accidental != 0 {
		return root.Accidental < 0
	}
	if isMinorSuffix(suffix) {
		switch root.Letter {
		case 'D', 'G', 'C', 'F':
			return true
		}
		return false
	}
	return root.Letter == 'F'
}

func isMinorSuffix(suffix string) bool {
	switch strings.ToLower(strings.TrimSpace(suffix)) {
	case "m", "min", "minor", "-":
		return true
	}
	return false
}
