package chord

import (
	"strings"

	"github.com/jsphweid/chordgrid/pitch"
)

// NoChordLabel is the display sentinel for "no harmony sounding here".
const NoChordLabel = "N.C."

// noChordForms are the raw labels chord-recognition models emit for
// unvoiced stretches.
var noChordForms = map[string]bool{
	"":     true,
	"N":    true,
	"NC":   true,
	"N.C.": true,
	"n.c.": true,
	"X":    true,
}

// Symbol is a parsed chord: root, quality and an optional slash bass.
type Symbol struct {
	Root    pitch.Note
	Quality Quality
	Bass    pitch.Note
	HasBass bool
}

// IsNoChord reports whether a raw label is a no-chord sentinel.
func IsNoChord(label string) bool {
	return noChordForms[strings.TrimSpace(label)]
}

// Parse reads a chord label of the form <Root><Quality>[/<Bass-or-Degree>].
// No-chord sentinels parse to a Symbol with Quality None. Anything else we
// cannot understand returns ok=false; callers are expected to pass the raw
// label through unchanged in that case. Never panics, whatever the input.
func Parse(label string) (Symbol, bool) {
	text := strings.TrimSpace(label)
	if IsNoChord(text) {
		return Symbol{Quality: None}, true
	}

	head, bassTok, slash := strings.Cut(text, "/")
	root, rest, ok := pitch.ParseNote(head)
	if !ok {
		return Symbol{}, false
	}
	quality, ok := qualityAliases[rest]
	if !ok {
		return Symbol{}, false
	}

	sym := Symbol{Root: root, Quality: quality}
	if !slash {
		return sym, true
	}
	bass, ok := parseBass(sym, bassTok)
	if !ok {
		return Symbol{}, false
	}
	sym.Bass = bass
	sym.HasBass = true
	return sym, true
}

func parseBass(sym Symbol, tok string) (pitch.Note, bool) {
	if tok == "" {
		return pitch.Note{}, false
	}
	if pitch.IsLetter(tok[0]) {
		bass, rest, ok := pitch.ParseNote(tok)
		if !ok || rest != "" {
			return pitch.Note{}, false
		}
		return bass, true
	}
	return BassNoteForInversion(sym.Root, sym.Quality, tok)
}

// String renders the symbol with ASCII accidentals.
func (s Symbol) String() string {
	if s.Quality == None {
		return NoChordLabel
	}
	out := s.Root.String() + s.Quality.Suffix()
	if s.HasBass {
		out += "/" + s.Bass.String()
	}
	return out
}

// degreeSpec is the diatonic letter distance and chromatic interval of a
// scale-degree bass token.
type degreeSpec struct {
	steps    int
	semitone int
}

// BassNoteForInversion resolves a numeric inversion degree (e.g. "3", "5",
// "b7") to the actual bass note it implies over root+quality.
//
// The bass is always spelled in the root's letter family: the letter is
// fixed by diatonic arithmetic (degree steps above the root's letter) and
// only then is the accidental chosen to hit the target pitch class. That is
// what makes G# major's third come out as B#, never C — double sharps and
// double flats are the expected cost of getting the letter right.
func BassNoteForInversion(root pitch.Note, quality Quality, degree string) (pitch.Note, bool) {
	d, ok := degreeFor(quality, degree)
	if !ok {
		return pitch.Note{}, false
	}
	class := pitch.Mod12(root.Class() + d.semitone)
	letter := pitch.LetterAt(root.Letter, d.steps)
	if note, ok := pitch.SpellWithLetter(class, letter); ok {
		return note, true
	}
	// letter spelling would need a triple accidental; give up on the
	// letter and fall back to the root's accidental family
	return pitch.Spell(class, root.Accidental < 0), true
}

func degreeFor(quality Quality, degree string) (degreeSpec, bool) {
	switch degree {
	case "1":
		return degreeSpec{0, 0}, true
	case "3":
		return thirdOf(quality), true
	case "5":
		return degreeSpec{4, fifthInterval(quality)}, true
	case "b5":
		return degreeSpec{4, 6}, true
	case "#5":
		return degreeSpec{4, 8}, true
	case "6":
		return degreeSpec{5, 9}, true
	case "7":
		return degreeSpec{6, seventhInterval(quality)}, true
	case "b7":
		return degreeSpec{6, 10}, true
	case "9":
		return degreeSpec{1, 2}, true
	default:
		return degreeSpec{}, false
	}
}

// thirdOf picks the chord's actual third. Sus chords have none, so the
// degree resolves to the suspension tone instead.
func thirdOf(quality Quality) degreeSpec {
	switch quality {
	case Sus2:
		return degreeSpec{1, 2}
	case Sus4:
		return degreeSpec{3, 5}
	}
	if quality.hasMinorThird() {
		return degreeSpec{2, 3}
	}
	return degreeSpec{2, 4}
}

func fifthInterval(quality Quality) int {
	switch quality {
	case Dim, Dim7, HalfDim7:
		return 6
	case Aug:
		return 8
	}
	return 7
}

// seventhInterval defaults to the minor seventh for qualities that carry no
// seventh of their own.
func seventhInterval(quality Quality) int {
	switch quality {
	case Maj7, Maj9:
		return 11
	case Dim7:
		return 9
	}
	return 10
}
