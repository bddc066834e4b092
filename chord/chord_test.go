package chord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/chordgrid/pitch"
)

func TestParseNormalizesQualityAliases(t *testing.T) {
	cases := []struct {
		in      string
		quality Quality
	}{
		{"C", Maj},
		{"Cmaj", Maj},
		{"Am", Min},
		{"Amin", Min},
		{"G7", Dom7},
		{"Cmaj7", Maj7},
		{"CM7", Maj7},
		{"Dm7", Min7},
		{"Bdim", Dim},
		{"Bdim7", Dim7},
		{"Caug", Aug},
		{"C+", Aug},
		{"Dsus2", Sus2},
		{"Dsus", Sus4},
		{"Dsus4", Sus4},
		{"Bm7b5", HalfDim7},
		{"Cadd9", Add9},
		{"C9", Dom9},
		{"Cmaj9", Maj9},
		{"Cm9", Min9},
		{"C11", Dom11},
		{"C13", Dom13},
		{"C6", Six},
		{"Cm6", Min6},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			sym, ok := Parse(c.in)
			assert := assert.New(t)
			assert.True(ok)
			assert.Equal(c.quality, sym.Quality)
			assert.False(sym.HasBass)
		})
	}
}

func TestParseSlashBass(t *testing.T) {
	sym, ok := Parse("Am7/G")
	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(Min7, sym.Quality)
	assert.True(sym.HasBass)
	assert.Equal("G", sym.Bass.String())
}

func TestParseDegreeBass(t *testing.T) {
	sym, ok := Parse("C/3")
	assert := assert.New(t)
	assert.True(ok)
	assert.Equal("E", sym.Bass.String())

	sym, ok = Parse("G7/b7")
	assert.True(ok)
	assert.Equal("F", sym.Bass.String())
}

func TestParseNoChordSentinels(t *testing.T) {
	for _, in := range []string{"", "N", "NC", "N.C.", "X"} {
		sym, ok := Parse(in)
		assert := assert.New(t)
		assert.True(ok, in)
		assert.Equal(None, sym.Quality, in)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"H", "Czz", "C/99", "C/", "123", "InvalidChord"} {
		_, ok := Parse(in)
		assert.False(t, ok, in)
	}
}

func TestBassNoteKeepsTheRootsSpellingFamily(t *testing.T) {
	cases := []struct {
		root    string
		quality Quality
		degree  string
		want    string
	}{
		// the documented boundary cases: letter first, accidental second
		{"G#", Maj, "3", "B#"},
		{"Gb", Min, "3", "Bbb"},
		{"C", Maj, "3", "E"},
		{"C", Min, "3", "Eb"},
		{"F#", Maj, "5", "C#"},
		{"B", Dim, "5", "F"},
		{"C", Aug, "#5", "G#"},
		{"D", Dom7, "7", "C"},
		{"D", Maj7, "7", "C#"},
		{"C", Dim7, "7", "Bbb"},
		{"E", Maj, "9", "F#"},
		{"C", Six, "6", "A"},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%v %v degree %v", c.root, c.quality.Suffix(), c.degree)
		t.Run(name, func(t *testing.T) {
			root, _, _ := pitch.ParseNote(c.root)
			bass, ok := BassNoteForInversion(root, c.quality, c.degree)
			assert := assert.New(t)
			assert.True(ok)
			assert.Equal(c.want, bass.String())
		})
	}
}

func TestSusChordsResolveTheThirdToTheSuspension(t *testing.T) {
	root, _, _ := pitch.ParseNote("C")
	assert := assert.New(t)

	bass, ok := BassNoteForInversion(root, Sus2, "3")
	assert.True(ok)
	assert.Equal("D", bass.String())

	bass, ok = BassNoteForInversion(root, Sus4, "3")
	assert.True(ok)
	assert.Equal("F", bass.String())
}

func TestFormatRendersGlyphs(t *testing.T) {
	cases := []struct{ in, want string }{
		{"C#", "C♯"},
		{"Bb7", "B♭7"},
		{"C##", "C𝄪"},
		{"Dbb", "D𝄫"},
		{"F#m7/A#", "F♯m7/A♯"},
		{"C#m7b5", "C♯m7b5"}, // quality text stays ASCII
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, FormatWithMusicalSymbols(c.in))
		})
	}
}

func TestFormatIsTotalOverGarbage(t *testing.T) {
	for _, in := range []string{"", "N.C.", "InvalidChord", "C/99", "99", "///"} {
		assert.Equal(t, in, FormatWithMusicalSymbols(in), in)
	}
}

func TestFormatThenParsePreservesPitchClassAndQuality(t *testing.T) {
	labels := []string{"C", "G#m7", "Bbmaj7", "F##dim", "Dbadd9", "Am7/G", "Ebm6"}
	for _, label := range labels {
		t.Run(fmt.Sprintf("round trip %v", label), func(t *testing.T) {
			orig, ok := Parse(label)
			assert := assert.New(t)
			assert.True(ok)

			back, ok := Parse(FormatWithMusicalSymbols(label))
			assert.True(ok)
			assert.Equal(orig.Root.Class(), back.Root.Class())
			assert.Equal(orig.Quality, back.Quality)
		})
	}
}
