package chord

import (
	"strings"

	"github.com/jsphweid/chordgrid/pitch"
)

// FormatWithMusicalSymbols renders the ASCII accidentals of a label's root
// and bass as musical glyphs (♯ ♭ 𝄪 𝄫) for display. Quality text is left
// untouched, so the change is purely cosmetic and Parse still understands
// the result. Total over arbitrary strings: no-chord sentinels, degree
// basses and garbage all pass through unchanged.
func FormatWithMusicalSymbols(label string) string {
	if IsNoChord(label) {
		return label
	}
	head, bassTok, slash := strings.Cut(label, "/")
	out := glyphify(head)
	if slash {
		out += "/" + glyphify(bassTok)
	}
	return out
}

func glyphify(part string) string {
	note, rest, ok := pitch.ParseNote(part)
	if !ok {
		return part
	}
	return note.Glyph() + rest
}
