package pitch

import "strings"

// Class is a chromatic pitch class, C=0 through B=11.
type Class = int

// letterClasses maps a natural letter to its pitch class.
var letterClasses = map[byte]Class{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// letters in diatonic order starting from C, for letter arithmetic
var letters = []byte("CDEFGAB")

// Note is a spelled pitch: a letter plus an accidental count.
// Accidental ranges from -2 (double flat) to +2 (double sharp).
type Note struct {
	Letter     byte
	Accidental int
}

func Mod12(n int) Class {
	return ((n % 12) + 12) % 12
}

// Class resolves the spelled note to its pitch class.
func (n Note) Class() Class {
	return Mod12(letterClasses[n.Letter] + n.Accidental)
}

// String renders the note with ASCII accidentals, e.g. "G#", "Bbb".
func (n Note) String() string {
	return string(n.Letter) + accidentalASCII(n.Accidental)
}

// Glyph renders the note with musical accidental symbols, e.g. "G♯", "B𝄫".
func (n Note) Glyph() string {
	return string(n.Letter) + AccidentalGlyph(n.Accidental)
}

func accidentalASCII(acc int) string {
	if acc > 0 {
		return strings.Repeat("#", acc)
	}
	return strings.Repeat("b", -acc)
}

// AccidentalGlyph returns the display symbol for an accidental count.
func AccidentalGlyph(acc int) string {
	switch acc {
	case -2:
		return "𝄫"
	case -1:
		return "♭"
	case 1:
		return "♯"
	case 2:
		return "𝄪"
	default:
		return ""
	}
}

// IsLetter reports whether b is a valid note letter A-G.
func IsLetter(b byte) bool {
	return b >= 'A' && b <= 'G'
}

func letterIndex(l byte) int {
	for i, b := range letters {
		if b == l {
			return i
		}
	}
	return -1
}

// LetterAt returns the letter a number of diatonic steps above l.
func LetterAt(l byte, steps int) byte {
	i := letterIndex(l)
	if i < 0 {
		return l
	}
	return letters[((i+steps)%7+7)%7]
}

// ParseNote reads a note name from the front of s and returns the remainder.
// Accepts ASCII accidentals (#, b, ##, bb) and the musical glyph forms
// (♯, ♭, 𝄪, 𝄫). The letter must be uppercase A-G.
func ParseNote(s string) (Note, string, bool) {
	if s == "" || !IsLetter(s[0]) {
		return Note{}, s, false
	}
	n := Note{Letter: s[0]}
	rest := s[1:]
	for {
		switch {
		case strings.HasPrefix(rest, "𝄪"):
			n.Accidental += 2
			rest = rest[len("𝄪"):]
		case strings.HasPrefix(rest, "𝄫"):
			n.Accidental -= 2
			rest = rest[len("𝄫"):]
		case strings.HasPrefix(rest, "♯"):
			n.Accidental++
			rest = rest[len("♯"):]
		case strings.HasPrefix(rest, "♭"):
			n.Accidental--
			rest = rest[len("♭"):]
		case strings.HasPrefix(rest, "#"):
			n.Accidental++
			rest = rest[1:]
		case strings.HasPrefix(rest, "b") && n.Accidental <= 0:
			// 'b' only reads as a flat, never stacked on sharps
			n.Accidental--
			rest = rest[1:]
		default:
			if n.Accidental < -2 || n.Accidental > 2 {
				return Note{}, s, false
			}
			return n, rest, true
		}
	}
}

// SpellWithLetter spells a pitch class using a forced letter, picking the
// accidental that reconciles the two. Fails if more than a double sharp or
// double flat would be needed.
func SpellWithLetter(class Class, letter byte) (Note, bool) {
	base, ok := letterClasses[letter]
	if !ok {
		return Note{}, false
	}
	diff := Mod12(class - base)
	if diff > 6 {
		diff -= 12
	}
	if diff < -2 || diff > 2 {
		return Note{}, false
	}
	return Note{Letter: letter, Accidental: diff}, true
}

var sharpSpellings = [12]Note{
	{'C', 0}, {'C', 1}, {'D', 0}, {'D', 1}, {'E', 0}, {'F', 0},
	{'F', 1}, {'G', 0}, {'G', 1}, {'A', 0}, {'A', 1}, {'B', 0},
}

var flatSpellings = [12]Note{
	{'C', 0}, {'D', -1}, {'D', 0}, {'E', -1}, {'E', 0}, {'F', 0},
	{'G', -1}, {'G', 0}, {'A', -1}, {'A', 0}, {'B', -1}, {'B', 0},
}

// Spell returns the conventional single-accidental name for a pitch class,
// in either the sharp or the flat family.
func Spell(class Class, flats bool) Note {
	if flats {
		return flatSpellings[Mod12(class)]
	}
	return sharpSpellings[Mod12(class)]
}
