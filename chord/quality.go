package chord

// Quality is the closed set of chord qualities we understand. Raw model
// output is normalized into this set at the parse boundary via
// qualityAliases; nothing downstream dispatches on raw strings.
type Quality int

const (
	Maj Quality = iota
	Min
	Dom7
	Maj7
	Min7
	Dim
	Dim7
	Aug
	Sus2
	Sus4
	HalfDim7
	Add9
	Dom9
	Maj9
	Min9
	Dom11
	Dom13
	Six
	Min6
	None // the no-chord sentinel
)

// Suffix is the canonical textual suffix for the quality.
func (q Quality) Suffix() string {
	switch q {
	case Min:
		return "m"
	case Dom7:
		return "7"
	case Maj7:
		return "maj7"
	case Min7:
		return "m7"
	case Dim:
		return "dim"
	case Dim7:
		return "dim7"
	case Aug:
		return "aug"
	case Sus2:
		return "sus2"
	case Sus4:
		return "sus4"
	case HalfDim7:
		return "m7b5"
	case Add9:
		return "add9"
	case Dom9:
		return "9"
	case Maj9:
		return "maj9"
	case Min9:
		return "m9"
	case Dom11:
		return "11"
	case Dom13:
		return "13"
	case Six:
		return "6"
	case Min6:
		return "m6"
	default:
		return ""
	}
}

var qualityAliases = map[string]Quality{
	"":      Maj,
	"maj":   Maj,
	"M":     Maj,
	"major": Maj,

	"m":     Min,
	"min":   Min,
	"minor": Min,
	"-":     Min,

	"7":    Dom7,
	"dom7": Dom7,

	"maj7": Maj7,
	"M7":   Maj7,

	"m7":   Min7,
	"min7": Min7,
	"-7":   Min7,

	"dim": Dim,
	"o":   Dim,
	"°":   Dim,

	"dim7": Dim7,
	"o7":   Dim7,
	"°7":   Dim7,

	"aug": Aug,
	"+":   Aug,

	"sus2": Sus2,
	"sus":  Sus4,
	"sus4": Sus4,

	"m7b5":   HalfDim7,
	"min7b5": HalfDim7,
	"hdim7":  HalfDim7,
	"ø":      HalfDim7,
	"ø7":     HalfDim7,

	"add9": Add9,

	"9":    Dom9,
	"dom9": Dom9,
	"maj9": Maj9,
	"M9":   Maj9,
	"m9":   Min9,
	"min9": Min9,

	"11":    Dom11,
	"dom11": Dom11,
	"13":    Dom13,
	"dom13": Dom13,

	"6":    Six,
	"m6":   Min6,
	"min6": Min6,
}

// Tones lists the chord-tone intervals in semitones above the root.
var qualityTones = map[Quality][]int{
	Maj:      {0, 4, 7},
	Min:      {0, 3, 7},
	Dom7:     {0, 4, 7, 10},
	Maj7:     {0, 4, 7, 11},
	Min7:     {0, 3, 7, 10},
	Dim:      {0, 3, 6},
	Dim7:     {0, 3, 6, 9},
	Aug:      {0, 4, 8},
	Sus2:     {0, 2, 7},
	Sus4:     {0, 5, 7},
	HalfDim7: {0, 3, 6, 10},
	Add9:     {0, 4, 7, 14},
	Dom9:     {0, 4, 7, 10, 14},
	Maj9:     {0, 4, 7, 11, 14},
	Min9:     {0, 3, 7, 10, 14},
	Dom11:    {0, 4, 7, 10, 14, 17},
	Dom13:    {0, 4, 7, 10, 14, 21},
	Six:      {0, 4, 7, 9},
	Min6:     {0, 3, 7, 9},
}

// Tones returns the chord-tone intervals for q, root first.
func (q Quality) Tones() []int {
	tones := qualityTones[q]
	out := make([]int, len(tones))
	copy(out, tones)
	return out
}

func (q Quality) hasMinorThird() bool {
	switch q {
	case Min, Min7, Dim, Dim7, HalfDim7, Min9, Min6:
		return true
	}
	return false
}
