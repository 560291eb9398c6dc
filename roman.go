package modal

import "strings"

// UnknownNumeral is shown in place of a Roman numeral that could not be
// resolved.
const UnknownNumeral = "?"

// numerals for every interval above the key, as major, minor and diminished
// triads; non-diatonic degrees of the major scale are spelled flat
var romanTable = [NumNotes][NumQualities]string{
	{"I", "i", "i°"},
	{"♭II", "♭ii", "♭ii°"},
	{"II", "ii", "ii°"},
	{"♭III", "♭iii", "♭iii°"},
	{"III", "iii", "iii°"},
	{"IV", "iv", "iv°"},
	{"♭V", "♭v", "♭v°"},
	{"V", "v", "v°"},
	{"♭VI", "♭vi", "♭vi°"},
	{"VI", "vi", "vi°"},
	{"♭VII", "♭vii", "♭vii°"},
	{"VII", "vii", "vii°"},
}

// RomanNumeral returns the Roman numeral of chord relative to key. The degree
// comes from the interval between the key and the chord root; the case and
// the ° mark come from the quality of the chord itself, not from the quality
// the major scale would have on that degree. So in C, Fm is "iv" and Ab is
// "♭VI".
func RomanNumeral(chord Chord, key Note) string {
	if !chord.Valid() || !key.Valid() {
		return UnknownNumeral
	}
	return romanTable[key.Interval(chord.Root)][chord.Quality]
}

// IsDiatonicToMajor reports if chord is one of the seven diatonic chords of
// the major scale of key. Chords that are not are borrowed. An invalid key
// has no diatonic chords.
func IsDiatonicToMajor(chord Chord, key Note) bool {
	if !key.Valid() {
		return false
	}
	for _, d := range DiatonicChords(key, modeCatalog[Ionian]) {
		if d.Chord == chord {
			return true
		}
	}
	return false
}

type (
	// ProgressionStep is the analysis of one chord of a progression.
	ProgressionStep struct {
		Chord    Chord
		Numeral  string
		Borrowed bool
	}

	// Progression is the Roman numeral analysis of a chord progression in a
	// major key.
	Progression struct {
		Key   Note
		Steps []ProgressionStep
	}
)

// AnalyzeProgression labels every chord of the progression with its Roman
// numeral in key and flags the chords that are borrowed from outside the
// major scale. Order and duplicates are kept.
func AnalyzeProgression(chords []Chord, key Note) Progression {
	ret := Progression{Key: key, Steps: make([]ProgressionStep, len(chords))}
	for i, c := range chords {
		ret.Steps[i] = ProgressionStep{
			Chord:    c,
			Numeral:  RomanNumeral(c, key),
			Borrowed: !IsDiatonicToMajor(c, key),
		}
	}
	return ret
}

// Numerals returns the numerals of the steps in order.
func (p Progression) Numerals() []string {
	ret := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		ret[i] = s.Numeral
	}
	return ret
}

// Formula returns the numerals joined with dashes, e.g. "I - V - vi - IV".
func (p Progression) Formula() string {
	return strings.Join(p.Numerals(), " - ")
}

// NumeralForSymbol is RomanNumeral for raw symbols, as they come from a user
// interface. Symbols that do not parse give UnknownNumeral instead of an
// error.
func NumeralForSymbol(symbol, key string) string {
	chord, err := ParseChord(symbol)
	if err != nil {
		return UnknownNumeral
	}
	k, err := ParseNote(key)
	if err != nil {
		return UnknownNumeral
	}
	return RomanNumeral(chord, k)
}
