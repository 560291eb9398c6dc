package modal

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// NumDegrees is the number of degrees in every diatonic mode.
const NumDegrees = 7

type (
	// Mode is one of the seven rotations of the diatonic scale. For every
	// degree, the mode tabulates the semitone offset from the tonic, the
	// quality of the triad built on that degree and its Roman numeral.
	// Characteristic marks the degrees whose chords best tell the mode apart
	// from its relatives.
	Mode struct {
		Name           string
		Description    string
		Intervals      [NumDegrees]int
		Qualities      [NumDegrees]Quality
		Numerals       [NumDegrees]string
		Characteristic DegreeSet
	}

	// DegreeSet is a set of scale degrees 0..6, one bit per degree.
	DegreeSet uint8
)

// Degrees returns a DegreeSet containing the given degrees. Degrees outside
// 0..6 are ignored.
func Degrees(degrees ...int) DegreeSet {
	var ret DegreeSet
	for _, d := range degrees {
		if d >= 0 && d < NumDegrees {
			ret |= 1 << d
		}
	}
	return ret
}

// Has reports if degree is in the set.
func (s DegreeSet) Has(degree int) bool {
	if degree < 0 || degree >= NumDegrees {
		return false
	}
	return s&(1<<degree) != 0
}

// Slice returns the degrees in the set in ascending order.
func (s DegreeSet) Slice() []int {
	var ret []int
	for d := 0; d < NumDegrees; d++ {
		if s.Has(d) {
			ret = append(ret, d)
		}
	}
	return ret
}

// The catalog is indexed in this order; Modes returns them in this order too.
const (
	Ionian = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	NumModes
)

var modeCatalog = [NumModes]Mode{
	{
		Name:           "Ionian (Major)",
		Description:    "The major scale - bright and stable",
		Intervals:      [NumDegrees]int{0, 2, 4, 5, 7, 9, 11},
		Qualities:      [NumDegrees]Quality{Major, Minor, Minor, Major, Major, Minor, Diminished},
		Numerals:       [NumDegrees]string{"I", "ii", "iii", "IV", "V", "vi", "vii°"},
		Characteristic: Degrees(0, 3),
	},
	{
		Name:           "Dorian",
		Description:    "Minor with raised 6th - jazzy and sophisticated",
		Intervals:      [NumDegrees]int{0, 2, 3, 5, 7, 9, 10},
		Qualities:      [NumDegrees]Quality{Minor, Minor, Major, Major, Minor, Diminished, Major},
		Numerals:       [NumDegrees]string{"i", "ii", "bIII", "IV", "v", "vi°", "bVII"},
		Characteristic: Degrees(1, 3),
	},
	{
		Name:           "Phrygian",
		Description:    "Minor with lowered 2nd - Spanish/flamenco sound",
		Intervals:      [NumDegrees]int{0, 1, 3, 5, 7, 8, 10},
		Qualities:      [NumDegrees]Quality{Minor, Major, Major, Minor, Diminished, Major, Minor},
		Numerals:       [NumDegrees]string{"i", "bII", "bIII", "iv", "v°", "bVI", "bvii"},
		Characteristic: Degrees(1, 5),
	},
	{
		Name:           "Lydian",
		Description:    "Major with raised 4th - dreamy and floating",
		Intervals:      [NumDegrees]int{0, 2, 4, 6, 7, 9, 11},
		Qualities:      [NumDegrees]Quality{Major, Major, Minor, Diminished, Major, Minor, Minor},
		Numerals:       [NumDegrees]string{"I", "II", "iii", "#iv°", "V", "vi", "vii"},
		Characteristic: Degrees(1, 3),
	},
	{
		Name:           "Mixolydian",
		Description:    "Major with lowered 7th - bluesy and rock",
		Intervals:      [NumDegrees]int{0, 2, 4, 5, 7, 9, 10},
		Qualities:      [NumDegrees]Quality{Major, Minor, Diminished, Major, Minor, Minor, Major},
		Numerals:       [NumDegrees]string{"I", "ii", "iii°", "IV", "v", "vi", "bVII"},
		Characteristic: Degrees(0, 6, 4),
	},
	{
		Name:           "Aeolian (Natural Minor)",
		Description:    "The natural minor scale - melancholic and stable",
		Intervals:      [NumDegrees]int{0, 2, 3, 5, 7, 8, 10},
		Qualities:      [NumDegrees]Quality{Minor, Diminished, Major, Minor, Minor, Major, Major},
		Numerals:       [NumDegrees]string{"i", "ii°", "bIII", "iv", "v", "bVI", "bVII"},
		Characteristic: Degrees(5, 6),
	},
	{
		Name:           "Locrian",
		Description:    "Unstable diminished tonic - dark and tense",
		Intervals:      [NumDegrees]int{0, 1, 3, 5, 6, 8, 10},
		Qualities:      [NumDegrees]Quality{Diminished, Major, Minor, Minor, Major, Major, Minor},
		Numerals:       [NumDegrees]string{"i°", "bII", "biii", "iv", "bV", "bVI", "bvii"},
		Characteristic: Degrees(0, 4),
	},
}

// Modes returns a copy of the mode catalog, Ionian first and Locrian last.
func Modes() [NumModes]Mode {
	return modeCatalog
}

// ModeAt returns the mode with the given catalog index, e.g. ModeAt(Dorian).
func ModeAt(index int) (Mode, bool) {
	if index < 0 || index >= NumModes {
		return Mode{}, false
	}
	return modeCatalog[index], true
}

// ModeByName finds a mode by its full or short name, ignoring case.
func ModeByName(name string) (Mode, error) {
	folder := cases.Fold()
	key := folder.String(strings.TrimSpace(name))
	for _, m := range modeCatalog {
		if folder.String(m.Name) == key || folder.String(m.ShortName()) == key {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// ShortName returns the first word of the mode name, e.g. "Aeolian" for
// "Aeolian (Natural Minor)".
func (m Mode) ShortName() string {
	if i := strings.IndexByte(m.Name, ' '); i >= 0 {
		return m.Name[:i]
	}
	return m.Name
}

// Validate checks that the mode is a well formed diatonic mode: intervals
// start from 0, are strictly increasing and stay within the octave, and all
// the qualities and numerals are defined.
func (m Mode) Validate() error {
	if m.Name == "" {
		return errors.New("mode has no name")
	}
	if m.Intervals[0] != 0 {
		return fmt.Errorf("mode %v: first interval should be 0, was %v", m.Name, m.Intervals[0])
	}
	for i := 1; i < NumDegrees; i++ {
		if m.Intervals[i] <= m.Intervals[i-1] {
			return fmt.Errorf("mode %v: intervals should be strictly increasing (degree %v)", m.Name, i)
		}
	}
	if m.Intervals[NumDegrees-1] >= NumNotes {
		return fmt.Errorf("mode %v: intervals should be less than an octave", m.Name)
	}
	for i, q := range m.Qualities {
		if q < 0 || q >= NumQualities {
			return fmt.Errorf("mode %v: invalid quality at degree %v", m.Name, i)
		}
	}
	for i, n := range m.Numerals {
		if n == "" {
			return fmt.Errorf("mode %v: missing numeral at degree %v", m.Name, i)
		}
	}
	if m.Characteristic>>NumDegrees != 0 {
		return fmt.Errorf("mode %v: characteristic degrees out of range", m.Name)
	}
	return nil
}

// Scale returns the seven notes of the mode built on tonic.
func Scale(tonic Note, mode Mode) [NumDegrees]Note {
	var ret [NumDegrees]Note
	for i, interval := range mode.Intervals {
		ret[i] = tonic.Transpose(interval)
	}
	return ret
}
