package modal

import (
	"errors"
	"fmt"
	"math"
)

// Note is one of the 12 chromatic pitch classes. The zero value is C; the
// value is the index of the note in the chromatic scale starting from C.
type Note int

const (
	C Note = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
	NumNotes = 12
)

// ReferenceFrequency is the frequency of A in octave 4, in Hz.
const ReferenceFrequency = 440.0

var (
	ErrUnknownNote  = errors.New("unknown note")
	ErrUnknownChord = errors.New("unknown chord")
	ErrUnknownMode  = errors.New("unknown mode")
)

// canonical, sharp spelled names; the index is the note value
var noteNames = [NumNotes]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// flat spellings of the black keys; display only
var noteAliases = map[Note]string{
	CSharp: "Db",
	DSharp: "Eb",
	FSharp: "Gb",
	GSharp: "Ab",
	ASharp: "Bb",
}

// Notes returns all the 12 notes in chromatic order starting from C.
func Notes() [NumNotes]Note {
	var ret [NumNotes]Note
	for i := range ret {
		ret[i] = Note(i)
	}
	return ret
}

// IndexOf returns the chromatic index (0..11) of a canonical note name, or -1
// and false if the name is not one of the 12 canonical names.
func IndexOf(name string) (int, bool) {
	for i, n := range noteNames {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// ParseNote parses a note name. Besides the canonical sharp spelled names, the
// flat aliases of the black keys are accepted and mapped to the canonical note.
func ParseNote(name string) (Note, error) {
	if i, ok := IndexOf(name); ok {
		return Note(i), nil
	}
	for n, alias := range noteAliases {
		if alias == name {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
}

// Valid reports if n is one of the 12 notes.
func (n Note) Valid() bool {
	return n >= 0 && n < NumNotes
}

func (n Note) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Note(%d)", int(n))
	}
	return noteNames[n]
}

// Alias returns the flat spelling of a black key, or the canonical name for
// the white keys.
func (n Note) Alias() string {
	if a, ok := noteAliases[n]; ok {
		return a
	}
	return n.String()
}

// Transpose returns the note semitones above n, wrapping around the octave.
func (n Note) Transpose(semitones int) Note {
	return Note(((int(n)+semitones)%NumNotes + NumNotes) % NumNotes)
}

// Interval returns the number of semitones (0..11) from n up to other.
func (n Note) Interval(other Note) int {
	return ((int(other)-int(n))%NumNotes + NumNotes) % NumNotes
}

// MIDI returns the MIDI note number of n in the given octave; C4 is 60.
func (n Note) MIDI(octave int) int {
	return 12*(octave+1) + int(n)
}

// Frequency returns the equal-tempered frequency of n in the given octave,
// with A4 tuned to 440 Hz. Octaves are not bounds checked. The octave is
// applied as an exact power of two, so going up an octave doubles the
// frequency exactly.
func Frequency(n Note, octave int) float64 {
	semitonesFromA := int(n) - int(A)
	return math.Ldexp(ReferenceFrequency*math.Pow(2, float64(semitonesFromA)/12), octave-4)
}

func (n *Note) UnmarshalText(text []byte) error {
	note, err := ParseNote(string(text))
	if err != nil {
		return err
	}
	*n = note
	return nil
}

func (n Note) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNote, int(n))
	}
	return []byte(n.String()), nil
}
