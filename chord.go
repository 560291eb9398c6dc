package modal

import (
	"fmt"
	"sort"
	"strings"
)

type (
	// Quality is the quality of a triad.
	Quality int

	// Chord is a triad: a root note and a quality. The canonical symbol of
	// the chord is the root name followed by the quality suffix, e.g. "C",
	// "F#m" or "B°".
	Chord struct {
		Root    Note
		Quality Quality
	}
)

const (
	Major Quality = iota
	Minor
	Diminished
	NumQualities
)

var qualityIntervals = [NumQualities][3]int{
	Major:      {0, 4, 7},
	Minor:      {0, 3, 7},
	Diminished: {0, 3, 6},
}

var qualitySuffixes = [NumQualities]string{
	Major:      "",
	Minor:      "m",
	Diminished: "°",
}

// longer suffixes are accepted on input, but never produced
var suffixAliases = map[string]Quality{
	"maj": Major,
	"min": Minor,
	"dim": Diminished,
}

// UnknownChord is the symbol of a chord that is not one of the 36 triads.
const UnknownChord = "?"

// Valid reports if q is one of the three triad qualities.
func (q Quality) Valid() bool {
	return q >= 0 && q < NumQualities
}

// Intervals returns the semitone offsets of the root, third and fifth of a
// triad of quality q. Invalid qualities give all zeros.
func (q Quality) Intervals() [3]int {
	if !q.Valid() {
		return [3]int{}
	}
	return qualityIntervals[q]
}

// Suffix returns the symbol suffix for q: "" for major, "m" for minor and "°"
// for diminished. Invalid qualities give UnknownChord.
func (q Quality) Suffix() string {
	if !q.Valid() {
		return UnknownChord
	}
	return qualitySuffixes[q]
}

// Class returns the name of the quality, suitable e.g. for styling.
func (q Quality) Class() string {
	switch q {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Diminished:
		return "diminished"
	}
	return "unknown"
}

func (q Quality) String() string {
	switch q {
	case Major:
		return "maj"
	case Minor:
		return "min"
	case Diminished:
		return "dim"
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// ParseChord parses a chord symbol. The root is the longest prefix of the
// symbol that is a note name (canonical or flat alias); the remainder must be
// a known quality suffix.
func ParseChord(symbol string) (Chord, error) {
	rootLen := 0
	var root Note
	for l := min(2, len(symbol)); l > 0; l-- {
		if n, err := ParseNote(symbol[:l]); err == nil {
			root, rootLen = n, l
			break
		}
	}
	if rootLen == 0 {
		return Chord{}, fmt.Errorf("%w: %q has no root note", ErrUnknownChord, symbol)
	}
	suffix := symbol[rootLen:]
	for q, s := range qualitySuffixes {
		if s == suffix {
			return Chord{Root: root, Quality: Quality(q)}, nil
		}
	}
	if q, ok := suffixAliases[suffix]; ok {
		return Chord{Root: root, Quality: q}, nil
	}
	return Chord{}, fmt.Errorf("%w: %q has unknown quality %q", ErrUnknownChord, symbol, suffix)
}

// MustParseChord is like ParseChord but panics on invalid symbols. Meant for
// tests and tables.
func MustParseChord(symbol string) Chord {
	c, err := ParseChord(symbol)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseChords parses a list of chord symbols, stopping at the first invalid
// one.
func ParseChords(symbols []string) ([]Chord, error) {
	ret := make([]Chord, 0, len(symbols))
	for _, s := range symbols {
		c, err := ParseChord(s)
		if err != nil {
			return nil, err
		}
		ret = append(ret, c)
	}
	return ret, nil
}

// Valid reports if the chord is one of the 36 triads.
func (c Chord) Valid() bool {
	return c.Root.Valid() && c.Quality.Valid()
}

// String returns the canonical symbol of the chord, or UnknownChord for
// invalid chords.
func (c Chord) String() string {
	if !c.Valid() {
		return UnknownChord
	}
	return c.Root.String() + c.Quality.Suffix()
}

// Notes returns the root, third and fifth of the chord, in that order. An
// invalid chord gives the zero value.
func (c Chord) Notes() [3]Note {
	if !c.Valid() {
		return [3]Note{}
	}
	var ret [3]Note
	for i, interval := range c.Quality.Intervals() {
		ret[i] = c.Root.Transpose(interval)
	}
	return ret
}

func (c *Chord) UnmarshalText(text []byte) error {
	chord, err := ParseChord(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*c = chord
	return nil
}

func (c Chord) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: root %d, quality %d", ErrUnknownChord, int(c.Root), int(c.Quality))
	}
	return []byte(c.String()), nil
}

// AllChords returns the 36 triads: every root in chromatic order, every root
// as major, minor and diminished.
func AllChords() []Chord {
	ret := make([]Chord, 0, NumNotes*int(NumQualities))
	for _, n := range Notes() {
		for q := Quality(0); q < NumQualities; q++ {
			ret = append(ret, Chord{Root: n, Quality: q})
		}
	}
	return ret
}

// AllChordSymbols returns the symbols of the 36 triads sorted
// lexicographically, for populating chord pickers.
func AllChordSymbols() []string {
	chords := AllChords()
	ret := make([]string, len(chords))
	for i, c := range chords {
		ret[i] = c.String()
	}
	sort.Strings(ret)
	return ret
}
