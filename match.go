package modal

import (
	"math"
	"slices"
)

// MaxMatches is the maximum number of results Match returns.
const MaxMatches = 20

type (
	// MatchResult tells how well the selected chords fit the diatonic chords
	// of one tonic and mode. Matching and Missing keep the order of the
	// selection; Characteristic lists the matched chords that sit on a
	// characteristic degree of the mode, in degree order.
	MatchResult struct {
		Tonic          Note
		Mode           Mode
		Matching       []Chord
		Missing        []Chord
		Fraction       float64
		Perfect        bool
		Characteristic []Chord
	}

	// MatchStatus tells apart the three outcomes of matching: nothing was
	// selected, nothing matched, or there are results.
	MatchStatus int

	// Analysis is the result of matching a selection against every tonic
	// and mode. Selection is the matched selection without duplicates.
	Analysis struct {
		Status    MatchStatus
		Selection []Chord
		Results   []MatchResult
	}
)

const (
	NoInput MatchStatus = iota
	NoMatches
	Found
)

func (s MatchStatus) String() string {
	switch s {
	case NoInput:
		return "no input"
	case NoMatches:
		return "no matches"
	case Found:
		return "found"
	}
	return "unknown"
}

// Match scores every tonic and mode combination against the selected chords.
// Duplicates in the selection are ignored. Combinations sharing no chord with
// the selection are dropped; the rest are ranked perfect matches first, then
// by the fraction of the selection matched, then by the number of matched
// characteristic chords. Equal ranks keep the generation order: tonics in
// chromatic order from C, modes in catalog order. At most MaxMatches results
// are returned.
func Match(selection []Chord) Analysis {
	selection = uniqueChords(selection)
	if len(selection) == 0 {
		return Analysis{Status: NoInput}
	}
	var results []MatchResult
	for _, tonic := range Notes() {
		for _, mode := range modeCatalog {
			if r, ok := matchOne(selection, tonic, mode); ok {
				results = append(results, r)
			}
		}
	}
	if len(results) == 0 {
		return Analysis{Status: NoMatches, Selection: selection}
	}
	slices.SortStableFunc(results, compareMatches)
	if len(results) > MaxMatches {
		results = results[:MaxMatches]
	}
	return Analysis{Status: Found, Selection: selection, Results: results}
}

func matchOne(selection []Chord, tonic Note, mode Mode) (MatchResult, bool) {
	diatonic := DiatonicChords(tonic, mode)
	degreeOf := make(map[Chord]int, NumDegrees)
	for _, d := range diatonic {
		degreeOf[d.Chord] = d.Degree
	}
	ret := MatchResult{Tonic: tonic, Mode: mode}
	for _, c := range selection {
		if _, ok := degreeOf[c]; ok {
			ret.Matching = append(ret.Matching, c)
		} else {
			ret.Missing = append(ret.Missing, c)
		}
	}
	if len(ret.Matching) == 0 {
		return MatchResult{}, false
	}
	ret.Fraction = float64(len(ret.Matching)) / float64(len(selection))
	ret.Perfect = len(ret.Missing) == 0
	matched := make(map[Chord]bool, len(ret.Matching))
	for _, c := range ret.Matching {
		matched[c] = true
	}
	for _, d := range diatonic {
		if d.Characteristic && matched[d.Chord] {
			ret.Characteristic = append(ret.Characteristic, d.Chord)
		}
	}
	return ret, true
}

// compareMatches orders better matches first. All results of one call share
// the same selection, so comparing the matched counts is the same as
// comparing the fractions, without floating point ties.
func compareMatches(a, b MatchResult) int {
	if a.Perfect != b.Perfect {
		if a.Perfect {
			return -1
		}
		return 1
	}
	if d := len(b.Matching) - len(a.Matching); d != 0 {
		return d
	}
	return len(b.Characteristic) - len(a.Characteristic)
}

func uniqueChords(chords []Chord) []Chord {
	seen := make(map[Chord]bool, len(chords))
	ret := make([]Chord, 0, len(chords))
	for _, c := range chords {
		if !seen[c] {
			seen[c] = true
			ret = append(ret, c)
		}
	}
	return ret
}

// Percent returns the matched fraction as a rounded percentage.
func (r MatchResult) Percent() int {
	return int(math.Round(r.Fraction * 100))
}

// Label returns the tonic followed by the short mode name, e.g. "C Ionian".
func (r MatchResult) Label() string {
	return r.Tonic.String() + " " + r.Mode.ShortName()
}
