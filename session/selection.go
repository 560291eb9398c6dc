package session

import (
	"slices"

	"github.com/lobo-larsen/modal-composer"
)

type (
	// Selection is the set of chords picked for key/mode matching. Chords
	// are kept in the order they were picked; a chord is never in the set
	// twice.
	Selection struct {
		chords []modal.Chord
	}

	// Progression is the ordered list of chords picked for Roman numeral
	// analysis. Unlike Selection, it may contain repeats.
	Progression struct {
		chords []modal.Chord
	}
)

// Toggle adds the chord if it is not selected and removes it if it is.
// Returns true if the chord is selected afterwards.
func (s *Selection) Toggle(c modal.Chord) bool {
	if s.Remove(c) {
		return false
	}
	s.chords = append(s.chords, c)
	return true
}

// Add selects the chord. Returns false if it was already selected.
func (s *Selection) Add(c modal.Chord) bool {
	if s.Has(c) {
		return false
	}
	s.chords = append(s.chords, c)
	return true
}

// Remove deselects the chord. Returns false if it was not selected.
func (s *Selection) Remove(c modal.Chord) bool {
	i := slices.Index(s.chords, c)
	if i < 0 {
		return false
	}
	s.chords = slices.Delete(s.chords, i, i+1)
	return true
}

func (s *Selection) Has(c modal.Chord) bool {
	return slices.Contains(s.chords, c)
}

// Chords returns a copy of the selected chords in the order they were picked.
func (s *Selection) Chords() []modal.Chord {
	return slices.Clone(s.chords)
}

func (s *Selection) Len() int {
	return len(s.chords)
}

func (p *Progression) Append(c modal.Chord) {
	p.chords = append(p.chords, c)
}

// RemoveAt removes the chord at index i. Returns false if i is out of range.
func (p *Progression) RemoveAt(i int) bool {
	if i < 0 || i >= len(p.chords) {
		return false
	}
	p.chords = slices.Delete(p.chords, i, i+1)
	return true
}

// Toggle removes the first occurrence of the chord, or appends it if the
// progression does not contain it. Returns true if the chord was appended.
func (p *Progression) Toggle(c modal.Chord) bool {
	if i := slices.Index(p.chords, c); i >= 0 {
		p.chords = slices.Delete(p.chords, i, i+1)
		return false
	}
	p.chords = append(p.chords, c)
	return true
}

func (p *Progression) Chords() []modal.Chord {
	return slices.Clone(p.chords)
}

func (p *Progression) Len() int {
	return len(p.chords)
}
