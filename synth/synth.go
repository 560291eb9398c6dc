// Package synth turns chords into tone events and renders them as audio.
package synth

import (
	"math"

	"github.com/lobo-larsen/modal-composer"
)

type (
	// Waveform is the shape of the oscillator of a tone.
	Waveform int

	// ToneEvent is one oscillator playing one note: when it starts, at
	// which frequency, and how its gain evolves.
	ToneEvent struct {
		Note      modal.Note
		Octave    int
		Frequency float64
		Waveform  Waveform
		Start     float64 // seconds
		Envelope  Envelope
	}
)

const (
	Sine Waveform = iota
)

// Voicing of the triad: the root goes to the bass register, the third and the
// fifth an octave above.
const (
	RootOctave  = 3
	UpperOctave = 4
)

func (w Waveform) String() string {
	if w == Sine {
		return "sine"
	}
	return "unknown"
}

// Synthesize returns the tone events of a block chord starting at onset
// seconds: root, third and fifth, in that order, all sharing the onset and the
// default envelope. An invalid chord gives no events.
func Synthesize(chord modal.Chord, onset float64) []ToneEvent {
	if !chord.Valid() {
		return nil
	}
	notes := chord.Notes()
	ret := make([]ToneEvent, len(notes))
	for i, n := range notes {
		octave := UpperOctave
		if i == 0 {
			octave = RootOctave
		}
		ret[i] = ToneEvent{
			Note:      n,
			Octave:    octave,
			Frequency: modal.Frequency(n, octave),
			Waveform:  Sine,
			Start:     onset,
			Envelope:  DefaultEnvelope,
		}
	}
	return ret
}

// SynthesizeProgression returns the tone events of the chords played one
// after another, spacing seconds apart, the first at time 0.
func SynthesizeProgression(chords []modal.Chord, spacing float64) []ToneEvent {
	ret := make([]ToneEvent, 0, len(chords)*3)
	for i, c := range chords {
		ret = append(ret, Synthesize(c, float64(i)*spacing)...)
	}
	return ret
}

// End returns the time when the tone stops.
func (e ToneEvent) End() float64 {
	return e.Start + e.Envelope.Duration
}

// Value returns the output of the tone t seconds after its onset.
func (e ToneEvent) Value(t float64) float64 {
	g := e.Envelope.Gain(t)
	if g == 0 {
		return 0
	}
	return g * math.Sin(2*math.Pi*e.Frequency*t)
}
