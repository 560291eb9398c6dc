package synth

import (
	"errors"
	"math"
)

// Envelope is an attack-decay amplitude envelope: the gain rises linearly
// from 0 to Peak during Attack seconds, then decays exponentially from Peak
// to Floor by Duration seconds after the onset, when the tone stops.
type Envelope struct {
	Attack   float64 // seconds
	Duration float64 // seconds, total length of the tone
	Peak     float64
	Floor    float64
}

// DefaultEnvelope is the envelope of every chord tone.
var DefaultEnvelope = Envelope{
	Attack:   0.05,
	Duration: 1.2,
	Peak:     0.15,
	Floor:    0.01,
}

// Validate checks that the envelope can be evaluated: an exponential ramp
// needs strictly positive levels, and the decay needs time to happen.
func (e Envelope) Validate() error {
	if e.Attack < 0 {
		return errors.New("envelope attack should be >= 0")
	}
	if e.Duration <= e.Attack {
		return errors.New("envelope duration should be longer than the attack")
	}
	if e.Peak <= 0 || e.Floor <= 0 {
		return errors.New("envelope peak and floor should be > 0")
	}
	return nil
}

// Gain returns the gain t seconds after the onset. Before the onset and after
// Duration the tone is silent.
func (e Envelope) Gain(t float64) float64 {
	switch {
	case t < 0 || t > e.Duration:
		return 0
	case t < e.Attack:
		return e.Peak * t / e.Attack
	default:
		// exponential ramp: the ratio between the gain and the peak shrinks
		// by the same factor in equal time steps
		x := (t - e.Attack) / (e.Duration - e.Attack)
		return e.Peak * math.Pow(e.Floor/e.Peak, x)
	}
}
