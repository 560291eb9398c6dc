package synth_test

import (
	"math"
	"testing"

	"github.com/lobo-larsen/modal-composer/synth"
)

func TestDefaultEnvelopeShape(t *testing.T) {
	e := synth.DefaultEnvelope
	if err := e.Validate(); err != nil {
		t.Fatalf("default envelope does not validate: %v", err)
	}
	if g := e.Gain(0); g != 0 {
		t.Errorf("gain at onset = %v, want 0", g)
	}
	if g := e.Gain(0.05); math.Abs(g-0.15) > 1e-12 {
		t.Errorf("gain at end of attack = %v, want 0.15", g)
	}
	if g := e.Gain(1.2); math.Abs(g-0.01) > 1e-12 {
		t.Errorf("gain at end = %v, want 0.01", g)
	}
	if g := e.Gain(1.21); g != 0 {
		t.Errorf("gain after the end = %v, want 0", g)
	}
	if g := e.Gain(-0.01); g != 0 {
		t.Errorf("gain before the onset = %v, want 0", g)
	}
}

func TestEnvelopeRisesThenFalls(t *testing.T) {
	e := synth.DefaultEnvelope
	prev := e.Gain(0)
	for ti := 1; ti <= 1200; ti++ {
		tm := float64(ti) / 1000
		g := e.Gain(tm)
		if tm <= e.Attack && g < prev {
			t.Fatalf("gain decreased during attack at %v", tm)
		}
		if tm > e.Attack && g > prev {
			t.Fatalf("gain increased during decay at %v", tm)
		}
		if g > e.Peak+1e-12 {
			t.Fatalf("gain %v above peak at %v", g, tm)
		}
		prev = g
	}
}

func TestEnvelopeDecayIsExponential(t *testing.T) {
	e := synth.DefaultEnvelope
	mid := (e.Attack + e.Duration) / 2
	want := math.Sqrt(e.Peak * e.Floor) // geometric mean halfway through the decay
	if g := e.Gain(mid); math.Abs(g-want) > 1e-12 {
		t.Errorf("gain halfway through decay = %v, want %v", g, want)
	}
}

func TestEnvelopeValidate(t *testing.T) {
	bad := []synth.Envelope{
		{Attack: 0.1, Duration: 0.1, Peak: 0.1, Floor: 0.01},
		{Attack: 0.1, Duration: 1, Peak: 0, Floor: 0.01},
		{Attack: 0.1, Duration: 1, Peak: 0.1, Floor: 0},
		{Attack: -1, Duration: 1, Peak: 0.1, Floor: 0.01},
	}
	for _, e := range bad {
		if err := e.Validate(); err == nil {
			t.Errorf("%+v should not validate", e)
		}
	}
}
