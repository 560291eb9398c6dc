package modal_test

import (
	"errors"
	"testing"

	"github.com/lobo-larsen/modal-composer"
)

func TestModeCatalogIntegrity(t *testing.T) {
	modes := modal.Modes()
	if len(modes) != 7 {
		t.Fatalf("expected 7 modes, got %v", len(modes))
	}
	names := map[string]bool{}
	for _, m := range modes {
		if err := m.Validate(); err != nil {
			t.Errorf("invalid mode: %v", err)
		}
		if names[m.Name] {
			t.Errorf("duplicate mode %v", m.Name)
		}
		names[m.Name] = true
		for _, d := range m.Characteristic.Slice() {
			if d < 0 || d > 6 {
				t.Errorf("%v: characteristic degree %v out of range", m.Name, d)
			}
		}
		if len(m.Characteristic.Slice()) == 0 {
			t.Errorf("%v: no characteristic degrees", m.Name)
		}
	}
}

// every mode is a rotation of the major scale: the same step pattern, started
// from a different degree
func TestModesAreRotations(t *testing.T) {
	ionian := modal.Modes()[modal.Ionian]
	for rot, m := range modal.Modes() {
		for i := 0; i < 7; i++ {
			want := (ionian.Intervals[(i+rot)%7] - ionian.Intervals[rot] + 12) % 12
			if m.Intervals[i] != want {
				t.Errorf("%v: interval %v = %v, want %v", m.Name, i, m.Intervals[i], want)
			}
			if m.Qualities[i] != ionian.Qualities[(i+rot)%7] {
				t.Errorf("%v: quality of degree %v = %v, want %v", m.Name, i, m.Qualities[i], ionian.Qualities[(i+rot)%7])
			}
		}
	}
}

func TestModeCharacteristicDegrees(t *testing.T) {
	want := map[string][]int{
		"Ionian":     {0, 3},
		"Dorian":     {1, 3},
		"Phrygian":   {1, 5},
		"Lydian":     {1, 3},
		"Mixolydian": {0, 4, 6},
		"Aeolian":    {5, 6},
		"Locrian":    {0, 4},
	}
	for _, m := range modal.Modes() {
		got := m.Characteristic.Slice()
		w := want[m.ShortName()]
		if len(got) != len(w) {
			t.Errorf("%v: characteristic %v, want %v", m.Name, got, w)
			continue
		}
		for i := range got {
			if got[i] != w[i] {
				t.Errorf("%v: characteristic %v, want %v", m.Name, got, w)
			}
		}
	}
}

func TestValidateRejectsBrokenModes(t *testing.T) {
	m := modal.Modes()[modal.Dorian]
	m.Intervals[3] = m.Intervals[2]
	if err := m.Validate(); err == nil {
		t.Errorf("duplicate intervals should not validate")
	}
	m = modal.Modes()[modal.Dorian]
	m.Intervals[0] = 1
	if err := m.Validate(); err == nil {
		t.Errorf("intervals not starting from 0 should not validate")
	}
	m = modal.Modes()[modal.Dorian]
	m.Numerals[6] = ""
	if err := m.Validate(); err == nil {
		t.Errorf("missing numeral should not validate")
	}
}

func TestModesReturnsCopy(t *testing.T) {
	modes := modal.Modes()
	modes[0].Intervals[1] = 5
	if modal.Modes()[0].Intervals[1] != 2 {
		t.Fatalf("mutating the returned catalog changed the catalog")
	}
}

func TestModeByName(t *testing.T) {
	for _, name := range []string{"dorian", "DORIAN", "Aeolian (Natural Minor)", "aeolian", " lydian "} {
		if _, err := modal.ModeByName(name); err != nil {
			t.Errorf("ModeByName(%q) failed: %v", name, err)
		}
	}
	if _, err := modal.ModeByName("harmonic minor"); !errors.Is(err, modal.ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
	m, _ := modal.ModeByName("ionian")
	if m.ShortName() != "Ionian" {
		t.Errorf("ShortName = %q, want Ionian", m.ShortName())
	}
}
