package session_test

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/lobo-larsen/modal-composer"
	"github.com/lobo-larsen/modal-composer/session"
)

type fakeAudio struct {
	played []modal.AudioBuffer
	closed bool
}

type doneWaiter struct{}

func (doneWaiter) Wait() {}

func (f *fakeAudio) Play(b modal.AudioBuffer) modal.Waiter {
	f.played = append(f.played, b)
	return doneWaiter{}
}

func (f *fakeAudio) Close() error {
	f.closed = true
	return nil
}

func mustChords(t *testing.T, symbols ...string) []modal.Chord {
	t.Helper()
	ret, err := modal.ParseChords(symbols)
	if err != nil {
		t.Fatalf("cannot parse %v: %v", symbols, err)
	}
	return ret
}

func TestSelectionToggle(t *testing.T) {
	var s session.Selection
	c := mustChords(t, "C", "F", "G")
	for _, chord := range c {
		if !s.Toggle(chord) {
			t.Fatalf("toggling %v should select it", chord)
		}
	}
	if s.Add(c[1]) {
		t.Errorf("adding an already selected chord should return false")
	}
	if s.Toggle(c[1]) {
		t.Errorf("toggling a selected chord should deselect it")
	}
	if got, want := s.Chords(), []modal.Chord{c[0], c[2]}; !slices.Equal(got, want) {
		t.Errorf("selection is %v, want %v", got, want)
	}
	if s.Has(c[1]) || s.Len() != 2 {
		t.Errorf("F should be gone and two chords left")
	}
	if s.Remove(c[1]) {
		t.Errorf("removing a chord that is not selected should return false")
	}
}

func TestProgressionToggleAndRepeats(t *testing.T) {
	var p session.Progression
	c := mustChords(t, "C", "G", "Am")
	p.Append(c[0])
	p.Append(c[1])
	p.Append(c[0])
	if p.Len() != 3 {
		t.Fatalf("repeats should be kept, got %v", p.Chords())
	}
	if p.Toggle(c[0]) {
		t.Errorf("toggling a present chord should remove it")
	}
	if got, want := p.Chords(), []modal.Chord{c[1], c[0]}; !slices.Equal(got, want) {
		t.Errorf("toggle should remove the first occurrence: got %v, want %v", got, want)
	}
	if !p.Toggle(c[2]) {
		t.Errorf("toggling a missing chord should append it")
	}
	if !p.RemoveAt(0) || p.RemoveAt(5) || p.RemoveAt(-1) {
		t.Errorf("RemoveAt bounds handling is wrong")
	}
	if got, want := p.Chords(), []modal.Chord{c[0], c[2]}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSessionViews(t *testing.T) {
	s := session.New(modal.D, modal.C, 44100, nil)
	if rows := s.Explorer(); rows[modal.Dorian].Chords[0].Chord != modal.MustParseChord("Dm") {
		t.Errorf("D Dorian should start with Dm")
	}
	if a := s.Analysis(); a.Status != modal.NoInput {
		t.Errorf("empty selection should give NoInput, got %v", a.Status)
	}
	for _, c := range mustChords(t, "C", "G", "Am", "F") {
		s.TapChord(c, session.ToProgression)
		s.TapChord(c, session.ToSelection)
	}
	if got := s.ProgressionAnalysis().Formula(); got != "I - V - vi - IV" {
		t.Errorf("formula %q", got)
	}
	a := s.Analysis()
	if a.Status != modal.Found || a.Results[0].Label() != "C Ionian" || !a.Results[0].Perfect {
		t.Errorf("C G Am F should match C Ionian perfectly first, got %+v", a.Results[0])
	}
}

func TestTapPlaysChord(t *testing.T) {
	audio := &fakeAudio{}
	opened := 0
	s := session.New(modal.C, modal.C, 8000, func() (modal.AudioContext, error) {
		opened++
		return audio, nil
	})
	if opened != 0 {
		t.Fatalf("audio should be opened lazily")
	}
	if w := s.TapChord(modal.MustParseChord("C"), session.PlayOnly); w == nil {
		t.Fatalf("tap should return a waiter")
	}
	s.TapChord(modal.MustParseChord("Am"), session.PlayOnly)
	if opened != 1 || len(audio.played) != 2 {
		t.Errorf("opened %v times, played %v buffers", opened, len(audio.played))
	}
	if s.Selection.Len() != 0 || s.Progression.Len() != 0 {
		t.Errorf("PlayOnly tap should not change state")
	}
	if err := s.Close(); err != nil || !audio.closed {
		t.Errorf("Close should close the audio output")
	}
}

func TestAudioFailureWarnsOnce(t *testing.T) {
	opened := 0
	s := session.New(modal.C, modal.C, 8000, func() (modal.AudioContext, error) {
		opened++
		return nil, errors.New("no device")
	})
	c := modal.MustParseChord("G")
	for i := 0; i < 3; i++ {
		if w := s.TapChord(c, session.ToSelection); w != nil {
			t.Fatalf("nothing should be played without a device")
		}
	}
	if opened != 1 {
		t.Errorf("device should be tried once, was tried %v times", opened)
	}
	if s.Alerts.Len() != 1 {
		t.Fatalf("expected exactly one alert, got %v", s.Alerts.Len())
	}
	for _, alert := range s.Alerts.Iterate {
		if alert.Priority != session.Warning {
			t.Errorf("audio failure should be a warning, got %v", alert.Priority)
		}
	}
	if !s.Selection.Has(c) {
		t.Errorf("taps should still toggle the selection when audio fails")
	}
	if !s.AudioFailed() {
		t.Errorf("session should remember the failure")
	}
}

func TestAlertsFadeOut(t *testing.T) {
	var a session.Alerts
	a.Add("hello", session.Info)
	if a.Update(time.Second) {
		t.Errorf("a fully shown alert should not be animating")
	}
	if !a.Update(2*time.Second + 50*time.Millisecond) {
		t.Errorf("alert should be fading")
	}
	if a.Len() != 1 {
		t.Fatalf("fading alert should still be queued")
	}
	a.Update(time.Second)
	if a.Len() != 0 {
		t.Errorf("alert should be gone, %v left", a.Len())
	}
}

func TestNamedAlertsReplace(t *testing.T) {
	var a session.Alerts
	a.AddNamed("x", "first", session.Warning)
	a.AddNamed("x", "lower", session.Info)
	a.AddNamed("x", "second", session.Error)
	a.Add("other", session.Info)
	var messages []string
	for _, alert := range a.All() {
		messages = append(messages, alert.Message)
	}
	if want := []string{"second", "other"}; !slices.Equal(messages, want) {
		t.Errorf("got %v, want %v", messages, want)
	}
}

func TestRenderFailureKeepsAudioOn(t *testing.T) {
	opened := 0
	s := session.New(modal.C, modal.C, 0, func() (modal.AudioContext, error) {
		opened++
		return &fakeAudio{}, nil
	})
	if w := s.TapChord(modal.MustParseChord("C"), session.ToSelection); w != nil {
		t.Fatalf("a chord that cannot be rendered should not be played")
	}
	if s.AudioFailed() {
		t.Errorf("a render failure should not turn playback off")
	}
	if opened != 0 {
		t.Errorf("device should not be opened for a chord that cannot be rendered")
	}
	if s.Alerts.Len() != 1 {
		t.Fatalf("expected one alert, got %v", s.Alerts.Len())
	}
	for _, alert := range s.Alerts.Iterate {
		if alert.Priority != session.Error || strings.Contains(alert.Message, "Audio is not available") {
			t.Errorf("render failure reported as %v %q", alert.Priority, alert.Message)
		}
	}
	if !s.Selection.Has(modal.MustParseChord("C")) {
		t.Errorf("tap should still toggle the selection")
	}
}
