// Package session holds the state of an interactive session: the explorer
// tonic, the chords picked for matching and for the progression, and the
// alerts shown to the user. Every derived view is recomputed from this state
// on demand.
package session

import (
	"fmt"

	"github.com/lobo-larsen/modal-composer"
	"github.com/lobo-larsen/modal-composer/synth"
)

type (
	Session struct {
		Tonic          modal.Note
		ProgressionKey modal.Note
		Selection      Selection
		Progression    Progression
		Alerts         Alerts

		sampleRate  int
		openAudio   AudioOpener
		audio       modal.AudioContext
		audioFailed bool
	}

	// AudioOpener acquires the audio output. It is called when the first
	// chord is played, not before.
	AudioOpener func() (modal.AudioContext, error)

	// Target tells which chord collection a tapped chord is toggled in.
	Target int
)

const (
	PlayOnly Target = iota
	ToSelection
	ToProgression
)

const (
	audioAlertName  = "audio"
	renderAlertName = "render"
)

// New returns a session with the given defaults. openAudio may be nil, in
// which case chords are never played.
func New(tonic, progressionKey modal.Note, sampleRate int, openAudio AudioOpener) *Session {
	return &Session{
		Tonic:          tonic,
		ProgressionKey: progressionKey,
		sampleRate:     sampleRate,
		openAudio:      openAudio,
	}
}

// Explorer returns the diatonic chords of every mode on the current tonic.
func (s *Session) Explorer() [modal.NumModes]modal.ModeRow {
	return modal.Explore(s.Tonic)
}

// Analysis matches the current selection against every tonic and mode.
func (s *Session) Analysis() modal.Analysis {
	return modal.Match(s.Selection.chords)
}

// ProgressionAnalysis labels the current progression in the progression key.
func (s *Session) ProgressionAnalysis() modal.Progression {
	return modal.AnalyzeProgression(s.Progression.chords, s.ProgressionKey)
}

// TapChord plays the chord and toggles it in the target collection. The
// state change happens even when the chord cannot be played. The returned
// waiter is nil if nothing was played.
func (s *Session) TapChord(c modal.Chord, target Target) modal.Waiter {
	switch target {
	case ToSelection:
		s.Selection.Toggle(c)
	case ToProgression:
		s.Progression.Toggle(c)
	}
	return s.Play(c)
}

// Play renders the chord and schedules it on the audio output, opening the
// output on first use. If the output cannot be opened, a warning is queued
// and playback is given up for the rest of the session. A chord that cannot
// be rendered gives an error alert and leaves playback on. Nil is returned
// whenever nothing was played.
func (s *Session) Play(c modal.Chord) modal.Waiter {
	if s.audioFailed || s.openAudio == nil {
		return nil
	}
	buffer, err := synth.RenderChord(c, s.sampleRate)
	if err != nil {
		s.Alerts.AddNamed(renderAlertName, fmt.Sprintf("Could not render %v: %v", c, err), Error)
		return nil
	}
	if s.audio == nil {
		audio, err := s.openAudio()
		if err != nil {
			s.audioFailed = true
			s.Alerts.AddNamed(audioAlertName, fmt.Sprintf("Audio is not available, chords will not be played: %v", err), Warning)
			return nil
		}
		s.audio = audio
	}
	return s.audio.Play(buffer)
}

// AudioFailed reports if playback has been given up for this session.
func (s *Session) AudioFailed() bool {
	return s.audioFailed
}

// Close releases the audio output, if it was opened.
func (s *Session) Close() error {
	if s.audio == nil {
		return nil
	}
	err := s.audio.Close()
	s.audio = nil
	return err
}
