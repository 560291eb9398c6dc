package cmd

import (
	"fmt"
	"io"

	"github.com/lobo-larsen/modal-composer"
	"github.com/lobo-larsen/modal-composer/oto"
	"github.com/lobo-larsen/modal-composer/prefs"
	"github.com/lobo-larsen/modal-composer/session"
)

// AudioOpener returns a function that opens the shared output device with
// the sample rate and buffer size of the preferences.
func AudioOpener(p prefs.Preferences) session.AudioOpener {
	return func() (modal.AudioContext, error) {
		ctx, err := oto.Shared(oto.Options{SampleRate: p.Audio.SampleRate, BufferSize: p.Audio.BufferSize})
		if err != nil {
			return nil, err
		}
		return ctx, nil
	}
}

// LoadPreferences loads the preferences and reports a broken preferences
// file to w.
func LoadPreferences(w io.Writer) prefs.Preferences {
	p := prefs.Load()
	if p.YmlError != nil {
		fmt.Fprintf(w, "ignoring parts of the preferences file: %v\n", p.YmlError)
	}
	return p
}

// PrintAlerts writes the queued alerts of the session to w.
func PrintAlerts(w io.Writer, s *session.Session) {
	for _, alert := range s.Alerts.Iterate {
		fmt.Fprintf(w, "%v: %v\n", alert.Priority, alert.Message)
	}
}
