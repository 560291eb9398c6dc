// Package midifile exports chords as Standard MIDI Files.
package midifile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/lobo-larsen/modal-composer"
	"github.com/lobo-larsen/modal-composer/synth"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Options of the exported file.
type Options struct {
	BPM           float64
	BeatsPerChord int
	Velocity      uint8
	Channel       uint8
}

const ticksPerBeat = 960

var DefaultOptions = Options{BPM: 120, BeatsPerChord: 4, Velocity: 100}

// Write writes the chords as a format 1 file: a tempo track followed by a
// track of block chords, one after another, each lasting BeatsPerChord
// beats. Chords are voiced the same way as when they are synthesized.
func Write(w io.Writer, chords []modal.Chord, opts Options) error {
	if opts.BPM <= 0 {
		return fmt.Errorf("invalid tempo %v", opts.BPM)
	}
	if opts.BeatsPerChord <= 0 {
		return fmt.Errorf("invalid beats per chord %v", opts.BeatsPerChord)
	}
	if opts.Channel > 15 || opts.Velocity > 127 {
		return fmt.Errorf("invalid channel %v or velocity %v", opts.Channel, opts.Velocity)
	}
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)
	var tempo smf.Track
	tempo.Add(0, smf.MetaMeter(4, 4))
	tempo.Add(0, smf.MetaTempo(opts.BPM))
	tempo.Close(0)
	if err := s.Add(tempo); err != nil {
		return fmt.Errorf("error adding tempo track: %w", err)
	}
	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName("Chords"))
	length := uint32(opts.BeatsPerChord * ticksPerBeat)
	for _, c := range chords {
		keys, err := chordKeys(c)
		if err != nil {
			return err
		}
		for _, k := range keys {
			track.Add(0, midi.NoteOn(opts.Channel, k, opts.Velocity))
		}
		for i, k := range keys {
			delta := uint32(0)
			if i == 0 {
				delta = length
			}
			track.Add(delta, midi.NoteOff(opts.Channel, k))
		}
	}
	track.Close(0)
	if err := s.Add(track); err != nil {
		return fmt.Errorf("error adding chord track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("error writing MIDI file: %w", err)
	}
	return nil
}

// WriteFile writes the chords to the named file, see Write.
func WriteFile(path string, chords []modal.Chord, opts Options) error {
	var buf bytes.Buffer
	if err := Write(&buf, chords, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write file %v: %w", path, err)
	}
	return nil
}

func chordKeys(c modal.Chord) ([]uint8, error) {
	events := synth.Synthesize(c, 0)
	ret := make([]uint8, len(events))
	for i, e := range events {
		k := e.Note.MIDI(e.Octave)
		if k < 0 || k > 127 {
			return nil, fmt.Errorf("chord %v: note %v%v out of MIDI range", c, e.Note, e.Octave)
		}
		ret[i] = uint8(k)
	}
	return ret, nil
}
