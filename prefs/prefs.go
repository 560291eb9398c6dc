// Package prefs loads the user preferences: the embedded defaults,
// overridden by preferences.yml in the user config directory.
package prefs

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/lobo-larsen/modal-composer"
	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Audio       AudioPreferences
		Explorer    ExplorerPreferences
		Progression ProgressionPreferences
		MIDI        MIDIPreferences `yaml:"midi"`
		YmlError    error           `yaml:"-"`
	}

	AudioPreferences struct {
		SampleRate int
		BufferSize time.Duration
	}

	ExplorerPreferences struct {
		Tonic modal.Note
	}

	ProgressionPreferences struct {
		Key     modal.Note
		Spacing float64 // seconds between chords when playing a progression
	}

	MIDIPreferences struct {
		BPM           float64 `yaml:"bpm"`
		BeatsPerChord int
	}
)

// AppName is the name of the directory under the user config directory.
const AppName = "modal-composer"

const fileName = "preferences.yml"

//go:embed preferences.yml
var defaultPreferencesYaml []byte

// Default returns the embedded default preferences.
func Default() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return false, err
	}
	return readYml(filepath.Join(configDir, AppName, filename), target)
}

func readYml(path string, target interface{}) (exists bool, err error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return !errors.Is(err, fs.ErrNotExist), err
	}
	if err := yaml.UnmarshalStrict(bytes, target); err != nil {
		return true, fmt.Errorf("%v: %w", path, err)
	}
	return true, nil
}

// Load returns the default preferences overridden by the user's
// preferences.yml, if there is one. Problems with the user file end up in
// YmlError; the fields that were read are kept.
func Load() Preferences {
	preferences := Default()
	exists, err := ReadCustomConfigYml(fileName, &preferences)
	if exists {
		preferences.YmlError = err
	}
	return preferences.sanitize()
}

// LoadFile is like Load but reads the overrides from the given path.
func LoadFile(path string) Preferences {
	preferences := Default()
	if _, err := readYml(path, &preferences); err != nil {
		preferences.YmlError = err
	}
	return preferences.sanitize()
}

// sanitize falls back to the defaults for values that cannot be used.
func (p Preferences) sanitize() Preferences {
	d := Default()
	if p.Audio.SampleRate <= 0 {
		p.Audio.SampleRate = d.Audio.SampleRate
	}
	if p.Audio.BufferSize < 0 {
		p.Audio.BufferSize = d.Audio.BufferSize
	}
	if !p.Explorer.Tonic.Valid() {
		p.Explorer.Tonic = d.Explorer.Tonic
	}
	if !p.Progression.Key.Valid() {
		p.Progression.Key = d.Progression.Key
	}
	if p.Progression.Spacing <= 0 {
		p.Progression.Spacing = d.Progression.Spacing
	}
	if p.MIDI.BPM <= 0 {
		p.MIDI.BPM = d.MIDI.BPM
	}
	if p.MIDI.BeatsPerChord <= 0 {
		p.MIDI.BeatsPerChord = d.MIDI.BeatsPerChord
	}
	return p
}
