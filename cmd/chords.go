package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lobo-larsen/modal-composer"
)

// ProgressionFile is the format of .yml and .json chord files.
type ProgressionFile struct {
	Key    *modal.Note   `yaml:"key,omitempty" json:"key,omitempty"`
	Chords []modal.Chord `yaml:"chords" json:"chords"`
}

// IsChordFile reports if the argument names a chord file rather than a
// chord symbol.
func IsChordFile(arg string) bool {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".yml", ".yaml", ".json":
		return true
	}
	return false
}

// ReadProgressionFile reads a chord file, trying .json first and .yml next.
func ReadProgressionFile(filename string) (ProgressionFile, error) {
	inputBytes, err := os.ReadFile(filename)
	if err != nil {
		return ProgressionFile{}, fmt.Errorf("could not read file %v: %v", filename, err)
	}
	var ret ProgressionFile
	if errJSON := json.Unmarshal(inputBytes, &ret); errJSON != nil {
		ret = ProgressionFile{}
		if errYaml := yaml.Unmarshal(inputBytes, &ret); errYaml != nil {
			return ProgressionFile{}, fmt.Errorf("%v could not be parsed as .json (%v) or .yml (%v)", filename, errJSON, errYaml)
		}
	}
	return ret, nil
}

// ReadChords turns the command line arguments into chords. Every argument
// is either a chord symbol or a chord file. The key of the last file that
// has one is returned too, or nil.
func ReadChords(args []string) ([]modal.Chord, *modal.Note, error) {
	var chords []modal.Chord
	var key *modal.Note
	for _, arg := range args {
		if IsChordFile(arg) {
			f, err := ReadProgressionFile(arg)
			if err != nil {
				return nil, nil, err
			}
			chords = append(chords, f.Chords...)
			if f.Key != nil {
				key = f.Key
			}
			continue
		}
		c, err := modal.ParseChord(arg)
		if err != nil {
			return nil, nil, err
		}
		chords = append(chords, c)
	}
	return chords, key, nil
}
