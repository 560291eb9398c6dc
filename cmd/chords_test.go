package cmd_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/lobo-larsen/modal-composer"
	"github.com/lobo-larsen/modal-composer/cmd"
)

func TestReadChords(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "song.yml")
	if err := os.WriteFile(yml, []byte("key: G\nchords: [G, Em, C, D]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	jsn := filepath.Join(dir, "tail.json")
	if err := os.WriteFile(jsn, []byte(`{"chords": ["Bb", "F#°"]}`), 0644); err != nil {
		t.Fatal(err)
	}
	chords, key, err := cmd.ReadChords([]string{"Am", yml, jsn})
	if err != nil {
		t.Fatalf("ReadChords failed: %v", err)
	}
	want, _ := modal.ParseChords([]string{"Am", "G", "Em", "C", "D", "A#", "F#°"})
	if !slices.Equal(chords, want) {
		t.Errorf("got %v, want %v", chords, want)
	}
	if key == nil || *key != modal.G {
		t.Errorf("key should come from the file, got %v", key)
	}
}

func TestReadChordsErrors(t *testing.T) {
	if _, _, err := cmd.ReadChords([]string{"C", "Hm"}); !errors.Is(err, modal.ErrUnknownChord) {
		t.Errorf("bad symbol should give ErrUnknownChord, got %v", err)
	}
	bad := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(bad, []byte("chords: [C, Xyz]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := cmd.ReadChords([]string{bad}); err == nil {
		t.Errorf("file with a bad chord should fail")
	}
	if _, _, err := cmd.ReadChords([]string{filepath.Join(t.TempDir(), "missing.yml")}); err == nil {
		t.Errorf("missing file should fail")
	}
}
