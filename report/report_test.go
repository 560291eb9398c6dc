package report_test

import (
	"strings"
	"testing"

	"github.com/lobo-larsen/modal-composer"
	"github.com/lobo-larsen/modal-composer/report"
)

func render(t *testing.T, f func(*strings.Builder) error) string {
	t.Helper()
	var b strings.Builder
	if err := f(&b); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return b.String()
}

func TestExplorer(t *testing.T) {
	out := render(t, func(b *strings.Builder) error { return report.Explorer(b, modal.C) })
	for _, want := range []string{
		"Modes of C\n==========\n",
		"Ionian     I      ii     iii    IV     V      vi     vii°",
		"C★     Dm     Em     F★     G      Am     B°",
		"Locrian",
		"★ characteristic chord",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("explorer output is missing %q:\n%v", want, out)
		}
	}
	if n := strings.Count(out, "★"); n != 15+1 {
		t.Errorf("expected 15 marked chords and the legend, got %v marks", n)
	}
}

func TestAnalysisMessages(t *testing.T) {
	out := render(t, func(b *strings.Builder) error { return report.Analysis(b, modal.Match(nil)) })
	if !strings.HasPrefix(out, "Tap chords above") {
		t.Errorf("empty selection should show the placeholder, got %q", out)
	}
	bogus := []modal.Chord{{Root: modal.C, Quality: modal.NumQualities}}
	out = render(t, func(b *strings.Builder) error { return report.Analysis(b, modal.Match(bogus)) })
	if !strings.HasPrefix(out, "No matches found.") {
		t.Errorf("no results should show the no match message, got %q", out)
	}
}

func TestAnalysisResults(t *testing.T) {
	selection, err := modal.ParseChords([]string{"C", "F", "G"})
	if err != nil {
		t.Fatal(err)
	}
	out := render(t, func(b *strings.Builder) error { return report.Analysis(b, modal.Match(selection)) })
	for _, want := range []string{
		"Selected: C, F, G\n",
		"1. C Ionian  [✓ Perfect Match]\n   The major scale - bright and stable\n   Uses characteristic chords: C, F\n",
		"67% Match",
		"Not in scale: ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("analysis output is missing %q:\n%v", want, out)
		}
	}
}

func TestCharacteristicOnlyOnPerfectMatches(t *testing.T) {
	selection := []modal.Chord{modal.MustParseChord("C"), modal.MustParseChord("C#")}
	out := render(t, func(b *strings.Builder) error { return report.Analysis(b, modal.Match(selection)) })
	if strings.Contains(out, "Uses characteristic chords") {
		t.Errorf("partial matches should not list characteristic chords:\n%v", out)
	}
	if strings.Count(out, "50% Match") != modal.MaxMatches {
		t.Errorf("every result should be a 50%% match:\n%v", out)
	}
}

func TestBadge(t *testing.T) {
	if got := report.Badge(modal.MatchResult{Perfect: true, Fraction: 1}); got != "✓ Perfect Match" {
		t.Errorf("got %q", got)
	}
	if got := report.Badge(modal.MatchResult{Fraction: 2.0 / 3}); got != "67% Match" {
		t.Errorf("got %q", got)
	}
}

func TestProgression(t *testing.T) {
	out := render(t, func(b *strings.Builder) error { return report.Progression(b, modal.Progression{Key: modal.C}) })
	if !strings.HasPrefix(out, "Select chords and a key") {
		t.Errorf("empty progression should show the placeholder, got %q", out)
	}
	chords, err := modal.ParseChords([]string{"C", "G", "Ab", "Fm"})
	if err != nil {
		t.Fatal(err)
	}
	out = render(t, func(b *strings.Builder) error {
		return report.Progression(b, modal.AnalyzeProgression(chords, modal.C))
	})
	for _, want := range []string{
		"  1. C    I      Major\n",
		"  3. G#   ♭VI    Major  (borrowed)\n",
		"  4. Fm   iv     Minor  (borrowed)\n",
		"Progression in C major:\nI - V - ♭VI - iv\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("progression output is missing %q:\n%v", want, out)
		}
	}
}

func TestAnalysisWithInvalidChord(t *testing.T) {
	bad := modal.Chord{Root: modal.C, Quality: modal.NumQualities}
	selection := []modal.Chord{modal.MustParseChord("C"), bad}
	out := render(t, func(b *strings.Builder) error { return report.Analysis(b, modal.Match(selection)) })
	for _, want := range []string{"Selected: C, ?\n", "50% Match", "Not in scale: ?\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("analysis output is missing %q:\n%v", want, out)
		}
	}
}

func TestAnalysisSelectionHasNoDuplicates(t *testing.T) {
	selection, err := modal.ParseChords([]string{"C", "G", "C", "Am", "G"})
	if err != nil {
		t.Fatal(err)
	}
	out := render(t, func(b *strings.Builder) error { return report.Analysis(b, modal.Match(selection)) })
	if !strings.Contains(out, "Selected: C, G, Am\n") {
		t.Errorf("selected line should list every chord once:\n%v", out)
	}
}
