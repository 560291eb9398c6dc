// Package report renders the explorer grid, the key/mode analysis and the
// progression analysis as plain text.
package report

import (
	"embed"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/lobo-larsen/modal-composer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.txt
var templateFS embed.FS

var templates = template.Must(template.New("base").
	Funcs(sprig.TxtFuncMap()).
	Funcs(template.FuncMap{
		"cell":      cell,
		"badge":     Badge,
		"symbols":   symbols,
		"titleCase": titleCase,
	}).
	ParseFS(templateFS, "templates/*.txt"))

// CharacteristicMark is appended to the symbol of characteristic chords.
const CharacteristicMark = "★"

type analysisData struct {
	Status    string
	Selection []modal.Chord
	Results   []modal.MatchResult
}

// Explorer writes the diatonic chords of every mode built on tonic, one mode
// per row, numerals above chord symbols.
func Explorer(w io.Writer, tonic modal.Note) error {
	data := struct {
		Tonic modal.Note
		Rows  [modal.NumModes]modal.ModeRow
	}{tonic, modal.Explore(tonic)}
	return execute(w, "explorer", data)
}

// Analysis writes the ranked key/mode matches of a selection.
func Analysis(w io.Writer, a modal.Analysis) error {
	return execute(w, "analysis", analysisData{Status: a.Status.String(), Selection: a.Selection, Results: a.Results})
}

// Progression writes the Roman numeral analysis of a progression.
func Progression(w io.Writer, p modal.Progression) error {
	return execute(w, "progression", p)
}

// Badge returns "✓ Perfect Match" for perfect matches and "NN% Match"
// otherwise.
func Badge(r modal.MatchResult) string {
	if r.Perfect {
		return "✓ Perfect Match"
	}
	return fmt.Sprintf("%d%% Match", r.Percent())
}

func execute(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("could not execute template %q: %w", name, err)
	}
	return nil
}

func cell(d modal.DiatonicChord) string {
	if d.Characteristic {
		return d.Chord.String() + CharacteristicMark
	}
	return d.Chord.String()
}

// a Caser keeps state between calls, so every call gets its own
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func symbols(chords []modal.Chord) []string {
	ret := make([]string, len(chords))
	for i, c := range chords {
		ret[i] = c.String()
	}
	return ret
}
