package modal

// DiatonicChord is the triad built on one degree of a mode.
type DiatonicChord struct {
	Degree         int
	Chord          Chord
	Numeral        string
	Characteristic bool
}

// DiatonicChords returns the seven triads of mode built on tonic, in degree
// order.
func DiatonicChords(tonic Note, mode Mode) [NumDegrees]DiatonicChord {
	var ret [NumDegrees]DiatonicChord
	for i, note := range Scale(tonic, mode) {
		ret[i] = DiatonicChord{
			Degree:         i,
			Chord:          Chord{Root: note, Quality: mode.Qualities[i]},
			Numeral:        mode.Numerals[i],
			Characteristic: mode.Characteristic.Has(i),
		}
	}
	return ret
}

// ModeRow is the set of diatonic chords of one mode, as shown in the mode
// explorer.
type ModeRow struct {
	Mode   Mode
	Chords [NumDegrees]DiatonicChord
}

// Explore returns the diatonic chords of every mode in the catalog, built on
// tonic.
func Explore(tonic Note) [NumModes]ModeRow {
	var ret [NumModes]ModeRow
	for i, m := range modeCatalog {
		ret[i] = ModeRow{Mode: m, Chords: DiatonicChords(tonic, m)}
	}
	return ret
}
