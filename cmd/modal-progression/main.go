package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lobo-larsen/modal-composer"
	"github.com/lobo-larsen/modal-composer/cmd"
	"github.com/lobo-larsen/modal-composer/midifile"
	"github.com/lobo-larsen/modal-composer/report"
	"github.com/lobo-larsen/modal-composer/synth"
	"github.com/lobo-larsen/modal-composer/version"
)

func main() {
	p := cmd.LoadPreferences(os.Stderr)
	keyName := flag.String("k", p.Progression.Key.String(), "Major key of the analysis. Overrides the key of a chord file.")
	midiOut := flag.String("m", "", "Write the progression to this .mid file.")
	wavOut := flag.String("w", "", "Write the progression to this .wav file.")
	pcm := flag.Bool("c", false, "Convert audio to 16-bit signed PCM when outputting.")
	play := flag.Bool("p", false, "Play the progression.")
	bpm := flag.Float64("bpm", p.MIDI.BPM, "Tempo of the .mid file.")
	help := flag.Bool("h", false, "Show help.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}
	chords, fileKey, err := cmd.ReadChords(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	key, err := modal.ParseNote(*keyName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid key: %v\n", err)
		os.Exit(1)
	}
	keySet := false
	flag.Visit(func(f *flag.Flag) { keySet = keySet || f.Name == "k" })
	if fileKey != nil && !keySet {
		key = *fileKey
	}
	if err := report.Progression(os.Stdout, modal.AnalyzeProgression(chords, key)); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	retval := 0
	if *midiOut != "" {
		opts := midifile.DefaultOptions
		opts.BPM = *bpm
		opts.BeatsPerChord = p.MIDI.BeatsPerChord
		if err := midifile.WriteFile(*midiOut, chords, opts); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			retval = 1
		}
	}
	if *wavOut == "" && !*play {
		os.Exit(retval)
	}
	buffer, err := synth.RenderProgression(chords, p.Progression.Spacing, p.Audio.SampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not render the progression: %v\n", err)
		os.Exit(1)
	}
	if *wavOut != "" {
		wav, err := buffer.Wav(p.Audio.SampleRate, *pcm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not generate .wav file: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*wavOut, wav, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "could not write file %v: %v\n", *wavOut, err)
			retval = 1
		}
	}
	if *play {
		audio, err := cmd.AudioOpener(p)()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		audio.Play(buffer).Wait()
		if err := audio.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			retval = 1
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Labels a chord progression with Roman numerals.\nUsage: %s [flags] chord|file ...\n", os.Args[0])
	flag.PrintDefaults()
}
