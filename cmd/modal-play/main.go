package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lobo-larsen/modal-composer"
	"github.com/lobo-larsen/modal-composer/cmd"
	"github.com/lobo-larsen/modal-composer/synth"
	"github.com/lobo-larsen/modal-composer/version"
)

func main() {
	p := cmd.LoadPreferences(os.Stderr)
	help := flag.Bool("h", false, "Show help.")
	directory := flag.String("o", "", "Directory where to output all files. The directory and its parents are created if needed. By default, files are placed in the working directory.")
	play := flag.Bool("p", false, "Play the chords (default behaviour when no other output is defined).")
	rawOut := flag.Bool("r", false, "Output every chord as .raw file. By default, saves stereo float32 buffer to disk.")
	wavOut := flag.Bool("w", false, "Output every chord as .wav file. By default, saves stereo float32 buffer to disk.")
	pcm := flag.Bool("c", false, "Convert audio to 16-bit signed PCM when outputting.")
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
	if !*rawOut && !*wavOut {
		*play = true // if the user gives nothing to output, then the default behaviour is just to play the chords
	}
	chords, _, err := cmd.ReadChords(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	var audioContext modal.AudioContext
	if *play {
		audioContext, err = cmd.AudioOpener(p)()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not acquire audio output: %v\n", err)
			os.Exit(1)
		}
	}
	output := func(name string, contents []byte) error {
		dir := *directory
		if dir == "" {
			var err error
			dir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("could not get working directory, specify the output directory explicitly: %v", err)
			}
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create output directory %v: %v", dir, err)
		}
		f := filepath.Join(dir, name)
		if err := os.WriteFile(f, contents, 0644); err != nil {
			return fmt.Errorf("could not write file %v: %v", f, err)
		}
		return nil
	}
	process := func(chord modal.Chord) error {
		buffer, err := synth.RenderChord(chord, p.Audio.SampleRate)
		if err != nil {
			return fmt.Errorf("could not render: %v", err)
		}
		if *rawOut {
			raw, err := buffer.Raw(*pcm)
			if err != nil {
				return fmt.Errorf("could not generate .raw file: %v", err)
			}
			if err := output(chord.String()+".raw", raw); err != nil {
				return fmt.Errorf("error outputting .raw file: %v", err)
			}
		}
		if *wavOut {
			wav, err := buffer.Wav(p.Audio.SampleRate, *pcm)
			if err != nil {
				return fmt.Errorf("could not generate .wav file: %v", err)
			}
			if err := output(chord.String()+".wav", wav); err != nil {
				return fmt.Errorf("error outputting .wav file: %v", err)
			}
		}
		if *play {
			audioContext.Play(buffer).Wait()
		}
		return nil
	}
	retval := 0
	for _, c := range chords {
		if err := process(c); err != nil {
			fmt.Fprintf(os.Stderr, "could not process chord %v: %v\n", c, err)
			retval = 1
		}
	}
	if audioContext != nil {
		if err := audioContext.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			retval = 1
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Plays chords or renders them to audio files.\nUsage: %s [flags] chord|file ...\n", os.Args[0])
	flag.PrintDefaults()
}
