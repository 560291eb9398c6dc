package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lobo-larsen/modal-composer"
	"github.com/lobo-larsen/modal-composer/cmd"
	"github.com/lobo-larsen/modal-composer/report"
	"github.com/lobo-larsen/modal-composer/session"
	"github.com/lobo-larsen/modal-composer/version"
)

func main() {
	p := cmd.LoadPreferences(os.Stderr)
	tonicName := flag.String("t", p.Explorer.Tonic.String(), "Tonic of the modes. Sharps or flats, e.g. F# or Gb.")
	play := flag.Bool("p", false, "Play every chord of the grid, mode by mode.")
	help := flag.Bool("h", false, "Show help.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if *help || flag.NArg() > 0 {
		flag.Usage()
		os.Exit(0)
	}
	tonic, err := modal.ParseNote(*tonicName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid tonic: %v\n", err)
		os.Exit(1)
	}
	if err := report.Explorer(os.Stdout, tonic); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if !*play {
		return
	}
	s := session.New(tonic, p.Progression.Key, p.Audio.SampleRate, cmd.AudioOpener(p))
	spacing := time.Duration(p.Progression.Spacing * float64(time.Second))
	if last := playGrid(os.Stdout, s, spacing); last != nil {
		last.Wait()
	}
	cmd.PrintAlerts(os.Stderr, s)
	if err := s.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	if s.AudioFailed() {
		os.Exit(1)
	}
}

// playGrid plays the chords of the explorer grid mode by mode, spacing apart,
// and stops at the first mode after playback has failed. Returns the waiter
// of the last chord played, or nil.
func playGrid(w io.Writer, s *session.Session, spacing time.Duration) modal.Waiter {
	var last modal.Waiter
	for _, row := range s.Explorer() {
		if s.AudioFailed() {
			break
		}
		fmt.Fprintf(w, "%v\n", row.Mode.ShortName())
		for _, d := range row.Chords {
			if p := s.Play(d.Chord); p != nil {
				last = p
				time.Sleep(spacing)
			}
		}
	}
	return last
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Shows the diatonic chords of the seven modes built on one tonic.\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
