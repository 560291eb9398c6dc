package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lobo-larsen/modal-composer"
	"github.com/lobo-larsen/modal-composer/cmd"
	"github.com/lobo-larsen/modal-composer/report"
	"github.com/lobo-larsen/modal-composer/version"
)

type matchOut struct {
	Key            string        `json:"key" yaml:"key"`
	Mode           string        `json:"mode" yaml:"mode"`
	Percent        int           `json:"percent" yaml:"percent"`
	Perfect        bool          `json:"perfect" yaml:"perfect"`
	Matching       []modal.Chord `json:"matching" yaml:"matching"`
	Missing        []modal.Chord `json:"missing,omitempty" yaml:"missing,omitempty"`
	Characteristic []modal.Chord `json:"characteristic,omitempty" yaml:"characteristic,omitempty"`
}

func main() {
	jsonOut := flag.Bool("j", false, "Output the matches as .json.")
	yamlOut := flag.Bool("y", false, "Output the matches as .yml.")
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
	chords, _, err := cmd.ReadChords(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	analysis := modal.Match(chords)
	if !*jsonOut && !*yamlOut {
		if err := report.Analysis(os.Stdout, analysis); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}
	out := make([]matchOut, len(analysis.Results))
	for i, r := range analysis.Results {
		out[i] = matchOut{
			Key:            r.Tonic.String(),
			Mode:           r.Mode.ShortName(),
			Percent:        r.Percent(),
			Perfect:        r.Perfect,
			Matching:       r.Matching,
			Missing:        r.Missing,
			Characteristic: r.Characteristic,
		}
	}
	var contents []byte
	if *jsonOut {
		contents, err = json.MarshalIndent(out, "", "  ")
		contents = append(contents, '\n')
	} else {
		contents, err = yaml.Marshal(out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not marshal the matches: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(contents)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Finds the keys and modes that contain the given chords.\nUsage: %s [flags] chord|file ...\n", os.Args[0])
	flag.PrintDefaults()
}
