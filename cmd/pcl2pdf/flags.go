package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the pcl2pdf CLI.
type cliFlags struct {
	config  string
	output  string
	quiet   bool
	verbose bool
}

// parseFlags parses CLI flags and returns the remaining positional args
// (the input files to convert).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("pcl2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: beside each input)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show record counts and timing")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
