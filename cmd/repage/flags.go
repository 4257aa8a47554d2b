package main

import (
	"errors"
	"runtime"

	"github.com/spf13/pflag"
)

var errNoInputs = errors.New("no input documents given (expected YAML document files or markdown files)")

// cliFlags holds parsed command-line options.
type cliFlags struct {
	configPath string
	outputDir  string
	toc        bool
	workers    int
	verbose    bool
	version    bool
	help       bool
	inputs     []string
}

// parseFlags parses command-line arguments. Remaining positional arguments
// are the input document files.
func parseFlags(args []string) (*cliFlags, *pflag.FlagSet, error) {
	flags := &cliFlags{}

	fs := pflag.NewFlagSet("repage", pflag.ContinueOnError)
	fs.StringVarP(&flags.configPath, "config", "c", "", "path to config file (default: search standard locations)")
	fs.StringVarP(&flags.outputDir, "output", "o", "", "output directory (default: from config, else current directory)")
	fs.BoolVar(&flags.toc, "toc", false, "write a toc.yaml alongside the page files")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "parallel document renders (default: GOMAXPROCS)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")
	fs.BoolVarP(&flags.help, "help", "h", false, "print usage and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}

	flags.inputs = fs.Args()
	if flags.workers <= 0 {
		flags.workers = runtime.GOMAXPROCS(0)
	}

	if !flags.version && !flags.help && len(flags.inputs) == 0 {
		return nil, fs, errNoInputs
	}

	return flags, fs, nil
}
