package main

import (
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-notesite/internal/config"
)

// ErrUsage wraps flag parsing errors.
var ErrUsage = errors.New("invalid usage")

// errHelpRequested reports that -h/--help printed usage.
var errHelpRequested = errors.New("help requested")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common    commonFlags
	index     string
	notesDir  string
	layout    string
	pdf       bool
	highlight bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// parseGenerateFlags parses generate command flags. Positional arguments
// are rejected.
func parseGenerateFlags(args []string, env *Environment) (*generateFlags, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &generateFlags{}

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.index, "index", "i", "", "index document to update")
	fs.StringVar(&f.notesDir, "notes-dir", "", "note directory, relative to the index")
	fs.StringVar(&f.layout, "layout", "", "output layout: inline, flat, nested")
	fs.BoolVar(&f.pdf, "pdf", false, "also export each note to PDF")
	fs.BoolVar(&f.highlight, "highlight", false, "syntax highlight code blocks")

	fs.Usage = func() { printGenerateUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errHelpRequested
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return f, nil
}

// mergeFlags applies set flags over cfg (CLI wins).
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.index != "" {
		cfg.Output.IndexPath = flags.index
	}
	if flags.notesDir != "" {
		cfg.Output.NotesDir = flags.notesDir
	}
	if flags.layout != "" {
		cfg.Output.Layout = strings.ToLower(flags.layout)
	}
	if flags.pdf {
		cfg.PDF.Enabled = true
	}
	if flags.highlight {
		cfg.Render.Highlight = true
	}
}
