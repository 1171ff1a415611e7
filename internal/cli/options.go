// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"tesim/internal/version"
)

// Genome backends
const (
	BackendSlice = "slice"
	BackendRing  = "ring"
	BackendBoth  = "both"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Simulation input
	Length     int
	ScriptFile string // "-" = STDIN

	// Backend selection
	Backend string

	// Output
	Output string
	Trace  bool
	Render bool // true unless --no-render
	Header bool // true unless --no-header

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help and
// ContinueOnError semantics.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: transposable element simulation on a circular genome

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// A positional argument is accepted as the script file.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Simulation input
	fs.IntVar(&opt.Length, "length", 0, "initial genome length in cells [*]")
	fs.StringVar(&opt.ScriptFile, "script", "", "operation script file or '-' for STDIN [*]")

	// Backend
	fs.StringVar(&opt.Backend, "genome", BackendSlice, "backing store: slice | ring | both ["+BackendSlice+"]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Trace, "trace", false, "emit one record per operation instead of final state only [false]")
	noRender := false
	fs.BoolVar(&noRender, "no-render", false, "omit genome render strings from records [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Render = !noRender
	opt.Header = !noHeader

	// A single positional arg may name the script file.
	switch args := fs.Args(); {
	case len(args) == 1 && opt.ScriptFile == "":
		opt.ScriptFile = args[0]
	case len(args) == 1:
		return opt, errors.New("--script conflicts with positional script argument")
	case len(args) > 1:
		return opt, fmt.Errorf("unexpected arguments: %v", args[1:])
	}

	// Validation
	if opt.Length < 1 {
		return opt, errors.New("--length must be ≥ 1")
	}
	if opt.ScriptFile == "" {
		return opt, errors.New("provide --script or a positional script file")
	}
	switch opt.Backend {
	case BackendSlice, BackendRing, BackendBoth:
	default:
		return opt, fmt.Errorf("unknown genome backend %q", opt.Backend)
	}
	switch opt.Output {
	case "text", "json", "jsonl":
	default:
		return opt, fmt.Errorf("unknown output format %q", opt.Output)
	}
	return opt, nil
}
