package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks command-line usage errors (bad flags, extra arguments).
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds rasterization flags.
type renderFlags struct {
	width      int
	height     int
	background string
	quality    int
	renderer   string
	timeout    string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	strict  bool
	render  renderFlags

	// changed reports whether a flag was set explicitly on the command line,
	// so defaults never mask env or config values.
	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addRenderFlags adds rasterization flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.IntVar(&f.width, "width", 1024, "output width in pixels")
	fs.IntVar(&f.height, "height", 768, "output height in pixels")
	fs.StringVar(&f.background, "background", "#ffffff", "padding color: #rgb, #rrggbb, #rrggbbaa, white, transparent")
	fs.IntVar(&f.quality, "quality", 90, "quality hint 1-100 (selects PNG compression)")
	fs.StringVar(&f.renderer, "renderer", "oksvg", "rasterizer: oksvg or browser")
	fs.StringVarP(&f.timeout, "timeout", "t", "30s", "browser page timeout (e.g., 30s, 2m)")
}

// buildConvertFlagSet registers every convert flag on a new FlagSet bound to f.
func buildConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: next to each source)")
	fs.IntVarP(&f.workers, "workers", "w", 1, "parallel workers (1 = sequential, 0 = auto)")
	fs.BoolVar(&f.strict, "strict", false, "exit non-zero if any file fails")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Returns flag.ErrHelp unwrapped for -h/--help.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := buildConvertFlagSet(f)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	f.changed = fs.Changed
	return f, fs.Args(), nil
}
