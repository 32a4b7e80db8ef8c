package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-svg2png/internal/config"
	"github.com/alnah/go-svg2png/internal/fileutil"
)

// ErrConfigExists is returned by init when the target file already exists.
var ErrConfigExists = errors.New("config file already exists")

// defaultInitPath is where init writes when no path is given.
const defaultInitPath = "svg2png.yaml"

// configHeader documents the generated file.
const configHeader = `# svg2png configuration
# Precedence: flags > SVG2PNG_* environment > this file > defaults
# render.renderer: oksvg (pure Go) or browser (headless Chrome)
# workers: 1 = sequential, 0 = auto
`

// runInitCmd handles the init command and returns an exit code.
func runInitCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	force := fs.BoolP("force", "f", false, "overwrite an existing file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printInitUsage(env.Stdout)
			return ExitSuccess
		}
		return reportError(env, fmt.Errorf("%w: %v", ErrUsage, err), "")
	}
	if fs.NArg() > 1 {
		return reportError(env, fmt.Errorf("%w: expected at most one path", ErrUsage), "")
	}

	path := defaultInitPath
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	if err := writeDefaultConfig(path, *force); err != nil {
		return reportError(env, err, "")
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", path)
	return ExitSuccess
}

// writeDefaultConfig writes the default configuration as YAML to path.
func writeDefaultConfig(path string, force bool) error {
	if !force && fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}

	data, err := config.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	out := append([]byte(configHeader), data...)
	if err := fileutil.WriteFileAtomic(path, out, filePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
