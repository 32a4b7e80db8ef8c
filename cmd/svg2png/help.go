package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svg2png <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert every .svg in a directory to a padded .png (default)")
	fmt.Fprintln(w, "  init        Write a default config file")
	fmt.Fprintln(w, "  doctor      Check renderers and environment")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'svg2png help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svg2png convert [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rasterize each .svg directly inside dir to a .png of the same name.")
	fmt.Fprintln(w, "The drawing is scaled to fit the canvas and padded with the background.")
	fmt.Fprintln(w, "A failing file is reported and skipped; the rest of the batch continues.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Asset directory (default: input.dir from config, else assets/images)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: next to each source)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (1 = sequential, 0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --width <px>          Canvas width (default 1024)")
	fmt.Fprintln(w, "      --height <px>         Canvas height (default 768)")
	fmt.Fprintln(w, "      --background <color>  #rgb, #rrggbb, #rrggbbaa, white, transparent")
	fmt.Fprintln(w, "      --quality <n>         Quality hint 1-100, selects compression (default 90)")
	fmt.Fprintln(w, "      --renderer <name>     oksvg (pure Go) or browser (headless Chrome)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Browser page timeout (default 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --strict              Exit 1 if any file fails")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SVG2PNG_CONFIG, SVG2PNG_INPUT_DIR, SVG2PNG_OUTPUT_DIR, SVG2PNG_WIDTH,")
	fmt.Fprintln(w, "  SVG2PNG_HEIGHT, SVG2PNG_BACKGROUND, SVG2PNG_QUALITY, SVG2PNG_RENDERER,")
	fmt.Fprintln(w, "  SVG2PNG_TIMEOUT, SVG2PNG_WORKERS")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success (including per-file failures without --strict)")
	fmt.Fprintln(w, "  1 general error, 2 usage, 3 missing directory or no .svg files, 4 browser")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svg2png init [path] [--force]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the default configuration to path (default: svg2png.yaml).")
	fmt.Fprintln(w, "Refuses to overwrite an existing file unless --force is given.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: svg2png doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that the pure Go renderer works and whether Chrome is available.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: svg2png version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: svg2png help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
