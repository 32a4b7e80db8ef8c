package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run dispatches a command and returns the process exit code.
// With no command, or when the first argument is a flag, it converts.
func run(args []string, env *Environment) int {
	if len(args) == 0 || (strings.HasPrefix(args[0], "-") && !isHelpFlag(args[0]) && args[0] != "--version") {
		return runConvertCmd(args, env)
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "convert":
		return runConvertCmd(rest, env)
	case "init":
		return runInitCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "completion":
		if err := runCompletion(rest, env); err != nil {
			return reportError(env, err, "")
		}
		return ExitSuccess
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "svg2png %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprintf(env.Stderr, "  hint: to convert a directory, run 'svg2png convert %s'\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

func isHelpFlag(s string) bool {
	return s == "-h" || s == "--help"
}
