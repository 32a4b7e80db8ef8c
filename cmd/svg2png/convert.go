package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	svg2png "github.com/alnah/go-svg2png"
	"github.com/alnah/go-svg2png/internal/config"
	"github.com/alnah/go-svg2png/internal/hints"
)

// ErrConversionsFailed is returned under --strict when any file failed.
var ErrConversionsFailed = errors.New("conversion(s) failed")

// runConvertCmd handles the convert command and returns an exit code.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printConvertUsage(env.Stdout)
			return ExitSuccess
		}
		return reportError(env, err, "")
	}

	warnUnknownEnvVars(env.Stderr)

	envCfg, err := loadEnvConfig()
	if err != nil {
		return reportError(env, err, "")
	}

	params, err := buildConversionParams(positional, flags, envCfg)
	if err != nil {
		return reportError(env, err, "")
	}

	if params.verbose {
		svg2png.SetLogger(slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer svg2png.SetLogger(nil)
	}

	// Configure GOMAXPROCS for container CPU quotas before sizing the pool.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		svg2png.Logger().Debug(fmt.Sprintf(format, args...))
	}))
	defer undo()

	poolSize := svg2png.ResolvePoolSize(params.workers)
	svg2png.Logger().Debug("pool sized", "workers", poolSize, "renderer", params.renderer, "size", params.size.String())

	pool := env.NewPool(poolSize, params.options...)
	defer func() {
		if err := pool.Close(); err != nil {
			fmt.Fprintf(env.Stderr, "warning: closing converters: %v\n", err)
		}
	}()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, params, pool, env); err != nil {
		return reportError(env, err, params.inputDir)
	}
	return ExitSuccess
}

// runConvert discovers the job list and runs the batch.
// Only discovery errors are fatal; per-file failures are reported and,
// unless strict, do not fail the run.
func runConvert(ctx context.Context, params *conversionParams, pool Pool, env *Environment) error {
	files, err := discoverFiles(params.inputDir, params.outputDir)
	if err != nil {
		return err
	}

	p := &progress{
		stdout:  env.Stdout,
		stderr:  env.Stderr,
		quiet:   params.quiet,
		verbose: params.verbose,
	}
	results := convertBatch(ctx, pool, files, p)
	summary := countResults(results)

	if !params.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	first := firstError(results)
	if errors.Is(first, svg2png.ErrBrowserConnect) {
		fmt.Fprintln(env.Stderr, "browser unavailable"+hints.ForBrowserConnect())
	}

	if summary.Skipped > 0 {
		return fmt.Errorf("%w: %d file(s) not converted: %w", ErrBatchAborted, summary.Skipped, ctx.Err())
	}
	if params.strict && summary.Failed > 0 {
		return fmt.Errorf("%d %w: %w", summary.Failed, ErrConversionsFailed, first)
	}
	return nil
}

// reportError prints a fatal error with an actionable hint and returns its exit code.
func reportError(env *Environment, err error, inputDir string) int {
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, inputDir))
	return exitCodeFor(err)
}

// hintFor selects a hint for well-known fatal errors.
func hintFor(err error, inputDir string) string {
	switch {
	case errors.Is(err, ErrMissingDirectory):
		return hints.ForMissingDirectory(inputDir)
	case errors.Is(err, ErrEmptyInput):
		return hints.ForEmptyInput()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, svg2png.ErrUnknownRenderer):
		return hints.ForRenderer()
	case errors.Is(err, ErrUsage):
		return "\n  run 'svg2png help convert' for usage"
	default:
		return ""
	}
}
