package main

import (
	"errors"
	"os"

	svg2png "github.com/alnah/go-svg2png"
	"github.com/alnah/go-svg2png/internal/config"
)

// Exit codes for svg2png CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Batch ran; per-file failures are reported but not fatal
	ExitGeneral = 1 // General/unexpected error, or --strict with failures
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing asset directory, no .svg files, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, svg2png.ErrBrowserConnect) ||
		errors.Is(err, svg2png.ErrPageCreate) ||
		errors.Is(err, svg2png.ErrPageLoad) ||
		errors.Is(err, svg2png.ErrScreenshot) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, svg2png.ErrInvalidSize) ||
		errors.Is(err, svg2png.ErrInvalidBackground) ||
		errors.Is(err, svg2png.ErrInvalidQuality) ||
		errors.Is(err, svg2png.ErrUnknownRenderer) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidEnv) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, ErrMissingDirectory) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
