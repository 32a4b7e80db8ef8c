// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-svg2png/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// IsInCI reports whether a known CI provider variable is set.
func IsInCI() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	// Suggest ROD_NO_SANDBOX for container/CI environments
	if (IsInCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	// Suggest ROD_BROWSER_BIN if not set
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	hints = append(hints, "or use --renderer oksvg (no browser needed)")

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for complex drawings, use --timeout flag")
}

// ForMissingDirectory returns hints when the asset directory does not exist.
func ForMissingDirectory(dir string) string {
	return format("create " + dir + " or pass the directory as an argument: svg2png convert <dir>")
}

// ForEmptyInput returns hints when the asset directory holds no .svg files.
// Matching is case-sensitive and does not descend into subdirectories.
func ForEmptyInput() string {
	return format("only files ending in lowercase .svg directly inside the directory are converted")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag, `svg2png init`, and the per-user config directory.
func ForConfigNotFound() string {
	return format("use --config /path/to/file.yaml, run svg2png init, or place <name>.yaml in ~/.config/go-svg2png/")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForRenderer returns hints for unknown renderer names.
func ForRenderer() string {
	return format("available renderers: oksvg, browser")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
