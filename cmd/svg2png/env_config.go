package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-svg2png/internal/config"
)

// ErrInvalidEnv is returned when an SVG2PNG_* variable cannot be parsed.
var ErrInvalidEnv = errors.New("invalid environment variable")

// envPrefix namespaces every recognized environment variable.
const envPrefix = "SVG2PNG_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
// Zero values mean "not set".
type envConfig struct {
	ConfigPath string // SVG2PNG_CONFIG: config file name or path
	InputDir   string // SVG2PNG_INPUT_DIR: asset directory
	OutputDir  string // SVG2PNG_OUTPUT_DIR: output directory
	Background string // SVG2PNG_BACKGROUND: padding color
	Renderer   string // SVG2PNG_RENDERER: oksvg or browser
	Timeout    string // SVG2PNG_TIMEOUT: browser page timeout
	Width      int    // SVG2PNG_WIDTH
	Height     int    // SVG2PNG_HEIGHT
	Quality    int    // SVG2PNG_QUALITY
	Workers    *int   // SVG2PNG_WORKERS: 0 is meaningful (auto)
}

// knownEnvVars lists valid SVG2PNG_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SVG2PNG_CONFIG":     true,
	"SVG2PNG_INPUT_DIR":  true,
	"SVG2PNG_OUTPUT_DIR": true,
	"SVG2PNG_BACKGROUND": true,
	"SVG2PNG_RENDERER":   true,
	"SVG2PNG_TIMEOUT":    true,
	"SVG2PNG_WIDTH":      true,
	"SVG2PNG_HEIGHT":     true,
	"SVG2PNG_QUALITY":    true,
	"SVG2PNG_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Numeric variables that do not parse are reported rather than ignored.
func loadEnvConfig() (*envConfig, error) {
	cfg := &envConfig{
		ConfigPath: os.Getenv("SVG2PNG_CONFIG"),
		InputDir:   os.Getenv("SVG2PNG_INPUT_DIR"),
		OutputDir:  os.Getenv("SVG2PNG_OUTPUT_DIR"),
		Background: os.Getenv("SVG2PNG_BACKGROUND"),
		Renderer:   os.Getenv("SVG2PNG_RENDERER"),
		Timeout:    os.Getenv("SVG2PNG_TIMEOUT"),
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"SVG2PNG_WIDTH", &cfg.Width},
		{"SVG2PNG_HEIGHT", &cfg.Height},
		{"SVG2PNG_QUALITY", &cfg.Quality},
	}
	for _, v := range ints {
		n, ok, err := envInt(v.name)
		if err != nil {
			return nil, err
		}
		if ok {
			*v.dst = n
		}
	}

	n, ok, err := envInt("SVG2PNG_WORKERS")
	if err != nil {
		return nil, err
	}
	if ok {
		cfg.Workers = &n
	}

	return cfg, nil
}

// envInt parses an integer variable. ok is false when the variable is unset or empty.
func envInt(name string) (n int, ok bool, err error) {
	s := strings.TrimSpace(os.Getenv(name))
	if s == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidEnv, name, s)
	}
	return n, true, nil
}

// warnUnknownEnvVars logs warnings for unrecognized SVG2PNG_* variables.
// Helps catch typos like SVG2PNG_WORKER instead of SVG2PNG_WORKERS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment values over the config file values.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.Dir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Background != "" {
		cfg.Render.Background = env.Background
	}
	if env.Renderer != "" {
		cfg.Render.Renderer = env.Renderer
	}
	if env.Timeout != "" {
		cfg.Render.Timeout = env.Timeout
	}
	if env.Width != 0 {
		cfg.Render.Width = env.Width
	}
	if env.Height != 0 {
		cfg.Render.Height = env.Height
	}
	if env.Quality != 0 {
		cfg.Render.Quality = env.Quality
	}
	if env.Workers != nil {
		cfg.Workers = *env.Workers
	}
}
