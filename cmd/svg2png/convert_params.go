package main

import (
	"fmt"
	"strings"
	"time"

	svg2png "github.com/alnah/go-svg2png"
	"github.com/alnah/go-svg2png/internal/config"
)

// conversionParams holds the fully resolved settings of a convert run.
type conversionParams struct {
	inputDir  string
	outputDir string
	workers   int // as configured; 0 = auto
	strict    bool
	quiet     bool
	verbose   bool
	renderer  string
	size      svg2png.Size
	timeout   time.Duration
	options   []svg2png.Option
}

// buildConversionParams resolves the final settings.
// Precedence: CLI flags > SVG2PNG_* env vars > config file > defaults.
func buildConversionParams(positional []string, flags *convertFlags, env *envConfig) (*conversionParams, error) {
	if len(positional) > 1 {
		return nil, fmt.Errorf("%w: expected at most one directory, got %d arguments", ErrUsage, len(positional))
	}

	cfg, err := loadConfig(flags.common.config, env.ConfigPath)
	if err != nil {
		return nil, err
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if len(positional) == 1 {
		cfg.Input.Dir = positional[0]
	}
	if cfg.Input.Dir == "" {
		return nil, fmt.Errorf("%w: no asset directory (pass one or set input.dir)", ErrUsage)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Validate guarantees these parse
	bg, _ := svg2png.ParseBackground(cfg.Render.Background)
	timeout, _ := cfg.Render.TimeoutDuration()
	renderer := strings.ToLower(cfg.Render.Renderer)

	return &conversionParams{
		inputDir:  cfg.Input.Dir,
		outputDir: cfg.Output.Dir,
		workers:   cfg.Workers,
		strict:    flags.strict,
		quiet:     flags.common.quiet,
		verbose:   flags.common.verbose,
		renderer:  renderer,
		size:      svg2png.Size{Width: cfg.Render.Width, Height: cfg.Render.Height},
		timeout:   timeout,
		options: []svg2png.Option{
			svg2png.WithSize(cfg.Render.Width, cfg.Render.Height),
			svg2png.WithBackground(bg),
			svg2png.WithQuality(cfg.Render.Quality),
			svg2png.WithRenderer(renderer),
			svg2png.WithTimeout(timeout),
		},
	}, nil
}

// loadConfig loads the config named by the flag, else by SVG2PNG_CONFIG,
// else returns defaults.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges explicitly set CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	changed := flags.changed
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if changed("output") {
		cfg.Output.Dir = flags.output
	}
	if changed("workers") {
		cfg.Workers = flags.workers
	}
	if changed("width") {
		cfg.Render.Width = flags.render.width
	}
	if changed("height") {
		cfg.Render.Height = flags.render.height
	}
	if changed("background") {
		cfg.Render.Background = flags.render.background
	}
	if changed("quality") {
		cfg.Render.Quality = flags.render.quality
	}
	if changed("renderer") {
		cfg.Render.Renderer = flags.render.renderer
	}
	if changed("timeout") {
		cfg.Render.Timeout = flags.render.timeout
	}
}
