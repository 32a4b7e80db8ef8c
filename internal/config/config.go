// Package config loads and validates svg2png YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	svg2png "github.com/alnah/go-svg2png"
	"github.com/alnah/go-svg2png/internal/fileutil"
	"github.com/alnah/go-svg2png/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Defaults written by `svg2png init` and used when no config file is given.
const (
	DefaultInputDir   = "assets/images"
	DefaultBackground = "#ffffff"
	DefaultTimeout    = "30s"
	DefaultWorkers    = 1

	// MaxWorkers bounds explicit worker counts.
	MaxWorkers = 32

	// AppDirName is the directory under the user config dir searched for configs.
	AppDirName = "go-svg2png"
)

// Config holds all configuration for a conversion run.
type Config struct {
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Render  RenderConfig `yaml:"render"`
	Workers int          `yaml:"workers"` // 1 = sequential, 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	Dir string `yaml:"dir"` // Asset directory scanned for .svg files
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Empty = next to the source
}

// RenderConfig defines rasterization options.
type RenderConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // "#rrggbb", "#rrggbbaa", "white", "transparent"
	Quality    int    `yaml:"quality"`    // 1-100, selects PNG compression effort
	Renderer   string `yaml:"renderer"`   // "oksvg" or "browser"
	Timeout    string `yaml:"timeout"`    // Go duration, browser page timeout
}

// TimeoutDuration parses Render.Timeout. Empty means DefaultTimeout.
func (r RenderConfig) TimeoutDuration() (time.Duration, error) {
	s := r.Timeout
	if s == "" {
		s = DefaultTimeout
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout %q: %v", ErrInvalidConfig, r.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: render.timeout must be positive, got %s", ErrInvalidConfig, d)
	}
	return d, nil
}

// Validate checks value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., after applying env or flag overrides).
func (c *Config) Validate() error {
	if err := (svg2png.Size{Width: c.Render.Width, Height: c.Render.Height}).Validate(); err != nil {
		return fmt.Errorf("%w: render: %w", ErrInvalidConfig, err)
	}
	if c.Render.Quality < svg2png.MinQuality || c.Render.Quality > svg2png.MaxQuality {
		return fmt.Errorf("%w: render.quality: %w: %d (must be between %d and %d)",
			ErrInvalidConfig, svg2png.ErrInvalidQuality, c.Render.Quality, svg2png.MinQuality, svg2png.MaxQuality)
	}
	if _, err := svg2png.ParseBackground(c.Render.Background); err != nil {
		return fmt.Errorf("%w: render.background: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Render.Renderer) {
	case svg2png.RendererOksvg, svg2png.RendererBrowser:
	default:
		return fmt.Errorf("%w: render.renderer: %w: %q (must be %s or %s)",
			ErrInvalidConfig, svg2png.ErrUnknownRenderer, c.Render.Renderer, svg2png.RendererOksvg, svg2png.RendererBrowser)
	}
	if _, err := c.Render.TimeoutDuration(); err != nil {
		return err
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers %d (must be between 0 and %d)", ErrInvalidConfig, c.Workers, MaxWorkers)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// assets/images, 1024x768, white padding, quality 90, sequential.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Dir: DefaultInputDir},
		Output: OutputConfig{Dir: ""},
		Render: RenderConfig{
			Width:      svg2png.DefaultWidth,
			Height:     svg2png.DefaultHeight,
			Background: DefaultBackground,
			Quality:    svg2png.DefaultQuality,
			Renderer:   svg2png.RendererOksvg,
			Timeout:    DefaultTimeout,
		},
		Workers: DefaultWorkers,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML, as written by `svg2png init`.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-svg2png/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
