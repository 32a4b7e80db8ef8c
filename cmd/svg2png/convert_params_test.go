package main

// Notes:
// - buildConversionParams is tested through parseConvertFlags so the
//   changed() tracking is the real one.
// - Config files are referenced by path to avoid depending on the cwd.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	svg2png "github.com/alnah/go-svg2png"
	"github.com/alnah/go-svg2png/internal/config"
)

// writeConfig writes a YAML config into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "svg2png.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// mustParse parses convert flags or fails the test.
func mustParse(t *testing.T, args ...string) (*convertFlags, []string) {
	t.Helper()
	f, positional, err := parseConvertFlags(args)
	if err != nil {
		t.Fatalf("parseConvertFlags(%v) error = %v", args, err)
	}
	return f, positional
}

// ---------------------------------------------------------------------------
// TestBuildConversionParams - Precedence and validation
// ---------------------------------------------------------------------------

func TestBuildConversionParams_Defaults(t *testing.T) {
	t.Parallel()

	f, positional := mustParse(t)
	params, err := buildConversionParams(positional, f, &envConfig{})
	if err != nil {
		t.Fatalf("buildConversionParams() error = %v", err)
	}

	if params.inputDir != config.DefaultInputDir {
		t.Errorf("inputDir = %q, want %q", params.inputDir, config.DefaultInputDir)
	}
	if params.outputDir != "" || params.workers != 1 || params.strict || params.quiet || params.verbose {
		t.Errorf("params = %+v", params)
	}
	if params.size != svg2png.DefaultSize() {
		t.Errorf("size = %v, want default", params.size)
	}
	if params.renderer != svg2png.RendererOksvg || params.timeout != 30*time.Second {
		t.Errorf("renderer/timeout = %q/%v", params.renderer, params.timeout)
	}
	if len(params.options) == 0 {
		t.Error("expected converter options")
	}

	// Options build a working converter
	conv, err := svg2png.NewConverter(params.options...)
	if err != nil {
		t.Fatalf("NewConverter(options) error = %v", err)
	}
	defer conv.Close()
	if conv.Size() != svg2png.DefaultSize() {
		t.Errorf("converter size = %v", conv.Size())
	}
}

func TestBuildConversionParams_Precedence(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, `
input:
  dir: from-file
render:
  width: 100
  height: 100
  quality: 40
  background: "#111111"
workers: 2
`)

	tests := []struct {
		name       string
		args       []string
		env        envConfig
		wantDir    string
		wantWidth  int
		wantHeight int
		wantQual   int
		wantWork   int
	}{
		{
			name:       "file over defaults",
			args:       []string{"-c", cfgPath},
			wantDir:    "from-file",
			wantWidth:  100,
			wantHeight: 100,
			wantQual:   40,
			wantWork:   2,
		},
		{
			name:       "env over file",
			args:       []string{"-c", cfgPath},
			env:        envConfig{InputDir: "from-env", Width: 200, Quality: 60},
			wantDir:    "from-env",
			wantWidth:  200,
			wantHeight: 100,
			wantQual:   60,
			wantWork:   2,
		},
		{
			name:       "flags over env",
			args:       []string{"-c", cfgPath, "--width", "300", "--quality", "80", "-w", "3"},
			env:        envConfig{Width: 200, Quality: 60},
			wantDir:    "from-file",
			wantWidth:  300,
			wantHeight: 100,
			wantQual:   80,
			wantWork:   3,
		},
		{
			name:       "positional dir over everything",
			args:       []string{"-c", cfgPath, "from-arg"},
			env:        envConfig{InputDir: "from-env"},
			wantDir:    "from-arg",
			wantWidth:  100,
			wantHeight: 100,
			wantQual:   40,
			wantWork:   2,
		},
		{
			name:       "config from env var",
			env:        envConfig{ConfigPath: cfgPath},
			wantDir:    "from-file",
			wantWidth:  100,
			wantHeight: 100,
			wantQual:   40,
			wantWork:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, positional := mustParse(t, tt.args...)
			env := tt.env
			params, err := buildConversionParams(positional, f, &env)
			if err != nil {
				t.Fatalf("buildConversionParams() error = %v", err)
			}

			if params.inputDir != tt.wantDir {
				t.Errorf("inputDir = %q, want %q", params.inputDir, tt.wantDir)
			}
			if params.size != (svg2png.Size{Width: tt.wantWidth, Height: tt.wantHeight}) {
				t.Errorf("size = %v, want %dx%d", params.size, tt.wantWidth, tt.wantHeight)
			}
			if params.workers != tt.wantWork {
				t.Errorf("workers = %d, want %d", params.workers, tt.wantWork)
			}

			conv, err := svg2png.NewConverter(params.options...)
			if err != nil {
				t.Fatalf("NewConverter(options) error = %v", err)
			}
			defer conv.Close()
			if conv.Size() != params.size {
				t.Errorf("converter size = %v, want %v", conv.Size(), params.size)
			}
		})
	}
}

func TestBuildConversionParams_DefaultFlagsDoNotMaskConfig(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, "render:\n  renderer: browser\n  timeout: 5s\n")
	f, positional := mustParse(t, "-c", cfgPath)

	params, err := buildConversionParams(positional, f, &envConfig{})
	if err != nil {
		t.Fatalf("buildConversionParams() error = %v", err)
	}
	if params.renderer != svg2png.RendererBrowser {
		t.Errorf("renderer = %q, want browser from config", params.renderer)
	}
	if params.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s from config", params.timeout)
	}
}

func TestBuildConversionParams_Errors(t *testing.T) {
	t.Parallel()

	badCfg := writeConfig(t, "render:\n  widht: 10\n")
	invalidCfg := writeConfig(t, "workers: -1\n")

	tests := []struct {
		name    string
		args    []string
		env     envConfig
		wantErr error
	}{
		{"two positional args", []string{"a", "b"}, envConfig{}, ErrUsage},
		{"missing config", []string{"-c", filepath.Join(t.TempDir(), "nope.yaml")}, envConfig{}, config.ErrConfigNotFound},
		{"unknown config key", []string{"-c", badCfg}, envConfig{}, config.ErrConfigParse},
		{"invalid config value", []string{"-c", invalidCfg}, envConfig{}, config.ErrInvalidConfig},
		{"invalid env value", nil, envConfig{Quality: 101}, svg2png.ErrInvalidQuality},
		{"invalid flag value", []string{"--background", "nope"}, envConfig{}, svg2png.ErrInvalidBackground},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, positional := mustParse(t, tt.args...)
			env := tt.env
			_, err := buildConversionParams(positional, f, &env)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildConversionParams_EmptyInputDir(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, "input:\n  dir: \"\"\n")
	f, positional := mustParse(t, "-c", cfgPath)

	_, err := buildConversionParams(positional, f, &envConfig{})
	if !errors.Is(err, ErrUsage) {
		t.Errorf("error = %v, want ErrUsage", err)
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - Only explicit flags override
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("nil changed merges nothing", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		mergeFlags(&convertFlags{output: "x", workers: 9}, cfg)
		if *cfg != *config.DefaultConfig() {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("explicit flags override", func(t *testing.T) {
		t.Parallel()

		f, _ := mustParse(t, "-o", "out", "--background", "black", "--renderer", "browser", "-t", "2s", "--height", "10")
		cfg := config.DefaultConfig()
		mergeFlags(f, cfg)

		if cfg.Output.Dir != "out" || cfg.Render.Background != "black" || cfg.Render.Renderer != "browser" ||
			cfg.Render.Timeout != "2s" || cfg.Render.Height != 10 {
			t.Errorf("cfg = %+v", cfg)
		}
		if cfg.Render.Width != svg2png.DefaultWidth {
			t.Errorf("width = %d, unset flag should not override", cfg.Render.Width)
		}
	})
}
