package svg2png

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"
	"time"
)

// Output dimension constants.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	MaxDimension  = 16384
)

// Quality bounds. Quality is advisory for PNG and selects a compression level.
const (
	MinQuality     = 1
	MaxQuality     = 100
	DefaultQuality = 90
)

// Renderer names.
const (
	RendererOksvg   = "oksvg"
	RendererBrowser = "browser"
)

// File extension markers for source and target files.
const (
	SourceExt = ".svg"
	TargetExt = ".png"
)

// DefaultBackground is opaque white.
var DefaultBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Size is an output canvas size in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultSize returns the 1024x768 canvas.
func DefaultSize() Size {
	return Size{Width: DefaultWidth, Height: DefaultHeight}
}

// Validate checks that both dimensions are within (0, MaxDimension].
func (s Size) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Width > MaxDimension || s.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d (each side must be between 1 and %d)", ErrInvalidSize, s.Width, s.Height, MaxDimension)
	}
	return nil
}

// Bounds returns the canvas rectangle anchored at the origin.
func (s Size) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

func (s Size) String() string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}

// ParseBackground parses "white", "transparent", "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseBackground(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "white":
		return DefaultBackground, nil
	case "black":
		return color.NRGBA{A: 255}, nil
	case "transparent":
		return color.NRGBA{}, nil
	}

	hex, ok := strings.CutPrefix(v, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q (use #rrggbb, #rrggbbaa, white or transparent)", ErrInvalidBackground, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidBackground, s)
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidBackground, s)
	}
	return color.NRGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}

// compressionLevel maps the advisory quality hint onto a PNG compression level.
func compressionLevel(quality int) png.CompressionLevel {
	switch {
	case quality >= 90:
		return png.BestCompression
	case quality >= 50:
		return png.DefaultCompression
	default:
		return png.BestSpeed
	}
}

// ConvertResult holds the encoded PNG and where the vector image landed.
type ConvertResult struct {
	PNG     []byte
	Width   int
	Height  int
	Content image.Rectangle // region painted by the rasterizer, inside the canvas
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	size       Size
	background color.NRGBA
	quality    int
	renderer   string
	timeout    time.Duration
}

// defaultTimeout bounds browser page loads when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithSize sets the output canvas size.
func WithSize(width, height int) Option {
	return func(c *Converter) {
		c.cfg.size = Size{Width: width, Height: height}
	}
}

// WithBackground sets the padding color.
func WithBackground(bg color.Color) Option {
	return func(c *Converter) {
		c.cfg.background = color.NRGBAModel.Convert(bg).(color.NRGBA)
	}
}

// WithQuality sets the advisory quality hint (1-100).
func WithQuality(q int) Option {
	return func(c *Converter) {
		c.cfg.quality = q
	}
}

// WithRenderer selects the rasterization backend: "oksvg" or "browser".
func WithRenderer(name string) Option {
	return func(c *Converter) {
		c.cfg.renderer = strings.ToLower(name)
	}
}

// WithTimeout sets the browser page load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("svg2png: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// withRasterizer injects a rasterizer (tests).
func withRasterizer(r rasterizer) Option {
	return func(c *Converter) {
		c.rasterizer = r
	}
}
