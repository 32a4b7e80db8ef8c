package svg2png

import (
	"context"
	"fmt"
)

// Compile-time interface implementation checks.
var (
	_ rasterizer = (*oksvgRasterizer)(nil)
	_ rasterizer = (*rodRasterizer)(nil)
)

// Converter rasterizes SVG documents onto a fixed-size padded canvas.
// Create with NewConverter(), use Convert() for conversion, and Close() when done.
// A Converter is not safe for concurrent use; use a ConverterPool for that.
type Converter struct {
	cfg        converterConfig
	rasterizer rasterizer
}

// NewConverter creates a Converter with the default 1024x768 white canvas.
// Use options to customize behavior (e.g., WithSize, WithBackground, WithRenderer).
// Returns the first validation error.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			size:       DefaultSize(),
			background: DefaultBackground,
			quality:    DefaultQuality,
			renderer:   RendererOksvg,
			timeout:    defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.size.Validate(); err != nil {
		return nil, err
	}
	if c.cfg.quality < MinQuality || c.cfg.quality > MaxQuality {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidQuality, c.cfg.quality, MinQuality, MaxQuality)
	}

	// Create rasterizer if not injected (e.g., by tests)
	if c.rasterizer == nil {
		r, err := newRasterizer(c.cfg.renderer, c.cfg.timeout)
		if err != nil {
			return nil, err
		}
		c.rasterizer = r
	}

	Logger().Debug("converter created",
		"renderer", c.cfg.renderer,
		"size", c.cfg.size.String(),
		"quality", c.cfg.quality)
	return c, nil
}

// Size returns the output canvas size.
func (c *Converter) Size() Size {
	return c.cfg.size
}

// Convert rasterizes svg, pads it onto the background and encodes a PNG.
// The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, svg []byte) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrRasterize, r)
		}
	}()

	if len(svg) == 0 {
		return nil, ErrEmptySVG
	}

	raster, content, err := c.rasterizer.Rasterize(ctx, svg, c.cfg.size)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	canvas := compose(raster, content, c.cfg.size, c.cfg.background)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	data, err := encodePNG(canvas, c.cfg.quality)
	if err != nil {
		return nil, err
	}

	return &ConvertResult{
		PNG:     data,
		Width:   c.cfg.size.Width,
		Height:  c.cfg.size.Height,
		Content: content.Intersect(c.cfg.size.Bounds()),
	}, nil
}

// Close releases renderer resources (headless Chrome for the browser renderer).
func (c *Converter) Close() error {
	if c.rasterizer != nil {
		return c.rasterizer.Close()
	}
	return nil
}
