package svg2png

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"
)

// rasterizer turns SVG bytes into a canvas-sized image. The vector image is
// scaled to fit inside the canvas (contain semantics) and the returned
// rectangle reports where it was drawn. Pixels outside that rectangle are
// ignored by the caller.
type rasterizer interface {
	Rasterize(ctx context.Context, svg []byte, canvas Size) (image.Image, image.Rectangle, error)
	Close() error
}

// newRasterizer builds the backend registered under name.
func newRasterizer(name string, timeout time.Duration) (rasterizer, error) {
	switch strings.ToLower(name) {
	case "", RendererOksvg:
		return &oksvgRasterizer{}, nil
	case RendererBrowser:
		return newRodRasterizer(timeout), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrUnknownRenderer, name, RendererOksvg, RendererBrowser)
	}
}
