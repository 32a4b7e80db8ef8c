package svg2png

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// oksvgRasterizer renders SVG in pure Go with oksvg and rasterx.
// Unsupported elements are skipped rather than rejected.
type oksvgRasterizer struct{}

// Rasterize parses svg and draws it, scaled to fit, into a transparent
// canvas-sized RGBA image.
func (r *oksvgRasterizer) Rasterize(ctx context.Context, svg []byte, canvas Size) (image.Image, image.Rectangle, error) {
	if err := ctx.Err(); err != nil {
		return nil, image.Rectangle{}, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %v", ErrRasterize, err)
	}

	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %w", ErrRasterize, ErrNoIntrinsicSize)
	}

	content := ContainRect(vw, vh, canvas)
	// Map viewBox units onto content: shift by the viewBox origin before
	// scaling. SvgIcon.SetTarget subtracts the origin after scaling, which
	// misplaces any viewBox that does not start at 0,0.
	icon.Transform = rasterx.Identity.
		Translate(float64(content.Min.X), float64(content.Min.Y)).
		Scale(float64(content.Dx())/vw, float64(content.Dy())/vh).
		Translate(-icon.ViewBox.X, -icon.ViewBox.Y)

	img := image.NewRGBA(canvas.Bounds())
	scanner := rasterx.NewScannerGV(canvas.Width, canvas.Height, img, img.Bounds())
	dasher := rasterx.NewDasher(canvas.Width, canvas.Height, scanner)
	icon.Draw(dasher, 1.0)

	Logger().Debug("svg rasterized",
		"renderer", RendererOksvg,
		"viewbox", fmt.Sprintf("%gx%g", vw, vh),
		"content", content.String())

	return img, content, nil
}

// Close is a no-op; oksvg holds no external resources.
func (r *oksvgRasterizer) Close() error { return nil }
