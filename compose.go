package svg2png

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// compose pads the raster onto a background-filled canvas.
// Only pixels inside content are taken from the raster; everything else
// keeps the exact background color.
func compose(raster image.Image, content image.Rectangle, size Size, bg color.NRGBA) *image.NRGBA {
	canvas := imaging.New(size.Width, size.Height, bg)
	content = content.Intersect(canvas.Bounds())
	if raster == nil || content.Empty() {
		return canvas
	}
	draw.Draw(canvas, content, raster, content.Min, draw.Over)
	return canvas
}

// encodePNG encodes img with the compression level derived from quality.
func encodePNG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(compressionLevel(quality))); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// fitToCanvas rescales img to exactly size when a renderer produced a
// different pixel density (e.g. a HiDPI browser screenshot).
func fitToCanvas(img image.Image, size Size) image.Image {
	if img.Bounds().Dx() == size.Width && img.Bounds().Dy() == size.Height && img.Bounds().Min == (image.Point{}) {
		return img
	}
	dst := image.NewRGBA(size.Bounds())
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
