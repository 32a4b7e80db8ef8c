package svg2png

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// ---------------------------------------------------------------------------
// SVG Fixtures
// ---------------------------------------------------------------------------

// squareSVG is a 200x200 solid red square.
const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="0 0 200 200">
<rect x="0" y="0" width="200" height="200" fill="#ff0000"/>
</svg>`

// bannerSVG is a 500x100 solid blue banner.
const bannerSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="500" height="100" viewBox="0 0 500 100">
<rect x="0" y="0" width="500" height="100" fill="#0000ff"/>
</svg>`

// truncatedSVG is not well-formed XML.
const truncatedSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect`

// sizelessSVG has neither width/height nor a viewBox.
const sizelessSVG = `<svg xmlns="http://www.w3.org/2000/svg"><rect width="10" height="10"/></svg>`

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

// ---------------------------------------------------------------------------
// Mock Rasterizer
// ---------------------------------------------------------------------------

// mockRasterizer returns a solid image covering content, or a canned error.
type mockRasterizer struct {
	content image.Rectangle
	fill    color.NRGBA
	err     error
	panics  bool
	calls   int
	closed  bool
}

func (m *mockRasterizer) Rasterize(ctx context.Context, svg []byte, canvas Size) (image.Image, image.Rectangle, error) {
	m.calls++
	if m.panics {
		panic("boom")
	}
	if m.err != nil {
		return nil, image.Rectangle{}, m.err
	}
	img := image.NewNRGBA(canvas.Bounds())
	for y := m.content.Min.Y; y < m.content.Max.Y; y++ {
		for x := m.content.Min.X; x < m.content.Max.X; x++ {
			img.SetNRGBA(x, y, m.fill)
		}
	}
	return img, m.content, nil
}

func (m *mockRasterizer) Close() error {
	m.closed = true
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// decodePNG decodes data or fails the test.
func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	return img
}

// pixelAt returns the non-premultiplied color at (x, y).
func pixelAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

// assertPaddingIs checks a sample of pixels outside content against want.
func assertPaddingIs(t *testing.T, img image.Image, content image.Rectangle, want color.NRGBA) {
	t.Helper()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 7 {
		for x := b.Min.X; x < b.Max.X; x += 7 {
			if (image.Point{X: x, Y: y}).In(content) {
				continue
			}
			if got := pixelAt(img, x, y); got != want {
				t.Fatalf("padding pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
