//go:build bench

package svg2png

import (
	"context"
	"fmt"
	"image"
	"strings"
	"testing"
)

// BenchmarkConvert benchmarks the full pipeline with the pure Go renderer.
func BenchmarkConvert(b *testing.B) {
	inputs := []struct {
		name string
		svg  string
	}{
		{"square", squareSVG},
		{"banner", bannerSVG},
		{"many_paths", generateBenchmarkSVG(200)},
	}

	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			conv, err := NewConverter()
			if err != nil {
				b.Fatal(err)
			}
			defer conv.Close()

			ctx := context.Background()
			svg := []byte(in.svg)

			b.ReportAllocs()
			for b.Loop() {
				if _, err := conv.Convert(ctx, svg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkConvert_Quality isolates PNG compression effort by using a mock
// rasterizer, so only compose and encode are measured.
func BenchmarkConvert_Quality(b *testing.B) {
	mock := &mockRasterizer{content: image.Rect(128, 0, 896, 768), fill: red}

	for _, q := range []int{10, 50, 90} {
		b.Run(fmt.Sprintf("quality_%d", q), func(b *testing.B) {
			conv, err := NewConverter(WithQuality(q), withRasterizer(mock))
			if err != nil {
				b.Fatal(err)
			}
			defer conv.Close()

			ctx := context.Background()
			svg := []byte(squareSVG)

			b.ReportAllocs()
			for b.Loop() {
				if _, err := conv.Convert(ctx, svg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkContainRect benchmarks the fit computation.
func BenchmarkContainRect(b *testing.B) {
	dst := DefaultSize()
	b.ReportAllocs()
	for b.Loop() {
		_ = ContainRect(500, 100, dst)
	}
}

// generateBenchmarkSVG builds an SVG with n overlapping circles.
func generateBenchmarkSVG(n int) string {
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 300">`)
	for i := range n {
		fmt.Fprintf(&sb, `<circle cx="%d" cy="%d" r="%d" fill="#%02x%02x%02x"/>`,
			(i*37)%400, (i*53)%300, 5+i%40, i%256, (i*7)%256, (i*13)%256)
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}
