// Package svg2png rasterizes SVG documents into fixed-size PNG images.
//
// # Quick Start
//
// Create a converter, convert an SVG, and close when done:
//
//	conv, err := svg2png.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, svgBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("logo.png", result.PNG, 0644)
//
// # Geometry
//
// The output canvas is 1024x768 by default. The vector image is scaled to
// fit entirely inside the canvas with its aspect ratio preserved, centered,
// and the remaining area is filled with the background color (opaque white
// by default). ConvertResult.Content reports where the image landed:
//
//	square 200x200   -> 768x768 at (128,0)
//	banner 500x100   -> 1024x205 at (0,281)
//
// # Renderers
//
// Two backends are available:
//
//   - "oksvg" (default): pure Go, based on github.com/srwiley/oksvg.
//     Covers paths, basic shapes and gradients; text is not rendered.
//   - "browser": headless Chrome via go-rod. Full SVG support, slower,
//     downloads Chromium on first use unless ROD_BROWSER_BIN is set.
//
// # Configuration
//
//	conv, err := svg2png.NewConverter(
//	    svg2png.WithSize(512, 512),
//	    svg2png.WithBackground(color.Transparent),
//	    svg2png.WithRenderer(svg2png.RendererBrowser),
//	    svg2png.WithTimeout(time.Minute),
//	)
//
// Quality (WithQuality, 1-100) is a hint only: PNG is lossless, so it
// selects the compression effort.
//
// # Parallel Processing
//
// A Converter is not safe for concurrent use. For batches, use a pool:
//
//	pool := svg2png.NewConverterPool(svg2png.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
//
// # Logging
//
// The library is silent by default. Install a logger with SetLogger to
// receive debug events and warnings.
package svg2png
