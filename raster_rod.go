package svg2png

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/srwiley/oksvg"

	"github.com/alnah/go-svg2png/internal/assets"
	"github.com/alnah/go-svg2png/internal/process"
)

// naturalSizeJS waits for the embedded image to decode and reports its
// intrinsic size. Rejects when Chrome cannot decode the SVG.
const naturalSizeJS = `() => {
	const img = document.getElementById("svg");
	return img.decode().then(() => [img.naturalWidth, img.naturalHeight]);
}`

// placeImageJS pins the image box to the contain rect so nothing Chrome
// draws can land outside it.
const placeImageJS = `(x, y, w, h) => {
	const s = document.getElementById("svg").style;
	s.left = x + "px";
	s.top = y + "px";
	s.width = w + "px";
	s.height = h + "px";
}`

// rodRasterizer renders SVG with headless Chrome via go-rod.
// Rod downloads Chromium on first run if none is found.
// The browser is launched lazily and reused across conversions.
type rodRasterizer struct {
	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// newRodRasterizer creates a rodRasterizer with the given page timeout.
func newRodRasterizer(timeout time.Duration) *rodRasterizer {
	return &rodRasterizer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRasterizer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New().Headless(true)

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	Logger().Info("browser launched", "pid", l.PID())
	r.launcher = l
	r.browser = browser
	return nil
}

// Rasterize loads svg into a canvas-sized page on a transparent background,
// pins the image box to the contain rect and screenshots it. The returned
// rectangle is that box.
func (r *rodRasterizer) Rasterize(ctx context.Context, svg []byte, canvas Size) (image.Image, image.Rectangle, error) {
	if err := ctx.Err(); err != nil {
		return nil, image.Rectangle{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureBrowser(); err != nil {
		return nil, image.Rectangle{}, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Page timeout from context deadline or the configured default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, image.Rectangle{}, context.DeadlineExceeded
		}
	}
	page = page.Context(ctx).Timeout(timeout)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             canvas.Width,
		Height:            canvas.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	transparent := 0.0
	if err := (proto.EmulationSetDefaultBackgroundColorOverride{
		Color: &proto.DOMRGBA{A: &transparent},
	}).Call(page); err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	html, err := assets.RenderSVGPage(svg, canvas.Width, canvas.Height)
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := page.SetDocumentContent(html); err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	res, err := page.Eval(naturalSizeJS)
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %v", ErrRasterize, err)
	}
	dims := res.Value.Arr()
	if len(dims) != 2 || dims[0].Num() <= 0 || dims[1].Num() <= 0 {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %w", ErrRasterize, ErrNoIntrinsicSize)
	}

	naturalW, naturalH := dims[0].Num(), dims[1].Num()
	content := browserContentRect(svg, naturalW, naturalH, canvas)
	if _, err := page.Eval(placeImageJS, content.Min.X, content.Min.Y, content.Dx(), content.Dy()); err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: placing image: %v", ErrPageLoad, err)
	}

	shot, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}

	img, err := imaging.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: decoding screenshot: %v", ErrScreenshot, err)
	}

	Logger().Debug("svg rasterized",
		"renderer", RendererBrowser,
		"natural", fmt.Sprintf("%gx%g", naturalW, naturalH),
		"content", content.String())

	return fitToCanvas(img, canvas), content, nil
}

// browserContentRect picks the aspect ratio the image box is laid out with.
// The root element's viewBox (or width and height) wins; Chrome reports a
// 300x150 default natural size for SVGs that only carry a viewBox, so its
// natural size is the fallback for documents oksvg cannot read.
func browserContentRect(svg []byte, naturalW, naturalH float64, canvas Size) image.Rectangle {
	if icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode); err == nil &&
		icon.ViewBox.W > 0 && icon.ViewBox.H > 0 {
		return ContainRect(icon.ViewBox.W, icon.ViewBox.H, canvas)
	}
	return ContainRect(naturalW, naturalH, canvas)
}

// Close releases browser resources and kills the Chrome process tree.
func (r *rodRasterizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser == nil {
		return nil
	}

	err := r.browser.Close()
	if pid := r.launcher.PID(); pid > 0 {
		process.KillProcessGroup(pid)
	}
	r.launcher.Kill()
	if err != nil {
		Logger().Warn("browser close failed", "error", err)
	}

	r.browser = nil
	r.launcher = nil
	return err
}
