package svg2png

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySVG        = errors.New("svg content cannot be empty")
	ErrRasterize       = errors.New("svg rasterization failed")
	ErrNoIntrinsicSize = errors.New("svg has no usable width, height or viewBox")
	ErrEncode          = errors.New("png encoding failed")

	// Browser renderer errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrScreenshot     = errors.New("failed to capture screenshot")

	// Option validation errors.
	ErrInvalidSize       = errors.New("invalid output size")
	ErrInvalidBackground = errors.New("invalid background color")
	ErrInvalidQuality    = errors.New("invalid quality")
	ErrUnknownRenderer   = errors.New("unknown renderer")

	// ErrPoolClosed is returned by Acquire after Close.
	ErrPoolClosed = errors.New("converter pool is closed")
)
