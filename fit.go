package svg2png

import (
	"image"
	"math"
)

// ContainRect returns the largest rectangle with the aspect ratio srcW:srcH
// that fits inside dst, centered. Rounded to whole pixels and never larger
// than dst. Returns an empty rectangle for non-positive source dimensions.
func ContainRect(srcW, srcH float64, dst Size) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || dst.Width <= 0 || dst.Height <= 0 {
		return image.Rectangle{}
	}

	scale := math.Min(float64(dst.Width)/srcW, float64(dst.Height)/srcH)
	w := min(max(int(math.Round(srcW*scale)), 1), dst.Width)
	h := min(max(int(math.Round(srcH*scale)), 1), dst.Height)

	x0 := (dst.Width - w) / 2
	y0 := (dst.Height - h) / 2
	return image.Rect(x0, y0, x0+w, y0+h)
}
