// Package geom maps pointer positions on the viewing surface to pixel
// coordinates in the source image.
package geom

import "image"

// Footprint returns the on-screen rectangle the image occupies inside
// display: the image size scaled by scale, shrunk further if needed to fit
// the display rect without changing aspect ratio, and centered on both axes.
// The zero rectangle is returned when the inputs cannot produce a visible
// footprint.
func Footprint(display image.Rectangle, imageSize image.Point, scale float64) image.Rectangle {
	fw, fh := footprintSize(display, imageSize, scale)
	if fw < 1 || fh < 1 {
		return image.Rectangle{}
	}
	x0 := display.Min.X + (display.Dx()-fw)/2
	y0 := display.Min.Y + (display.Dy()-fh)/2
	return image.Rect(x0, y0, x0+fw, y0+fh)
}

// MapToImage converts a pointer position within display to a pixel
// coordinate of an image of the given size shown at the given scale. The
// pointer is taken as floats because input events report sub-pixel
// positions. The result is clamped to [0, dim-1] on each axis. ok is false
// when there is nothing to map against (zero-size image or display,
// non-positive scale, or a degenerate footprint); callers should ignore the
// event in that case.
func MapToImage(px, py float64, display image.Rectangle, imageSize image.Point, scale float64) (image.Point, bool) {
	fw, fh := footprintSize(display, imageSize, scale)
	if fw < 1 || fh < 1 {
		return image.Point{}, false
	}
	offX := float64(display.Dx()-fw) / 2
	offY := float64(display.Dy()-fh) / 2

	ix := (px - float64(display.Min.X) - offX) * float64(imageSize.X) / float64(fw)
	iy := (py - float64(display.Min.Y) - offY) * float64(imageSize.Y) / float64(fh)

	return image.Pt(
		clamp(int(ix), 0, imageSize.X-1),
		clamp(int(iy), 0, imageSize.Y-1),
	), true
}

// footprintSize reports the scaled image dimensions constrained to fit the
// display rect with the aspect ratio preserved. Either dimension may come
// out zero for degenerate inputs; callers treat that as unmappable.
func footprintSize(display image.Rectangle, imageSize image.Point, scale float64) (int, int) {
	if imageSize.X <= 0 || imageSize.Y <= 0 || scale <= 0 {
		return 0, 0
	}
	dw, dh := display.Dx(), display.Dy()
	if dw <= 0 || dh <= 0 {
		return 0, 0
	}
	w := float64(imageSize.X) * scale
	h := float64(imageSize.Y) * scale
	if w > float64(dw) || h > float64(dh) {
		fit := float64(dw) / w
		if fy := float64(dh) / h; fy < fit {
			fit = fy
		}
		w *= fit
		h *= fit
	}
	return int(w), int(h)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
