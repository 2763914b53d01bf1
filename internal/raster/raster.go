// Package raster applies brush strokes and local blur directly to image
// pixel data. Operations mutate in place and never trigger display; the
// caller is responsible for repainting.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// blurShrink is the fixed downsample factor of the local pseudo-blur.
const blurShrink = 4

// EnsureRGBA returns img as *image.RGBA, converting when the decoded image
// uses another channel layout. The original pointer is returned unchanged
// when it already is RGBA, so callers may mutate the result in place.
func EnsureRGBA(img image.Image) *image.RGBA {
	if img == nil {
		return nil
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Clone returns a deep copy of img rebased to a zero origin.
func Clone(img *image.RGBA) *image.RGBA {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// DrawLineSegment rasterizes a stroke of the given width between two image
// space points. The RGB channels of col are written with the alpha left
// opaque. Continuous strokes call this once per pointer move with from set
// to the previous point; a lone pointer-down records a point and draws
// nothing, so the first visible mark appears on the first move.
func DrawLineSegment(img *image.RGBA, from, to image.Point, col color.Color, width int) {
	if img == nil {
		return
	}
	if width < 1 {
		width = 1
	}
	r, g, b, _ := col.RGBA()
	solid := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff}
	drawLine(img, from.X, from.Y, to.X, to.Y, solid, width)
}

// ApplyLocalBlur smooths the square region [c-radius, c+radius) clamped to
// the image bounds by downsampling it by a fixed factor and resampling back
// to the original size. An empty clamped region is a no-op. The result is
// deterministic for identical input; its strength is controlled only by the
// radius.
func ApplyLocalBlur(img *image.RGBA, cx, cy, radius int) {
	if img == nil || radius < 1 {
		return
	}
	b := img.Bounds()
	region := image.Rect(cx-radius, cy-radius, cx+radius, cy+radius).Intersect(b)
	if region.Dx() < 1 || region.Dy() < 1 {
		return
	}

	small := image.NewRGBA(image.Rect(0, 0,
		max(1, region.Dx()/blurShrink),
		max(1, region.Dy()/blurShrink)))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, region, xdraw.Src, nil)
	xdraw.ApproxBiLinear.Scale(img, region, small, small.Bounds(), xdraw.Src, nil)
}

func setThickPixel(img *image.RGBA, x, y, thick int, col color.RGBA) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.SetRGBA(px, py, col)
			}
		}
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA, thick int) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
