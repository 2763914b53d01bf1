// Package render produces pre-composited UI artwork, currently the drop
// shadows behind the on-screen buttons.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow composited behind an image.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// ShadowResult is the output of ApplyShadow.
type ShadowResult struct {
	// Image holds the source composited over its blurred shadow.
	Image *image.RGBA
	// Offset is how far the source content moved when rebased onto the
	// expanded canvas. Callers subtract it when positioning the result so
	// the content stays put on screen.
	Offset image.Point
}

// ApplyShadow composites img over a blurred drop shadow. The result has a
// zero-based origin. A nil or empty source, or a non-positive opacity,
// returns the source unchanged.
func ApplyShadow(img *image.RGBA, opts ShadowOptions) ShadowResult {
	if img == nil {
		return ShadowResult{}
	}
	if img.Bounds().Empty() || opts.Opacity <= 0 {
		return ShadowResult{Image: img}
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	src := img.Bounds()
	padded := src
	if radius > 0 {
		padded = padded.Inset(-radius)
	}

	shadow := padded.Add(opts.Offset)
	composite := src.Union(shadow)
	canvas := composite.Sub(composite.Min)
	if canvas.Dx() <= 0 || canvas.Dy() <= 0 {
		return ShadowResult{Image: img}
	}

	shift := src.Min.Sub(composite.Min)
	shadowOrigin := shadow.Min.Sub(composite.Min)

	// The shadow silhouette is the source alpha channel, box blurred.
	mask := image.NewGray(padded.Sub(padded.Min))
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			a := img.RGBAAt(x, y).A
			if a == 0 {
				continue
			}
			mask.SetGray(x-padded.Min.X, y-padded.Min.Y, color.Gray{Y: a})
		}
	}
	blurred := boxBlurGray(mask, radius)

	dst := image.NewRGBA(canvas)
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	shadowAlpha := uint8(opacity*255 + 0.5)
	if shadowAlpha > 0 {
		draw.DrawMask(dst, blurred.Bounds().Add(shadowOrigin), image.NewUniform(color.RGBA{0, 0, 0, shadowAlpha}), image.Point{}, blurred, blurred.Bounds().Min, draw.Over)
	}
	draw.Draw(dst, src.Sub(composite.Min), img, src.Min, draw.Over)

	return ShadowResult{Image: dst, Offset: shift}
}

// boxBlurGray runs one horizontal and one vertical box-blur pass using
// prefix sums, O(w*h) regardless of radius.
func boxBlurGray(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		out := image.NewGray(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	tmp := image.NewGray(bounds)
	dst := image.NewGray(bounds)

	row := make([]int, w+1)
	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride:]
		tmpRow := tmp.Pix[y*tmp.Stride:]
		for x := 0; x < w; x++ {
			row[x+1] = row[x] + int(srcRow[x])
		}
		for x := 0; x < w; x++ {
			lo, hi := clampSpan(x, radius, w)
			tmpRow[x] = uint8((row[hi+1] - row[lo]) / (hi - lo + 1))
		}
	}

	col := make([]int, h+1)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y+1] = col[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			lo, hi := clampSpan(y, radius, h)
			dst.Pix[y*dst.Stride+x] = uint8((col[hi+1] - col[lo]) / (hi - lo + 1))
		}
	}

	return dst
}

func clampSpan(center, radius, size int) (lo, hi int) {
	lo = center - radius
	if lo < 0 {
		lo = 0
	}
	hi = center + radius
	if hi >= size {
		hi = size - 1
	}
	return lo, hi
}
