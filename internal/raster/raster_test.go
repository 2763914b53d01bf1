package raster

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func newWhite(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func TestDrawLineSegmentWritesRGBOpaque(t *testing.T) {
	img := newWhite(20, 20)
	red := color.RGBA{255, 0, 0, 255}
	DrawLineSegment(img, image.Pt(2, 10), image.Pt(17, 10), red, 1)

	for x := 2; x <= 17; x++ {
		got := img.RGBAAt(x, 10)
		if got != red {
			t.Fatalf("pixel (%d,10) = %v, want %v", x, got, red)
		}
	}
	if img.RGBAAt(10, 5) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel off the stroke was modified")
	}
}

func TestDrawLineSegmentWidth(t *testing.T) {
	img := newWhite(20, 20)
	col := color.RGBA{0, 0, 255, 255}
	DrawLineSegment(img, image.Pt(3, 10), image.Pt(16, 10), col, 5)

	// Width 5 covers two rows on each side of the stroke center.
	for _, y := range []int{8, 9, 10, 11, 12} {
		if img.RGBAAt(10, y) != col {
			t.Errorf("row %d not covered by width-5 stroke", y)
		}
	}
	if img.RGBAAt(10, 7) == col || img.RGBAAt(10, 13) == col {
		t.Errorf("stroke wider than requested")
	}
}

func TestDrawLineSegmentDiagonalEndpoints(t *testing.T) {
	img := newWhite(30, 30)
	col := color.RGBA{0, 128, 0, 255}
	DrawLineSegment(img, image.Pt(1, 1), image.Pt(28, 25), col, 1)

	if img.RGBAAt(1, 1) != col {
		t.Errorf("start point not drawn")
	}
	if img.RGBAAt(28, 25) != col {
		t.Errorf("end point not drawn")
	}
}

func TestDrawLineSegmentAtBordersDoesNotPanic(t *testing.T) {
	img := newWhite(10, 10)
	col := color.RGBA{1, 2, 3, 255}
	DrawLineSegment(img, image.Pt(0, 0), image.Pt(9, 9), col, 9)
	DrawLineSegment(img, image.Pt(9, 0), image.Pt(0, 9), col, 9)
	DrawLineSegment(nil, image.Pt(0, 0), image.Pt(1, 1), col, 3)
}

func TestDrawLineSegmentZeroWidthTreatedAsOne(t *testing.T) {
	img := newWhite(10, 10)
	col := color.RGBA{9, 9, 9, 255}
	DrawLineSegment(img, image.Pt(2, 2), image.Pt(7, 2), col, 0)
	if img.RGBAAt(4, 2) != col {
		t.Errorf("zero width stroke drew nothing")
	}
}

func checkerboard(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}
	return img
}

func TestApplyLocalBlurSmoothsRegionOnly(t *testing.T) {
	img := checkerboard(40, 40)
	before := Clone(img)

	ApplyLocalBlur(img, 20, 20, 8)

	changed := false
	for y := 12; y < 28; y++ {
		for x := 12; x < 28; x++ {
			if img.RGBAAt(x, y) != before.RGBAAt(x, y) {
				changed = true
			}
		}
	}
	if !changed {
		t.Fatalf("blur left the target region untouched")
	}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			inside := x >= 12 && x < 28 && y >= 12 && y < 28
			if !inside && img.RGBAAt(x, y) != before.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) outside the region was modified", x, y)
			}
		}
	}
}

func TestApplyLocalBlurDeterministic(t *testing.T) {
	a := checkerboard(32, 32)
	b := checkerboard(32, 32)
	ApplyLocalBlur(a, 16, 16, 10)
	ApplyLocalBlur(b, 16, 16, 10)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Errorf("identical input produced different blur output")
	}
}

func TestApplyLocalBlurAtCorner(t *testing.T) {
	img := checkerboard(16, 16)
	// Clamped region at the corner must stay positive and must not panic.
	ApplyLocalBlur(img, 0, 0, 3)
	ApplyLocalBlur(img, 15, 15, 3)
	ApplyLocalBlur(img, 0, 15, 1)
}

func TestApplyLocalBlurDegenerate(t *testing.T) {
	img := checkerboard(16, 16)
	before := Clone(img)

	ApplyLocalBlur(img, -50, -50, 3) // clamped region is empty
	ApplyLocalBlur(img, 8, 8, 0)     // zero radius
	ApplyLocalBlur(nil, 8, 8, 3)

	if !bytes.Equal(img.Pix, before.Pix) {
		t.Errorf("degenerate blur calls modified the image")
	}
}

func TestEnsureRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if EnsureRGBA(rgba) != rgba {
		t.Errorf("RGBA input should be returned unchanged")
	}

	n := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	n.SetNRGBA(1, 1, color.NRGBA{10, 20, 30, 255})
	out := EnsureRGBA(n)
	if out == nil {
		t.Fatalf("conversion returned nil")
	}
	if got := out.RGBAAt(1, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("converted pixel = %v", got)
	}

	if EnsureRGBA(nil) != nil {
		t.Errorf("nil input should stay nil")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	img := newWhite(8, 8)
	cp := Clone(img)
	img.SetRGBA(3, 3, color.RGBA{1, 2, 3, 255})
	if cp.RGBAAt(3, 3) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("clone shares pixels with the source")
	}
}
