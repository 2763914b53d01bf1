package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"golang.org/x/exp/shiny/screen"

	"github.com/example/shineyview/internal/geom"
)

// paint renders one frame into a fresh screen buffer and publishes it.
func (v *Viewer) paint(s screen.Screen) {
	if v.width < 1 || v.height < 1 {
		return
	}
	b, err := s.NewBuffer(image.Pt(v.width, v.height))
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	dst := b.RGBA()

	v.drawBackdrop(dst)
	v.drawImage(dst)
	v.drawTitle(dst)
	v.drawStatus(dst)
	for _, btn := range v.buttons {
		state := stateDefault
		switch btn {
		case v.dragging:
			state = statePressed
		case v.hover:
			state = stateHover
		}
		btn.draw(dst, v, state)
	}
	v.drawMessage(dst)

	v.win.Upload(image.Point{}, b, b.Bounds())
	v.win.Publish()
}

// drawBackdrop fills the canvas area with a cached checkerboard so
// transparency in the image is visible.
func (v *Viewer) drawBackdrop(dst *image.RGBA) {
	bounds := dst.Bounds()
	if v.backdrop == nil || v.backdrop.Bounds() != bounds {
		v.backdrop = image.NewRGBA(bounds)
		drawCheckerboard(v.backdrop, bounds, 8, v.theme.CheckerLight, v.theme.CheckerDark)
	}
	draw.Draw(dst, bounds, v.backdrop, bounds.Min, draw.Src)
}

// drawImage places the scaled image footprint, shifted by the pan scroll.
// At scale 1 with an unclamped footprint the pixels are copied directly
// with no resampling pass.
func (v *Viewer) drawImage(dst *image.RGBA) {
	img := v.sess.Image()
	if img == nil {
		v.drawCentered(dst, "no image")
		return
	}
	size := img.Bounds().Size()
	footprint := geom.Footprint(v.display(), size, v.sess.View().Scale())
	if footprint.Empty() {
		return
	}
	target := footprint.Sub(v.scroll)
	if target.Size() == size {
		draw.Draw(dst, target, img, img.Bounds().Min, draw.Over)
		return
	}
	xdraw.NearestNeighbor.Scale(dst, target, img, img.Bounds(), draw.Over, nil)
}

func (v *Viewer) drawTitle(dst *image.RGBA) {
	bar := image.Rect(0, 0, v.width, titleHeight)
	draw.Draw(dst, bar, &image.Uniform{v.theme.StatusBackground}, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{v.theme.StatusText},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 16),
	}
	d.DrawString(v.windowTitle())
}

func (v *Viewer) drawStatus(dst *image.RGBA) {
	bar := image.Rect(0, v.height-statusHeight, v.width, v.height)
	draw.Draw(dst, bar, &image.Uniform{v.theme.StatusBackground}, image.Point{}, draw.Src)

	status := fmt.Sprintf("tool:%s  brush:%d  zoom:%.0f%%",
		v.sess.Tool(), v.sess.Brush().Size, v.sess.View().Scale()*100)
	if n := v.sess.SiblingCount(); n > 0 && v.sess.Index() >= 0 {
		status = fmt.Sprintf("%d/%d  %s", v.sess.Index()+1, n, status)
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{v.theme.StatusText},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, v.height-statusHeight+16),
	}
	d.DrawString(status)
}

// drawMessage paints the passing notification box while it is fresh.
func (v *Viewer) drawMessage(dst *image.RGBA) {
	if v.message == "" || time.Now().After(v.messageUntil) {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{v.theme.NotificationText},
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(v.message).Ceil()
	px := (v.width - w) / 2
	py := v.height - statusHeight - 40
	box := image.Rect(px-8, py-14, px+w+8, py+8)
	draw.Draw(dst, box, &image.Uniform{v.theme.NotificationBackground}, image.Point{}, draw.Over)
	outlineRect(dst, box, v.theme.NotificationBorder)
	d.Dot = fixed.P(px, py)
	d.DrawString(v.message)
}

func (v *Viewer) drawCentered(dst *image.RGBA, msg string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{v.theme.Foreground},
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(msg).Ceil()
	d.Dot = fixed.P((v.width-w)/2, v.height/2)
	d.DrawString(msg)
}

func drawCheckerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/size)+(y/size))%2 == 0 {
				dst.Set(x, y, light)
			} else {
				dst.Set(x, y, dark)
			}
		}
	}
}

// outlineRect draws a one pixel border just inside r.
func outlineRect(dst *image.RGBA, r image.Rectangle, col color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.Set(x, r.Min.Y, col)
		dst.Set(x, r.Max.Y-1, col)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.Set(r.Min.X, y, col)
		dst.Set(r.Max.X-1, y, col)
	}
}
