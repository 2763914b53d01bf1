package viewer

import (
	"image"
	"image/color"
	"math"
	"path/filepath"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"

	"github.com/example/shineyview/internal/clipboard"
	"github.com/example/shineyview/internal/geom"
	"github.com/example/shineyview/internal/session"
	"github.com/example/shineyview/internal/view"
)

const (
	wheelScrollStep = 40
	swipeThreshold  = 30
)

// brushPalette is the cycle of stroke colors bound to the color key.
var brushPalette = []color.RGBA{
	{255, 0, 0, 255},
	{0, 160, 0, 255},
	{0, 80, 255, 255},
	{255, 200, 0, 255},
	{0, 0, 0, 255},
	{255, 255, 255, 255},
}

func (v *Viewer) handleKey(e key.Event) {
	if e.Direction != key.DirPress {
		return
	}

	if e.Modifiers&key.ModControl != 0 {
		switch e.Rune {
		case 's':
			v.show(v.save())
		case 'c':
			v.copyImage()
		case 'v':
			v.pasteImage()
		case 'z':
			v.show(v.undo())
		case 'm':
			v.show(v.copyToParent())
		case '+', '=':
			v.zoomBy(v.cfg.View.ZoomIn)
		case '-':
			v.zoomBy(v.cfg.View.ZoomOut)
		case '0':
			v.resetZoom()
		}
		return
	}

	switch e.Code {
	case key.CodeLeftArrow, key.CodeUpArrow:
		v.show(v.navigate(session.Prev))
		return
	case key.CodeRightArrow, key.CodeDownArrow:
		v.show(v.navigate(session.Next))
		return
	case key.CodeDeleteForward:
		v.show(v.deleteCurrent())
		return
	case key.CodeEscape:
		v.quit = true
		return
	}

	switch e.Rune {
	case 'q':
		v.quit = true
	case 'd':
		v.sess.SetTool(session.ToolDraw)
		v.repaint()
	case 'b':
		v.sess.SetTool(session.ToolBlur)
		v.repaint()
	case '[':
		v.sess.AdjustBrushSize(-1)
		v.repaint()
	case ']':
		v.sess.AdjustBrushSize(1)
		v.repaint()
	case 'c':
		v.cycleBrushColor()
	}
}

func (v *Viewer) handleMouse(e mouse.Event) {
	p := image.Pt(int(e.X), int(e.Y))

	// Wheel steps arrive as presses of the wheel pseudo-buttons.
	if e.Direction == mouse.DirPress {
		switch e.Button {
		case mouse.ButtonWheelUp:
			v.scroll.Y -= wheelScrollStep
			v.repaint()
			return
		case mouse.ButtonWheelDown:
			v.scroll.Y += wheelScrollStep
			v.repaint()
			return
		}
	}

	// Button dragging with the right mouse button.
	if e.Button == mouse.ButtonRight && e.Direction == mouse.DirPress {
		if btn := v.buttonAt(p); btn != nil {
			v.dragging = btn
			v.dragOffset = p.Sub(btn.rect.Min)
			v.repaint()
		}
		return
	}
	if v.dragging != nil {
		switch e.Direction {
		case mouse.DirNone:
			v.dragging.moveTo(v, p.Sub(v.dragOffset))
			v.repaint()
		case mouse.DirRelease:
			v.layout.Set(v.dragging.id, v.dragging.rect.Min)
			if err := v.layout.Save(); err != nil {
				v.show(session.Outcome{Kind: session.ExternalFailure, Message: "could not save button layout", Err: err})
			}
			v.dragging = nil
			v.repaint()
		}
		return
	}

	switch e.Direction {
	case mouse.DirPress:
		if e.Button == mouse.ButtonLeft {
			if btn := v.buttonAt(p); btn != nil {
				btn.action()
				return
			}
			if e.Modifiers&key.ModAlt != 0 {
				v.beginPan(p)
				return
			}
			if pt, ok := v.mapPointer(e.X, e.Y); ok && v.mode.Begin(view.Drawing) {
				v.sess.BeginStroke(pt)
			}
			return
		}
		if e.Button == mouse.ButtonMiddle {
			v.beginPan(p)
		}
	case mouse.DirNone:
		switch v.mode.Current() {
		case view.Drawing:
			if pt, ok := v.mapPointer(e.X, e.Y); ok {
				v.sess.ContinueStroke(pt)
				v.repaint()
			}
		case view.Panning:
			v.scroll = v.panScroll.Sub(p.Sub(v.panStart))
			v.repaint()
		default:
			if btn := v.buttonAt(p); btn != v.hover {
				v.hover = btn
				v.repaint()
			}
		}
	case mouse.DirRelease:
		switch v.mode.Current() {
		case view.Drawing:
			v.sess.EndStroke()
			v.mode.End()
			v.repaint()
		case view.Panning:
			v.mode.End()
		}
	}
}

func (v *Viewer) beginPan(p image.Point) {
	if v.mode.Begin(view.Panning) {
		v.panStart = p
		v.panScroll = v.scroll
	}
}

// mapPointer converts a pointer position to an image pixel, accounting
// for the pan scroll. ok is false when there is nothing under the
// pointer to edit.
func (v *Viewer) mapPointer(x, y float32) (image.Point, bool) {
	img := v.sess.Image()
	if img == nil {
		return image.Point{}, false
	}
	return geom.MapToImage(
		float64(x)+float64(v.scroll.X),
		float64(y)+float64(v.scroll.Y),
		v.display(),
		img.Bounds().Size(),
		v.sess.View().Scale(),
	)
}

func (v *Viewer) handleTouch(e touch.Event) {
	p := image.Pt(int(e.X), int(e.Y))
	switch e.Type {
	case touch.TypeBegin:
		v.touches[e.Sequence] = p
		switch len(v.touches) {
		case 1:
			if v.mode.Begin(view.TouchTap) {
				v.touchStart = p
			}
		case 2:
			if v.mode.Begin(view.Pinching) {
				v.sess.View().BeginGesture()
				v.pinchBase = v.touchSpread()
			}
		}
	case touch.TypeMove:
		v.touches[e.Sequence] = p
		switch v.mode.Current() {
		case view.Pinching:
			if len(v.touches) < 2 || v.pinchBase <= 0 {
				return
			}
			total := v.touchSpread() / v.pinchBase
			focal := v.touchCenter()
			if next, ok := v.sess.View().UpdateGesture(total, float64(focal.X), float64(focal.Y), v.scroll); ok {
				v.scroll = next
				v.repaint()
			}
		case view.TouchTap:
			if abs(p.X-v.touchStart.X) > swipeThreshold || abs(p.Y-v.touchStart.Y) > swipeThreshold {
				v.mode.Begin(view.TouchSwipe)
			}
		}
	case touch.TypeEnd:
		last := v.touches[e.Sequence]
		delete(v.touches, e.Sequence)
		switch v.mode.Current() {
		case view.Pinching:
			if len(v.touches) < 2 {
				v.sess.View().EndGesture()
				v.mode.End()
			}
		case view.TouchSwipe:
			if len(v.touches) == 0 {
				dir := session.Next
				if last.X > v.touchStart.X {
					dir = session.Prev
				}
				v.mode.End()
				v.show(v.navigate(dir))
			}
		case view.TouchTap:
			if len(v.touches) == 0 {
				v.mode.End()
				v.show(v.navigate(session.Next))
			}
		}
	}
}

// touchSpread is the distance between the first two active touch points.
func (v *Viewer) touchSpread() float64 {
	pts := v.touchPoints()
	if len(pts) < 2 {
		return 0
	}
	dx := float64(pts[0].X - pts[1].X)
	dy := float64(pts[0].Y - pts[1].Y)
	return math.Hypot(dx, dy)
}

func (v *Viewer) touchCenter() image.Point {
	pts := v.touchPoints()
	if len(pts) < 2 {
		return image.Point{}
	}
	return image.Pt((pts[0].X+pts[1].X)/2, (pts[0].Y+pts[1].Y)/2)
}

func (v *Viewer) touchPoints() []image.Point {
	pts := make([]image.Point, 0, len(v.touches))
	for _, p := range v.touches {
		pts = append(pts, p)
	}
	return pts
}

// navigate wraps Advance with the viewer-side bookkeeping a new current
// image needs.
func (v *Viewer) navigate(dir session.Direction) session.Outcome {
	out := v.sess.Advance(dir)
	if out.Changed() {
		v.scroll = image.Point{}
		v.rewatch()
	}
	return out
}

func (v *Viewer) undo() session.Outcome {
	_, hadDeletion := v.sess.Deletion()
	out := v.sess.HandleUndoKey()
	if out.Changed() && hadDeletion {
		if v.notifier != nil {
			v.notifier.Restore(filepath.Base(v.sess.Path()))
		}
		v.rewatch()
	}
	return out
}

func (v *Viewer) deleteCurrent() session.Outcome {
	deleted := filepath.Base(v.sess.Path())
	out := v.sess.DeleteCurrent()
	if out.Changed() {
		if v.notifier != nil {
			v.notifier.Delete(deleted)
		}
		v.scroll = image.Point{}
		v.rewatch()
	}
	return out
}

func (v *Viewer) save() session.Outcome {
	out := v.sess.Save()
	if out.Changed() && v.notifier != nil {
		v.notifier.Save(v.sess.Path())
	}
	return out
}

func (v *Viewer) copyToParent() session.Outcome {
	out := v.sess.CopyToParent()
	if out.Changed() {
		v.scroll = image.Point{}
		v.rewatch()
	}
	return out
}

func (v *Viewer) copyImage() {
	img := v.sess.Image()
	if img == nil {
		v.show(session.Outcome{Kind: session.UserNoOp, Message: "no image to copy"})
		return
	}
	if err := clipboard.WriteImage(img); err != nil {
		v.show(session.Outcome{Kind: session.ExternalFailure, Message: "could not copy to clipboard", Err: err})
		return
	}
	if v.notifier != nil {
		v.notifier.Copy("image")
	}
	v.show(session.Outcome{Kind: session.OK, Message: "copied to clipboard"})
}

func (v *Viewer) pasteImage() {
	img, err := clipboard.ReadImage()
	if err != nil {
		v.show(session.Outcome{Kind: session.ExternalFailure, Message: "clipboard has no image", Err: err})
		return
	}
	out := v.sess.Paste(img)
	if out.Changed() {
		v.scroll = image.Point{}
		v.rewatch()
	}
	v.show(out)
}

func (v *Viewer) zoomBy(factor float64) {
	if v.sess.View().ZoomBy(factor) {
		v.repaint()
		return
	}
	v.show(session.Outcome{Kind: session.UserNoOp, Message: "zoom limit reached"})
}

func (v *Viewer) resetZoom() {
	v.sess.View().Reset()
	v.scroll = image.Point{}
	v.repaint()
}

func (v *Viewer) cycleBrushColor() {
	cur := v.sess.Brush().Color
	next := brushPalette[0]
	for i, c := range brushPalette {
		if c == cur {
			next = brushPalette[(i+1)%len(brushPalette)]
			break
		}
	}
	v.sess.SetBrushColor(next)
	v.repaint()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
