package viewer

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/shineyview/internal/render"
	"github.com/example/shineyview/internal/session"
)

const (
	buttonWidth  = 72
	buttonHeight = 24
	buttonGap    = 8
)

// buttonState is the visual state of an action button.
type buttonState int

const (
	stateDefault buttonState = iota
	stateHover
	statePressed
)

// actionButton is a draggable on-screen button. Left click activates it,
// dragging with the right button moves it; the position is persisted per
// id on release.
type actionButton struct {
	id     string
	label  string
	rect   image.Rectangle
	action func()

	// Rendered faces per state, including the drop shadow margin.
	cache  [3]*image.RGBA
	margin image.Point
}

// makeButtons builds the button column. Saved positions override the
// default left-edge stack.
func (v *Viewer) makeButtons() []*actionButton {
	defs := []struct {
		id, label string
		action    func()
	}{
		{"btn.prev", "< Prev", func() { v.show(v.navigate(session.Prev)) }},
		{"btn.next", "Next >", func() { v.show(v.navigate(session.Next)) }},
		{"btn.draw", "Draw", func() {
			v.sess.SetTool(session.ToolDraw)
			v.repaint()
		}},
		{"btn.blur", "Blur", func() {
			v.sess.SetTool(session.ToolBlur)
			v.repaint()
		}},
		{"btn.undo", "Undo", func() { v.show(v.undo()) }},
		{"btn.delete", "Delete", func() { v.show(v.deleteCurrent()) }},
		{"btn.save", "Save", func() { v.show(v.save()) }},
		{"btn.copyup", "Move up", func() { v.show(v.copyToParent()) }},
	}

	buttons := make([]*actionButton, 0, len(defs))
	y := titleHeight + buttonGap
	for _, def := range defs {
		pos := image.Pt(buttonGap, y)
		if saved, ok := v.layout.Get(def.id); ok {
			pos = image.Pt(saved.X, saved.Y)
		}
		buttons = append(buttons, &actionButton{
			id:     def.id,
			label:  def.label,
			rect:   image.Rectangle{Min: pos, Max: pos.Add(image.Pt(buttonWidth, buttonHeight))},
			action: def.action,
		})
		y += buttonHeight + buttonGap
	}
	return buttons
}

// buttonAt returns the topmost button under p.
func (v *Viewer) buttonAt(p image.Point) *actionButton {
	for i := len(v.buttons) - 1; i >= 0; i-- {
		if p.In(v.buttons[i].rect) {
			return v.buttons[i]
		}
	}
	return nil
}

// moveTo repositions the button, clamped so it stays reachable inside the
// window, and drops the cached faces' placement.
func (b *actionButton) moveTo(v *Viewer, pos image.Point) {
	size := b.rect.Size()
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < titleHeight {
		pos.Y = titleHeight
	}
	if maxX := v.width - size.X; pos.X > maxX && maxX >= 0 {
		pos.X = maxX
	}
	if maxY := v.height - statusHeight - size.Y; pos.Y > maxY && maxY >= titleHeight {
		pos.Y = maxY
	}
	b.rect = image.Rectangle{Min: pos, Max: pos.Add(size)}
}

// face renders (and caches) the button face for a state, with a soft drop
// shadow composited around it.
func (b *actionButton) face(v *Viewer, state buttonState) *image.RGBA {
	if b.cache[state] != nil {
		return b.cache[state]
	}
	t := v.theme
	bg := t.ButtonBackground
	switch state {
	case stateHover:
		bg = t.ButtonBackgroundHover
	case statePressed:
		bg = t.ButtonBackgroundPress
	}

	plain := image.NewRGBA(image.Rect(0, 0, buttonWidth, buttonHeight))
	draw.Draw(plain, plain.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	outlineRect(plain, plain.Bounds(), t.ButtonBorder)
	d := &font.Drawer{
		Dst:  plain,
		Src:  &image.Uniform{t.ButtonText},
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(b.label).Ceil()
	d.Dot = fixed.P((buttonWidth-w)/2, buttonHeight/2+5)
	d.DrawString(b.label)

	shadowed := render.ApplyShadow(plain, render.ShadowOptions{
		Radius:  4,
		Offset:  image.Pt(2, 2),
		Opacity: 0.4,
	})
	b.cache[state] = shadowed.Image
	b.margin = shadowed.Offset
	return b.cache[state]
}

// draw paints the button into dst at its current rect.
func (b *actionButton) draw(dst *image.RGBA, v *Viewer, state buttonState) {
	img := b.face(v, state)
	at := b.rect.Min.Sub(b.margin)
	draw.Draw(dst, img.Bounds().Add(at), img, img.Bounds().Min, draw.Over)
}
