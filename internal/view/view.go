// Package view owns the display scale factor and the gesture state driving
// it. Scale requests outside the configured bounds are rejected, never
// clamped, so the current scale is always valid.
package view

import "image"

// Bounds and step defaults for interactive zooming.
const (
	DefaultMinScale = 0.1
	DefaultMaxScale = 5.0

	ZoomInStep  = 1.1
	ZoomOutStep = 0.9
)

// Transform tracks the scale factor applied to the displayed image.
type Transform struct {
	scale float64
	min   float64
	max   float64

	gesturing  bool
	startScale float64
}

// NewTransform returns a transform at scale 1.0 with the default bounds.
func NewTransform() *Transform {
	return NewTransformWithBounds(DefaultMinScale, DefaultMaxScale)
}

// NewTransformWithBounds returns a transform with custom scale bounds.
// Bounds that are not ordered or do not include 1.0 fall back to the
// defaults so that Reset always lands inside the valid range.
func NewTransformWithBounds(min, max float64) *Transform {
	if min <= 0 || max <= min || min > 1 || max < 1 {
		min, max = DefaultMinScale, DefaultMaxScale
	}
	return &Transform{scale: 1.0, min: min, max: max}
}

// Scale reports the current scale factor.
func (t *Transform) Scale() float64 { return t.scale }

// MinScale reports the lower scale bound.
func (t *Transform) MinScale() float64 { return t.min }

// MaxScale reports the upper scale bound.
func (t *Transform) MaxScale() float64 { return t.max }

// ZoomBy proposes scale*factor and applies it only when the result stays
// within bounds. It reports whether the new scale was applied; a rejection
// leaves the current scale untouched.
func (t *Transform) ZoomBy(factor float64) bool {
	next := t.scale * factor
	if next < t.min || next > t.max {
		return false
	}
	t.scale = next
	return true
}

// Reset puts the scale back to exactly 1.0. Callers display the unscaled
// pixel buffer directly afterwards and return any scroll offset to the
// origin.
func (t *Transform) Reset() {
	t.scale = 1.0
}

// BeginGesture captures the scale at the start of a pinch. Updates are
// only applied between BeginGesture and EndGesture/CancelGesture.
func (t *Transform) BeginGesture() {
	t.gesturing = true
	t.startScale = t.scale
}

// UpdateGesture applies one step of an active pinch. total is the
// accumulated gesture scale since the pinch began; the new scale is
// startScale*total, rejected when out of bounds. On acceptance the
// returned scroll offset keeps the image point under the focal point
// stationary:
//
//	imagePt = (scroll + focal) / oldScale
//	newScroll = imagePt*newScale - focal
//
// The incoming scroll is returned unchanged when the update is rejected or
// no gesture is active.
func (t *Transform) UpdateGesture(total float64, focalX, focalY float64, scroll image.Point) (image.Point, bool) {
	if !t.gesturing {
		return scroll, false
	}
	next := t.startScale * total
	if next < t.min || next > t.max {
		return scroll, false
	}
	old := t.scale
	beforeX := (float64(scroll.X) + focalX) / old
	beforeY := (float64(scroll.Y) + focalY) / old
	t.scale = next
	return image.Pt(
		int(beforeX*next-focalX),
		int(beforeY*next-focalY),
	), true
}

// EndGesture finishes the active pinch, keeping the scale it reached.
func (t *Transform) EndGesture() {
	t.gesturing = false
}

// CancelGesture aborts the active pinch. Scale updates already applied
// stay, matching how the interactive pinch behaves when it is interrupted.
func (t *Transform) CancelGesture() {
	t.gesturing = false
}

// Gesturing reports whether a pinch is in progress.
func (t *Transform) Gesturing() bool { return t.gesturing }
