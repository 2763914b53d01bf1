// Package history keeps a linear undo stack of full image snapshots with
// truncate-on-branch semantics.
package history

import (
	"image"

	"github.com/example/shineyview/internal/raster"
)

// Store holds snapshots in order with a cursor pointing at the entry that
// matches the currently displayed image. The zero-value-like initial state
// (no entries, cursor -1) is valid.
type Store struct {
	entries []*image.RGBA
	step    int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{step: -1}
}

// Record advances the cursor, drops any entries beyond it, and appends a
// deep RGBA snapshot of img. It is called once at the start of every edit
// gesture and once after a paste or load.
func (s *Store) Record(img image.Image) {
	if img == nil {
		return
	}
	s.step++
	if s.step < len(s.entries) {
		s.entries = s.entries[:s.step]
	}
	s.entries = append(s.entries, snapshot(img))
}

// Undo steps the cursor back and returns an independent copy of the entry
// now under it. With nothing to undo it reports false and changes nothing;
// callers surface that as a notification, not an error.
func (s *Store) Undo() (*image.RGBA, bool) {
	if s.step <= 0 {
		return nil, false
	}
	s.step--
	return raster.Clone(s.entries[s.step]), true
}

// Reset drops all entries and seeds the store with a single snapshot of
// img, as after loading or pasting a fresh image.
func (s *Store) Reset(img image.Image) {
	s.entries = nil
	s.step = -1
	s.Record(img)
}

// Clear empties the store back to its initial state.
func (s *Store) Clear() {
	s.entries = nil
	s.step = -1
}

// Len reports the number of stored snapshots.
func (s *Store) Len() int { return len(s.entries) }

// Step reports the cursor position; -1 when the store is empty.
func (s *Store) Step() int { return s.step }

// snapshot copies img into a fresh RGBA buffer so later edits to the live
// image cannot reach stored entries.
func snapshot(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return raster.Clone(rgba)
	}
	return raster.EnsureRGBA(img)
}
