package history

import (
	"image"
	"image/color"
	"testing"
)

// mark returns a 4x4 image whose (0,0) pixel identifies the snapshot.
func mark(r uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(0, 0, color.RGBA{r, 0, 0, 255})
	return img
}

func tag(img *image.RGBA) uint8 {
	return img.RGBAAt(0, 0).R
}

func TestInitialState(t *testing.T) {
	s := NewStore()
	if s.Len() != 0 || s.Step() != -1 {
		t.Fatalf("initial state len=%d step=%d, want 0/-1", s.Len(), s.Step())
	}
	if _, ok := s.Undo(); ok {
		t.Errorf("undo on empty store should report nothing to undo")
	}
}

func TestRecordMonotonicity(t *testing.T) {
	s := NewStore()
	for i := 1; i <= 5; i++ {
		s.Record(mark(uint8(i)))
		if s.Len() != i || s.Step() != i-1 {
			t.Fatalf("after %d records: len=%d step=%d", i, s.Len(), s.Step())
		}
	}
}

func TestUndoThenRecordTruncates(t *testing.T) {
	s := NewStore()
	s.Record(mark(1)) // A
	s.Record(mark(2)) // B
	s.Record(mark(3)) // C

	img, ok := s.Undo()
	if !ok {
		t.Fatalf("undo failed")
	}
	if tag(img) != 2 {
		t.Fatalf("undo returned snapshot %d, want B(2)", tag(img))
	}

	s.Record(mark(4)) // D replaces C
	if s.Len() != 3 || s.Step() != 2 {
		t.Fatalf("after branch: len=%d step=%d, want 3/2", s.Len(), s.Step())
	}

	// Walking back now yields B then A; C is gone.
	img, _ = s.Undo()
	if tag(img) != 2 {
		t.Errorf("first undo after branch = %d, want 2", tag(img))
	}
	img, _ = s.Undo()
	if tag(img) != 1 {
		t.Errorf("second undo after branch = %d, want 1", tag(img))
	}
	if _, ok := s.Undo(); ok {
		t.Errorf("undo past the first entry should refuse")
	}
}

func TestUndoAtFirstEntryIsNoOp(t *testing.T) {
	s := NewStore()
	s.Record(mark(1))
	if _, ok := s.Undo(); ok {
		t.Fatalf("single-entry store has nothing to undo")
	}
	if s.Step() != 0 {
		t.Errorf("refused undo moved the cursor to %d", s.Step())
	}
}

func TestUndoReturnsIndependentCopy(t *testing.T) {
	s := NewStore()
	s.Record(mark(1))
	s.Record(mark(2))

	img, _ := s.Undo()
	img.SetRGBA(0, 0, color.RGBA{99, 0, 0, 255})

	// A second walk to the same entry must see the original pixel.
	s.Record(mark(3))
	again, _ := s.Undo()
	if tag(again) != 1 {
		t.Errorf("stored entry was corrupted through the returned copy: %d", tag(again))
	}
}

func TestRecordSnapshotsDeeply(t *testing.T) {
	s := NewStore()
	live := mark(7)
	s.Record(live)
	live.SetRGBA(0, 0, color.RGBA{42, 0, 0, 255})
	s.Record(live)

	img, _ := s.Undo()
	if tag(img) != 7 {
		t.Errorf("snapshot followed later edits to the live image: %d", tag(img))
	}
}

func TestResetSeedsSingleEntry(t *testing.T) {
	s := NewStore()
	s.Record(mark(1))
	s.Record(mark(2))

	s.Reset(mark(9))
	if s.Len() != 1 || s.Step() != 0 {
		t.Fatalf("after reset: len=%d step=%d, want 1/0", s.Len(), s.Step())
	}
	if _, ok := s.Undo(); ok {
		t.Errorf("reset store should have nothing to undo")
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Record(mark(1))
	s.Clear()
	if s.Len() != 0 || s.Step() != -1 {
		t.Errorf("after clear: len=%d step=%d", s.Len(), s.Step())
	}
}

func TestRecordConvertsToRGBA(t *testing.T) {
	s := NewStore()
	n := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	n.SetNRGBA(0, 0, color.NRGBA{5, 6, 7, 255})
	s.Record(n)
	s.Record(mark(2))

	img, ok := s.Undo()
	if !ok {
		t.Fatalf("undo failed")
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{5, 6, 7, 255}) {
		t.Errorf("non-RGBA snapshot pixel = %v", got)
	}
}
