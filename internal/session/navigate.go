package session

import "path/filepath"

// Direction names which sibling Advance moves to.
type Direction int

const (
	Prev Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// Advance loads the previous or next sibling. At either end of the listing
// it refuses and reports where the session already is; the current image,
// including unsaved edits, is abandoned once the neighbor loads.
func (s *Session) Advance(dir Direction) Outcome {
	if len(s.siblings) == 0 {
		s.rescanSiblings()
	}
	if len(s.siblings) == 0 {
		return noop("no other images in this directory")
	}

	var target int
	switch dir {
	case Prev:
		if s.index <= 0 {
			return noop("already at the first image")
		}
		target = s.index - 1
	default:
		if s.index >= len(s.siblings)-1 {
			return noop("already at the last image")
		}
		target = s.index + 1
	}

	path := s.siblings[target]
	if out := s.Load(path); !out.Changed() {
		return out
	}
	arrow := "→"
	if dir == Prev {
		arrow = "←"
	}
	return okf("%s %s (%d/%d)", arrow, filepath.Base(s.path), s.index+1, len(s.siblings))
}

// Rescan refreshes the sibling listing in place, re-locating the current
// file. The viewer calls this when the directory watcher reports changes.
func (s *Session) Rescan() Outcome {
	if s.path == "" {
		return noop("")
	}
	s.rescanSiblings()
	if s.index < 0 {
		return okf("directory changed; %s is no longer listed", filepath.Base(s.path))
	}
	return okf("directory changed (%d/%d)", s.index+1, len(s.siblings))
}
