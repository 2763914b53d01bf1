package view

// Interaction identifies what the pointer or touch input is currently
// doing. Exactly one interaction is active at a time, which is what keeps
// drawing from running during a pinch.
type Interaction int

const (
	Idle Interaction = iota
	Drawing
	Panning
	TouchTap
	TouchSwipe
	Pinching
)

func (i Interaction) String() string {
	switch i {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Panning:
		return "panning"
	case TouchTap:
		return "touch-tap"
	case TouchSwipe:
		return "touch-swipe"
	case Pinching:
		return "pinching"
	}
	return "unknown"
}

// InteractionState is the input mode machine. Transitions:
//
//	Idle      -> any interaction
//	TouchTap  -> TouchSwipe (finger moved) or Pinching (second finger)
//	TouchSwipe-> Pinching
//
// Everything else is refused, so a mouse stroke cannot start mid-pinch and
// a pinch cannot start mid-stroke.
type InteractionState struct {
	cur Interaction
}

// Current reports the active interaction.
func (s *InteractionState) Current() Interaction { return s.cur }

// Is reports whether i is the active interaction.
func (s *InteractionState) Is(i Interaction) bool { return s.cur == i }

// Begin attempts to enter next and reports whether the transition was
// allowed. Refused transitions change nothing; the caller drops the event.
func (s *InteractionState) Begin(next Interaction) bool {
	if next == Idle {
		return false
	}
	switch s.cur {
	case Idle:
		s.cur = next
		return true
	case TouchTap:
		if next == TouchSwipe || next == Pinching {
			s.cur = next
			return true
		}
	case TouchSwipe:
		if next == Pinching {
			s.cur = next
			return true
		}
	}
	return false
}

// End returns to Idle from any interaction.
func (s *InteractionState) End() {
	s.cur = Idle
}
