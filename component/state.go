package component

import "math"

// State tracks one node's progress between resting (0) and dropped (1).
// Dir is 0 whenever no animation is running and Scale only moves while it
// is non-zero. PrevScale is the last value an animation settled on.
type State struct {
	Scale     float64
	Dir       int
	PrevScale float64
}

// Idle reports whether no animation is in progress.
func (s *State) Idle() bool {
	return s == nil || s.Dir == 0
}

// StartUpdating picks the direction that moves away from the committed
// extreme: +1 from rest, -1 from dropped. It returns false when an
// animation is already running.
func (s *State) StartUpdating() bool {
	if s == nil || s.Dir != 0 {
		return false
	}
	s.Dir = 1 - 2*int(math.Round(s.PrevScale))
	return true
}

// Update advances the animation by one tick of size gap. It returns true on
// the tick that completes a full unit of travel; the scale is snapped to the
// exact target and the state goes back to idle.
func (s *State) Update(gap float64) bool {
	if s == nil || s.Dir == 0 {
		return false
	}
	s.Scale += gap * float64(s.Dir)
	if math.Abs(s.Scale-s.PrevScale) > 1 {
		s.Scale = s.PrevScale + float64(s.Dir)
		s.Dir = 0
		s.PrevScale = s.Scale
		return true
	}
	return false
}
