package component

import (
	"math"
	"testing"
)

func TestStateStartUpdating(t *testing.T) {
	cases := []struct {
		name      string
		state     State
		wantStart bool
		wantDir   int
	}{
		{"from_rest", State{}, true, 1},
		{"from_dropped", State{Scale: 1, PrevScale: 1}, true, -1},
		{"already_forward", State{Scale: 0.4, Dir: 1}, false, 1},
		{"already_backward", State{Scale: 0.4, Dir: -1, PrevScale: 1}, false, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := c.state
			if got := s.StartUpdating(); got != c.wantStart {
				t.Fatalf("StartUpdating() = %v, want %v", got, c.wantStart)
			}
			if s.Dir != c.wantDir {
				t.Fatalf("Dir = %d, want %d", s.Dir, c.wantDir)
			}
		})
	}
}

func TestStateFullCycle(t *testing.T) {
	cases := []struct {
		name      string
		start     State
		wantScale float64
	}{
		{"drop", State{}, 1},
		{"retract", State{Scale: 1, PrevScale: 1}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := c.start
			if !s.StartUpdating() {
				t.Fatalf("expected animation to start")
			}
			completions := 0
			for tick := 1; tick <= 50; tick++ {
				if s.Update(DefaultScaleGap) {
					completions++
					if tick != 50 {
						t.Fatalf("completed on tick %d, want 50", tick)
					}
				}
			}
			if completions != 1 {
				t.Fatalf("completions = %d, want 1", completions)
			}
			if s.Dir != 0 || s.Scale != c.wantScale || s.PrevScale != c.wantScale {
				t.Fatalf("settled state = %+v, want idle at %v", s, c.wantScale)
			}
		})
	}
}

func TestStateUpdateWhileIdle(t *testing.T) {
	s := State{Scale: 1, PrevScale: 1}
	for i := 0; i < 10; i++ {
		if s.Update(DefaultScaleGap) {
			t.Fatalf("idle state reported completion")
		}
	}
	if s.Scale != 1 {
		t.Fatalf("idle state moved to %v", s.Scale)
	}
}

func TestStateNoCompletionMidway(t *testing.T) {
	s := State{}
	s.StartUpdating()
	for i := 0; i < 25; i++ {
		if s.Update(DefaultScaleGap) {
			t.Fatalf("completed early on tick %d", i+1)
		}
	}
	if math.Abs(s.Scale-0.5) > 1e-9 {
		t.Fatalf("Scale = %v, want 0.5", s.Scale)
	}
	if s.Idle() {
		t.Fatalf("state should still be animating")
	}
}
