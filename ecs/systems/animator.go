package systems

import (
	"time"

	"github.com/milk9111/dropbar/ecs"
)

// AnimatorSystem advances every running bar animator by one frame and
// publishes what the resulting ticks did.
type AnimatorSystem struct {
	frame time.Duration
}

// NewAnimatorSystem creates an AnimatorSystem for a loop running at tps
// updates per second.
func NewAnimatorSystem(tps int) *AnimatorSystem {
	if tps <= 0 {
		tps = 60
	}
	return &AnimatorSystem{frame: time.Second / time.Duration(tps)}
}

func (s *AnimatorSystem) Update(w *ecs.World) {
	if w == nil || s == nil {
		return
	}
	for _, id := range w.DropBars().Entities() {
		bar, _ := w.DropBars().Get(id)
		if bar == nil || bar.Renderer == nil {
			continue
		}
		e, _ := w.EntityByID(id)
		for _, step := range bar.Renderer.Advance(s.frame) {
			if !step.Completed {
				continue
			}
			w.Events().Push(ecs.Event{Type: ecs.EventSettled, Data: ecs.SettledEvent{
				Bar:   e,
				Node:  step.Settled,
				Scale: step.Scale,
				Next:  step.Curr,
			}})
			if step.Bounced {
				w.Events().Push(ecs.Event{Type: ecs.EventBounce, Data: ecs.BounceEvent{
					Bar:  e,
					Node: step.Curr,
					Dir:  step.Dir,
				}})
			}
		}
	}
}
