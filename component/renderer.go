package component

import "time"

// Renderer pairs the bar with the animator that ticks it. Taps start the
// current node and the animator; ticks run until that node settles.
type Renderer struct {
	bar      *LinkedDropBar
	animator *Animator
}

func NewRenderer(cfg Config) *Renderer {
	return &Renderer{
		bar:      NewLinkedDropBar(cfg),
		animator: NewAnimator(cfg.Interval),
	}
}

func (r *Renderer) Bar() *LinkedDropBar {
	if r == nil {
		return nil
	}
	return r.bar
}

func (r *Renderer) Animator() *Animator {
	if r == nil {
		return nil
	}
	return r.animator
}

// HandleTap starts the current node if it is idle. Taps that land while a
// node is moving are ignored.
func (r *Renderer) HandleTap() bool {
	if r == nil || !r.bar.StartUpdating() {
		return false
	}
	r.animator.Start()
	return true
}

// Tick runs one animator tick. The animator is stopped on the tick that
// settles the current node.
func (r *Renderer) Tick() Step {
	if r == nil {
		return Step{}
	}
	step := r.bar.Update()
	if step.Completed {
		r.animator.Stop()
	}
	return step
}

// Advance feeds dt of frame time to the animator and runs every tick that
// became due. Ticks left over after the node settles are dropped.
func (r *Renderer) Advance(dt time.Duration) []Step {
	if r == nil {
		return nil
	}
	due := r.animator.Advance(dt)
	var steps []Step
	for i := 0; i < due && r.animator.Running(); i++ {
		steps = append(steps, r.Tick())
	}
	return steps
}

// Busy reports whether an animation run is in progress.
func (r *Renderer) Busy() bool {
	return r != nil && (r.animator.Running() || !r.bar.Idle())
}
