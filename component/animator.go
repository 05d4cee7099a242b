package component

import "time"

// Animator is a periodic ticker driven by the frame loop. While running,
// Advance converts elapsed frame time into whole ticks of Interval. The
// owner decides when to stop it.
type Animator struct {
	interval time.Duration
	animated bool
	elapsed  time.Duration
}

func NewAnimator(interval time.Duration) *Animator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Animator{interval: interval}
}

func (a *Animator) Interval() time.Duration {
	if a == nil {
		return 0
	}
	return a.interval
}

func (a *Animator) Running() bool {
	return a != nil && a.animated
}

// Start begins ticking. The first tick is due one full interval later.
// Returns false if the animator was already running.
func (a *Animator) Start() bool {
	if a == nil || a.animated {
		return false
	}
	a.animated = true
	a.elapsed = 0
	return true
}

// Stop cancels any further ticks. Returns false if already stopped.
func (a *Animator) Stop() bool {
	if a == nil || !a.animated {
		return false
	}
	a.animated = false
	a.elapsed = 0
	return true
}

// Advance feeds dt of frame time and returns how many ticks became due.
func (a *Animator) Advance(dt time.Duration) int {
	if a == nil || !a.animated || dt <= 0 {
		return 0
	}
	a.elapsed += dt
	n := int(a.elapsed / a.interval)
	a.elapsed -= time.Duration(n) * a.interval
	return n
}
