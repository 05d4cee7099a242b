package systems

import (
	"github.com/milk9111/dropbar/ecs"
)

// TapSystem consumes pending taps and starts the current node of the bar.
type TapSystem struct{}

// NewTapSystem creates a TapSystem.
func NewTapSystem() *TapSystem {
	return &TapSystem{}
}

// Update hands each pending tap to the bar's renderer. A tap that lands
// while the current node is still moving is dropped.
func (s *TapSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, id := range ecs.IntersectEntities(w.TapInputs(), w.DropBars()) {
		tap, _ := w.TapInputs().Get(id)
		bar, _ := w.DropBars().Get(id)
		if tap == nil || bar == nil || !tap.Pressed {
			continue
		}
		source := tap.Source
		tap.Pressed = false
		tap.Source = ""

		if !bar.Renderer.HandleTap() {
			continue
		}
		e, _ := w.EntityByID(id)
		db := bar.Renderer.Bar()
		w.Events().Push(ecs.Event{Type: ecs.EventTap, Data: ecs.TapEvent{
			Bar:    e,
			Node:   db.CurrIndex(),
			Dir:    db.Curr().State.Dir,
			Source: source,
		}})
	}
}
