package ecs

import "github.com/milk9111/dropbar/ecs/components"

// DropBars returns the bar storage.
func (w *World) DropBars() *SparseSet[*components.DropBar] {
	if w == nil {
		return nil
	}
	if w.bars == nil {
		w.bars = &SparseSet[*components.DropBar]{}
	}
	return w.bars
}

// Viewports returns the viewport storage.
func (w *World) Viewports() *SparseSet[*components.Viewport] {
	if w == nil {
		return nil
	}
	if w.viewports == nil {
		w.viewports = &SparseSet[*components.Viewport]{}
	}
	return w.viewports
}

// TapInputs returns the tap input storage.
func (w *World) TapInputs() *SparseSet[*components.TapInput] {
	if w == nil {
		return nil
	}
	if w.taps == nil {
		w.taps = &SparseSet[*components.TapInput]{}
	}
	return w.taps
}

// BarNodes returns the bar column storage.
func (w *World) BarNodes() *SparseSet[*components.BarNode] {
	if w == nil {
		return nil
	}
	if w.barNodes == nil {
		w.barNodes = &SparseSet[*components.BarNode]{}
	}
	return w.barNodes
}

// Transforms returns the transform storage.
func (w *World) Transforms() *SparseSet[*components.Transform] {
	if w == nil {
		return nil
	}
	if w.transforms == nil {
		w.transforms = &SparseSet[*components.Transform]{}
	}
	return w.transforms
}

// SetDropBar attaches a bar component.
func (w *World) SetDropBar(e Entity, b *components.DropBar) {
	if w == nil || b == nil {
		return
	}
	w.DropBars().Set(e.ID, b)
}

// GetDropBar returns a bar component.
func (w *World) GetDropBar(e Entity) *components.DropBar {
	if w == nil {
		return nil
	}
	b, _ := w.DropBars().Get(e.ID)
	return b
}

// SetViewport attaches a viewport component.
func (w *World) SetViewport(e Entity, v *components.Viewport) {
	if w == nil || v == nil {
		return
	}
	w.Viewports().Set(e.ID, v)
}

// GetViewport returns a viewport component.
func (w *World) GetViewport(e Entity) *components.Viewport {
	if w == nil {
		return nil
	}
	v, _ := w.Viewports().Get(e.ID)
	return v
}

// SetTapInput attaches a tap input component.
func (w *World) SetTapInput(e Entity, t *components.TapInput) {
	if w == nil || t == nil {
		return
	}
	w.TapInputs().Set(e.ID, t)
}

// GetTapInput returns a tap input component.
func (w *World) GetTapInput(e Entity) *components.TapInput {
	if w == nil {
		return nil
	}
	t, _ := w.TapInputs().Get(e.ID)
	return t
}

// SetBarNode attaches a bar column component.
func (w *World) SetBarNode(e Entity, n *components.BarNode) {
	if w == nil || n == nil {
		return
	}
	w.BarNodes().Set(e.ID, n)
}

// GetBarNode returns a bar column component.
func (w *World) GetBarNode(e Entity) *components.BarNode {
	if w == nil {
		return nil
	}
	n, _ := w.BarNodes().Get(e.ID)
	return n
}

// SetTransform attaches a transform component.
func (w *World) SetTransform(e Entity, t *components.Transform) {
	if w == nil || t == nil {
		return
	}
	w.Transforms().Set(e.ID, t)
}

// GetTransform returns a transform component.
func (w *World) GetTransform(e Entity) *components.Transform {
	if w == nil {
		return nil
	}
	t, _ := w.Transforms().Get(e.ID)
	return t
}

// EntityByID returns a handle for a live entity id.
func (w *World) EntityByID(id int) (Entity, bool) {
	if w == nil || id <= 0 || id > len(w.entities.gen) {
		return Entity{}, false
	}
	e := Entity{ID: id, Gen: w.entities.gen[id-1]}
	return e, w.entities.isAlive(e)
}
