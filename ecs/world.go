package ecs

import "github.com/milk9111/dropbar/ecs/components"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, components, and system order.
type World struct {
	entities entityStore
	systems  []System
	events   EventQueue

	bars       *SparseSet[*components.DropBar]
	viewports  *SparseSet[*components.Viewport]
	taps       *SparseSet[*components.TapInput]
	barNodes   *SparseSet[*components.BarNode]
	transforms *SparseSet[*components.Transform]
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	w.DropBars().Remove(e.ID)
	w.Viewports().Remove(e.ID)
	w.TapInputs().Remove(e.ID)
	w.BarNodes().Remove(e.ID)
	w.Transforms().Remove(e.ID)
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// EntityCount reports the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.live
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Systems returns a copy of the update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return append([]System(nil), w.systems...)
}

// Update runs all systems once. Events pushed during the update are
// discarded afterwards.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
