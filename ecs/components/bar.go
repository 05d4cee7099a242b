package components

import "github.com/milk9111/dropbar/component"

// DropBar is the runtime of one linked drop bar. NodeIDs maps chain index
// to the entity id of the column drawn for it.
type DropBar struct {
	Renderer *component.Renderer
	Config   component.Config
	NodeIDs  []int
}

// Viewport is the surface size the bar was laid out for.
type Viewport struct {
	Width  float64
	Height float64
}
