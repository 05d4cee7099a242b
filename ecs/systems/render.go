package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dropbar/component"
	"github.com/milk9111/dropbar/ecs"
	"github.com/milk9111/dropbar/ecs/render"
)

// RenderSystem draws every bar column.
type RenderSystem struct{}

// NewRenderSystem creates a RenderSystem.
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Update is a no-op (render occurs in Draw).
func (s *RenderSystem) Update(w *ecs.World) {}

// Draw walks each chain from its head so every column is drawn, whichever
// node is current.
func (s *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, id := range ecs.IntersectEntities(w.DropBars(), w.Viewports()) {
		bar, _ := w.DropBars().Get(id)
		vp, _ := w.Viewports().Get(id)
		if bar == nil || vp == nil {
			continue
		}
		cfg := bar.Config
		bar.Renderer.Bar().Walk(func(n *component.Node) {
			if n.Index >= len(bar.NodeIDs) {
				return
			}
			nodeID := bar.NodeIDs[n.Index]
			tr, ok := w.Transforms().Get(nodeID)
			if !ok {
				return
			}
			bn, ok := w.BarNodes().Get(nodeID)
			if !ok {
				return
			}
			render.DrawBarParts(screen, tr.X, n.State.Scale, bn.Size, vp.Height, cfg.Parts, cfg.Foreground)
		})
	}
}
