package entity

import (
	"fmt"

	"github.com/milk9111/dropbar/common"
	"github.com/milk9111/dropbar/component"
	"github.com/milk9111/dropbar/ecs"
	"github.com/milk9111/dropbar/ecs/components"
)

// BuildDropBar spawns a bar entity and one column entity per node, laid out
// across a width x height surface.
func BuildDropBar(w *ecs.World, cfg component.Config, width, height float64) (ecs.Entity, error) {
	if w == nil {
		return ecs.Entity{}, fmt.Errorf("entity: build drop bar: nil world")
	}
	if width <= 0 || height <= 0 {
		return ecs.Entity{}, fmt.Errorf("entity: build drop bar: invalid viewport %gx%g", width, height)
	}

	renderer := component.NewRenderer(cfg)
	nodes := renderer.Bar().Chain().Len()

	bar := w.CreateEntity()
	ids := make([]int, 0, nodes)
	for i := 0; i < nodes; i++ {
		x, size := common.NodeLayout(i, width, nodes, cfg.SizeFactor)
		e := w.CreateEntity()
		w.SetTransform(e, &components.Transform{X: x})
		w.SetBarNode(e, &components.BarNode{Index: i, Size: size})
		ids = append(ids, e.ID)
	}

	w.SetDropBar(bar, &components.DropBar{
		Renderer: renderer,
		Config:   cfg,
		NodeIDs:  ids,
	})
	w.SetViewport(bar, &components.Viewport{Width: width, Height: height})
	w.SetTapInput(bar, &components.TapInput{})
	return bar, nil
}
