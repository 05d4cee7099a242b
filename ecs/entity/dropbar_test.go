package entity

import (
	"math"
	"testing"

	"github.com/milk9111/dropbar/component"
	"github.com/milk9111/dropbar/ecs"
)

func TestBuildDropBar(t *testing.T) {
	w := ecs.NewWorld()
	cfg := component.DefaultConfig()

	bar, err := BuildDropBar(w, cfg, 600, 400)
	if err != nil {
		t.Fatalf("BuildDropBar: %v", err)
	}

	db := w.GetDropBar(bar)
	if db == nil || db.Renderer == nil {
		t.Fatalf("bar entity missing DropBar component")
	}
	if w.GetTapInput(bar) == nil || w.GetViewport(bar) == nil {
		t.Fatalf("bar entity missing input or viewport")
	}
	if len(db.NodeIDs) != cfg.Nodes {
		t.Fatalf("got %d columns, want %d", len(db.NodeIDs), cfg.Nodes)
	}
	if w.EntityCount() != cfg.Nodes+1 {
		t.Fatalf("got %d entities, want %d", w.EntityCount(), cfg.Nodes+1)
	}

	gap := 600.0 / float64(cfg.Nodes+1)
	for i, id := range db.NodeIDs {
		e, ok := w.EntityByID(id)
		if !ok {
			t.Fatalf("column %d not alive", i)
		}
		n := w.GetBarNode(e)
		tr := w.GetTransform(e)
		if n == nil || tr == nil {
			t.Fatalf("column %d missing components", i)
		}
		if n.Index != i {
			t.Fatalf("column %d has index %d", i, n.Index)
		}
		if math.Abs(tr.X-gap*float64(i+1)) > 1e-9 {
			t.Fatalf("column %d at x=%v, want %v", i, tr.X, gap*float64(i+1))
		}
		if math.Abs(n.Size-gap/cfg.SizeFactor) > 1e-9 {
			t.Fatalf("column %d size %v", i, n.Size)
		}
	}
}

func TestBuildDropBarRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		w    *ecs.World
		wd   float64
		ht   float64
	}{
		{"nil_world", nil, 100, 100},
		{"zero_width", ecs.NewWorld(), 0, 100},
		{"negative_height", ecs.NewWorld(), 100, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := BuildDropBar(c.w, component.DefaultConfig(), c.wd, c.ht); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
